package student

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// gradeRegex matches 0.00 to 99.99 or exactly 100.00.
var gradeRegex = regexp.MustCompile(`^(100\.00|\d{1,2}\.\d{2})$`)

// Grade is a mark in [0.00, 100.00] with exactly 2 decimal places, or unset.
type Grade string

// Unset is the Grade of an assignment that has not been graded.
const Unset Grade = ""

// IsValidGrade reports whether s is a normalized grade or the unset value.
func IsValidGrade(s string) bool {
	return s == string(Unset) || gradeRegex.MatchString(s)
}

// FormatGrade normalizes v to a Grade string with 2 decimal places.
func FormatGrade(v float64) Grade {
	return Grade(strconv.FormatFloat(v, 'f', 2, 64))
}

func (g Grade) IsSet() bool { return g != Unset }

// Value returns the numeric grade; unset grades rank below every set grade.
func (g Grade) Value() float64 {
	if !g.IsSet() {
		return -1
	}
	v, err := strconv.ParseFloat(string(g), 64)
	if err != nil {
		return -1
	}
	return v
}

func (g Grade) String() string {
	if !g.IsSet() {
		return "-"
	}
	return string(g)
}

// GradeMap holds a Grade for every Assignment.
type GradeMap [assignmentCount]Grade

// Get returns the grade of a.
func (gm GradeMap) Get(a Assignment) Grade { return gm[a] }

// With returns a copy of gm where a is graded g.
func (gm GradeMap) With(a Assignment, g Grade) GradeMap {
	gm[a] = g
	return gm
}

// Overall returns the mean of all set grades, or Unset if none is set.
func (gm GradeMap) Overall() Grade {
	var sum float64
	var n int
	for _, g := range gm {
		if g.IsSet() {
			sum += g.Value()
			n++
		}
	}
	if n == 0 {
		return Unset
	}
	return FormatGrade(sum / float64(n))
}

func (gm GradeMap) String() string {
	parts := make([]string, 0, assignmentCount)
	for _, a := range AllAssignments {
		parts = append(parts, fmt.Sprintf("%s: %s", a, gm[a]))
	}
	return strings.Join(parts, ", ")
}
