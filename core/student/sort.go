package student

import (
	"fmt"
	"strings"
)

// SortField is a student attribute the roster can be ordered by.
type SortField int

const (
	SortByName SortField = iota
	SortByTutorial
	SortByGrade
	SortByAttendance
)

var sortFieldNames = []string{"name", "tutorial", "grade", "attendance"}

func (f SortField) String() string {
	if f < SortByName || f > SortByAttendance {
		return fmt.Sprintf("SortField(%d)", int(f))
	}
	return sortFieldNames[f]
}

// ParseSortField matches s case-insensitively against name, tutorial, grade and attendance.
func ParseSortField(s string) (SortField, bool) {
	for i, name := range sortFieldNames {
		if strings.EqualFold(name, s) {
			return SortField(i), true
		}
	}
	return 0, false
}

// SortOrder is either ascending or descending.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// Description is the long name used in feedback, eg. "ascending".
func (o SortOrder) Description() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// ParseSortOrder matches s case-insensitively against asc and desc.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch strings.ToLower(s) {
	case "asc":
		return Ascending, true
	case "desc":
		return Descending, true
	}
	return 0, false
}

// Less reports whether a orders strictly before b.
type Less func(a, b Student) bool

// Comparator returns the ordering for field in order. Use it with a stable sort.
func Comparator(field SortField, order SortOrder) Less {
	var less Less
	switch field {
	case SortByTutorial:
		less = func(a, b Student) bool { return a.TutorialGroup.Number() < b.TutorialGroup.Number() }
	case SortByGrade:
		less = func(a, b Student) bool { return a.OverallGrade().Value() < b.OverallGrade().Value() }
	case SortByAttendance:
		less = func(a, b Student) bool { return a.Attendance.Rate() < b.Attendance.Rate() }
	default:
		less = func(a, b Student) bool {
			return strings.ToLower(string(a.Name)) < strings.ToLower(string(b.Name))
		}
	}
	if order == Descending {
		return func(a, b Student) bool { return less(b, a) }
	}
	return less
}
