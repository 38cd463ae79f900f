package student

import (
	"sort"
	"strings"
)

type (
	Name   string
	Phone  string
	Email  string
	Handle string
	Tag    string
)

// Student is an immutable roster record. Edits return a new value.
type Student struct {
	Name          Name
	Phone         Phone
	Email         Email
	Handle        Handle
	TutorialGroup TutorialGroup
	Grades        GradeMap
	Attendance    AttendMap
	Tags          []Tag
}

// New returns a Student with no grades, no attendance and a de-duplicated tag set.
func New(name Name, phone Phone, email Email, handle Handle, tg TutorialGroup, tags ...Tag) Student {
	return Student{
		Name:          name,
		Phone:         phone,
		Email:         email,
		Handle:        handle,
		TutorialGroup: tg,
		Tags:          tagSet(tags),
	}
}

// WithGrade returns a copy of s where a is graded g.
func (s Student) WithGrade(a Assignment, g Grade) Student {
	s.Grades = s.Grades.With(a, g)
	s.Tags = tagSet(s.Tags)
	return s
}

// WithAttendance returns a copy of s where c is marked present or absent.
func (s Student) WithAttendance(c TutorialClass, present bool) Student {
	if present {
		s.Attendance = s.Attendance.WithPresent(c)
	} else {
		s.Attendance = s.Attendance.WithAbsent(c)
	}
	s.Tags = tagSet(s.Tags)
	return s
}

// WithTags returns a copy of s carrying exactly tags.
func (s Student) WithTags(tags ...Tag) Student {
	s.Tags = tagSet(tags)
	return s
}

// IsSame reports whether both students have the same name.
func (s Student) IsSame(other Student) bool {
	return s.Name == other.Name
}

// Equal compares every field, tags as a set.
func (s Student) Equal(other Student) bool {
	if s.Name != other.Name || s.Phone != other.Phone || s.Email != other.Email ||
		s.Handle != other.Handle || s.TutorialGroup != other.TutorialGroup ||
		s.Grades != other.Grades || s.Attendance != other.Attendance {
		return false
	}
	a, b := tagSet(s.Tags), tagSet(other.Tags)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// OverallGrade is the mean of the set grades.
func (s Student) OverallGrade() Grade { return s.Grades.Overall() }

// Format renders s for feedback messages.
func Format(s Student) string {
	var b strings.Builder
	b.WriteString(string(s.Name))
	b.WriteString("; Phone: ")
	b.WriteString(string(s.Phone))
	b.WriteString("; Email: ")
	b.WriteString(string(s.Email))
	b.WriteString("; Handle: ")
	b.WriteString(string(s.Handle))
	b.WriteString("; Tutorial Group: ")
	if s.TutorialGroup.IsAssigned() {
		b.WriteString(s.TutorialGroup.String())
	} else {
		b.WriteString("-")
	}
	b.WriteString("; Grades: ")
	b.WriteString(s.Grades.String())
	b.WriteString("; Attendance: ")
	b.WriteString(s.Attendance.Overall())
	b.WriteString("; Tags: ")
	for _, t := range s.Tags {
		b.WriteString("[" + string(t) + "]")
	}
	return b.String()
}

// FormatVerbose renders s with per-class attendance and the overall grade.
func FormatVerbose(s Student) string {
	return Format(s) + "\n  Overall grade: " + s.OverallGrade().String() + "\n  " + s.Attendance.Format()
}

// tagSet returns a sorted copy of tags without duplicates.
func tagSet(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	set := make([]Tag, 0, len(tags))
	seen := make(map[Tag]bool, len(tags))
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			set = append(set, t)
		}
	}
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	return set
}
