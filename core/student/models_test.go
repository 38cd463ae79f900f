package student

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func newStudent(name Name, tg TutorialGroup) Student {
	return New(name, "98765432", Email(string(name)+"@example.com"), Handle("@"+string(name)), tg)
}

func TestStudent_IsSameAndEqual(t *testing.T) {
	alice := New("Alice", "98765432", "alice@example.com", "@alice", "TG1", "friends", "tutee")
	aliceTagsReordered := New("Alice", "98765432", "alice@example.com", "@alice", "TG1", "tutee", "friends", "tutee")
	aliceOtherPhone := alice
	aliceOtherPhone.Phone = "12345678"

	assert.True(t, alice.IsSame(aliceOtherPhone))
	assert.False(t, alice.Equal(aliceOtherPhone))
	assert.True(t, alice.Equal(aliceTagsReordered))
	assert.False(t, alice.Equal(alice.WithGrade(Q1, "50.00")))
	assert.False(t, alice.IsSame(newStudent("Bob", "TG1")))
}

func TestStudent_WithLeavesOriginalUntouched(t *testing.T) {
	alice := newStudent("Alice", "TG1")
	graded := alice.WithGrade(Finals, "75.00")
	present := alice.WithAttendance(T3, true)

	assert.Equal(t, Unset, alice.Grades.Get(Finals))
	assert.Equal(t, Grade("75.00"), graded.Grades.Get(Finals))
	assert.False(t, alice.Attendance.IsPresent(T3))
	assert.True(t, present.Attendance.IsPresent(T3))
	assert.True(t, present.WithAttendance(T3, false).Equal(alice))
}

func TestGradeMap_Overall(t *testing.T) {
	tests := []struct {
		name   string
		grades map[Assignment]Grade
		want   Grade
	}{
		{name: "none set", want: Unset},
		{name: "one set", grades: map[Assignment]Grade{Q2: "80.00"}, want: "80.00"},
		{name: "mean of set", grades: map[Assignment]Grade{Q1: "60.00", Q3: "90.00", Finals: "75.00"}, want: "75.00"},
		{name: "rounded", grades: map[Assignment]Grade{Q1: "100.00", Q2: "0.00", Q3: "0.00"}, want: "33.33"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gm GradeMap
			for a, g := range tt.grades {
				gm = gm.With(a, g)
			}
			assert.Equal(t, tt.want, gm.Overall())
		})
	}
}

func TestAttendMap(t *testing.T) {
	var am AttendMap
	assert.Equal(t, "0/11", am.Overall())
	assert.Equal(t, "Attended: None", am.Format())

	am = am.WithPresent(T1).WithPresent(T11).WithPresent(T1)
	assert.Equal(t, "2/11", am.Overall())
	assert.InDelta(t, 2.0/11.0, am.Rate(), 1e-9)
	assert.Equal(t, "Attended: Tutorial 1, Tutorial 11", am.Format())

	am = am.WithAbsent(T1).WithAbsent(T2)
	assert.Equal(t, "1/11", am.Overall())
}

func TestEnums(t *testing.T) {
	assert.Len(t, AllAssignments, 8)
	assert.Len(t, AllTutorialClasses, 11)
	assert.Equal(t, "Finals", Finals.String())
	assert.Equal(t, "Quiz 3", Q3.Description())
	assert.Equal(t, "t11", T11.String())
	assert.Equal(t, "Tutorial 2", T2.Description())
	assert.Equal(t, 12, TutorialGroup("TG12").Number())
}

func TestFormat(t *testing.T) {
	s := New("Alice", "98765432", "alice@example.com", "@alice", "", "tutee").
		WithGrade(Q1, "80.00").
		WithAttendance(T1, true)
	want := "Alice; Phone: 98765432; Email: alice@example.com; Handle: @alice; Tutorial Group: -; " +
		"Grades: Q1: 80.00, Q2: -, Q3: -, Q4: -, Q5: -, Q6: -, Q7: -, Finals: -; Attendance: 1/11; Tags: [tutee]"
	if diff := cmp.Diff(want, Format(s)); diff != "" {
		t.Errorf("Format() mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, FormatVerbose(s), "Overall grade: 80.00")
	assert.Contains(t, FormatVerbose(s), "Attended: Tutorial 1")
}
