package inmemdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/roster/core/student"
)

func newStudent(name student.Name, tg student.TutorialGroup) student.Student {
	return student.New(name, "98765432", student.Email("x@example.com"), student.Handle("@x"), tg)
}

func names(students []student.Student) []student.Name {
	var out []student.Name
	for _, s := range students {
		out = append(out, s.Name)
	}
	return out
}

func setup(t *testing.T, students ...student.Student) *student.Service {
	t.Helper()
	svc := student.NewService(NewStudentRepository(Open()))
	require.NoError(t, svc.Reset(students))
	return svc
}

func TestStudentRepository_AddRejectsDuplicateName(t *testing.T) {
	svc := setup(t, newStudent("Alice", "TG1"))

	err := svc.Add(newStudent("Alice", "TG2"))
	assert.Equal(t, student.ErrDuplicate, err)
	assert.NoError(t, svc.Add(newStudent("Bob", "TG2")))
	assert.Equal(t, []student.Name{"Alice", "Bob"}, names(svc.Snapshot()))
}

func TestStudentRepository_Replace(t *testing.T) {
	alice, bob := newStudent("Alice", "TG1"), newStudent("Bob", "TG1")
	svc := setup(t, alice, bob)

	tests := []struct {
		name    string
		target  student.Student
		edited  student.Student
		wantErr error
	}{
		{name: "same name", target: alice, edited: alice.WithGrade(student.Q1, "50.00")},
		{name: "rename", target: bob, edited: newStudent("Robert", "TG1")},
		{name: "clash", target: alice, edited: newStudent("Robert", "TG2"), wantErr: student.ErrDuplicate},
		{name: "missing", target: newStudent("Nobody", ""), edited: newStudent("Nobody", "TG1"), wantErr: student.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Set(tt.target, tt.edited); err != tt.wantErr {
				t.Errorf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
	assert.Equal(t, []student.Name{"Alice", "Robert"}, names(svc.Snapshot()))
	assert.Equal(t, student.Grade("50.00"), svc.Snapshot()[0].Grades.Get(student.Q1))
}

func TestStudentRepository_Remove(t *testing.T) {
	alice, bob := newStudent("Alice", "TG1"), newStudent("Bob", "TG1")
	svc := setup(t, alice, bob)

	assert.NoError(t, svc.Delete(alice))
	assert.Equal(t, student.ErrNotFound, svc.Delete(alice))
	assert.Equal(t, []student.Name{"Bob"}, names(svc.Snapshot()))
}

func TestStudentRepository_ResetRejectsDuplicates(t *testing.T) {
	svc := setup(t, newStudent("Alice", "TG1"))
	err := svc.Reset([]student.Student{newStudent("Bob", ""), newStudent("Bob", "TG1")})
	assert.Equal(t, student.ErrDuplicate, err)
	assert.Equal(t, []student.Name{"Alice"}, names(svc.Snapshot()))
}

func TestService_FilterKeepsRosterOrder(t *testing.T) {
	svc := setup(t,
		newStudent("Alice", "TG1"),
		newStudent("Bob", "TG2"),
		newStudent("Carl", "TG1"),
	)

	svc.Filter(student.KeywordPredicate{TutorialGroups: []string{"TG1"}}.Test)
	assert.Equal(t, []student.Name{"Alice", "Carl"}, names(svc.Displayed()))

	second, err := svc.Get(2)
	assert.NoError(t, err)
	assert.Equal(t, student.Name("Carl"), second.Name)
	_, err = svc.Get(3)
	assert.Equal(t, student.ErrNotFound, err)
	_, err = svc.Get(0)
	assert.Equal(t, student.ErrNotFound, err)

	svc.ShowAll()
	assert.Len(t, svc.Displayed(), 3)
}

func TestService_SortIsStableAndReordersRoster(t *testing.T) {
	svc := setup(t,
		newStudent("Carl", "TG1").WithGrade(student.Q1, "60.00"),
		newStudent("Alice", "TG1").WithGrade(student.Q1, "90.00"),
		newStudent("Bob", "TG1").WithGrade(student.Q1, "75.00"),
		newStudent("Dan", "TG2").WithGrade(student.Q1, "75.00"),
	)
	svc.Filter(student.KeywordPredicate{TutorialGroups: []string{"TG1"}}.Test)

	svc.Sort(student.Comparator(student.SortByGrade, student.Descending))
	assert.Equal(t, []student.Name{"Alice", "Bob", "Dan", "Carl"}, names(svc.Snapshot()))
	assert.Equal(t, []student.Name{"Alice", "Bob", "Carl"}, names(svc.Displayed()))

	prev := 101.0
	for _, s := range svc.Snapshot() {
		v := s.OverallGrade().Value()
		assert.LessOrEqual(t, v, prev)
		prev = v
	}
}

func TestService_SortEmpty(t *testing.T) {
	svc := setup(t)
	assert.NotPanics(t, func() { svc.Sort(student.Comparator(student.SortByGrade, student.Descending)) })
	assert.Empty(t, svc.Displayed())
}

func TestService_Clear(t *testing.T) {
	svc := setup(t, newStudent("Alice", "TG1"))
	assert.NoError(t, svc.Clear())
	assert.Empty(t, svc.Snapshot())
}
