package testutil

import (
	"testing"

	"github.com/trezcool/roster/core/student"
	"github.com/trezcool/roster/storage/database/inmem"
)

// NewStudent returns a valid student named name in tutorial group tg.
func NewStudent(name student.Name, tg student.TutorialGroup, tags ...student.Tag) student.Student {
	return student.New(name, "98765432", "x@example.com", "@x", tg, tags...)
}

// PrepareService returns a service over an in-memory roster holding students.
func PrepareService(t *testing.T, students ...student.Student) *student.Service {
	t.Helper()
	svc := student.NewService(inmemdb.NewStudentRepository(inmemdb.Open()))
	if err := svc.Reset(students); err != nil {
		t.Fatalf("PrepareService() failed: %v", err)
	}
	return svc
}

// CreateStudent adds a new student to svc.
func CreateStudent(t *testing.T, svc *student.Service, name student.Name, tg student.TutorialGroup, tags ...student.Tag) student.Student {
	t.Helper()
	s := NewStudent(name, tg, tags...)
	if err := svc.Add(s); err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return s
}
