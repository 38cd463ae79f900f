// Package dummydb holds roster snapshots in memory only. It backs sessions run without a data file.
package dummydb

import (
	"context"
	"sync"

	"github.com/trezcool/roster/core/student"
)

type studentStore struct {
	sync.RWMutex
	saved []student.Student
}

var _ student.Store = (*studentStore)(nil) // interface compliance check

func NewStudentStore(students ...student.Student) student.Store {
	return &studentStore{saved: copyStudents(students)}
}

func (store *studentStore) Load(context.Context) ([]student.Student, error) {
	store.RLock()
	defer store.RUnlock()
	return copyStudents(store.saved), nil
}

func (store *studentStore) Save(_ context.Context, students []student.Student) error {
	store.Lock()
	defer store.Unlock()
	store.saved = copyStudents(students)
	return nil
}

func copyStudents(students []student.Student) []student.Student {
	if len(students) == 0 {
		return nil
	}
	return append([]student.Student(nil), students...)
}
