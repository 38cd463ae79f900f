package inmemdb

import (
	"sync"

	"github.com/trezcool/roster/core/student"
)

type (
	DB struct {
		student *studentTable
	}

	// studentTable keeps students in roster order.
	studentTable struct {
		sync.RWMutex
		rows []student.Student
	}
)

func Open() *DB {
	return &DB{student: &studentTable{}}
}
