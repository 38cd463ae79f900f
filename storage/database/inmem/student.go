package inmemdb

import (
	"sort"

	"github.com/trezcool/roster/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

// indexOf returns the position of the student named like s, or -1. Callers hold the lock.
func (repo *studentRepository) indexOf(s student.Student) int {
	for i, row := range repo.db.rows {
		if row.IsSame(s) {
			return i
		}
	}
	return -1
}

func (repo *studentRepository) QueryAll() []student.Student {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := make([]student.Student, len(repo.db.rows))
	copy(students, repo.db.rows)
	return students
}

func (repo *studentRepository) Has(s student.Student) bool {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.indexOf(s) >= 0
}

func (repo *studentRepository) Add(s student.Student) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if repo.indexOf(s) >= 0 {
		return student.ErrDuplicate
	}
	repo.db.rows = append(repo.db.rows, s)
	return nil
}

func (repo *studentRepository) Replace(target, edited student.Student) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	idx := repo.indexOf(target)
	if idx < 0 {
		return student.ErrNotFound
	}
	if !target.IsSame(edited) && repo.indexOf(edited) >= 0 {
		return student.ErrDuplicate
	}
	repo.db.rows[idx] = edited
	return nil
}

func (repo *studentRepository) Remove(s student.Student) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	idx := repo.indexOf(s)
	if idx < 0 {
		return student.ErrNotFound
	}
	repo.db.rows = append(repo.db.rows[:idx], repo.db.rows[idx+1:]...)
	return nil
}

func (repo *studentRepository) SortStable(less student.Less) {
	repo.db.Lock()
	defer repo.db.Unlock()

	rows := repo.db.rows
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}

func (repo *studentRepository) Reset(students []student.Student) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	rows := make([]student.Student, 0, len(students))
	seen := make(map[student.Name]bool, len(students))
	for _, s := range students {
		if seen[s.Name] {
			return student.ErrDuplicate
		}
		seen[s.Name] = true
		rows = append(rows, s)
	}
	repo.db.rows = rows
	return nil
}
