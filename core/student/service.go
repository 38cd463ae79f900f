package student

import (
	"context"
	"errors"
)

var (
	// errors
	ErrNotFound  = errors.New("student not found")
	ErrDuplicate = errors.New("a student with this name already exists")
)

// Predicate selects the students shown to the user.
type Predicate func(Student) bool

// ShowAll is the Predicate of the unfiltered roster.
func ShowAll(Student) bool { return true }

type (
	// Repository is the ordered in-memory roster. Students are unique by name.
	Repository interface {
		QueryAll() []Student
		Has(s Student) bool
		Add(s Student) error
		// Replace swaps target for edited in place. edited must not clash with another student.
		Replace(target, edited Student) error
		Remove(s Student) error
		// SortStable reorders the roster, keeping the relative order of equal students.
		SortStable(less Less)
		// Reset replaces the whole roster.
		Reset(students []Student) error
	}

	// Store persists roster snapshots.
	Store interface {
		Load(ctx context.Context) ([]Student, error)
		Save(ctx context.Context, students []Student) error
	}

	// Service exposes the roster through a filtered view. Indices given by the user
	// are resolved against Displayed.
	Service struct {
		repo   Repository
		filter Predicate
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo, filter: ShowAll}
}

// Displayed returns the students matching the current filter, in roster order.
func (svc *Service) Displayed() []Student {
	all := svc.repo.QueryAll()
	shown := make([]Student, 0, len(all))
	for _, s := range all {
		if svc.filter(s) {
			shown = append(shown, s)
		}
	}
	return shown
}

// Get resolves a 1-based index against the displayed list.
func (svc *Service) Get(index int) (Student, error) {
	shown := svc.Displayed()
	if index < 1 || index > len(shown) {
		return Student{}, ErrNotFound
	}
	return shown[index-1], nil
}

func (svc *Service) Has(s Student) bool {
	return svc.repo.Has(s)
}

func (svc *Service) Add(s Student) error {
	return svc.repo.Add(s)
}

func (svc *Service) Set(target, edited Student) error {
	return svc.repo.Replace(target, edited)
}

func (svc *Service) Delete(s Student) error {
	return svc.repo.Remove(s)
}

// Filter narrows the displayed list to students matching pred.
func (svc *Service) Filter(pred Predicate) {
	if pred == nil {
		pred = ShowAll
	}
	svc.filter = pred
}

// ShowAll removes any filter.
func (svc *Service) ShowAll() {
	svc.filter = ShowAll
}

// Sort reorders the underlying roster, not only the displayed list.
func (svc *Service) Sort(less Less) {
	svc.repo.SortStable(less)
}

// Clear removes every student.
func (svc *Service) Clear() error {
	return svc.repo.Reset(nil)
}

// Reset replaces the roster with students, eg. after loading them from a Store.
func (svc *Service) Reset(students []Student) error {
	return svc.repo.Reset(students)
}

// Snapshot returns the whole roster in order, ignoring the filter.
func (svc *Service) Snapshot() []Student {
	return svc.repo.QueryAll()
}
