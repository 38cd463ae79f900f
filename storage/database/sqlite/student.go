package sqlitedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/roster/core/student"
)

type (
	studentRow struct {
		ID            string `db:"id"`
		Position      int    `db:"position"`
		Name          string `db:"name"`
		Phone         string `db:"phone"`
		Email         string `db:"email"`
		Handle        string `db:"handle"`
		TutorialGroup string `db:"tutorial_group"`
	}

	gradeRow struct {
		StudentID  string `db:"student_id"`
		Assignment string `db:"assignment"`
		Grade      string `db:"grade"`
	}

	attendanceRow struct {
		StudentID     string `db:"student_id"`
		TutorialClass string `db:"tutorial_class"`
	}

	tagRow struct {
		StudentID string `db:"student_id"`
		Tag       string `db:"tag"`
	}
)

// studentStore keeps roster snapshots in a SQLite file.
type studentStore struct {
	db *sqlx.DB
}

var _ student.Store = (*studentStore)(nil) // interface compliance check

func NewStudentStore(db *sqlx.DB) student.Store {
	return &studentStore{db: db}
}

// Load reads the roster in order. Every value is validated again.
func (store *studentStore) Load(ctx context.Context) ([]student.Student, error) {
	var rows []studentRow
	if err := store.db.SelectContext(ctx, &rows, `SELECT * FROM students ORDER BY position`); err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	var grades []gradeRow
	if err := store.db.SelectContext(ctx, &grades, `SELECT * FROM student_grades`); err != nil {
		return nil, errors.Wrap(err, "querying grades")
	}
	var attendance []attendanceRow
	if err := store.db.SelectContext(ctx, &attendance, `SELECT * FROM student_attendance`); err != nil {
		return nil, errors.Wrap(err, "querying attendance")
	}
	var tags []tagRow
	if err := store.db.SelectContext(ctx, &tags, `SELECT * FROM student_tags ORDER BY tag`); err != nil {
		return nil, errors.Wrap(err, "querying tags")
	}

	students := make([]student.Student, 0, len(rows))
	byID := make(map[string]int, len(rows))
	for _, row := range rows {
		s, err := row.toStudent()
		if err != nil {
			return nil, errors.Wrapf(err, "student %q", row.Name)
		}
		byID[row.ID] = len(students)
		students = append(students, s)
	}

	for _, row := range grades {
		idx, ok := byID[row.StudentID]
		if !ok {
			continue
		}
		a, err := student.ParseAssignment(row.Assignment)
		if err != nil {
			return nil, errors.Wrapf(err, "grade of %q", students[idx].Name)
		}
		g, err := student.ParseGrade(row.Grade)
		if err != nil {
			return nil, errors.Wrapf(err, "grade of %q", students[idx].Name)
		}
		students[idx] = students[idx].WithGrade(a, g)
	}
	for _, row := range attendance {
		idx, ok := byID[row.StudentID]
		if !ok {
			continue
		}
		c, err := student.ParseTutorialClass(row.TutorialClass)
		if err != nil {
			return nil, errors.Wrapf(err, "attendance of %q", students[idx].Name)
		}
		students[idx] = students[idx].WithAttendance(c, true)
	}
	tagsByIdx := make(map[int][]student.Tag)
	for _, row := range tags {
		idx, ok := byID[row.StudentID]
		if !ok {
			continue
		}
		t, err := student.ParseTag(row.Tag)
		if err != nil {
			return nil, errors.Wrapf(err, "tags of %q", students[idx].Name)
		}
		tagsByIdx[idx] = append(tagsByIdx[idx], t)
	}
	for idx, t := range tagsByIdx {
		students[idx] = students[idx].WithTags(t...)
	}
	return students, nil
}

func (row studentRow) toStudent() (student.Student, error) {
	name, err := student.ParseName(row.Name)
	if err != nil {
		return student.Student{}, err
	}
	phone, err := student.ParsePhone(row.Phone)
	if err != nil {
		return student.Student{}, err
	}
	email, err := student.ParseEmail(row.Email)
	if err != nil {
		return student.Student{}, err
	}
	handle, err := student.ParseHandle(row.Handle)
	if err != nil {
		return student.Student{}, err
	}
	tg, err := student.ParseTutorialGroup(row.TutorialGroup)
	if err != nil {
		return student.Student{}, err
	}
	return student.New(name, phone, email, handle, tg), nil
}

// Save replaces the stored roster with students in a single transaction.
func (store *studentStore) Save(ctx context.Context, students []student.Student) (err error) {
	tx, err := store.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"student_tags", "student_attendance", "student_grades", "students"} {
		if _, err = tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return errors.Wrapf(err, "clearing %s", table)
		}
	}

	for pos, s := range students {
		row := studentRow{
			ID:            uuid.NewString(),
			Position:      pos,
			Name:          string(s.Name),
			Phone:         string(s.Phone),
			Email:         string(s.Email),
			Handle:        string(s.Handle),
			TutorialGroup: string(s.TutorialGroup),
		}
		if _, err = tx.NamedExecContext(ctx, `
			INSERT INTO students (id, position, name, phone, email, handle, tutorial_group)
			VALUES (:id, :position, :name, :phone, :email, :handle, :tutorial_group)`, row); err != nil {
			return errors.Wrapf(err, "inserting student %q", s.Name)
		}

		for _, a := range student.AllAssignments {
			g := s.Grades.Get(a)
			if !g.IsSet() {
				continue
			}
			gr := gradeRow{StudentID: row.ID, Assignment: a.String(), Grade: string(g)}
			if _, err = tx.NamedExecContext(ctx, `
				INSERT INTO student_grades (student_id, assignment, grade)
				VALUES (:student_id, :assignment, :grade)`, gr); err != nil {
				return errors.Wrapf(err, "inserting grades of %q", s.Name)
			}
		}
		for _, c := range student.AllTutorialClasses {
			if !s.Attendance.IsPresent(c) {
				continue
			}
			ar := attendanceRow{StudentID: row.ID, TutorialClass: c.String()}
			if _, err = tx.NamedExecContext(ctx, `
				INSERT INTO student_attendance (student_id, tutorial_class)
				VALUES (:student_id, :tutorial_class)`, ar); err != nil {
				return errors.Wrapf(err, "inserting attendance of %q", s.Name)
			}
		}
		for _, t := range s.Tags {
			tr := tagRow{StudentID: row.ID, Tag: string(t)}
			if _, err = tx.NamedExecContext(ctx, `
				INSERT INTO student_tags (student_id, tag) VALUES (:student_id, :tag)`, tr); err != nil {
				return errors.Wrapf(err, "inserting tags of %q", s.Name)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "committing roster")
	}
	return nil
}
