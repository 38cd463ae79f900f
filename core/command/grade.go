package command

import (
	"fmt"

	"github.com/trezcool/roster/core/student"
)

const (
	GradeKeyword = "grade"

	GradeUsage = GradeKeyword + ": Assigns the grade to the student identified by the index number used in the displayed student list. " +
		"Existing grade will be overwritten by the input.\n" +
		"Parameters: INDEX (must be a positive integer) g/GRADE a/ASSIGNMENT\n" +
		"Example: " + GradeKeyword + " 1 g/87.50 a/Q1"

	MsgGradeSuccess = "Graded Student: %s"
)

// Grade sets the grade of one assignment. An Unset grade clears it.
type Grade struct {
	Index      int
	Grade      student.Grade
	Assignment student.Assignment
}

func (cmd Grade) Execute(m Model) (Result, error) {
	target, err := resolve(m, cmd.Index)
	if err != nil {
		return Result{}, err
	}
	edited := target.WithGrade(cmd.Assignment, cmd.Grade)
	if err := set(m, target, edited); err != nil {
		return Result{}, err
	}
	m.ShowAll()
	return NewResult(fmt.Sprintf(MsgGradeSuccess, student.Format(edited))), nil
}
