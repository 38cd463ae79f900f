package command

import (
	"fmt"
	"strings"

	"github.com/trezcool/roster/core/student"
)

const (
	AttendKeyword   = "attend"
	UnattendKeyword = "unattend"

	AttendUsage = AttendKeyword + ": Marks the attendance of the given tutorial class for the students identified by " +
		"the index numbers used in the displayed student list.\n" +
		"Parameters: INDEX [MORE_INDEXES]... (must be positive integers) c/TUTORIAL_CLASS\n" +
		"The tutorial class must be one of the following: [t1, t2, t3, t4, t5, t6, t7, t8, t9, t10, t11].\n" +
		"Example: " + AttendKeyword + " 1 2 c/t1"
	UnattendUsage = UnattendKeyword + ": Unmarks the attendance of the given tutorial class of the student identified by " +
		"the index number used in the displayed student list.\n" +
		"Parameters: INDEX (must be a positive integer) c/TUTORIAL_CLASS\n" +
		"The tutorial class must be one of the following: [t1, t2, t3, t4, t5, t6, t7, t8, t9, t10, t11].\n" +
		"Example: " + UnattendKeyword + " 1 c/t1"

	MsgAttendSuccess   = "Attendance marked: %s"
	MsgUnattendSuccess = "Attendance unmarked: %s"
)

// Attend marks the students at Indices present for Class.
// Indices are applied in order and a failure leaves the earlier ones applied.
type Attend struct {
	Indices []int
	Class   student.TutorialClass
}

func (cmd Attend) Execute(m Model) (Result, error) {
	// resolve every index against the list displayed before the first update
	targets := make([]student.Student, 0, len(cmd.Indices))
	for _, idx := range cmd.Indices {
		target, err := resolve(m, idx)
		if err != nil {
			return Result{}, err
		}
		targets = append(targets, target)
	}

	marked := make([]string, 0, len(targets))
	for _, target := range targets {
		edited := target.WithAttendance(cmd.Class, true)
		if err := set(m, target, edited); err != nil {
			m.ShowAll()
			return Result{}, err
		}
		marked = append(marked, student.Format(edited))
	}
	m.ShowAll()
	return NewResult(fmt.Sprintf(MsgAttendSuccess, strings.Join(marked, "\n"))), nil
}

// Unattend marks the student at Index absent for Class.
type Unattend struct {
	Index int
	Class student.TutorialClass
}

func (cmd Unattend) Execute(m Model) (Result, error) {
	target, err := resolve(m, cmd.Index)
	if err != nil {
		return Result{}, err
	}
	edited := target.WithAttendance(cmd.Class, false)
	if err := set(m, target, edited); err != nil {
		return Result{}, err
	}
	m.ShowAll()
	return NewResult(fmt.Sprintf(MsgUnattendSuccess, student.Format(edited))), nil
}
