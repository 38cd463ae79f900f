package student

import (
	"fmt"
	"strings"
)

// Assignment is a graded piece of work. The set is closed.
type Assignment int

const (
	Q1 Assignment = iota
	Q2
	Q3
	Q4
	Q5
	Q6
	Q7
	Finals

	assignmentCount = int(Finals) + 1
)

var (
	// AllAssignments lists every Assignment in declaration order.
	AllAssignments = []Assignment{Q1, Q2, Q3, Q4, Q5, Q6, Q7, Finals}

	assignmentNames = [assignmentCount]string{"Q1", "Q2", "Q3", "Q4", "Q5", "Q6", "Q7", "Finals"}
	assignmentDescs = [assignmentCount]string{"Quiz 1", "Quiz 2", "Quiz 3", "Quiz 4", "Quiz 5", "Quiz 6", "Quiz 7", "Finals"}
)

func (a Assignment) valid() bool { return a >= Q1 && a <= Finals }

func (a Assignment) String() string {
	if !a.valid() {
		return fmt.Sprintf("Assignment(%d)", int(a))
	}
	return assignmentNames[a]
}

// Description returns a user friendly name, eg. "Quiz 1".
func (a Assignment) Description() string {
	if !a.valid() {
		return ""
	}
	return assignmentDescs[a]
}

// lookupAssignment matches s case-insensitively against the assignment names.
func lookupAssignment(s string) (Assignment, bool) {
	for _, a := range AllAssignments {
		if strings.EqualFold(a.String(), s) {
			return a, true
		}
	}
	return 0, false
}

func assignmentList() string {
	return "[" + strings.Join(assignmentNames[:], ", ") + "]"
}
