// Package command holds the executable commands of the roster.
package command

import (
	"fmt"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/student"
)

// user visible messages
const (
	MsgUnknownCommand          = "Unknown command"
	MsgInvalidCommandFormat    = "Invalid command format! \n%s"
	MsgMissingIndex            = "Missing index (must be a non-zero positive integer)"
	MsgMissingPrefixes         = "The following required field(s) are missing prefixes: %s"
	MsgMissingIndexAndPrefixes = "Missing index and required prefix(es): %s"
	MsgMissingCompulsoryFields = "Missing compulsory fields: "
	MsgDuplicateFields         = "The following prefix(es) can only be used once: "
	MsgMultipleIndexes         = "Only one index should be specified."
	MsgMultipleTutorialClasses = "Only one tutorial class should be specified."
	MsgInvalidDisplayedIndex   = "The student index provided is invalid"
	MsgStudentsListed          = "%d students listed!"
	MsgDuplicateStudent        = "This student already exists in the roster."
)

type (
	// Model is the roster a command operates on.
	Model interface {
		Displayed() []student.Student
		Get(index int) (student.Student, error)
		Has(s student.Student) bool
		Add(s student.Student) error
		Set(target, edited student.Student) error
		Delete(s student.Student) error
		Filter(pred student.Predicate)
		ShowAll()
		Sort(less student.Less)
		Clear() error
	}

	// Command is a parsed, validated command ready to run.
	Command interface {
		Execute(m Model) (Result, error)
	}

	// Result is what the user sees after a command ran.
	Result struct {
		Feedback string
		Exit     bool
		ShowHelp bool
		Verbose  bool
	}
)

func NewResult(feedback string) Result {
	return Result{Feedback: feedback}
}

// InvalidFormat returns the InvalidFormat error for a command's usage.
func InvalidFormat(usage string) error {
	return core.NewCommandError(core.KindInvalidFormat, fmt.Sprintf(MsgInvalidCommandFormat, usage))
}

// Usage returns the usage text of the named command keyword.
func Usage(keyword string) string {
	return usages[keyword]
}

var usages = map[string]string{
	AddKeyword:      AddUsage,
	EditKeyword:     EditUsage,
	DeleteKeyword:   DeleteUsage,
	ClearKeyword:    ClearUsage,
	FindKeyword:     FindUsage,
	ListKeyword:     ListUsage,
	ExitKeyword:     ExitUsage,
	HelpKeyword:     HelpUsage,
	GradeKeyword:    GradeUsage,
	AttendKeyword:   AttendUsage,
	UnattendKeyword: UnattendUsage,
	SortKeyword:     SortUsage,
}

// resolve returns the displayed student at the 1-based index.
func resolve(m Model, index int) (student.Student, error) {
	s, err := m.Get(index)
	if err != nil {
		return student.Student{}, core.NewCommandError(core.KindIndexOutOfRange, MsgInvalidDisplayedIndex)
	}
	return s, nil
}

// set replaces target by edited, reporting a clash with another student.
func set(m Model, target, edited student.Student) error {
	if !target.IsSame(edited) && m.Has(edited) {
		return core.NewCommandError(core.KindDuplicateRecord, MsgDuplicateStudent)
	}
	if err := m.Set(target, edited); err != nil {
		if err == student.ErrDuplicate {
			return core.NewCommandError(core.KindDuplicateRecord, MsgDuplicateStudent)
		}
		return err
	}
	return nil
}
