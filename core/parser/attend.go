package parser

import (
	"strings"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/command"
	"github.com/trezcool/roster/core/student"
)

// ParseAttend parses `INDEX [MORE_INDEXES]... c/CLASS`.
func ParseAttend(args string) (command.Command, error) {
	am, class, err := parseAttendance(args, command.AttendUsage)
	if err != nil {
		return nil, err
	}
	indices, err := student.ParseIndices(am.Preamble())
	if err != nil {
		return nil, err
	}
	return command.Attend{Indices: indices, Class: class}, nil
}

// ParseUnattend parses `INDEX c/CLASS`.
func ParseUnattend(args string) (command.Command, error) {
	am, class, err := parseAttendance(args, command.UnattendUsage)
	if err != nil {
		return nil, err
	}
	if len(strings.Fields(am.Preamble())) > 1 {
		return nil, core.NewCommandError(core.KindMultipleValues, command.MsgMultipleIndexes)
	}
	index, err := student.ParseIndex(am.Preamble())
	if err != nil {
		return nil, err
	}
	return command.Unattend{Index: index, Class: class}, nil
}

// parseAttendance validates the parts shared by attend and unattend and parses the class.
func parseAttendance(args, usage string) (ArgMultimap, student.TutorialClass, error) {
	am := Tokenize(args, PrefixTutorialClass)

	if err := checkIndexAndPrefixes(am, usage, PrefixTutorialClass); err != nil {
		return am, 0, err
	}
	if err := am.VerifyNoDuplicatePrefixesFor(PrefixTutorialClass); err != nil {
		return am, 0, err
	}

	classVal, _ := am.Value(PrefixTutorialClass)
	if len(strings.Fields(classVal)) > 1 {
		return am, 0, core.NewCommandError(core.KindMultipleValues, command.MsgMultipleTutorialClasses)
	}
	class, err := student.ParseTutorialClass(classVal)
	if err != nil {
		return am, 0, err
	}
	return am, class, nil
}
