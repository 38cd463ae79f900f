package parser

import (
	"strings"

	"github.com/trezcool/roster/core/command"
	"github.com/trezcool/roster/core/student"
)

// ParseSort parses `[FIELD [ORDER]] [/v]`. No field sorts by name, ascending.
func ParseSort(args string) (command.Command, error) {
	args, verbose := trimVerbose(args)
	tokens := strings.Fields(args)
	if len(tokens) > 2 {
		return nil, command.InvalidFormat(command.SortUsage)
	}

	cmd := command.Sort{Field: student.SortByName, Order: student.Ascending, Verbose: verbose}
	if len(tokens) > 0 {
		field, ok := student.ParseSortField(tokens[0])
		if !ok {
			return nil, command.InvalidFormat(command.SortUsage)
		}
		cmd.Field = field
	}
	if len(tokens) > 1 {
		order, ok := student.ParseSortOrder(tokens[1])
		if !ok {
			return nil, command.InvalidFormat(command.SortUsage)
		}
		cmd.Order = order
	}
	return cmd, nil
}

// ParseList parses `[/v]`; anything else is ignored.
func ParseList(args string) command.Command {
	_, verbose := trimVerbose(args)
	return command.List{Verbose: verbose}
}
