package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/command"
)

// Parser turns command lines into commands.
type Parser struct {
	// Confirm is handed to commands that need the user's agreement, eg. clear.
	Confirm command.ConfirmFunc
}

func New(confirm command.ConfirmFunc) *Parser {
	return &Parser{Confirm: confirm}
}

// Split returns the first word of line and the rest of it, untrimmed.
func Split(line string) (word, args string) {
	line = strings.TrimSpace(line)
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return line, ""
	}
	return line[:idx], line[idx:]
}

// ParseCommand resolves the command word of line, possibly misspelled by one
// character, and parses its arguments.
func (p *Parser) ParseCommand(line string) (command.Command, error) {
	word, args := Split(line)
	if word == "" {
		return nil, command.InvalidFormat(command.HelpUsage)
	}
	keyword, err := MatchKeyword(word)
	if err != nil {
		return nil, err
	}
	return p.parse(keyword, args)
}

func (p *Parser) parse(keyword, args string) (command.Command, error) {
	switch keyword {
	case command.AddKeyword:
		return ParseAdd(args)
	case command.EditKeyword:
		return ParseEdit(args)
	case command.DeleteKeyword:
		return ParseDelete(args)
	case command.ClearKeyword:
		return command.Clear{Confirm: p.Confirm}, nil
	case command.FindKeyword:
		return ParseFind(args)
	case command.ListKeyword:
		return ParseList(args), nil
	case command.ExitKeyword:
		return command.Exit{}, nil
	case command.HelpKeyword:
		return command.Help{}, nil
	case command.GradeKeyword:
		return ParseGrade(args)
	case command.AttendKeyword:
		return ParseAttend(args)
	case command.UnattendKeyword:
		return ParseUnattend(args)
	case command.SortKeyword:
		return ParseSort(args)
	}
	return nil, unknownCommand(keyword)
}

// withUsage prefixes the invalid format message of usage with diagnostic.
func withUsage(kind core.ErrorKind, diagnostic, usage string) error {
	return core.NewCommandError(kind, diagnostic+"\n\n"+fmt.Sprintf(command.MsgInvalidCommandFormat, usage))
}

// checkIndexAndPrefixes reports an empty preamble and missing prefixes as three distinct errors.
func checkIndexAndPrefixes(am ArgMultimap, usage string, required ...Prefix) error {
	var missing []string
	for _, p := range required {
		if !am.Has(p) {
			missing = append(missing, p.String())
		}
	}
	noIndex := am.Preamble() == ""

	switch {
	case noIndex && len(missing) > 0:
		return withUsage(core.KindMissingIndexAndPrefixes,
			fmt.Sprintf(command.MsgMissingIndexAndPrefixes, strings.Join(missing, " ")), usage)
	case noIndex:
		return withUsage(core.KindEmptyIndex, command.MsgMissingIndex, usage)
	case len(missing) > 0:
		return withUsage(core.KindMissingPrefixes,
			fmt.Sprintf(command.MsgMissingPrefixes, strings.Join(missing, " ")), usage)
	}
	return nil
}

// trimVerbose strips a trailing verbose suffix, standing as its own word, from args.
func trimVerbose(args string) (string, bool) {
	args = strings.TrimSpace(args)
	rest := strings.TrimSuffix(args, VerboseSuffix)
	if rest == args || !atFieldStart(rest, len(rest)) {
		return args, false
	}
	return strings.TrimSpace(rest), true
}
