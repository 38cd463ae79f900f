package parser

import (
	"fmt"
	"strings"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/command"
	"github.com/trezcool/roster/core/student"
)

const msgEmptyKeyword = "Keyword after %s should not be empty."

// ParseFind parses `[KEYWORD]... [n/KEYWORDS] [e/KEYWORDS] [u/KEYWORDS] [tg/GROUP]... [/v]`.
// Without any prefixed keyword the whole input is a list of name keywords,
// otherwise the preamble is ignored.
func ParseFind(args string) (command.Command, error) {
	args, verbose := trimVerbose(args)
	if args == "" {
		return nil, command.InvalidFormat(command.FindUsage)
	}

	am := Tokenize(args, PrefixName, PrefixEmail, PrefixHandle, PrefixTutorialGroup)
	var pred student.KeywordPredicate

	for _, p := range []Prefix{PrefixName, PrefixEmail, PrefixHandle, PrefixTutorialGroup} {
		for _, v := range am.AllValues(p) {
			if v == "" {
				return nil, withUsage(core.KindEmptyKeyword, fmt.Sprintf(msgEmptyKeyword, p), command.FindUsage)
			}
			switch p {
			case PrefixName:
				pred.Names = append(pred.Names, strings.Fields(v)...)
			case PrefixEmail:
				pred.Emails = append(pred.Emails, strings.Fields(v)...)
			case PrefixHandle:
				pred.Handles = append(pred.Handles, strings.Fields(v)...)
			case PrefixTutorialGroup:
				pred.TutorialGroups = append(pred.TutorialGroups, v)
			}
		}
	}

	if pred.IsEmpty() {
		pred.Names = strings.Fields(am.Preamble())
	}
	if pred.IsEmpty() {
		return nil, command.InvalidFormat(command.FindUsage)
	}
	return command.Find{Predicate: pred, Verbose: verbose}, nil
}
