package command

import (
	"fmt"

	"github.com/trezcool/roster/core/student"
)

const (
	FindKeyword = "find"
	SortKeyword = "sort"
	ListKeyword = "list"

	FindUsage = FindKeyword + ": Finds students by name, email, handle or tutorial group. " +
		"Keywords match case-insensitively as substrings; a student matching any keyword is listed.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]... [/v]\n" +
		"        or [n/KEYWORD [MORE_KEYWORDS]...] [e/KEYWORD [MORE_KEYWORDS]...] " +
		"[u/KEYWORD [MORE_KEYWORDS]...] [tg/TUTORIAL_GROUP]... [/v]\n" +
		"Example: " + FindKeyword + " alice bob\n" +
		"         " + FindKeyword + " n/alice tg/TG1 /v"
	SortUsage = SortKeyword + ": Sorts students in the roster by a field\n" +
		"Parameters: FIELD [ORDER] [/v]\n" +
		"Fields: name | tutorial | grade | attendance\n" +
		"Order (optional): asc | desc (default is asc)\n" +
		"Example: " + SortKeyword + " grade desc\n" +
		"         " + SortKeyword + " name"
	ListUsage = ListKeyword + ": Lists all students. Add /v for a detailed view.\n" +
		"Example: " + ListKeyword + " /v"

	MsgSortSuccess = "Students sorted by %s in %s order."
	MsgListSuccess = "Listed all students."
)

// Find filters the displayed list with Predicate.
type Find struct {
	Predicate student.KeywordPredicate
	Verbose   bool
}

func (cmd Find) Execute(m Model) (Result, error) {
	m.Filter(cmd.Predicate.Test)
	res := NewResult(fmt.Sprintf(MsgStudentsListed, len(m.Displayed())))
	res.Verbose = cmd.Verbose
	return res, nil
}

// Sort reorders the whole roster.
type Sort struct {
	Field   student.SortField
	Order   student.SortOrder
	Verbose bool
}

func (cmd Sort) Execute(m Model) (Result, error) {
	m.Sort(student.Comparator(cmd.Field, cmd.Order))
	res := NewResult(fmt.Sprintf(MsgSortSuccess, cmd.Field, cmd.Order))
	res.Verbose = cmd.Verbose
	return res, nil
}

// List shows every student.
type List struct {
	Verbose bool
}

func (cmd List) Execute(m Model) (Result, error) {
	m.ShowAll()
	res := NewResult(MsgListSuccess)
	res.Verbose = cmd.Verbose
	return res, nil
}
