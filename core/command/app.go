package command

import "strings"

const (
	ClearKeyword = "clear"
	HelpKeyword  = "help"
	ExitKeyword  = "exit"

	ClearUsage = ClearKeyword + ": Removes every student from the roster after confirmation."
	HelpUsage  = HelpKeyword + ": Shows program usage instructions."
	ExitUsage  = ExitKeyword + ": Exits the program."

	MsgClearSuccess   = "Roster has been cleared!"
	MsgClearCancelled = "Clear command cancelled."
	MsgClearPrompt    = "This will delete every student. Are you sure?"
	MsgHelp           = "Available commands:"
	MsgExit           = "Exiting roster as requested ..."
)

// Keywords lists every command keyword in the order they are matched.
var Keywords = []string{
	AddKeyword, EditKeyword, DeleteKeyword, ClearKeyword, FindKeyword, ListKeyword,
	ExitKeyword, HelpKeyword, GradeKeyword, AttendKeyword, UnattendKeyword, SortKeyword,
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) bool

// Clear removes every student once Confirm agrees. A nil Confirm never agrees.
type Clear struct {
	Confirm ConfirmFunc
}

func (cmd Clear) Execute(m Model) (Result, error) {
	if cmd.Confirm == nil || !cmd.Confirm(MsgClearPrompt) {
		return NewResult(MsgClearCancelled), nil
	}
	if err := m.Clear(); err != nil {
		return Result{}, err
	}
	m.ShowAll()
	return NewResult(MsgClearSuccess), nil
}

// Help shows the summary of every command.
type Help struct{}

func (Help) Execute(Model) (Result, error) {
	lines := make([]string, 0, len(Keywords)+1)
	lines = append(lines, MsgHelp)
	for _, kw := range Keywords {
		lines = append(lines, "  "+strings.SplitN(Usage(kw), "\n", 2)[0])
	}
	return Result{Feedback: strings.Join(lines, "\n"), ShowHelp: true}, nil
}

// Exit ends the session.
type Exit struct{}

func (Exit) Execute(Model) (Result, error) {
	return Result{Feedback: MsgExit, Exit: true}, nil
}
