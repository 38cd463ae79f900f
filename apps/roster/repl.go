package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/command"
	"github.com/trezcool/roster/core/parser"
	"github.com/trezcool/roster/core/roster"
	"github.com/trezcool/roster/core/student"
)

const prompt = "roster> "

var isTerminalFunc = term.IsTerminal // mockable

// listing lists the keywords whose result is followed by the displayed students.
var listing = map[string]bool{
	command.FindKeyword: true,
	command.ListKeyword: true,
	command.SortKeyword: true,
}

// repl reads command lines until exit or end of input.
func (cli *commandLine) repl(ctx context.Context, logic *roster.Logic) error {
	interactive := false
	if f, ok := cli.in.(*os.File); ok {
		interactive = isTerminalFunc(int(f.Fd()))
	}
	if interactive {
		fmt.Fprintf(cli.out, "Welcome to %s! Type help to see the available commands.\n", cli.conf.AppName)
	}

	for {
		if interactive {
			fmt.Fprint(cli.out, prompt)
		}
		if !cli.lines.Scan() {
			break
		}
		line := cli.lines.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		exit, err := cli.execute(ctx, logic, line)
		if err != nil {
			fmt.Fprintf(cli.out, "error: %s\n", err)
		}
		if exit {
			return nil
		}
	}
	if err := cli.lines.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	return nil
}

// execute runs line and prints the outcome. Failures meant for the user are printed
// and swallowed, any other error is returned.
func (cli *commandLine) execute(ctx context.Context, logic *roster.Logic, line string) (exit bool, err error) {
	res, err := logic.Execute(ctx, line)
	if err != nil {
		if !core.IsUserError(err) {
			if res.Feedback != "" {
				fmt.Fprintln(cli.out, res.Feedback)
			}
			return false, err
		}
		printError(cli.out, err)
		return false, nil
	}

	fmt.Fprintln(cli.out, res.Feedback)
	word, _ := parser.Split(line)
	if keyword, err := parser.MatchKeyword(word); err == nil && listing[keyword] {
		cli.printStudents(logic.Displayed(), res.Verbose)
	}
	return res.Exit, nil
}

func (cli *commandLine) printStudents(students []student.Student, verbose bool) {
	format := student.Format
	if verbose {
		format = student.FormatVerbose
	}
	for i, s := range students {
		fmt.Fprintf(cli.out, "%d. %s\n", i+1, format(s))
	}
}

// printError prints err and its hint, if any.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, err.Error())
	var cmdErr *core.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Hint != "" {
		fmt.Fprintln(w, cmdErr.Hint)
	}
}
