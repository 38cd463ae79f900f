package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/command"
	logsvc "github.com/trezcool/roster/services/logger"
)

const addAlice = "add n/Alice Pauline p/94351253 e/alice@example.com u/@alice tg/TG1"

func setup(t *testing.T, input string) (*commandLine, *bytes.Buffer) {
	t.Helper()
	v, err := core.NewViper()
	require.NoError(t, err)
	out := new(bytes.Buffer)
	return &commandLine{
		in:  strings.NewReader(input),
		out: out,
		v:   v,
		log: logsvc.NewZapLogger(zap.NewNop()),
	}, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErrStr string
	want       []string // substrings of the output
}

func runCLITests(t *testing.T, tests []cliTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t, "")
			err := cli.run(tt.args)
			if tt.wantErrStr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErrStr) {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			} else if err != nil {
				t.Errorf("cli.run() unexpected error = %v", err)
			}
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func Test_commandLine_exec(t *testing.T) {
	runCLITests(t, []cliTest{
		{name: "no lines", args: []string{"exec", "--data", "-"}, wantErrStr: "requires at least 1 arg(s)"},
		{name: "stray argument", args: []string{"lol", "--data", "-"}, wantErrStr: `unknown command "lol"`},
		{
			name: "add then list",
			args: []string{"exec", "--data", "-", addAlice, "list"},
			want: []string{"New student added: Alice Pauline", command.MsgListSuccess, "1. Alice Pauline; Phone: 94351253"},
		},
		{
			name: "user errors are printed",
			args: []string{"exec", "--data", "-", "delete 1", "lsit"},
			want: []string{command.MsgInvalidDisplayedIndex, command.MsgUnknownCommand, "Did you mean"},
		},
		{
			name: "stops at exit",
			args: []string{"exec", "--data", "-", "exit", addAlice},
			want: []string{command.MsgExit},
		},
		{
			name: "verbose list",
			args: []string{"exec", "--data", "-", addAlice, "list /v"},
			want: []string{"Attended: None"},
		},
	})
}

func Test_commandLine_exec_persists(t *testing.T) {
	data := filepath.Join(t.TempDir(), "roster.db")

	cli, _ := setup(t, "")
	require.NoError(t, cli.run([]string{"exec", "--data", data, addAlice, "grade 1 a/Q1 g/80", "attend 1 c/t3"}))

	cli, out := setup(t, "")
	require.NoError(t, cli.run([]string{"exec", "--data", data, "list"}))
	assert.Contains(t, out.String(), "Q1: 80.00")
	assert.Contains(t, out.String(), "Attendance: 1/11")

	cli, out = setup(t, "")
	require.NoError(t, cli.run([]string{"exec", "--data", data, "--yes", "clear", "list"}))
	assert.Contains(t, out.String(), command.MsgClearSuccess)
	assert.NotContains(t, out.String(), "1. Alice")
}

func Test_commandLine_repl(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		notWant []string
	}{
		{
			name:  "session",
			input: addAlice + "\n\nlsit\nlist\nexit\nlist\n",
			want:  []string{"New student added", "Did you mean", command.MsgListSuccess, command.MsgExit},
		},
		{
			name:    "clear confirmed",
			input:   addAlice + "\nclear\ny\nlist\n",
			want:    []string{command.MsgClearPrompt + " [y/N]", command.MsgClearSuccess},
			notWant: []string{"1. Alice"},
		},
		{
			name:  "clear declined",
			input: addAlice + "\nclear\nnope\nlist\n",
			want:  []string{command.MsgClearCancelled, "1. Alice"},
		},
		{
			name:  "clear at end of input",
			input: addAlice + "\nclear",
			want:  []string{command.MsgClearCancelled},
		},
		{
			name:  "help",
			input: "help\n",
			want:  []string{command.MsgHelp, "  " + command.AttendKeyword + ":"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t, tt.input)
			require.NoError(t, cli.run([]string{"--data", "-"}))
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, out.String(), notWant)
			}
			assert.NotContains(t, out.String(), prompt)
		})
	}

	t.Run("nothing runs after exit", func(t *testing.T) {
		cli, out := setup(t, "list\nexit\nlist\n")
		require.NoError(t, cli.run([]string{"--data", "-"}))
		assert.Equal(t, 1, strings.Count(out.String(), command.MsgListSuccess))
	})
}

func Test_commandLine_migrate(t *testing.T) {
	orig := runMigrationFunc
	defer func() { runMigrationFunc = orig }()
	runMigrationFunc = func(_ context.Context, _ *sqlx.DB, command string, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to", "down-to":
			if len(args) == 0 {
				return fmt.Errorf("%s must be of form: goose [OPTIONS] DRIVER DBSTRING %s VERSION", command, command)
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	data := filepath.Join(t.TempDir(), "roster.db")
	migrate := func(args ...string) []string {
		return append([]string{"migrate", "--data", data}, args...)
	}
	runCLITests(t, []cliTest{
		{name: "no subcommand", args: migrate(), wantErrStr: "requires at least 1 arg(s)"},
		{name: "memory only", args: []string{"migrate", "--data", "-", "up"}, wantErrStr: "no data file configured"},
		{name: "unknown subcommand", args: migrate("lol"), wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: migrate("up-to"), wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: migrate("up-to", "lol"), wantErrStr: "version must be a number (got 'lol')"},
		{name: "down-to: no args", args: migrate("down-to"), wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "up", args: migrate("up")},
		{name: "up-by-one", args: migrate("up-by-one")},
		{name: "up-to", args: migrate("up-to", "1")},
		{name: "down", args: migrate("down")},
		{name: "down-to", args: migrate("down-to", "0")},
		{name: "redo", args: migrate("redo")},
		{name: "reset", args: migrate("reset")},
		{name: "status", args: migrate("status")},
		{name: "version", args: migrate("version")},
		{name: "fix", args: migrate("fix")},
	})
}
