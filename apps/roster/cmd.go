package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/roster"
	"github.com/trezcool/roster/core/student"
	logsvc "github.com/trezcool/roster/services/logger"
	"github.com/trezcool/roster/storage/database"
	"github.com/trezcool/roster/storage/database/dummy"
	"github.com/trezcool/roster/storage/database/inmem"
	"github.com/trezcool/roster/storage/database/sqlite"
)

// memoryOnly is the data file value for sessions that keep nothing on disk.
const memoryOnly = "-"

type commandLine struct {
	in  io.Reader
	out io.Writer

	v       *viper.Viper
	conf    *core.Config
	log     core.Logger
	verbose bool
	yes     bool

	db      *sqlx.DB
	lines   *bufio.Scanner
	cleanup []func()
}

func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	root.SetArgs(args)
	defer cli.close()
	return root.Execute()
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "roster",
		Short:         "Keep track of the students of your tutorial groups",
		Long:          "roster manages students, their grades and their tutorial attendance from the command line.\nRun without a subcommand to start an interactive session.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cli.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			logic, err := cli.newLogic(cmd.Context())
			if err != nil {
				return err
			}
			return cli.repl(cmd.Context(), logic)
		},
	}
	root.SetIn(cli.in)
	root.SetOut(cli.out)

	flags := root.PersistentFlags()
	flags.String("data", "", `SQLite data file (defaults to ROSTER_DATAFILE, then roster.db); "-" keeps the roster in memory`)
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.BoolVarP(&cli.verbose, "verbose", "v", false, "log debug output")
	flags.BoolVarP(&cli.yes, "yes", "y", false, "answer yes to every confirmation")

	root.AddCommand(cli.execCmd(), cli.migrateCmd())
	return root
}

func (cli *commandLine) execCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec LINE...",
		Short: "Run each argument as a command line",
		Example: `  roster exec "add n/John Doe p/98765432 e/johnd@example.com u/@johndoe tg/TG1" "list"
  roster exec "attend 1 2 c/t1"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logic, err := cli.newLogic(cmd.Context())
			if err != nil {
				return err
			}
			for _, line := range args {
				exit, err := cli.execute(cmd.Context(), logic, line)
				if err != nil {
					return err
				}
				if exit {
					break
				}
			}
			return nil
		},
	}
}

// setup loads the configuration and starts the logger.
func (cli *commandLine) setup(cmd *cobra.Command) error {
	if cli.v == nil {
		v, err := core.NewViper()
		if err != nil {
			return err
		}
		cli.v = v
	}
	flags := cmd.Flags()
	if err := cli.v.BindPFlag("dataFile", flags.Lookup("data")); err != nil {
		return errors.Wrap(err, "binding --data")
	}
	if err := cli.v.BindPFlag("logLevel", flags.Lookup("log-level")); err != nil {
		return errors.Wrap(err, "binding --log-level")
	}
	cli.conf = core.LoadConfig(cli.v)

	if cli.log == nil {
		zconf, err := logsvc.NewZapConfig(cli.conf.LogLevel, cli.verbose)
		if err != nil {
			return err
		}
		zl, err := zconf.Build()
		if err != nil {
			return errors.Wrap(err, "building logger")
		}
		local := logsvc.NewZapLogger(zl)
		rb := logsvc.NewRollbarLogger(local, cli.conf)
		cli.cleanup = append(cli.cleanup, func() { _ = local.Sync() }, rb.Close)
		cli.log = rb
	}
	cli.lines = bufio.NewScanner(cmd.InOrStdin())
	return nil
}

func (cli *commandLine) close() {
	if cli.db != nil {
		_ = cli.db.Close()
		cli.db = nil
	}
	for i := len(cli.cleanup) - 1; i >= 0; i-- {
		cli.cleanup[i]()
	}
	cli.cleanup = nil
}

// openDB opens and migrates the configured data file.
func (cli *commandLine) openDB() (*sqlx.DB, error) {
	if cli.db != nil {
		return cli.db, nil
	}
	if cli.conf.DataFile == memoryOnly {
		return nil, errors.New("no data file configured")
	}
	db, err := database.Open(cli.conf.DataFile)
	if err != nil {
		return nil, err
	}
	database.SetMigrationLogger(cli.log)
	cli.db = db
	return db, nil
}

// newStore returns the store backing this session. "-" keeps the roster in memory only.
func (cli *commandLine) newStore(ctx context.Context) (student.Store, error) {
	if cli.conf.DataFile == memoryOnly {
		return dummydb.NewStudentStore(), nil
	}
	db, err := cli.openDB()
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		return nil, err
	}
	return sqlitedb.NewStudentStore(db), nil
}

func (cli *commandLine) newLogic(ctx context.Context) (*roster.Logic, error) {
	store, err := cli.newStore(ctx)
	if err != nil {
		return nil, err
	}
	svc := student.NewService(inmemdb.NewStudentRepository(inmemdb.Open()))
	logic := roster.NewLogic(svc, store, cli.log, cli.confirm)
	if err := logic.Load(ctx); err != nil {
		return nil, err
	}
	return logic, nil
}

// confirm asks prompt on the output and reads the answer from the input. Anything but y or yes declines.
func (cli *commandLine) confirm(prompt string) bool {
	if cli.yes {
		return true
	}
	fmt.Fprintf(cli.out, "%s [y/N] ", prompt)
	if !cli.lines.Scan() {
		fmt.Fprintln(cli.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(cli.lines.Text())) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
