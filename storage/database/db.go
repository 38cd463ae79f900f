package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/fs"
)

const (
	driverName    = "sqlite"
	gooseDialect  = "sqlite3"
	migrationsDir = "migrations"
)

var gooseRunFunc = goose.RunContext // mockable

func init() {
	goose.SetBaseFS(appfs.FS)
	_ = goose.SetDialect(gooseDialect)
}

// dsn builds the data source name of the SQLite file at path.
func dsn(path string) string {
	q := make(url.Values)
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	return "file:" + path + "?" + q.Encode()
}

// Open opens the SQLite file at path, creating it if needed.
func Open(path string) (*sqlx.DB, error) {
	if path == "" {
		return nil, errors.New("no data file configured")
	}
	db, err := sqlx.Open(driverName, dsn(path))
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, db *sqlx.DB) error {
	var err error
	maxAttempts := 5
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// gooseLogger sends goose output to a core.Logger.
type gooseLogger struct {
	log core.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info("migrate", map[string]interface{}{"output": fmt.Sprintf(format, v...)})
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Fatal("migrate", map[string]interface{}{"output": fmt.Sprintf(format, v...)})
}

// SetMigrationLogger routes migration output to log.
func SetMigrationLogger(log core.Logger) {
	goose.SetLogger(gooseLogger{log: log})
}

// Migrate applies every pending migration.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	return RunMigration(ctx, db, "up")
}

// RunMigration runs a goose command (up, down, status, version, redo, reset, up-to, down-to...).
func RunMigration(ctx context.Context, db *sqlx.DB, command string, args ...string) error {
	if err := ping(ctx, db); err != nil {
		return errors.Wrap(err, "pinging database")
	}
	if err := gooseRunFunc(ctx, command, db.DB, migrationsDir, args...); err != nil {
		return errors.Wrapf(err, "migrating database (%s)", command)
	}
	return nil
}
