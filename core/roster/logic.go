// Package roster runs command lines against the student roster and persists the changes.
package roster

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/command"
	"github.com/trezcool/roster/core/parser"
	"github.com/trezcool/roster/core/student"
)

// Logic is the command interpreter. It handles one line at a time.
type Logic struct {
	parser *parser.Parser
	svc    *student.Service
	store  student.Store
	log    core.Logger
}

func NewLogic(svc *student.Service, store student.Store, log core.Logger, confirm command.ConfirmFunc) *Logic {
	return &Logic{
		parser: parser.New(confirm),
		svc:    svc,
		store:  store,
		log:    log,
	}
}

// Load replaces the roster with the students held by the store.
func (l *Logic) Load(ctx context.Context) error {
	students, err := l.store.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "loading roster")
	}
	if err := l.svc.Reset(students); err != nil {
		return errors.Wrap(err, "loading roster")
	}
	l.log.Info("roster loaded", map[string]interface{}{"students": len(students)})
	return nil
}

// Execute parses and runs line. The roster is saved whenever the command changed it,
// including commands that failed after a partial update.
func (l *Logic) Execute(ctx context.Context, line string) (res command.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("executing %q: %v", line, r)
			l.log.Error("command panicked", err)
		}
	}()

	cmd, err := l.parser.ParseCommand(line)
	if err != nil {
		l.log.Debug("parse failed", map[string]interface{}{"line": line, "kind": core.KindOf(err).String()}, err)
		return command.Result{}, err
	}
	word, args := parser.Split(line)
	l.log.Debug("command parsed", map[string]interface{}{"word": word, "args": args})

	before := l.svc.Snapshot()
	res, err = cmd.Execute(l.svc)
	if err != nil {
		l.log.Info("command failed", map[string]interface{}{"line": line, "kind": core.KindOf(err).String()}, err)
	}

	if changed(before, l.svc.Snapshot()) {
		if saveErr := l.store.Save(ctx, l.svc.Snapshot()); saveErr != nil {
			saveErr = errors.Wrap(saveErr, "saving roster")
			l.log.Error("could not save roster", saveErr)
			if err == nil {
				err = saveErr
			}
		}
	}
	return res, err
}

// Displayed returns the students the user currently sees.
func (l *Logic) Displayed() []student.Student {
	return l.svc.Displayed()
}

func changed(before, after []student.Student) bool {
	if len(before) != len(after) {
		return true
	}
	for i := range before {
		if !before[i].Equal(after[i]) {
			return true
		}
	}
	return false
}
