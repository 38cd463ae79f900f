package logsvc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/student"
)

func TestZapLogger(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLogger(zap.New(obs))

	alice := student.New("Alice", "98765432", "alice@example.com", "@alice", "TG1")
	log.Info("command parsed", map[string]interface{}{"word": "add", "args": " n/Alice"}, alice)
	log.Error("could not save roster", errors.New("disk full"))

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "command parsed", entries[0].Message)
		ctx := entries[0].ContextMap()
		assert.Equal(t, "add", ctx["word"])
		assert.Equal(t, " n/Alice", ctx["args"])
		assert.Equal(t, "Alice", ctx["student"])

		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
		assert.Equal(t, "disk full", entries[1].ContextMap()["error"])
	}
}

func TestNewZapConfig(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		want    zapcore.Level
		wantErr bool
	}{
		{name: "default", want: zapcore.InfoLevel},
		{name: "warn", level: "warn", want: zapcore.WarnLevel},
		{name: "verbose wins", level: "error", verbose: true, want: zapcore.DebugLevel},
		{name: "invalid", level: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := NewZapConfig(tt.level, tt.verbose)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewZapConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				assert.Equal(t, tt.want, config.Level.Level())
				assert.Equal(t, "console", config.Encoding)
			}
		})
	}
}

type recordingLogger struct {
	msgs []string
}

func (l *recordingLogger) Debug(msg string, _ ...interface{}) { l.msgs = append(l.msgs, "debug: "+msg) }
func (l *recordingLogger) Info(msg string, _ ...interface{})  { l.msgs = append(l.msgs, "info: "+msg) }
func (l *recordingLogger) Warn(msg string, _ ...interface{})  { l.msgs = append(l.msgs, "warn: "+msg) }
func (l *recordingLogger) Error(msg string, _ ...interface{}) { l.msgs = append(l.msgs, "error: "+msg) }
func (l *recordingLogger) Fatal(msg string, _ ...interface{}) { l.msgs = append(l.msgs, "fatal: "+msg) }

func TestRollbarLogger_DelegatesLocally(t *testing.T) {
	local := &recordingLogger{}
	log := NewRollbarLogger(local, &core.Config{Env: "TEST", Build: "test"})

	log.Debug("a")
	log.Info("b")
	log.Warn("c", map[string]interface{}{"k": 1})
	log.Error("d", errors.New("boom"))

	assert.Equal(t, []string{"debug: a", "info: b", "warn: c", "error: d"}, local.msgs)
}

func TestRollbarLogger_prepare(t *testing.T) {
	alice := student.New("Alice", "98765432", "alice@example.com", "@alice", "TG1")
	bob := student.New("Bob", "98765432", "bob@example.com", "@bob", "TG1")
	err := errors.New("boom")

	got := RollbarLogger{}.prepare("msg", []interface{}{err, alice, bob, map[string]interface{}{"line": "add"}})
	assert.Equal(t, []interface{}{"msg", err, map[string]interface{}{"student": "Alice", "line": "add"}}, got)
}
