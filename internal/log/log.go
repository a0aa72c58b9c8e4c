package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Debug controls debug log output. Set by VEXED_DEBUG environment variable by default.
var Debug = os.Getenv("VEXED_DEBUG") != ""

var logger = zap.NewNop()

// L returns the shared logger. It discards everything until Open is called.
func L() *zap.Logger {
	return logger
}

// Open directs logging to the file at path, appending to it. The terminal
// belongs to the editor, so nothing is ever logged to stdout or stderr.
func Open(path string) error {
	level := zapcore.InfoLevel
	if Debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	Set(l)
	return nil
}

// Set replaces the shared logger. Tests use it with zaptest/observer.
func Set(l *zap.Logger) {
	logger = l
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}
