package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. The TUI owns the terminal, so log
// output only ever goes to the given file; an empty path disables logging
// entirely.
func New(path string) (*zap.SugaredLogger, func(), error) {
	if path == "" {
		nop := zap.NewNop()
		return nop.Sugar(), func() {}, nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	log, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	sync := func() { _ = log.Sync() }
	return log.Sugar(), sync, nil
}
