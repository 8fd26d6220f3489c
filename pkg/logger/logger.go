package logger

import (
	"go.uber.org/zap"
)

type ILogger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Warning(msg string, fields ...Field)
}

type logger struct {
	zap *zap.Logger
}

func (l logger) Debug(msg string, fields ...Field) {
	l.zap.Debug(msg, fields...)
}

func (l logger) Info(msg string, fields ...Field) {
	l.zap.Info(msg, fields...)
}

func (l logger) Error(msg string, fields ...Field) {
	l.zap.Error(msg, fields...)
}

func (l logger) Warning(msg string, fields ...Field) {
	l.zap.Warn(msg, fields...)
}

// New builds a development logger tagged with namespace. An unparsable level
// falls back to info; an empty output means stderr.
func New(namespace, level, output string) ILogger {
	return logger{
		zap: newZapLogger(namespace, level, output),
	}
}

// NewNop returns a logger that discards everything.
func NewNop() ILogger {
	return logger{zap: zap.NewNop()}
}

func newZapLogger(namespace, level, output string) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()

	atom, err := zap.ParseAtomicLevel(level)
	if err != nil {
		atom = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Level = atom

	if output == "" {
		output = "stderr"
	}
	cfg.OutputPaths = []string{output}
	cfg.InitialFields = map[string]interface{}{
		"namespace": namespace,
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
