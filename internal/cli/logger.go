package cli

import (
	"github.com/sirupsen/logrus"

	"github.com/lexfrei/go-forge/observability"
)

// logrusLogger adapts a logrus logger to the observability.Logger interface.
type logrusLogger struct {
	entry *logrus.Entry
}

func newLogrusLogger() observability.Logger {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)

	return &logrusLogger{entry: logrus.NewEntry(log)}
}

func (l *logrusLogger) Debug(msg string, fields ...observability.Field) {
	l.entry.WithFields(toLogrusFields(fields)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields ...observability.Field) {
	l.entry.WithFields(toLogrusFields(fields)).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields ...observability.Field) {
	l.entry.WithFields(toLogrusFields(fields)).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields ...observability.Field) {
	l.entry.WithFields(toLogrusFields(fields)).Error(msg)
}

//nolint:ireturn // Method must return interface to satisfy Logger interface
func (l *logrusLogger) With(fields ...observability.Field) observability.Logger {
	return &logrusLogger{entry: l.entry.WithFields(toLogrusFields(fields))}
}

func toLogrusFields(fields []observability.Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}

	return out
}
