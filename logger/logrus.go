package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLogger writes text formatted entries through a dedicated logrus instance.
type LogrusLogger struct {
	logger *logrus.Logger
}

func (l *LogrusLogger) Debugf(msg string, args ...any) {
	l.logger.Debugf(msg, args...)
}

func (l *LogrusLogger) Infof(msg string, args ...any) {
	l.logger.Infof(msg, args...)
}

func (l *LogrusLogger) Warnf(msg string, args ...any) {
	l.logger.Warnf(msg, args...)
}

func (l *LogrusLogger) Errorf(msg string, args ...any) {
	l.logger.Errorf(msg, args...)
}

func (l *LogrusLogger) Fatalf(msg string, args ...any) {
	l.logger.Fatalf(msg, args...)
}

func NewLogrusLogger() Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &LogrusLogger{
		logger: l,
	}
}
