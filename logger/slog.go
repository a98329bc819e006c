package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// SlogLogger routes messages through the process default slog handler.
type SlogLogger struct {
	logger *slog.Logger
}

func (l *SlogLogger) Debugf(msg string, args ...any) {
	l.logger.Debug(fmt.Sprintf(msg, args...))
}

func (l *SlogLogger) Infof(msg string, args ...any) {
	l.logger.Info(fmt.Sprintf(msg, args...))
}

func (l *SlogLogger) Warnf(msg string, args ...any) {
	l.logger.Warn(fmt.Sprintf(msg, args...))
}

func (l *SlogLogger) Errorf(msg string, args ...any) {
	l.logger.Error(fmt.Sprintf(msg, args...))
}

func (l *SlogLogger) Fatalf(msg string, args ...any) {
	l.logger.Error(fmt.Sprintf(msg, args...))
	os.Exit(1)
}

func NewSlogLogger() Logger {
	return &SlogLogger{
		logger: slog.Default(),
	}
}
