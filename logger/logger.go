package logger

import (
	"errors"
	"fmt"
	"sync"
)

type LoggerType string

const (
	LoggerTypeGlog   LoggerType = "glog"
	LoggerTypeSlog   LoggerType = "slog"
	LoggerTypeLogrus LoggerType = "logrus"
	LoggerTypeCustom LoggerType = "custom"
)

const defaultDepth = 1

// LoggerConfig selects and tunes the process logger.
type LoggerConfig struct {
	Type         LoggerType
	Depth        *int
	CustomLogger Logger
}

var (
	mu     sync.RWMutex
	logger Logger = NewGlogLogger(defaultDepth)
)

// New replaces the process logger with one of the built in implementations.
func New(loggerType string, depth *int) error {
	return NewWithConfig(&LoggerConfig{
		Type:  LoggerType(loggerType),
		Depth: depth,
	})
}

// NewWithConfig replaces the process logger according to cfg.
func NewWithConfig(cfg *LoggerConfig) error {
	if cfg == nil {
		return errors.New("logger config is nil")
	}

	depth := defaultDepth
	if cfg.Depth != nil {
		depth = *cfg.Depth
	}

	var l Logger
	switch cfg.Type {
	case LoggerTypeGlog, "":
		l = NewGlogLogger(depth)
	case LoggerTypeSlog:
		l = NewSlogLogger()
	case LoggerTypeLogrus:
		l = NewLogrusLogger()
	case LoggerTypeCustom:
		if cfg.CustomLogger == nil {
			return errors.New("custom logger type requires CustomLogger instance")
		}
		l = cfg.CustomLogger
	default:
		return fmt.Errorf("unsupported logger type: %s", cfg.Type)
	}

	SetCustomLogger(l)
	return nil
}

// SetCustomLogger installs l as the process logger.
func SetCustomLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// GetCurrentLogger returns the process logger.
func GetCurrentLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug level logging
func Debugf(msg string, args ...any) {
	GetCurrentLogger().Debugf(msg, args...)
}

// Info level logging
func Infof(msg string, args ...any) {
	GetCurrentLogger().Infof(msg, args...)
}

// Warn level logging
func Warnf(msg string, args ...any) {
	GetCurrentLogger().Warnf(msg, args...)
}

// Error level logging
func Errorf(msg string, args ...any) {
	GetCurrentLogger().Errorf(msg, args...)
}

// Fatal level logging and terminates the program execution.
func Fatalf(msg string, args ...any) {
	GetCurrentLogger().Fatalf(msg, args...)
}
