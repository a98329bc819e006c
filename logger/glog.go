package logger

import (
	"github.com/golang/glog"
)

// GlogLogger implements the Logger interface for logging using the glog library with configurable call depth.
type GlogLogger struct {
	depth int
}

// Debugf logs at verbosity level 1, which glog only emits when -v >= 1.
func (logger *GlogLogger) Debugf(msg string, args ...any) {
	if glog.V(1) {
		glog.InfoDepthf(logger.depth, msg, args...)
	}
}

func (logger *GlogLogger) Infof(msg string, args ...any) {
	glog.InfoDepthf(logger.depth, msg, args...)
}

func (logger *GlogLogger) Warnf(msg string, args ...any) {
	glog.WarningDepthf(logger.depth, msg, args...)
}

func (logger *GlogLogger) Errorf(msg string, args ...any) {
	glog.ErrorDepthf(logger.depth, msg, args...)
}

func (logger *GlogLogger) Fatalf(msg string, args ...any) {
	glog.FatalDepthf(logger.depth, msg, args...)
}

func NewGlogLogger(depth int) Logger {
	return &GlogLogger{
		depth: depth,
	}
}
