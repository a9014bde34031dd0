// Package logger provides the process-wide zap logger.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init initializes the package-level logger. Debug mode switches to the
// human-readable development encoder.
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	log = zapLogger.Sugar()
	return nil
}

func get() *zap.SugaredLogger {
	if log == nil {
		// Fallback logger if Init was never called
		base, _ := zap.NewProduction(zap.AddCallerSkip(1))
		log = base.Sugar()
	}
	return log
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		log.Sync()
	}
}

func Debugf(template string, args ...interface{}) {
	get().Debugf(template, args...)
}

func Debugw(msg string, keysAndValues ...interface{}) {
	get().Debugw(msg, keysAndValues...)
}

func Infof(template string, args ...interface{}) {
	get().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	get().Infow(msg, keysAndValues...)
}

func Warnf(template string, args ...interface{}) {
	get().Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	get().Errorf(template, args...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	get().Errorw(msg, keysAndValues...)
}
