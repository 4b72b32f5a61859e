// Package log provides centralized logging using the zap logger.
package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu  sync.RWMutex
	log *zap.SugaredLogger
)

// Options controls where log output goes.
type Options struct {
	Debug bool
	// File, when set, receives JSON log lines and is rotated by size.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Init initializes the package-level logger. Output goes to stderr, and
// also to opts.File when it is set.
func Init(opts Options) error {
	var zapLogger *zap.Logger
	var err error

	if opts.Debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	if opts.File != "" {
		zapLogger = zapLogger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, fileCore(opts))
		}))
	}

	set(zapLogger)
	return nil
}

func fileCore(opts Options) zapcore.Core {
	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSize,
		MaxBackups: opts.MaxBackups,
	})

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if opts.Debug {
		level.SetLevel(zap.DebugLevel)
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), w, level)
}

func set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l.Sugar()
}

// UseLogger replaces the package-level logger, mostly for tests.
func UseLogger(l *zap.Logger) {
	set(l.WithOptions(zap.AddCallerSkip(1)))
}

func sugared() *zap.SugaredLogger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l != nil {
		return l
	}

	// Fallback logger if not initialized
	zapLogger, _ := zap.NewProduction(zap.AddCallerSkip(1))
	set(zapLogger)
	return zapLogger.Sugar()
}

// Sync flushes any buffered log entries
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if log != nil {
		_ = log.Sync()
	}
}

func Debugw(msg string, keysAndValues ...any) {
	sugared().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...any) {
	sugared().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...any) {
	sugared().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...any) {
	sugared().Errorw(msg, keysAndValues...)
}
