package rlog

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger = newLogger(false)
)

func newLogger(development bool) *zap.Logger {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	return l
}

// Logger returns the shared logger
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Named returns a child logger for the component
func Named(name string) *zap.Logger {
	return Logger().WithOptions(zap.AddCallerSkip(-1)).Named(name)
}

// SetLevel changes the minimum enabled level (debug, info, warn, error)
func SetLevel(lv string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(lv)); err != nil {
		return err
	}
	level.SetLevel(l)
	return nil
}

// SetDevelopment switches to the human friendly development encoder
func SetDevelopment(development bool) {
	l := newLogger(development)
	mu.Lock()
	old := logger
	logger = l
	mu.Unlock()
	old.Sync()
}

// ReplaceLogger installs the given logger, used by tests to capture output
func ReplaceLogger(l *zap.Logger) func() {
	mu.Lock()
	old := logger
	logger = l
	mu.Unlock()
	return func() {
		mu.Lock()
		logger = old
		mu.Unlock()
	}
}

// Println calls l.Output to print to the logger.
func Println(v ...interface{}) {
	Logger().Info(sprintln(v...))
}

// Printf formats the message and prints it at info level
func Printf(format string, v ...interface{}) {
	Logger().Info(fmt.Sprintf(format, v...))
}

// Fatal is equivalent to Println() followed by a call to os.Exit(1).
func Fatal(v ...interface{}) {
	Logger().Fatal(sprintln(v...))
}

// Sync flushes buffered entries
func Sync() error {
	return Logger().Sync()
}

func sprintln(v ...interface{}) string {
	s := fmt.Sprintln(v...)
	return s[:len(s)-1]
}
