package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where log output goes
type Options struct {
	Dir     string // directory for the rotated JSON log; empty disables the file core
	Level   string // debug, info, warn, error
	Console bool   // also write human readable lines to stderr
}

var base = zap.NewNop().Sugar()

// New builds a logger from opts without installing it
func New(opts Options) (*zap.SugaredLogger, error) {
	level := zap.NewAtomicLevel()
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, err
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   filepath.Join(opts.Dir, "taskflow.log"),
				MaxSize:    10, // MB
				MaxBackups: 5,
				MaxAge:     30, // days
			}),
			level,
		))
	}
	if opts.Console {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		))
	}
	if len(cores) == 0 {
		return zap.NewNop().Sugar(), nil
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	return logger.Sugar(), nil
}

// Init builds a logger and installs it as the process logger
func Init(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	base = l
	return nil
}

// L returns the process logger
func L() *zap.SugaredLogger {
	return base
}

// Component returns a logger tagged with the component name
func Component(name string) *zap.SugaredLogger {
	return base.With("component", name)
}

// Sync flushes buffered entries
func Sync() {
	_ = base.Sync()
}
