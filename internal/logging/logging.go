// Package logging builds the zap loggers of the binaries.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the log level and an optional rotated JSON file sink.
type Config struct {
	Level      string `long:"level" env:"LEVEL" description:"log level" default:"debug"`
	File       string `long:"file" env:"FILE" description:"also write JSON logs to this file"`
	MaxSizeMB  int    `long:"max-size" env:"MAX_SIZE" description:"log file size in megabytes before rotation" default:"100"`
	MaxBackups int    `long:"max-backups" env:"MAX_BACKUPS" description:"rotated log files to keep" default:"5"`
	MaxAgeDays int    `long:"max-age" env:"MAX_AGE" description:"days to keep rotated log files" default:"30"`
	Compress   bool   `long:"compress" env:"COMPRESS" description:"gzip rotated log files"`
}

// New returns a development console logger, teed into a lumberjack file sink
// when cfg.File is set.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.DebugLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	console := zap.NewDevelopmentEncoderConfig()
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(console), zapcore.Lock(os.Stderr), level),
	}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(fileWriter(cfg)),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...),
		zap.Development(),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.WarnLevel),
	), nil
}

func fileWriter(cfg Config) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}
