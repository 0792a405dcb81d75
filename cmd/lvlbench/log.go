// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig selects where and how the CLI logs.
type LogConfig struct {
	Level      string // zapcore level name
	Format     string // "console" or "json"
	Filename   string // empty ⇒ stderr
	MaxSize    int    // MB before rotation
	MaxDays    int
	MaxBackups int
}

func defaultLogConfig() LogConfig {
	return LogConfig{
		Level:      zapcore.InfoLevel.String(),
		Format:     "console",
		MaxSize:    64,
		MaxDays:    7,
		MaxBackups: 3,
	}
}

// newLogger builds a zap logger; a Filename routes output through a
// rotating lumberjack writer.
func newLogger(conf LogConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(conf.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", conf.Level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch conf.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console", "":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("log format %q: want console or json", conf.Format)
	}

	var sink zapcore.WriteSyncer
	if conf.Filename != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.Filename,
			MaxSize:    conf.MaxSize,
			MaxAge:     conf.MaxDays,
			MaxBackups: conf.MaxBackups,
		})
	} else {
		sink = zapcore.Lock(os.Stderr)
	}

	return zap.New(zapcore.NewCore(enc, sink, level), zap.AddCaller()), nil
}
