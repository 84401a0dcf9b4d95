// Package logger builds the structured logger used for machine-readable
// narration.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes where and how log entries are written.
type Config struct {
	Level      string    // debug, info, warn, error
	Format     string    // json, console
	Writer     io.Writer // e.g. os.Stdout; nil disables it
	FilePath   string    // rotated with lumberjack when set
	MaxSize    int       // MB
	MaxBackups int
	MaxAge     int // days
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a logger from cfg. With neither Writer nor FilePath set it
// returns a no-op logger. The returned closer releases the log file.
func New(cfg Config) (*zap.Logger, io.Closer) {
	level := ParseLevel(cfg.Level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	var (
		cores  []zapcore.Core
		closer io.Closer = nopCloser{}
	)
	if cfg.Writer != nil {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(cfg.Writer), level))
	}
	if cfg.FilePath != "" {
		writer := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
		}
		// files always get JSON, colors make no sense there
		fileEncoder := zapcore.NewJSONEncoder(encoderConfigForFile(encoderConfig))
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(writer), level))
		closer = writer
	}

	if len(cores) == 0 {
		return zap.NewNop(), closer
	}
	return zap.New(zapcore.NewTee(cores...)), closer
}

func encoderConfigForFile(cfg zapcore.EncoderConfig) zapcore.EncoderConfig {
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
