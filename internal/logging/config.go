// Package logging provides the zap-based structured logger used across
// wfthermald, adapted from the teacher's cmd/wfdevice/logger package.
package logging

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// Config holds the configuration for the daemon's logger.
type Config struct {
	Environment string // "production", "staging", "development"
	LogLevel    string // "debug", "info", "warn", "error"
	JSONOutput  bool   // Use JSON output format
	Sampling    bool   // Enable sampling for high-volume logs
	StackTrace  bool   // Include stack traces for errors
}

// FromEnv determines logging configuration from environment variables and
// the CLI's --log-level / --log-json flags. A non-empty level override wins;
// otherwise the environment's default level is used. JSON output is forced
// on in production and staging; elsewhere the --log-json value is used.
func FromEnv(levelOverride string, jsonOverride bool) Config {
	cfg := Config{
		Environment: os.Getenv("ENVIRONMENT"),
		LogLevel:    levelOverride,
		JSONOutput:  jsonOverride,
		Sampling:    os.Getenv("LOG_SAMPLING") != "false",
		StackTrace:  os.Getenv("LOG_STACKTRACE") != "false",
	}

	switch cfg.Environment {
	case "production":
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
		cfg.JSONOutput = true
	case "staging":
		if cfg.LogLevel == "" {
			cfg.LogLevel = "debug"
		}
		cfg.JSONOutput = true
	default:
		cfg.Environment = "development"
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
		cfg.Sampling = false
	}

	return cfg
}

func getEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func parseLogLevel(level string) zapcore.Level {
	switch level {
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
