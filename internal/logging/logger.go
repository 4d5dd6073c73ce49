package logging

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.Logger for the given profile, tagged with the app name
// and active profile as global fields so every log line is attributable.
func New(cfg Config, profile string) (*zap.Logger, error) {
	encConfig := getEncoderConfig()

	var encoder zapcore.Encoder
	if cfg.JSONOutput {
		encoder = zapcore.NewJSONEncoder(encConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encConfig)
	}

	baseLevel := parseLogLevel(cfg.LogLevel)
	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), baseLevel)

	if cfg.Sampling {
		errorCore := zapcore.NewCore(
			encoder,
			zapcore.AddSync(os.Stderr),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool { return lvl >= zapcore.ErrorLevel }),
		)
		sampledCore := zapcore.NewSamplerWithOptions(
			zapcore.NewCore(
				encoder,
				zapcore.AddSync(os.Stderr),
				zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
					return lvl < zapcore.ErrorLevel && lvl >= baseLevel
				}),
			),
			time.Second, 100, 100,
		)
		core = zapcore.NewTee(errorCore, sampledCore)
	}

	logger := zap.New(core, zap.AddCaller())
	if cfg.StackTrace {
		logger = logger.WithOptions(zap.AddStacktrace(zapcore.ErrorLevel))
	}

	logger = logger.With(
		zap.String("app", "wfthermald"),
		zap.String("environment", cfg.Environment),
		zap.String("profile", profile),
	)

	return logger, nil
}

// NewNop returns a logger that discards everything, for use in tests that
// don't care about log output.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
