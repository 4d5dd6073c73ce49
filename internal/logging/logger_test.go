package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvAppliesEnvironmentDefaults(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantLevel   string
		wantJSON    bool
	}{
		{"development", "development", "info", false},
		{"production", "production", "info", true},
		{"staging", "staging", "debug", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := os.Getenv("ENVIRONMENT")
			t.Cleanup(func() { os.Setenv("ENVIRONMENT", prev) })
			os.Setenv("ENVIRONMENT", tt.environment)

			cfg := FromEnv("", false)
			assert.Equal(t, tt.wantLevel, cfg.LogLevel)
			assert.Equal(t, tt.wantJSON, cfg.JSONOutput)
		})
	}
}

func TestFromEnvOverrideWins(t *testing.T) {
	prev := os.Getenv("ENVIRONMENT")
	t.Cleanup(func() { os.Setenv("ENVIRONMENT", prev) })
	os.Setenv("ENVIRONMENT", "production")

	cfg := FromEnv("debug", false)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNewBuildsLogger(t *testing.T) {
	log, err := New(Config{Environment: "development", LogLevel: "info"}, "balanced")
	assert.NoError(t, err)
	assert.NotNil(t, log)
}
