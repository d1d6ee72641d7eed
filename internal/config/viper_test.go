package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	// Run from a temp dir so no stray config.yaml interferes.
	t.Chdir(t.TempDir())

	cfg, err := InitializeConfig()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
	assert.Zero(t, cfg.AI.TimeoutSeconds)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "thong_ke_chi_tieu.xlsx", cfg.Export.Output)
	assert.Empty(t, cfg.Advisory.File)
}

func TestInitializeConfig_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TKSS_LOG_LEVEL", "debug")
	t.Setenv("TKSS_AI_MODEL", "gemini-2.0-flash")
	t.Setenv("TKSS_AI_TIMEOUT_SECONDS", "30")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 30, cfg.AI.TimeoutSeconds)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestInitializeConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "TKSS_LOG_LEVEL", "verbose"},
		{"bad log format", "TKSS_LOG_FORMAT", "xml"},
		{"negative timeout", "TKSS_AI_TIMEOUT_SECONDS", "-5"},
		{"multi-char delimiter", "TKSS_CSV_DELIMITER", ",,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TKSS_TEST_VALUE", "set")

	assert.Equal(t, "set", GetEnv("TKSS_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TKSS_TEST_ABSENT", "fallback"))
}
