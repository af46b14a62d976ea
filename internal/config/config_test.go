package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "surge_checklist.json", cfg.DataFile)
	assert.Equal(t, "USD", cfg.Currency)
	assert.False(t, cfg.Debug)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CHECKLIST_DATA_FILE", "/tmp/x.json")
	t.Setenv("CHECKLIST_CURRENCY", "EUR")
	t.Setenv("CHECKLIST_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "/tmp/x.json", cfg.DataFile)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.True(t, cfg.Debug)
}

func TestLoadError(t *testing.T) {
	t.Setenv("CHECKLIST_DEBUG", "not-a-bool")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
