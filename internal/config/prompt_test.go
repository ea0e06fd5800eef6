package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePromptOptions(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := writePromptOptions(configPath, PromptOptions{
		Sound:    "Cosmic",
		Interval: 5,
	})
	require.NoError(t, err)

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, "Cosmic", cfg.Alarm.Sound)
	assert.Equal(t, 5, cfg.Alarm.Interval)
	assert.Equal(t, "bolt", cfg.Storage.Backend)
}
