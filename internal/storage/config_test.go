package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("no .partyconfig.yaml returns defaults", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Init(dir)
		require.NoError(t, err)

		cfg, err := s.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, DefaultDefaultQuantity, cfg.DefaultQuantity)
		assert.Equal(t, DefaultDateFormat, cfg.DateFormat)
		assert.Equal(t, DefaultHidePurchased, cfg.HidePurchased)
		assert.Empty(t, cfg.Editor)
	})

	t.Run("full .partyconfig.yaml loads all values", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Init(dir)
		require.NoError(t, err)

		configContent := `default_quantity: 12
date_format: "2006-01-02 15:04"
hide_purchased: true
editor: nano
`
		err = os.WriteFile(filepath.Join(dir, ".partyconfig.yaml"), []byte(configContent), 0644)
		require.NoError(t, err)

		cfg, err := s.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 12, cfg.DefaultQuantity)
		assert.Equal(t, "2006-01-02 15:04", cfg.DateFormat)
		assert.True(t, cfg.HidePurchased)
		assert.Equal(t, "nano", cfg.Editor)
	})

	t.Run("partial .partyconfig.yaml merges with defaults", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Init(dir)
		require.NoError(t, err)

		err = os.WriteFile(filepath.Join(dir, ".partyconfig.yaml"), []byte("hide_purchased: true\n"), 0644)
		require.NoError(t, err)

		cfg, err := s.LoadConfig()
		require.NoError(t, err)

		assert.True(t, cfg.HidePurchased)
		assert.Equal(t, DefaultDefaultQuantity, cfg.DefaultQuantity) // default
		assert.Equal(t, DefaultDateFormat, cfg.DateFormat)           // default
	})

	t.Run("unusable values fall back to defaults", func(t *testing.T) {
		dir := t.TempDir()

		configContent := `default_quantity: 0
date_format: ""
`
		err := os.WriteFile(filepath.Join(dir, ".partyconfig.yaml"), []byte(configContent), 0644)
		require.NoError(t, err)

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, DefaultDefaultQuantity, cfg.DefaultQuantity)
		assert.Equal(t, DefaultDateFormat, cfg.DateFormat)
	})

	t.Run("invalid YAML returns error with filename", func(t *testing.T) {
		dir := t.TempDir()

		err := os.WriteFile(filepath.Join(dir, ".partyconfig.yaml"), []byte("default_quantity: [\n"), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".partyconfig.yaml")
	})
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	s, err := Init(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".partyconfig.yaml"), s.ConfigPath())
}
