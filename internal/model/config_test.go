package model_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockin-app/lockin/internal/model"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := model.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Display.FeedPageSize)
	assert.Equal(t, "public", cfg.Checklist.DefaultVisibility)
	assert.Equal(t, model.ItemTypeDaily, cfg.Checklist.DefaultType)
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "display:\n  feed_page_size: 10\nchecklist:\n  default_visibility: private\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := model.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Display.FeedPageSize)
	assert.Equal(t, "private", cfg.Checklist.DefaultVisibility)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, model.ItemTypeDaily, cfg.Checklist.DefaultType)
}

func TestSaveConfigRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &model.AppConfig{
		Display:   model.DisplayConfig{Theme: "light", FeedPageSize: 25},
		Checklist: model.ChecklistConfig{DefaultVisibility: "private", DefaultType: model.ItemTypeOneOff},
	}
	require.NoError(t, model.SaveConfig(path, cfg))

	loaded, err := model.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
