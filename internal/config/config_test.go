package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1.1, cfg.View.Margin)
	assert.Equal(t, 10.0, cfg.Interaction.HitRadiusPixels)
	assert.Equal(t, 1.01, cfg.Interaction.DeleteRadius)
	assert.Equal(t, 2.0, cfg.Interaction.ParallelPickDistance)
	assert.Equal(t, 512, cfg.Paint.TextureSize)
	assert.Equal(t, 0.8, cfg.Paint.MaxRadius)
	assert.Equal(t, 100, cfg.Render.Segments)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level)
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.Window.Width = 800
	cfg.Paint.BrushThickness = 4.5

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[interaction]\nhit_radius_pixels = 14\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 14.0, cfg.Interaction.HitRadiusPixels)
	assert.Equal(t, 1.01, cfg.Interaction.DeleteRadius)
	assert.Equal(t, Default().Render, cfg.Render)
}

func TestLoadRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	malformed := filepath.Join(dir, "malformed.toml")
	require.NoError(t, os.WriteFile(malformed, []byte("[view\nmargin = "), 0o644))
	_, err := Load(malformed)
	assert.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[paint]\nmax_radius = 1.5\n"), 0o644))
	cfg, err := Load(invalid)
	assert.ErrorContains(t, err, "paint max radius")
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"window", func(c *Config) { c.Window.Height = 0 }, "window size"},
		{"fps", func(c *Config) { c.Window.FPS = -1 }, "fps"},
		{"margin", func(c *Config) { c.View.Margin = 0.5 }, "view margin"},
		{"zoom", func(c *Config) { c.View.MaxZoom = 0.1 }, "zoom range"},
		{"hit radius", func(c *Config) { c.Interaction.HitRadiusPixels = 0 }, "hit radius"},
		{"delete radius", func(c *Config) { c.Interaction.DeleteRadius = 0.9 }, "delete radius"},
		{"segments", func(c *Config) { c.Render.Segments = 1 }, "segments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Equal(t, "config.toml", filepath.Base(path))
	assert.Equal(t, "hyperdisk", filepath.Base(filepath.Dir(path)))
}
