package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/philipparndt/hyperdisk/internal/config"
	"github.com/philipparndt/hyperdisk/pkg/geometry"
	"github.com/philipparndt/hyperdisk/pkg/hyperbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("-0.25, 0.5")
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector2(-0.25, 0.5), p)

	for _, s := range []string{"", "0.1", "0.1,0.2,0.3", "a,0.2", "0.1,b"} {
		_, err := parsePoint(s)
		assert.ErrorIs(t, err, errPointFormat, s)
	}
	for _, s := range []string{"1,0", "0.8,0.8", "NaN,0"} {
		_, err := parsePoint(s)
		assert.ErrorIs(t, err, errOutsideDisk, s)
	}
}

func TestPointValue(t *testing.T) {
	var v pointValue
	assert.Equal(t, "", v.String())
	assert.Nil(t, v.optional())
	_, err := v.get("from")
	assert.ErrorIs(t, err, errMissingPoint)

	require.NoError(t, v.Set("0.5,-0.25"))
	assert.Equal(t, "0.5,-0.25", v.String())
	p, err := v.get("from")
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector2(0.5, -0.25), p)
	require.NotNil(t, v.optional())
	assert.Equal(t, p, *v.optional())

	assert.Error(t, v.Set("2,0"))
	assert.Equal(t, p, v.p, "failed Set keeps the old value")
}

func TestWriteGeodesic(t *testing.T) {
	var out bytes.Buffer
	err := writeGeodesic(&out, geometry.NewVector2(0.1, 0), geometry.NewVector2(0.5, 0), nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Kind: diametral")
	assert.NotContains(t, out.String(), "Limiting parallels")

	out.Reset()
	through := geometry.NewVector2(0, -0.5)
	err = writeGeodesic(&out, geometry.NewVector2(-0.3, 0.1), geometry.NewVector2(0.4, 0.2), &through)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Kind: circular")
	assert.Contains(t, out.String(), "Limiting parallels through (0.000000, -0.500000)")
	assert.Contains(t, out.String(), "Hyperbolic distance:")

	err = writeGeodesic(&out, geometry.NewVector2(0.2, 0.2), geometry.NewVector2(0.2, 0.2), nil)
	assert.ErrorIs(t, err, hyperbolic.ErrCoincidentPoints)
}

func TestWriteMirror(t *testing.T) {
	var out bytes.Buffer
	point := geometry.NewVector2(0.3, 0.2)
	err := writeMirror(&out, geometry.NewVector2(0, 0.1), geometry.NewVector2(0, 0.5), &point)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Orientation: reversing")
	assert.Contains(t, out.String(), "Reflection of (0.300000, 0.200000): (-0.300000, 0.200000)")
}

func TestWriteTranslation(t *testing.T) {
	var out bytes.Buffer
	writeTranslation(&out, geometry.NewVector2(0.5, 0), geometry.NewVector2(0, 0))

	assert.Contains(t, out.String(), "Orientation: preserving")
	assert.Contains(t, out.String(), "Image of (0.000000, 0.000000): (0.500000,")
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyperdisk", "config.toml")

	require.NoError(t, initConfig(path, false))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	assert.ErrorIs(t, initConfig(path, false), errConfigExists)
	assert.NoError(t, initConfig(path, true))
}

func TestWriteConfig(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing.toml")
	require.NoError(t, writeConfig(&out, path, config.Default()))

	assert.Contains(t, out.String(), "not found, using defaults")
	assert.Contains(t, out.String(), "[window]")
	assert.Contains(t, out.String(), "hit_radius_pixels = 10.0")
}

func TestLoadConfigLevelOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadConfig(path, "debug")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = LoadConfig(path, "loud")
	assert.Error(t, err)

	cfg, err = LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, config.Default().LogLevel, cfg.LogLevel)
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "warn"

	logger, level, err := NewLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, zapcore.WarnLevel, level.Level())
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	level.SetLevel(zapcore.DebugLevel)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestCompletionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"completion", "bash"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "bash completion V2 for hyperdisk")
}
