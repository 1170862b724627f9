// Package config loads and stores the editor settings as TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

const (
	appDir     = "hyperdisk"
	configFile = "config.toml"
)

// Config holds all editor settings
type Config struct {
	LogLevel    string      `toml:"log_level"`
	Window      Window      `toml:"window"`
	View        View        `toml:"view"`
	Interaction Interaction `toml:"interaction"`
	Paint       Paint       `toml:"paint"`
	Render      Render      `toml:"render"`
}

// Window is the size and frame rate of the editor window
type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	FPS    int `toml:"fps"`
}

// View controls how much of the plane around the disk is visible
type View struct {
	// Margin is the half-extent of the visible square in disk units
	Margin  float64 `toml:"margin"`
	MinZoom float64 `toml:"min_zoom"`
	MaxZoom float64 `toml:"max_zoom"`
}

// Interaction holds hit-testing thresholds
type Interaction struct {
	HitRadiusPixels float64 `toml:"hit_radius_pixels"`
	// DeleteRadius is the distance from the center beyond which a dragged
	// point is deleted
	DeleteRadius         float64 `toml:"delete_radius"`
	ParallelPickDistance float64 `toml:"parallel_pick_distance"`
}

// Paint configures the painted texture
type Paint struct {
	TextureSize    int     `toml:"texture_size"`
	BrushThickness float64 `toml:"brush_thickness"`
	MaxRadius      float64 `toml:"max_radius"`
}

// Render configures the drawing of the diagram
type Render struct {
	Segments  int     `toml:"segments"`
	DotRadius float64 `toml:"dot_radius"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		LogLevel: "info",
		Window:   Window{Width: 1024, Height: 1024, FPS: 60},
		View:     View{Margin: 1.1, MinZoom: 0.25, MaxZoom: 8},
		Interaction: Interaction{
			HitRadiusPixels:      10,
			DeleteRadius:         1.01,
			ParallelPickDistance: 2,
		},
		Paint:  Paint{TextureSize: 512, BrushThickness: 10, MaxRadius: 0.8},
		Render: Render{Segments: 100, DotRadius: 0.01},
	}
}

// DefaultPath returns the config file location under the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, appDir, configFile)
}

// Load reads the config at path on top of the defaults.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports the first out-of-range setting
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.FPS <= 0:
		return fmt.Errorf("window fps must be positive, got %d", c.Window.FPS)
	case c.View.Margin < 1:
		return fmt.Errorf("view margin must be at least 1, got %g", c.View.Margin)
	case c.View.MinZoom <= 0 || c.View.MaxZoom < c.View.MinZoom:
		return fmt.Errorf("invalid zoom range [%g, %g]", c.View.MinZoom, c.View.MaxZoom)
	case c.Interaction.HitRadiusPixels <= 0:
		return fmt.Errorf("hit radius must be positive, got %g", c.Interaction.HitRadiusPixels)
	case c.Interaction.DeleteRadius < 1:
		return fmt.Errorf("delete radius must be at least 1, got %g", c.Interaction.DeleteRadius)
	case c.Interaction.ParallelPickDistance <= 0:
		return fmt.Errorf("parallel pick distance must be positive, got %g", c.Interaction.ParallelPickDistance)
	case c.Paint.TextureSize <= 0:
		return fmt.Errorf("texture size must be positive, got %d", c.Paint.TextureSize)
	case c.Paint.BrushThickness <= 0:
		return fmt.Errorf("brush thickness must be positive, got %g", c.Paint.BrushThickness)
	case c.Paint.MaxRadius <= 0 || c.Paint.MaxRadius >= 1:
		return fmt.Errorf("paint max radius must be in (0, 1), got %g", c.Paint.MaxRadius)
	case c.Render.Segments < 2:
		return fmt.Errorf("render segments must be at least 2, got %d", c.Render.Segments)
	case c.Render.DotRadius <= 0:
		return fmt.Errorf("dot radius must be positive, got %g", c.Render.DotRadius)
	}
	return nil
}

// Level parses LogLevel
func (c Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
