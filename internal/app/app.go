// Package app runs the disk editor in a raylib window.
package app

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/hyperdisk/internal/config"
	"github.com/philipparndt/hyperdisk/internal/editor"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

// labelChars are the glyphs baked into the UI font
const labelChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!@#$%^&*()_+-=[]{}|;:',.<>?/\\`~ \"·×→"

type App struct {
	logger *zap.Logger
	level  *zap.AtomicLevel

	session *editor.Session

	Texture     TextureState
	Interaction InteractionState
	ConfigWatch ConfigWatchState
	UI          UIState
}

// Option configures the editor
type Option func(*App)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(app *App) {
		if logger != nil {
			app.logger = logger
		}
	}
}

// WithLevel lets config reloads change the log level
func WithLevel(level zap.AtomicLevel) Option {
	return func(app *App) {
		app.level = &level
	}
}

// WithConfigPath watches the config file at path and applies its changes
func WithConfigPath(path string) Option {
	return func(app *App) {
		app.ConfigWatch.path = path
	}
}

// Run opens the editor window and blocks until it is closed
func Run(cfg config.Config, opts ...Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	app := &App{logger: zap.NewNop(), UI: UIState{showHelp: true}}
	for _, opt := range opts {
		opt(app)
	}
	app.session = editor.New(cfg, app.logger)

	if app.ConfigWatch.path != "" {
		reloader, err := config.Watch(app.ConfigWatch.path, app.logger.Named("config"))
		if err != nil {
			app.logger.Warn("config hot reload unavailable", zap.Error(err))
		} else {
			app.ConfigWatch.reloader = reloader
			defer reloader.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "hyperdisk")
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	if !rl.IsWindowReady() {
		return errors.New("failed to open window")
	}
	app.session.View().Resize(rl.GetScreenWidth(), rl.GetScreenHeight())

	// 96px base size stays crisp when scaled down on high DPI displays
	app.UI.font = rl.LoadFontFromMemory(".ttf", goregular.TTF, 96, []rune(labelChars))
	app.loadTexture(cfg.Paint.TextureSize)

	app.logger.Info("editor started",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("tool", app.session.ToolName()))

	for {
		if rl.WindowShouldClose() {
			break
		}

		// Ctrl+C exits
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		app.applyConfigChanges()

		if rl.IsWindowResized() {
			app.session.View().Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}

		app.handleInput()
		app.uploadTexture()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))
		app.drawDisk()
		app.drawDiagram()
		app.drawUI()
		rl.EndDrawing()
	}

	rl.UnloadTexture(app.Texture.texture)
	rl.UnloadFont(app.UI.font)
	rl.CloseWindow()
	return nil
}

// applyConfigChanges applies a config reloaded since the last frame
func (app *App) applyConfigChanges() {
	if app.ConfigWatch.reloader == nil {
		return
	}
	cfg, ok := app.ConfigWatch.reloader.Poll()
	if !ok {
		return
	}
	if err := cfg.Validate(); err != nil {
		app.logger.Warn("ignoring invalid config", zap.Error(err))
		return
	}

	app.session.ApplyConfig(cfg)
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	if app.level != nil {
		if level, err := cfg.Level(); err == nil {
			app.level.SetLevel(level)
		}
	}
}
