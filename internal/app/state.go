package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/hyperdisk/internal/config"
)

// TextureState holds the GPU copy of the painted texture
type TextureState struct {
	texture rl.Texture2D
	size    int
	loaded  bool
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	isPanning    bool
	lastMousePos rl.Vector2
}

// ConfigWatchState holds config hot reload state
type ConfigWatchState struct {
	path     string
	reloader *config.Reloader
}

// UIState holds UI-related state
type UIState struct {
	font     rl.Font
	showHelp bool
}
