package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// toolKeys maps shortcut keys to tool names. Number keys follow the toolbar
// order.
var toolKeys = map[int32]string{
	rl.KeyOne:   "line",
	rl.KeyTwo:   "move",
	rl.KeyThree: "parallels",
	rl.KeyFour:  "draw",
	rl.KeyFive:  "mirror",
	rl.KeyL:     "line",
	rl.KeyM:     "move",
	rl.KeyP:     "parallels",
	rl.KeyD:     "draw",
	rl.KeyR:     "mirror",
}

// handleInput processes user input
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	defer func() { app.Interaction.lastMousePos = mouse }()

	app.handleKeys()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel, mouse)
	}

	manager := app.session.Manager()
	// A release during a pan still ends the tool gesture
	if manager.Pressed() && !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		manager.PointerUp()
	}

	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	// Pan with Shift + left drag, or the middle or right button
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.isPanning = shiftPressed
	}
	panning := (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) ||
		rl.IsMouseButtonDown(rl.MouseMiddleButton) || rl.IsMouseButtonDown(rl.MouseRightButton)
	if panning {
		if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
		return
	}

	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		manager.PointerDown(app.toWorld(mouse))
	case rl.IsMouseButtonDown(rl.MouseLeftButton) && manager.Pressed():
		if mouse != app.Interaction.lastMousePos {
			manager.PointerDrag(app.toWorld(mouse))
		}
	}
}

// handleKeys handles tool shortcuts and commands
func (app *App) handleKeys() {
	pressed := app.session.Manager().Pressed()
	commandPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if commandPressed {
		// Ctrl/Cmd + Backspace clears everything
		if rl.IsKeyPressed(rl.KeyBackspace) && !pressed {
			app.session.Clear()
		}
		return
	}

	// Keep the current gesture's tool until the button is released
	if !pressed {
		for key, name := range toolKeys {
			if rl.IsKeyPressed(key) {
				if err := app.session.SelectTool(name); err != nil {
					app.logger.Warn("cannot select tool", zap.Error(err))
				}
			}
		}
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetView()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}
}
