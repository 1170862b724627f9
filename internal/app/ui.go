package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/hyperdisk/pkg/geometry"
	"github.com/philipparndt/hyperdisk/pkg/hyperbolic"
	"github.com/philipparndt/hyperdisk/version"
)

// toolLabels lists the tools with their shortcuts in toolbar order
var toolLabels = []struct {
	name  string
	label string
}{
	{"line", "1/L: Line"},
	{"move", "2/M: Move"},
	{"parallels", "3/P: Parallels"},
	{"draw", "4/D: Draw"},
	{"mirror", "5/R: Mirror"},
}

// drawUI draws the user interface
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	// === TOOLS ===
	rl.DrawTextEx(app.UI.font, "Tools:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	current := app.session.ToolName()
	for _, t := range toolLabels {
		col := rl.LightGray
		text := "  " + t.label
		if t.name == current {
			col = rl.Green
			text = "> " + t.label
		}
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: 10, Y: y}, fontSize14, 1, col)
		y += lineHeight
	}
	y += lineHeight / 2

	// === DIAGRAM ===
	graph := app.session.Graph()
	rl.DrawTextEx(app.UI.font, "Diagram:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Points: %d", len(graph.Points())), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Lines: %d", len(graph.Lines())), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Mirrors: %d", len(graph.Mirrors())), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight * 1.5

	if app.UI.showHelp {
		rl.DrawTextEx(app.UI.font, "Navigate:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
		y += lineHeight
		rl.DrawTextEx(app.UI.font, "  Mouse Wheel: Zoom | Right/Middle: Pan", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight
		rl.DrawTextEx(app.UI.font, "  Shift+Drag: Pan | Home: Reset view", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight
		rl.DrawTextEx(app.UI.font, "  Ctrl+Backspace: Clear diagram | H: Toggle help", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.NewColor(255, 200, 100, 255))
	}

	// Cursor position (bottom-right corner)
	mouse := app.toWorld(app.Interaction.lastMousePos)
	if mouse.LengthSquared() < 1 {
		cursorText := fmt.Sprintf("(%.3f, %.3f)  d=%.3f", mouse.X, mouse.Y, hyperbolic.Distance(geometry.Vector2{}, mouse))
		textSize := rl.MeasureTextEx(app.UI.font, cursorText, fontSize14, 1)
		rl.DrawTextEx(app.UI.font, cursorText,
			rl.Vector2{X: screenWidth - textSize.X - 20, Y: screenHeight - textSize.Y - 20},
			fontSize14, 1, rl.LightGray)
	}

	// Version and FPS in bottom-left corner
	bottomY := screenHeight - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}
