package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/hyperdisk/pkg/geometry"
)

// wheelZoomStep is the zoom factor change per wheel notch
const wheelZoomStep = 0.1

// resetView shows the whole disk again
func (app *App) resetView() {
	app.session.View().Reset()
}

// doPan moves the view by the mouse delta
func (app *App) doPan(delta rl.Vector2) {
	app.session.View().Pan(float64(delta.X), float64(delta.Y))
}

// doZoom zooms around the mouse position
func (app *App) doZoom(wheel float32, mouse rl.Vector2) {
	factor := 1 + float64(wheel)*wheelZoomStep
	if factor <= 0 {
		return
	}
	app.session.View().ZoomAt(factor, float64(mouse.X), float64(mouse.Y))
}

// toWorld converts a screen position to disk coordinates
func (app *App) toWorld(pos rl.Vector2) geometry.Vector2 {
	return app.session.View().ScreenToWorld(float64(pos.X), float64(pos.Y))
}

// toScreen converts disk coordinates to a screen position
func (app *App) toScreen(p geometry.Vector2) rl.Vector2 {
	x, y := app.session.View().WorldToScreen(p)
	return rl.Vector2{X: float32(x), Y: float32(y)}
}
