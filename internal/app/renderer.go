package app

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/hyperdisk/pkg/diagram"
	"github.com/philipparndt/hyperdisk/pkg/geometry"
	"github.com/philipparndt/hyperdisk/pkg/hyperbolic"
	"github.com/philipparndt/hyperdisk/pkg/viewer"
)

// lineWidth is the stroke width of a geodesic at the disk center in pixels
const lineWidth = 3

// loadTexture allocates the GPU texture for the painted canvas
func (app *App) loadTexture(size int) {
	img := rl.GenImageColor(size, size, rl.Blank)
	app.Texture.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(app.Texture.texture, rl.FilterBilinear)
	app.Texture.size = size
	app.Texture.loaded = true
}

// uploadTexture copies the composited texture to the GPU when it changed
func (app *App) uploadTexture() {
	img, changed := app.session.Texture()
	if !changed || !app.Texture.loaded {
		return
	}
	if img.Bounds().Dx() != app.Texture.size {
		return
	}
	rl.UpdateTexture(app.Texture.texture, texturePixels(img))
}

// texturePixels converts premultiplied texels to the straight alpha raylib
// expects
func texturePixels(img *image.RGBA) []color.RGBA {
	b := img.Bounds()
	pixels := make([]color.RGBA, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.RGBAAt(x, y)).(color.NRGBA)
			pixels = append(pixels, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return pixels
}

// drawDisk draws the disk, the painted texture and the boundary circle
func (app *App) drawDisk() {
	center := app.toScreen(geometry.Vector2{})
	radius := float32(1 / app.session.View().PixelSize())

	rl.DrawCircleV(center, radius, viewer.ColorDisk)

	if app.Texture.loaded {
		size := float32(app.Texture.size)
		source := rl.Rectangle{X: 0, Y: 0, Width: size, Height: size}
		dest := rl.Rectangle{X: center.X - radius, Y: center.Y - radius, Width: 2 * radius, Height: 2 * radius}
		rl.DrawTexturePro(app.Texture.texture, source, dest, rl.Vector2{}, 0, rl.White)
	}

	rl.DrawRing(center, radius-1, radius+1, 0, 360, 180, viewer.ColorBoundary)
}

// drawDiagram draws lines, mirrors and points
func (app *App) drawDiagram() {
	graph := app.session.Graph()
	segments := app.session.Config().Render.Segments

	for _, l := range graph.Lines() {
		col := viewer.ColorLine
		if l.Current {
			col = viewer.ColorCurrent
		}
		app.drawGeodesic(l.Geodesic(), segments, col)
	}
	for _, m := range graph.Mirrors() {
		col := viewer.ColorMirror
		if m.Current {
			col = viewer.ColorCurrent
		}
		app.drawGeodesic(m.Geodesic(), segments, col)
	}

	for _, pt := range graph.Points() {
		app.drawPoint(pt)
	}
}

// drawGeodesic draws g as a polyline thinning toward the boundary
func (app *App) drawGeodesic(g hyperbolic.Geodesic, segments int, col color.RGBA) {
	segments = max(segments, 2)
	prev := g.Point(0)
	for i := 1; i <= segments; i++ {
		p := g.Point(float64(i) / float64(segments))
		width := float32(lineWidth * hyperbolic.Thickness(prev.Lerp(p, 0.5)))
		rl.DrawLineEx(app.toScreen(prev), app.toScreen(p), width, col)
		prev = p
	}
}

// drawPoint draws a filled dot, or a ring for line handles
func (app *App) drawPoint(pt *diagram.Point) {
	center := app.toScreen(pt.Pos())
	r := float32(app.session.Config().Render.DotRadius / app.session.View().PixelSize())
	r = max(r, 3)

	if pt.Handle {
		rl.DrawRing(center, r, r+2, 0, 360, 24, viewer.ColorHandle)
		return
	}
	rl.DrawCircleV(center, r, viewer.ColorPoint)
}
