package viewer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/philipparndt/hyperdisk/pkg/diagram"
	"github.com/philipparndt/hyperdisk/pkg/geometry"
	"github.com/philipparndt/hyperdisk/pkg/hyperbolic"
	xdraw "golang.org/x/image/draw"
)

// Colors used in rendering
var (
	ColorBackground = color.RGBA{40, 40, 46, 255}
	ColorDisk       = color.RGBA{250, 250, 250, 255}
	ColorBoundary   = color.RGBA{90, 90, 100, 255}
	ColorLine       = color.RGBA{30, 60, 160, 255}
	ColorCurrent    = color.RGBA{220, 90, 20, 255}
	ColorMirror     = color.RGBA{200, 30, 120, 255}
	ColorPoint      = color.RGBA{20, 20, 20, 255}
	ColorHandle     = color.RGBA{240, 160, 0, 255}
	ColorLabel      = color.RGBA{220, 220, 220, 255}
)

// Scene is everything drawn in one frame
type Scene struct {
	Graph *diagram.Graph
	// Texture is painted over the disk when set
	Texture image.Image

	Segments  int     // Polyline segments per geodesic
	DotRadius float64 // Point radius in disk units
	// LineWidth is the half-width of a geodesic in pixels at the disk center
	LineWidth float64
	ShowStats bool
}

// NewScene returns a scene with the default render settings
func NewScene(graph *diagram.Graph) Scene {
	return Scene{
		Graph:     graph,
		Segments:  100,
		DotRadius: 0.01,
		LineWidth: 1.5,
	}
}

// RenderScene draws the disk, texture, lines, mirrors and points into dst
func RenderScene(dst *image.RGBA, view *View, scene Scene) {
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(ColorBackground), image.Point{}, xdraw.Src)

	cx, cy := view.WorldToScreen(geometry.Vector2{})
	radius := 1 / view.PixelSize()
	fillCircle(dst, cx, cy, radius, ColorDisk)

	if scene.Texture != nil {
		drawTexture(dst, scene.Texture, cx, cy, radius)
	}
	strokeCircle(dst, cx, cy, radius, 1.5, ColorBoundary)

	if scene.Graph == nil {
		return
	}

	segments := max(scene.Segments, 2)
	for _, l := range scene.Graph.Lines() {
		col := ColorLine
		if l.Current {
			col = ColorCurrent
		}
		drawGeodesic(dst, view, l.Geodesic(), segments, scene.LineWidth, col)
	}
	for _, m := range scene.Graph.Mirrors() {
		col := ColorMirror
		if m.Current {
			col = ColorCurrent
		}
		drawGeodesic(dst, view, m.Geodesic(), segments, scene.LineWidth, col)
	}

	for _, pt := range scene.Graph.Points() {
		drawPoint(dst, view, pt, scene.DotRadius)
	}

	if scene.ShowStats {
		stats := fmt.Sprintf("%d points  %d lines  %d mirrors",
			len(scene.Graph.Points()), len(scene.Graph.Lines()), len(scene.Graph.Mirrors()))
		drawText(dst, dst.Bounds().Min.X+8, dst.Bounds().Max.Y-8, stats, ColorLabel)
	}
}

// drawTexture scales the texture onto the disk's bounding square, clipped to
// the disk
func drawTexture(dst *image.RGBA, texture image.Image, cx, cy, radius float64) {
	rect := image.Rect(int(cx-radius), int(cy-radius), int(cx+radius), int(cy+radius))
	mask := circleMask(dst.Bounds(), cx, cy, radius)
	xdraw.ApproxBiLinear.Scale(dst, rect, texture, texture.Bounds(), xdraw.Over, &xdraw.Options{
		DstMask:  mask,
		DstMaskP: dst.Bounds().Min,
	})
}

// drawGeodesic fills the band between the two offset curves of g, so the
// stroke thins toward the boundary
func drawGeodesic(dst *image.RGBA, view *View, g hyperbolic.Geodesic, segments int, width float64, col color.Color) {
	offset := width * view.PixelSize()
	band := make([]screenPoint, 0, 2*(segments+1))
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		x, y := view.WorldToScreen(g.OffsetPoint(t, offset))
		band = append(band, screenPoint{x, y})
	}
	for i := segments; i >= 0; i-- {
		t := float64(i) / float64(segments)
		x, y := view.WorldToScreen(g.OffsetPoint(t, -offset))
		band = append(band, screenPoint{x, y})
	}
	fillPolygon(dst, band, col)
}

func drawPoint(dst *image.RGBA, view *View, pt *diagram.Point, dotRadius float64) {
	x, y := view.WorldToScreen(pt.Pos())
	r := max(2, dotRadius*hyperbolic.Thickness(pt.Pos())/view.PixelSize())
	if pt.Handle {
		strokeCircle(dst, x, y, r*1.5, 2, ColorHandle)
		return
	}
	fillCircle(dst, x, y, r, ColorPoint)
}
