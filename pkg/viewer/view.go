package viewer

import (
	"math"

	"github.com/philipparndt/hyperdisk/pkg/geometry"
)

// View maps between screen pixels and disk coordinates.
// Screen y grows downward, disk y grows upward.
type View struct {
	Width   int
	Height  int
	Margin  float64          // Half-extent of the visible square at zoom 1
	Zoom    float64
	Center  geometry.Vector2 // Disk point shown at the middle of the screen
	MinZoom float64
	MaxZoom float64
}

// NewView creates a view showing the whole disk plus margin
func NewView(width, height int, margin float64) *View {
	return &View{
		Width:   width,
		Height:  height,
		Margin:  margin,
		Zoom:    1,
		MinZoom: 0.25,
		MaxZoom: 8,
	}
}

// Resize updates the screen size
func (v *View) Resize(width, height int) {
	v.Width = width
	v.Height = height
}

// scale returns pixels per disk unit
func (v *View) scale() float64 {
	side := math.Min(float64(v.Width), float64(v.Height))
	if side <= 0 {
		side = 1
	}
	return side * v.Zoom / (2 * v.Margin)
}

// PixelSize returns the size of one pixel in disk units
func (v *View) PixelSize() float64 {
	return 1 / v.scale()
}

// WorldToScreen projects a disk point to pixel coordinates
func (v *View) WorldToScreen(p geometry.Vector2) (float64, float64) {
	s := v.scale()
	x := float64(v.Width)/2 + (p.X-v.Center.X)*s
	y := float64(v.Height)/2 - (p.Y-v.Center.Y)*s
	return x, y
}

// ScreenToWorld converts pixel coordinates back to a disk point
func (v *View) ScreenToWorld(x, y float64) geometry.Vector2 {
	s := v.scale()
	return geometry.Vector2{
		X: v.Center.X + (x-float64(v.Width)/2)/s,
		Y: v.Center.Y - (y-float64(v.Height)/2)/s,
	}
}

// Pan moves the view by a screen-space delta
func (v *View) Pan(dx, dy float64) {
	s := v.scale()
	v.Center = v.Center.Add(geometry.Vector2{X: -dx / s, Y: dy / s})
}

// ZoomAt scales the view by factor keeping the disk point under (x, y) fixed
func (v *View) ZoomAt(factor, x, y float64) {
	anchor := v.ScreenToWorld(x, y)
	v.Zoom = math.Max(v.MinZoom, math.Min(v.MaxZoom, v.Zoom*factor))
	moved := v.ScreenToWorld(x, y)
	v.Center = v.Center.Add(anchor.Sub(moved))
}

// Reset restores zoom 1 centered on the disk
func (v *View) Reset() {
	v.Zoom = 1
	v.Center = geometry.Vector2{}
}
