// Package paint holds the freehand texture painted onto the disk and its
// reflected copies.
package paint

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/philipparndt/hyperdisk/pkg/geometry"
	"golang.org/x/image/vector"
)

// Canvas is a square RGBA texture covering the disk's bounding square
type Canvas struct {
	size      int
	thickness float64
	maxRadius float64
	color     color.Color

	img      *image.RGBA
	last     geometry.Vector2
	stroking bool
}

// New creates a transparent canvas of size×size texels. Brush strokes are
// thickness texels wide and kept within maxRadius of the disk center.
func New(size int, thickness, maxRadius float64) *Canvas {
	return &Canvas{
		size:      size,
		thickness: thickness,
		maxRadius: maxRadius,
		color:     color.Black,
		img:       image.NewRGBA(image.Rect(0, 0, size, size)),
	}
}

// Image returns the painted texture
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size returns the texture side length in texels
func (c *Canvas) Size() int { return c.size }

// SetColor sets the brush color
func (c *Canvas) SetColor(col color.Color) { c.color = col }

// SetThickness sets the brush width in texels
func (c *Canvas) SetThickness(thickness float64) { c.thickness = thickness }

// WorldToTexture maps a disk point to texel coordinates. Texture y grows
// downward.
func (c *Canvas) WorldToTexture(p geometry.Vector2) (float64, float64) {
	s := float64(c.size)
	return s * 0.5 * (1 + p.X), s * 0.5 * (1 - p.Y)
}

// TextureToWorld maps texel coordinates back to the disk
func (c *Canvas) TextureToWorld(x, y float64) geometry.Vector2 {
	s := float64(c.size)
	return geometry.Vector2{X: 2*x/s - 1, Y: 1 - 2*y/s}
}

// LimitPoint pulls p back inside the paintable radius
func (c *Canvas) LimitPoint(p geometry.Vector2) geometry.Vector2 {
	if r := p.Length(); r > c.maxRadius {
		return p.Scale(c.maxRadius / r)
	}
	return p
}

// BeginStroke paints a dot at p and starts a stroke there
func (c *Canvas) BeginStroke(p geometry.Vector2) {
	p = c.LimitPoint(p)
	c.segment(p, p)
	c.last = p
	c.stroking = true
}

// ContinueStroke paints a round-capped segment from the previous stroke
// position to p
func (c *Canvas) ContinueStroke(p geometry.Vector2) {
	if !c.stroking {
		c.BeginStroke(p)
		return
	}
	p = c.LimitPoint(p)
	c.segment(c.last, p)
	c.last = p
}

// EndStroke finishes the current stroke
func (c *Canvas) EndStroke() {
	c.stroking = false
}

// Clear erases the texture
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	c.stroking = false
}

// segment fills the capsule of the brush swept from a to b
func (c *Canvas) segment(a, b geometry.Vector2) {
	ax, ay := c.WorldToTexture(a)
	bx, by := c.WorldToTexture(b)
	r := c.thickness / 2

	angle := math.Atan2(by-ay, bx-ax)
	const steps = 16

	z := vector.NewRasterizer(c.size, c.size)
	// half circle around b, then the opposite half around a
	for i := 0; i <= steps; i++ {
		phi := angle - math.Pi/2 + math.Pi*float64(i)/steps
		x, y := float32(bx+r*math.Cos(phi)), float32(by+r*math.Sin(phi))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	for i := 0; i <= steps; i++ {
		phi := angle + math.Pi/2 + math.Pi*float64(i)/steps
		z.LineTo(float32(ax+r*math.Cos(phi)), float32(ay+r*math.Sin(phi)))
	}
	z.ClosePath()
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(c.color), image.Point{})
}
