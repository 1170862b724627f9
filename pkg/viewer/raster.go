package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// screenPoint is a position in pixels
type screenPoint struct {
	X, Y float64
}

// fillPolygon fills a closed polygon with antialiasing
func fillPolygon(img *image.RGBA, pts []screenPoint, col color.Color) {
	if len(pts) < 3 {
		return
	}
	bounds := img.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Over
	ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)

	z.MoveTo(float32(pts[0].X)-ox, float32(pts[0].Y)-oy)
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X)-ox, float32(p.Y)-oy)
	}
	z.ClosePath()
	z.Draw(img, bounds, image.NewUniform(col), image.Point{})
}

// circlePolygon approximates a circle with n vertices
func circlePolygon(cx, cy, r float64, n int) []screenPoint {
	pts := make([]screenPoint, n)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = screenPoint{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}
	return pts
}

// circleSegments picks a vertex count giving roughly 2px edges
func circleSegments(r float64) int {
	return max(12, min(256, int(math.Pi*r)))
}

// fillCircle fills a disk of radius r around (cx, cy)
func fillCircle(img *image.RGBA, cx, cy, r float64, col color.Color) {
	fillPolygon(img, circlePolygon(cx, cy, r, circleSegments(r)), col)
}

// strokeCircle draws a ring of the given width centered on radius r
func strokeCircle(img *image.RGBA, cx, cy, r, width float64, col color.Color) {
	n := circleSegments(r + width)
	outer := circlePolygon(cx, cy, r+width/2, n)
	inner := circlePolygon(cx, cy, math.Max(0, r-width/2), n)
	// outer ring clockwise, inner counter-clockwise: the hole cancels out
	ring := make([]screenPoint, 0, 2*n+2)
	ring = append(ring, outer...)
	ring = append(ring, outer[0], inner[0])
	for i := n - 1; i >= 0; i-- {
		ring = append(ring, inner[i])
	}
	fillPolygon(img, ring, col)
}

// circleMask rasterizes an alpha mask of a disk, used to clip the texture
func circleMask(bounds image.Rectangle, cx, cy, r float64) *image.Alpha {
	mask := image.NewAlpha(bounds)
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	pts := circlePolygon(cx-float64(bounds.Min.X), cy-float64(bounds.Min.Y), r, circleSegments(r))
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

var (
	labelFaceOnce sync.Once
	labelFace     font.Face
)

// labelFont returns the Go Regular face, or the fixed 7x13 face if it cannot
// be loaded
func labelFont() font.Face {
	labelFaceOnce.Do(func() {
		labelFace = basicfont.Face7x13
		fnt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return
		}
		face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    12,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return
		}
		labelFace = face
	})
	return labelFace
}

// drawText draws text with its baseline starting at (x, y)
func drawText(img *image.RGBA, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: labelFont(),
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
