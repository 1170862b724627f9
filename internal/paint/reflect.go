package paint

import (
	"fmt"
	"image"
	"math"

	"github.com/philipparndt/hyperdisk/pkg/hyperbolic"
)

// diskLimit keeps sampling away from the boundary where the hyperboloid
// lift diverges
const diskLimit = 0.9999

// Reflected returns the painted texture with its image under m composited
// over it. Each texel inside the disk samples the painted texture at the
// preimage of its disk position.
func (c *Canvas) Reflected(m hyperbolic.Matrix) (*image.RGBA, error) {
	inv, err := m.Normalize().Inverse()
	if err != nil {
		return nil, fmt.Errorf("failed to invert mirror transform: %w", err)
	}

	src := c.img
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)

	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			p := c.TextureToWorld(float64(x)+0.5, float64(y)+0.5)
			if p.LengthSquared() >= diskLimit*diskLimit {
				continue
			}
			q := hyperbolic.TransformPoint(inv, p)
			if !q.IsFinite() || q.LengthSquared() >= 1 {
				continue
			}
			tx, ty := c.WorldToTexture(q)
			sx, sy := int(math.Floor(tx)), int(math.Floor(ty))
			if sx < 0 || sy < 0 || sx >= c.size || sy >= c.size {
				continue
			}
			blendOver(out, x, y, src, sx, sy)
		}
	}
	return out, nil
}

// blendOver composites the premultiplied source texel over the destination
func blendOver(dst *image.RGBA, x, y int, src *image.RGBA, sx, sy int) {
	s := src.PixOffset(sx, sy)
	sa := uint32(src.Pix[s+3])
	if sa == 0 {
		return
	}
	d := dst.PixOffset(x, y)
	for i := 0; i < 4; i++ {
		v := uint32(src.Pix[s+i]) + uint32(dst.Pix[d+i])*(255-sa)/255
		dst.Pix[d+i] = uint8(min(v, 255))
	}
}
