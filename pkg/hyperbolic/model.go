package hyperbolic

import (
	"math"

	"github.com/philipparndt/hyperdisk/pkg/geometry"
)

// HPoint is a point of the hyperboloid model in homogeneous coordinates
type HPoint struct {
	X, Y, Z, W float64
}

// Add returns the component-wise sum of the spatial parts; W is kept at 1
func (h HPoint) Add(other HPoint) HPoint {
	return HPoint{X: h.X + other.X, Y: h.Y + other.Y, Z: h.Z + other.Z, W: 1}
}

// LorentzDot returns the Minkowski inner product x₁x₂ + y₁y₂ - z₁z₂
func LorentzDot(a, b HPoint) float64 {
	return a.X*b.X + a.Y*b.Y - a.Z*b.Z
}

// PoincareToHyperboloid lifts a disk point onto the hyperboloid sheet
func PoincareToHyperboloid(p geometry.Vector2) HPoint {
	t := 2.0 / (1.0 - p.LengthSquared())
	return HPoint{X: t * p.X, Y: t * p.Y, Z: t - 1.0, W: 1.0}
}

// HyperboloidToPoincare projects a hyperboloid point back into the disk
func HyperboloidToPoincare(q HPoint) geometry.Vector2 {
	d := 1.0 / (q.W + q.Z)
	return geometry.Vector2{X: q.X * d, Y: q.Y * d}
}

// PoincareToKlein maps a Poincaré disk point to the Klein disk
func PoincareToKlein(p geometry.Vector2) geometry.Vector2 {
	s := 2.0 / (1.0 + p.LengthSquared())
	return p.Scale(s)
}

// KleinToPoincare maps a Klein disk point to the Poincaré disk
func KleinToPoincare(k geometry.Vector2) geometry.Vector2 {
	s := 1.0 / (1.0 + math.Sqrt(1.0-k.LengthSquared()))
	return k.Scale(s)
}

// Midpoint returns the hyperbolic midpoint of two disk points
func Midpoint(a, b geometry.Vector2) geometry.Vector2 {
	sum := PoincareToHyperboloid(a).Add(PoincareToHyperboloid(b))
	factor := 1.0 / math.Sqrt(sum.Z*sum.Z-sum.X*sum.X-sum.Y*sum.Y)
	return HyperboloidToPoincare(HPoint{
		X: sum.X * factor,
		Y: sum.Y * factor,
		Z: sum.Z * factor,
		W: 1,
	})
}

// Distance returns the hyperbolic distance between two disk points
func Distance(a, b geometry.Vector2) float64 {
	d := -LorentzDot(PoincareToHyperboloid(a), PoincareToHyperboloid(b))
	// rounding can push d just below 1 for coincident points
	return math.Acosh(math.Max(1.0, d))
}
