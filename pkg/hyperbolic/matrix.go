package hyperbolic

import (
	"fmt"
	"math"

	"github.com/philipparndt/hyperdisk/pkg/geometry"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a 4x4 transform of homogeneous hyperboloid coordinates.
// Values are immutable; every operation returns a new Matrix.
// The zero value is the identity.
type Matrix struct {
	m *mat.Dense
}

func newMatrix(rows [16]float64) Matrix {
	return Matrix{m: mat.NewDense(4, 4, rows[:])}
}

func (a Matrix) dense() *mat.Dense {
	if a.m == nil {
		return Identity().m
	}
	return a.m
}

// Identity returns the identity transform
func Identity() Matrix {
	return newMatrix([16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Rotation returns the rotation by phi radians around the hyperboloid axis
// (a Euclidean rotation of the disk around its center)
func Rotation(phi float64) Matrix {
	cs, sn := math.Cos(phi), math.Sin(phi)
	return newMatrix([16]float64{
		cs, -sn, 0, 0,
		sn, cs, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Scaling returns a diagonal transform of the x and y axes.
// Only sx, sy in {-1, 1} yield isometries.
func Scaling(sx, sy float64) Matrix {
	return newMatrix([16]float64{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Boost returns the Lorentz boost of rapidity h along the x axis
func Boost(h float64) Matrix {
	ch, sh := math.Cosh(h), math.Sinh(h)
	return newMatrix([16]float64{
		ch, 0, sh, 0,
		0, 1, 0, 0,
		sh, 0, ch, 0,
		0, 0, 0, 1,
	})
}

// Translation returns the hyperbolic translation carrying the origin to the
// disk point (dx, dy). The closed-form boost only exists along a principal
// axis, so the displacement is rotated onto x, boosted and rotated back.
func Translation(dx, dy float64) Matrix {
	d := math.Hypot(dx, dy)
	if d == 0 {
		return Identity()
	}
	theta := math.Atan2(dy, dx)
	h := 2 * math.Atanh(d)
	return Compose(Rotation(theta), Boost(h), Rotation(-theta))
}

// Compose multiplies the matrices left to right; the rightmost one is
// applied to a point first
func Compose(ms ...Matrix) Matrix {
	result := Identity()
	for _, m := range ms {
		result = result.Mul(m)
	}
	return result
}

// Mul returns a·b
func (a Matrix) Mul(b Matrix) Matrix {
	var out mat.Dense
	out.Mul(a.dense(), b.dense())
	return Matrix{m: &out}
}

// Inverse returns the inverse transform
func (a Matrix) Inverse() (Matrix, error) {
	var out mat.Dense
	if err := out.Inverse(a.dense()); err != nil {
		return Matrix{}, fmt.Errorf("invert transform: %w", err)
	}
	return Matrix{m: &out}, nil
}

// At returns the element at row i, column j
func (a Matrix) At(i, j int) float64 {
	return a.dense().At(i, j)
}

// Rows returns the elements in row-major order
func (a Matrix) Rows() [16]float64 {
	var rows [16]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			rows[i*4+j] = a.At(i, j)
		}
	}
	return rows
}

// Equal reports whether both matrices agree element-wise within epsilon
func (a Matrix) Equal(b Matrix, epsilon float64) bool {
	return mat.EqualApprox(a.dense(), b.dense(), epsilon)
}

// IsOrientationReversing reports whether the transform flips the disk
func (a Matrix) IsOrientationReversing() bool {
	return mat.Det(a.dense().Slice(0, 3, 0, 3)) < 0
}

// Apply transforms a hyperboloid point
func (a Matrix) Apply(q HPoint) HPoint {
	v := mat.NewVecDense(4, []float64{q.X, q.Y, q.Z, q.W})
	var out mat.VecDense
	out.MulVec(a.dense(), v)
	return HPoint{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2), W: out.AtVec(3)}
}

// TransformPoint applies the transform to a disk point by way of the
// hyperboloid
func TransformPoint(m Matrix, p geometry.Vector2) geometry.Vector2 {
	return HyperboloidToPoincare(m.Apply(PoincareToHyperboloid(p)))
}

// Normalize rebuilds the isometry from where it sends the origin and the
// direction it gives the x axis, discarding accumulated rounding drift.
// Orientation-reversing transforms keep their flip.
func (a Matrix) Normalize() Matrix {
	p := TransformPoint(a, geometry.Vector2{})
	centered := Translation(-p.X, -p.Y).Mul(a)
	q := TransformPoint(centered, geometry.Vector2{X: 0.5})
	phi := math.Atan2(q.Y, q.X)
	if a.IsOrientationReversing() {
		return Compose(Translation(p.X, p.Y), Rotation(phi), Scaling(1, -1))
	}
	return Compose(Translation(p.X, p.Y), Rotation(phi))
}
