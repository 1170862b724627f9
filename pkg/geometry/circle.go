package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrCollinear is returned when three points do not determine a circle
var ErrCollinear = errors.New("points are collinear")

// collinearEpsilon bounds the circumcircle denominator (twice the signed
// doubled triangle area) below which the points are treated as collinear.
const collinearEpsilon = 1e-8

// Circle is a Euclidean circle in the plane
type Circle struct {
	Center Vector2
	Radius float64
}

// Contains reports whether p lies inside or on the circle
func (c Circle) Contains(p Vector2) bool {
	return c.Center.Distance(p) <= c.Radius
}

// CircleThroughPoints returns the unique circle passing through three points.
//
// Uses the 3-point determinant formula:
//
//	D  = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
func CircleThroughPoints(p1, p2, p3 Vector2) (Circle, error) {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y

	D := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(D) < collinearEpsilon {
		return Circle{}, fmt.Errorf("%w (denominator %g)", ErrCollinear, D)
	}

	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3

	center := Vector2{
		X: (s1*(y2-y3) + s2*(y3-y1) + s3*(y1-y2)) / D,
		Y: (s1*(x3-x2) + s2*(x1-x3) + s3*(x2-x1)) / D,
	}

	return Circle{Center: center, Radius: center.Distance(p1)}, nil
}
