package hyperbolic

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/hyperdisk/pkg/geometry"
)

var (
	// ErrCoincidentPoints is returned when two points are too close to define a line
	ErrCoincidentPoints = errors.New("points are coincident")
	// ErrCollinearFit is returned when the circle fit through the two points
	// and their Klein midpoint degenerates
	ErrCollinearFit = errors.New("geodesic circle fit degenerated")
)

const (
	coincidentEpsilon = 1e-7
	centerEpsilon     = 1e-8
	directionEpsilon  = 1e-8
	// minRadiusSquared is the smallest r² = |c|²-1 accepted for a circular
	// geodesic before falling back to a diameter
	minRadiusSquared = 1e-12
	// maxMoveRadius keeps MoveTo targets off the boundary circle, where the
	// re-centered circle would collapse into a diameter
	maxMoveRadius = 1 - 1e-4
)

// Kind selects the active representation of a Geodesic
type Kind int

const (
	// Diametral geodesics pass through the disk center
	Diametral Kind = iota
	// Circular geodesics are arcs of circles orthogonal to the unit circle
	Circular
)

func (k Kind) String() string {
	switch k {
	case Diametral:
		return "diametral"
	case Circular:
		return "circular"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Geodesic is a hyperbolic line in the Poincaré disk.
//
// It is parameterized by t in [0, 1]; t=0 and t=1 are the two ideal points
// where the line meets the boundary circle. Diametral lines store a unit
// normal and the direction angle phi. Circular lines store the center and
// radius of the orthogonal circle plus the frame (e0 toward the origin, e1
// perpendicular) and the half-angle theta the arc subtends.
type Geodesic struct {
	kind Kind

	// diametral
	normal geometry.Vector2
	phi    float64
	dir    geometry.Vector2

	// circular
	center geometry.Vector2
	radius float64
	e0, e1 geometry.Vector2
	theta  float64
}

// NewGeodesic returns the vertical diameter (normal along +x)
func NewGeodesic() Geodesic {
	var g Geodesic
	g.SetParameters(1, 0, 0)
	return g
}

// GeodesicThrough returns the geodesic through two points
func GeodesicThrough(p0, p1 geometry.Vector2) (Geodesic, error) {
	g := NewGeodesic()
	err := g.SetByPoints(p0, p1)
	return g, err
}

// SetParameters sets the line from homogeneous parameters. With w == 0,
// (cx, cy) is the normal of a diameter; otherwise (cx/w, cy/w) is the center
// of the orthogonal circle.
func (g *Geodesic) SetParameters(cx, cy, w float64) {
	if w == 0 {
		g.setDiameter(geometry.Vector2{X: cx, Y: cy})
		return
	}

	c := geometry.Vector2{X: cx / w, Y: cy / w}
	c2 := c.LengthSquared()
	if c2-1.0 <= minRadiusSquared {
		// center on or inside the unit circle: keep the chord through it
		g.setDiameter(c.Perp())
		return
	}

	cl := math.Sqrt(c2)
	g.kind = Circular
	g.center = c
	g.radius = math.Sqrt(c2 - 1.0)
	g.e0 = c.Scale(-1.0 / cl)
	g.e1 = g.e0.Perp()
	g.theta = math.Acos(g.radius / cl)
}

func (g *Geodesic) setDiameter(normal geometry.Vector2) {
	g.kind = Diametral
	g.normal = normal.Normalize()
	g.phi = math.Atan2(normal.Y, normal.X) + math.Pi/2
	g.dir = geometry.Vector2{X: math.Cos(g.phi), Y: math.Sin(g.phi)}
}

// SetByPoints makes g the geodesic through p0 and p1.
//
// Coincident points return ErrCoincidentPoints and points aligned with the
// disk center give the diameter through the farther one. Otherwise the
// circle is fitted through p0, p1 and their Klein-model midpoint, which is on
// the geodesic and well separated from both. On error g is left unchanged.
func (g *Geodesic) SetByPoints(p0, p1 geometry.Vector2) error {
	if p1.Sub(p0).LengthSquared() < coincidentEpsilon {
		return ErrCoincidentPoints
	}

	if math.Abs(p0.Cross(p1)) < centerEpsilon {
		p := p0
		if p1.LengthSquared() > p0.LengthSquared() {
			p = p1
		}
		n := p.Perp().Normalize()
		g.SetParameters(n.X, n.Y, 0)
		return nil
	}

	k := PoincareToKlein(p0).Lerp(PoincareToKlein(p1), 0.5)
	m := KleinToPoincare(k)
	circle, err := geometry.CircleThroughPoints(p0, p1, m)
	if err != nil {
		return fmt.Errorf("%w: %v, %v, %v: %w", ErrCollinearFit, p0, p1, m, err)
	}
	g.SetParameters(circle.Center.X, circle.Center.Y, 1)
	return nil
}

// SetByPointAndDirection makes g the geodesic through p whose normal at p is u
func (g *Geodesic) SetByPointAndDirection(p, u geometry.Vector2) {
	u = u.Normalize()
	if u == (geometry.Vector2{}) {
		return
	}
	pd := p.Dot(u)
	if math.Abs(pd) < directionEpsilon {
		g.SetParameters(u.X, u.Y, 0)
		return
	}
	// center q = p + λu with |q|² - 1 = λ² (orthogonality to the unit circle)
	lambda := (1 - p.Dot(p)) / (2 * pd)
	q := p.Add(u.Scale(lambda))
	g.SetParameters(q.X, q.Y, 1)
}

// Kind returns the active representation
func (g Geodesic) Kind() Kind { return g.kind }

// IsDiametral reports whether the line passes through the disk center
func (g Geodesic) IsDiametral() bool { return g.kind == Diametral }

// Normal returns the unit normal of a diametral line
func (g Geodesic) Normal() geometry.Vector2 { return g.normal }

// Direction returns the unit direction of a diametral line
func (g Geodesic) Direction() geometry.Vector2 { return g.dir }

// Center returns the center of the orthogonal circle of a circular line
func (g Geodesic) Center() geometry.Vector2 { return g.center }

// Radius returns the radius of the orthogonal circle of a circular line
func (g Geodesic) Radius() float64 { return g.radius }

// Theta returns the half-angle subtended by a circular line
func (g Geodesic) Theta() float64 { return g.theta }

// Thickness is the stroke falloff used to thin lines toward the boundary
func Thickness(p geometry.Vector2) float64 {
	return math.Max(0.1, math.Pow(1.0-p.LengthSquared(), 2.0))
}

func clamp01(t float64) float64 {
	return math.Max(0.0, math.Min(1.0, t))
}

// Point returns the point at parameter t (clamped to [0, 1])
func (g Geodesic) Point(t float64) geometry.Vector2 {
	return g.OffsetPoint(t, 0)
}

// OffsetPoint returns the point at parameter t displaced along the local
// normal by offset, scaled down near the boundary by Thickness
func (g Geodesic) OffsetPoint(t, offset float64) geometry.Vector2 {
	s := -1.0 + 2.0*clamp01(t)

	var pos, normal geometry.Vector2
	switch g.kind {
	case Circular:
		angle := g.theta * s
		cs, sn := math.Cos(angle), math.Sin(angle)
		normal = g.e0.Scale(cs).Add(g.e1.Scale(sn))
		pos = g.center.Add(normal.Scale(g.radius))
	default:
		pos = g.dir.Scale(s)
		normal = g.dir.Perp()
	}

	if offset == 0 {
		return pos
	}
	return pos.Add(normal.Scale(offset * Thickness(pos)))
}

// ParameterAt returns the parameter of the point of g nearest to p
func (g Geodesic) ParameterAt(p geometry.Vector2) float64 {
	var s float64
	switch g.kind {
	case Circular:
		d := p.Sub(g.center)
		s = math.Atan2(d.Dot(g.e1), d.Dot(g.e0)) / g.theta
	default:
		s = p.Dot(g.dir)
	}
	return clamp01(0.5 + s*0.5)
}

// ProjectPoint returns the point of g nearest to p
func (g Geodesic) ProjectPoint(p geometry.Vector2) geometry.Vector2 {
	return g.Point(g.ParameterAt(p))
}

// Endpoints returns the two ideal points of g on the boundary circle
func (g Geodesic) Endpoints() (geometry.Vector2, geometry.Vector2) {
	return g.Point(0), g.Point(1)
}

// ClosestPointToOrigin returns the point of g nearest the disk center
func (g Geodesic) ClosestPointToOrigin() geometry.Vector2 {
	if g.kind == Circular {
		return g.center.Add(g.e0.Scale(g.radius))
	}
	return geometry.Vector2{}
}

// DistanceTo returns the Euclidean distance from p to the visible part of g,
// used for hit testing
func (g Geodesic) DistanceTo(p geometry.Vector2) float64 {
	if g.kind == Diametral {
		u := p.Dot(g.dir)
		switch {
		case u > 1:
			return p.Distance(g.dir)
		case u < -1:
			return p.Distance(g.dir.Scale(-1))
		default:
			return math.Abs(p.Dot(g.dir.Perp()))
		}
	}

	d := p.Sub(g.center)
	if d.Dot(g.e1) < 0 {
		q := g.Point(0)
		if d.Cross(q.Sub(g.center)) > 0 {
			return p.Distance(q)
		}
	} else {
		q := g.Point(1)
		if d.Cross(q.Sub(g.center)) < 0 {
			return p.Distance(q)
		}
	}
	return math.Abs(d.Length() - g.radius)
}

// MoveTo re-centers a circular line so it passes through p with its normal
// at p pointing at the old circle center. Diameters are left unchanged and
// targets on or past the boundary are pulled back inside the disk.
func (g *Geodesic) MoveTo(p geometry.Vector2) {
	if g.kind == Diametral {
		return
	}
	if r := p.Length(); r > maxMoveRadius {
		p = p.Scale(maxMoveRadius / r)
	}
	g.SetByPointAndDirection(p, g.center.Sub(p))
}

// MirrorMatrix returns the reflection across g
func (g Geodesic) MirrorMatrix() Matrix {
	axis := g.normal
	if g.kind == Circular {
		axis = g.center
	}
	phi := math.Atan2(-axis.Y, axis.X)
	reflect := Compose(Rotation(-phi), Scaling(-1, 1), Rotation(phi))
	if g.kind == Diametral {
		return reflect
	}

	m := g.ClosestPointToOrigin()
	return Compose(Translation(m.X, m.Y), reflect, Translation(-m.X, -m.Y))
}

func (g Geodesic) String() string {
	if g.kind == Circular {
		return fmt.Sprintf("circular(center=(%.6f, %.6f), r=%.6f)", g.center.X, g.center.Y, g.radius)
	}
	return fmt.Sprintf("diametral(dir=(%.6f, %.6f))", g.dir.X, g.dir.Y)
}
