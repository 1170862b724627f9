package hyperbolic

import (
	"errors"

	"github.com/philipparndt/hyperdisk/pkg/geometry"
)

// LimitingParallels returns the two geodesics through p that meet g at its
// ideal endpoints (the first through Point(0), the second through Point(1)).
func LimitingParallels(g Geodesic, p geometry.Vector2) (Geodesic, Geodesic, error) {
	a, b := g.Endpoints()
	first, second := NewGeodesic(), NewGeodesic()
	errFirst := first.SetByPoints(a, p)
	errSecond := second.SetByPoints(b, p)
	return first, second, errors.Join(errFirst, errSecond)
}

// MirrorChain composes the reflections across gs in order, M₁·M₂·…·Mₙ.
// An empty chain is the identity.
func MirrorChain(gs ...Geodesic) Matrix {
	m := Identity()
	for _, g := range gs {
		m = m.Mul(g.MirrorMatrix())
	}
	return m
}
