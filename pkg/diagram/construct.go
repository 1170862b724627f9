package diagram

import (
	"github.com/philipparndt/hyperdisk/pkg/geometry"
	"github.com/philipparndt/hyperdisk/pkg/hyperbolic"
)

// CreateParallels adds a point at p and the two limiting parallels of line
// through it. It returns nils when line does not belong to the graph.
func (g *Graph) CreateParallels(line *Line, p geometry.Vector2) (*Point, *Line, *Line) {
	if !g.OwnsLine(line) {
		return nil, nil, nil
	}
	pt := g.CreatePoint(p)
	l1 := g.CreateLine()
	l2 := g.CreateLine()
	g.UpdateParallels(line, pt, l1, l2, pt.pos)
	return pt, l1, l2
}

// UpdateParallels moves pt to pos and refits l1 and l2 from the ideal
// endpoints of line through it
func (g *Graph) UpdateParallels(line *Line, pt *Point, l1, l2 *Line, pos geometry.Vector2) {
	if !g.OwnsLine(line) || !g.OwnsPoint(pt) {
		return
	}
	pt.pos = ClampToDisk(pos)
	a, b := line.geodesic.Endpoints()
	if g.OwnsLine(l1) {
		_ = g.FitLine(l1, a, pt.pos)
	}
	if g.OwnsLine(l2) {
		_ = g.FitLine(l2, b, pt.pos)
	}
}

// MirrorMatrix composes the reflections of all mirrors in creation order
func (g *Graph) MirrorMatrix() hyperbolic.Matrix {
	gs := make([]hyperbolic.Geodesic, len(g.mirrors))
	for i, m := range g.mirrors {
		gs[i] = m.geodesic
	}
	return hyperbolic.MirrorChain(gs...)
}
