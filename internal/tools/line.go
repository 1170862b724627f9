package tools

import (
	"github.com/philipparndt/hyperdisk/pkg/diagram"
	"github.com/philipparndt/hyperdisk/pkg/geometry"
)

// AddLineAndPoint creates points and the line between them. Pressing on an
// existing point reuses it; releasing over one snaps the line to it.
type AddLineAndPoint struct {
	p0, p1   *diagram.Point
	p1IsFree bool
	line     *diagram.Line
	// fitted is false while the line does not pass through p0 and p1
	fitted bool
}

// Name returns the tool name
func (t *AddLineAndPoint) Name() string { return "line" }

// PointerDown picks or creates the first point
func (t *AddLineAndPoint) PointerDown(v Viewer, p geometry.Vector2) {
	q := closestPoint(v, p)
	if q == nil {
		q = v.Graph().CreatePoint(p)
	}
	t.p0, t.p1 = q, q
	t.p1IsFree = false
	t.line = nil
	t.fitted = false
}

// PointerDrag moves the free end, snapping to existing points
func (t *AddLineAndPoint) PointerDrag(v Viewer, p geometry.Vector2) {
	if t.p0 == nil {
		return
	}
	g := v.Graph()
	if t.p1IsFree {
		g.RemovePoint(t.p1)
	}
	if q := closestPoint(v, p); q != nil {
		t.p1 = q
		t.p1IsFree = false
	} else {
		t.p1 = g.CreatePoint(p)
		t.p1IsFree = true
	}

	if t.p1 == t.p0 {
		if t.line != nil {
			g.RemoveLine(t.line)
			t.line = nil
		}
		return
	}
	if t.line == nil {
		t.line = g.CreateLine()
		if err := g.FitLine(t.line, t.p0.Pos(), t.p1.Pos()); err != nil {
			g.RemoveLine(t.line)
			t.line = nil
			t.fitted = false
			return
		}
		t.fitted = true
		return
	}
	t.fitted = g.FitLine(t.line, t.p0.Pos(), t.p1.Pos()) == nil
}

// PointerUp binds the line to both end points. A line whose last fit failed
// is dropped instead.
func (t *AddLineAndPoint) PointerUp(v Viewer) {
	g := v.Graph()
	if t.line != nil {
		if t.fitted && t.p0 != t.p1 {
			g.Connect(t.p0, t.line)
			g.Connect(t.p1, t.line)
		} else {
			g.RemoveLine(t.line)
		}
	}
	t.p0, t.p1 = nil, nil
	t.p1IsFree = false
	t.line = nil
	t.fitted = false
}
