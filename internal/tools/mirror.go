package tools

import (
	"github.com/philipparndt/hyperdisk/pkg/diagram"
	"github.com/philipparndt/hyperdisk/pkg/geometry"
)

// minMirrorDrag is the drag length below which no mirror is shown
const minMirrorDrag = 1e-5

// AddMirror drags out a mirror between the press and the pointer. The two
// construction points are discarded on release; the mirror stays.
type AddMirror struct {
	p0, p1 *diagram.Point
	mirror *diagram.Line
}

// Name returns the tool name
func (t *AddMirror) Name() string { return "mirror" }

// PointerDown places both construction points at p
func (t *AddMirror) PointerDown(v Viewer, p geometry.Vector2) {
	g := v.Graph()
	t.p0 = g.CreatePoint(p)
	t.p1 = g.CreatePoint(p)
	t.mirror = nil
}

// PointerDrag refits the mirror, dropping it while the drag is too short
func (t *AddMirror) PointerDrag(v Viewer, pos geometry.Vector2) {
	if t.p0 == nil {
		return
	}
	g := v.Graph()
	g.SetPointPosition(t.p1, pos)

	if t.p0.Pos().Distance(t.p1.Pos()) <= minMirrorDrag {
		if t.mirror != nil {
			g.RemoveMirror(t.mirror)
			t.mirror = nil
		}
		return
	}

	if t.mirror == nil {
		t.mirror = g.CreateMirror()
		if err := g.FitLine(t.mirror, t.p0.Pos(), t.p1.Pos()); err != nil {
			g.RemoveMirror(t.mirror)
			t.mirror = nil
		}
		return
	}
	_ = g.FitLine(t.mirror, t.p0.Pos(), t.p1.Pos())
}

// PointerUp removes the construction points
func (t *AddMirror) PointerUp(v Viewer) {
	g := v.Graph()
	g.RemovePoint(t.p0)
	g.RemovePoint(t.p1)
	t.p0, t.p1, t.mirror = nil, nil, nil
}
