package tools

import (
	"github.com/philipparndt/hyperdisk/pkg/diagram"
	"github.com/philipparndt/hyperdisk/pkg/geometry"
)

// Move drags points and lines.
//
// Pressing on a point drags it; dragging it past the delete radius removes
// it. Pressing on a line selects it and places a handle on it: dragging the
// handle moves the line, dragging anywhere else on the selected line rotates
// it around the handle.
type Move struct {
	DeleteRadius float64

	currentPoint *diagram.Point
	currentLine  *diagram.Line
	handle       *diagram.Point
	offset       geometry.Vector2
}

// NewMove creates the move tool
func NewMove(deleteRadius float64) *Move {
	return &Move{DeleteRadius: deleteRadius}
}

// Name returns the tool name
func (t *Move) Name() string { return "move" }

// Selected returns the selected line, or nil
func (t *Move) Selected() *diagram.Line { return t.currentLine }

// Handle returns the handle of the selected line, or nil
func (t *Move) Handle() *diagram.Point { return t.handle }

func (t *Move) unselectLine(v Viewer) {
	if t.currentLine != nil {
		t.currentLine.Current = false
	}
	t.currentLine = nil
	if t.handle != nil {
		v.Graph().RemovePoint(t.handle)
	}
	t.handle = nil
}

// PointerDown picks a point, the handle, or a line
func (t *Move) PointerDown(v Viewer, p geometry.Vector2) {
	g := v.Graph()

	if point := closestPoint(v, p); point != nil {
		if point == t.handle && t.currentLine != nil {
			t.currentPoint = point
			return
		}
		t.offset = point.Pos().Sub(p)
		t.currentPoint = point
		t.unselectLine(v)
		return
	}

	t.currentPoint = nil
	line := closestLine(v, p)
	switch {
	case line == nil:
		t.unselectLine(v)
	case line == t.currentLine:
		// rotate around the handle while dragging
	default:
		if t.currentLine != nil {
			t.currentLine.Current = false
		}
		t.currentLine = line
		line.Current = true
		q := line.Geodesic().ProjectPoint(p)
		if t.handle == nil || !g.OwnsPoint(t.handle) {
			t.handle = g.CreatePoint(q)
			t.handle.Handle = true
		} else {
			g.SetPointPosition(t.handle, q)
		}
		t.currentPoint = t.handle
	}
}

// PointerDrag moves, deletes or rotates the current object
func (t *Move) PointerDrag(v Viewer, pos geometry.Vector2) {
	g := v.Graph()

	switch {
	case t.currentPoint != nil && t.currentLine != nil && t.currentPoint == t.handle:
		g.MoveLine(t.currentLine, pos)
		g.SetPointPosition(t.handle, t.currentLine.Geodesic().ProjectPoint(pos))

	case t.currentPoint != nil:
		actual := pos.Add(t.offset)
		if actual.Length() >= t.DeleteRadius {
			g.RemovePoint(t.currentPoint)
			t.currentPoint = nil
			return
		}
		g.MovePoint(t.currentPoint, actual)

	case t.currentLine != nil && t.handle != nil:
		if err := g.FitLine(t.currentLine, t.handle.Pos(), pos); err == nil {
			g.OnLineMoved(t.currentLine)
		}
	}
}

// PointerUp keeps the selection for the next gesture
func (t *Move) PointerUp(v Viewer) {
	t.currentPoint = nil
}

// Deactivate drops the selection and its handle
func (t *Move) Deactivate(v Viewer) {
	t.unselectLine(v)
	t.currentPoint = nil
}
