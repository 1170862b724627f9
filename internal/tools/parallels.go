package tools

import (
	"github.com/philipparndt/hyperdisk/pkg/diagram"
	"github.com/philipparndt/hyperdisk/pkg/geometry"
)

// CreateParallels adds the two limiting parallels of the picked line through
// a point that follows the pointer
type CreateParallels struct {
	// PickDistance is how far from a line a press may land
	PickDistance float64

	line   *diagram.Line
	point  *diagram.Point
	l1, l2 *diagram.Line
}

// NewCreateParallels creates the parallels tool
func NewCreateParallels(pickDistance float64) *CreateParallels {
	return &CreateParallels{PickDistance: pickDistance}
}

// Name returns the tool name
func (t *CreateParallels) Name() string { return "parallels" }

// PointerDown picks the nearest line and creates the point and parallels
func (t *CreateParallels) PointerDown(v Viewer, p geometry.Vector2) {
	g := v.Graph()
	t.line = g.ClosestLine(p, t.PickDistance)
	if t.line == nil {
		t.point, t.l1, t.l2 = nil, nil, nil
		return
	}
	t.point, t.l1, t.l2 = g.CreateParallels(t.line, p)
}

// PointerDrag moves the point and refits the parallels
func (t *CreateParallels) PointerDrag(v Viewer, pos geometry.Vector2) {
	if t.line == nil {
		return
	}
	v.Graph().UpdateParallels(t.line, t.point, t.l1, t.l2, pos)
}

// PointerUp ends the gesture
func (t *CreateParallels) PointerUp(v Viewer) {
	t.line, t.point, t.l1, t.l2 = nil, nil, nil, nil
}
