package diagram

import (
	"slices"

	"github.com/google/uuid"
	"github.com/philipparndt/hyperdisk/pkg/hyperbolic"
)

// Line is a geodesic of the diagram and the ids of its control points
type Line struct {
	id       uuid.UUID
	geodesic hyperbolic.Geodesic
	points   []uuid.UUID
	mirror   bool

	// Current highlights the line selected by the move tool
	Current bool
}

// ID returns the line's id
func (l *Line) ID() uuid.UUID { return l.id }

// Geodesic returns a copy of the line's geodesic
func (l *Line) Geodesic() hyperbolic.Geodesic { return l.geodesic }

// PointIDs returns the ids of incident points in insertion order
func (l *Line) PointIDs() []uuid.UUID { return slices.Clone(l.points) }

// IsMirror reports whether the line belongs to the mirrors collection
func (l *Line) IsMirror() bool { return l.mirror }

func (l *Line) hasPoint(id uuid.UUID) bool {
	return slices.Contains(l.points, id)
}

func (l *Line) removePoint(id uuid.UUID) {
	l.points = slices.DeleteFunc(l.points, func(v uuid.UUID) bool { return v == id })
}
