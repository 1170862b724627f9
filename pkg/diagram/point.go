package diagram

import (
	"slices"

	"github.com/google/uuid"
	"github.com/philipparndt/hyperdisk/pkg/geometry"
)

// Point is a diagram point and the ids of the lines it lies on
type Point struct {
	id    uuid.UUID
	pos   geometry.Vector2
	lines []uuid.UUID

	// Handle marks the temporary point used to drag a selected line
	Handle bool
}

// ID returns the point's id
func (p *Point) ID() uuid.UUID { return p.id }

// Pos returns the point's position in disk coordinates
func (p *Point) Pos() geometry.Vector2 { return p.pos }

// LineIDs returns the ids of incident lines in connection order
func (p *Point) LineIDs() []uuid.UUID { return slices.Clone(p.lines) }

func (p *Point) hasLine(id uuid.UUID) bool {
	return slices.Contains(p.lines, id)
}

func (p *Point) removeLine(id uuid.UUID) {
	p.lines = slices.DeleteFunc(p.lines, func(v uuid.UUID) bool { return v == id })
}
