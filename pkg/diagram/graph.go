package diagram

import (
	"errors"
	"slices"

	"github.com/google/uuid"
	"github.com/philipparndt/hyperdisk/pkg/geometry"
	"github.com/philipparndt/hyperdisk/pkg/hyperbolic"
	"go.uber.org/zap"
)

// driftEpsilon is how far a single control point may sit off its line
// before UpdateLineFromPoints re-centers the line on it
const driftEpsilon = 1e-5

// Graph owns the points, construction lines and mirrors of a diagram
type Graph struct {
	logger *zap.Logger

	points  []*Point
	lines   []*Line
	mirrors []*Line

	pointsByID map[uuid.UUID]*Point
	linesByID  map[uuid.UUID]*Line
}

// Option configures a Graph
type Option func(*Graph)

// WithLogger sets the logger used to report degenerate fits
func WithLogger(logger *zap.Logger) Option {
	return func(g *Graph) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates an empty graph
func New(opts ...Option) *Graph {
	g := &Graph{
		logger:     zap.NewNop(),
		pointsByID: make(map[uuid.UUID]*Point),
		linesByID:  make(map[uuid.UUID]*Line),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ClampToDisk scales p back onto the unit circle when it lies outside
func ClampToDisk(p geometry.Vector2) geometry.Vector2 {
	r := p.Length()
	if r > 1.0 {
		return p.Scale(1.0 / r)
	}
	return p
}

// CreatePoint stores a new point at p (clamped to the disk)
func (g *Graph) CreatePoint(p geometry.Vector2) *Point {
	pt := &Point{id: uuid.New(), pos: ClampToDisk(p)}
	g.points = append(g.points, pt)
	g.pointsByID[pt.id] = pt
	return pt
}

// RemovePoint detaches pt from all its lines and discards it
func (g *Graph) RemovePoint(pt *Point) {
	if !g.OwnsPoint(pt) {
		return
	}
	g.points = slices.DeleteFunc(g.points, func(v *Point) bool { return v == pt })
	delete(g.pointsByID, pt.id)

	for _, id := range pt.lines {
		if l, ok := g.linesByID[id]; ok {
			l.removePoint(pt.id)
		}
	}
	pt.lines = nil
}

// CreateLine stores a new construction line with the default geodesic
func (g *Graph) CreateLine() *Line {
	l := g.newLine(false)
	g.lines = append(g.lines, l)
	return l
}

// CreateMirror stores a new mirror with the default geodesic
func (g *Graph) CreateMirror() *Line {
	l := g.newLine(true)
	g.mirrors = append(g.mirrors, l)
	return l
}

func (g *Graph) newLine(mirror bool) *Line {
	l := &Line{id: uuid.New(), geodesic: hyperbolic.NewGeodesic(), mirror: mirror}
	g.linesByID[l.id] = l
	return l
}

// RemoveLine detaches l from its points and discards it.
// Mirrors are not affected; use RemoveMirror.
func (g *Graph) RemoveLine(l *Line) {
	if l == nil || l.mirror || !g.OwnsLine(l) {
		return
	}
	g.lines = slices.DeleteFunc(g.lines, func(v *Line) bool { return v == l })
	g.dropLine(l)
}

// RemoveMirror detaches m from its points and discards it
func (g *Graph) RemoveMirror(m *Line) {
	if m == nil || !m.mirror || !g.OwnsLine(m) {
		return
	}
	g.mirrors = slices.DeleteFunc(g.mirrors, func(v *Line) bool { return v == m })
	g.dropLine(m)
}

func (g *Graph) dropLine(l *Line) {
	delete(g.linesByID, l.id)
	for _, id := range l.points {
		if pt, ok := g.pointsByID[id]; ok {
			pt.removeLine(l.id)
		}
	}
	l.points = nil
}

// Connect records that pt lies on l. Both must belong to the graph.
func (g *Graph) Connect(pt *Point, l *Line) {
	if !g.OwnsPoint(pt) || !g.OwnsLine(l) {
		return
	}
	if !l.hasPoint(pt.id) {
		l.points = append(l.points, pt.id)
	}
	if !pt.hasLine(l.id) {
		pt.lines = append(pt.lines, l.id)
	}
}

// Disconnect removes the incidence between pt and l in both directions
func (g *Graph) Disconnect(pt *Point, l *Line) {
	if pt == nil || l == nil {
		return
	}
	l.removePoint(pt.id)
	pt.removeLine(l.id)
}

// ClosestPoint returns the point nearest to p within maxDistance, or nil.
// On equal distances the earlier created point wins.
func (g *Graph) ClosestPoint(p geometry.Vector2, maxDistance float64) *Point {
	var found *Point
	best := maxDistance
	for _, pt := range g.points {
		if d := pt.pos.Distance(p); d < best {
			best = d
			found = pt
		}
	}
	return found
}

// ClosestLine returns the line or mirror nearest to p within maxDistance, or
// nil. Construction lines are scanned before mirrors and the first one wins
// on equal distances.
func (g *Graph) ClosestLine(p geometry.Vector2, maxDistance float64) *Line {
	var found *Line
	best := maxDistance
	for _, collection := range [][]*Line{g.lines, g.mirrors} {
		for _, l := range collection {
			if d := l.geodesic.DistanceTo(p); d < best {
				best = d
				found = l
			}
		}
	}
	return found
}

// SetPointPosition moves pt without updating its lines
func (g *Graph) SetPointPosition(pt *Point, pos geometry.Vector2) {
	if !g.OwnsPoint(pt) {
		return
	}
	pt.pos = ClampToDisk(pos)
}

// MovePoint moves pt and refits every incident line held by exactly two
// points
func (g *Graph) MovePoint(pt *Point, pos geometry.Vector2) {
	if !g.OwnsPoint(pt) {
		return
	}
	pt.pos = ClampToDisk(pos)
	for _, id := range pt.lines {
		if l, ok := g.linesByID[id]; ok {
			g.refitTwoPointLine(l)
		}
	}
}

// MoveLine re-centers l on pos, slides its points along to the same
// parameters on the moved line and refits the two-point lines they also
// belong to
func (g *Graph) MoveLine(l *Line, pos geometry.Vector2) {
	if !g.OwnsLine(l) {
		return
	}
	pos = ClampToDisk(pos)

	pts := g.PointsOf(l)
	params := make([]float64, len(pts))
	for i, pt := range pts {
		params[i] = l.geodesic.ParameterAt(pt.pos)
	}

	l.geodesic.MoveTo(pos)

	for i, pt := range pts {
		pt.pos = ClampToDisk(l.geodesic.Point(params[i]))
		g.cascade(pt, l)
	}
}

// OnLineMoved projects the points of l onto its current geodesic and refits
// the two-point lines they also belong to. Call it after changing the
// geodesic of l directly.
func (g *Graph) OnLineMoved(l *Line) {
	if !g.OwnsLine(l) {
		return
	}
	for _, pt := range g.PointsOf(l) {
		pt.pos = ClampToDisk(l.geodesic.ProjectPoint(pt.pos))
		g.cascade(pt, l)
	}
}

func (g *Graph) cascade(pt *Point, moved *Line) {
	for _, id := range pt.lines {
		if id == moved.id {
			continue
		}
		if other, ok := g.linesByID[id]; ok {
			g.refitTwoPointLine(other)
		}
	}
}

func (g *Graph) refitTwoPointLine(l *Line) {
	if len(l.points) != 2 {
		return
	}
	p0, ok0 := g.pointsByID[l.points[0]]
	p1, ok1 := g.pointsByID[l.points[1]]
	if !ok0 || !ok1 {
		return
	}
	_ = g.FitLine(l, p0.pos, p1.pos)
}

// UpdateLineFromPoints re-derives the geodesic of l from its points.
// A single point re-centers the line on it once it has drifted away; two or
// more refit the line through the first and the last point in insertion
// order.
func (g *Graph) UpdateLineFromPoints(l *Line) {
	if !g.OwnsLine(l) {
		return
	}
	pts := g.PointsOf(l)
	switch len(pts) {
	case 0:
		return
	case 1:
		p := pts[0].pos
		if p.Distance(l.geodesic.ProjectPoint(p)) < driftEpsilon {
			return
		}
		l.geodesic.MoveTo(p)
	default:
		_ = g.FitLine(l, pts[0].pos, pts[len(pts)-1].pos)
	}
}

// FitLine sets the geodesic of l through p0 and p1. Degenerate input leaves
// the line unchanged and is logged.
func (g *Graph) FitLine(l *Line, p0, p1 geometry.Vector2) error {
	if l == nil {
		return nil
	}
	err := l.geodesic.SetByPoints(p0, p1)
	switch {
	case err == nil:
	case errors.Is(err, hyperbolic.ErrCoincidentPoints):
		g.logger.Debug("skipping line fit through coincident points",
			zap.Stringer("line", l.id),
			zap.Float64("distance", p0.Distance(p1)))
	default:
		g.logger.Warn("line fit failed",
			zap.Stringer("line", l.id),
			zap.Error(err))
	}
	return err
}

// Clear discards every point, line and mirror. Discarded objects lose their
// incidence so stale references reach nothing.
func (g *Graph) Clear() {
	for _, pt := range g.points {
		pt.lines = nil
	}
	for _, l := range g.lines {
		l.points = nil
	}
	for _, m := range g.mirrors {
		m.points = nil
	}
	g.points = nil
	g.lines = nil
	g.mirrors = nil
	g.pointsByID = make(map[uuid.UUID]*Point)
	g.linesByID = make(map[uuid.UUID]*Line)
}

// Points returns the points in creation order
func (g *Graph) Points() []*Point { return slices.Clone(g.points) }

// Lines returns the construction lines in creation order
func (g *Graph) Lines() []*Line { return slices.Clone(g.lines) }

// Mirrors returns the mirrors in creation order
func (g *Graph) Mirrors() []*Line { return slices.Clone(g.mirrors) }

// PointsOf returns the points of l in insertion order
func (g *Graph) PointsOf(l *Line) []*Point {
	if l == nil {
		return nil
	}
	pts := make([]*Point, 0, len(l.points))
	for _, id := range l.points {
		if pt, ok := g.pointsByID[id]; ok {
			pts = append(pts, pt)
		}
	}
	return pts
}

// LinesOf returns the lines and mirrors pt lies on
func (g *Graph) LinesOf(pt *Point) []*Line {
	if pt == nil {
		return nil
	}
	lines := make([]*Line, 0, len(pt.lines))
	for _, id := range pt.lines {
		if l, ok := g.linesByID[id]; ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// PointByID looks up a point
func (g *Graph) PointByID(id uuid.UUID) (*Point, bool) {
	pt, ok := g.pointsByID[id]
	return pt, ok
}

// LineByID looks up a line or mirror
func (g *Graph) LineByID(id uuid.UUID) (*Line, bool) {
	l, ok := g.linesByID[id]
	return l, ok
}

// OwnsPoint reports whether pt belongs to the graph
func (g *Graph) OwnsPoint(pt *Point) bool {
	return pt != nil && g.pointsByID[pt.id] == pt
}

// OwnsLine reports whether l is a line or mirror of the graph
func (g *Graph) OwnsLine(l *Line) bool {
	return l != nil && g.linesByID[l.id] == l
}
