package diagram

import (
	"testing"

	"github.com/philipparndt/hyperdisk/pkg/geometry"
	"github.com/philipparndt/hyperdisk/pkg/hyperbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func vec(x, y float64) geometry.Vector2 { return geometry.NewVector2(x, y) }

// assertConsistent checks incidence symmetry and disk containment
func assertConsistent(t *testing.T, g *Graph) {
	t.Helper()
	for _, pt := range g.Points() {
		assert.LessOrEqual(t, pt.Pos().Length(), 1.0+1e-12, "point %v outside the disk", pt.ID())
		for _, l := range g.LinesOf(pt) {
			assert.True(t, l.hasPoint(pt.ID()), "line %v misses back-reference to %v", l.ID(), pt.ID())
		}
		assert.Len(t, g.LinesOf(pt), len(pt.LineIDs()), "dangling line ids on %v", pt.ID())
	}
	for _, collection := range [][]*Line{g.Lines(), g.Mirrors()} {
		for _, l := range collection {
			for _, pt := range g.PointsOf(l) {
				assert.True(t, pt.hasLine(l.ID()), "point %v misses back-reference to %v", pt.ID(), l.ID())
			}
			assert.Len(t, g.PointsOf(l), len(l.PointIDs()), "dangling point ids on %v", l.ID())
		}
	}
}

// twoPointLine creates a line through two new points at a and b
func twoPointLine(t *testing.T, g *Graph, a, b geometry.Vector2) (*Line, *Point, *Point) {
	t.Helper()
	p0 := g.CreatePoint(a)
	p1 := g.CreatePoint(b)
	l := g.CreateLine()
	require.NoError(t, g.FitLine(l, p0.Pos(), p1.Pos()))
	g.Connect(p0, l)
	g.Connect(p1, l)
	return l, p0, p1
}

func TestClampToDisk(t *testing.T) {
	assert.Equal(t, vec(0.3, 0.4), ClampToDisk(vec(0.3, 0.4)))

	c := ClampToDisk(vec(3, 4))
	assert.InDelta(t, 0.6, c.X, 1e-12)
	assert.InDelta(t, 0.8, c.Y, 1e-12)
}

func TestCreatePointClampsToDisk(t *testing.T) {
	g := New()
	for _, p := range []geometry.Vector2{vec(0, 0), vec(0.5, -0.5), vec(10, 0), vec(-7, 7)} {
		pt := g.CreatePoint(p)
		assert.LessOrEqual(t, pt.Pos().Length(), 1.0+1e-12)
		assert.Empty(t, pt.LineIDs())
	}
	assert.Len(t, g.Points(), 4)
	assertConsistent(t, g)
}

func TestCreateLineDefaults(t *testing.T) {
	g := New()
	l := g.CreateLine()
	m := g.CreateMirror()

	assert.Equal(t, hyperbolic.NewGeodesic(), l.Geodesic())
	assert.False(t, l.IsMirror())
	assert.True(t, m.IsMirror())
	assert.Equal(t, []*Line{l}, g.Lines())
	assert.Equal(t, []*Line{m}, g.Mirrors())
	assert.Empty(t, l.PointIDs())
}

func TestConnectIsSymmetricAndIdempotent(t *testing.T) {
	g := New()
	pt := g.CreatePoint(vec(0.1, 0.2))
	l := g.CreateLine()

	g.Connect(pt, l)
	g.Connect(pt, l)

	assert.Len(t, l.PointIDs(), 1)
	assert.Len(t, pt.LineIDs(), 1)
	assertConsistent(t, g)

	g.Disconnect(pt, l)
	assert.Empty(t, l.PointIDs())
	assert.Empty(t, pt.LineIDs())
}

func TestConnectIgnoresForeignObjects(t *testing.T) {
	g := New()
	other := New()
	pt := other.CreatePoint(vec(0.1, 0.2))
	l := g.CreateLine()

	g.Connect(pt, l)
	assert.Empty(t, l.PointIDs())
	assert.Empty(t, pt.LineIDs())
}

func TestRemovePointCascade(t *testing.T) {
	g := New()
	a := g.CreatePoint(vec(0.2, 0.1))
	l := g.CreateLine()
	g.Connect(a, l)

	g.RemovePoint(a)

	assert.Empty(t, l.PointIDs())
	assert.Empty(t, g.Points())
	assert.False(t, g.OwnsPoint(a))
	_, ok := g.PointByID(a.ID())
	assert.False(t, ok)
	for _, line := range g.Lines() {
		assert.NotContains(t, g.PointsOf(line), a)
	}
	assertConsistent(t, g)
}

func TestRemoveLineDetachesPoints(t *testing.T) {
	g := New()
	l, p0, p1 := twoPointLine(t, g, vec(-0.3, 0.4), vec(0.3, 0.4))

	g.RemoveLine(l)

	assert.Empty(t, g.Lines())
	assert.Empty(t, p0.LineIDs())
	assert.Empty(t, p1.LineIDs())
	assert.Len(t, g.Points(), 2)
	assertConsistent(t, g)
}

func TestRemoveMirrorOnlyRemovesMirrors(t *testing.T) {
	g := New()
	l := g.CreateLine()
	m := g.CreateMirror()

	g.RemoveLine(m)
	g.RemoveMirror(l)
	assert.Len(t, g.Lines(), 1)
	assert.Len(t, g.Mirrors(), 1)

	g.RemoveMirror(m)
	assert.Empty(t, g.Mirrors())
	assert.False(t, g.OwnsLine(m))
}

func TestStructuralErrorsAreNoOps(t *testing.T) {
	g := New()
	other := New()
	foreignPoint := other.CreatePoint(vec(0.1, 0))
	foreignLine := other.CreateLine()
	pt := g.CreatePoint(vec(0.2, 0.2))

	g.RemovePoint(foreignPoint)
	g.RemovePoint(nil)
	g.RemoveLine(foreignLine)
	g.RemoveMirror(nil)
	g.MovePoint(foreignPoint, vec(0.5, 0.5))
	g.MoveLine(foreignLine, vec(0.5, 0.5))

	assert.Equal(t, vec(0.1, 0), foreignPoint.Pos())
	assert.Equal(t, []*Point{pt}, g.Points())

	// removing twice is harmless
	g.RemovePoint(pt)
	g.RemovePoint(pt)
	assert.Empty(t, g.Points())
}

func TestClear(t *testing.T) {
	g := New()
	l, p0, _ := twoPointLine(t, g, vec(-0.3, 0.4), vec(0.3, 0.4))
	m := g.CreateMirror()
	g.Connect(p0, m)

	g.Clear()

	assert.Empty(t, g.Points())
	assert.Empty(t, g.Lines())
	assert.Empty(t, g.Mirrors())
	assert.Empty(t, l.PointIDs())
	assert.Empty(t, p0.LineIDs())
	assert.Nil(t, g.ClosestPoint(vec(0, 0), 10))
	assert.Nil(t, g.ClosestLine(vec(0, 0), 10))

	// stale objects are no longer owned
	g.MovePoint(p0, vec(0, 0))
	assert.NotEqual(t, vec(0, 0), p0.Pos())

	// the graph is usable afterwards
	pt := g.CreatePoint(vec(0.1, 0.1))
	assert.Equal(t, []*Point{pt}, g.Points())
}

func TestClosestPoint(t *testing.T) {
	g := New()
	a := g.CreatePoint(vec(0.1, 0))
	b := g.CreatePoint(vec(-0.1, 0))
	c := g.CreatePoint(vec(0.5, 0.5))

	assert.Same(t, a, g.ClosestPoint(vec(0, 0), 1), "ties go to the first created point")
	assert.Same(t, b, g.ClosestPoint(vec(-0.09, 0), 1))
	assert.Same(t, c, g.ClosestPoint(vec(0.48, 0.5), 0.05))
	assert.Nil(t, g.ClosestPoint(vec(0.3, -0.6), 0.05))

	// the distance bound is exclusive
	assert.Nil(t, g.ClosestPoint(vec(0.1, 0.25), 0.25))
}

func TestClosestLine(t *testing.T) {
	g := New()
	vertical := g.CreateLine()
	horizontal := g.CreateLine()
	require.NoError(t, g.FitLine(horizontal, vec(-0.5, 0), vec(0.5, 0)))
	mirror := g.CreateMirror()

	assert.Same(t, vertical, g.ClosestLine(vec(0.01, 0.5), 0.1))
	assert.Same(t, horizontal, g.ClosestLine(vec(0.5, 0.02), 0.1))
	assert.Nil(t, g.ClosestLine(vec(0.5, 0.5), 0.1))

	// the mirror shares the vertical diameter; lines come first
	assert.Same(t, vertical, g.ClosestLine(vec(0.02, 0.5), 0.1))
	g.RemoveLine(vertical)
	assert.Same(t, mirror, g.ClosestLine(vec(0.02, 0.5), 0.1))
}

func TestMovePointScenario(t *testing.T) {
	g := New()
	l, _, p1 := twoPointLine(t, g, vec(0, 0), vec(0.5, 0))
	require.True(t, l.Geodesic().IsDiametral())
	assert.InDelta(t, 0, l.Geodesic().DistanceTo(vec(0.5, 0)), 1e-12)

	g.MovePoint(p1, vec(0, 0.5))

	geo := l.Geodesic()
	assert.True(t, geo.IsDiametral())
	assert.InDelta(t, 0.5, geo.DistanceTo(vec(0.5, 0)), 1e-9)
	assert.InDelta(t, 0, geo.DistanceTo(vec(0, -0.7)), 1e-9)
	assertConsistent(t, g)
}

func TestMovePointClamps(t *testing.T) {
	g := New()
	pt := g.CreatePoint(vec(0, 0))
	g.MovePoint(pt, vec(0, -5))
	assert.InDelta(t, 1.0, pt.Pos().Length(), 1e-12)
	assert.InDelta(t, -1.0, pt.Pos().Y, 1e-12)
}

func TestMovePointSkipsLinesWithoutTwoPoints(t *testing.T) {
	g := New()
	l, _, p1 := twoPointLine(t, g, vec(-0.3, 0.4), vec(0.3, 0.4))
	extra := g.CreatePoint(l.Geodesic().Point(0.5))
	g.Connect(extra, l)
	before := l.Geodesic()

	g.MovePoint(p1, vec(0.3, -0.2))

	assert.Equal(t, before, l.Geodesic())
	assert.Equal(t, vec(0.3, -0.2), p1.Pos())
	assertConsistent(t, g)
}

func TestMovePointKeepsLineOnCoincidentPoints(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g := New(WithLogger(zap.New(core)))
	l, p0, p1 := twoPointLine(t, g, vec(-0.3, 0.4), vec(0.3, 0.4))
	before := l.Geodesic()

	g.MovePoint(p1, p0.Pos())

	assert.Equal(t, before, l.Geodesic())
	require.Equal(t, 1, logs.FilterMessage("skipping line fit through coincident points").Len())
}

func TestMoveLineUsesParametersFromBeforeTheMove(t *testing.T) {
	g := New()
	l, p0, p1 := twoPointLine(t, g, vec(-0.3, 0.4), vec(0.3, 0.4))
	require.Equal(t, hyperbolic.Circular, l.Geodesic().Kind())

	t0 := l.Geodesic().ParameterAt(p0.Pos())
	t1 := l.Geodesic().ParameterAt(p1.Pos())
	expected := l.Geodesic()
	target := vec(0.1, 0.5)
	expected.MoveTo(target)

	g.MoveLine(l, target)

	geo := l.Geodesic()
	assert.Equal(t, expected, geo)
	assert.InDelta(t, 0, geo.DistanceTo(target), 1e-9)

	want0, want1 := expected.Point(t0), expected.Point(t1)
	assert.InDelta(t, want0.X, p0.Pos().X, 1e-12)
	assert.InDelta(t, want0.Y, p0.Pos().Y, 1e-12)
	assert.InDelta(t, want1.X, p1.Pos().X, 1e-12)
	assert.InDelta(t, want1.Y, p1.Pos().Y, 1e-12)

	assert.InDelta(t, t0, geo.ParameterAt(p0.Pos()), 1e-9)
	assert.InDelta(t, t1, geo.ParameterAt(p1.Pos()), 1e-9)
	assertConsistent(t, g)
}

func TestMoveLineThroughBoundaryAndBack(t *testing.T) {
	g := New()
	l, p0, p1 := twoPointLine(t, g, vec(-0.3, 0.4), vec(0.3, 0.4))

	g.MoveLine(l, vec(0, 1.3))
	require.Equal(t, hyperbolic.Circular, l.Geodesic().Kind())
	assert.Less(t, p0.Pos().X, p1.Pos().X, "points keep their order along the line")

	target := vec(0.1, 0.5)
	g.MoveLine(l, target)

	geo := l.Geodesic()
	assert.Equal(t, hyperbolic.Circular, geo.Kind())
	assert.InDelta(t, 0, geo.DistanceTo(target), 1e-9)
	assert.InDelta(t, 0, geo.DistanceTo(p0.Pos()), 1e-9)
	assert.InDelta(t, 0, geo.DistanceTo(p1.Pos()), 1e-9)
	assert.Less(t, geo.ParameterAt(p0.Pos()), geo.ParameterAt(p1.Pos()))
	assertConsistent(t, g)
}

func TestMoveLineCascadesToTwoPointLines(t *testing.T) {
	g := New()
	l, p0, _ := twoPointLine(t, g, vec(-0.3, 0.4), vec(0.3, 0.4))
	q := g.CreatePoint(vec(-0.2, -0.5))
	other := g.CreateLine()
	require.NoError(t, g.FitLine(other, p0.Pos(), q.Pos()))
	g.Connect(p0, other)
	g.Connect(q, other)

	g.MoveLine(l, vec(0.1, 0.5))

	assert.InDelta(t, 0, other.Geodesic().DistanceTo(p0.Pos()), 1e-9)
	assert.InDelta(t, 0, other.Geodesic().DistanceTo(q.Pos()), 1e-9)
	assert.Equal(t, vec(-0.2, -0.5), q.Pos())
	assertConsistent(t, g)
}

func TestMoveLineDiameterKeepsShape(t *testing.T) {
	g := New()
	l, p0, p1 := twoPointLine(t, g, vec(-0.5, 0), vec(0.5, 0))
	before := l.Geodesic()

	g.MoveLine(l, vec(0.2, 0.3))

	assert.Equal(t, before, l.Geodesic())
	assert.InDelta(t, -0.5, p0.Pos().X, 1e-12)
	assert.InDelta(t, 0.5, p1.Pos().X, 1e-12)
}

func TestOnLineMovedProjectsPoints(t *testing.T) {
	g := New()
	l, p0, p1 := twoPointLine(t, g, vec(-0.3, 0.4), vec(0.3, 0.4))
	q := g.CreatePoint(vec(0.5, -0.4))
	other := g.CreateLine()
	g.Connect(p1, other)
	g.Connect(q, other)

	// rotate the line around p0
	require.NoError(t, g.FitLine(l, p0.Pos(), vec(0.2, -0.3)))
	g.OnLineMoved(l)

	geo := l.Geodesic()
	assert.InDelta(t, 0, geo.DistanceTo(p0.Pos()), 1e-9)
	assert.InDelta(t, 0, geo.DistanceTo(p1.Pos()), 1e-9)
	assert.InDelta(t, 0, other.Geodesic().DistanceTo(p1.Pos()), 1e-9)
	assert.InDelta(t, 0, other.Geodesic().DistanceTo(q.Pos()), 1e-9)
	assertConsistent(t, g)
}

func TestUpdateLineFromPoints(t *testing.T) {
	t.Run("no points", func(t *testing.T) {
		g := New()
		l := g.CreateLine()
		g.UpdateLineFromPoints(l)
		assert.Equal(t, hyperbolic.NewGeodesic(), l.Geodesic())
	})

	t.Run("single point on the line", func(t *testing.T) {
		g := New()
		l, _, p1 := twoPointLine(t, g, vec(-0.3, 0.4), vec(0.3, 0.4))
		g.RemovePoint(p1)
		before := l.Geodesic()

		g.UpdateLineFromPoints(l)
		assert.Equal(t, before, l.Geodesic())
	})

	t.Run("single point drifted off", func(t *testing.T) {
		g := New()
		l, p0, p1 := twoPointLine(t, g, vec(-0.3, 0.4), vec(0.3, 0.4))
		g.RemovePoint(p1)
		g.SetPointPosition(p0, vec(-0.2, 0.6))
		require.Greater(t, l.Geodesic().DistanceTo(p0.Pos()), driftEpsilon)

		g.UpdateLineFromPoints(l)
		assert.InDelta(t, 0, l.Geodesic().DistanceTo(p0.Pos()), 1e-9)
	})

	t.Run("first and last point by insertion", func(t *testing.T) {
		g := New()
		l, p0, p1 := twoPointLine(t, g, vec(-0.3, 0.4), vec(0.3, 0.4))
		p2 := g.CreatePoint(vec(0, 0.2))
		g.Connect(p2, l)
		g.SetPointPosition(p2, vec(0.1, -0.6))

		g.UpdateLineFromPoints(l)

		geo := l.Geodesic()
		assert.InDelta(t, 0, geo.DistanceTo(p0.Pos()), 1e-9)
		assert.InDelta(t, 0, geo.DistanceTo(p2.Pos()), 1e-9)
		assert.Greater(t, geo.DistanceTo(p1.Pos()), 1e-3)
	})
}

func TestSetPointPositionDoesNotRefit(t *testing.T) {
	g := New()
	l, _, p1 := twoPointLine(t, g, vec(-0.3, 0.4), vec(0.3, 0.4))
	before := l.Geodesic()

	g.SetPointPosition(p1, vec(2, 0))

	assert.Equal(t, before, l.Geodesic())
	assert.InDelta(t, 1.0, p1.Pos().X, 1e-12)
}

func TestFitLineLogLevels(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	g := New(WithLogger(zap.New(core)))
	l := g.CreateLine()

	err := g.FitLine(l, vec(0.1, 0.1), vec(0.1, 0.1))
	require.ErrorIs(t, err, hyperbolic.ErrCoincidentPoints)
	assert.Zero(t, logs.Len(), "coincident points are only logged at debug level")

	require.NoError(t, g.FitLine(l, vec(0.1, 0.1), vec(0.4, -0.2)))
	assert.Zero(t, logs.Len())

	before := l.Geodesic()
	err = g.FitLine(l, vec(0.5, 0), vec(-0.3, 3e-8))
	require.ErrorIs(t, err, hyperbolic.ErrCollinearFit)
	assert.Equal(t, before, l.Geodesic())
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "line fit failed", entry.Message)
}

func TestLookups(t *testing.T) {
	g := New()
	l, p0, _ := twoPointLine(t, g, vec(-0.3, 0.4), vec(0.3, 0.4))

	pt, ok := g.PointByID(p0.ID())
	require.True(t, ok)
	assert.Same(t, p0, pt)

	line, ok := g.LineByID(l.ID())
	require.True(t, ok)
	assert.Same(t, l, line)

	assert.Equal(t, []*Line{l}, g.LinesOf(p0))
	assert.Nil(t, g.PointsOf(nil))
	assert.Nil(t, g.LinesOf(nil))
}

func TestGeodesicAccessorReturnsCopy(t *testing.T) {
	g := New()
	l := g.CreateLine()
	geo := l.Geodesic()
	require.NoError(t, geo.SetByPoints(vec(-0.3, 0.4), vec(0.3, 0.4)))
	assert.True(t, l.Geodesic().IsDiametral())
}
