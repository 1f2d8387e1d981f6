package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gospline/pkg/geometry"
)

const tolerance = 1e-9

func v3(x, y, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, z)
}

func assertVector(t *testing.T, expected, actual geometry.Vector3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, tolerance, msgAndArgs...)
}

// assertLayout checks the point multiplicity of open and closed polygons.
func assertLayout(t *testing.T, p *ControlPolygon) {
	t.Helper()
	n := p.NumPoints()
	if p.Closed() {
		assert.Zero(t, n%3, "closed polygon with %d points", n)
		assert.Equal(t, n/3, p.NumSegments())
	} else {
		assert.Equal(t, 1, n%3, "open polygon with %d points", n)
		assert.Equal(t, (n-1)/3, p.NumSegments())
	}
	if angles := p.Angles(); angles != nil {
		assert.Len(t, angles, p.NumAnchors())
	}
}

func threeSegmentLine() *ControlPolygon {
	p, err := NewPrimitive(PrimitiveLine, geometry.Zero, 3, 3)
	if err != nil {
		panic(err)
	}
	return p
}

func TestNewSeed(t *testing.T) {
	p := New(v3(1, 2, 3))

	require.Equal(t, 4, p.NumPoints())
	assert.False(t, p.Closed())
	assert.Equal(t, PolicyFree, p.Policy())
	assert.Equal(t, 1, p.NumSegments())
	assert.Equal(t, 2, p.NumAnchors())
	assertVector(t, v3(0, 2, 3), p.Points()[0])
	assertVector(t, v3(0.5, 2, 3.5), p.Points()[1])
	assertVector(t, v3(1.5, 2, 2.5), p.Points()[2])
	assertVector(t, v3(2, 2, 3), p.Points()[3])
	assert.Nil(t, p.Angles())
}

func TestFromPoints(t *testing.T) {
	points := New(geometry.Zero).Points()

	p, err := FromPoints(points, false)
	require.NoError(t, err)
	assert.Equal(t, points, p.Points())

	_, err = FromPoints(points, true)
	assert.ErrorIs(t, err, ErrInvalidPointCount)

	_, err = FromPoints(points[:3], false)
	assert.ErrorIs(t, err, ErrInvalidPointCount)

	p, err = FromPoints(append(points, v3(1, 1, 1), v3(2, 2, 2)), true)
	require.NoError(t, err)
	assert.Equal(t, 2, p.NumSegments())
}

func TestPointsReturnsCopy(t *testing.T) {
	p := New(geometry.Zero)
	points := p.Points()
	points[0] = v3(100, 100, 100)

	first, err := p.Point(0)
	require.NoError(t, err)
	assertVector(t, v3(-1, 0, 0), first)

	_, err = p.Point(4)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = p.Point(-1)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestSetClosedRoundTrip(t *testing.T) {
	p := New(geometry.Zero)
	original := p.Points()

	require.NoError(t, p.SetClosed(true))
	assert.True(t, p.Closed())
	require.Equal(t, 6, p.NumPoints())
	assert.Equal(t, 2, p.NumSegments())
	assertVector(t, v3(1.5, 0, 0.5), p.Points()[4])
	assertVector(t, v3(-1.5, 0, -0.5), p.Points()[5])

	seg, err := p.SegmentPoints(1)
	require.NoError(t, err)
	assertVector(t, v3(1, 0, 0), seg[0])
	assertVector(t, v3(-1, 0, 0), seg[3], "last segment wraps to the first anchor")

	require.NoError(t, p.SetClosed(false))
	assert.Equal(t, original, p.Points())

	require.NoError(t, p.SetClosed(false), "opening an open polygon is a no-op")
	assert.Equal(t, original, p.Points())
}

func TestSetClosedRejectsTooFewPoints(t *testing.T) {
	p := &ControlPolygon{points: []geometry.Vector3{v3(0, 0, 0)}}
	err := p.SetClosed(true)
	assert.ErrorIs(t, err, ErrInvalidPointCount)
	assert.False(t, p.Closed())
	assert.Equal(t, 1, p.NumPoints())
}

func TestAddSegment(t *testing.T) {
	p := New(geometry.Zero)
	require.NoError(t, p.AddSegment(v3(3, 0, 0)))

	require.Equal(t, 7, p.NumPoints())
	points := p.Points()
	assertVector(t, v3(1.5, 0, 0.5), points[4], "outgoing control continues the tangent")
	assertVector(t, v3(2.25, 0, 0.25), points[5])
	assertVector(t, v3(3, 0, 0), points[6])
	assertLayout(t, p)
}

func TestAddSegmentToEmptyPolygon(t *testing.T) {
	var p ControlPolygon
	require.NoError(t, p.AddSegment(v3(1, 0, 0)))
	assert.Equal(t, 1, p.NumPoints())
	assert.Equal(t, 0, p.NumSegments())

	require.NoError(t, p.AddSegment(v3(2, 0, 0)))
	assert.Equal(t, 4, p.NumPoints())
	assertLayout(t, &p)
}

func TestAddSegmentClosed(t *testing.T) {
	p := New(geometry.Zero)
	require.NoError(t, p.SetClosed(true))
	before := p.Points()

	err := p.AddSegment(v3(5, 0, 0))
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, before, p.Points())
}

func TestAddSegmentCopiesLastAngle(t *testing.T) {
	p := New(geometry.Zero)
	require.NoError(t, p.SetAngle(1, 30))
	require.NoError(t, p.AddSegment(v3(3, 0, 0)))
	assert.Equal(t, []float64{0, 30, 30}, p.Angles())
}

func TestSplitSegment(t *testing.T) {
	p := New(geometry.Zero)
	require.NoError(t, p.SplitSegment(v3(0, 0, 0), 0))

	require.Equal(t, 7, p.NumPoints())
	points := p.Points()
	assertVector(t, v3(0, 0, 0), points[3])
	assertVector(t, v3(-0.5, 0, 0), points[2])
	assertVector(t, v3(0.5, 0, 0), points[4])
	assertVector(t, v3(-1, 0, 0), points[0])
	assertVector(t, v3(1, 0, 0), points[6])
	assertLayout(t, p)
}

func TestSplitSegmentAveragesAngles(t *testing.T) {
	p := New(geometry.Zero)
	require.NoError(t, p.SetAngles([]float64{10, 50}))
	require.NoError(t, p.SplitSegment(v3(0, 1, 0), 0))
	assert.Equal(t, []float64{10, 30, 50}, p.Angles())
}

func TestSplitSegmentInvalidIndex(t *testing.T) {
	p := New(geometry.Zero)
	before := p.Points()
	assert.ErrorIs(t, p.SplitSegment(geometry.Zero, 1), ErrInvalidIndex)
	assert.ErrorIs(t, p.SplitSegment(geometry.Zero, -1), ErrInvalidIndex)
	assert.Equal(t, before, p.Points())
}

func TestDeleteSegmentInterior(t *testing.T) {
	p := threeSegmentLine()
	require.NoError(t, p.DeleteSegment(3))

	require.Equal(t, 7, p.NumPoints())
	anchors := p.Anchors()
	assert.InDelta(t, -1.5, anchors[0].X, tolerance)
	assert.InDelta(t, 0.5, anchors[1].X, tolerance)
	assert.InDelta(t, 1.5, anchors[2].X, tolerance)
	assertLayout(t, p)
}

func TestDeleteSegmentEnds(t *testing.T) {
	p := threeSegmentLine()
	require.NoError(t, p.DeleteSegment(9))
	anchors := p.Anchors()
	require.Len(t, anchors, 3)
	assert.InDelta(t, 0.5, anchors[2].X, tolerance)
	assertLayout(t, p)

	p = threeSegmentLine()
	require.NoError(t, p.DeleteSegment(0))
	anchors = p.Anchors()
	require.Len(t, anchors, 3)
	assert.InDelta(t, -0.5, anchors[0].X, tolerance)
	assertLayout(t, p)
}

func TestDeleteSegmentClosedFirstAnchor(t *testing.T) {
	p, err := NewPrimitive(PrimitiveCircle, geometry.Zero, 4, 2)
	require.NoError(t, err)
	before := p.Points()

	require.NoError(t, p.DeleteSegment(0))
	points := p.Points()
	require.Len(t, points, 9)
	assert.True(t, p.Closed())
	assertVector(t, before[3], points[0])
	assertVector(t, before[2], points[8], "wrap control comes from the removed segment")
	assertLayout(t, p)
}

func TestDeleteSegmentMinimum(t *testing.T) {
	p := New(geometry.Zero)
	before := p.Points()
	require.NoError(t, p.DeleteSegment(3))
	assert.Equal(t, before, p.Points(), "single segment polygon is left alone")

	require.NoError(t, p.SetClosed(true))
	before = p.Points()
	require.NoError(t, p.DeleteSegment(3))
	assert.Equal(t, before, p.Points(), "two segment loop is left alone")
}

func TestDeleteSegmentInvalidIndex(t *testing.T) {
	p := threeSegmentLine()
	assert.ErrorIs(t, p.DeleteSegment(1), ErrInvalidIndex)
	assert.ErrorIs(t, p.DeleteSegment(12), ErrInvalidIndex)
	assert.ErrorIs(t, p.DeleteSegment(-3), ErrInvalidIndex)
	assert.Equal(t, 10, p.NumPoints())
}

func TestDeleteSegmentRemovesAngle(t *testing.T) {
	p := threeSegmentLine()
	require.NoError(t, p.SetAngles([]float64{0, 10, 20, 30}))
	require.NoError(t, p.DeleteSegment(6))
	assert.Equal(t, []float64{0, 10, 30}, p.Angles())
}

func TestMoveAnchorDragsControls(t *testing.T) {
	p := New(geometry.Zero)
	require.NoError(t, p.MovePoint(0, v3(-2, 0, 0)))

	points := p.Points()
	assertVector(t, v3(-2, 0, 0), points[0])
	assertVector(t, v3(-1.5, 0, 0.5), points[1])
	assertVector(t, v3(0.5, 0, -0.5), points[2], "far control stays")
}

func TestMoveAnchorClosedWraps(t *testing.T) {
	p := New(geometry.Zero)
	require.NoError(t, p.SetClosed(true))
	before := p.Points()

	require.NoError(t, p.MovePoint(0, v3(-1, 1, 0)))
	points := p.Points()
	assertVector(t, before[5].Add(v3(0, 1, 0)), points[5])
	assertVector(t, before[1].Add(v3(0, 1, 0)), points[1])
}

func TestMoveControlTangent(t *testing.T) {
	p := New(geometry.Zero)
	require.NoError(t, p.AddSegment(v3(3, 0, 0)))
	p.SetPolicy(PolicyTangent)

	before := p.Points()
	anchor := before[3]
	dist := anchor.Distance(before[2])

	require.NoError(t, p.MovePoint(4, v3(2, 0, 0)))
	points := p.Points()
	assertVector(t, v3(2, 0, 0), points[4])
	assertVector(t, anchor.Add(v3(-dist, 0, 0)), points[2])

	require.NoError(t, p.MovePoint(2, v3(1, 0, -1)))
	points = p.Points()
	partner := points[4].Sub(anchor)
	assert.InDelta(t, 1, partner.Length(), tolerance, "partner keeps its distance")
	assertVector(t, v3(0, 0, 1), partner.Normalize())
}

func TestMoveControlFree(t *testing.T) {
	p := New(geometry.Zero)
	require.NoError(t, p.AddSegment(v3(3, 0, 0)))
	before := p.Points()

	require.NoError(t, p.MovePoint(4, v3(2, 5, 0)))
	points := p.Points()
	assertVector(t, before[2], points[2])
	assertVector(t, v3(2, 5, 0), points[4])
}

func TestMoveControlAutoSmooth(t *testing.T) {
	p := New(geometry.Zero)
	p.SetPolicy(PolicyAutoSmooth)
	before := p.Points()

	err := p.MovePoint(1, v3(5, 5, 5))
	assert.ErrorIs(t, err, ErrControlLocked)
	assert.Equal(t, before, p.Points())

	assert.ErrorIs(t, p.MovePoint(4, geometry.Zero), ErrInvalidIndex)
}

func TestAutoSmoothStraightLine(t *testing.T) {
	p := New(geometry.Zero)
	p.SetPolicy(PolicyAutoSmooth)

	points := p.Points()
	assertVector(t, v3(0, 0, 0), points[1])
	assertVector(t, v3(0, 0, 0), points[2])

	require.NoError(t, p.AddSegment(v3(3, 0, 0)))
	points = p.Points()
	// controls of the middle anchor sit on the X axis at half the neighbor distance
	assertVector(t, v3(0, 0, 0), points[2])
	assertVector(t, v3(2, 0, 0), points[4])
}

func TestAutoSmoothMoveAnchor(t *testing.T) {
	p := threeSegmentLine()
	p.SetPolicy(PolicyAutoSmooth)
	require.NoError(t, p.MovePoint(3, v3(-0.5, 0, 1)))

	points := p.Points()
	in := points[2].Sub(points[3])
	out := points[4].Sub(points[3])
	assert.InDelta(t, 0, in.Normalize().Add(out.Normalize()).Length(), 1e-9, "controls are collinear through the anchor")
}

func TestSetAngle(t *testing.T) {
	p := New(geometry.Zero)
	require.NoError(t, p.SetAngle(1, 45))
	assert.Equal(t, []float64{0, 45}, p.Angles())

	assert.ErrorIs(t, p.SetAngle(2, 10), ErrInvalidIndex)
	assert.ErrorIs(t, p.SetAngles([]float64{1, 2, 3}), ErrInvalidPointCount)

	require.NoError(t, p.SetAngles(nil))
	assert.Nil(t, p.Angles())
}

func TestClone(t *testing.T) {
	p := New(geometry.Zero)
	require.NoError(t, p.SetAngle(0, 10))
	c := p.Clone()

	require.NoError(t, c.MovePoint(0, v3(9, 9, 9)))
	require.NoError(t, c.SetAngle(0, 20))

	first, _ := p.Point(0)
	assertVector(t, v3(-1, 0, 0), first)
	assert.Equal(t, []float64{10, 0}, p.Angles())
}

func TestEditSequenceKeepsLayout(t *testing.T) {
	p := New(geometry.Zero)
	p.SetPolicy(PolicyAutoSmooth)
	require.NoError(t, p.SetAngle(0, 5))

	steps := []func() error{
		func() error { return p.AddSegment(v3(2, 0, 1)) },
		func() error { return p.AddSegment(v3(3, 1, 2)) },
		func() error { return p.SplitSegment(v3(0, 0, 0.5), 0) },
		func() error { return p.SetClosed(true) },
		func() error { return p.DeleteSegment(3) },
		func() error { return p.MovePoint(3, v3(1, 1, 1)) },
		func() error { return p.DeleteSegment(0) },
		func() error { return p.SetClosed(false) },
		func() error { return p.DeleteSegment(p.NumPoints() - 1) },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		assertLayout(t, p)
	}
}

func TestParsePolicy(t *testing.T) {
	for _, policy := range []Policy{PolicyFree, PolicyTangent, PolicyAutoSmooth} {
		parsed, err := ParsePolicy(policy.String())
		require.NoError(t, err)
		assert.Equal(t, policy, parsed)
	}
	parsed, err := ParsePolicy("AutoSmooth")
	require.NoError(t, err)
	assert.Equal(t, PolicyAutoSmooth, parsed)

	_, err = ParsePolicy("bogus")
	assert.Error(t, err)
}
