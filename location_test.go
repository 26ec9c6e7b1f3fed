package path

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationValid(t *testing.T) {
	p := mustParse(t, "M 0 0 L 10 0 Q 15 5 10 10")

	assert.True(t, Location{Contour: 0, Segment: 0, T: 0}.Valid(p))
	assert.True(t, Location{Contour: 0, Segment: 2, T: 1}.Valid(p))
	assert.False(t, Location{Contour: 1, Segment: 0, T: 0}.Valid(p))
	assert.False(t, Location{Contour: -1, Segment: 0, T: 0}.Valid(p))
	assert.False(t, Location{Contour: 0, Segment: 3, T: 0}.Valid(p))
	assert.False(t, Location{Contour: 0, Segment: 1, T: 1.5}.Valid(p))
	assert.False(t, Location{Contour: 0, Segment: 1, T: -0.5}.Valid(p))
}

func TestLocationEqual(t *testing.T) {
	p := mustParse(t, "M 0 0 L 10 0 L 10 10 M 5 5 L 6 6")

	// The end of a segment and the start of the next one are the same
	// point.
	a := Location{Contour: 0, Segment: 1, T: 1}
	b := Location{Contour: 0, Segment: 2, T: 0}
	assert.True(t, a.Equal(p, b))
	assert.True(t, b.Equal(p, a))

	// Any location on the initial move coincides with the start of the
	// first segment.
	m := Location{Contour: 0, Segment: 0, T: 0.5}
	s := Location{Contour: 0, Segment: 1, T: 0}
	assert.True(t, m.Equal(p, s))

	assert.False(t, a.Equal(p, Location{Contour: 0, Segment: 1, T: 0.5}))
	assert.False(t, a.Equal(p, Location{Contour: 1, Segment: 1, T: 1}))
	assert.False(t, a.Equal(p, Location{Contour: 0, Segment: 5, T: 0}), "invalid locations are never equal")
}

func TestLocationCompare(t *testing.T) {
	p := mustParse(t, "M 0 0 L 10 0 L 10 10 M 5 5 L 6 6")

	locs := []Location{
		{Contour: 0, Segment: 1, T: 0},
		{Contour: 0, Segment: 1, T: 0.5},
		{Contour: 0, Segment: 2, T: 0.25},
		{Contour: 0, Segment: 2, T: 1},
		{Contour: 1, Segment: 1, T: 0},
	}
	for i, a := range locs {
		assert.Zero(t, a.Compare(p, a))
		for _, b := range locs[i+1:] {
			assert.Negative(t, a.Compare(p, b), "%v before %v", a, b)
			assert.Positive(t, b.Compare(p, a), "%v after %v", b, a)
		}
	}

	// Boundary locations compare as equal.
	a := Location{Contour: 0, Segment: 1, T: 1}
	b := Location{Contour: 0, Segment: 2, T: 0}
	assert.Zero(t, a.Compare(p, b))
	assert.Zero(t, b.Compare(p, a))
}

func TestPointAt(t *testing.T) {
	p := mustParse(t, "M 0 0 L 10 0 L 10 10")

	assert.Equal(t, Pt(0, 0), p.PointAt(Location{Contour: 0, Segment: 0, T: 0}))
	assert.Equal(t, Pt(0, 0), p.PointAt(Location{Contour: 0, Segment: 1, T: 0}))
	assert.Equal(t, Pt(5, 0), p.PointAt(Location{Contour: 0, Segment: 1, T: 0.5}))
	assert.Equal(t, Pt(10, 0), p.PointAt(Location{Contour: 0, Segment: 1, T: 1}))
	assert.Equal(t, Pt(10, 0), p.PointAt(Location{Contour: 0, Segment: 2, T: 0}))
	assert.Equal(t, Pt(10, 10), p.PointAt(Location{Contour: 0, Segment: 2, T: 1}))

	p = mustParse(t, "M 1 2")
	start, ok := p.StartPoint()
	require.True(t, ok)
	assert.Equal(t, Pt(1, 2), p.PointAt(start))
}

func TestTangentAtCorner(t *testing.T) {
	p := mustParse(t, "M 0 0 L 10 0 L 10 10 Z")
	d := math.Sqrt(2) / 2

	// Corner at (10, 0), between the two straight edges.
	corner := Location{Contour: 0, Segment: 2, T: 0}
	assertNear(t, Point(p.TangentAt(corner, FromStart)), Pt(1, 0), 1e-12)
	assertNear(t, Point(p.TangentAt(corner, ToStart)), Pt(-1, 0), 1e-12)
	assertNear(t, Point(p.TangentAt(corner, ToEnd)), Pt(0, 1), 1e-12)
	assertNear(t, Point(p.TangentAt(corner, FromEnd)), Pt(0, -1), 1e-12)

	// The contour is closed, so the incoming tangent at the start wraps
	// around to the closing segment.
	start := Location{Contour: 0, Segment: 1, T: 0}
	assertNear(t, Point(p.TangentAt(start, FromStart)), Pt(-d, -d), 1e-12)
	assertNear(t, Point(p.TangentAt(start, ToEnd)), Pt(1, 0), 1e-12)

	// Likewise the outgoing tangent at the very end wraps around to the
	// first segment.
	end := Location{Contour: 0, Segment: 3, T: 1}
	assertNear(t, Point(p.TangentAt(end, ToEnd)), Pt(1, 0), 1e-12)
	assertNear(t, Point(p.TangentAt(end, FromStart)), Pt(-d, -d), 1e-12)
}

func TestTangentAtOpenEnd(t *testing.T) {
	p := mustParse(t, "M 0 0 L 10 0")

	start := Location{Contour: 0, Segment: 1, T: 0}
	end := Location{Contour: 0, Segment: 1, T: 1}
	// Open contours have nothing to wrap around to; both directions
	// resolve on the only segment.
	assertNear(t, Point(p.TangentAt(start, FromStart)), Pt(1, 0), 1e-12)
	assertNear(t, Point(p.TangentAt(end, ToEnd)), Pt(1, 0), 1e-12)
}

func TestRotationAt(t *testing.T) {
	p := mustParse(t, "M 0 0 L 10 0 L 10 10 Z")

	assert.InDelta(t, 0, p.RotationAt(Location{Contour: 0, Segment: 1, T: 0.5}, ToEnd), 1e-12)
	assert.InDelta(t, math.Pi/2, p.RotationAt(Location{Contour: 0, Segment: 2, T: 0.5}, ToEnd), 1e-12)
	assert.InDelta(t, -math.Pi/2, p.RotationAt(Location{Contour: 0, Segment: 2, T: 0.5}, ToStart), 1e-12)
}

func TestCurvatureAt(t *testing.T) {
	var b Builder
	b.AddCircle(Pt(0, 0), 10)
	p := b.Path()

	for seg := 1; seg <= 4; seg++ {
		k, center, ok := p.CurvatureAt(Location{Contour: 0, Segment: seg, T: 0.5})
		require.True(t, ok)
		assert.InDelta(t, 0.1, k, 0.005, "curvature of a circle of radius 10")
		assertNear(t, center, Pt(0, 0), 0.05)
	}

	// Straight lines have no curvature.
	p = mustParse(t, "M 0 0 L 10 0")
	_, _, ok := p.CurvatureAt(Location{Contour: 0, Segment: 1, T: 0.5})
	assert.False(t, ok)
}
