package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderBasic(t *testing.T) {
	var b Builder
	b.MoveTo(Pt(1, 2))
	b.LineTo(Pt(3, 4))
	b.QuadTo(Pt(5, 6), Pt(7, 8))
	b.CubicTo(Pt(9, 10), Pt(11, 12), Pt(13, 14))
	p := b.Path()

	assert.Equal(t, "M 1 2 L 3 4 Q 5 6, 7 8 C 9 10, 11 12, 13 14", p.String())

	// The builder is reset and can be reused.
	assert.True(t, b.Path().IsEmpty())
}

func TestBuilderRelative(t *testing.T) {
	var b Builder
	b.MoveTo(Pt(10, 10))
	b.RelLineTo(Vec(5, 0))
	b.RelQuadTo(Vec(1, 1), Vec(2, 0))
	b.RelMoveTo(Vec(0, 10))
	b.RelCubicTo(Vec(1, 0), Vec(2, 0), Vec(3, 0))
	p := b.Path()

	assert.Equal(t, "M 10 10 L 15 10 Q 16 11, 17 10 M 17 20 C 18 20, 19 20, 20 20", p.String())
}

func TestBuilderImplicitMove(t *testing.T) {
	// Drawing without a preceding MoveTo starts at the origin.
	var b Builder
	b.LineTo(Pt(1, 1))
	assert.Equal(t, "M 0 0 L 1 1", b.Path().String())
}

func TestBuilderClose(t *testing.T) {
	var b Builder
	b.Close() // nothing in progress
	assert.True(t, b.Path().IsEmpty())

	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(10, 0))
	b.LineTo(Pt(10, 10))
	b.Close()
	assert.Equal(t, Pt(0, 0), b.CurrentPoint(), "Close moves back to the contour start")
	p := b.Path()
	assert.Equal(t, "M 0 0 L 10 0 L 10 10 Z", p.String())
	assert.True(t, p.IsClosed())
}

func TestBuilderSmooth(t *testing.T) {
	var b Builder
	b.MoveTo(Pt(0, 0))
	b.CubicTo(Pt(0, 1), Pt(1, 1), Pt(1, 0))
	b.SmoothCubicTo(Pt(2, -1), Pt(2, 0))
	b.MoveTo(Pt(0, 0))
	b.QuadTo(Pt(1, 1), Pt(2, 0))
	b.SmoothQuadTo(Pt(4, 0))
	p := b.Path()

	assert.Equal(t, CubicSegment(Pt(1, 0), Pt(1, -1), Pt(2, -1), Pt(2, 0)), p.contours[0].segs[1])
	assert.Equal(t, QuadSegment(Pt(2, 0), Pt(3, -1), Pt(4, 0)), p.contours[1].segs[1])

	// Smooth curves after a non-curve command have no control point to
	// reflect.
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(1, 0))
	b.SmoothQuadTo(Pt(3, 0))
	p = b.Path()
	assert.Equal(t, QuadSegment(Pt(1, 0), Pt(1, 0), Pt(3, 0)), p.contours[0].segs[1])
}

func TestBuilderArcTo(t *testing.T) {
	// Quarter circle of radius 10 around the origin, tangents meeting
	// in the corner (10, 10).
	var b Builder
	b.MoveTo(Pt(10, 0))
	b.ArcTo(Pt(10, 10), Pt(0, 10))
	p := b.Path()

	seg := p.contours[0].segs[0]
	require.Equal(t, CubicKind, seg.Kind)
	assert.Equal(t, Pt(0, 10), seg.End())
	for _, tt := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		pt := seg.PointAt(tt)
		assert.InDelta(t, 10, Vec2(pt).Hypot(), 0.03, "arc point %v stays on the circle", pt)
	}

	// Collinear points produce a line.
	b.MoveTo(Pt(0, 0))
	b.ArcTo(Pt(1, 1), Pt(2, 2))
	p = b.Path()
	assert.Equal(t, LineSegment(Pt(0, 0), Pt(2, 2)), p.contours[0].segs[0])
}

func TestBuilderSVGArcTo(t *testing.T) {
	// A half turn needs more than one cubic.
	var b Builder
	b.MoveTo(Pt(-10, 0))
	b.SVGArcTo(10, 10, 0, false, false, Pt(10, 0))
	p := b.Path()

	c := p.contours[0]
	assert.GreaterOrEqual(t, c.numSegs(), 2)
	assert.Equal(t, Pt(10, 0), c.EndPoint())
	for i := 1; i <= c.numSegs(); i++ {
		seg := c.segmentAt(i)
		for _, tt := range []float64{0, 0.5, 1} {
			pt := seg.PointAt(tt)
			assert.InDelta(t, 10, Vec2(pt).Hypot(), 0.03)
		}
	}

	// Radii too small to span the endpoints are scaled up; the arc then
	// is half of an ellipse through both points.
	b.MoveTo(Pt(-10, 0))
	b.SVGArcTo(1, 1, 0, false, true, Pt(10, 0))
	p = b.Path()
	c = p.contours[0]
	assert.Equal(t, Pt(10, 0), c.EndPoint())

	// Degenerate arcs.
	b.MoveTo(Pt(1, 2))
	b.SVGArcTo(10, 10, 0, false, false, Pt(1, 2))
	assert.Equal(t, "M 1 2", b.Path().String(), "empty arc draws nothing")
}

func TestBuilderAddPath(t *testing.T) {
	a := mustParse(t, "M 0 0 L 10 0 Z")
	c := mustParse(t, "M 5 5 Q 6 6, 7 5")

	var b Builder
	b.AddPath(a)
	b.AddPath(c)
	p := b.Path()

	assert.Equal(t, a.String()+" "+c.String(), p.String())
	assert.Equal(t, 2, p.NumContours())
}

func TestBuilderAddRect(t *testing.T) {
	var b Builder
	b.AddRect(Rect{0, 0, 10, 5})
	p := b.Path()

	assert.Equal(t, "M 0 0 L 10 0 L 10 5 L 0 5 Z", p.String())
	assert.True(t, p.IsClosed())
	assert.True(t, p.IsFlat())
	assert.Equal(t, Pt(0, 0), b.CurrentPoint())

	bounds, ok := p.Bounds()
	require.True(t, ok)
	assert.Equal(t, Rect{0, 0, 10, 5}, bounds)
}

func TestBuilderAddCircle(t *testing.T) {
	var b Builder
	b.AddCircle(Pt(3, 4), 5)
	p := b.Path()

	assert.True(t, p.IsClosed())
	assert.False(t, p.IsFlat())
	assert.Equal(t, Pt(8, 4), b.CurrentPoint())
	assert.Equal(t, 6, p.Contour(0).NumSegments())

	bounds, ok := p.Bounds()
	require.True(t, ok)
	assert.Equal(t, Rect{-2, -1, 8, 9}, bounds)

	// The printed form reparses to the same four cubics.
	q := mustParse(t, p.String())
	assert.Equal(t, p.String(), q.String())

	// The cubic approximation stays close to the true circle.
	ok = p.ForEach(0.01, OnlyLines, func(op PathOp, pts []Point) bool {
		for _, pt := range pts {
			assert.InDelta(t, 5, pt.Distance(Pt(3, 4)), 0.01)
		}
		return true
	})
	assert.True(t, ok)

	// A circle mixed into a contour under construction flushes that
	// contour first.
	b.MoveTo(Pt(100, 100))
	b.LineTo(Pt(101, 100))
	b.AddCircle(Pt(0, 0), 1)
	p = b.Path()
	assert.Equal(t, 2, p.NumContours())
}

func TestBuilderConcatenation(t *testing.T) {
	// Appending two paths prints as the two prints joined by a space.
	paths := []string{
		"M 0 0 L 10 0 L 10 10 Z",
		"M 1 1 Q 2 2, 3 1",
		"M -5 0 C -4 1, -3 1, -2 0 Z",
	}
	for _, sa := range paths {
		for _, sb := range paths {
			a := mustParse(t, sa)
			c := mustParse(t, sb)
			var b Builder
			b.AddPath(a)
			b.AddPath(c)
			assert.Equal(t, a.String()+" "+c.String(), b.Path().String())
		}
	}
}

func TestBuilderHV(t *testing.T) {
	var b Builder
	b.MoveTo(Pt(1, 2))
	b.HLineTo(5)
	b.VLineTo(7)
	b.HLineTo(-1)
	p := b.Path()
	assert.Equal(t, "M 1 2 L 5 2 L 5 7 L -1 7", p.String())
}
