package path

import (
	"math"
)

// circleMagic is the distance of the control points from the endpoints
// of a cubic Bézier approximating a quarter circle of radius 1. It also
// falls out of lowering a conic of weight √2/2, as 4w/(3(1+w)).
const circleMagic = 0.5522847498307936

// Builder constructs immutable [Path]s from a sequence of drawing
// commands.
//
// The zero value is an empty builder, ready for use. A builder must not
// be used concurrently; the paths it produces may.
type Builder struct {
	contours  []Contour
	segs      []Segment
	start     Point
	current   Point
	inContour bool

	// control point of the last quad or cubic, for smooth curves
	prevKind SegmentKind
	prevCtrl Point
}

// NewBuilder returns a new, empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// CurrentPoint returns the point the next drawing command will start
// from.
func (b *Builder) CurrentPoint() Point { return b.current }

func (b *Builder) flush() {
	if !b.inContour {
		return
	}
	b.contours = append(b.contours, newContour(b.start, b.segs, false))
	b.segs = nil
	b.inContour = false
}

// ensureContour starts a contour at the current point if no contour is
// in progress. Drawing commands issued before any MoveTo start at the
// origin.
func (b *Builder) ensureContour() {
	if !b.inContour {
		b.start = b.current
		b.inContour = true
	}
}

func (b *Builder) appendSeg(s Segment) {
	b.ensureContour()
	b.segs = append(b.segs, s)
	b.current = s.End()
}

// MoveTo starts a new contour at pt.
func (b *Builder) MoveTo(pt Point) {
	b.flush()
	b.start = pt
	b.current = pt
	b.inContour = true
	b.prevKind = 0
}

// RelMoveTo starts a new contour at the current point offset by v.
func (b *Builder) RelMoveTo(v Vec2) {
	b.MoveTo(b.current.Translate(v))
}

// LineTo draws a line from the current point to pt.
func (b *Builder) LineTo(pt Point) {
	b.appendSeg(LineSegment(b.current, pt))
	b.prevKind = 0
}

// RelLineTo draws a line from the current point to the current point
// offset by v.
func (b *Builder) RelLineTo(v Vec2) {
	b.LineTo(b.current.Translate(v))
}

// HLineTo draws a horizontal line from the current point to the given
// x coordinate.
func (b *Builder) HLineTo(x float64) {
	b.LineTo(Pt(x, b.current.Y))
}

// VLineTo draws a vertical line from the current point to the given
// y coordinate.
func (b *Builder) VLineTo(y float64) {
	b.LineTo(Pt(b.current.X, y))
}

// QuadTo draws a quadratic Bézier from the current point to p2, with
// control point p1.
func (b *Builder) QuadTo(p1, p2 Point) {
	b.appendSeg(QuadSegment(b.current, p1, p2))
	b.prevKind = QuadKind
	b.prevCtrl = p1
}

// RelQuadTo is like [Builder.QuadTo], with both points relative to the
// current point.
func (b *Builder) RelQuadTo(v1, v2 Vec2) {
	cur := b.current
	b.QuadTo(cur.Translate(v1), cur.Translate(v2))
}

// CubicTo draws a cubic Bézier from the current point to p3, with
// control points p1 and p2.
func (b *Builder) CubicTo(p1, p2, p3 Point) {
	b.appendSeg(CubicSegment(b.current, p1, p2, p3))
	b.prevKind = CubicKind
	b.prevCtrl = p2
}

// RelCubicTo is like [Builder.CubicTo], with all points relative to the
// current point.
func (b *Builder) RelCubicTo(v1, v2, v3 Vec2) {
	cur := b.current
	b.CubicTo(cur.Translate(v1), cur.Translate(v2), cur.Translate(v3))
}

// SmoothQuadTo draws a quadratic Bézier to p2, using the reflection of
// the previous quadratic's control point as control point. If the
// previous command was not a quadratic, the current point is used.
func (b *Builder) SmoothQuadTo(p2 Point) {
	ctrl := b.current
	if b.prevKind == QuadKind {
		ctrl = Point(Vec2(b.current).Mul(2.0).Sub(Vec2(b.prevCtrl)))
	}
	b.QuadTo(ctrl, p2)
}

// SmoothCubicTo draws a cubic Bézier to p3, using the reflection of the
// previous cubic's second control point as first control point. If the
// previous command was not a cubic, the current point is used.
func (b *Builder) SmoothCubicTo(p2, p3 Point) {
	ctrl := b.current
	if b.prevKind == CubicKind {
		ctrl = Point(Vec2(b.current).Mul(2.0).Sub(Vec2(b.prevCtrl)))
	}
	b.CubicTo(ctrl, p2, p3)
}

// ArcTo draws a circular or elliptical arc from the current point to
// p2, with the tangents at both ends meeting in p1. The arc spans at
// most a quarter turn.
//
// If the three points are collinear, a line is drawn instead.
func (b *Builder) ArcTo(p1, p2 Point) {
	p0 := b.current
	if p1.Sub(p0).Cross(p2.Sub(p0)) == 0 {
		b.LineTo(p2)
		return
	}
	// Lowering of a conic with weight √2/2.
	b.CubicTo(
		p0.Translate(p1.Sub(p0).Mul(circleMagic)),
		p2.Translate(p1.Sub(p2).Mul(circleMagic)),
		p2,
	)
}

// RelArcTo is like [Builder.ArcTo], with both points relative to the
// current point.
func (b *Builder) RelArcTo(v1, v2 Vec2) {
	cur := b.current
	b.ArcTo(cur.Translate(v1), cur.Translate(v2))
}

// SVGArcTo draws an elliptical arc from the current point to end, as
// described by the SVG arc command: radii rx and ry, the rotation of
// the ellipse's x axis in radians, and the large-arc and sweep flags
// selecting one of the four candidate arcs.
//
// Out-of-range radii are scaled up as specified by SVG; zero radii
// produce a line.
func (b *Builder) SVGArcTo(rx, ry, xRotation float64, largeArc, sweep bool, end Point) {
	from := b.current
	if from == end {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		b.LineTo(end)
		return
	}

	// Endpoint to center parameterization, SVG implementation notes F.6.5.
	sin, cos := math.Sincos(xRotation)
	d := from.Sub(end).Mul(0.5)
	x1p := cos*d.X + sin*d.Y
	y1p := -sin*d.X + cos*d.Y

	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rxSq, rySq := rx*rx, ry*ry
	num := rxSq*rySq - rxSq*y1p*y1p - rySq*x1p*x1p
	den := rxSq*y1p*y1p + rySq*x1p*x1p
	radicand := max(0.0, num/den)
	factor := math.Sqrt(radicand)
	if largeArc == sweep {
		factor = -factor
	}
	cxp := factor * rx * y1p / ry
	cyp := -factor * ry * x1p / rx

	mid := from.Midpoint(end)
	center := Pt(cos*cxp-sin*cyp+mid.X, sin*cxp+cos*cyp+mid.Y)

	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	sweepAngle := theta2 - theta1
	if !sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	} else if sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	}

	b.arcSegments(center, Vec(rx, ry), xRotation, theta1, sweepAngle, end)
}

// arcSegments approximates an elliptical arc by cubic Béziers, one per
// quarter turn at most.
func (b *Builder) arcSegments(center Point, radii Vec2, xRotation, startAngle, sweepAngle float64, end Point) {
	n := max(1, int(math.Ceil(math.Abs(sweepAngle)/(0.5*math.Pi)-1e-9)))
	angleStep := sweepAngle / float64(n)
	armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), sweepAngle)

	angle0 := startAngle
	p0 := b.current
	for i := 0; i < n; i++ {
		angle1 := angle0 + angleStep
		p1 := p0.Translate(sampleEllipse(radii, xRotation, angle0+math.Pi/2).Mul(armLen))
		p3 := center.Translate(sampleEllipse(radii, xRotation, angle1))
		if i == n-1 {
			// Land exactly on the requested endpoint.
			p3 = end
		}
		p2 := p3.Translate(sampleEllipse(radii, xRotation, angle1+math.Pi/2).Mul(armLen).Negate())
		b.CubicTo(p1, p2, p3)
		angle0 = angle1
		p0 = p3
	}
}

// sampleEllipse returns the point at the given angle on an ellipse with
// the given radii, rotated by xRotation, centered on the origin.
func sampleEllipse(radii Vec2, xRotation, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	rsin, rcos := math.Sincos(xRotation)
	return Vec2{X: u*rcos - v*rsin, Y: u*rsin + v*rcos}
}

// Close closes the current contour with a line back to its start point.
// If no contour is in progress, Close does nothing.
func (b *Builder) Close() {
	if !b.inContour {
		return
	}
	b.segs = append(b.segs, LineSegment(b.current, b.start))
	b.contours = append(b.contours, newContour(b.start, b.segs, true))
	b.segs = nil
	b.current = b.start
	b.inContour = false
	b.prevKind = 0
}

// AddRect adds the rectangle as its own closed contour, stored as a
// specialized contour that answers bounds and winding queries in
// constant time.
func (b *Builder) AddRect(r Rect) {
	b.flush()
	c := newRectContour(r.Origin(), Vec(r.Width(), r.Height()))
	b.contours = append(b.contours, c)
	b.current = c.start
	b.prevKind = 0
}

// AddCircle adds a circle with the given center and radius as its own
// closed contour. The circle is stored as a specialized contour; where
// segments are needed it is approximated by four cubic Béziers.
func (b *Builder) AddCircle(center Point, radius float64) {
	b.flush()
	c := newCircleContour(center, math.Abs(radius))
	b.contours = append(b.contours, c)
	b.current = c.start
	b.prevKind = 0
}

// AddPath adds all contours of p.
func (b *Builder) AddPath(p *Path) {
	b.flush()
	b.contours = append(b.contours, p.contours...)
	if len(p.contours) > 0 {
		b.current = p.contours[len(p.contours)-1].EndPoint()
	}
	b.prevKind = 0
}

// Path returns the constructed path and resets the builder.
func (b *Builder) Path() *Path {
	b.flush()
	p := &Path{contours: b.contours}
	*b = Builder{}
	return p
}
