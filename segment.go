package path

import (
	"math"
)

// SegmentKind identifies the degree of a curve segment.
type SegmentKind uint8

const (
	LineKind SegmentKind = iota + 1
	QuadKind
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	default:
		return "invalid"
	}
}

// Segment is a single curve segment, a Bézier curve of degree 1 to 3.
//
// Segments are represented as a tagged union instead of an interface so
// that they can be passed around without allocating.
type Segment struct {
	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// LineSegment returns the line from p0 to p1.
func LineSegment(p0, p1 Point) Segment {
	return Segment{Kind: LineKind, P0: p0, P1: p1}
}

// QuadSegment returns the quadratic Bézier from p0 to p2 with control
// point p1.
func QuadSegment(p0, p1, p2 Point) Segment {
	return Segment{Kind: QuadKind, P0: p0, P1: p1, P2: p2}
}

// CubicSegment returns the cubic Bézier from p0 to p3 with control
// points p1 and p2.
func CubicSegment(p0, p1, p2, p3 Point) Segment {
	return Segment{Kind: CubicKind, P0: p0, P1: p1, P2: p2, P3: p3}
}

func (s Segment) Start() Point { return s.P0 }

func (s Segment) End() Point {
	switch s.Kind {
	case LineKind:
		return s.P1
	case QuadKind:
		return s.P2
	default:
		return s.P3
	}
}

// PointAt evaluates the segment at parameter t in [0, 1].
func (s Segment) PointAt(t float64) Point {
	mt := 1.0 - t
	switch s.Kind {
	case LineKind:
		return s.P0.Lerp(s.P1, t)
	case QuadKind:
		a := Vec2(s.P0).Mul(mt * mt)
		b := Vec2(s.P1).Mul(mt * 2.0)
		c := Vec2(s.P2).Mul(t)
		return Point(a.Add(b.Add(c).Mul(t)))
	default:
		v := Vec2(s.P0).Mul(mt * mt * mt).
			Add(Vec2(s.P1).Mul(3.0 * mt * mt * t)).
			Add(Vec2(s.P2).Mul(3.0 * mt * t * t)).
			Add(Vec2(s.P3).Mul(t * t * t))
		return Point(v)
	}
}

// Derivative evaluates the first derivative of the segment at t.
func (s Segment) Derivative(t float64) Vec2 {
	switch s.Kind {
	case LineKind:
		return s.P1.Sub(s.P0)
	case QuadKind:
		d0 := s.P1.Sub(s.P0)
		d1 := s.P2.Sub(s.P1)
		return d0.Lerp(d1, t).Mul(2.0)
	default:
		d0 := s.P1.Sub(s.P0)
		d1 := s.P2.Sub(s.P1)
		d2 := s.P3.Sub(s.P2)
		a := d0.Lerp(d1, t)
		b := d1.Lerp(d2, t)
		return a.Lerp(b, t).Mul(3.0)
	}
}

func (s Segment) secondDerivative(t float64) Vec2 {
	switch s.Kind {
	case LineKind:
		return Vec2{}
	case QuadKind:
		return s.P2.Sub(s.P1).Sub(s.P1.Sub(s.P0)).Mul(2.0)
	default:
		a := s.P2.Sub(s.P1).Sub(s.P1.Sub(s.P0))
		b := s.P3.Sub(s.P2).Sub(s.P2.Sub(s.P1))
		return a.Lerp(b, t).Mul(6.0)
	}
}

// Tangents returns the direction of the segment leaving its start point
// and approaching its end point. The vectors are not normalized.
//
// If control points coincide with the endpoints, the next distinct
// control point determines the direction.
func (s Segment) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	switch s.Kind {
	case LineKind:
		d := s.P1.Sub(s.P0)
		return d, d
	case QuadKind:
		d0 := s.P1.Sub(s.P0)
		if d0.Hypot2() <= epsilon {
			d0 = s.P2.Sub(s.P0)
		}
		d1 := s.P2.Sub(s.P1)
		if d1.Hypot2() <= epsilon {
			d1 = s.P2.Sub(s.P0)
		}
		return d0, d1
	default:
		var d0, d1 Vec2
		d01 := s.P1.Sub(s.P0)
		if d01.Hypot2() > epsilon {
			d0 = d01
		} else if d02 := s.P2.Sub(s.P0); d02.Hypot2() > epsilon {
			d0 = d02
		} else {
			d0 = s.P3.Sub(s.P0)
		}
		d23 := s.P3.Sub(s.P2)
		if d23.Hypot2() > epsilon {
			d1 = d23
		} else if d13 := s.P3.Sub(s.P1); d13.Hypot2() > epsilon {
			d1 = d13
		} else {
			d1 = s.P3.Sub(s.P0)
		}
		return d0, d1
	}
}

// TangentAt returns the unit tangent of the segment at t, pointing in
// the direction of increasing t.
//
// A zero vector is returned if the segment is a single point.
func (s Segment) TangentAt(t float64) Vec2 {
	const epsilon = 1e-12
	d := s.Derivative(t)
	if d.Hypot2() <= epsilon {
		start, end := s.Tangents()
		if t < 0.5 {
			d = start
		} else {
			d = end
		}
	}
	if d.Hypot2() <= epsilon {
		return Vec2{}
	}
	return d.Normalize()
}

// CurvatureAt returns the signed curvature of the segment at t, and the
// center of the osculating circle.
//
// For lines and other points of zero curvature, the curvature is 0 and
// ok is false; the center is meaningless then.
func (s Segment) CurvatureAt(t float64) (curvature float64, center Point, ok bool) {
	if s.Kind == LineKind {
		return 0, Point{}, false
	}
	d1 := s.Derivative(t)
	d2 := s.secondDerivative(t)
	num := d1.Cross(d2)
	denom := math.Pow(d1.Hypot2(), 1.5)
	if num == 0 || denom == 0 {
		return 0, Point{}, false
	}
	k := num / denom
	center = s.PointAt(t).Translate(d1.Normalize().Turn90().Mul(1.0 / k))
	return k, center, true
}

// Split subdivides the segment at t, using de Casteljau.
func (s Segment) Split(t float64) (Segment, Segment) {
	switch s.Kind {
	case LineKind:
		m := s.P0.Lerp(s.P1, t)
		return LineSegment(s.P0, m), LineSegment(m, s.P1)
	case QuadKind:
		ab := s.P0.Lerp(s.P1, t)
		bc := s.P1.Lerp(s.P2, t)
		m := ab.Lerp(bc, t)
		return QuadSegment(s.P0, ab, m), QuadSegment(m, bc, s.P2)
	default:
		ab := s.P0.Lerp(s.P1, t)
		bc := s.P1.Lerp(s.P2, t)
		cd := s.P2.Lerp(s.P3, t)
		abbc := ab.Lerp(bc, t)
		bccd := bc.Lerp(cd, t)
		m := abbc.Lerp(bccd, t)
		return CubicSegment(s.P0, ab, abbc, m), CubicSegment(m, bccd, cd, s.P3)
	}
}

// Subsegment returns the portion of the segment between t0 and t1.
func (s Segment) Subsegment(t0, t1 float64) Segment {
	switch s.Kind {
	case LineKind:
		return LineSegment(s.PointAt(t0), s.PointAt(t1))
	case QuadKind:
		p0 := s.PointAt(t0)
		p2 := s.PointAt(t1)
		d0 := s.P1.Sub(s.P0)
		d1 := s.P2.Sub(s.P1)
		p1 := p0.Translate(d0.Lerp(d1, t0).Mul(t1 - t0))
		return QuadSegment(p0, p1, p2)
	default:
		p0 := s.PointAt(t0)
		p3 := s.PointAt(t1)
		scale := (t1 - t0) * (1.0 / 3.0)
		p1 := p0.Translate(s.Derivative(t0).Mul(scale))
		p2 := p3.Translate(s.Derivative(t1).Mul(scale).Negate())
		return CubicSegment(p0, p1, p2, p3)
	}
}

// Elevate raises the degree of the segment by one, returning a segment
// that traces the same curve.
func (s Segment) Elevate() Segment {
	switch s.Kind {
	case LineKind:
		return QuadSegment(s.P0, s.P0.Midpoint(s.P1), s.P1)
	case QuadKind:
		return CubicSegment(
			s.P0,
			s.P0.Translate(s.P1.Sub(s.P0).Mul(2.0/3.0)),
			s.P2.Translate(s.P1.Sub(s.P2).Mul(2.0/3.0)),
			s.P2,
		)
	default:
		return s
	}
}

// Reverse returns a segment describing the same curve, traced from end
// to start.
func (s Segment) Reverse() Segment {
	switch s.Kind {
	case LineKind:
		return LineSegment(s.P1, s.P0)
	case QuadKind:
		return QuadSegment(s.P2, s.P1, s.P0)
	default:
		return CubicSegment(s.P3, s.P2, s.P1, s.P0)
	}
}

// Transform returns the segment with the transform applied to all of
// its points.
func (s Segment) Transform(aff Affine) Segment {
	s.P0 = s.P0.Transform(aff)
	s.P1 = s.P1.Transform(aff)
	s.P2 = s.P2.Transform(aff)
	s.P3 = s.P3.Transform(aff)
	return s
}

// maxExtrema is the maximum number of extrema a segment can report.
const maxExtrema = 4

// Extrema returns the parameters at which the segment's coordinates
// attain extreme values, in increasing order.
func (s Segment) Extrema() ([maxExtrema]float64, int) {
	var out [maxExtrema]float64
	var outN int
	switch s.Kind {
	case LineKind:
	case QuadKind:
		d0 := s.P1.Sub(s.P0)
		d1 := s.P2.Sub(s.P1)
		dd := d1.Sub(d0)
		if dd.X != 0.0 {
			if t := -d0.X / dd.X; t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
		if dd.Y != 0.0 {
			if t := -d0.Y / dd.Y; t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
				if outN == 2 && out[0] > out[1] {
					out[0], out[1] = out[1], out[0]
				}
			}
		}
	default:
		oneCoord := func(d0, d1, d2 float64) {
			a := d0 - 2*d1 + d2
			b := 2 * (d1 - d0)
			c := d0
			roots, n := SolveQuadratic(c, b, a)
			for _, t := range roots[:n] {
				if t > 0.0 && t < 1.0 {
					out[outN] = t
					outN++
				}
			}
		}
		d0 := s.P1.Sub(s.P0)
		d1 := s.P2.Sub(s.P1)
		d2 := s.P3.Sub(s.P2)
		oneCoord(d0.X, d1.X, d2.X)
		oneCoord(d0.Y, d1.Y, d2.Y)
		insertionSort(out[:outN])
	}
	return out, outN
}

func insertionSort(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

// extremaRanges returns parameter ranges, each of which is monotonic
// within the range.
func (s Segment) extremaRanges() ([maxExtrema + 1][2]float64, int) {
	var ret [maxExtrema + 1][2]float64
	var retN int
	var t0 float64
	ex, n := s.Extrema()
	for _, t := range ex[:n] {
		ret[retN] = [2]float64{t0, t}
		retN++
		t0 = t
	}
	ret[retN] = [2]float64{t0, 1}
	retN++
	return ret, retN
}

// BoundingBox returns the smallest axis-aligned rectangle that encloses
// the segment.
func (s Segment) BoundingBox() Rect {
	bbox := NewRectFromPoints(s.Start(), s.End())
	ex, n := s.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(s.PointAt(t))
	}
	return bbox
}

// windingInner computes the winding contribution of a segment that is
// monotonic in y.
func (s Segment) windingInner(pt Point) int {
	start := s.Start()
	end := s.End()
	var sign int
	if end.Y > start.Y {
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	} else if end.Y < start.Y {
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	} else {
		return 0
	}
	switch s.Kind {
	case LineKind:
		if pt.X < min(start.X, end.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X) {
			return sign
		}
		// line equation ax + by = c
		a := end.Y - start.Y
		b := start.X - end.X
		c := a*start.X + b*start.Y
		if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0.0 {
			return sign
		}
		return 0
	case QuadKind:
		p1 := s.P1
		if pt.X < min(start.X, end.X, p1.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X, p1.X) {
			return sign
		}
		a := end.Y - 2.0*p1.Y + start.Y
		b := 2.0 * (p1.Y - start.Y)
		c := start.Y - pt.Y
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t >= 0.0 && t <= 1.0 {
				if pt.X >= s.PointAt(t).X {
					return sign
				}
				return 0
			}
		}
		return 0
	default:
		p1, p2 := s.P1, s.P2
		if pt.X < min(start.X, end.X, p1.X, p2.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X, p1.X, p2.X) {
			return sign
		}
		a := end.Y - 3.0*p2.Y + 3.0*p1.Y - start.Y
		b := 3.0 * (p2.Y - 2.0*p1.Y + start.Y)
		c := 3.0 * (p1.Y - start.Y)
		d := start.Y - pt.Y
		roots, n := SolveCubic(d, c, b, a)
		for _, t := range roots[:n] {
			if t >= 0.0 && t <= 1.0 {
				if pt.X >= s.PointAt(t).X {
					return sign
				}
				return 0
			}
		}
		return 0
	}
}

// Winding computes the winding number contribution of the segment, by
// casting a ray to the left of pt and counting intersections.
func (s Segment) Winding(pt Point) int {
	exs, n := s.extremaRanges()
	var w int
	for _, ex := range exs[:n] {
		w += s.Subsegment(ex[0], ex[1]).windingInner(pt)
	}
	return w
}

// Nearest returns the parameter of the segment closest to pt, and the
// squared distance to it.
func (s Segment) Nearest(pt Point) (distSq, t float64) {
	switch s.Kind {
	case LineKind:
		d := s.P1.Sub(s.P0)
		dotp := pt.Sub(s.P0).Dot(d)
		dSq := d.Hypot2()
		if dotp <= 0.0 || dSq == 0.0 {
			return s.P0.DistanceSquared(pt), 0
		} else if dotp >= dSq {
			return s.P1.DistanceSquared(pt), 1
		}
		t := dotp / dSq
		return s.PointAt(t).DistanceSquared(pt), t
	case QuadKind:
		return s.nearestQuad(pt)
	default:
		return s.nearestCubic(pt)
	}
}

// nearestQuad finds the nearest point analytically, via cubic root
// finding.
func (s Segment) nearestQuad(pt Point) (distSq, outT float64) {
	d0 := s.P1.Sub(s.P0)
	d1 := Vec2(s.P0).Add(Vec2(s.P2)).Sub(Vec2(s.P1).Mul(2.0))
	d := s.P0.Sub(pt)
	c0 := d.Dot(d0)
	c1 := 2.0*d0.Hypot2() + d.Dot(d1)
	c2 := 3.0 * d1.Dot(d0)
	c3 := d1.Hypot2()
	roots, n := SolveCubic(c0, c1, c2, c3)

	best := math.Inf(1)
	bestT := 0.0
	consider := func(t float64, p Point) {
		if r := p.DistanceSquared(pt); r < best {
			best = r
			bestT = t
		}
	}
	for _, t := range roots[:n] {
		if t >= 0.0 && t <= 1.0 {
			consider(t, s.PointAt(t))
		}
	}
	consider(0.0, s.P0)
	consider(1.0, s.P2)
	return best, bestT
}

// nearestCubic finds the nearest point by coarse sampling followed by
// ternary search on the squared distance.
func (s Segment) nearestCubic(pt Point) (distSq, outT float64) {
	const n = 32
	bestT := 0.0
	best := s.P0.DistanceSquared(pt)
	for i := 1; i <= n; i++ {
		t := float64(i) / n
		if r := s.PointAt(t).DistanceSquared(pt); r < best {
			best = r
			bestT = t
		}
	}
	lo := max(0.0, bestT-1.0/n)
	hi := min(1.0, bestT+1.0/n)
	for i := 0; i < 64; i++ {
		m0 := lo + (hi-lo)/3.0
		m1 := hi - (hi-lo)/3.0
		if s.PointAt(m0).DistanceSquared(pt) < s.PointAt(m1).DistanceSquared(pt) {
			hi = m1
		} else {
			lo = m0
		}
	}
	t := 0.5 * (lo + hi)
	if r := s.PointAt(t).DistanceSquared(pt); r < best {
		best = r
		bestT = t
	}
	return best, bestT
}

// minProgress is the smallest parameter interval that decomposition
// will subdivide. It bounds the work done on pathological curves.
const minProgress = 1.0 / 1024

// Decompose approximates the segment by a sequence of lines that
// deviate from the curve by at most tolerance. The callback receives
// each line along with the parameter range it covers; returning false
// stops the decomposition.
func (s Segment) Decompose(tolerance float64, yield func(from, to Point, t0, t1 float64) bool) bool {
	if s.Kind == LineKind {
		return yield(s.P0, s.P1, 0, 1)
	}
	var rec func(seg Segment, t0, t1 float64) bool
	rec = func(seg Segment, t0, t1 float64) bool {
		if t1-t0 <= minProgress || seg.flatEnough(tolerance) {
			return yield(seg.Start(), seg.End(), t0, t1)
		}
		left, right := seg.Split(0.5)
		tm := 0.5 * (t0 + t1)
		return rec(left, t0, tm) && rec(right, tm, t1)
	}
	return rec(s, 0, 1)
}

// flatEnough reports whether the control points deviate from the chord
// by no more than tolerance.
func (s Segment) flatEnough(tolerance float64) bool {
	switch s.Kind {
	case LineKind:
		return true
	case QuadKind:
		return distToChord(s.P1, s.P0, s.P2) <= tolerance
	default:
		return distToChord(s.P1, s.P0, s.P3) <= tolerance &&
			distToChord(s.P2, s.P0, s.P3) <= tolerance
	}
}

// distToChord returns the distance from pt to the line segment between
// a and b.
func distToChord(pt, a, b Point) float64 {
	d := b.Sub(a)
	dSq := d.Hypot2()
	if dSq == 0.0 {
		return pt.Distance(a)
	}
	t := pt.Sub(a).Dot(d) / dSq
	t = max(0.0, min(1.0, t))
	return pt.Distance(a.Translate(d.Mul(t)))
}
