package path

import (
	"math"
)

// FillRule determines how overlapping areas of a path are filled.
type FillRule uint8

const (
	// NonZero fills every point whose winding number is nonzero.
	NonZero FillRule = iota
	// EvenOdd fills every point whose winding number is odd.
	EvenOdd
)

// PathOp identifies an operation reported by [Path.ForEach].
type PathOp uint8

const (
	// MoveOp starts a new contour. One point.
	MoveOp PathOp = iota
	// LineOp draws a line. Two points.
	LineOp
	// QuadOp draws a quadratic Bézier. Three points.
	QuadOp
	// CubicOp draws a cubic Bézier. Four points.
	CubicOp
	// CloseOp closes the contour with a line back to its start.
	// Two points.
	CloseOp
)

// ForEachFunc is called for each operation of a path. Returning false
// stops the iteration.
type ForEachFunc func(op PathOp, pts []Point) bool

// ForEachFlags selects which curve operations [Path.ForEach] may pass
// to its callback. Move, line and close operations are always allowed.
type ForEachFlags uint8

const (
	// AllowQuad permits quadratic Bézier operations.
	AllowQuad ForEachFlags = 1 << iota
	// AllowCubic permits cubic Bézier operations.
	AllowCubic

	// OnlyLines decomposes all curves into lines.
	OnlyLines ForEachFlags = 0
	// AllowAll passes every operation through unchanged.
	AllowAll = AllowQuad | AllowCubic
)

// Path is an immutable sequence of contours describing a shape in 2D
// space.
//
// Paths are constructed with a [Builder] or parsed with [Parse]; once
// constructed they never change, and all methods are safe for
// concurrent use.
type Path struct {
	contours []Contour
}

// IsEmpty reports whether the path contains no contours.
func (p *Path) IsEmpty() bool {
	return len(p.contours) == 0
}

// IsClosed reports whether the path consists of a single closed
// contour. The empty path is not closed.
func (p *Path) IsClosed() bool {
	return len(p.contours) == 1 && p.contours[0].closed
}

// IsFlat reports whether no contour of the path contains curves. The
// empty path is vacuously flat.
func (p *Path) IsFlat() bool {
	for i := range p.contours {
		if !p.contours[i].flat {
			return false
		}
	}
	return true
}

// NumContours returns the number of contours of the path.
func (p *Path) NumContours() int { return len(p.contours) }

// Contour returns the i-th contour of the path.
func (p *Path) Contour(i int) *Contour { return &p.contours[i] }

// Bounds returns the bounding box of the path. It returns ok == false
// and the zero rectangle if the path is empty.
//
// The bounds may be larger than the area actually filled by the path,
// but never smaller.
func (p *Path) Bounds() (bounds Rect, ok bool) {
	if len(p.contours) == 0 {
		return Rect{}, false
	}
	bounds = p.contours[0].Bounds()
	for i := 1; i < len(p.contours); i++ {
		bounds = bounds.Union(p.contours[i].Bounds())
	}
	return bounds, true
}

// StrokeBounds returns a rectangle guaranteed to contain everything a
// stroke of the path with the given stroke parameters can cover. It
// returns ok == false and the zero rectangle if the path is empty.
//
// The result is conservative; the actual stroke may cover much less.
func (p *Path) StrokeBounds(stroke Stroke) (bounds Rect, ok bool) {
	bounds, ok = p.Bounds()
	if !ok {
		return Rect{}, false
	}
	e := stroke.expansion()
	return bounds.Inflate(e, e), true
}

// InFill reports whether pt is contained in the fill of the path under
// the given fill rule. Open contours are implicitly closed by a line
// back to their start point.
func (p *Path) InFill(pt Point, rule FillRule) bool {
	var winding int
	for i := range p.contours {
		winding += p.contours[i].Winding(pt)
	}
	switch rule {
	case EvenOdd:
		return winding&1 != 0
	default:
		return winding != 0
	}
}

// StartPoint returns the location of the first point of the path. It
// returns ok == false on an empty path.
func (p *Path) StartPoint() (Location, bool) {
	if len(p.contours) == 0 {
		return Location{}, false
	}
	c := &p.contours[0]
	if c.numSegs() == 0 {
		return Location{Contour: 0, Segment: 0, T: 1}, true
	}
	return Location{Contour: 0, Segment: 1, T: 0}, true
}

// EndPoint returns the location of the last point of the path. It
// returns ok == false on an empty path.
func (p *Path) EndPoint() (Location, bool) {
	if len(p.contours) == 0 {
		return Location{}, false
	}
	ci := len(p.contours) - 1
	c := &p.contours[ci]
	n := c.numSegs()
	if n == 0 {
		return Location{Contour: ci, Segment: 0, T: 1}, true
	}
	return Location{Contour: ci, Segment: n, T: 1}, true
}

// ClosestPoint returns the location of the point on the path closest to
// pt, if it is no farther away than threshold.
func (p *Path) ClosestPoint(pt Point, threshold float64) (Location, bool) {
	var best Location
	found := false
	for i := range p.contours {
		idx, t, dist, ok := p.contours[i].ClosestPoint(pt, threshold)
		// A later contour has to be strictly closer to displace an
		// earlier match.
		if !ok || (found && dist >= threshold) {
			continue
		}
		best = Location{Contour: i, Segment: idx, T: t}
		found = true
		threshold = dist
	}
	return best, found
}

// ForEach invokes fn for each operation of the path.
//
// Curve operations not permitted by flags are replaced: quadratics are
// elevated to cubics when cubics are allowed, and curves are otherwise
// decomposed into lines that deviate from the curve by no more than
// tolerance.
//
// ForEach returns false if fn did.
func (p *Path) ForEach(tolerance float64, flags ForEachFlags, fn ForEachFunc) bool {
	wrapped := fn
	if flags&AllowAll != AllowAll {
		wrapped = func(op PathOp, pts []Point) bool {
			switch op {
			case QuadOp:
				if flags&AllowQuad != 0 {
					return fn(op, pts)
				}
				seg := QuadSegment(pts[0], pts[1], pts[2])
				if flags&AllowCubic != 0 {
					e := seg.Elevate()
					return fn(CubicOp, []Point{e.P0, e.P1, e.P2, e.P3})
				}
				return seg.Decompose(tolerance, func(from, to Point, t0, t1 float64) bool {
					return fn(LineOp, []Point{from, to})
				})
			case CubicOp:
				if flags&AllowCubic != 0 {
					return fn(op, pts)
				}
				seg := CubicSegment(pts[0], pts[1], pts[2], pts[3])
				if flags&AllowQuad != 0 {
					return seg.decomposeQuads(tolerance, func(q Segment) bool {
						return fn(QuadOp, []Point{q.P0, q.P1, q.P2})
					})
				}
				return seg.Decompose(tolerance, func(from, to Point, t0, t1 float64) bool {
					return fn(LineOp, []Point{from, to})
				})
			default:
				return fn(op, pts)
			}
		}
	}
	for i := range p.contours {
		if !p.contours[i].forEach(wrapped) {
			return false
		}
	}
	return true
}

// Transform returns a new path with the transform applied to every
// point of the path.
func (p *Path) Transform(aff Affine) *Path {
	contours := make([]Contour, len(p.contours))
	for i := range p.contours {
		c := &p.contours[i]
		src := c.segments()
		segs := make([]Segment, len(src))
		for j, s := range src {
			segs[j] = s.Transform(aff)
		}
		contours[i] = newContour(c.start.Transform(aff), segs, c.closed)
	}
	return &Path{contours: contours}
}

// decomposeQuads approximates a cubic segment by quadratics within
// tolerance, subdividing until the single-quadratic error bound
// √3/36·|p3−3p2+3p1−p0| is small enough.
func (s Segment) decomposeQuads(tolerance float64, yield func(q Segment) bool) bool {
	var rec func(seg Segment, t0, t1 float64) bool
	rec = func(seg Segment, t0, t1 float64) bool {
		err := Vec2(seg.P3).
			Sub(Vec2(seg.P2).Mul(3.0)).
			Add(Vec2(seg.P1).Mul(3.0)).
			Sub(Vec2(seg.P0)).
			Hypot() * (math.Sqrt(3.0) / 36.0)
		if err <= tolerance || t1-t0 <= minProgress {
			// Control point of the best single-quadratic fit.
			ctrl := Point(Vec2(seg.P1).Add(Vec2(seg.P2)).Mul(3.0).
				Sub(Vec2(seg.P0)).
				Sub(Vec2(seg.P3)).
				Mul(0.25))
			return yield(QuadSegment(seg.P0, ctrl, seg.P3))
		}
		left, right := seg.Split(0.5)
		tm := 0.5 * (t0 + t1)
		return rec(left, t0, tm) && rec(right, tm, t1)
	}
	return rec(s, 0, 1)
}
