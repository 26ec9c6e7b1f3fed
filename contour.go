package path

import (
	"math"
)

// contourKind discriminates the contour variants.
type contourKind uint8

const (
	// standardContour is a generic sequence of curve segments.
	standardContour contourKind = iota
	// rectContour is an axis-aligned rectangle, stored as origin and
	// size.
	rectContour
	// circleContour is a circle, stored as center and radius.
	circleContour
)

// Contour is a single connected subpath of a [Path].
//
// A contour starts with an implicit move to its start point, followed
// by its curve segments. A closed contour ends with a closing segment,
// a line connecting the last point back to the start point.
//
// Rectangles and circles are stored as specialized variants that answer
// bounds and winding queries directly from their defining parameters.
// For all other queries they behave exactly like the equivalent
// standard contour: four lines for a rectangle, four cubic Béziers for
// a circle.
type Contour struct {
	kind   contourKind
	start  Point
	closed bool
	flat   bool

	// standard only
	segs []Segment

	// rectangle size; negative components flip the orientation
	size Vec2

	// circle
	center Point
	radius float64
}

func newContour(start Point, segs []Segment, closed bool) Contour {
	flat := true
	for _, s := range segs {
		if s.Kind != LineKind {
			flat = false
			break
		}
	}
	return Contour{kind: standardContour, start: start, segs: segs, closed: closed, flat: flat}
}

func newRectContour(origin Point, size Vec2) Contour {
	return Contour{
		kind:   rectContour,
		start:  origin,
		size:   size,
		closed: true,
		flat:   true,
	}
}

func newCircleContour(center Point, radius float64) Contour {
	return Contour{
		kind:   circleContour,
		start:  Pt(center.X+radius, center.Y),
		center: center,
		radius: radius,
		closed: true,
	}
}

// StartPoint returns the start point of the contour.
func (c *Contour) StartPoint() Point { return c.start }

// EndPoint returns the end point of the contour. For closed contours
// this is the start point.
func (c *Contour) EndPoint() Point {
	if c.closed || c.numSegs() == 0 {
		return c.start
	}
	return c.segs[len(c.segs)-1].End()
}

// Closed reports whether the contour ends with a closing segment.
func (c *Contour) Closed() bool { return c.closed }

// Flat reports whether the contour contains no curves.
func (c *Contour) Flat() bool { return c.flat }

// numSegs returns the number of curve segments, not counting the
// initial move.
func (c *Contour) numSegs() int {
	switch c.kind {
	case rectContour:
		return 4
	case circleContour:
		return 5
	default:
		return len(c.segs)
	}
}

// NumSegments returns the number of operations in the contour,
// including the initial move.
func (c *Contour) NumSegments() int { return c.numSegs() + 1 }

// segments returns the curve segments of the contour, materializing
// them for the specialized variants. For closed contours the last
// segment is the closing line.
func (c *Contour) segments() []Segment {
	switch c.kind {
	case rectContour:
		p0 := c.start
		p1 := Pt(c.start.X+c.size.X, c.start.Y)
		p2 := Pt(c.start.X+c.size.X, c.start.Y+c.size.Y)
		p3 := Pt(c.start.X, c.start.Y+c.size.Y)
		return []Segment{
			LineSegment(p0, p1),
			LineSegment(p1, p2),
			LineSegment(p2, p3),
			LineSegment(p3, p0),
		}
	case circleContour:
		r := c.radius
		k := circleMagic * r
		cx, cy := c.center.X, c.center.Y
		return []Segment{
			CubicSegment(Pt(cx+r, cy), Pt(cx+r, cy+k), Pt(cx+k, cy+r), Pt(cx, cy+r)),
			CubicSegment(Pt(cx, cy+r), Pt(cx-k, cy+r), Pt(cx-r, cy+k), Pt(cx-r, cy)),
			CubicSegment(Pt(cx-r, cy), Pt(cx-r, cy-k), Pt(cx-k, cy-r), Pt(cx, cy-r)),
			CubicSegment(Pt(cx, cy-r), Pt(cx+k, cy-r), Pt(cx+r, cy-k), Pt(cx+r, cy)),
			LineSegment(Pt(cx+r, cy), Pt(cx+r, cy)),
		}
	default:
		return c.segs
	}
}

// segmentAt returns the segment for operation index idx. Index 0 is the
// initial move, represented as a degenerate line.
func (c *Contour) segmentAt(idx int) Segment {
	if idx == 0 {
		return LineSegment(c.start, c.start)
	}
	if c.kind == standardContour {
		return c.segs[idx-1]
	}
	return c.segments()[idx-1]
}

// Bounds returns the bounding box of the contour.
func (c *Contour) Bounds() Rect {
	switch c.kind {
	case rectContour:
		return NewRectFromPoints(c.start, c.start.Translate(c.size))
	case circleContour:
		return Rect{
			X0: c.center.X - c.radius,
			Y0: c.center.Y - c.radius,
			X1: c.center.X + c.radius,
			Y1: c.center.Y + c.radius,
		}
	default:
		bounds := NewRectFromPoints(c.start, c.start)
		for _, s := range c.segs {
			bounds = bounds.Union(s.BoundingBox())
		}
		return bounds
	}
}

// StrokeBounds returns a rectangle guaranteed to contain everything a
// stroke of the contour with the given stroke parameters can cover.
func (c *Contour) StrokeBounds(stroke Stroke) Rect {
	e := stroke.expansion()
	return c.Bounds().Inflate(e, e)
}

// Winding computes the winding number of the contour around pt. Open
// contours are treated as if they were closed by a line back to their
// start point, matching how they are filled.
func (c *Contour) Winding(pt Point) int {
	switch c.kind {
	case rectContour:
		x0 := min(c.start.X, c.start.X+c.size.X)
		x1 := max(c.start.X, c.start.X+c.size.X)
		y0 := min(c.start.Y, c.start.Y+c.size.Y)
		y1 := max(c.start.Y, c.start.Y+c.size.Y)
		if pt.X < x0 || pt.X >= x1 || pt.Y < y0 || pt.Y >= y1 {
			return 0
		}
		if (c.size.X < 0) != (c.size.Y < 0) {
			return -1
		}
		return 1
	case circleContour:
		// Cheap rejection from the circle parameters; points near the
		// boundary defer to the four cubics so that the answer agrees
		// exactly with the decomposed form of the contour.
		d := pt.Distance(c.center)
		if d < c.radius*0.998 {
			return 1
		}
		if d > c.radius*1.002 {
			return 0
		}
	}
	var w int
	for _, s := range c.segments() {
		w += s.Winding(pt)
	}
	if !c.closed {
		end := c.EndPoint()
		if end != c.start {
			w += LineSegment(end, c.start).Winding(pt)
		}
	}
	return w
}

// ClosestPoint returns the operation index and parameter of the point
// on the contour closest to pt, if it is no farther away than
// threshold.
func (c *Contour) ClosestPoint(pt Point, threshold float64) (idx int, t float64, dist float64, ok bool) {
	best := threshold * threshold
	segs := c.segments()
	if len(segs) == 0 {
		if d := c.start.DistanceSquared(pt); d <= best {
			return 0, 1, math.Sqrt(d), true
		}
		return 0, 0, 0, false
	}
	for i, s := range segs {
		dSq, segT := s.Nearest(pt)
		// A later segment at the same distance does not displace an
		// earlier match.
		if dSq < best || (!ok && dSq == best) {
			best = dSq
			idx = i + 1
			t = segT
			ok = true
		}
	}
	if !ok {
		return 0, 0, 0, false
	}
	return idx, t, math.Sqrt(best), true
}

// forEach invokes fn for each operation of the contour, without any
// decomposition. It returns false if fn did.
func (c *Contour) forEach(fn ForEachFunc) bool {
	if !fn(MoveOp, []Point{c.start}) {
		return false
	}
	segs := c.segments()
	for i, s := range segs {
		if c.closed && i == len(segs)-1 {
			if !fn(CloseOp, []Point{s.P0, s.P1}) {
				return false
			}
			break
		}
		var ok bool
		switch s.Kind {
		case LineKind:
			ok = fn(LineOp, []Point{s.P0, s.P1})
		case QuadKind:
			ok = fn(QuadOp, []Point{s.P0, s.P1, s.P2})
		default:
			ok = fn(CubicOp, []Point{s.P0, s.P1, s.P2, s.P3})
		}
		if !ok {
			return false
		}
	}
	return true
}
