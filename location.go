package path

// Direction picks one of the two tangents at a point on a path.
//
// At sharp turns a path has two distinct tangent directions, the one
// the path arrives with and the one it leaves with. At smooth points
// they coincide, up to sign.
type Direction uint8

const (
	// FromStart is the direction the path arrives at the point with.
	FromStart Direction = iota
	// ToStart points back towards the start of the path.
	ToStart
	// ToEnd is the direction the path leaves the point with.
	ToEnd
	// FromEnd points back from the end of the path.
	FromEnd
)

// Location addresses a point on a [Path] by contour index, operation
// index within the contour, and parameter within the operation.
//
// Operation index 0 is the contour's initial move; index i > 0 is its
// i-th curve segment. A location is only meaningful for the path it was
// obtained from.
type Location struct {
	Contour int
	Segment int
	T       float64
}

// Valid reports whether the location addresses a point on p.
func (l Location) Valid(p *Path) bool {
	if l.Contour < 0 || l.Contour >= len(p.contours) {
		return false
	}
	c := &p.contours[l.Contour]
	if l.Segment < 0 || l.Segment > c.numSegs() {
		return false
	}
	return l.T >= 0 && l.T <= 1
}

// canonical maps boundary locations onto a single representation: a
// location at the end of one segment is moved to the start of the next,
// and a location on the initial move is moved onto the first segment.
func (l Location) canonical(p *Path) Location {
	c := &p.contours[l.Contour]
	if l.Segment == 0 && c.numSegs() > 0 {
		l.Segment, l.T = 1, 0
	}
	if l.T == 1 && l.Segment < c.numSegs() {
		l.Segment++
		l.T = 0
	}
	return l
}

// Equal reports whether two locations address the same point on p.
// Locations on either side of a segment boundary compare equal.
func (l Location) Equal(p *Path, o Location) bool {
	if !l.Valid(p) || !o.Valid(p) {
		return false
	}
	if l.Contour != o.Contour {
		return false
	}
	lc := l.canonical(p)
	oc := o.canonical(p)
	return lc.Segment == oc.Segment && lc.T == oc.T
}

// Compare orders two locations by their position along p. It returns a
// negative number if l lies before o, zero if they address the same
// point, and a positive number otherwise.
func (l Location) Compare(p *Path, o Location) int {
	if l.Contour != o.Contour {
		return l.Contour - o.Contour
	}
	lc := l.canonical(p)
	oc := o.canonical(p)
	if lc.Segment != oc.Segment {
		return lc.Segment - oc.Segment
	}
	switch {
	case lc.T < oc.T:
		return -1
	case lc.T > oc.T:
		return 1
	default:
		return 0
	}
}

// PointAt returns the position of the location on the path.
func (p *Path) PointAt(loc Location) Point {
	loc = loc.canonical(p)
	c := &p.contours[loc.Contour]
	return c.segmentAt(loc.Segment).PointAt(loc.T)
}

// TangentAt returns the unit tangent of the path at the location, for
// the given direction.
func (p *Path) TangentAt(loc Location, dir Direction) Vec2 {
	loc = loc.canonical(p)
	c := &p.contours[loc.Contour]
	idx, t := loc.Segment, loc.T

	switch dir {
	case FromStart, ToStart:
		// Use the incoming segment when sitting on a boundary.
		if t == 0 && idx > 0 {
			if idx > 1 {
				idx--
				t = 1
			} else if c.closed && c.numSegs() > 0 {
				idx = c.numSegs()
				t = 1
			}
		}
	default:
		// The canonical form already moved boundary locations onto
		// the outgoing segment, except at the very end.
		if t == 1 && c.closed && c.numSegs() > 0 {
			idx = 1
			t = 0
		}
	}

	tangent := c.segmentAt(idx).TangentAt(t)
	if dir == ToStart || dir == FromEnd {
		tangent = tangent.Negate()
	}
	return tangent
}

// RotationAt returns the angle between the tangent at the location and
// the X axis, in radians.
func (p *Path) RotationAt(loc Location, dir Direction) float64 {
	return p.TangentAt(loc, dir).Angle()
}

// CurvatureAt returns the signed curvature of the path at the location,
// along with the center of the osculating circle. At points of zero
// curvature, ok is false and the center is meaningless.
func (p *Path) CurvatureAt(loc Location) (curvature float64, center Point, ok bool) {
	loc = loc.canonical(p)
	c := &p.contours[loc.Contour]
	return c.segmentAt(loc.Segment).CurvatureAt(loc.T)
}
