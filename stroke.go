package path

import (
	"math"
)

// Join defines the connection between two segments of a stroke.
type Join int

const (
	// A straight line connecting the segments.
	BevelJoin Join = iota
	// The segments are extended to their natural intersection point.
	MiterJoin
	// An arc between the segments.
	RoundJoin
)

// Cap defines the shape to be drawn at the ends of a stroke.
type Cap int

const (
	// Flat cap.
	ButtCap Cap = iota
	// Square cap with dimensions equal to half the stroke width.
	SquareCap
	// Rounded cap with radius equal to half the stroke width.
	RoundCap
)

// Stroke describes the visual style of a stroke.
type Stroke struct {
	// Width of the stroke.
	Width float64
	// Style for connecting segments of the stroke.
	Join Join
	// Limit for miter joins, as a multiple of half the stroke width.
	MiterLimit float64
	// Style for capping the beginning of an open contour.
	StartCap Cap
	// Style for capping the end of an open contour.
	EndCap Cap
}

// DefaultStroke matches the defaults of common rendering APIs.
var DefaultStroke = Stroke{
	Width:      1.0,
	Join:       MiterJoin,
	MiterLimit: 4.0,
	StartCap:   ButtCap,
	EndCap:     ButtCap,
}

func (s Stroke) WithWidth(width float64) Stroke      { s.Width = width; return s }
func (s Stroke) WithJoin(join Join) Stroke           { s.Join = join; return s }
func (s Stroke) WithMiterLimit(limit float64) Stroke { s.MiterLimit = limit; return s }
func (s Stroke) WithCaps(cap Cap) Stroke             { s.StartCap, s.EndCap = cap, cap; return s }

// expansion returns how far beyond the path the stroke can reach, in
// each direction.
func (s Stroke) expansion() float64 {
	e := 0.5 * s.Width
	if s.Join == MiterJoin && s.MiterLimit > 1 {
		e *= s.MiterLimit
	}
	if s.StartCap == SquareCap || s.EndCap == SquareCap {
		e = max(e, 0.5*s.Width*math.Sqrt2)
	}
	return e
}
