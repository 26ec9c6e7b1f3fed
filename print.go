package path

import (
	"strconv"
	"strings"
)

func appendCoord(sb *strings.Builder, v float64) {
	sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}

func appendPoint(sb *strings.Builder, pt Point) {
	appendCoord(sb, pt.X)
	sb.WriteByte(' ')
	appendCoord(sb, pt.Y)
}

// String converts the path into a human-readable string representation
// that can be passed to [Parse] to recover the path exactly.
//
// Arcs do not survive the round trip through [Parse] as arc commands;
// they are serialized as the cubic Béziers they were lowered to.
func (p *Path) String() string {
	var sb strings.Builder
	for i := range p.contours {
		if i > 0 {
			sb.WriteByte(' ')
		}
		c := &p.contours[i]
		sb.WriteString("M ")
		appendPoint(&sb, c.start)
		segs := c.segments()
		for j, s := range segs {
			if c.closed && j == len(segs)-1 {
				sb.WriteString(" Z")
				break
			}
			switch s.Kind {
			case LineKind:
				sb.WriteString(" L ")
				appendPoint(&sb, s.P1)
			case QuadKind:
				sb.WriteString(" Q ")
				appendPoint(&sb, s.P1)
				sb.WriteString(", ")
				appendPoint(&sb, s.P2)
			default:
				sb.WriteString(" C ")
				appendPoint(&sb, s.P1)
				sb.WriteString(", ")
				appendPoint(&sb, s.P2)
				sb.WriteString(", ")
				appendPoint(&sb, s.P3)
			}
		}
	}
	return sb.String()
}
