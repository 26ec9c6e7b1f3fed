package path

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// ParseError describes a syntax error in a path string.
type ParseError struct {
	// Byte offset of the error in the input.
	Pos int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid path syntax at offset %d", e.Pos)
}

type parser struct {
	data []byte
	pos  int
}

func (p *parser) eof() bool { return p.pos >= len(p.data) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.data[p.pos]
}

func (p *parser) skipWhitespace() {
	for !p.eof() {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) skipOptionalComma() {
	p.skipWhitespace()
	if p.peek() == ',' {
		p.pos++
	}
}

func (p *parser) parseNumber(x *float64) bool {
	p.skipWhitespace()
	v, n := strconv.ParseFloat(p.data[p.pos:])
	if n == 0 {
		return false
	}
	p.pos += n
	*x = v
	p.skipOptionalComma()
	return true
}

func (p *parser) parseCoordinatePair(x, y *float64) bool {
	o := p.pos
	var xx, yy float64
	if !p.parseNumber(&xx) {
		p.pos = o
		return false
	}
	if !p.parseNumber(&yy) {
		p.pos = o
		return false
	}
	*x = xx
	*y = yy
	return true
}

func (p *parser) parseNonnegativeNumber(x *float64) bool {
	o := p.pos
	var n float64
	if !p.parseNumber(&n) {
		return false
	}
	if n < 0 {
		p.pos = o
		return false
	}
	*x = n
	return true
}

func (p *parser) parseFlag(f *bool) bool {
	p.skipWhitespace()
	if c := p.peek(); c == '0' || c == '1' {
		*f = c == '1'
		p.pos++
		p.skipOptionalComma()
		return true
	}
	return false
}

func (p *parser) parseCommand(cmd *byte) bool {
	allowed := "mMhHvVzZlLcCsStTqQaAeE"
	if *cmd == 'X' {
		allowed = "mM"
	}
	p.skipWhitespace()
	if c := p.peek(); c != 0 && strings.IndexByte(allowed, c) >= 0 {
		*cmd = c
		p.pos++
		return true
	}
	return false
}

func (p *parser) afterComma() bool {
	return p.pos > 0 && p.data[p.pos-1] == ','
}

// Parse constructs a path from a serialized form.
//
// The string is expected to be in (a superset of) SVG path syntax, as
// e.g. produced by [Path.String]. In addition to the SVG commands, an
// `E x1 y1 x2 y2` command adds an elliptical arc to (x2, y2), with the
// tangents at both ends meeting in (x1, y1).
//
// Parsing is transactional: if the string contains a syntax error, no
// path is returned.
func Parse(s string) (*Path, error) {
	p := &parser{data: []byte(s)}
	b := NewBuilder()

	var x, y float64         // current point
	var prevX1, prevY1 float64 // control point of the previous curve
	var pathX, pathY float64 // start of the current subpath
	cmd := byte('X')

	// A draw command directly after a close reopens the subpath at the
	// current point.
	reopen := func(prevCmd byte) {
		if prevCmd == 'z' || prevCmd == 'Z' {
			b.MoveTo(Pt(x, y))
			pathX, pathY = x, y
		}
	}

	for !p.eof() {
		prevCmd := cmd
		// Whether the previous command's arguments ended in a comma,
		// before parseCommand advances past the next letter. A comma
		// may separate repeated arguments, but not precede a command.
		afterComma := p.afterComma()
		repeat := !p.parseCommand(&cmd)

		if afterComma && !repeat {
			return nil, &ParseError{Pos: p.pos}
		}

		switch cmd {
		case 'X':
			return nil, &ParseError{Pos: p.pos}

		case 'Z', 'z':
			if repeat {
				return nil, &ParseError{Pos: p.pos}
			}
			b.Close()
			x, y = pathX, pathY

		case 'M', 'm':
			var x1, y1 float64
			if !p.parseCoordinatePair(&x1, &y1) {
				return nil, &ParseError{Pos: p.pos}
			}
			if cmd == 'm' {
				x1 += x
				y1 += y
			}
			if repeat {
				b.LineTo(Pt(x1, y1))
			} else {
				b.MoveTo(Pt(x1, y1))
				if prevCmd == 'z' || prevCmd == 'Z' || prevCmd == 'X' {
					pathX, pathY = x1, y1
				}
			}
			x, y = x1, y1

		case 'L', 'l':
			var x1, y1 float64
			if !p.parseCoordinatePair(&x1, &y1) {
				return nil, &ParseError{Pos: p.pos}
			}
			if cmd == 'l' {
				x1 += x
				y1 += y
			}
			reopen(prevCmd)
			b.LineTo(Pt(x1, y1))
			x, y = x1, y1

		case 'H', 'h':
			var x1 float64
			if !p.parseNumber(&x1) {
				return nil, &ParseError{Pos: p.pos}
			}
			if cmd == 'h' {
				x1 += x
			}
			reopen(prevCmd)
			b.LineTo(Pt(x1, y))
			x = x1

		case 'V', 'v':
			var y1 float64
			if !p.parseNumber(&y1) {
				return nil, &ParseError{Pos: p.pos}
			}
			if cmd == 'v' {
				y1 += y
			}
			reopen(prevCmd)
			b.LineTo(Pt(x, y1))
			y = y1

		case 'C', 'c':
			var x0, y0, x1, y1, x2, y2 float64
			if !p.parseCoordinatePair(&x0, &y0) ||
				!p.parseCoordinatePair(&x1, &y1) ||
				!p.parseCoordinatePair(&x2, &y2) {
				return nil, &ParseError{Pos: p.pos}
			}
			if cmd == 'c' {
				x0 += x
				y0 += y
				x1 += x
				y1 += y
				x2 += x
				y2 += y
			}
			reopen(prevCmd)
			b.CubicTo(Pt(x0, y0), Pt(x1, y1), Pt(x2, y2))
			prevX1, prevY1 = x1, y1
			x, y = x2, y2

		case 'S', 's':
			var x0, y0, x1, y1, x2, y2 float64
			if !p.parseCoordinatePair(&x1, &y1) ||
				!p.parseCoordinatePair(&x2, &y2) {
				return nil, &ParseError{Pos: p.pos}
			}
			if cmd == 's' {
				x1 += x
				y1 += y
				x2 += x
				y2 += y
			}
			if strings.IndexByte("CcSs", prevCmd) >= 0 {
				x0 = 2*x - prevX1
				y0 = 2*y - prevY1
			} else {
				x0, y0 = x, y
			}
			reopen(prevCmd)
			b.CubicTo(Pt(x0, y0), Pt(x1, y1), Pt(x2, y2))
			prevX1, prevY1 = x1, y1
			x, y = x2, y2

		case 'Q', 'q':
			var x1, y1, x2, y2 float64
			if !p.parseCoordinatePair(&x1, &y1) ||
				!p.parseCoordinatePair(&x2, &y2) {
				return nil, &ParseError{Pos: p.pos}
			}
			if cmd == 'q' {
				x1 += x
				y1 += y
				x2 += x
				y2 += y
			}
			reopen(prevCmd)
			b.QuadTo(Pt(x1, y1), Pt(x2, y2))
			prevX1, prevY1 = x1, y1
			x, y = x2, y2

		case 'T', 't':
			var x1, y1, x2, y2 float64
			if !p.parseCoordinatePair(&x2, &y2) {
				return nil, &ParseError{Pos: p.pos}
			}
			if cmd == 't' {
				x2 += x
				y2 += y
			}
			if strings.IndexByte("QqTt", prevCmd) >= 0 {
				x1 = 2*x - prevX1
				y1 = 2*y - prevY1
			} else {
				x1, y1 = x, y
			}
			reopen(prevCmd)
			b.QuadTo(Pt(x1, y1), Pt(x2, y2))
			prevX1, prevY1 = x1, y1
			x, y = x2, y2

		case 'A', 'a':
			var rx, ry, rotation float64
			var largeArc, sweep bool
			var x1, y1 float64
			if !p.parseNonnegativeNumber(&rx) ||
				!p.parseNonnegativeNumber(&ry) ||
				!p.parseNumber(&rotation) ||
				!p.parseFlag(&largeArc) ||
				!p.parseFlag(&sweep) ||
				!p.parseCoordinatePair(&x1, &y1) {
				return nil, &ParseError{Pos: p.pos}
			}
			if cmd == 'a' {
				x1 += x
				y1 += y
			}
			reopen(prevCmd)
			b.SVGArcTo(rx, ry, rotation*math.Pi/180, largeArc, sweep, Pt(x1, y1))
			x, y = x1, y1

		case 'E', 'e':
			var x1, y1, x2, y2 float64
			if !p.parseCoordinatePair(&x1, &y1) ||
				!p.parseCoordinatePair(&x2, &y2) {
				return nil, &ParseError{Pos: p.pos}
			}
			if cmd == 'e' {
				x1 += x
				y1 += y
				x2 += x
				y2 += y
			}
			reopen(prevCmd)
			b.ArcTo(Pt(x1, y1), Pt(x2, y2))
			prevX1, prevY1 = x1, y1
			x, y = x2, y2

		default:
			return nil, &ParseError{Pos: p.pos}
		}
	}

	if p.afterComma() {
		return nil, &ParseError{Pos: p.pos}
	}

	return b.Path(), nil
}
