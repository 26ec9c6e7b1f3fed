package path

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrokeExpansion(t *testing.T) {
	p := mustParse(t, "M 0 0 L 10 0 L 10 10 Z")

	tests := []struct {
		name   string
		stroke Stroke
		want   float64
	}{
		{"bevel", Stroke{Width: 2, Join: BevelJoin}, 1},
		{"round", Stroke{Width: 4, Join: RoundJoin}, 2},
		{"miter", Stroke{Width: 2, Join: MiterJoin, MiterLimit: 4}, 4},
		{"miter limit below one", Stroke{Width: 2, Join: MiterJoin, MiterLimit: 0.5}, 1},
		{"square caps", Stroke{Width: 2, Join: BevelJoin, StartCap: SquareCap}, math.Sqrt2},
		{"default", DefaultStroke, 2},
	}
	for _, tc := range tests {
		bounds, ok := p.StrokeBounds(tc.stroke)
		require.True(t, ok, tc.name)
		want := Rect{-tc.want, -tc.want, 10 + tc.want, 10 + tc.want}
		assert.Equal(t, want, bounds, tc.name)

		assert.Equal(t, want, p.Contour(0).StrokeBounds(tc.stroke), tc.name)
	}
}

func TestStrokeBoundsContainFill(t *testing.T) {
	// However thin the stroke, its bounds contain the path bounds.
	p := mustParse(t, "M -3 1 Q 4 9, 12 1 L 12 -5 Z")
	bounds, ok := p.Bounds()
	require.True(t, ok)
	sb, ok := p.StrokeBounds(DefaultStroke.WithWidth(0.1))
	require.True(t, ok)
	assert.True(t, sb.X0 <= bounds.X0 && sb.Y0 <= bounds.Y0 &&
		sb.X1 >= bounds.X1 && sb.Y1 >= bounds.Y1)
}

func TestStrokeWith(t *testing.T) {
	s := DefaultStroke.WithWidth(3).WithJoin(RoundJoin).WithMiterLimit(2).WithCaps(RoundCap)
	assert.Equal(t, Stroke{Width: 3, Join: RoundJoin, MiterLimit: 2, StartCap: RoundCap, EndCap: RoundCap}, s)
}
