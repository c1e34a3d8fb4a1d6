package svgshape

import (
	"math"
	"testing"

	mt "github.com/rustyoz/Mtransform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransform(t *testing.T) {
	for _, test := range []struct {
		transform string
		in, want  Point
	}{
		{"translate(10,20)", Point{1, 2}, Point{11, 22}},
		{"translate(10)", Point{1, 2}, Point{11, 2}},
		{"scale(2)", Point{1, 2}, Point{2, 4}},
		{"scale(2, -1)", Point{1, 2}, Point{2, -2}},
		{"translate(10) scale(2)", Point{1, 2}, Point{12, 4}},
		{"scale(2),translate(10)", Point{1, 2}, Point{22, 4}},
		{"rotate(90)", Point{1, 0}, Point{0, 1}},
		{"rotate(90 5 5)", Point{6, 5}, Point{5, 6}},
		{"rotate(-90, 5, 5)", Point{6, 5}, Point{5, 4}},
		{"matrix(1 0 0 1 5 6)", Point{1, 2}, Point{6, 8}},
		{"matrix(0,1,-1,0,0,0)", Point{1, 0}, Point{0, 1}},
		{"matrix(2 0 0 3 .5 -1)", Point{1, 1}, Point{2.5, 2}},
		{"skewX(45)", Point{0, 1}, Point{1, 1}},
		{"skewY(45)", Point{1, 0}, Point{1, 1}},
		{"", Point{3, 4}, Point{3, 4}},
	} {
		m, err := ParseTransform(test.transform)
		require.NoError(t, err, test.transform)
		x, y := m.Apply(test.in.X, test.in.Y)
		assert.InDelta(t, test.want.X, x, tolerance, test.transform)
		assert.InDelta(t, test.want.Y, y, tolerance, test.transform)
	}
}

func TestParseTransformErrors(t *testing.T) {
	for _, s := range []string{
		"translate(1,2,3)",
		"translate(1",
		"translate(1;2)",
		"spin(4)",
		"rotate(1,2)",
		"matrix(1 2 3)",
		"scale(a)",
		"scale(#2)",
	} {
		_, err := ParseTransform(s)
		assert.Error(t, err, s)
	}
}

func TestRotatePointMatchesTransform(t *testing.T) {
	m, err := ParseTransform("rotate(30 4 -2)")
	require.NoError(t, err)
	for _, p := range []Point{{0, 0}, {10, 3}, {-7, 8.5}} {
		x, y := m.Apply(p.X, p.Y)
		r := RotatePoint(p, Point{4, -2}, 30)
		assert.InDelta(t, x, r.X, tolerance)
		assert.InDelta(t, y, r.Y, tolerance)
	}
}

func TestTransformInstructions(t *testing.T) {
	ins := mustParse(t, "M0,0 H10 V5 A2,3 0 0,1 0,0 Z")
	m, err := ParseTransform("translate(1,1) scale(2)")
	require.NoError(t, err)

	TransformInstructions(ins, m)
	assert.Equal(t, "M1,1 H21 V11 A4,6,0,0,1,1,1 Z", ins.String())

	m, err = ParseTransform("scale(-1,1)")
	require.NoError(t, err)
	TransformInstructions(ins, m)
	assert.False(t, ins[3].Arc.Sweep)
	assert.InDelta(t, 180, math.Abs(ins[3].Arc.Rotation), tolerance)

	m, err = ParseTransform("rotate(30)")
	require.NoError(t, err)
	TransformInstructions(ins, m)
	assert.Equal(t, LineInstruction, ins[1].Kind)
	assert.Equal(t, LineInstruction, ins[2].Kind)

	ins = mustParse(t, "M0,0 H10")
	TransformInstructions(ins, mt.Identity())
	assert.Equal(t, "M0,0 H10", ins.String())
}

func TestShapeTransform(t *testing.T) {
	m, err := ParseTransform("translate(5,5) scale(3)")
	require.NoError(t, err)

	c, err := NewCircle(CircleParams{Cx: 1, Cy: 1, R: 1}, nil)
	require.NoError(t, err)
	require.NoError(t, c.Transform(m))
	center, err := c.Center()
	require.NoError(t, err)
	assert.Equal(t, Point{8, 8}, center)
	assert.Equal(t, 3.0, c.Radius())
	assert.Equal(t, "3", c.Node().GetAttribute("r"))

	p, err := NewPath("0,0 1,0 1,1", nil)
	require.NoError(t, err)
	require.NoError(t, p.Transform(m))
	assert.Equal(t, []Point{{5, 5}, {8, 5}, {8, 8}}, p.Points())
}
