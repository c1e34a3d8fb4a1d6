package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasalvit/svgshape"
)

func TestFloats(t *testing.T) {
	v, err := floats("1,2.5 -3", 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, v)

	v, err = floats(".5-1e1", 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -10}, v)

	for _, s := range []string{"1,2", "1,2,3,4", "1;2;3", "a,b,c"} {
		_, err := floats(s, 3)
		assert.Error(t, err, s)
	}
}

func TestParsePivot(t *testing.T) {
	for _, test := range []struct {
		in   string
		want svgshape.Pivot
	}{
		{"", svgshape.Center},
		{"center", svgshape.Center},
		{"UP", svgshape.Toward(svgshape.Up)},
		{"right", svgshape.Toward(svgshape.Right)},
		{"#3", svgshape.Index(3)},
		{"4,-2", svgshape.At(svgshape.Point{X: 4, Y: -2})},
	} {
		p, err := parsePivot(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, p, test.in)
	}

	for _, s := range []string{"#x", "1", "north"} {
		_, err := parsePivot(s)
		assert.Error(t, err, s)
	}
}
