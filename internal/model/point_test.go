package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointAdd(t *testing.T) {
	sum := Point{Row: -2, Col: 7}.
		Add(Point{Row: 4, Col: -17}).
		Add(Point{Row: 3, Col: 3})

	assert.Equal(t, Point{Row: 5, Col: -7}, sum)
}

func TestPointSub(t *testing.T) {
	diff := Point{Row: -2, Col: 7}.
		Sub(Point{Row: 4, Col: -17}).
		Sub(Point{Row: 3, Col: 3})

	assert.Equal(t, Point{Row: -9, Col: 21}, diff)
}

func TestPointAddIsCommutativeAndSubIsInverse(t *testing.T) {
	points := []Point{
		{Row: 0, Col: 0},
		{Row: 1, Col: -1},
		{Row: -20, Col: 9},
		{Row: 39, Col: 4},
		{Row: -1, Col: -10},
	}

	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, a.Add(b), b.Add(a), "%v + %v", a, b)
			assert.Equal(t, a, a.Add(b).Sub(b), "(%v + %v) - %v", a, b, b)
		}
	}
}

func TestPointOperationsDoNotMutateOperands(t *testing.T) {
	a := Point{Row: 1, Col: 2}
	b := Point{Row: 3, Col: 4}

	_ = a.Add(b)
	_ = a.Sub(b)

	assert.Equal(t, Point{Row: 1, Col: 2}, a)
	assert.Equal(t, Point{Row: 3, Col: 4}, b)
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("3,7")
	require.NoError(t, err)
	assert.Equal(t, Point{Row: 3, Col: 7}, p)

	p, err = ParsePoint(" -1 , -2 ")
	require.NoError(t, err)
	assert.Equal(t, Point{Row: -1, Col: -2}, p)

	for _, bad := range []string{"", "3", "3;7", "a,1", "1,b", "1,2,3"} {
		_, err := ParsePoint(bad)
		assert.ErrorIs(t, err, ErrInvalidPoint, "input %q", bad)
	}
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "-1,5", Point{Row: -1, Col: 5}.String())
}
