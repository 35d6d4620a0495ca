package loopmaze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/loopmaze"
)

//----------------------------------------------------------------------------//
// Parse and FindStart Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that bad inputs fail with the right sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"Empty", nil, loopmaze.ErrMalformedInput},
		{"EmptyRow", []string{""}, loopmaze.ErrMalformedInput},
		{"Ragged", []string{".S-7.", ".|.|", ".L-J."}, loopmaze.ErrMalformedInput},
		{"UnknownGlyph", []string{".S7", ".LJ", "..X"}, loopmaze.ErrMalformedInput},
		{"NonASCII", []string{"S7", "L╝"}, loopmaze.ErrMalformedInput},
		{"NoStart", []string{"F7", "LJ"}, loopmaze.ErrNoStartTile},
		{"TwoStarts", []string{"S7", "LS"}, loopmaze.ErrMultipleStartTiles},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := loopmaze.Parse(tc.lines)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, m)
		})
	}
}

// TestParse_RaggedKeepsCause exposes the underlying grid error.
func TestParse_RaggedKeepsCause(t *testing.T) {
	_, err := loopmaze.Parse([]string{"S7", "LJ."})
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

// TestParse_UnknownGlyphPosition names the offending cell.
func TestParse_UnknownGlyphPosition(t *testing.T) {
	_, err := loopmaze.Parse([]string{"S7.", "LJ#"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1 col 2")
}

func TestParse_Shape(t *testing.T) {
	m, err := loopmaze.Parse(squareLoop)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Width)
	assert.Equal(t, 5, m.Height)
	assert.Equal(t, loopmaze.Coord{Row: 1, Col: 1}, m.Start())
	assert.Equal(t, loopmaze.BendSW, m.At(loopmaze.Coord{Row: 1, Col: 3}).Shape)
	assert.Equal(t, loopmaze.Start, m.StartShape())

	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			assert.False(t, m.At(loopmaze.Coord{Row: r, Col: c}).Visited)
		}
	}
}

func TestFindStart(t *testing.T) {
	m, err := loopmaze.Parse(windingLoop)
	require.NoError(t, err)
	start, err := m.FindStart()
	require.NoError(t, err)
	assert.Equal(t, loopmaze.Coord{Row: 2, Col: 0}, start)
}

//----------------------------------------------------------------------------//
// Shape, Direction Tests
//----------------------------------------------------------------------------//

func TestShape_Opens(t *testing.T) {
	cases := []struct {
		shape loopmaze.Shape
		open  []loopmaze.Direction
	}{
		{loopmaze.Vertical, []loopmaze.Direction{loopmaze.North, loopmaze.South}},
		{loopmaze.Horizontal, []loopmaze.Direction{loopmaze.East, loopmaze.West}},
		{loopmaze.BendNE, []loopmaze.Direction{loopmaze.North, loopmaze.East}},
		{loopmaze.BendNW, []loopmaze.Direction{loopmaze.North, loopmaze.West}},
		{loopmaze.BendSW, []loopmaze.Direction{loopmaze.South, loopmaze.West}},
		{loopmaze.BendSE, []loopmaze.Direction{loopmaze.South, loopmaze.East}},
		{loopmaze.Ground, nil},
		{loopmaze.Start, []loopmaze.Direction{loopmaze.North, loopmaze.East, loopmaze.South, loopmaze.West}},
	}
	all := []loopmaze.Direction{loopmaze.North, loopmaze.East, loopmaze.South, loopmaze.West}
	for _, tc := range cases {
		for _, d := range all {
			assert.Equalf(t, contains(tc.open, d), tc.shape.Opens(d), "%c opens %s", tc.shape, d)
		}
	}
	assert.False(t, loopmaze.Shape('X').Valid())
}

func contains(ds []loopmaze.Direction, d loopmaze.Direction) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}

func TestDirection_OppositeAndStep(t *testing.T) {
	c := loopmaze.Coord{Row: 3, Col: 3}
	for _, d := range []loopmaze.Direction{loopmaze.North, loopmaze.East, loopmaze.South, loopmaze.West} {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, c, c.Step(d).Step(d.Opposite()))
	}
	assert.Equal(t, loopmaze.Coord{Row: 2, Col: 3}, c.Step(loopmaze.North))
	assert.Equal(t, loopmaze.Coord{Row: 3, Col: 4}, c.Step(loopmaze.East))
	assert.Equal(t, "W", loopmaze.West.String())
}
