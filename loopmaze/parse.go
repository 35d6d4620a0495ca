package loopmaze

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

// Maze is a rectangular grid of tiles with exactly one start tile.
// It is read-only except for Commit, which marks the main loop.
type Maze struct {
	Width, Height int
	tiles         [][]Tile
	start         Coord
	startShape    Shape // resolved by Commit
	committed     bool
}

// Parse builds a Maze from equal-length rows over |-LJ7F.S.
// Returns ErrMalformedInput for an empty grid, ragged rows or unknown glyphs,
// and ErrNoStartTile / ErrMultipleStartTiles from FindStart.
func Parse(lines []string) (*Maze, error) {
	g, err := gridgraph.FromLines(lines, gridgraph.Conn4)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	tiles := make([][]Tile, g.Height)
	for y := 0; y < g.Height; y++ {
		tiles[y] = make([]Tile, g.Width)
		for x := 0; x < g.Width; x++ {
			r := g.At(x, y)
			s := Shape(r)
			if r > 0x7f || !s.Valid() {
				return nil, fmt.Errorf("%w: unrecognized glyph %q at row %d col %d", ErrMalformedInput, r, y, x)
			}
			tiles[y][x] = Tile{Shape: s}
		}
	}
	m := &Maze{
		Width:      g.Width,
		Height:     g.Height,
		tiles:      tiles,
		startShape: Start,
	}
	start, err := m.FindStart()
	if err != nil {
		return nil, err
	}
	m.start = start

	return m, nil
}

// FindStart scans rows top to bottom, columns left to right, and returns
// the start tile's coordinate.
func (m *Maze) FindStart() (Coord, error) {
	var (
		found Coord
		count int
	)
	for r, row := range m.tiles {
		for c, t := range row {
			if t.Shape != Start {
				continue
			}
			if count == 0 {
				found = Coord{Row: r, Col: c}
			}
			count++
		}
	}
	switch {
	case count == 0:
		return Coord{}, ErrNoStartTile
	case count > 1:
		return Coord{}, fmt.Errorf("%w: found %d", ErrMultipleStartTiles, count)
	}

	return found, nil
}

// Start returns the start tile's coordinate.
func (m *Maze) Start() Coord {
	return m.start
}

// InBounds reports whether c lies inside the maze.
func (m *Maze) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < m.Height && c.Col >= 0 && c.Col < m.Width
}

// At returns the tile at c. The caller must check InBounds first.
func (m *Maze) At(c Coord) Tile {
	return m.tiles[c.Row][c.Col]
}

// StartShape returns the pipe under the start tile once a loop is committed,
// and Start before that.
func (m *Maze) StartShape() Shape {
	return m.startShape
}

// shapeAt returns the tile shape with the start tile resolved.
func (m *Maze) shapeAt(r, c int) Shape {
	if s := m.tiles[r][c].Shape; s != Start {
		return s
	}
	return m.startShape
}
