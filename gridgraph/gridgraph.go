// Package gridgraph provides utilities to treat a 2D grid of runes as a graph.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected components of cells matching a predicate
//   - Lookups of cells, blank rows and blank columns
package gridgraph

import (
	"fmt"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(cells [][]rune, conn Connectivity) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	copied := make([][]rune, h)
	for y := 0; y < h; y++ {
		copied[y] = make([]rune, w)
		copy(copied[y], cells[y])
	}
	var offsets [][2]int
	if conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		Width:           w,
		Height:          h,
		Cells:           copied,
		Conn:            conn,
		neighborOffsets: offsets,
	}, nil
}

// FromLines builds a Grid from text lines, one row per line.
// Lengths are measured in runes, not bytes.
func FromLines(lines []string, conn Connectivity) (*Grid, error) {
	cells := make([][]rune, len(lines))
	for y, line := range lines {
		cells[y] = []rune(line)
	}

	return NewGrid(cells, conn)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the rune at (x,y). The caller must check InBounds first.
func (g *Grid) At(x, y int) rune {
	return g.Cells[y][x]
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Find returns the row-major indices of every cell holding r, in scan order.
func (g *Grid) Find(r rune) []int {
	var out []int
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] == r {
				out = append(out, g.Index(x, y))
			}
		}
	}

	return out
}

// BlankRows returns, in ascending order, the rows made only of blank.
func (g *Grid) BlankRows(blank rune) []int {
	var rows []int
	for y := 0; y < g.Height; y++ {
		if g.rowIs(y, blank) {
			rows = append(rows, y)
		}
	}

	return rows
}

// BlankCols returns, in ascending order, the columns made only of blank.
func (g *Grid) BlankCols(blank rune) []int {
	var cols []int
	for x := 0; x < g.Width; x++ {
		if g.colIs(x, blank) {
			cols = append(cols, x)
		}
	}

	return cols
}

func (g *Grid) rowIs(y int, r rune) bool {
	for _, c := range g.Cells[y] {
		if c != r {
			return false
		}
	}

	return true
}

func (g *Grid) colIs(x int, r rune) bool {
	for y := 0; y < g.Height; y++ {
		if g.Cells[y][x] != r {
			return false
		}
	}

	return true
}
