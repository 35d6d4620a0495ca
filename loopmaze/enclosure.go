package loopmaze

import (
	"strings"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

// insideMask marks non-loop tiles that lie inside the committed loop.
//
// Each row is scanned left to right with a parity flag. Crossing a loop
// tile whose shape opens North (|, L, J) flips the flag; horizontal runs
// bounded by one north-facing and one south-facing bend flip it once, and
// runs bounded by two bends facing the same way flip it twice or not at all.
func (m *Maze) insideMask() [][]bool {
	mask := make([][]bool, m.Height)
	for r := 0; r < m.Height; r++ {
		mask[r] = make([]bool, m.Width)
		inside := false
		for c := 0; c < m.Width; c++ {
			if m.tiles[r][c].Visited {
				if m.shapeAt(r, c).Opens(North) {
					inside = !inside
				}
				continue
			}
			mask[r][c] = inside
		}
	}

	return mask
}

// Enclosed returns the number of non-loop tiles strictly inside the
// committed loop. Returns ErrNotCommitted before Commit.
// Complexity: O(W×H).
func (m *Maze) Enclosed() (int, error) {
	if !m.committed {
		return 0, ErrNotCommitted
	}
	n := 0
	for _, row := range m.insideMask() {
		for _, in := range row {
			if in {
				n++
			}
		}
	}

	return n, nil
}

const (
	scale    = 3
	wallCell = '#'
	openCell = '.'
)

// EnclosedFloodFill counts enclosed tiles by drawing the committed loop at
// 3× scale with a one-cell margin, flooding the open cells connected to the
// margin, and counting non-loop tiles whose centre cell was not reached.
// Complexity: O(9·W×H).
func (m *Maze) EnclosedFloodFill() (int, error) {
	if !m.committed {
		return 0, ErrNotCommitted
	}
	h, w := m.Height*scale+2, m.Width*scale+2
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(string(openCell), w))
	}
	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			if !m.tiles[r][c].Visited {
				continue
			}
			cy, cx := centre(r, c)
			cells[cy][cx] = wallCell
			shape := m.shapeAt(r, c)
			for _, d := range directions {
				if shape.Opens(d) {
					delta := deltas[d]
					cells[cy+delta.Row][cx+delta.Col] = wallCell
				}
			}
		}
	}
	g, err := gridgraph.NewGrid(cells, gridgraph.Conn4)
	if err != nil {
		return 0, err
	}
	open := func(r rune) bool { return r == openCell }
	outside := make([]bool, g.Width*g.Height)
	for _, idx := range g.ComponentOf(0, open) {
		outside[idx] = true
	}

	n := 0
	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			if m.tiles[r][c].Visited {
				continue
			}
			cy, cx := centre(r, c)
			if !outside[g.Index(cx, cy)] {
				n++
			}
		}
	}

	return n, nil
}

// centre returns the scaled-grid (y, x) of tile (r, c)'s middle cell.
func centre(r, c int) (int, int) {
	return r*scale + 2, c*scale + 2
}

// Render draws the maze after Commit: loop pipes as box-drawing glyphs,
// enclosed tiles as 'I' and every other tile as '.'. Before Commit it
// returns the raw glyphs.
func (m *Maze) Render() string {
	var sb strings.Builder
	var mask [][]bool
	if m.committed {
		mask = m.insideMask()
	}
	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			t := m.tiles[r][c]
			switch {
			case !m.committed:
				sb.WriteByte(byte(t.Shape))
			case t.Visited:
				sb.WriteRune(glyphs[m.shapeAt(r, c)])
			case mask[r][c]:
				sb.WriteByte('I')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
