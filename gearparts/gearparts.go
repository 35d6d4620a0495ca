package gearparts

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/puzzle"
)

const (
	blank = '.'
	gear  = '*'
)

// Number is a run of digits on one row. End is inclusive.
type Number struct {
	Row, Start, End int
	Value           int64
}

// Schematic is a parsed engine schematic.
type Schematic struct {
	grid    *gridgraph.Grid
	Numbers []Number
}

func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isSymbol(r rune) bool { return r != blank && !isDigit(r) }

// Parse validates the grid and collects every number in scan order.
func Parse(lines []string) (*Schematic, error) {
	g, err := gridgraph.FromLines(lines, gridgraph.Conn8)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSchematic, err)
	}
	s := &Schematic{grid: g}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; {
			if !isDigit(g.At(x, y)) {
				x++
				continue
			}
			start := x
			for x < g.Width && isDigit(g.At(x, y)) {
				x++
			}
			v, err := strconv.ParseInt(string(g.Cells[y][start:x]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: number at row %d col %d: %w", ErrMalformedSchematic, y, start, err)
			}
			s.Numbers = append(s.Numbers, Number{Row: y, Start: start, End: x - 1, Value: v})
		}
	}

	return s, nil
}

// Adjacent returns the row-major indices of the symbols touching n, each
// once, in ascending order.
func (s *Schematic) Adjacent(n Number) []int {
	seen := make(map[int]bool)
	var out []int
	for x := n.Start; x <= n.End; x++ {
		for _, d := range s.grid.NeighborOffsets() {
			nx, ny := x+d[0], n.Row+d[1]
			if !s.grid.InBounds(nx, ny) || !isSymbol(s.grid.At(nx, ny)) {
				continue
			}
			if idx := s.grid.Index(nx, ny); !seen[idx] {
				seen[idx] = true
				out = append(out, idx)
			}
		}
	}
	sort.Ints(out)

	return out
}

// PartSum adds every number that touches at least one symbol.
func (s *Schematic) PartSum() int64 {
	var sum int64
	for _, n := range s.Numbers {
		if len(s.Adjacent(n)) > 0 {
			sum += n.Value
		}
	}

	return sum
}

// Gears maps the index of every '*' touching exactly two numbers to
// those numbers, in scan order.
func (s *Schematic) Gears() map[int][2]int64 {
	touching := make(map[int][]int64)
	for _, n := range s.Numbers {
		for _, idx := range s.Adjacent(n) {
			x, y := s.grid.Coordinate(idx)
			if s.grid.At(x, y) == gear {
				touching[idx] = append(touching[idx], n.Value)
			}
		}
	}
	out := make(map[int][2]int64)
	for idx, vs := range touching {
		if len(vs) == 2 {
			out[idx] = [2]int64{vs[0], vs[1]}
		}
	}

	return out
}

// GearRatioSum adds the product of each gear's two numbers.
func (s *Schematic) GearRatioSum() int64 {
	var sum int64
	for _, pair := range s.Gears() {
		sum += pair[0] * pair[1]
	}

	return sum
}

// Solve returns the part number sum and the gear ratio sum.
func Solve(_ context.Context, lines []string) (puzzle.Answer, error) {
	s, err := Parse(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: s.PartSum(), Part2: s.GearRatioSum()}, nil
}

// Solver adapts Solve to puzzle.Solver.
func Solver() puzzle.Solver {
	return Solve
}
