package cosmic

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/ctxlog"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Image is a parsed star chart.
type Image struct {
	grid      *gridgraph.Grid
	galaxies  []int // row-major indices
	emptyRows []int
	emptyCols []int
}

// Parse validates the chart and records galaxies and empty lines.
func Parse(lines []string) (*Image, error) {
	g, err := gridgraph.FromLines(lines, gridgraph.Conn4)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedImage, err)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if r := g.At(x, y); r != space && r != galaxy {
				return nil, fmt.Errorf("%w: unrecognized glyph %q at row %d col %d", ErrMalformedImage, r, y, x)
			}
		}
	}

	return &Image{
		grid:      g,
		galaxies:  g.Find(galaxy),
		emptyRows: g.BlankRows(space),
		emptyCols: g.BlankCols(space),
	}, nil
}

// EmptyRows returns the indices of rows without galaxies.
func (im *Image) EmptyRows() []int { return im.emptyRows }

// EmptyCols returns the indices of columns without galaxies.
func (im *Image) EmptyCols() []int { return im.emptyCols }

// Expand returns galaxy positions after each empty row and column has grown
// to factor rows or columns, in row-major order of the original chart.
func (im *Image) Expand(factor int64) ([]Galaxy, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrExpansion, factor)
	}
	out := make([]Galaxy, len(im.galaxies))
	for i, idx := range im.galaxies {
		x, y := im.grid.Coordinate(idx)
		out[i] = Galaxy{
			X: int64(x) + (factor-1)*int64(countBelow(im.emptyCols, x)),
			Y: int64(y) + (factor-1)*int64(countBelow(im.emptyRows, y)),
		}
	}

	return out, nil
}

// countBelow returns how many of the sorted values are < v.
func countBelow(sorted []int, v int) int {
	return sort.SearchInts(sorted, v)
}

// SumDistances returns the sum of Manhattan distances over every unordered
// pair, split across workers goroutines. Row i of the pair triangle goes to
// worker i mod workers.
func SumDistances(ctx context.Context, galaxies []Galaxy, workers int) (int64, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(galaxies) {
		workers = max(len(galaxies), 1)
	}
	partial := make([]int64, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			var sum int64
			for i := w; i < len(galaxies); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				a := galaxies[i]
				for _, b := range galaxies[i+1:] {
					sum += a.MDist(b)
				}
			}
			partial[w] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	var total int64
	for _, s := range partial {
		total += s
	}

	return total, nil
}

// Solve returns the pair-distance sums for a two-fold expansion (part 1)
// and for Options.Expansion (part 2).
func Solve(ctx context.Context, lines []string, opts ...Option) (puzzle.Answer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	im, err := Parse(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ctxlog.FromContext(ctx).Debug("image parsed",
		"puzzle", "cosmic",
		"galaxies", len(im.galaxies),
		"empty_rows", len(im.emptyRows),
		"empty_cols", len(im.emptyCols),
		"workers", o.Workers)

	var ans puzzle.Answer
	for _, part := range []struct {
		factor int64
		dst    *int64
	}{
		{Part1Expansion, &ans.Part1},
		{o.Expansion, &ans.Part2},
	} {
		gs, err := im.Expand(part.factor)
		if err != nil {
			return puzzle.Answer{}, err
		}
		sum, err := SumDistances(ctx, gs, o.Workers)
		if err != nil {
			return puzzle.Answer{}, err
		}
		*part.dst = sum
	}

	return ans, nil
}

// Solver adapts Solve to puzzle.Solver.
func Solver(opts ...Option) puzzle.Solver {
	return func(ctx context.Context, lines []string) (puzzle.Answer, error) {
		return Solve(ctx, lines, opts...)
	}
}
