package almanac

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2023/internal/ctxlog"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Map returns where v lands after this stage.
func (s Stage) Map(v int64) int64 {
	for _, r := range s.Rules {
		if v >= r.Src && v < r.Src+r.Len {
			return r.Dst + (v - r.Src)
		}
	}
	return v
}

// MapRange splits in at rule boundaries and moves each piece. The pieces
// cover exactly in.Len values.
func (s Stage) MapRange(in Range) []Range {
	var out []Range
	cur, end := in.Start, in.End()
	for _, r := range s.Rules {
		if cur >= end || r.Src >= end {
			break
		}
		if r.Src+r.Len <= cur {
			continue
		}
		if r.Src > cur {
			out = append(out, Range{Start: cur, Len: r.Src - cur})
			cur = r.Src
		}
		hi := min(end, r.Src+r.Len)
		out = append(out, Range{Start: r.Dst + (cur - r.Src), Len: hi - cur})
		cur = hi
	}
	if cur < end {
		out = append(out, Range{Start: cur, Len: end - cur})
	}

	return out
}

// Location runs seed through every stage.
func (a *Almanac) Location(seed int64) int64 {
	for _, s := range a.Stages {
		seed = s.Map(seed)
	}
	return seed
}

// lowestFrom maps one seed range through every stage and returns the
// smallest resulting start.
func (a *Almanac) lowestFrom(r Range) int64 {
	ranges := []Range{r}
	for _, s := range a.Stages {
		next := make([]Range, 0, len(ranges))
		for _, in := range ranges {
			next = append(next, s.MapRange(in)...)
		}
		ranges = next
	}
	low := int64(math.MaxInt64)
	for _, out := range ranges {
		low = min(low, out.Start)
	}

	return low
}

// Lowest returns the smallest location reachable from any value in seeds,
// spreading the ranges over workers goroutines. Empty ranges are ignored;
// with no values at all it returns ErrMalformedAlmanac.
func (a *Almanac) Lowest(ctx context.Context, seeds []Range, workers int) (int64, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(seeds) {
		workers = max(len(seeds), 1)
	}
	lows := make([]int64, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			low := int64(math.MaxInt64)
			for i := w; i < len(seeds); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				if seeds[i].Len > 0 {
					low = min(low, a.lowestFrom(seeds[i]))
				}
			}
			lows[w] = low
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	low := int64(math.MaxInt64)
	for _, l := range lows {
		low = min(low, l)
	}
	if low == math.MaxInt64 {
		return 0, fmt.Errorf("%w: no seeds to map", ErrMalformedAlmanac)
	}

	return low, nil
}

// SeedValues returns every seed as a one-value range.
func (a *Almanac) SeedValues() []Range {
	out := make([]Range, len(a.Seeds))
	for i, s := range a.Seeds {
		out[i] = Range{Start: s, Len: 1}
	}
	return out
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeedCount, len(a.Seeds))
	}
	out := make([]Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] < 0 {
			return nil, fmt.Errorf("%w: negative range length %d", ErrMalformedAlmanac, a.Seeds[i+1])
		}
		out = append(out, Range{Start: a.Seeds[i], Len: a.Seeds[i+1]})
	}
	return out, nil
}

// Solve returns the lowest location for single seeds (part 1) and for
// seed ranges (part 2).
func Solve(ctx context.Context, lines []string, opts ...Option) (puzzle.Answer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	a, err := Parse(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ctxlog.FromContext(ctx).Debug("almanac parsed",
		"puzzle", "almanac",
		"seeds", len(a.Seeds),
		"stages", len(a.Stages),
		"workers", o.Workers)

	var ans puzzle.Answer
	if ans.Part1, err = a.Lowest(ctx, a.SeedValues(), o.Workers); err != nil {
		return puzzle.Answer{}, err
	}
	ranges, err := a.SeedRanges()
	if err != nil {
		return puzzle.Answer{}, err
	}
	if ans.Part2, err = a.Lowest(ctx, ranges, o.Workers); err != nil {
		return puzzle.Answer{}, err
	}

	return ans, nil
}

// Solver adapts Solve to puzzle.Solver.
func Solver(opts ...Option) puzzle.Solver {
	return func(ctx context.Context, lines []string) (puzzle.Answer, error) {
		return Solve(ctx, lines, opts...)
	}
}
