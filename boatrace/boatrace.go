package boatrace

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/puzzle"
)

// Race is one race's duration and the record distance to beat.
type Race struct {
	Time, Record int64
}

// Wins returns how many whole-millisecond holds beat the record.
func (r Race) Wins() int64 {
	beats := func(h int64) bool { return h*(r.Time-h) > r.Record }
	half := r.Time / 2
	if r.Time < 0 || !beats(half) {
		return 0
	}
	// Smallest winning hold in [0, half]; beats is monotone there.
	lo, hi := int64(0), half
	for lo < hi {
		mid := lo + (hi-lo)/2
		if beats(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return r.Time - 2*lo + 1
}

// ParseRaces reads the two-line sheet as separate races.
func ParseRaces(lines []string) ([]Race, error) {
	times, dists, err := fields(lines)
	if err != nil {
		return nil, err
	}
	races := make([]Race, len(times))
	for i := range times {
		t, err := strconv.ParseInt(times[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: time %d: %w", ErrMalformedRaces, i+1, err)
		}
		d, err := strconv.ParseInt(dists[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: distance %d: %w", ErrMalformedRaces, i+1, err)
		}
		races[i] = Race{Time: t, Record: d}
	}

	return races, nil
}

// ParseKerned reads the sheet as a single race whose numbers were split by
// stray spaces.
func ParseKerned(lines []string) (Race, error) {
	times, dists, err := fields(lines)
	if err != nil {
		return Race{}, err
	}
	t, err := strconv.ParseInt(strings.Join(times, ""), 10, 64)
	if err != nil {
		return Race{}, fmt.Errorf("%w: time: %w", ErrMalformedRaces, err)
	}
	d, err := strconv.ParseInt(strings.Join(dists, ""), 10, 64)
	if err != nil {
		return Race{}, fmt.Errorf("%w: distance: %w", ErrMalformedRaces, err)
	}

	return Race{Time: t, Record: d}, nil
}

func fields(lines []string) (times, dists []string, err error) {
	if len(lines) < 2 {
		return nil, nil, fmt.Errorf("%w: want 2 lines, got %d", ErrMalformedRaces, len(lines))
	}
	times, err = labelled(lines[0], "Time:")
	if err != nil {
		return nil, nil, err
	}
	dists, err = labelled(lines[1], "Distance:")
	if err != nil {
		return nil, nil, err
	}
	if len(times) == 0 || len(times) != len(dists) {
		return nil, nil, fmt.Errorf("%w: %d times and %d distances", ErrMalformedRaces, len(times), len(dists))
	}

	return times, dists, nil
}

func labelled(line, label string) ([]string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), label)
	if !ok {
		return nil, fmt.Errorf("%w: line does not start with %q", ErrMalformedRaces, label)
	}

	return strings.Fields(rest), nil
}

// Solve returns the product of per-race win counts and the kerned race's count.
func Solve(_ context.Context, lines []string) (puzzle.Answer, error) {
	races, err := ParseRaces(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	product := int64(1)
	for _, r := range races {
		product *= r.Wins()
	}
	kerned, err := ParseKerned(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: product, Part2: kerned.Wins()}, nil
}

// Solver adapts Solve to puzzle.Solver.
func Solver() puzzle.Solver {
	return Solve
}
