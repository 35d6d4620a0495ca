package cosmic

import (
	"runtime"

	"golang.org/x/exp/constraints"
)

// Point is a position on the (expanded) image; X is the column, Y the row.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// MDist returns the Manhattan distance between a and b.
func (a Point[T]) MDist(b Point[T]) T {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Galaxy is a galaxy position after expansion.
type Galaxy = Point[int64]

const (
	space  = '.'
	galaxy = '#'

	// Part1Expansion doubles every empty row and column.
	Part1Expansion = 2
	// Part2Expansion replaces every empty row and column with a million.
	Part2Expansion = 1_000_000
)

// Options configures Solve.
type Options struct {
	// Expansion is the part 2 growth factor; part 1 always uses 2.
	Expansion int64
	// Workers bounds the goroutines used by SumDistances. Values < 1 mean GOMAXPROCS.
	Workers int
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// DefaultOptions returns a million-fold part 2 expansion and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Expansion: Part2Expansion,
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// WithExpansion sets the part 2 growth factor.
func WithExpansion(n int64) Option {
	return func(o *Options) {
		o.Expansion = n
	}
}

// WithWorkers sets the number of summing goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}
