package almanac

import "runtime"

// Range is the half-open interval [Start, Start+Len).
type Range struct {
	Start, Len int64
}

// End returns the first value past r.
func (r Range) End() int64 { return r.Start + r.Len }

// Rule moves [Src, Src+Len) to [Dst, Dst+Len).
type Rule struct {
	Dst, Src, Len int64
}

// Stage is one "<From>-to-<To> map:" block. Rules are sorted by Src and
// never overlap.
type Stage struct {
	From, To string
	Rules    []Rule
}

// Almanac is a parsed seed list and its stages in chain order.
type Almanac struct {
	Seeds  []int64
	Stages []Stage
}

// Options configures Solve.
type Options struct {
	// Workers bounds the goroutines used by Lowest. Values < 1 mean GOMAXPROCS.
	Workers int
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// DefaultOptions returns GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets the number of goroutines mapping seed ranges.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}
