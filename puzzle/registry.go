package puzzle

import (
	"fmt"
	"sort"
)

// Registry maps day numbers to puzzles. The zero value is not usable;
// call NewRegistry.
type Registry struct {
	byDay map[int]Puzzle
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byDay: make(map[int]Puzzle)}
}

// Register adds p. Returns ErrInvalidDay for days outside 1..25 and
// ErrDuplicateDay when the day is taken.
func (r *Registry) Register(p Puzzle) error {
	if p.Day < 1 || p.Day > 25 {
		return fmt.Errorf("%w: %d", ErrInvalidDay, p.Day)
	}
	if _, ok := r.byDay[p.Day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, p.Day)
	}
	r.byDay[p.Day] = p

	return nil
}

// MustRegister is Register for static tables; it panics on error.
func (r *Registry) MustRegister(ps ...Puzzle) *Registry {
	for _, p := range ps {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}

	return r
}

// Lookup returns the puzzle registered for day.
func (r *Registry) Lookup(day int) (Puzzle, error) {
	p, ok := r.byDay[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return p, nil
}

// All returns every registered puzzle ordered by day.
func (r *Registry) All() []Puzzle {
	out := make([]Puzzle, 0, len(r.byDay))
	for _, p := range r.byDay {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })

	return out
}
