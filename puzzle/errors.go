package puzzle

import "errors"

var (
	// ErrUnknownDay is returned by Lookup when no solver is registered for a day.
	ErrUnknownDay = errors.New("puzzle: no solver registered for day")
	// ErrDuplicateDay is returned by Register when a day already has a solver.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrInvalidDay indicates a day outside 1..25.
	ErrInvalidDay = errors.New("puzzle: day must be between 1 and 25")
)
