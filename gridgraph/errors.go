package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or an empty first row.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)
