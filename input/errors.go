package input

import "errors"

// ErrIO indicates the input could not be opened or read.
var ErrIO = errors.New("input: cannot read input")
