package boatrace

import "errors"

// ErrMalformedRaces indicates the input is not a "Time:" line followed by a
// "Distance:" line with the same number of integers.
var ErrMalformedRaces = errors.New("boatrace: malformed race sheet")
