package oasis

import "errors"

// ErrMalformedHistory indicates a line that is not a non-empty list of integers.
var ErrMalformedHistory = errors.New("oasis: malformed history")
