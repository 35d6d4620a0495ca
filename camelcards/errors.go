package camelcards

import "errors"

// ErrMalformedHand indicates a line that is not five known cards and an integer bid.
var ErrMalformedHand = errors.New("camelcards: malformed hand")
