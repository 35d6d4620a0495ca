package scratchcards

import "errors"

// ErrMalformedCard indicates a line that does not match "Card N: ... | ...".
var ErrMalformedCard = errors.New("scratchcards: malformed card")
