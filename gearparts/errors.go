package gearparts

import "errors"

// ErrMalformedSchematic indicates an empty or ragged grid or an oversized number.
var ErrMalformedSchematic = errors.New("gearparts: malformed schematic")
