package almanac

import "errors"

var (
	// ErrMalformedAlmanac indicates input that does not follow the almanac layout.
	ErrMalformedAlmanac = errors.New("almanac: malformed almanac")
	// ErrOddSeedCount indicates seed ranges were requested from an odd number of seeds.
	ErrOddSeedCount = errors.New("almanac: seed ranges need an even number of seeds")
)
