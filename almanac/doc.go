// Package almanac maps seeds through a chain of range rules to locations.
//
// What:
//
//   - An almanac lists seeds, then stages such as "seed-to-soil map:". Each
//     stage holds rules "dst src len": a value in [src, src+len) moves to
//     dst+(v−src). Values outside every rule pass through unchanged.
//   - Part 1 treats each seed as a single value. Part 2 reads the seeds as
//     (start, length) pairs. Both report the lowest reachable location.
//
// How:
//
//	Ranges are mapped whole: each stage splits a range at rule boundaries,
//	so cost grows with the number of rules, not with range lengths. Seed
//	ranges are independent and are spread over Workers goroutines
//	(errgroup); each worker returns its own minimum.
//
// Errors:
//
//   - ErrMalformedAlmanac: missing seeds, bad integers, rules that are not
//     three integers, overlapping rules, or stages that do not chain
//     (a-to-b must be followed by b-to-c).
//   - ErrOddSeedCount: part 2 needs seeds in pairs.
package almanac
