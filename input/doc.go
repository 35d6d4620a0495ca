// Package input loads puzzle inputs as ordered text lines.
//
// What:
//
//   - ReadLines opens a path and returns its lines without terminators.
//   - Paths ending in ".zst" are decompressed transparently with zstd.
//   - Lines splits an already-open io.Reader the same way.
//
// Errors:
//
//   - ErrIO wraps every failure to open, decompress or read the input.
package input
