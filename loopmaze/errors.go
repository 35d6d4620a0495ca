package loopmaze

import "errors"

// Sentinel errors for loopmaze operations.
var (
	// ErrMalformedInput indicates ragged rows, an empty grid or an unrecognized glyph.
	ErrMalformedInput = errors.New("loopmaze: malformed input")
	// ErrNoStartTile indicates the grid has no start tile.
	ErrNoStartTile = errors.New("loopmaze: no start tile")
	// ErrMultipleStartTiles indicates the grid has more than one start tile.
	ErrMultipleStartTiles = errors.New("loopmaze: more than one start tile")
	// ErrNoLoop indicates no walk from the start tile returns to it.
	ErrNoLoop = errors.New("loopmaze: no closed loop through start tile")
	// ErrNotClosed is returned by Commit for a walk that did not close.
	ErrNotClosed = errors.New("loopmaze: walk does not close")
	// ErrNotCommitted is returned by enclosure queries before Commit.
	ErrNotCommitted = errors.New("loopmaze: no loop committed")
	// ErrAlreadyCommitted is returned by a second Commit on the same Maze.
	ErrAlreadyCommitted = errors.New("loopmaze: loop already committed")
	// ErrUnknownEnclosure indicates an unsupported Enclosure method.
	ErrUnknownEnclosure = errors.New("loopmaze: unknown enclosure method")
)
