package loopmaze

// Direction is a compass heading of movement between adjacent tiles.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// directions lists headings in candidate order.
var directions = [...]Direction{North, East, South, West}

var directionNames = [...]string{"N", "E", "S", "W"}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "?"
}

// Coord is a zero-based (row, col) position in the maze.
type Coord struct {
	Row, Col int
}

var deltas = [...]Coord{
	North: {Row: -1},
	East:  {Col: 1},
	South: {Row: 1},
	West:  {Col: -1},
}

// Step returns the coordinate one tile away in direction d.
// The result may lie outside the maze.
func (c Coord) Step(d Direction) Coord {
	delta := deltas[d]
	return Coord{Row: c.Row + delta.Row, Col: c.Col + delta.Col}
}

// Step records arrival at Coord after moving in Dir.
type Step struct {
	Coord
	Dir Direction
}

// Tile is one parsed grid cell. Visited is set only by Maze.Commit.
type Tile struct {
	Shape   Shape
	Visited bool
}

// Walk is the path followed from the start tile in one initial direction.
// Path[0] is the first tile after start; a closing walk ends on start.
type Walk struct {
	Path   []Step
	Closed bool
}

// Length returns the number of moves of a closing walk, which is the loop
// length. Non-closing walks have no length.
func (w Walk) Length() int {
	if !w.Closed {
		return 0
	}
	return len(w.Path)
}

// Farthest returns the distance along the loop to the tile farthest from start.
func (w Walk) Farthest() int {
	return w.Length() / 2
}

// Result holds both answers for a maze.
type Result struct {
	Farthest int // steps to the loop tile farthest from start
	Enclosed int // tiles strictly inside the loop
}

// Enclosure selects how enclosed tiles are counted.
type Enclosure int

const (
	// ScanLine counts with a per-row parity scan.
	ScanLine Enclosure = iota
	// FloodFill counts by flooding the outside of a 3× rendering.
	FloodFill
)

var enclosureNames = map[string]Enclosure{
	"scanline": ScanLine,
	"flood":    FloodFill,
}

// ParseEnclosure maps "scanline" or "flood" to an Enclosure.
func ParseEnclosure(s string) (Enclosure, error) {
	e, ok := enclosureNames[s]
	if !ok {
		return 0, ErrUnknownEnclosure
	}
	return e, nil
}

// Options configures Solve.
type Options struct {
	// Parallel walks the start candidates concurrently.
	Parallel bool
	// Enclosure picks the counting method.
	Enclosure Enclosure
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// DefaultOptions returns serial walks and scanline counting.
func DefaultOptions() Options {
	return Options{
		Parallel:  false,
		Enclosure: ScanLine,
	}
}

// WithParallel toggles concurrent candidate walks.
func WithParallel(on bool) Option {
	return func(o *Options) {
		o.Parallel = on
	}
}

// WithEnclosure selects the enclosure counting method.
func WithEnclosure(e Enclosure) Option {
	return func(o *Options) {
		o.Enclosure = e
	}
}
