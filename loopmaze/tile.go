package loopmaze

// Shape is the glyph of a tile.
type Shape byte

// Tile glyphs. Bends are named by the two sides they open.
const (
	Vertical   Shape = '|'
	Horizontal Shape = '-'
	BendNE     Shape = 'L'
	BendNW     Shape = 'J'
	BendSW     Shape = '7'
	BendSE     Shape = 'F'
	Ground     Shape = '.'
	Start      Shape = 'S'
)

// dirSet is a bit set of Directions.
type dirSet uint8

func setOf(ds ...Direction) dirSet {
	var s dirSet
	for _, d := range ds {
		s |= 1 << d
	}
	return s
}

func (s dirSet) has(d Direction) bool {
	return s&(1<<d) != 0
}

// openings lists, per shape, the sides a pipe connects through.
// Start accepts every side until its real shape is resolved.
var openings = map[Shape]dirSet{
	Vertical:   setOf(North, South),
	Horizontal: setOf(East, West),
	BendNE:     setOf(North, East),
	BendNW:     setOf(North, West),
	BendSW:     setOf(South, West),
	BendSE:     setOf(South, East),
	Ground:     0,
	Start:      setOf(North, East, South, West),
}

// glyphs renders loop pipes with box-drawing characters.
var glyphs = map[Shape]rune{
	Vertical:   '║',
	Horizontal: '═',
	BendNE:     '╚',
	BendNW:     '╝',
	BendSW:     '╗',
	BendSE:     '╔',
}

// Valid reports whether s is one of the eight known glyphs.
func (s Shape) Valid() bool {
	_, ok := openings[s]
	return ok
}

// Opens reports whether the shape has an opening on side d.
func (s Shape) Opens(d Direction) bool {
	return openings[s].has(d)
}

// shapeFor returns the pipe shape with exactly the given openings.
func shapeFor(set dirSet) (Shape, bool) {
	for _, s := range []Shape{Vertical, Horizontal, BendNE, BendNW, BendSW, BendSE} {
		if openings[s] == set {
			return s, true
		}
	}
	return Ground, false
}

type turn struct {
	shape   Shape
	arrived Direction
}

// bendExits maps a bend and the heading used to enter it to the heading
// used to leave it. Every bend has exactly two valid entries.
var bendExits = map[turn]Direction{
	{BendNE, South}: East,
	{BendNE, West}:  North,
	{BendNW, South}: West,
	{BendNW, East}:  North,
	{BendSW, North}: West,
	{BendSW, East}:  South,
	{BendSE, North}: East,
	{BendSE, West}:  South,
}

// exit returns the heading that leaves shape s when it was entered heading
// arrived. Straight pipes keep the heading; ground and start stop.
func exit(s Shape, arrived Direction) (Direction, bool) {
	switch s {
	case Vertical:
		return arrived, arrived == North || arrived == South
	case Horizontal:
		return arrived, arrived == East || arrived == West
	}
	d, ok := bendExits[turn{s, arrived}]
	return d, ok
}
