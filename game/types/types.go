package types

import "time"

// Game constants
const (
	GridSize     = 20                     // Cells per side of the square board
	TickInterval = 150 * time.Millisecond // Time between two simulation steps
)

// Origin is where every new snake starts
var Origin = Point{X: 10, Y: 10}

// Point is a cell on the board
type Point struct {
	X, Y int
}

// Add returns p shifted by the vector q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid returns the fixed GridSize x GridSize board
func DefaultGrid() Grid {
	return Grid{Width: GridSize, Height: GridSize}
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Direction is one of the four cardinal headings
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// ToPoint converts a Direction into a unit movement vector.
// Y grows downwards, matching screen coordinates.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// IsOpposite reports whether other points exactly back along d
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	default:
		return "NONE"
	}
}
