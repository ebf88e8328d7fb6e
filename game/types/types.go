package types

// Point represents a single grid cell (integer coordinates)
type Point struct {
	X, Y int
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Default grid size
const (
	DefaultGridWidth  = 40
	DefaultGridHeight = 30
)

// Direction vectors for the four headings
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Directions is the fixed evaluation order (up, down, left, right).
// The AI tie-break depends on this order, so it must not change.
var Directions = [4]Point{Up, Down, Left, Right}

// InBounds checks if a point is inside the grid
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// NextPosition returns the cell reached by moving one step in the given
// direction. No bounds checking here.
func NextPosition(p, dir Point) Point {
	return Point{X: p.X + dir.X, Y: p.Y + dir.Y}
}

// ManhattanDistance calcola la distanza Manhattan tra due punti.
func ManhattanDistance(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// IsOpposite reports whether two direction vectors are exact reversals.
func IsOpposite(a, b Point) bool {
	return (a.X != 0 || a.Y != 0) && a.X == -b.X && a.Y == -b.Y
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
