package entity

import (
	"tron-game/game/types"
)

type Color struct {
	R, G, B uint8
}

// Cycle colors matching the classic palette
var (
	BlueCycle = Color{R: 0, G: 200, B: 255}
	RedCycle  = Color{R: 255, G: 80, B: 80}
)

// Cycle is a light cycle: a head position, a heading and the permanent
// trail of every cell it has occupied this round.
type Cycle struct {
	Name      string
	Color     Color
	Direction types.Point
	Trail     []types.Point
	Alive     bool
}

func NewCycle(name string, color Color, startPos, dir types.Point) *Cycle {
	return &Cycle{
		Name:      name,
		Color:     color,
		Direction: dir,
		Trail:     []types.Point{startPos},
		Alive:     true,
	}
}

// Head returns the most recently occupied cell.
func (c *Cycle) Head() types.Point {
	return c.Trail[len(c.Trail)-1]
}

// Move advances the cycle one cell in its current direction, growing the
// trail by exactly one. Dead cycles don't move. No collision checking here;
// the collision manager runs after every cycle has moved.
func (c *Cycle) Move() {
	if !c.Alive {
		return
	}
	c.Trail = append(c.Trail, types.NextPosition(c.Head(), c.Direction))
}

// SetDirection updates the heading, taking effect on the next Move.
func (c *Cycle) SetDirection(dir types.Point) {
	// Prevent 180-degree turns
	if (dir.X != 0 && dir.X == -c.Direction.X) ||
		(dir.Y != 0 && dir.Y == -c.Direction.Y) {
		return
	}
	c.Direction = dir
}
