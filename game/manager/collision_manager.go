package manager

import (
	"tron-game/game/entity"
	"tron-game/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// BuildOccupied returns the set of every cell covered by any cycle's trail,
// heads included. Rebuilt from scratch each tick.
func (cm *CollisionManager) BuildOccupied(cycles []*entity.Cycle) map[types.Point]bool {
	occupied := make(map[types.Point]bool)
	for _, c := range cycles {
		if c == nil {
			continue
		}
		for _, p := range c.Trail {
			occupied[p] = true
		}
	}
	return occupied
}

// SafeDirections returns the headings from head that stay in bounds and off
// occupied cells. The reversal of currentDir is never a candidate. Iteration
// order is fixed (up, down, left, right); callers rely on it for tie-breaks.
func (cm *CollisionManager) SafeDirections(head, currentDir types.Point, occupied map[types.Point]bool) []types.Point {
	candidates := make([]types.Point, 0, 3)
	for _, d := range types.Directions {
		if types.IsOpposite(d, currentDir) {
			continue
		}
		next := types.NextPosition(head, d)
		if cm.grid.InBounds(next) && !occupied[next] {
			candidates = append(candidates, d)
		}
	}
	return candidates
}

// IsDead checks a cycle's post-move head against the walls and every trail.
// A cycle's own fresh head is not a hazard to itself, but an opponent head
// on the same cell is, so a head-on crash kills both cycles in the same
// tick. Call only after every cycle has moved so the outcome doesn't depend
// on move order.
func (cm *CollisionManager) IsDead(current *entity.Cycle, cycles []*entity.Cycle) bool {
	head := current.Head()
	if !cm.grid.InBounds(head) {
		return true
	}

	for _, c := range cycles {
		if c == nil {
			continue
		}
		trail := c.Trail
		if c == current {
			// Skip the cell the head itself occupies
			trail = trail[:len(trail)-1]
		}
		for _, p := range trail {
			if head == p {
				return true
			}
		}
	}

	return false
}
