package entity

import (
	"testing"

	"tron-game/game/types"
)

func TestMoveGrowsTrailByOne(t *testing.T) {
	c := NewCycle("Player 1", BlueCycle, types.Point{X: 10, Y: 15}, types.Right)

	for i := 1; i <= 5; i++ {
		c.Move()
		if len(c.Trail) != i+1 {
			t.Fatalf("after %d moves trail length = %d, want %d", i, len(c.Trail), i+1)
		}
	}

	want := types.Point{X: 15, Y: 15}
	if c.Head() != want {
		t.Errorf("head = %v, want %v", c.Head(), want)
	}
}

func TestMoveDeadCycleIsNoop(t *testing.T) {
	c := NewCycle("Player 1", BlueCycle, types.Point{X: 10, Y: 15}, types.Right)
	c.Move()
	c.Alive = false

	before := len(c.Trail)
	c.Move()
	c.Move()
	if len(c.Trail) != before {
		t.Errorf("dead cycle moved: trail length %d, want %d", len(c.Trail), before)
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	testCases := []struct {
		name     string
		current  types.Point
		reversal types.Point
	}{
		{"up", types.Up, types.Down},
		{"down", types.Down, types.Up},
		{"left", types.Left, types.Right},
		{"right", types.Right, types.Left},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCycle("Player 1", BlueCycle, types.Point{X: 10, Y: 15}, tc.current)
			c.SetDirection(tc.reversal)
			if c.Direction != tc.current {
				t.Errorf("direction = %v, want unchanged %v", c.Direction, tc.current)
			}
		})
	}
}

func TestSetDirectionTurns(t *testing.T) {
	c := NewCycle("Player 1", BlueCycle, types.Point{X: 10, Y: 15}, types.Right)

	c.SetDirection(types.Up)
	if c.Direction != types.Up {
		t.Fatalf("direction = %v, want %v", c.Direction, types.Up)
	}

	// Takes effect on the next move
	c.Move()
	if c.Head() != (types.Point{X: 10, Y: 14}) {
		t.Errorf("head = %v, want {10 14}", c.Head())
	}
}

func TestSetDirectionBeforeFirstMove(t *testing.T) {
	c := NewCycle("Player 1", BlueCycle, types.Point{X: 10, Y: 15}, types.Right)
	c.SetDirection(types.Down)
	c.Move()
	if c.Head() != (types.Point{X: 10, Y: 16}) {
		t.Errorf("head = %v, want {10 16}", c.Head())
	}
}
