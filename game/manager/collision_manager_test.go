package manager

import (
	"testing"

	"tron-game/game/entity"
	"tron-game/game/types"
)

func testGrid() types.Grid {
	return types.Grid{Width: 40, Height: 30}
}

func TestBuildOccupied(t *testing.T) {
	cm := NewCollisionManager(testGrid())

	c1 := entity.NewCycle("Player 1", entity.BlueCycle, types.Point{X: 10, Y: 15}, types.Right)
	c1.Move()
	c1.Move()
	c2 := entity.NewCycle("Player 2", entity.RedCycle, types.Point{X: 30, Y: 15}, types.Left)
	c2.Move()

	occupied := cm.BuildOccupied([]*entity.Cycle{c1, c2})

	wantCells := []types.Point{
		{X: 10, Y: 15}, {X: 11, Y: 15}, {X: 12, Y: 15},
		{X: 30, Y: 15}, {X: 29, Y: 15},
	}
	if len(occupied) != len(wantCells) {
		t.Fatalf("occupied size = %d, want %d", len(occupied), len(wantCells))
	}
	for _, p := range wantCells {
		if !occupied[p] {
			t.Errorf("cell %v missing from occupancy set", p)
		}
	}
}

func TestSafeDirectionsNeverReturnsReversal(t *testing.T) {
	cm := NewCollisionManager(testGrid())
	head := types.Point{X: 20, Y: 15}

	for _, current := range types.Directions {
		candidates := cm.SafeDirections(head, current, map[types.Point]bool{})
		for _, d := range candidates {
			if types.IsOpposite(d, current) {
				t.Errorf("heading %v: reversal %v returned as safe", current, d)
			}
		}
		if len(candidates) != 3 {
			t.Errorf("heading %v: %d candidates on open grid, want 3", current, len(candidates))
		}
	}
}

func TestSafeDirectionsOwnHeadOnly(t *testing.T) {
	// 40x30 grid, head at (10,15) heading right, only the head occupied:
	// up, down and right are safe, left is excluded as the reversal.
	cm := NewCollisionManager(testGrid())
	head := types.Point{X: 10, Y: 15}
	occupied := map[types.Point]bool{head: true}

	candidates := cm.SafeDirections(head, types.Right, occupied)

	want := []types.Point{types.Up, types.Down, types.Right}
	if len(candidates) != len(want) {
		t.Fatalf("candidates = %v, want %v", candidates, want)
	}
	for i, d := range want {
		if candidates[i] != d {
			t.Errorf("candidates[%d] = %v, want %v (order is part of the contract)", i, candidates[i], d)
		}
	}
}

func TestSafeDirectionsWallsAndTrails(t *testing.T) {
	cm := NewCollisionManager(testGrid())

	testCases := []struct {
		name     string
		head     types.Point
		current  types.Point
		occupied []types.Point
		want     []types.Point
	}{
		{
			name:    "top-left corner heading up",
			head:    types.Point{X: 0, Y: 0},
			current: types.Up,
			want:    []types.Point{types.Right},
		},
		{
			name:     "corridor keeps only straight",
			head:     types.Point{X: 20, Y: 15},
			current:  types.Right,
			occupied: []types.Point{{X: 20, Y: 14}, {X: 20, Y: 16}},
			want:     []types.Point{types.Right},
		},
		{
			name:     "fully boxed in",
			head:     types.Point{X: 20, Y: 15},
			current:  types.Right,
			occupied: []types.Point{{X: 20, Y: 14}, {X: 20, Y: 16}, {X: 21, Y: 15}},
			want:     []types.Point{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			occupied := make(map[types.Point]bool)
			for _, p := range tc.occupied {
				occupied[p] = true
			}

			got := cm.SafeDirections(tc.head, tc.current, occupied)
			if len(got) != len(tc.want) {
				t.Fatalf("candidates = %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("candidates[%d] = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestIsDeadWall(t *testing.T) {
	cm := NewCollisionManager(testGrid())

	c := entity.NewCycle("Player 1", entity.BlueCycle, types.Point{X: 39, Y: 15}, types.Right)
	c.Move() // head now at (40,15), outside

	if !cm.IsDead(c, []*entity.Cycle{c}) {
		t.Error("cycle through the wall should be dead")
	}
}

func TestIsDeadCleanPositionIsAlive(t *testing.T) {
	cm := NewCollisionManager(testGrid())

	c1 := entity.NewCycle("Player 1", entity.BlueCycle, types.Point{X: 10, Y: 15}, types.Right)
	c2 := entity.NewCycle("Player 2", entity.RedCycle, types.Point{X: 30, Y: 15}, types.Left)
	c1.Move()
	c2.Move()

	cycles := []*entity.Cycle{c1, c2}
	if cm.IsDead(c1, cycles) {
		t.Error("cycle on a clean cell reported dead")
	}
	if cm.IsDead(c2, cycles) {
		t.Error("cycle on a clean cell reported dead")
	}
}

func TestIsDeadSelfTrail(t *testing.T) {
	cm := NewCollisionManager(testGrid())

	// Tight clockwise loop back onto the starting cell
	c := entity.NewCycle("Player 1", entity.BlueCycle, types.Point{X: 10, Y: 15}, types.Right)
	for _, dir := range []types.Point{types.Right, types.Down, types.Left, types.Up} {
		c.SetDirection(dir)
		c.Move()
	}

	if c.Head() != (types.Point{X: 10, Y: 15}) {
		t.Fatalf("loop head = %v, want back at start", c.Head())
	}
	if !cm.IsDead(c, []*entity.Cycle{c}) {
		t.Error("cycle crossing its own trail should be dead")
	}
}

func TestIsDeadOpponentTrail(t *testing.T) {
	cm := NewCollisionManager(testGrid())

	c1 := entity.NewCycle("Player 1", entity.BlueCycle, types.Point{X: 10, Y: 15}, types.Right)
	c2 := entity.NewCycle("Player 2", entity.RedCycle, types.Point{X: 12, Y: 14}, types.Down)
	c1.Move() // (11,15)
	c2.Move() // (12,15)
	c1.Move() // (12,15): runs into c2's fresh head
	c2.Move() // (12,16)

	cycles := []*entity.Cycle{c1, c2}
	if !cm.IsDead(c1, cycles) {
		t.Error("cycle on the opponent's trail should be dead")
	}
	if cm.IsDead(c2, cycles) {
		t.Error("opponent on a clean cell reported dead")
	}
}

func TestIsDeadHeadOnSameCell(t *testing.T) {
	cm := NewCollisionManager(testGrid())

	// Both land on (21,15) in the same tick: a draw, both dead
	c1 := entity.NewCycle("Player 1", entity.BlueCycle, types.Point{X: 20, Y: 15}, types.Right)
	c2 := entity.NewCycle("Player 2", entity.RedCycle, types.Point{X: 22, Y: 15}, types.Left)
	c1.Move()
	c2.Move()

	cycles := []*entity.Cycle{c1, c2}
	if !cm.IsDead(c1, cycles) || !cm.IsDead(c2, cycles) {
		t.Error("same-cell head-on collision must kill both cycles")
	}
}

func TestIsDeadOrderIndependent(t *testing.T) {
	// The death verdict must not depend on the order cycles appear in
	build := func() (*entity.Cycle, *entity.Cycle) {
		c1 := entity.NewCycle("Player 1", entity.BlueCycle, types.Point{X: 20, Y: 15}, types.Right)
		c2 := entity.NewCycle("Player 2", entity.RedCycle, types.Point{X: 22, Y: 15}, types.Left)
		c1.Move()
		c2.Move()
		return c1, c2
	}

	cm := NewCollisionManager(testGrid())

	c1, c2 := build()
	forward := []bool{cm.IsDead(c1, []*entity.Cycle{c1, c2}), cm.IsDead(c2, []*entity.Cycle{c1, c2})}

	c1, c2 = build()
	reversed := []bool{cm.IsDead(c1, []*entity.Cycle{c2, c1}), cm.IsDead(c2, []*entity.Cycle{c2, c1})}

	if forward[0] != reversed[0] || forward[1] != reversed[1] {
		t.Errorf("verdicts depend on cycle order: %v vs %v", forward, reversed)
	}
}
