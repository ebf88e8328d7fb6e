package ai

import (
	"time"

	"golang.org/x/exp/rand"

	"tron-game/game/entity"
	"tron-game/game/manager"
	"tron-game/game/types"
)

// Scoring weights for the one-ply lookahead
const (
	spaceWeight   = 10 // per escape route from the candidate cell
	huntBase      = 50 // offset for the closing-distance bonus
	straightBonus = 2  // smoothness preference, avoids needless zig-zag
	jitterRange   = 2  // uniform noise in [-jitterRange, jitterRange]
)

// Pilot drives a cycle with a safety filter plus a scored lookahead.
// Aggression is the per-decision probability of hunting the opponent
// instead of just surviving.
type Pilot struct {
	Aggression float64

	collisionMgr *manager.CollisionManager
	rng          *rand.Rand
}

// NewPilot creates a pilot. Pass a nil source for time-seeded play; tests
// inject a fixed seed for reproducible decisions.
func NewPilot(aggression float64, collisionMgr *manager.CollisionManager, src rand.Source) *Pilot {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return &Pilot{
		Aggression:   aggression,
		collisionMgr: collisionMgr,
		rng:          rand.New(src),
	}
}

// ChooseDirection picks the next heading for self given the current
// occupancy set. With no safe heading left the current one is returned
// unchanged: the cycle keeps going and the collision manager reports the
// death next tick.
func (p *Pilot) ChooseDirection(self, opponent *entity.Cycle, occupied map[types.Point]bool) types.Point {
	candidates := p.collisionMgr.SafeDirections(self.Head(), self.Direction, occupied)
	if len(candidates) == 0 {
		return self.Direction
	}

	hunting := p.rng.Float64() < p.Aggression
	best := self.Direction
	bestScore := -1 << 30

	for _, d := range candidates {
		next := types.NextPosition(self.Head(), d)

		// One-ply lookahead: escape routes from the resulting cell, with
		// the cell itself counted as occupied
		occ2 := make(map[types.Point]bool, len(occupied)+1)
		for cell := range occupied {
			occ2[cell] = true
		}
		occ2[next] = true
		spaceScore := len(p.collisionMgr.SafeDirections(next, d, occ2)) * spaceWeight

		distScore := 0
		if hunting {
			distScore = huntBase - types.ManhattanDistance(next, opponent.Head())
		}

		score := spaceScore + distScore
		if d == self.Direction {
			score += straightBonus
		}
		score += p.rng.Intn(2*jitterRange+1) - jitterRange

		// Strict > keeps the first-seen maximum, so ties fall back to the
		// fixed SafeDirections order
		if score > bestScore {
			bestScore = score
			best = d
		}
	}

	return best
}
