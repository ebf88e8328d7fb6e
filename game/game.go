package game

import (
	"time"

	"golang.org/x/exp/rand"

	"tron-game/ai"
	"tron-game/game/entity"
	"tron-game/game/manager"
	"tron-game/game/types"
)

// RoundState is the read-only snapshot handed to the presentation layer
// after every tick.
type RoundState struct {
	RoundOver bool
	MatchOver bool
	Outcome   string
	ScoreP1   int
	ScoreP2   int
}

// Game owns one match: two cycles, the collision manager, the round/match
// state machine and (in single player) the AI pilot. The whole simulation
// is synchronous and tick-driven; nothing here runs concurrently.
type Game struct {
	cfg          Config
	grid         types.Grid
	player1      *entity.Cycle
	player2      *entity.Cycle
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	pilot        *ai.Pilot // nil in two-player mode
	stats        *MatchStats

	roundTicks int
	roundStart time.Time
}

func NewGame(cfg Config) *Game {
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		cfg.Grid = types.Grid{
			Width:  types.DefaultGridWidth,
			Height: types.DefaultGridHeight,
		}
	}

	g := &Game{
		cfg:          cfg,
		grid:         cfg.Grid,
		collisionMgr: manager.NewCollisionManager(cfg.Grid),
		stateMgr:     manager.NewStateManager(cfg.RoundsToWin()),
		stats:        NewMatchStats(cfg),
	}

	if cfg.Mode == SinglePlayer {
		var src rand.Source
		if cfg.Seed != 0 {
			src = rand.NewSource(cfg.Seed)
		}
		g.pilot = ai.NewPilot(cfg.Difficulty.Settings().Aggression, g.collisionMgr, src)
	}

	g.spawnCycles()
	return g
}

// spawnCycles places both cycles at their starting positions, facing each
// other across the grid.
func (g *Game) spawnCycles() {
	midY := g.grid.Height / 2
	g.player1 = entity.NewCycle("Player 1", entity.BlueCycle,
		types.Point{X: 10, Y: midY}, types.Right)

	name := "Player 2"
	if g.cfg.Mode == SinglePlayer {
		name = "AI"
	}
	g.player2 = entity.NewCycle(name, entity.RedCycle,
		types.Point{X: g.grid.Width - 10, Y: midY}, types.Left)

	g.roundTicks = 0
	g.roundStart = time.Now()
}

// Tick advances the simulation one step. Input headings are zero Points
// when no key was pressed this tick; in single player p2Input is ignored
// and the pilot steers instead. Sequence per tick: steer, move both, then
// resolve deaths against one post-move snapshot so the outcome never
// depends on move order. While the round is over Tick is a no-op until
// ResetRound.
func (g *Game) Tick(p1Input, p2Input types.Point) RoundState {
	if g.stateMgr.RoundOver() {
		return g.State()
	}

	if p1Input != (types.Point{}) {
		g.player1.SetDirection(p1Input)
	}

	if g.pilot != nil {
		occupied := g.collisionMgr.BuildOccupied(g.cycles())
		g.player2.SetDirection(g.pilot.ChooseDirection(g.player2, g.player1, occupied))
	} else if p2Input != (types.Point{}) {
		g.player2.SetDirection(p2Input)
	}

	g.player1.Move()
	g.player2.Move()
	g.roundTicks++

	// Evaluate both deaths before flipping either liveness flag
	cycles := g.cycles()
	p1Dead := g.collisionMgr.IsDead(g.player1, cycles)
	p2Dead := g.collisionMgr.IsDead(g.player2, cycles)
	if p1Dead {
		g.player1.Alive = false
	}
	if p2Dead {
		g.player2.Alive = false
	}

	if p1Dead || p2Dead {
		g.stateMgr.ResolveRound(p1Dead, p2Dead, g.player1.Name, g.player2.Name)
		g.stats.AddRound(g.stateMgr.Outcome(), g.roundTicks, g.roundStart, time.Now())
	}

	return g.State()
}

// ResetRound starts a fresh round. If the match is concluded the score
// counters are zeroed as well (restart-after-match semantics).
func (g *Game) ResetRound() {
	g.stateMgr.Restart()
	g.spawnCycles()
}

// ResetMatch zeroes the counters and starts a fresh round regardless of
// match state.
func (g *Game) ResetMatch() {
	g.stateMgr.ResetScores()
	g.stateMgr.Restart()
	g.spawnCycles()
}

func (g *Game) State() RoundState {
	p1, p2 := g.stateMgr.Scores()
	return RoundState{
		RoundOver: g.stateMgr.RoundOver(),
		MatchOver: g.stateMgr.MatchOver(),
		Outcome:   g.stateMgr.Outcome(),
		ScoreP1:   p1,
		ScoreP2:   p2,
	}
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) Config() Config {
	return g.cfg
}

func (g *Game) Player1() *entity.Cycle {
	return g.player1
}

func (g *Game) Player2() *entity.Cycle {
	return g.player2
}

func (g *Game) Stats() *MatchStats {
	return g.stats
}

func (g *Game) cycles() []*entity.Cycle {
	return []*entity.Cycle{g.player1, g.player2}
}
