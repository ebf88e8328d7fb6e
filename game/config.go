package game

import (
	"tron-game/game/types"
)

// Mode selects who drives the second cycle
type Mode int

const (
	SinglePlayer Mode = iota // player 1 vs AI
	TwoPlayer
)

func (m Mode) String() string {
	if m == TwoPlayer {
		return "2P"
	}
	return "vs AI"
}

// Difficulty presets (tweakable)
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Hard:
		return "Hard"
	default:
		return "Normal"
	}
}

// DifficultySettings maps a difficulty to the tick rate and the AI
// hunting probability.
type DifficultySettings struct {
	TickRate   int     // simulation steps per second
	Aggression float64 // probability the AI hunts on a given decision
}

var difficultyTable = map[Difficulty]DifficultySettings{
	Easy:   {TickRate: 8, Aggression: 0.20},
	Normal: {TickRate: 12, Aggression: 0.45},
	Hard:   {TickRate: 16, Aggression: 0.70},
}

func (d Difficulty) Settings() DifficultySettings {
	if s, ok := difficultyTable[d]; ok {
		return s
	}
	return difficultyTable[Normal]
}

// Config is passed into NewGame by the menu layer. No module-level mutable
// state: everything the round controller needs travels through here.
type Config struct {
	Grid       types.Grid
	Mode       Mode
	BestOf     int // 1 for a single round, 5 for best-of-5
	Difficulty Difficulty
	Seed       uint64 // 0 means time-seeded AI
}

func DefaultConfig() Config {
	return Config{
		Grid: types.Grid{
			Width:  types.DefaultGridWidth,
			Height: types.DefaultGridHeight,
		},
		Mode:       SinglePlayer,
		BestOf:     1,
		Difficulty: Normal,
	}
}

// RoundsToWin converts the best-of setting into a win threshold
// (best-of-5 -> first to 3).
func (c Config) RoundsToWin() int {
	if c.BestOf <= 1 {
		return 1
	}
	return c.BestOf/2 + 1
}
