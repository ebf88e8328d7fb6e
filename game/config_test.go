package game

import (
	"testing"
)

func TestRoundsToWin(t *testing.T) {
	testCases := []struct {
		bestOf   int
		expected int
	}{
		{1, 1},
		{5, 3},
	}

	for _, tc := range testCases {
		cfg := DefaultConfig()
		cfg.BestOf = tc.bestOf
		if got := cfg.RoundsToWin(); got != tc.expected {
			t.Errorf("BestOf=%d: RoundsToWin() = %d, want %d", tc.bestOf, got, tc.expected)
		}
	}
}

func TestDifficultySettings(t *testing.T) {
	testCases := []struct {
		difficulty Difficulty
		tickRate   int
		aggression float64
	}{
		{Easy, 8, 0.20},
		{Normal, 12, 0.45},
		{Hard, 16, 0.70},
	}

	for _, tc := range testCases {
		s := tc.difficulty.Settings()
		if s.TickRate != tc.tickRate || s.Aggression != tc.aggression {
			t.Errorf("%v: settings = (%d, %.2f), want (%d, %.2f)",
				tc.difficulty, s.TickRate, s.Aggression, tc.tickRate, tc.aggression)
		}
	}
}

func TestDefaultConfigGrid(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Grid.Width != 40 || cfg.Grid.Height != 30 {
		t.Errorf("default grid = %dx%d, want 40x30", cfg.Grid.Width, cfg.Grid.Height)
	}
}
