package manager

import (
	"fmt"
)

// RoundPhase is the round lifecycle state
type RoundPhase int

const (
	RoundRunning RoundPhase = iota
	RoundOver
)

// StateManager owns the round state machine and the match score counters.
// A round goes RoundRunning -> RoundOver exactly once; the match is
// concluded when either counter reaches roundsToWin.
type StateManager struct {
	phase       RoundPhase
	outcome     string
	scores      [2]int
	roundsToWin int
	matchOver   bool
}

func NewStateManager(roundsToWin int) *StateManager {
	if roundsToWin < 1 {
		roundsToWin = 1
	}
	return &StateManager{
		phase:       RoundRunning,
		roundsToWin: roundsToWin,
	}
}

// ResolveRound ends the round from the post-move death flags of both
// cycles. Both dead is a draw and scores nobody. Calls after the round is
// already over are ignored, so the transition fires exactly once.
func (sm *StateManager) ResolveRound(p1Dead, p2Dead bool, p1Name, p2Name string) {
	if sm.phase == RoundOver {
		return
	}
	if !p1Dead && !p2Dead {
		return
	}

	sm.phase = RoundOver

	switch {
	case p1Dead && p2Dead:
		sm.outcome = "Draw!"
	case p2Dead:
		sm.outcome = fmt.Sprintf("%s Wins!", p1Name)
		sm.scores[0]++
	default:
		sm.outcome = fmt.Sprintf("%s Wins!", p2Name)
		sm.scores[1]++
	}

	if sm.scores[0] >= sm.roundsToWin || sm.scores[1] >= sm.roundsToWin {
		sm.matchOver = true
	}
}

// Restart brings the state machine back to a running round. Restarting a
// concluded match also zeroes both counters.
func (sm *StateManager) Restart() {
	if sm.matchOver {
		sm.scores = [2]int{}
		sm.matchOver = false
	}
	sm.phase = RoundRunning
	sm.outcome = ""
}

// ResetScores zeroes the counters unconditionally (explicit match reset).
func (sm *StateManager) ResetScores() {
	sm.scores = [2]int{}
	sm.matchOver = false
}

func (sm *StateManager) RoundOver() bool {
	return sm.phase == RoundOver
}

func (sm *StateManager) MatchOver() bool {
	return sm.matchOver
}

// Outcome returns the round result text ("Draw!", "Player 1 Wins!", ...).
// Empty while the round is running.
func (sm *StateManager) Outcome() string {
	return sm.outcome
}

func (sm *StateManager) Scores() (int, int) {
	return sm.scores[0], sm.scores[1]
}

func (sm *StateManager) RoundsToWin() int {
	return sm.roundsToWin
}
