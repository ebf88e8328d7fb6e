package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const StatsDir = "data/matches"

// MatchStats registra le partite giocate in questa sessione: un record per
// round sotto l'UUID del match.
type MatchStats struct {
	UUID       string        `json:"uuid"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    time.Time     `json:"endTime"`
	Mode       string        `json:"mode"`
	Difficulty string        `json:"difficulty"`
	BestOf     int           `json:"bestOf"`
	Rounds     []RoundRecord `json:"rounds"`
	mutex      sync.RWMutex
}

// RoundRecord rappresenta i dati di un singolo round.
type RoundRecord struct {
	Outcome   string    `json:"outcome"`
	Ticks     int       `json:"ticks"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func NewMatchStats(cfg Config) *MatchStats {
	return &MatchStats{
		UUID:       uuid.New().String(),
		StartTime:  time.Now(),
		Mode:       cfg.Mode.String(),
		Difficulty: cfg.Difficulty.String(),
		BestOf:     cfg.BestOf,
		Rounds:     make([]RoundRecord, 0),
	}
}

// AddRound aggiunge il risultato di un round alle statistiche.
func (s *MatchStats) AddRound(outcome string, ticks int, startTime, endTime time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.Rounds = append(s.Rounds, RoundRecord{
		Outcome:   outcome,
		Ticks:     ticks,
		StartTime: startTime,
		EndTime:   endTime,
	})
}

// RoundsPlayed restituisce il numero di round registrati.
func (s *MatchStats) RoundsPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.Rounds)
}

// SaveToFile salva le statistiche su file in formato JSON.
func (s *MatchStats) SaveToFile(dir string) error {
	s.mutex.Lock()
	s.EndTime = time.Now()
	s.mutex.Unlock()

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create stats directory: %v", err)
	}

	jsonData, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %v", err)
	}

	filename := filepath.Join(dir, s.UUID+".json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %v", err)
	}

	return nil
}
