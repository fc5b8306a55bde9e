package manager

import (
	"sort"
	"sync"
	"time"
)

// GameRecord holds the outcome of one finished game
type GameRecord struct {
	GameID    string    `json:"gameId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Steps     int       `json:"steps"`
	Cause     string    `json:"cause"`
}

// Duration returns how long the game lasted
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsManager keeps the records of the current session in memory.
// Nothing survives the process.
type StatsManager struct {
	mutex     sync.RWMutex
	games     []GameRecord
	recorded  map[string]struct{}
	highScore int
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		games:    make([]GameRecord, 0),
		recorded: make(map[string]struct{}),
	}
}

// AddGame appends a finished game. A game ID is only recorded once.
func (sm *StatsManager) AddGame(rec GameRecord) bool {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	if _, dup := sm.recorded[rec.GameID]; dup {
		return false
	}
	sm.recorded[rec.GameID] = struct{}{}
	sm.games = append(sm.games, rec)

	if rec.Score > sm.highScore {
		sm.highScore = rec.Score
	}
	return true
}

// GetStats returns a copy of the recorded games, oldest first
func (sm *StatsManager) GetStats() []GameRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	out := make([]GameRecord, len(sm.games))
	copy(out, sm.games)
	return out
}

func (sm *StatsManager) GetHighScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.highScore
}

func (sm *StatsManager) GetGamesPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return len(sm.games)
}

// GetAverageScore returns the mean score, 0 with no games
func (sm *StatsManager) GetAverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.games) == 0 {
		return 0
	}

	total := 0
	for _, g := range sm.games {
		total += g.Score
	}
	return float64(total) / float64(len(sm.games))
}

// GetMedianScore returns the median score, 0 with no games
func (sm *StatsManager) GetMedianScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.games) == 0 {
		return 0
	}

	scores := make([]int, len(sm.games))
	for i, g := range sm.games {
		scores[i] = g.Score
	}
	sort.Ints(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// GetAverageDuration returns the mean game length
func (sm *StatsManager) GetAverageDuration() time.Duration {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.games) == 0 {
		return 0
	}

	var total time.Duration
	for _, g := range sm.games {
		total += g.Duration()
	}
	return total / time.Duration(len(sm.games))
}
