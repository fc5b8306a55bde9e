package game

import (
	"time"

	"classic-snake/game/manager"
	"classic-snake/game/types"
)

// Snapshot is a read-only copy of a Game, taken under its lock
type Snapshot struct {
	GameID    string
	Grid      types.Grid
	Snake     []types.Point // head first
	Direction types.Direction
	Food      types.Point
	HasFood   bool // false only when the snake covers the board
	Score     int
	Steps     int
	GameOver  bool
	Paused    bool
	Cause     manager.CollisionType
	StartTime time.Time
	EndTime   time.Time
}

func (s Snapshot) State() State {
	return stateOf(s.GameOver, s.Paused)
}

func (s Snapshot) Head() types.Point {
	return s.Snake[0]
}

// Record converts a finished game into a stats entry
func (s Snapshot) Record() manager.GameRecord {
	return manager.GameRecord{
		GameID:    s.GameID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Score:     s.Score,
		Steps:     s.Steps,
		Cause:     s.Cause.String(),
	}
}
