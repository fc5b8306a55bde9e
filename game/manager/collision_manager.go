package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies what the snake would hit by entering pos.
// Walls are checked first. Every current segment counts, the tail included,
// because the tail has not moved yet when the head arrives.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if snake.Occupies(pos) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks if a position is a legal food cell
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	return !cm.isWallCollision(pos) && !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
