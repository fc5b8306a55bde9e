package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

// maxRandomAttempts bounds the blind retries before falling back to a free-cell scan
const maxRandomAttempts = 64

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

// NewFoodManager creates a food manager drawing from a PRNG seeded with seed.
// Equal seeds yield equal food sequences for equal snakes.
func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a uniformly random cell not covered by the snake.
// ok is false when the snake fills the whole board.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	if snake.Len() >= fm.grid.Cells() {
		return types.Point{}, false
	}

	for i := 0; i < maxRandomAttempts; i++ {
		food = types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	// Crowded board: choose among the remaining free cells directly
	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, part := range snake.Body {
		occupied[part] = struct{}{}
	}

	free := make([]types.Point, 0, fm.grid.Cells()-len(occupied))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free
}
