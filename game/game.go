package game

import (
	"sync"
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/google/uuid"
)

// State is the coarse phase of a game
type State int

const (
	Running State = iota
	Paused
	Over
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Over:
		return "game over"
	default:
		return "running"
	}
}

// Outcome tells the driver what a single Tick did
type Outcome int

const (
	Idle    Outcome = iota // Paused or over, nothing changed
	Moved                  // Snake advanced one cell
	Ate                    // Snake advanced onto the food and grew
	Crashed                // Next cell was a wall or the body; game is over
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Crashed:
		return "crashed"
	default:
		return "idle"
	}
}

// Game owns every piece of mutable game data. All methods are safe for
// concurrent use, but the intended shape is one mutator (the scheduler)
// plus any number of snapshot readers.
type Game struct {
	mu sync.RWMutex

	Grid    types.Grid
	snake   *entity.Snake
	pending types.Direction // applied at the next tick
	food    types.Point
	hasFood bool

	score    int
	steps    int
	gameOver bool
	paused   bool
	cause    manager.CollisionType

	id        string
	startTime time.Time
	endTime   time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	now          func() time.Time
}

// Option customizes a Game at construction
type Option func(*config)

type config struct {
	grid types.Grid
	seed uint64
	now  func() time.Time
}

// WithSeed fixes the food PRNG seed
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithGrid overrides the board size. Only tests need anything but the default.
func WithGrid(grid types.Grid) Option {
	return func(c *config) { c.grid = grid }
}

// WithClock overrides the wall clock used for start/end timestamps
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// NewGame creates a game in its initial state
func NewGame(opts ...Option) *Game {
	cfg := config{
		grid: types.DefaultGrid(),
		seed: uint64(time.Now().UnixNano()),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	collisionMgr := manager.NewCollisionManager(cfg.grid)
	g := &Game{
		Grid:         cfg.grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.grid, collisionMgr, cfg.seed),
		now:          cfg.now,
	}
	g.reset()
	return g
}

// Reset discards the current game and starts a fresh one
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
}

func (g *Game) reset() {
	g.snake = entity.NewSnake(g.startPosition(), types.Right)
	g.pending = types.Right
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
	g.score = 0
	g.steps = 0
	g.gameOver = false
	g.paused = false
	g.cause = manager.NoCollision
	g.id = uuid.New().String()
	g.startTime = g.now()
	g.endTime = time.Time{}
}

func (g *Game) startPosition() types.Point {
	if g.Grid.Contains(types.Origin) {
		return types.Origin
	}
	return types.Point{X: g.Grid.Width / 2, Y: g.Grid.Height / 2}
}

// SetDirection queues a heading for the next tick. Reversing into the neck
// is ignored, as is any change after the game ended.
func (g *Game) SetDirection(d types.Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver || !d.Valid() {
		return
	}
	// Compare with the heading of the last move, not the queued one, so two
	// quick turns between ticks cannot fold the snake onto itself.
	if g.snake.Direction.IsOpposite(d) {
		return
	}
	g.pending = d
}

// TogglePause flips the pause flag while the game is live
func (g *Game) TogglePause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver {
		return
	}
	g.paused = !g.paused
}

// Tick advances the game by one step
func (g *Game) Tick() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver || g.paused {
		return Idle
	}

	newHead := g.snake.GetHead().Add(g.pending.ToPoint())

	// A crash leaves the body and heading exactly as they were
	if c := g.collisionMgr.CheckCollision(newHead, g.snake); c != manager.NoCollision {
		g.gameOver = true
		g.cause = c
		g.endTime = g.now()
		return Crashed
	}

	g.snake.Direction = g.pending
	g.snake.Move(newHead)
	g.steps++

	if g.hasFood && g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.score++
		g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
		return Ate
	}

	g.snake.RemoveTail()
	return Moved
}

// State reports the current phase
func (g *Game) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return stateOf(g.gameOver, g.paused)
}

func stateOf(gameOver, paused bool) State {
	switch {
	case gameOver:
		return Over
	case paused:
		return Paused
	default:
		return Running
	}
}

// Snapshot returns a copy of the state that is safe to keep and read
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)

	return Snapshot{
		GameID:    g.id,
		Grid:      g.Grid,
		Snake:     body,
		Direction: g.snake.Direction,
		Food:      g.food,
		HasFood:   g.hasFood,
		Score:     g.score,
		Steps:     g.steps,
		GameOver:  g.gameOver,
		Paused:    g.paused,
		Cause:     g.cause,
		StartTime: g.startTime,
		EndTime:   g.endTime,
	}
}
