// Package loop drives a game on a fixed cadence.
//
// The Scheduler is the only goroutine that mutates the game: ticks from the
// clock and commands from the front end are taken one at a time from a
// single select, so no two operations ever overlap.
package loop

import (
	"context"
	"sync"
	"time"

	"classic-snake/game"
	"classic-snake/game/input"
	"classic-snake/game/types"
	"classic-snake/logger"
)

// commandBuffer is how many key presses may queue between two ticks
const commandBuffer = 16

// Ticker is the clock the scheduler waits on
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func (tt timeTicker) C() <-chan time.Time {
	return tt.t.C
}

func (tt timeTicker) Stop() {
	tt.t.Stop()
}

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Event describes one processed tick or command
type Event struct {
	Outcome  game.Outcome  // Idle for commands
	Command  input.Command // None for ticks
	Applied  bool          // command reached the game
	Snapshot game.Snapshot // state after processing
}

// Listener observes every processed event on the scheduler goroutine
type Listener interface {
	Handle(ev Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(ev Event)

func (f ListenerFunc) Handle(ev Event) { f(ev) }

// Option customizes a Scheduler
type Option func(*Scheduler)

// WithInterval overrides the tick interval
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) { s.interval = d }
}

// WithTicker replaces the wall-clock ticker, mainly for tests
func WithTicker(newTicker func(time.Duration) Ticker) Option {
	return func(s *Scheduler) { s.newTicker = newTicker }
}

// Scheduler owns the game loop heartbeat
type Scheduler struct {
	game      *game.Game
	logger    *logger.Logger
	interval  time.Duration
	newTicker func(time.Duration) Ticker

	commands  chan input.Command
	frames    chan game.Snapshot
	listeners []Listener

	tickNumber int64
	stopChan   chan struct{}
	stopOnce   sync.Once
	done       chan struct{}
}

// NewScheduler creates a scheduler for g. Listeners must be added before Start.
func NewScheduler(g *game.Game, log *logger.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		game:      g,
		logger:    log,
		interval:  types.TickInterval,
		newTicker: newTimeTicker,
		commands:  make(chan input.Command, commandBuffer),
		frames:    make(chan game.Snapshot, 1),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddListener registers l for every event
func (s *Scheduler) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Send queues a command for the next loop iteration. It never blocks and
// reports false when the queue is full or the loop has exited.
func (s *Scheduler) Send(cmd input.Command) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.commands <- cmd:
		return true
	default:
		s.logger.Warnf("Command queue full, dropping %s", cmd)
		return false
	}
}

// Frames delivers the latest snapshot after every event. Slow readers only
// ever see the newest one.
func (s *Scheduler) Frames() <-chan game.Snapshot {
	return s.frames
}

// Done is closed once Start has returned
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Start runs the loop until ctx is cancelled or Stop is called. Call in a goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	defer close(s.done)

	s.logger.Infof("Scheduler started, tick every %v", s.interval)

	ticker := s.newTicker(s.interval)
	defer ticker.Stop()

	s.publish(s.game.Snapshot())

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler stopped by context")
			return
		case <-s.stopChan:
			s.logger.Info("Scheduler stopped manually")
			return
		case cmd := <-s.commands:
			s.handleCommand(cmd)
		case <-ticker.C():
			s.tick()
		}
	}
}

// Stop ends the loop. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

// Ticks returns how many clock ticks were processed. Only meaningful after Done.
func (s *Scheduler) Ticks() int64 {
	return s.tickNumber
}

func (s *Scheduler) tick() {
	s.tickNumber++
	out := s.game.Tick()
	s.emit(Event{Outcome: out, Snapshot: s.game.Snapshot()})
}

func (s *Scheduler) handleCommand(cmd input.Command) {
	applied := input.Apply(s.game, cmd)
	s.emit(Event{Outcome: game.Idle, Command: cmd, Applied: applied, Snapshot: s.game.Snapshot()})
}

func (s *Scheduler) emit(ev Event) {
	for _, l := range s.listeners {
		l.Handle(ev)
	}
	s.publish(ev.Snapshot)
}

// publish replaces any unread frame with snap
func (s *Scheduler) publish(snap game.Snapshot) {
	select {
	case s.frames <- snap:
		return
	default:
	}

	select {
	case <-s.frames:
	default:
	}

	select {
	case s.frames <- snap:
	default:
	}
}
