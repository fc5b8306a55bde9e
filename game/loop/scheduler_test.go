package loop

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"classic-snake/game"
	"classic-snake/game/input"
	"classic-snake/game/manager"
	"classic-snake/game/types"
	"classic-snake/logger"
)

// manualTicker fires only when the test sends on ch
type manualTicker struct {
	ch      chan time.Time
	stopped bool
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop() { m.stopped = true }

type fakeSounds struct {
	mu           sync.Mutex
	eats, crashs int
}

func (f *fakeSounds) PlayEat() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.eats++
}

func (f *fakeSounds) PlayCrash() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.crashs++
}

func newManualScheduler(t *testing.T, g *game.Game) (*Scheduler, *manualTicker) {
	t.Helper()
	mt := &manualTicker{ch: make(chan time.Time)}
	s := NewScheduler(g, logger.Discard(), WithTicker(func(time.Duration) Ticker { return mt }))
	return s, mt
}

func run(t *testing.T, s *Scheduler) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	go s.Start(ctx)

	// Initial frame
	select {
	case <-s.Frames():
	case <-time.After(time.Second):
		t.Fatal("No initial frame")
	}
	return cancel
}

func nextFrame(t *testing.T, s *Scheduler) game.Snapshot {
	t.Helper()
	select {
	case snap := <-s.Frames():
		return snap
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for frame")
	}
	return game.Snapshot{}
}

func TestSchedulerTicksAdvanceGame(t *testing.T) {
	g := game.NewGame(game.WithSeed(11))
	s, mt := newManualScheduler(t, g)
	cancel := run(t, s)
	defer cancel()

	start := g.Snapshot().Head()
	for i := 1; i <= 3; i++ {
		mt.ch <- time.Now()
		snap := nextFrame(t, s)
		want := types.Point{X: start.X + i, Y: start.Y}
		if snap.Head() != want {
			t.Fatalf("Tick %d: expected head %v, got %v", i, want, snap.Head())
		}
	}

	cancel()
	<-s.Done()
	if s.Ticks() != 3 {
		t.Errorf("Expected 3 ticks, got %d", s.Ticks())
	}
	if !mt.stopped {
		t.Error("Ticker not stopped on exit")
	}
}

func TestSchedulerCommandsBetweenTicks(t *testing.T) {
	g := game.NewGame(game.WithSeed(12))
	s, mt := newManualScheduler(t, g)
	cancel := run(t, s)
	defer cancel()

	if !s.Send(input.Pause) {
		t.Fatal("Send rejected")
	}
	if snap := nextFrame(t, s); !snap.Paused {
		t.Fatal("Expected paused frame")
	}

	before := g.Snapshot().Head()
	mt.ch <- time.Now()
	if snap := nextFrame(t, s); snap.Head() != before {
		t.Errorf("Snake moved while paused: %v -> %v", before, snap.Head())
	}

	s.Send(input.Down)
	nextFrame(t, s)
	s.Send(input.Pause)
	nextFrame(t, s)

	mt.ch <- time.Now()
	snap := nextFrame(t, s)
	if want := (types.Point{X: before.X, Y: before.Y + 1}); snap.Head() != want {
		t.Errorf("Expected head %v, got %v", want, snap.Head())
	}
}

func TestSchedulerListeners(t *testing.T) {
	g := game.NewGame(game.WithSeed(13))
	stats := manager.NewStatsManager()
	sounds := &fakeSounds{}
	var logBuf bytes.Buffer

	s, mt := newManualScheduler(t, g)
	s.AddListener(NewStatsListener(stats))
	s.AddListener(NewSoundListener(sounds))
	s.AddListener(NewEventLogger(logger.NewLogger(&logBuf)))
	cancel := run(t, s)

	// Drive right until the wall ends the game
	var snap game.Snapshot
	for i := 0; i < types.GridSize && !snap.GameOver; i++ {
		mt.ch <- time.Now()
		snap = nextFrame(t, s)
	}
	if !snap.GameOver {
		t.Fatal("Expected the wall to end the game")
	}

	// Extra ticks after game over must not record the game twice
	mt.ch <- time.Now()
	nextFrame(t, s)

	s.Send(input.Restart)
	restarted := nextFrame(t, s)
	if restarted.GameOver || restarted.GameID == snap.GameID {
		t.Error("Expected a fresh game after restart")
	}

	cancel()
	<-s.Done()

	if stats.GetGamesPlayed() != 1 {
		t.Errorf("Expected 1 recorded game, got %d", stats.GetGamesPlayed())
	}
	if rec := stats.GetStats()[0]; rec.GameID != snap.GameID || rec.Score != snap.Score || rec.Cause != "wall" {
		t.Errorf("Unexpected record %+v", rec)
	}
	if sounds.crashs != 1 || sounds.eats != snap.Score {
		t.Errorf("Expected 1 crash and %d eats, got %d and %d", snap.Score, sounds.crashs, sounds.eats)
	}

	out := logBuf.String()
	for _, want := range []string{"[EVENT:game_over]", "cause=wall", "[EVENT:restart]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log to contain %q", want)
		}
	}
}

func TestSchedulerStopAndSendAfterExit(t *testing.T) {
	g := game.NewGame(game.WithSeed(14))
	s, _ := newManualScheduler(t, g)
	cancel := run(t, s)
	defer cancel()

	s.Stop()
	s.Stop()

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("Scheduler did not stop")
	}

	if s.Send(input.Up) {
		t.Error("Send must fail after the loop exited")
	}
}

func TestPublishKeepsLatestFrame(t *testing.T) {
	g := game.NewGame(game.WithSeed(15))
	s := NewScheduler(g, logger.Discard())

	first := g.Snapshot()
	g.Tick()
	second := g.Snapshot()

	s.publish(first)
	s.publish(second)

	got := <-s.Frames()
	if got.Steps != second.Steps {
		t.Errorf("Expected latest frame with %d steps, got %d", second.Steps, got.Steps)
	}
	select {
	case <-s.Frames():
		t.Error("Expected a single buffered frame")
	default:
	}
}
