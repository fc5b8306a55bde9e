package terminal

import (
	"context"

	"classic-snake/game"
	"classic-snake/game/input"
	"classic-snake/game/loop"
	"classic-snake/game/manager"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// NewScreen opens and initializes the real terminal
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	screen.HideCursor()
	return screen, nil
}

// KeyCommand maps a key event to a player command
func KeyCommand(ev *tcell.EventKey) input.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Up
	case tcell.KeyDown:
		return input.Down
	case tcell.KeyLeft:
		return input.Left
	case tcell.KeyRight:
		return input.Right
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit
	case tcell.KeyRune:
		return input.FromRune(ev.Rune())
	default:
		return input.None
	}
}

// Run draws frames from sched and forwards key presses to it until the
// player quits, ctx ends, or the scheduler exits. The caller owns screen.
func Run(ctx context.Context, screen tcell.Screen, sched *loop.Scheduler, stats *manager.StatsManager) error {
	r := NewRenderer(screen)

	quit := make(chan struct{})
	defer close(quit)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	var last game.Snapshot
	drawn := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sched.Done():
			return nil

		case snap := <-sched.Frames():
			last, drawn = snap, true
			r.Draw(last, stats.GetHighScore())

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd := KeyCommand(ev)
				if cmd == input.Quit {
					return nil
				}
				if cmd != input.None {
					sched.Send(cmd)
				}
			case *tcell.EventResize:
				screen.Sync()
				if drawn {
					r.Draw(last, stats.GetHighScore())
				}
			}
		}
	}
}
