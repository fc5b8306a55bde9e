// Package input turns discrete player signals into engine calls.
// Front ends translate their own key events into Commands and hand them to
// the scheduler, which applies them between ticks.
package input

import (
	"classic-snake/game"
	"classic-snake/game/types"
)

// Command is a single player intent
type Command int

const (
	None Command = iota
	Up
	Down
	Left
	Right
	Pause
	Restart
	Quit
)

func (c Command) String() string {
	switch c {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Pause:
		return "pause"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// Direction maps a movement command to its heading
func (c Command) Direction() (types.Direction, bool) {
	switch c {
	case Up:
		return types.Up, true
	case Down:
		return types.Down, true
	case Left:
		return types.Left, true
	case Right:
		return types.Right, true
	default:
		return 0, false
	}
}

// Controller is the part of the engine commands act on
type Controller interface {
	SetDirection(d types.Direction)
	TogglePause()
	Reset()
	State() game.State
}

// Apply executes cmd against c. Restart only acts on a finished game; Quit
// and None are left to the caller. It reports whether c was touched.
func Apply(c Controller, cmd Command) bool {
	if dir, ok := cmd.Direction(); ok {
		c.SetDirection(dir)
		return true
	}

	switch cmd {
	case Pause:
		c.TogglePause()
		return true
	case Restart:
		if c.State() != game.Over {
			return false
		}
		c.Reset()
		return true
	default:
		return false
	}
}

// FromRune maps printable keys shared by every front end
func FromRune(r rune) Command {
	switch r {
	case 'w', 'W', 'k':
		return Up
	case 's', 'S', 'j':
		return Down
	case 'a', 'A', 'h':
		return Left
	case 'd', 'D', 'l':
		return Right
	case ' ', 'p', 'P':
		return Pause
	case 'r', 'R':
		return Restart
	case 'q', 'Q':
		return Quit
	default:
		return None
	}
}
