package loop

import (
	"fmt"

	"classic-snake/game"
	"classic-snake/game/input"
	"classic-snake/game/manager"
	"classic-snake/logger"
)

// NewStatsListener records every game that ends into sm
func NewStatsListener(sm *manager.StatsManager) Listener {
	return ListenerFunc(func(ev Event) {
		if ev.Outcome == game.Crashed {
			sm.AddGame(ev.Snapshot.Record())
		}
	})
}

// NewEventLogger logs state changes worth keeping
func NewEventLogger(log *logger.Logger) Listener {
	return ListenerFunc(func(ev Event) {
		snap := ev.Snapshot
		switch {
		case ev.Outcome == game.Ate:
			log.Event("food", snap.GameID, fmt.Sprintf("score=%d length=%d", snap.Score, len(snap.Snake)))
		case ev.Outcome == game.Crashed:
			log.Event("game_over", snap.GameID,
				fmt.Sprintf("cause=%s score=%d steps=%d duration=%v",
					snap.Cause, snap.Score, snap.Steps, snap.EndTime.Sub(snap.StartTime)))
		case ev.Command == input.Restart && ev.Applied:
			log.Event("restart", snap.GameID, "new game")
		case ev.Command == input.Pause:
			log.Event("pause", snap.GameID, snap.State().String())
		}
	})
}

// Sounds plays the short effects tied to game outcomes
type Sounds interface {
	PlayEat()
	PlayCrash()
}

// NewSoundListener triggers s on eat and crash
func NewSoundListener(s Sounds) Listener {
	return ListenerFunc(func(ev Event) {
		switch ev.Outcome {
		case game.Ate:
			s.PlayEat()
		case game.Crashed:
			s.PlayCrash()
		}
	})
}
