package ui

import (
	"context"

	"classic-snake/game"
	"classic-snake/game/input"
	"classic-snake/game/loop"
	"classic-snake/game/manager"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyBindings lists the raylib keys polled every frame
var keyBindings = []struct {
	key int32
	cmd input.Command
}{
	{rl.KeyUp, input.Up},
	{rl.KeyW, input.Up},
	{rl.KeyDown, input.Down},
	{rl.KeyS, input.Down},
	{rl.KeyLeft, input.Left},
	{rl.KeyA, input.Left},
	{rl.KeyRight, input.Right},
	{rl.KeyD, input.Right},
	{rl.KeySpace, input.Pause},
	{rl.KeyR, input.Restart},
	{rl.KeyQ, input.Quit},
}

// Run opens the window and drives it until the player closes it. raylib is
// bound to the calling OS thread, so this must run on the main goroutine.
func Run(ctx context.Context, sched *loop.Scheduler, g *game.Game, stats *manager.StatsManager) {
	w, h := WindowSize(g.Grid)
	rl.InitWindow(w, h, "Snake")
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(60)

	renderer := NewRenderer()

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return
		case <-sched.Done():
			return
		default:
		}

		for _, b := range keyBindings {
			if !rl.IsKeyPressed(b.key) {
				continue
			}
			if b.cmd == input.Quit {
				return
			}
			sched.Send(b.cmd)
		}

		renderer.Draw(g.Snapshot(), stats.GetHighScore())
	}
}
