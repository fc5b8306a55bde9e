package ui

import (
	"fmt"

	"classic-snake/game"
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cellSize      = 24 // Pixels per board cell
	borderPadding = 16 // Padding around game area
	headerHeight  = 48 // Space for the score line
	footerHeight  = 96 // Space for banners and key hints
)

var (
	colorBackground = rl.NewColor(30, 41, 59, 255)
	colorBoard      = rl.NewColor(51, 65, 85, 255)
	colorGridLine   = rl.NewColor(71, 85, 105, 80)
	colorBorder     = rl.NewColor(71, 85, 105, 255)
	colorHead       = rl.NewColor(52, 211, 153, 255)
	colorBody       = rl.NewColor(16, 185, 129, 255)
	colorFood       = rl.NewColor(239, 68, 68, 255)
	colorOver       = rl.NewColor(248, 113, 113, 255)
	colorPaused     = rl.NewColor(96, 165, 250, 255)
	colorHint       = rl.NewColor(148, 163, 184, 255)
)

// WindowSize returns the window needed for grid
func WindowSize(grid types.Grid) (int32, int32) {
	w := int32(grid.Width*cellSize + 2*borderPadding)
	h := int32(grid.Height*cellSize + headerHeight + footerHeight + 2*borderPadding)
	return w, h
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw renders one frame. Must be called from the window thread.
func (r *Renderer) Draw(snap game.Snapshot, highScore int) {
	r.UpdateDimensions()

	gridW := int32(snap.Grid.Width * cellSize)
	gridH := int32(snap.Grid.Height * cellSize)
	r.offsetX = (r.screenWidth - gridW) / 2
	r.offsetY = borderPadding + headerHeight

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(colorBackground)

	// Score line
	r.drawCentered(fmt.Sprintf("Score: %d", snap.Score), borderPadding+4, 28, rl.White)
	best := fmt.Sprintf("Best: %d", highScore)
	rl.DrawText(best, r.offsetX+gridW-rl.MeasureText(best, 18), borderPadding+10, 18, colorHint)

	// Board and faint grid
	rl.DrawRectangle(r.offsetX-4, r.offsetY-4, gridW+8, gridH+8, colorBorder)
	rl.DrawRectangle(r.offsetX, r.offsetY, gridW, gridH, colorBoard)
	for x := int32(1); x < int32(snap.Grid.Width); x++ {
		rl.DrawLine(r.offsetX+x*cellSize, r.offsetY, r.offsetX+x*cellSize, r.offsetY+gridH, colorGridLine)
	}
	for y := int32(1); y < int32(snap.Grid.Height); y++ {
		rl.DrawLine(r.offsetX, r.offsetY+y*cellSize, r.offsetX+gridW, r.offsetY+y*cellSize, colorGridLine)
	}

	if snap.HasFood {
		cx := r.offsetX + int32(snap.Food.X)*cellSize + cellSize/2
		cy := r.offsetY + int32(snap.Food.Y)*cellSize + cellSize/2
		rl.DrawCircle(cx, cy, float32(cellSize-4)/2, colorFood)
	}

	// Body first, head on top
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		p := snap.Snake[i]
		color := colorBody
		if i == 0 {
			color = colorHead
		}
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*cellSize+1,
			r.offsetY+int32(p.Y)*cellSize+1,
			cellSize-2, cellSize-2, color)
	}
	r.drawDirection(snap.Head(), snap.Direction)

	footerY := r.offsetY + gridH + borderPadding
	switch snap.State() {
	case game.Over:
		r.drawCentered("Game Over!", footerY, 24, colorOver)
		r.drawCentered("Press 'R' to restart", footerY+30, 16, colorHint)
	case game.Paused:
		r.drawCentered("Paused", footerY, 24, colorPaused)
	default:
		r.drawCentered("Use arrow keys to move", footerY, 16, colorHint)
		r.drawCentered("Space to pause", footerY+22, 16, colorHint)
		r.drawCentered("R to restart when game over", footerY+44, 16, colorHint)
	}
}

// drawDirection paints a small triangle on the head pointing along dir
func (r *Renderer) drawDirection(head types.Point, dir types.Direction) {
	x := float32(r.offsetX + int32(head.X)*cellSize)
	y := float32(r.offsetY + int32(head.Y)*cellSize)
	c := float32(cellSize)
	half := c / 2
	inset := c / 4

	// Vertices are listed counter-clockwise as raylib expects
	var a, b, d rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: x + c - inset, Y: y + half}
		b = rl.Vector2{X: x + half, Y: y + inset}
		d = rl.Vector2{X: x + half, Y: y + c - inset}
	case types.Left:
		a = rl.Vector2{X: x + inset, Y: y + half}
		b = rl.Vector2{X: x + half, Y: y + c - inset}
		d = rl.Vector2{X: x + half, Y: y + inset}
	case types.Down:
		a = rl.Vector2{X: x + half, Y: y + c - inset}
		b = rl.Vector2{X: x + c - inset, Y: y + half}
		d = rl.Vector2{X: x + inset, Y: y + half}
	default:
		a = rl.Vector2{X: x + half, Y: y + inset}
		b = rl.Vector2{X: x + inset, Y: y + half}
		d = rl.Vector2{X: x + c - inset, Y: y + half}
	}
	rl.DrawTriangle(a, b, d, rl.DarkGreen)
}

func (r *Renderer) drawCentered(text string, y int32, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, (r.screenWidth-w)/2, y, size, color)
}
