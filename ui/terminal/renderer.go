// Package terminal renders the game in a terminal with tcell.
package terminal

import (
	"fmt"

	"classic-snake/game"
	"classic-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth = 2 // Terminal columns per board cell, keeps cells roughly square
	originX   = 1 // Board offset inside the border
	originY   = 1
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLightGreen).Bold(true)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOver   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePaused = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Renderer draws snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw paints one full frame
func (r *Renderer) Draw(snap game.Snapshot, highScore int) {
	r.screen.Clear()

	w, h := snap.Grid.Width, snap.Grid.Height
	r.drawBorder(w, h)

	if snap.HasFood {
		r.drawCell(snap.Food, '●', styleFood)
	}
	// Tail first so the head is painted last
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		glyph, style := segmentGlyph(snap, i)
		r.drawCell(snap.Snake[i], glyph, style)
	}

	statusY := originY + h + 1
	r.drawText(0, statusY, styleText, fmt.Sprintf("Score: %d   Best: %d   Length: %d", snap.Score, highScore, len(snap.Snake)))

	switch snap.State() {
	case game.Over:
		r.drawText(0, statusY+1, styleOver, fmt.Sprintf("Game Over! (%s)", snap.Cause))
		r.drawText(0, statusY+2, styleHint, "Press 'R' to restart")
	case game.Paused:
		r.drawText(0, statusY+1, stylePaused, "Paused")
	default:
		r.drawText(0, statusY+1, styleHint, "Arrows/WASD move, Space pause, Q quit")
	}

	r.screen.Show()
}

// segmentGlyph picks the rune for Snake[i]; the head points where it is going
func segmentGlyph(snap game.Snapshot, i int) (rune, tcell.Style) {
	if i != 0 {
		return '█', styleBody
	}
	switch snap.Direction {
	case types.Up:
		return '▲', styleHead
	case types.Down:
		return '▼', styleHead
	case types.Left:
		return '◀', styleHead
	default:
		return '▶', styleHead
	}
}

// screenPos converts a board cell to the left column and row it occupies
func screenPos(p types.Point) (int, int) {
	return originX + p.X*cellWidth, originY + p.Y
}

func (r *Renderer) drawCell(p types.Point, glyph rune, style tcell.Style) {
	x, y := screenPos(p)
	r.screen.SetContent(x, y, glyph, nil, style)
	fill := ' '
	if glyph == '█' {
		fill = '█'
	}
	r.screen.SetContent(x+1, y, fill, nil, style)
}

func (r *Renderer) drawBorder(w, h int) {
	right := originX + w*cellWidth
	bottom := originY + h

	for x := originX; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, styleBorder)
		r.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := originY; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, styleBorder)
		r.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(0, 0, '┌', nil, styleBorder)
	r.screen.SetContent(right, 0, '┐', nil, styleBorder)
	r.screen.SetContent(0, bottom, '└', nil, styleBorder)
	r.screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
