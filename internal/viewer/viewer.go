// Package viewer plays a solved board as an interactive animation.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pathboard/internal/board"
	"pathboard/internal/nav"
)

const (
	cellSize = 24
	margin   = 16
)

var (
	backgroundColor = color.RGBA{R: 54, G: 57, B: 63, A: 255}
	wallColor       = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	gridLineColor   = color.RGBA{R: 70, G: 74, B: 82, A: 255}
	trailColor      = color.RGBA{R: 70, G: 100, B: 200, A: 255}
	startColor      = color.RGBA{G: 200, A: 255}
	endColor        = color.RGBA{R: 210, A: 255}
	markerColor     = color.RGBA{R: 60, G: 120, B: 255, A: 255}
)

// Viewer is an ebiten game that steps through a path one cell at a time.
// Space pauses, R restarts.
type Viewer struct {
	board        *board.Board
	path         []nav.Coord
	ticksPerStep int

	step   int
	tick   int
	paused bool

	prevKeys map[ebiten.Key]bool
}

func New(b *board.Board, path []nav.Coord, ticksPerStep int) *Viewer {
	if ticksPerStep <= 0 {
		ticksPerStep = 18
	}
	return &Viewer{
		board:        b,
		path:         path,
		ticksPerStep: ticksPerStep,
		prevKeys:     map[ebiten.Key]bool{},
	}
}

func (v *Viewer) Update() error {
	v.handleInput()
	if v.paused {
		return nil
	}
	v.tick++
	if v.tick >= v.ticksPerStep {
		v.tick = 0
		if v.step < len(v.path)-1 {
			v.step++
		}
	}
	return nil
}

// handleInput processes keypresses (edge-triggered).
func (v *Viewer) handleInput() {
	currentKeys := map[ebiten.Key]bool{}

	currentKeys[ebiten.KeySpace] = ebiten.IsKeyPressed(ebiten.KeySpace)
	if currentKeys[ebiten.KeySpace] && !v.prevKeys[ebiten.KeySpace] {
		v.paused = !v.paused
	}

	currentKeys[ebiten.KeyR] = ebiten.IsKeyPressed(ebiten.KeyR)
	if currentKeys[ebiten.KeyR] && !v.prevKeys[ebiten.KeyR] {
		v.step = 0
		v.tick = 0
		v.paused = false
	}

	v.prevKeys = currentKeys
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g := v.board.Grid
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			px := float32(margin + x*cellSize)
			py := float32(margin + y*cellSize)
			if g.Blocked(x, y) {
				vector.FillRect(screen, px, py, cellSize, cellSize, wallColor, false)
			} else {
				vector.StrokeRect(screen, px, py, cellSize, cellSize, 1.0, gridLineColor, false)
			}
		}
	}

	// Faint trail over the cells already visited this playback.
	for i := 0; i < v.step; i++ {
		cx, cy := cellCenter(v.path[i])
		vector.FillCircle(screen, cx, cy, cellSize/5, trailColor, true)
	}

	sx, sy := cellCenter(v.board.Start)
	vector.FillCircle(screen, sx, sy, cellSize/2-2, startColor, true)
	ex, ey := cellCenter(v.board.End)
	vector.FillCircle(screen, ex, ey, cellSize/2-2, endColor, true)
	mx, my := cellCenter(v.path[v.step])
	vector.FillCircle(screen, mx, my, cellSize/2-2, markerColor, true)

	status := fmt.Sprintf("step %d/%d  [space] pause  [R] restart", v.step+1, len(v.path))
	if v.paused {
		status += "  (paused)"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 0)
}

func (v *Viewer) Layout(_, _ int) (int, int) {
	return v.board.Grid.Width*cellSize + 2*margin, v.board.Grid.Height*cellSize + 2*margin
}

func cellCenter(c nav.Coord) (float32, float32) {
	return float32(margin + c.X*cellSize + cellSize/2), float32(margin + c.Y*cellSize + cellSize/2)
}
