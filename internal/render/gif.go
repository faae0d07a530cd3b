// Package render turns a solved board into a frame-per-step animated GIF.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"pathboard/internal/board"
	"pathboard/internal/nav"
)

// Options controls frame geometry and timing.
type Options struct {
	CellSize   int  // pixel size of one board cell
	FrameDelay int  // per-frame delay in milliseconds
	StepLabel  bool // draw a step counter in the top-left corner
}

// DefaultOptions matches the classic output: 12 px cells, 300 ms frames.
func DefaultOptions() Options {
	return Options{CellSize: 12, FrameDelay: 300}
}

var (
	background  = color.RGBA{R: 54, G: 57, B: 63, A: 255}
	wallColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	startColor  = color.RGBA{G: 255, A: 255}
	endColor    = color.RGBA{R: 255, A: 255}
	markerColor = color.RGBA{B: 255, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// Frames renders one paletted frame per path step. Walls are white squares,
// the start a green disc, the end a red disc, and the step's cell a blue disc
// drawn on top.
func Frames(b *board.Board, path []nav.Coord, opts Options) ([]*image.Paletted, error) {
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %d", opts.CellSize)
	}
	if len(path) == 0 {
		return nil, errors.New("nothing to render: empty path")
	}
	frames := make([]*image.Paletted, 0, len(path))
	for step := range path {
		frames = append(frames, drawFrame(b, path, step, opts))
	}
	return frames, nil
}

func drawFrame(b *board.Board, path []nav.Coord, step int, opts Options) *image.Paletted {
	cell := float64(opts.CellSize)
	w := b.Grid.Width*opts.CellSize + 2
	h := b.Grid.Height*opts.CellSize + 2

	dc := gg.NewContext(w, h)
	dc.SetColor(background)
	dc.Clear()

	dc.SetColor(wallColor)
	for y := 0; y < b.Grid.Height; y++ {
		for x := 0; x < b.Grid.Width; x++ {
			if b.Grid.Blocked(x, y) {
				dc.DrawRectangle(float64(x)*cell, float64(y)*cell, cell, cell)
				dc.Fill()
			}
		}
	}

	disc := func(c nav.Coord, col color.Color) {
		dc.SetColor(col)
		dc.DrawCircle(float64(c.X)*cell+cell/2, float64(c.Y)*cell+cell/2, cell/2)
		dc.Fill()
	}
	disc(b.Start, startColor)
	disc(b.End, endColor)
	disc(path[step], markerColor)

	if opts.StepLabel {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(labelColor)
		dc.DrawString(fmt.Sprintf("%d/%d", step+1, len(path)), 2, 11)
	}

	frame := image.NewPaletted(image.Rect(0, 0, w, h), palette.Plan9)
	draw.Draw(frame, frame.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return frame
}

// EncodeGIF writes the animation for the given solution to w: one frame per
// path step, looping forever.
func EncodeGIF(w io.Writer, b *board.Board, path []nav.Coord, opts Options) error {
	frames, err := Frames(b, path, opts)
	if err != nil {
		return err
	}
	delay := opts.FrameDelay / 10 // GIF delays count hundredths of a second
	if delay < 1 {
		delay = 1
	}
	anim := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encoding gif: %w", err)
	}
	return nil
}
