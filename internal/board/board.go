// Package board parses textual boards into searchable grids and formats
// solved boards back into text.
//
// Board format: one row per line, '.' open ground, 'B' a blocked cell,
// exactly one 'S' start marker and exactly one 'X' end marker. Rows shorter
// than the longest row are padded with open ground on the right.
package board

import (
	"errors"
	"fmt"
	"strings"

	"pathboard/internal/nav"
)

var (
	ErrEmpty          = errors.New("board is empty")
	ErrNotRectangular = errors.New("board is not a rectangle")
	ErrMarkers        = errors.New("board must contain exactly one start (S) and one end (X) tile")
)

// Board is a parsed, validated board ready for solving.
type Board struct {
	Grid  *nav.Grid
	Start nav.Coord
	End   nav.Coord
}

// Parse validates the board text and builds the grid. The start and end
// marker cells are open ground: markers are drawn over walkable tiles.
func Parse(text string) (*Board, error) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmpty
	}
	rows := strings.Split(text, "\n")

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, ErrEmpty
	}
	for i, row := range rows {
		if len(row) < width {
			rows[i] = row + strings.Repeat(".", width-len(row))
		}
	}
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNotRectangular
		}
	}

	if strings.Count(text, "S") != 1 || strings.Count(text, "X") != 1 {
		return nil, ErrMarkers
	}

	b := &Board{Grid: nav.NewGrid(width, len(rows))}
	for y, row := range rows {
		for x, r := range row {
			switch r {
			case '.':
			case 'B':
				b.Grid.SetBlocked(x, y)
			case 'S':
				b.Start = nav.Coord{X: x, Y: y}
			case 'X':
				b.End = nav.Coord{X: x, Y: y}
			default:
				return nil, fmt.Errorf("unexpected character %q at %d,%d", r, x, y)
			}
		}
	}
	return b, nil
}

// Solve runs the search and returns the route from the start marker toward
// the end marker. An unreachable end yields the best partial route rather
// than an error.
func (b *Board) Solve() ([]nav.Coord, error) {
	return b.Grid.FindPath(b.Start, b.End)
}

// FormatSolution renders the board with the path overlaid: 'B' for walls,
// '*' for path cells (markers included), '.' elsewhere.
func FormatSolution(b *Board, path []nav.Coord) string {
	onPath := make(map[nav.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var sb strings.Builder
	sb.Grow((b.Grid.Width + 1) * b.Grid.Height)
	for y := 0; y < b.Grid.Height; y++ {
		for x := 0; x < b.Grid.Width; x++ {
			switch {
			case b.Grid.Blocked(x, y):
				sb.WriteByte('B')
			case onPath[nav.Coord{X: x, Y: y}]:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
