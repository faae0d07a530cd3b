package nav

// Coord is a cell position on a Grid. X indexes width, Y indexes height.
type Coord struct {
	X, Y int
}

// Cell is the occupancy state of one grid cell.
type Cell uint8

const (
	CellOpen Cell = iota
	CellBlocked
)

// Grid is a fixed-size rectangular field of open/blocked cells.
// It is treated as read-only for the lifetime of a search.
type Grid struct {
	Width  int
	Height int
	cells  []Cell // row-major: index = y*Width + x
}

// NewGrid creates an all-open grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

// InBounds returns true if c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Blocked returns true if the cell at (x, y) is not traversable.
// Out-of-bounds cells count as blocked.
func (g *Grid) Blocked(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return true
	}
	return g.cells[y*g.Width+x] == CellBlocked
}

// SetBlocked marks the cell at (x, y) as blocked. Out of bounds is a no-op.
func (g *Grid) SetBlocked(x, y int) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	g.cells[y*g.Width+x] = CellBlocked
}

var directions = [8]Coord{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Neighbors returns the legal moves from c: the in-bounds, open cells among the
// 8 surrounding ones. A diagonal move is rejected only when both of its
// flanking orthogonal cells are blocked. Cutting past a single wall corner is
// allowed; squeezing between two walls is not.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 8)
	for _, d := range directions {
		nx, ny := c.X+d.X, c.Y+d.Y
		if g.Blocked(nx, ny) {
			continue
		}
		if d.X != 0 && d.Y != 0 {
			if g.Blocked(nx, c.Y) && g.Blocked(c.X, ny) {
				continue
			}
		}
		out = append(out, Coord{nx, ny})
	}
	return out
}
