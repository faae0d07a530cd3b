package nav

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
)

// Distance returns the cost between two cells: the Euclidean distance
// quantized to multiples of 0.5, so orthogonal steps cost 1.0 and diagonal
// steps 1.5. Halfway values round to even. Used both as the step cost and as
// the heuristic toward the end cell.
func Distance(a, b Coord) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.RoundToEven(math.Sqrt(dx*dx+dy*dy)*2) / 2
}

// PathCost returns the sum of per-step distances along a path.
func PathCost(path []Coord) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += Distance(path[i-1], path[i])
	}
	return total
}

// score holds the best known costs for a discovered cell: g is the cumulative
// cost from the start, f is g plus the heuristic to the end.
type score struct {
	g, f float64
}

// frontierEntry is one pending expansion. The frontier may hold stale
// duplicates for a cell whose cost was later improved; they are reprocessed
// harmlessly because every decision re-reads the score map.
type frontierEntry struct {
	f float64
	c Coord
}

// frontier is a min-heap ordered by estimated total cost, tie-broken by
// x then y so that symmetric grids always expand in the same order.
type frontier []frontierEntry

func (fr frontier) Len() int { return len(fr) }
func (fr frontier) Less(i, j int) bool {
	if fr[i].f != fr[j].f {
		return fr[i].f < fr[j].f
	}
	if fr[i].c.X != fr[j].c.X {
		return fr[i].c.X < fr[j].c.X
	}
	return fr[i].c.Y < fr[j].c.Y
}
func (fr frontier) Swap(i, j int) { fr[i], fr[j] = fr[j], fr[i] }
func (fr *frontier) Push(x any)   { *fr = append(*fr, x.(frontierEntry)) }
func (fr *frontier) Pop() any {
	old := *fr
	e := old[len(old)-1]
	*fr = old[:len(old)-1]
	return e
}

// FindPath runs a modified A* search from start to end and returns the cell
// sequence from start to the terminal cell inclusive.
//
// Unreachable ends are not an error: when the frontier is exhausted the path
// to the closest cell reached (by heuristic distance, ties broken by lower
// cumulative cost) is returned instead, degrading to [start] when start has
// no usable neighbors. An error is returned only for precondition violations
// detected before the search begins. Identical inputs always produce an
// identical path.
func (g *Grid) FindPath(start, end Coord) ([]Coord, error) {
	if g == nil || g.Width == 0 || g.Height == 0 {
		return nil, errors.New("empty grid")
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("start (%d,%d) out of bounds", start.X, start.Y)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("end (%d,%d) out of bounds", end.X, end.Y)
	}
	if start == end {
		return nil, errors.New("start and end must be distinct")
	}

	scores := map[Coord]score{start: {g: 0, f: Distance(start, end)}}
	cameFrom := make(map[Coord]Coord)
	visited := make(map[Coord]bool)
	// Live entry count per cell, so "has a frontier entry" is O(1) instead of
	// scanning the heap.
	inFrontier := map[Coord]int{start: 1}

	open := frontier{{f: scores[start].f, c: start}}
	heap.Init(&open)

	closest := start
	closestG := 0.0

	for open.Len() > 0 {
		current := heap.Pop(&open).(frontierEntry).c
		if n := inFrontier[current] - 1; n > 0 {
			inFrontier[current] = n
		} else {
			delete(inFrontier, current)
		}

		if current == end {
			return reconstruct(cameFrom, end, start), nil
		}

		visited[current] = true

		for _, neighbor := range g.Neighbors(current) {
			tentativeG := scores[current].g + Distance(current, neighbor)

			// A visited neighbor that this route doesn't improve offers
			// nothing; the zero score for an unseen cell mirrors the
			// reference and is unreachable for visited cells in practice.
			if visited[neighbor] && tentativeG >= scores[neighbor].g {
				continue
			}

			if tentativeG < scores[neighbor].g || inFrontier[neighbor] == 0 {
				cameFrom[neighbor] = current
				f := tentativeG + Distance(neighbor, end)
				scores[neighbor] = score{g: tentativeG, f: f}
				heap.Push(&open, frontierEntry{f: f, c: neighbor})
				inFrontier[neighbor]++

				dn := Distance(neighbor, end)
				dc := Distance(closest, end)
				if dn < dc || (dn == dc && tentativeG < closestG) {
					closest = neighbor
					closestG = tentativeG
				}
			}
		}
	}

	// Frontier exhausted without reaching the end: best partial route.
	return reconstruct(cameFrom, closest, start), nil
}

// reconstruct walks the predecessor map backward from terminal, appends the
// start, and reverses, yielding the route start → terminal inclusive.
func reconstruct(cameFrom map[Coord]Coord, terminal, start Coord) []Coord {
	path := []Coord{}
	c := terminal
	for {
		prev, ok := cameFrom[c]
		if !ok {
			break
		}
		path = append(path, c)
		c = prev
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
