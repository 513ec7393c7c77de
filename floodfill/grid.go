// Package floodfill provides the grid model and wall editing used by the
// flood-fill router. The grid is:
//
//   - square and fixed-size for its whole lifetime
//   - stored as a row-major arena of Cells
//   - 8-connected, with every step costing 1
package floodfill

import (
	"github.com/zyedidia/generic/mapset"
)

// phase tracks where the current route computation stands.
type phase int

const (
	phaseIdle phase = iota // nothing computed since construction or Clear
	phaseExpanding
	phaseDone
)

// neighborOffsets lists {dRow, dCol} in the fixed scan order:
// left, right, up, down, upper-left, lower-left, upper-right, lower-right.
var neighborOffsets = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// Grid is a square field of cells with a fixed start and end.
// It owns every Cell exclusively; queued, checked and path hold Coords into
// the arena and describe the most recent route computation only.
type Grid struct {
	size       int
	cells      []Cell
	start, end Coord

	queue       []Coord
	queuedCount []int // per-cell occurrences in queue
	checked     []Coord
	checkedSet  mapset.Set[Coord]
	path        []Coord
	pathSet     mapset.Set[Coord]

	phase   phase
	version uint64
	opts    Options
}

// NewGrid builds a size×size grid with no walls and every cost Unreached.
// Start is (1,1) and End is (size-2,size-2).
// Returns ErrGridTooSmall if size < MinSize, or ErrOptionViolation for a bad Option.
// Complexity: O(size²) time and memory.
func NewGrid(size int, opts ...Option) (*Grid, error) {
	if size < MinSize {
		return nil, ErrGridTooSmall
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cells := make([]Cell, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cells[row*size+col] = Cell{Row: row, Col: col, MoveCost: Unreached}
		}
	}
	g := &Grid{
		size:        size,
		cells:       cells,
		start:       Coord{Row: 1, Col: 1},
		end:         Coord{Row: size - 2, Col: size - 2},
		queue:       make([]Coord, 0, size*size),
		queuedCount: make([]int, size*size),
		checkedSet:  mapset.New[Coord](),
		pathSet:     mapset.New[Coord](),
		opts:        o,
	}

	return g, nil
}

// Size returns the grid dimension.
func (g *Grid) Size() int { return g.size }

// Start returns the fixed start coordinate.
func (g *Grid) Start() Coord { return g.start }

// End returns the fixed end coordinate.
func (g *Grid) End() Coord { return g.end }

// Version returns the change counter. It grows by one for every observable
// change; edits that change nothing leave it untouched.
func (g *Grid) Version() uint64 { return g.version }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// index maps (row,col) to its arena slot: row*size + col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.size + c.Col
}

// at returns the arena cell for an in-bounds coordinate.
func (g *Grid) at(c Coord) *Cell {
	return &g.cells[g.index(c)]
}

// Cell returns a copy of the cell at (row,col), or ErrOutOfBounds.
func (g *Grid) Cell(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, ErrOutOfBounds
	}
	return *g.at(Coord{Row: row, Col: col}), nil
}

// Neighbors returns the in-bounds neighbors of c in the fixed scan order.
// Walls are included; an out-of-range c has no neighbors.
func (g *Grid) Neighbors(c Coord) []Coord {
	if !g.InBounds(c.Row, c.Col) {
		return nil
	}
	return g.appendNeighbors(make([]Coord, 0, len(neighborOffsets)), c)
}

// appendNeighbors appends c's in-bounds neighbors to dst.
func (g *Grid) appendNeighbors(dst []Coord, c Coord) []Coord {
	for _, d := range neighborOffsets {
		r, k := c.Row+d[0], c.Col+d[1]
		if !g.InBounds(r, k) {
			continue
		}
		dst = append(dst, Coord{Row: r, Col: k})
	}
	return dst
}

// touch bumps the version and notifies the OnChange hook.
func (g *Grid) touch() {
	g.version++
	g.opts.OnChange(g.version)
}

// PlaceWall marks (row,col) as a wall and reports whether anything changed.
// Placing a wall on an existing wall, on Start or on End changes nothing.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) PlaceWall(row, col int) (bool, error) {
	if !g.InBounds(row, col) {
		return false, ErrOutOfBounds
	}
	c := Coord{Row: row, Col: col}
	if c == g.start || c == g.end {
		return false, nil
	}
	cell := g.at(c)
	if cell.IsWall {
		return false, nil
	}
	cell.IsWall = true
	g.touch()
	return true, nil
}

// RemoveWall clears the wall at (row,col) and reports whether anything changed.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) RemoveWall(row, col int) (bool, error) {
	if !g.InBounds(row, col) {
		return false, ErrOutOfBounds
	}
	cell := g.at(Coord{Row: row, Col: col})
	if !cell.IsWall {
		return false, nil
	}
	cell.IsWall = false
	g.touch()
	return true, nil
}

// ResetWalls clears every wall. Route state is left alone.
func (g *Grid) ResetWalls() {
	for i := range g.cells {
		g.cells[i].IsWall = false
	}
	g.touch()
}

// Clear drops queued, checked and path and sets every move cost back to
// Unreached. Walls are left alone.
func (g *Grid) Clear() {
	g.clearRoute()
	g.touch()
}

// clearRoute resets all derived route state without notifying.
func (g *Grid) clearRoute() {
	g.queue = g.queue[:0]
	g.checked = g.checked[:0]
	g.path = g.path[:0]
	g.checkedSet = mapset.New[Coord]()
	g.pathSet = mapset.New[Coord]()
	for i := range g.cells {
		g.cells[i].MoveCost = Unreached
		g.queuedCount[i] = 0
	}
	g.phase = phaseIdle
}

// Randomize walls every cell except Start and End, then clears the wall on
// RandomTrials uniformly random cells and routes.
// Trials may hit the same cell twice, and nothing guarantees the holes
// connect Start to End.
// Complexity: O(size² + trials) plus Route.
func (g *Grid) Randomize() {
	for i := range g.cells {
		c := g.cells[i].Coord()
		if c == g.start || c == g.end {
			continue
		}
		g.cells[i].IsWall = true
	}
	for i := 0; i < g.opts.RandomTrials; i++ {
		row := g.opts.Rand.Intn(g.size)
		col := g.opts.Rand.Intn(g.size)
		g.at(Coord{Row: row, Col: col}).IsWall = false
	}
	g.touch()

	g.Route()
}
