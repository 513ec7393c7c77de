package floodfill

// IsStart reports whether c is the start cell.
func (g *Grid) IsStart(c Coord) bool { return c == g.start }

// IsEnd reports whether c is the end cell.
func (g *Grid) IsEnd(c Coord) bool { return c == g.end }

// IsWall reports whether c is an in-bounds wall.
func (g *Grid) IsWall(c Coord) bool {
	return g.InBounds(c.Row, c.Col) && g.at(c).IsWall
}

// IsOnPath reports whether c belongs to the selected path.
func (g *Grid) IsOnPath(c Coord) bool { return g.pathSet.Has(c) }

// IsQueued reports whether c is waiting in the frontier.
func (g *Grid) IsQueued(c Coord) bool {
	return g.InBounds(c.Row, c.Col) && g.queuedCount[g.index(c)] > 0
}

// IsChecked reports whether c has been expanded.
func (g *Grid) IsChecked(c Coord) bool { return g.checkedSet.Has(c) }

// MoveCost returns c's cost from start, or Unreached. Out-of-range
// coordinates are Unreached.
func (g *Grid) MoveCost(c Coord) int {
	if !g.InBounds(c.Row, c.Col) {
		return Unreached
	}
	return g.at(c).MoveCost
}

// Queued returns a copy of the frontier, head first.
func (g *Grid) Queued() []Coord { return append([]Coord(nil), g.queue...) }

// Checked returns a copy of the expanded cells in expansion order.
func (g *Grid) Checked() []Coord { return append([]Coord(nil), g.checked...) }

// Path returns a copy of the selected path, End first and Start last.
// It is empty when End was not reached.
func (g *Grid) Path() []Coord { return append([]Coord(nil), g.path...) }
