package gridapi

import (
	"github.com/katalvlaran/floodgrid/floodfill"
	"github.com/katalvlaran/floodgrid/render"
)

// CreateRequest is the optional body of a create call.
type CreateRequest struct {
	Seed *uint64 `json:"seed"`
}

// Point is one cell position in a request or response.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// StrokeRequest is a drag gesture: the cells touched, in order.
type StrokeRequest struct {
	Points []Point `json:"points" binding:"required,min=1"`
}

// EditResponse reports the outcome of a wall edit or stroke.
type EditResponse struct {
	Changed int    `json:"changed"`
	Version uint64 `json:"version"`
}

// CellView is one cell as the client draws it.
type CellView struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Wall  bool   `json:"wall"`
	Cost  int    `json:"cost"`
	Shade string `json:"shade"`
}

// Snapshot is the full drawable state of a grid.
type Snapshot struct {
	ID      string     `json:"id"`
	Size    int        `json:"size"`
	Version uint64     `json:"version"`
	Start   Point      `json:"start"`
	End     Point      `json:"end"`
	Reached bool       `json:"reached"`
	Done    bool       `json:"done"`
	Path    []Point    `json:"path"`
	Queued  []Point    `json:"queued"`
	Checked []Point    `json:"checked"`
	Rows    []string   `json:"rows"`
	Cells   []CellView `json:"cells"`
}

func toPoint(c floodfill.Coord) Point { return Point{Row: c.Row, Col: c.Col} }

func toPoints(cs []floodfill.Coord) []Point {
	out := make([]Point, len(cs))
	for i, c := range cs {
		out[i] = toPoint(c)
	}
	return out
}

// snapshotOf captures g. The caller must hold the session lock.
func snapshotOf(id string, g *floodfill.Grid) Snapshot {
	n := g.Size()
	cells := make([]CellView, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			c := floodfill.Coord{Row: row, Col: col}
			cells = append(cells, CellView{
				Row:   row,
				Col:   col,
				Wall:  g.IsWall(c),
				Cost:  g.MoveCost(c),
				Shade: render.Classify(g, c).String(),
			})
		}
	}
	return Snapshot{
		ID:      id,
		Size:    n,
		Version: g.Version(),
		Start:   toPoint(g.Start()),
		End:     toPoint(g.End()),
		Reached: g.Reached(),
		Done:    g.Done(),
		Path:    toPoints(g.Path()),
		Queued:  toPoints(g.Queued()),
		Checked: toPoints(g.Checked()),
		Rows:    render.Lines(g),
		Cells:   cells,
	}
}
