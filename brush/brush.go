// Package brush implements drag-to-paint wall editing.
//
// A Stroke is one press-drag-release gesture. The first cell touched decides
// the mode for the whole stroke: pressing on a wall erases, pressing on
// anything else draws. Every later cell in the same stroke gets the same
// treatment until End.
package brush

import (
	"errors"

	"github.com/katalvlaran/floodgrid/floodfill"
)

// ErrBadCellSize is returned by ClampPoint for a non-positive cell size.
var ErrBadCellSize = errors.New("brush: cell size must be positive")

// Mode is the drawing mode of a stroke.
type Mode int

const (
	// ModeNone means no stroke is in progress.
	ModeNone Mode = iota
	// ModeDrawing places walls.
	ModeDrawing
	// ModeRemoving erases walls.
	ModeRemoving
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeDrawing:
		return "drawing"
	case ModeRemoving:
		return "removing"
	default:
		return "none"
	}
}

// Canvas is the part of a grid a stroke needs.
type Canvas interface {
	IsWall(c floodfill.Coord) bool
	PlaceWall(row, col int) (bool, error)
	RemoveWall(row, col int) (bool, error)
}

// Stroke tracks one gesture over a Canvas.
type Stroke struct {
	canvas Canvas
	mode   Mode
}

// NewStroke returns an idle stroke over c.
func NewStroke(c Canvas) *Stroke {
	return &Stroke{canvas: c}
}

// Mode returns the current mode.
func (s *Stroke) Mode() Mode { return s.mode }

// Drag applies the stroke at (row,col) and reports whether the canvas changed.
// The first Drag of a stroke picks the mode.
func (s *Stroke) Drag(row, col int) (bool, error) {
	if s.mode == ModeNone {
		if s.canvas.IsWall(floodfill.Coord{Row: row, Col: col}) {
			s.mode = ModeRemoving
		} else {
			s.mode = ModeDrawing
		}
	}
	if s.mode == ModeDrawing {
		return s.canvas.PlaceWall(row, col)
	}
	return s.canvas.RemoveWall(row, col)
}

// End finishes the stroke; the next Drag starts a new one.
func (s *Stroke) End() { s.mode = ModeNone }

// ClampPoint converts a pointer position in pixels to the (row,col) under it,
// clamped to [0,size). x runs along columns and y along rows.
func ClampPoint(x, y, cellSize float64, size int) (row, col int, err error) {
	if cellSize <= 0 {
		return 0, 0, ErrBadCellSize
	}
	return clamp(int(y/cellSize), size), clamp(int(x/cellSize), size), nil
}

func clamp(v, size int) int {
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}
