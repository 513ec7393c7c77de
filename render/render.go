// Package render turns a floodfill.Grid into something a human can look at.
//
// Every cell is classified into exactly one Shade, checked in priority order:
// start, end, wall, path, queued, checked, open. ASCII draws one rune per
// cell, or the move cost of each non-wall cell when WithCosts is given.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/floodgrid/floodfill"
)

// Shade is the display class of one cell.
type Shade int

const (
	ShadeOpen Shade = iota
	ShadeStart
	ShadeEnd
	ShadeWall
	ShadePath
	ShadeQueued
	ShadeChecked
)

var shadeNames = [...]string{
	ShadeOpen:    "open",
	ShadeStart:   "start",
	ShadeEnd:     "end",
	ShadeWall:    "wall",
	ShadePath:    "path",
	ShadeQueued:  "queued",
	ShadeChecked: "checked",
}

var shadeGlyphs = [...]rune{
	ShadeOpen:    '-',
	ShadeStart:   'S',
	ShadeEnd:     'E',
	ShadeWall:    '#',
	ShadePath:    '*',
	ShadeQueued:  'o',
	ShadeChecked: '.',
}

// String returns the lowercase shade name.
func (s Shade) String() string {
	if s < 0 || int(s) >= len(shadeNames) {
		return fmt.Sprintf("Shade(%d)", int(s))
	}
	return shadeNames[s]
}

// Glyph returns the rune ASCII uses for s.
func (s Shade) Glyph() rune {
	if s < 0 || int(s) >= len(shadeGlyphs) {
		return '?'
	}
	return shadeGlyphs[s]
}

// Classify returns the shade of c. Start and end win over everything else,
// then walls, then path, queued and checked membership.
// Complexity: O(1).
func Classify(g *floodfill.Grid, c floodfill.Coord) Shade {
	switch {
	case g.IsStart(c):
		return ShadeStart
	case g.IsEnd(c):
		return ShadeEnd
	case g.IsWall(c):
		return ShadeWall
	case g.IsOnPath(c):
		return ShadePath
	case g.IsQueued(c):
		return ShadeQueued
	case g.IsChecked(c):
		return ShadeChecked
	default:
		return ShadeOpen
	}
}

// Option configures ASCII output.
type Option func(*options)

type options struct {
	costs bool
}

// WithCosts prints each non-wall cell's move cost, three columns wide.
func WithCosts() Option {
	return func(o *options) { o.costs = true }
}

// Lines renders g one string per row.
// Complexity: O(W·H).
func Lines(g *floodfill.Grid, opts ...Option) []string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Size()
	lines := make([]string, n)
	var sb strings.Builder
	for row := 0; row < n; row++ {
		sb.Reset()
		for col := 0; col < n; col++ {
			c := floodfill.Coord{Row: row, Col: col}
			shade := Classify(g, c)
			if !o.costs {
				sb.WriteRune(shade.Glyph())
				continue
			}
			if shade == ShadeWall {
				sb.WriteString("  #")
				continue
			}
			fmt.Fprintf(&sb, "%3d", g.MoveCost(c))
		}
		lines[row] = sb.String()
	}
	return lines
}

// ASCII renders g as newline-separated rows.
func ASCII(g *floodfill.Grid, opts ...Option) string {
	return strings.Join(Lines(g, opts...), "\n")
}
