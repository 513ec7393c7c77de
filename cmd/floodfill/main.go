// Command floodfill builds one grid, optionally randomizes it, routes, and
// prints the result.
//
//	floodfill -size 20 -random -seed 7 -costs
//	floodfill -walls "3,0 3,1 3,2"
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/floodgrid/floodfill"
	"github.com/katalvlaran/floodgrid/render"
)

func main() {
	var (
		size   = flag.Int("size", floodfill.DefaultSize, "grid dimension")
		random = flag.Bool("random", false, "randomize walls before routing")
		seed   = flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
		trials = flag.Int("trials", floodfill.DefaultRandomTrials, "holes punched by -random")
		walls  = flag.String("walls", "", `space-separated "row,col" walls`)
		costs  = flag.Bool("costs", false, "print move costs instead of shades")
	)
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	opts := []floodfill.Option{floodfill.WithLogger(log), floodfill.WithRandomTrials(*trials)}
	if *seed != 0 {
		opts = append(opts, floodfill.WithSeed(*seed))
	}
	g, err := floodfill.NewGrid(*size, opts...)
	if err != nil {
		log.WithError(err).Error("cannot build grid")
		os.Exit(2)
	}

	if err := placeWalls(g, *walls); err != nil {
		log.WithError(err).Error("bad -walls")
		os.Exit(2)
	}
	if *random {
		g.Randomize()
	} else {
		g.Route()
	}

	var ropts []render.Option
	if *costs {
		ropts = append(ropts, render.WithCosts())
	}
	fmt.Println(render.ASCII(g, ropts...))
	if g.Reached() {
		fmt.Printf("cost %d, path %v\n", g.MoveCost(g.End()), g.Path())
	}
}

// placeWalls parses "r,c r,c ..." and places each wall.
func placeWalls(g *floodfill.Grid, list string) error {
	for _, f := range strings.Fields(list) {
		rs, cs, ok := strings.Cut(f, ",")
		if !ok {
			return fmt.Errorf("%q: want row,col", f)
		}
		row, err := strconv.Atoi(rs)
		if err != nil {
			return fmt.Errorf("%q: %w", f, err)
		}
		col, err := strconv.Atoi(cs)
		if err != nil {
			return fmt.Errorf("%q: %w", f, err)
		}
		if _, err := g.PlaceWall(row, col); err != nil {
			return fmt.Errorf("%q: %w", f, err)
		}
	}
	return nil
}
