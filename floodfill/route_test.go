package floodfill_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/floodgrid/floodfill"
)

// quietLogger discards the "no route available" notice.
func quietLogger() *logrus.Logger {
	l, _ := test.NewNullLogger()
	return l
}

func at(r, c int) floodfill.Coord { return floodfill.Coord{Row: r, Col: c} }

// RouteSuite exercises the flood fill and path reconstruction.
type RouteSuite struct {
	suite.Suite
	hook *test.Hook
	log  *logrus.Logger
}

func (s *RouteSuite) SetupTest() {
	s.log, s.hook = test.NewNullLogger()
}

func (s *RouteSuite) newGrid(size int) *floodfill.Grid {
	g, err := floodfill.NewGrid(size, floodfill.WithLogger(s.log))
	require.NoError(s.T(), err)
	return g
}

// TestSmallOpenGrid covers the 5×5 scenario: end at cost 2 via the centre.
func (s *RouteSuite) TestSmallOpenGrid() {
	g := s.newGrid(5)
	g.Route()

	require.True(s.T(), g.Reached())
	require.Equal(s.T(), 2, g.MoveCost(g.End()))
	require.Equal(s.T(), []floodfill.Coord{at(3, 3), at(2, 2), at(1, 1)}, g.Path())
	require.True(s.T(), g.IsOnPath(at(2, 2)))
	require.False(s.T(), g.IsOnPath(at(2, 3)))
	require.Empty(s.T(), s.hook.Entries)
}

// TestDetour verifies the first-lower-neighbor tie-break around a wall.
func (s *RouteSuite) TestDetour() {
	g := s.newGrid(5)
	_, err := g.PlaceWall(2, 2)
	require.NoError(s.T(), err)

	g.Route()
	require.Equal(s.T(), 3, g.MoveCost(g.End()))
	require.Equal(s.T(), []floodfill.Coord{at(3, 3), at(3, 2), at(2, 1), at(1, 1)}, g.Path())
	require.Equal(s.T(), floodfill.Unreached, g.MoveCost(at(2, 2)))
}

// TestOpenGridPathEnds checks path endpoints and length on the default grid.
func (s *RouteSuite) TestOpenGridPathEnds() {
	g := s.newGrid(floodfill.DefaultSize)
	g.Route()

	path := g.Path()
	require.NotEmpty(s.T(), path)
	require.Equal(s.T(), g.End(), path[0])
	require.Equal(s.T(), g.Start(), path[len(path)-1])
	// 8-connected distance is the Chebyshev distance.
	require.Equal(s.T(), 17, g.MoveCost(g.End()))
	require.Len(s.T(), path, 18)

	for i := 1; i < len(path); i++ {
		require.Equal(s.T(), g.MoveCost(path[i-1])-1, g.MoveCost(path[i]), "step %d", i)
	}
}

// TestEndPoppedStopsExpansion checks End is the last checked cell and the
// remaining frontier is kept.
func (s *RouteSuite) TestEndPoppedStopsExpansion() {
	g := s.newGrid(floodfill.DefaultSize)
	g.Route()

	checked := g.Checked()
	require.Equal(s.T(), g.Start(), checked[0])
	require.Equal(s.T(), g.End(), checked[len(checked)-1])
	require.True(s.T(), g.IsChecked(g.End()))
	require.NotEmpty(s.T(), g.Queued())
	for _, c := range g.Queued() {
		require.True(s.T(), g.IsQueued(c))
		require.False(s.T(), g.IsChecked(c))
	}
	require.True(s.T(), g.Done())
}

// TestCostsFormBFSLayers verifies every reached cell other than Start was
// discovered from a neighbor exactly one step cheaper and has none cheaper than that.
func (s *RouteSuite) TestCostsFormBFSLayers() {
	g := s.newGrid(12)
	for _, rc := range [][2]int{{3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}, {6, 5}, {6, 6}, {6, 7}, {6, 8}, {6, 9}, {6, 10}, {6, 11}} {
		_, err := g.PlaceWall(rc[0], rc[1])
		require.NoError(s.T(), err)
	}
	g.Route()
	require.True(s.T(), g.Reached())

	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			c := at(row, col)
			cost := g.MoveCost(c)
			if cost == floodfill.Unreached || c == g.Start() {
				continue
			}
			parent := false
			for _, n := range g.Neighbors(c) {
				nc := g.MoveCost(n)
				if nc == floodfill.Unreached || g.IsWall(n) {
					continue
				}
				require.GreaterOrEqual(s.T(), nc, cost-1, "neighbor %v of %v", n, c)
				if nc == cost-1 {
					parent = true
				}
			}
			require.True(s.T(), parent, "no parent for %v", c)
		}
	}
}

// TestIdempotent verifies two Route calls on unchanged state agree.
func (s *RouteSuite) TestIdempotent() {
	g := s.newGrid(10)
	for _, rc := range [][2]int{{2, 3}, {3, 3}, {4, 3}, {5, 6}, {6, 6}, {7, 6}} {
		_, _ = g.PlaceWall(rc[0], rc[1])
	}
	g.Route()
	q, c, p := g.Queued(), g.Checked(), g.Path()

	g.Route()
	require.Equal(s.T(), q, g.Queued())
	require.Equal(s.T(), c, g.Checked())
	require.Equal(s.T(), p, g.Path())
}

// TestStartEnclosed walls every neighbor of Start; End must stay unreached.
func (s *RouteSuite) TestStartEnclosed() {
	g := s.newGrid(floodfill.DefaultSize)
	for _, n := range g.Neighbors(g.Start()) {
		_, err := g.PlaceWall(n.Row, n.Col)
		require.NoError(s.T(), err)
	}

	g.Route()
	require.False(s.T(), g.Reached())
	require.Equal(s.T(), floodfill.Unreached, g.MoveCost(g.End()))
	require.Empty(s.T(), g.Path())
	require.Empty(s.T(), g.Queued())
	require.Equal(s.T(), []floodfill.Coord{g.Start()}, g.Checked())

	entry := s.hook.LastEntry()
	require.NotNil(s.T(), entry)
	require.Equal(s.T(), logrus.InfoLevel, entry.Level)
	require.Equal(s.T(), "floodfill: no route available", entry.Message)
	require.Equal(s.T(), 1, entry.Data["checked"])
}

// TestWallAcrossGrid verifies a full column of walls splits the grid.
func (s *RouteSuite) TestWallAcrossGrid() {
	g := s.newGrid(5)
	for row := 0; row < 5; row++ {
		_, _ = g.PlaceWall(row, 2)
	}
	g.Route()
	require.False(s.T(), g.Reached())
	require.Empty(s.T(), g.Path())
	for _, c := range g.Checked() {
		require.Less(s.T(), c.Col, 2)
	}
}

// TestStepMatchesRoute verifies Begin/Step reproduce Route exactly.
func (s *RouteSuite) TestStepMatchesRoute() {
	build := func() *floodfill.Grid {
		g := s.newGrid(9)
		for _, rc := range [][2]int{{1, 3}, {2, 3}, {3, 3}, {4, 3}, {5, 5}, {6, 5}, {7, 5}} {
			_, _ = g.PlaceWall(rc[0], rc[1])
		}
		return g
	}
	want := build()
	want.Route()

	got := build()
	require.True(s.T(), got.Step(), "Step before Begin must report done")
	got.Begin()
	require.False(s.T(), got.Done())
	require.Equal(s.T(), []floodfill.Coord{got.Start()}, got.Queued())
	require.Equal(s.T(), 0, got.MoveCost(got.Start()))

	steps := 0
	for !got.Step() {
		steps++
		require.Empty(s.T(), got.Path(), "path appears only when expansion ends")
	}
	require.True(s.T(), got.Done())
	require.Equal(s.T(), len(want.Checked())-1, steps)
	require.Equal(s.T(), want.Queued(), got.Queued())
	require.Equal(s.T(), want.Checked(), got.Checked())
	require.Equal(s.T(), want.Path(), got.Path())

	v := got.Version()
	require.True(s.T(), got.Step())
	require.Equal(s.T(), v, got.Version(), "Step after done must not change state")
}

// TestClearStopsStepping verifies Clear abandons an in-flight computation.
func (s *RouteSuite) TestClearStopsStepping() {
	g := s.newGrid(6)
	g.Begin()
	require.False(s.T(), g.Step())
	g.Clear()
	require.True(s.T(), g.Done())
	require.True(s.T(), g.Step())
	require.Empty(s.T(), g.Checked())
}

func TestRouteSuite(t *testing.T) {
	suite.Run(t, new(RouteSuite))
}
