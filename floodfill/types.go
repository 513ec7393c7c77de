// Package floodfill defines core types, options, and sentinel errors
// for the flood-fill routing engine.
package floodfill

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Sentinel errors for floodfill operations.
var (
	// ErrGridTooSmall indicates a size that cannot hold distinct interior start and end cells.
	ErrGridTooSmall = errors.New("floodfill: grid size must be at least 4")
	// ErrOutOfBounds indicates a coordinate outside [0,size).
	ErrOutOfBounds = errors.New("floodfill: coordinate out of bounds")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("floodfill: invalid option supplied")
)

const (
	// MinSize is the smallest grid that keeps start and end distinct and off the border.
	MinSize = 4
	// DefaultSize is the grid dimension used by the visualizer.
	DefaultSize = 20
	// DefaultRandomTrials is the number of holes Randomize attempts to punch.
	DefaultRandomTrials = 250
	// Unreached is the move cost of a cell the current computation has not reached.
	Unreached = -1
)

// Coord addresses one cell. Row and Col are 0-indexed.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is a snapshot of one grid position. Two cells are the same position
// iff their Coords are equal; IsWall and MoveCost are not part of identity.
type Cell struct {
	Row, Col int
	IsWall   bool
	MoveCost int // Unreached (-1) or steps from start
}

// Coord returns the cell's coordinate.
func (c Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// Reached reports whether the last computation assigned c a move cost.
func (c Cell) Reached() bool {
	return c.MoveCost != Unreached
}

// Option configures a Grid via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewGrid.
type Option func(*Options)

// Options holds tunables for a Grid.
type Options struct {
	// Logger receives the non-fatal "no route available" notice.
	Logger logrus.FieldLogger

	// Rand drives Randomize.
	Rand *rand.Rand

	// RandomTrials is the number of random holes Randomize punches.
	RandomTrials int

	// OnChange is called with the new version after every state change.
	OnChange func(version uint64)

	err error
}

// DefaultOptions returns Options with:
//   - the logrus standard logger
//   - a time-seeded random source
//   - DefaultRandomTrials hole-punch trials
//   - a no-op OnChange hook
func DefaultOptions() Options {
	return Options{
		Logger:       logrus.StandardLogger(),
		Rand:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		RandomTrials: DefaultRandomTrials,
		OnChange:     func(uint64) {},
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRand sets the random source used by Randomize.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed seeds a fresh random source for Randomize, making it reproducible.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRandomTrials sets how many holes Randomize punches.
//
//	n >= 0: use n
//	n < 0:  invalid option → ErrOptionViolation
func WithRandomTrials(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: RandomTrials cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.RandomTrials = n
	}
}

// WithOnChange registers a change-notification hook.
func WithOnChange(fn func(version uint64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnChange = fn
		}
	}
}
