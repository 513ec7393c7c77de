// Package floodfill is the routing engine behind the grid visualizer: a
// fixed-size square grid of cells, wall editing, and a uniform-cost
// breadth-first flood fill from a fixed start cell to a fixed end cell.
//
// What:
//
//   - Grid owns a row-major arena of Cells; callers only ever see value copies.
//   - Start is fixed at (1,1) and End at (size-2,size-2). Neither can be walled.
//   - Route floods move costs outward from Start over 8-connected neighbors
//     (every step costs 1) and reconstructs a path from End back to Start.
//   - Begin/Step expose the same computation one expansion at a time.
//   - Randomize walls everything, punches random holes, then routes.
//
// Neighbor order:
//
//	left, right, up, down, upper-left, lower-left, upper-right, lower-right
//
// The order is fixed. Path reconstruction walks from End and always takes the
// first neighbor (in this order) whose cost is strictly lower, so it decides
// which of several equal-cost paths is reported.
//
// Complexity:
//
//   - Route:     O(N·8), Memory: O(N)   (N = size×size).
//   - Randomize: O(N + trials) plus Route.
//   - Queries:   O(1).
//
// Options:
//
//   - WithLogger(l):        sink for the "no route available" notice.
//   - WithRand(r), WithSeed(s): randomness used by Randomize.
//   - WithRandomTrials(n):  hole-punch attempts for Randomize (default 250).
//   - WithOnChange(fn):     called with the new Version after each change.
//
// Errors:
//
//   - ErrGridTooSmall:    size below MinSize.
//   - ErrOutOfBounds:     coordinate outside [0,size).
//   - ErrOptionViolation: invalid Option.
//
// An unreachable End is not an error: Path stays empty, Reached reports false
// and a notice is logged.
//
// A Grid is not safe for concurrent use. Callers sharing one must serialize
// access themselves (see package session).
package floodfill
