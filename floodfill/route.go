package floodfill

import (
	"github.com/sirupsen/logrus"
)

// Route recomputes move costs from Start and, if End was reached, the path
// from End back to Start. Previous route state is discarded first.
//
// Behavior:
//  1. Clear all route state.
//  2. Seed the queue with Start at cost 0.
//  3. Pop the queue head (FIFO) into checked. Stop at End; otherwise give
//     every non-wall neighbor that is unreached, or reachable more cheaply,
//     the cost popped+1 and enqueue it.
//  4. When End is popped or the queue drains, reconstruct the path.
//
// An unreachable End is not an error: the path stays empty and a notice is
// logged. Calling Route again on an unchanged grid yields identical state.
//
// Complexity: O(N·8) time, O(N) memory (N = size×size).
func (g *Grid) Route() {
	g.begin()
	for !g.step() {
	}
	g.touch()
}

// Begin discards previous route state and seeds a new computation without
// expanding it. Drive it forward with Step.
func (g *Grid) Begin() {
	g.begin()
	g.touch()
}

// Step performs one expansion of the computation started by Begin and
// reports whether it is finished. Once finished, or if nothing was begun,
// Step changes nothing and returns true.
func (g *Grid) Step() bool {
	if g.phase != phaseExpanding {
		return true
	}
	done := g.step()
	g.touch()
	return done
}

// Done reports whether no computation is currently expanding.
func (g *Grid) Done() bool {
	return g.phase != phaseExpanding
}

// Reached reports whether the latest computation assigned End a move cost.
func (g *Grid) Reached() bool {
	return g.at(g.end).MoveCost != Unreached
}

func (g *Grid) begin() {
	g.clearRoute()
	g.at(g.start).MoveCost = 0
	g.enqueue(g.start)
	g.phase = phaseExpanding
}

// step pops one cell and floods from it. It returns true after the path has
// been selected.
func (g *Grid) step() bool {
	cur := g.dequeue()
	g.checked = append(g.checked, cur)
	g.checkedSet.Put(cur)

	if cur == g.end {
		g.finish()
		return true
	}
	g.flood(cur)
	if len(g.queue) == 0 {
		g.finish()
		return true
	}
	return false
}

// flood queues every non-wall neighbor of c worth revisiting.
func (g *Grid) flood(c Coord) {
	cost := g.at(c).MoveCost + 1
	var buf [8]Coord
	for _, n := range g.appendNeighbors(buf[:0], c) {
		cell := g.at(n)
		if cell.IsWall {
			continue
		}
		if cell.MoveCost == Unreached || cost < cell.MoveCost {
			cell.MoveCost = cost
			g.enqueue(n)
		}
	}
}

func (g *Grid) enqueue(c Coord) {
	g.queue = append(g.queue, c)
	g.queuedCount[g.index(c)]++
}

func (g *Grid) dequeue() Coord {
	c := g.queue[0]
	g.queue = g.queue[1:]
	g.queuedCount[g.index(c)]--
	return c
}

// finish ends expansion and selects the path.
func (g *Grid) finish() {
	g.phase = phaseDone
	g.selectPath()
}

// selectPath walks from End to Start, each time taking the first neighbor in
// scan order whose cost is strictly lower than the current one.
func (g *Grid) selectPath() {
	if !g.Reached() {
		g.opts.Logger.WithFields(logrus.Fields{
			"start":   g.start.String(),
			"end":     g.end.String(),
			"checked": len(g.checked),
		}).Info("floodfill: no route available")
		return
	}

	g.appendPath(g.end)
	cur := g.end
	for cur != g.start {
		next, ok := g.lowerNeighbor(cur)
		if !ok {
			// costs always descend to Start after a full expansion
			break
		}
		g.appendPath(next)
		cur = next
	}
}

// lowerNeighbor returns the first neighbor of c whose cost is reached and
// strictly below c's.
func (g *Grid) lowerNeighbor(c Coord) (Coord, bool) {
	cost := g.at(c).MoveCost
	var buf [8]Coord
	for _, n := range g.appendNeighbors(buf[:0], c) {
		nc := g.at(n).MoveCost
		if nc == Unreached {
			continue
		}
		if nc < cost {
			return n, true
		}
	}
	return Coord{}, false
}

func (g *Grid) appendPath(c Coord) {
	g.path = append(g.path, c)
	g.pathSet.Put(c)
}
