// Package floodgrid is a grid visualizer's routing core and the thin layers
// around it: paint walls on a fixed square grid, flood move costs outward
// from a fixed start, and trace a shortest path back from a fixed end.
//
// What is in here?
//
//	floodfill/       Cell, Grid, wall editing, Route / Begin / Step, queries
//	render/          shade classification and ASCII output
//	brush/           drag-to-paint stroke state machine
//	session/         UUID-keyed grids with serialized access
//	api/             gin router and the grid controller (api/grid)
//	config/          environment and .env configuration
//	cmd/floodfill    one-shot CLI
//	cmd/floodfilld   HTTP server
//
// Quick ASCII example (5×5, wall at the centre):
//
//	.....
//	.S...
//	.*#..
//	..*Eo
//	oooo-
//
// Every step, orthogonal or diagonal, costs 1.
package floodgrid
