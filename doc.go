// Package lvseg builds the weighted graphs consumed by graph-cut
// segmentation of organized RGB-D frames.
//
// 🚀 What is lvseg?
//
//	A small, deterministic construction stage between perception and a
//	min-cut solver. It turns either
//		• an organized frame (colored 3D samples + per-sample normals), or
//		• a set of classifier relations between segment ids
//	into an ordered edge list (a, b, type, w, w2).
//
// Grid mode fuses normalized color distance (w), normal angle (w2) and a
// depth-discontinuity gate over a 4-neighbor lattice. Relation mode keeps
// the classifier's P(connected) as w and repairs missing direct links to
// node 0 so the solver always sees one connected graph.
//
// Packages:
//
//	weight/   color distance, normal angle, depth gate, normalization
//	frame/    organized frame model, validation, row-major indexing
//	cutgraph/ Graph container, grid and relation builders, gonum export
//	config/   HCL configuration of the weight model and builder knobs
//	metrics/  Prometheus recorder for build statistics
//	graphio/  JSON frame and relation readers, result writers
//	cmd/lvseg command-line front end
//
// Quick ASCII example of the lattice around pixel p (W = frame width):
//
//	p ──── p+1
//	│ ╲
//	│   ╲
//	p+W   p+W+1      and p ── p+W-1 (down-left)
//
//	go get github.com/katalvlaran/lvseg
package lvseg
