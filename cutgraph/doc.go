// SPDX-License-Identifier: MIT
// Package cutgraph builds the weighted edge list handed to a graph-cut /
// min-cut segmentation solver.
//
// What:
//
//   - Graph is a passive container: node count, relations, edges. It is built
//     exactly once by one of its two builders and read-only afterwards.
//   - BuildFromPointCloud weights a 4-neighbor lattice (right, down,
//     down-right, down-left) over an organized RGB-D frame. It fuses the
//     normalized color distance (w), the normal angle (w2) and a hard
//     depth-discontinuity gate.
//   - BuildFromRelations turns classifier relations into edges, after
//     repairing direct connectivity of every node to the reference node 0.
//
// Grid model (per interior pixel p, neighbor q, row-major order):
//
//	w  = |rgb(p) - rgb(q)| / max|rgb(·) - rgb(·)|     (ZeroVarianceWeight if max == 0)
//	w2 = arccos(n(p)·n(q))                             (AngleFallback if undefined)
//	emit iff valid(p) && valid(q) && |z(p) - z(q)| < DepthRatio·z(p)
//
// At the first column the down-left neighbor does not exist. That candidate
// is still gated on p+width-1, but the emitted edge joins p to its
// down-right neighbor p+width+1, which must pass the gate as well, with
// w = FirstColumnWeight and
// w2 = AngleFallback. Such an edge repeats the pair of the down-right edge
// emitted just before it.
//
// Relation model:
//
//	for i in [1, n): if no relation (0, i) exists, append (0, i, gt=-1, type=1, [1, 0])
//	edge(r) = (r.ID0, r.ID1, type=1, w=r.RelProbability[0])
//
// Determinism:
//
//   - Grid edges are emitted in row-major order, and for each pixel in
//     direction order Right, Down, DownRight, DownLeft. This holds for any
//     WithWorkers value, because rows are computed independently and
//     concatenated in row order.
//   - Repair relations are appended in ascending node order after all input
//     relations.
//
// Complexity:
//
//   - BuildFromPointCloud: O(W×H) time, O(W×H) memory for the raw distance buffer.
//   - BuildFromRelations:  O(N + R) time and memory.
//   - ToGonum / Components: O(N + E).
//
// Errors:
//
//   - ErrAlreadyBuilt:      the Graph has already been populated.
//   - ErrNilFrame:          BuildFromPointCloud received a nil frame.
//   - frame.ErrEmptyFrame:  the frame has no samples (zero Frame).
//   - ErrNodeCountMismatch: a preset node count disagrees with the frame size.
//   - ErrNegativeNodeCount: relation mode with a node count < 0.
//   - ErrNodeOutOfRange:    a relation references an id outside [0, node count).
//   - ErrInvalidRelation:   a relation carries no 2-entry probability pair.
//
// Numeric problems are never errors. An undefined depth, an angle outside
// its domain, or a frame with zero color variance is resolved with the
// documented fallback constants.
package cutgraph
