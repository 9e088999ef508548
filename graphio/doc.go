// Package graphio reads frames and relation sets from JSON and writes build
// results for the downstream solver.
//
// Frame document:
//
//	{"width": 2, "height": 1,
//	 "points":  [{"x": 0, "y": 0, "z": 1.2, "r": 255, "g": 0, "b": 0}, {"x": 1, "y": 0, "z": null, ...}],
//	 "normals": [{"x": 0, "y": 0, "z": 1, "curvature": 0.01}, ...]}
//
// A null "z" marks a sample without depth; a null normal component marks an
// undefined normal. Both are stored as NaN.
//
// Relation document:
//
//	{"node_count": 3,
//	 "relations": [{"id_0": 0, "id_1": 1, "ground_truth": -1, "type": 1, "rel_probability": [0.8, 0.2]}]}
//
// Missing "ground_truth" defaults to -1 and missing "type" to 1.
//
// Results are written either as JSON or as a plain edge list with one
// "a b type w w2" line per edge.
package graphio
