// SPDX-License-Identifier: MIT
// Package: lvseg/cutgraph
//
// graph.go: the Graph container.
//
// Lifecycle:
//   • New sets the node count and optionally pre-populates relations.
//   • Exactly one of BuildFromPointCloud / BuildFromRelations populates it.
//     A failed build leaves the Graph unbuilt; a second successful build is
//     rejected with ErrAlreadyBuilt.
//   • Afterwards the Graph is read-only; accessors return copies.

package cutgraph

import "fmt"

// Graph holds the node count, relations and edges handed to the solver.
// A Graph is owned by one goroutine until built; after that it is
// safe for concurrent readers.
type Graph struct {
	nodeCount int
	relations []Relation
	edges     []Edge
	built     bool

	cfg graphConfig
}

// New returns an empty Graph. relations is deep-copied. For grid mode pass
// nodeCount = 0 (the frame defines it) or width*height.
// Complexity: O(R) for copying relations.
func New(nodeCount int, relations []Relation, opts ...Option) *Graph {
	g := &Graph{
		nodeCount: nodeCount,
		cfg:       newGraphConfig(opts...),
	}
	if len(relations) > 0 {
		g.relations = make([]Relation, len(relations))
		for i, r := range relations {
			g.relations[i] = r.clone()
		}
	}

	return g
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return g.nodeCount
}

// Relations returns a copy of the relations, including any synthesized by
// connectivity repair.
func (g *Graph) Relations() []Relation {
	out := make([]Relation, len(g.relations))
	for i, r := range g.relations {
		out[i] = r.clone()
	}
	return out
}

// Edges returns a copy of the emitted edges in insertion order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// NumEdges returns the number of emitted edges.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// Built reports whether a builder has populated the Graph.
func (g *Graph) Built() bool {
	return g.built
}

// checkUnbuilt guards the one-shot lifecycle.
func (g *Graph) checkUnbuilt(method string) error {
	if g.built {
		return fmt.Errorf("%s: %w", method, ErrAlreadyBuilt)
	}
	return nil
}

// commit stores the edges, marks the Graph built and returns a copy of the
// new state as a Result.
func (g *Graph) commit(edges []Edge, stats Stats) Result {
	g.edges = edges
	g.built = true
	stats.NodeCount = g.nodeCount
	stats.Emitted = len(edges)

	return Result{
		Edges:    g.Edges(),
		NumEdges: len(edges),
		Stats:    stats,
	}
}
