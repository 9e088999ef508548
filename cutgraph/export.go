// SPDX-License-Identifier: MIT
// Package: lvseg/cutgraph
//
// export.go: conversion to gonum graphs for solvers and diagnostics.

package cutgraph

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ToGonum converts the Graph into a weighted undirected gonum graph. Every
// node in [0, NodeCount) is present. Edge weights are W. Self-loops are
// skipped, and when a pair occurs more than once the first emitted edge wins.
// Complexity: O(N + E).
func (g *Graph) ToGonum() *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < g.nodeCount; i++ {
		wg.AddNode(simple.Node(i))
	}
	for _, e := range g.edges {
		if e.A == e.B || wg.HasEdgeBetween(int64(e.A), int64(e.B)) {
			continue
		}
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(e.A), simple.Node(e.B), e.W))
	}

	return wg
}

// Components returns the connected components of the emitted edge set. Each
// component is sorted ascending, and components are ordered by smallest id.
// A relation graph always forms one component after repair. On a grid graph,
// components separate surfaces split by depth gating.
func (g *Graph) Components() [][]int {
	cc := topo.ConnectedComponents(g.ToGonum())
	out := make([][]int, 0, len(cc))
	for _, c := range cc {
		ids := make([]int, len(c))
		for i, n := range c {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
