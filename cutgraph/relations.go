// SPDX-License-Identifier: MIT
// Package: lvseg/cutgraph
//
// relations.go: BuildFromRelations, the classifier relation builder.
//
// Contract:
//   • Every relation must reference ids in [0, node count) and carry exactly
//     two probabilities [P(connected), P(separated)]; violations are errors.
//   • Connectivity repair: each node i in [1, n) without a DIRECT relation
//     (ID0 = 0, ID1 = i) gets a synthesized relation carrying the configured
//     repair pair (default [1.0, 0.0]). Reachability through other nodes does
//     not count.
//   • Repairs are appended in ascending i after all input relations. Which
//     repairs fire depends only on n and the set of (0, i) relations, never on
//     input order.
//   • One edge per relation, in relation order: (ID0, ID1, TypeNeighbor,
//     W = RelProbability[0], W2 = 0).
//
// Complexity: O(N + R) time and memory.

package cutgraph

import (
	"fmt"
	"time"
)

// relationProbabilities is the required length of Relation.RelProbability.
const relationProbabilities = 2

// BuildFromRelations populates the Graph from its relations, repairing direct
// connectivity to node 0 first, and returns the emitted edges.
func (g *Graph) BuildFromRelations() (Result, error) {
	if err := g.checkUnbuilt(methodRelations); err != nil {
		return Result{}, err
	}
	n := g.nodeCount
	if n < 0 {
		return Result{}, fmt.Errorf("%s: node count %d: %w", methodRelations, n, ErrNegativeNodeCount)
	}
	for i, r := range g.relations {
		if err := validateRelation(r, n); err != nil {
			return Result{}, fmt.Errorf("%s: relation %d (%d-%d): %w", methodRelations, i, r.ID0, r.ID1, err)
		}
	}

	start := time.Now()
	log := g.cfg.logger
	log.Debug("building graph from relations", "nodes", n, "relations", len(g.relations))
	for i, r := range g.relations {
		log.Debug("input relation", "index", i, "id_0", r.ID0, "id_1", r.ID1)
	}

	// Direct adjacency to the reference node only.
	linked := make([]bool, n)
	for _, r := range g.relations {
		if r.ID0 == 0 {
			linked[r.ID1] = true
		}
	}
	inputCount := len(g.relations)
	repaired := 0
	for i := 1; i < n; i++ {
		if linked[i] {
			continue
		}
		log.Debug("node without relation to reference node, adding relation", "id_0", 0, "id_1", i)
		g.relations = append(g.relations, Relation{
			ID0:            0,
			ID1:            i,
			GroundTruth:    UnknownGroundTruth,
			Type:           int(TypeNeighbor),
			RelProbability: []float64{g.cfg.repair[0], g.cfg.repair[1]},
		})
		repaired++
	}

	edges := make([]Edge, len(g.relations))
	for i, r := range g.relations {
		edges[i] = Edge{
			A:    r.ID0,
			B:    r.ID1,
			Type: TypeNeighbor,
			W:    r.RelProbability[0],
		}
	}

	res := g.commit(edges, Stats{
		Mode:      ModeRelations,
		Relations: inputCount,
		Repaired:  repaired,
	})
	elapsed := time.Since(start)
	log.Debug("graph built from relations",
		"edges", res.NumEdges, "relations", inputCount, "repaired", repaired, "elapsed", elapsed)
	g.cfg.observer.ObserveBuild(res.Stats, elapsed)

	return res, nil
}

// BuildFromSVM is BuildFromRelations under the name used by pipelines whose
// relations come from an SVM predictor.
func (g *Graph) BuildFromSVM() (Result, error) {
	return g.BuildFromRelations()
}

func validateRelation(r Relation, n int) error {
	if r.ID0 < 0 || r.ID0 >= n || r.ID1 < 0 || r.ID1 >= n {
		return fmt.Errorf("node count %d: %w", n, ErrNodeOutOfRange)
	}
	if len(r.RelProbability) != relationProbabilities {
		return fmt.Errorf("%d probabilities: %w", len(r.RelProbability), ErrInvalidRelation)
	}

	return nil
}
