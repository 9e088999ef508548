// SPDX-License-Identifier: MIT
// Package: lvseg/cutgraph
//
// types.go: edges, relations, build results and the build observer.

package cutgraph

import "time"

// EdgeType tags the provenance of an edge.
type EdgeType int

// TypeNeighbor marks an edge derived from a geometric neighbor pair or from a
// classifier relation. It is the only type produced by this package.
const TypeNeighbor EdgeType = 1

// UnknownGroundTruth is the GroundTruth value of relations without a label.
const UnknownGroundTruth = -1

// Edge is one weighted pair handed to the solver.
type Edge struct {
	A, B int      // node ids, both < node count
	Type EdgeType // provenance tag
	W    float64  // primary weight: normalized color distance or P(connected)
	W2   float64  // secondary weight: normal angle in radians (grid mode only)
}

// Relation is an externally classified pairwise judgment between two nodes.
// RelProbability holds [P(connected), P(separated)].
type Relation struct {
	ID0, ID1       int
	GroundTruth    int
	Type           int
	RelProbability []float64
}

// clone returns a Relation that shares no memory with r.
func (r Relation) clone() Relation {
	out := r
	if r.RelProbability != nil {
		out.RelProbability = append([]float64(nil), r.RelProbability...)
	}
	return out
}

// Mode names the builder that produced a Result.
type Mode string

const (
	ModeGrid      Mode = "grid"
	ModeRelations Mode = "relations"
)

// Stats summarizes one build. Grid-only and relation-only counters stay zero
// in the other mode.
type Stats struct {
	Mode      Mode
	NodeCount int
	Emitted   int

	// Grid mode.
	Candidates       int     // lattice pairs examined
	PrunedInvalid    int     // pairs dropped for an undefined depth
	PrunedDepth      int     // pairs dropped by the depth gate
	AngleFallbacks   int     // emitted edges whose w2 is the fallback
	MaxColorDistance float64 // raw normalization denominator
	ZeroVariance     bool    // MaxColorDistance == 0 and the policy applied
	MaxCurvature     float64 // informational only

	// Relation mode.
	Relations int // input relations
	Repaired  int // synthesized relations
}

// Result is the explicit output of a build.
type Result struct {
	Edges    []Edge
	NumEdges int
	Stats    Stats
}

// Observer receives a summary of each successful build.
// Implementations must be safe to call from the building goroutine.
type Observer interface {
	ObserveBuild(s Stats, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveBuild(Stats, time.Duration) {}
