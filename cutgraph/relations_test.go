package cutgraph_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseg/cutgraph"
)

// TestBuildFromRelations_SingleRepair is the canonical n=3 scenario: one
// relation (0,1) triggers exactly one synthetic relation (0,2).
func TestBuildFromRelations_SingleRepair(t *testing.T) {
	g := cutgraph.New(3, []cutgraph.Relation{rel(0, 1, 0.7)})
	res, err := g.BuildFromRelations()
	require.NoError(t, err)

	require.Equal(t, 2, res.NumEdges)
	require.Equal(t, []cutgraph.Edge{
		{A: 0, B: 1, Type: cutgraph.TypeNeighbor, W: 0.7},
		{A: 0, B: 2, Type: cutgraph.TypeNeighbor, W: 1.0},
	}, res.Edges)

	rels := g.Relations()
	require.Len(t, rels, 2)
	require.Equal(t, cutgraph.Relation{
		ID0: 0, ID1: 2, GroundTruth: -1, Type: 1, RelProbability: []float64{1.0, 0.0},
	}, rels[1])
	require.Equal(t, 1, res.Stats.Relations)
	require.Equal(t, 1, res.Stats.Repaired)
	require.Equal(t, cutgraph.ModeRelations, res.Stats.Mode)
}

// TestBuildFromRelations_DirectAdjacencyOnly verifies that transitive paths and
// reversed relations do not satisfy the repair check.
func TestBuildFromRelations_DirectAdjacencyOnly(t *testing.T) {
	cases := []struct {
		name    string
		rels    []cutgraph.Relation
		repairs [][2]int
	}{
		{"transitive", []cutgraph.Relation{rel(0, 1, .9), rel(1, 2, .9)}, [][2]int{{0, 2}}},
		{"reversed", []cutgraph.Relation{rel(0, 1, .9), rel(2, 0, .9)}, [][2]int{{0, 2}}},
		{"complete", []cutgraph.Relation{rel(0, 2, .1), rel(0, 1, .2)}, [][2]int{}},
		{"none", nil, [][2]int{{0, 1}, {0, 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := cutgraph.New(3, tc.rels).BuildFromRelations()
			require.NoError(t, err)
			require.Equal(t, len(tc.rels)+len(tc.repairs), res.NumEdges)
			got := pairs(res.Edges[len(tc.rels):])
			require.Equal(t, tc.repairs, got)
			for _, e := range res.Edges[len(tc.rels):] {
				require.Equal(t, 1.0, e.W)
			}
		})
	}
}

// TestBuildFromRelations_Connectivity checks the invariant on random relation
// sets: every node in [1,n) has an edge from node 0, and the graph forms one
// component.
func TestBuildFromRelations_Connectivity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(30)
		var rels []cutgraph.Relation
		for k := rng.Intn(3 * n); k > 0; k-- {
			rels = append(rels, rel(rng.Intn(n), rng.Intn(n), rng.Float64()))
		}
		g := cutgraph.New(n, rels)
		res, err := g.BuildFromRelations()
		require.NoError(t, err)

		fromRoot := make(map[int]bool)
		for _, e := range res.Edges {
			require.Less(t, e.A, n)
			require.Less(t, e.B, n)
			if e.A == 0 {
				fromRoot[e.B] = true
			}
		}
		for i := 1; i < n; i++ {
			require.Truef(t, fromRoot[i], "trial %d: node %d not linked to 0", trial, i)
		}
		require.Len(t, g.Components(), 1)
	}
}

// TestBuildFromRelations_Idempotent verifies that fresh builds of the same
// input produce identical edges, and that input order does not change which
// repairs fire.
func TestBuildFromRelations_Idempotent(t *testing.T) {
	input := []cutgraph.Relation{rel(0, 3, .4), rel(2, 4, .6), rel(0, 1, .5), rel(4, 0, .3)}

	first, err := cutgraph.New(6, input).BuildFromRelations()
	require.NoError(t, err)
	second, err := cutgraph.New(6, input).BuildFromRelations()
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("rebuild differs (-first +second):\n%s", diff)
	}

	shuffled := []cutgraph.Relation{input[3], input[1], input[2], input[0]}
	third, err := cutgraph.New(6, shuffled).BuildFromRelations()
	require.NoError(t, err)
	require.Equal(t, pairs(first.Edges[len(input):]), pairs(third.Edges[len(input):]))
	require.Equal(t, [][2]int{{0, 2}, {0, 4}, {0, 5}}, pairs(first.Edges[len(input):]))
}

// TestBuildFromRelations_InputNotMutated ensures New copies relations.
func TestBuildFromRelations_InputNotMutated(t *testing.T) {
	input := []cutgraph.Relation{rel(0, 1, .5)}
	g := cutgraph.New(4, input)
	input[0].RelProbability[0] = 0.99

	res, err := g.BuildFromRelations()
	require.NoError(t, err)
	assert.Equal(t, 0.5, res.Edges[0].W)
	assert.Len(t, input, 1)

	rels := g.Relations()
	rels[0].RelProbability[0] = 0
	assert.Equal(t, 0.5, g.Relations()[0].RelProbability[0])
}

// TestBuildFromRelations_Options covers a custom repair pair and the SVM alias.
func TestBuildFromRelations_Options(t *testing.T) {
	obs := &recordingObserver{}
	g := cutgraph.New(2, nil, cutgraph.WithRepairProbability(0.9, 0.1), cutgraph.WithObserver(obs))
	res, err := g.BuildFromSVM()
	require.NoError(t, err)

	require.Equal(t, []cutgraph.Edge{{A: 0, B: 1, Type: 1, W: 0.9}}, res.Edges)
	require.Equal(t, []float64{0.9, 0.1}, g.Relations()[0].RelProbability)
	require.Len(t, obs.stats, 1)
	require.Equal(t, 1, obs.stats[0].Repaired)
}

// TestBuildFromRelations_Trivial covers empty and single-node graphs.
func TestBuildFromRelations_Trivial(t *testing.T) {
	for _, n := range []int{0, 1} {
		res, err := cutgraph.New(n, nil).BuildFromRelations()
		require.NoError(t, err)
		require.Zero(t, res.NumEdges)
		require.Zero(t, res.Stats.Repaired)
	}
}

// TestBuildFromRelations_Errors verifies sentinel classification of bad input.
func TestBuildFromRelations_Errors(t *testing.T) {
	cases := []struct {
		name string
		n    int
		rels []cutgraph.Relation
		want error
	}{
		{"negative node count", -1, nil, cutgraph.ErrNegativeNodeCount},
		{"id beyond count", 3, []cutgraph.Relation{rel(0, 3, .5)}, cutgraph.ErrNodeOutOfRange},
		{"negative id", 3, []cutgraph.Relation{rel(-1, 2, .5)}, cutgraph.ErrNodeOutOfRange},
		{"no probabilities", 3, []cutgraph.Relation{{ID0: 0, ID1: 1}}, cutgraph.ErrInvalidRelation},
		{"one probability", 3, []cutgraph.Relation{{ID0: 0, ID1: 1, RelProbability: []float64{1}}}, cutgraph.ErrInvalidRelation},
		{"relations without nodes", 0, []cutgraph.Relation{rel(0, 0, .5)}, cutgraph.ErrNodeOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := cutgraph.New(tc.n, tc.rels)
			_, err := g.BuildFromRelations()
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
			require.False(t, g.Built())
		})
	}
}

// TestOptions_Panics verifies that option constructors reject meaningless values.
func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { cutgraph.WithLogger(nil) })
	require.Panics(t, func() { cutgraph.WithObserver(nil) })
	require.Panics(t, func() { cutgraph.WithWorkers(0) })
	require.Panics(t, func() { cutgraph.WithDepthRatio(0) })
	require.Panics(t, func() { cutgraph.WithAngleFallback(-1) })
	require.Panics(t, func() { cutgraph.WithFirstColumnWeight(2) })
	require.Panics(t, func() { cutgraph.WithZeroVarianceWeight(-0.5) })
	require.Panics(t, func() { cutgraph.WithRepairProbability(1.5, 0) })
	require.NotPanics(t, func() { cutgraph.WithRepairProbability(0.5, 0.5) })
}
