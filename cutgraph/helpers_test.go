package cutgraph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseg/cutgraph"
	"github.com/katalvlaran/lvseg/frame"
)

// sampleFn describes the sample and normal at (col,row).
type sampleFn func(col, row int) (frame.Point, frame.Normal)

// mkFrame builds a w×h frame from fn.
func mkFrame(t testing.TB, w, h int, fn sampleFn) *frame.Frame {
	t.Helper()
	pts := make([]frame.Point, 0, w*h)
	nrm := make([]frame.Normal, 0, w*h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			p, n := fn(col, row)
			pts = append(pts, p)
			nrm = append(nrm, n)
		}
	}
	f, err := frame.New(w, h, pts, nrm)
	require.NoError(t, err)
	return f
}

// flatSurface is a fronto-parallel plane at depth 1 with upward normals and one color.
func flatSurface(col, row int) (frame.Point, frame.Normal) {
	return frame.Point{X: float64(col), Y: float64(row), Z: 1, R: 90, G: 120, B: 30},
		frame.Normal{Z: 1}
}

// noisyFrame is a deterministic pseudo-random frame with invalid samples,
// depth steps and perturbed normals.
func noisyFrame(t testing.TB, w, h int, seed int64) *frame.Frame {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	return mkFrame(t, w, h, func(col, row int) (frame.Point, frame.Normal) {
		z := 1.0 + 0.004*rng.Float64()
		if col > w/2 {
			z += 0.5
		}
		if rng.Intn(10) == 0 {
			z = math.NaN()
		}
		nx, ny := 0.3*rng.Float64(), 0.3*rng.Float64()
		nz := math.Sqrt(1 - nx*nx - ny*ny)
		return frame.Point{
				X: float64(col), Y: float64(row), Z: z,
				R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256)),
			},
			frame.Normal{X: nx, Y: ny, Z: nz, Curvature: rng.Float64()}
	})
}

// pairs projects edges onto their (A,B) endpoints.
func pairs(edges []cutgraph.Edge) [][2]int {
	out := make([][2]int, len(edges))
	for i, e := range edges {
		out[i] = [2]int{e.A, e.B}
	}
	return out
}

func rel(a, b int, pConnected float64) cutgraph.Relation {
	return cutgraph.Relation{
		ID0:            a,
		ID1:            b,
		GroundTruth:    cutgraph.UnknownGroundTruth,
		Type:           1,
		RelProbability: []float64{pConnected, 1 - pConnected},
	}
}
