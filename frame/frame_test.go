package frame_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseg/frame"
)

func flat(n int) ([]frame.Point, []frame.Normal) {
	pts := make([]frame.Point, n)
	nrm := make([]frame.Normal, n)
	for i := range pts {
		pts[i] = frame.Point{Z: 1}
		nrm[i] = frame.Normal{Z: 1}
	}
	return pts, nrm
}

//----------------------------------------------------------------------------//
// New / From2D
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or mis-sized buffers.
func TestNew_Errors(t *testing.T) {
	pts4, nrm4 := flat(4)
	pts3, nrm3 := flat(3)
	cases := []struct {
		name    string
		w, h    int
		pts     []frame.Point
		normals []frame.Normal
		err     error
	}{
		{"ZeroWidth", 0, 2, nil, nil, frame.ErrEmptyFrame},
		{"NegativeHeight", 2, -1, nil, nil, frame.ErrEmptyFrame},
		{"ShortPoints", 2, 2, pts3, nrm4, frame.ErrSizeMismatch},
		{"ShortNormals", 2, 2, pts4, nrm3, frame.ErrSizeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := frame.New(tc.w, tc.h, tc.pts, tc.normals)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.w, tc.h, err, tc.err)
			}
		})
	}
}

// TestNew_CopiesInput ensures later caller mutation does not leak into the frame.
func TestNew_CopiesInput(t *testing.T) {
	pts, nrm := flat(4)
	f, err := frame.New(2, 2, pts, nrm)
	require.NoError(t, err)

	pts[0].Z = math.NaN()
	nrm[0].Curvature = 9
	assert.True(t, f.Point(0).Valid())
	assert.Equal(t, 0.0, f.Normal(0).Curvature)
}

// TestFrom2D_Errors covers empty and jagged per-row inputs.
func TestFrom2D_Errors(t *testing.T) {
	if _, err := frame.From2D(nil, nil); !errors.Is(err, frame.ErrEmptyFrame) {
		t.Errorf("nil rows: got %v; want ErrEmptyFrame", err)
	}
	jagged := [][]frame.Point{{{Z: 1}, {Z: 1}}, {{Z: 1}}}
	jaggedN := [][]frame.Normal{{{}, {}}, {{}}}
	if _, err := frame.From2D(jagged, jaggedN); !errors.Is(err, frame.ErrNonRectangular) {
		t.Errorf("jagged rows: got %v; want ErrNonRectangular", err)
	}
	rows := [][]frame.Point{{{Z: 1}}, {{Z: 1}}}
	if _, err := frame.From2D(rows, [][]frame.Normal{{{}}}); !errors.Is(err, frame.ErrSizeMismatch) {
		t.Errorf("missing normal row: got %v; want ErrSizeMismatch", err)
	}
}

// TestFrom2D_RowMajor checks that rows are flattened in row-major order.
func TestFrom2D_RowMajor(t *testing.T) {
	rows := [][]frame.Point{
		{{X: 0, Z: 1}, {X: 1, Z: 1}, {X: 2, Z: 1}},
		{{X: 3, Z: 1}, {X: 4, Z: 1}, {X: 5, Z: 1}},
	}
	normals := [][]frame.Normal{make([]frame.Normal, 3), make([]frame.Normal, 3)}
	f, err := frame.From2D(rows, normals)
	require.NoError(t, err)

	require.Equal(t, 3, f.Width())
	require.Equal(t, 2, f.Height())
	require.Equal(t, 6, f.Len())
	for i := 0; i < f.Len(); i++ {
		assert.Equal(t, float64(i), f.Point(i).X)
		col, row := f.Coordinate(i)
		assert.Equal(t, i, f.Index(col, row))
	}
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// TestEmpty covers frames from New and the zero Frame.
func TestEmpty(t *testing.T) {
	pts, nrm := flat(6)
	f, err := frame.New(3, 2, pts, nrm)
	require.NoError(t, err)
	assert.False(t, f.Empty())
	assert.Equal(t, 3, f.Width())
	assert.Equal(t, 2, f.Height())

	var zero frame.Frame
	assert.True(t, zero.Empty())
	assert.Zero(t, zero.Len())
}

// TestValidityAndCurvature covers ValidCount and MaxCurvature over invalid samples.
func TestValidityAndCurvature(t *testing.T) {
	pts := []frame.Point{{Z: 1}, {Z: math.NaN()}, {Z: math.Inf(1)}, {Z: 2}}
	nrm := []frame.Normal{{Curvature: 0.2}, {Curvature: 5}, {Curvature: 7}, {Curvature: math.NaN()}}
	f, err := frame.New(2, 2, pts, nrm)
	require.NoError(t, err)

	assert.Equal(t, 2, f.ValidCount())
	assert.InDelta(t, 0.2, f.MaxCurvature(), 1e-12, "curvature of invalid samples is ignored")
}

// TestPointColor checks channel normalization.
func TestPointColor(t *testing.T) {
	c := frame.Point{R: 255, G: 0, B: 51}.Color()
	assert.InDelta(t, 1.0, c.R, 1e-12)
	assert.InDelta(t, 0.0, c.G, 1e-12)
	assert.InDelta(t, 0.2, c.B, 1e-12)
}
