// Package frame defines the organized RGB-D frame consumed by the grid
// builder: a width×height lattice of colored 3D samples with a parallel
// lattice of unit surface normals.
package frame

import (
	"errors"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvseg/weight"
)

// Sentinel errors for frame construction.
var (
	// ErrEmptyFrame indicates a frame with no rows or no columns.
	ErrEmptyFrame = errors.New("frame: frame must have at least one row and one column")
	// ErrSizeMismatch indicates a sample buffer whose length differs from width*height.
	ErrSizeMismatch = errors.New("frame: buffer length does not match width*height")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("frame: all rows must have the same length")
)

// Point is a single organized sample. A NaN (or infinite) Z marks the sample
// as invalid: the sensor produced no depth for that pixel.
type Point struct {
	X, Y, Z float64 // position in the sensor frame
	R, G, B uint8   // color
}

// Valid reports whether the sample carries a defined depth.
func (p Point) Valid() bool {
	return !math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}

// Color returns the sample color with channels normalized to [0,1].
func (p Point) Color() colorful.Color {
	return weight.RGB(p.R, p.G, p.B)
}

// Normal is the surface normal estimated at a sample. Curvature is carried
// along from normal estimation but takes no part in edge weighting.
type Normal struct {
	X, Y, Z   float64
	Curvature float64
}

// Vec returns the normal direction as an r3.Vec.
func (n Normal) Vec() r3.Vec {
	return r3.Vec{X: n.X, Y: n.Y, Z: n.Z}
}

// Frame is an organized point grid. It is immutable once built: both sample
// buffers are owned, row-major, and exactly Width*Height long.
type Frame struct {
	width, height int

	points  []Point
	normals []Normal
}
