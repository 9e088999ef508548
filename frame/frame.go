package frame

import (
	"fmt"
	"math"
)

// New builds a Frame from row-major point and normal buffers.
// Both buffers are copied; the caller keeps ownership of its slices.
// Returns ErrEmptyFrame if width or height is < 1, and ErrSizeMismatch if
// either buffer length differs from width*height.
// Complexity: O(W×H) time and memory.
func New(width, height int, points []Point, normals []Normal) (*Frame, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("frame: %dx%d: %w", width, height, ErrEmptyFrame)
	}
	n := width * height
	if len(points) != n {
		return nil, fmt.Errorf("frame: %d points for %dx%d: %w", len(points), width, height, ErrSizeMismatch)
	}
	if len(normals) != n {
		return nil, fmt.Errorf("frame: %d normals for %dx%d: %w", len(normals), width, height, ErrSizeMismatch)
	}

	f := &Frame{
		width:   width,
		height:  height,
		points:  make([]Point, n),
		normals: make([]Normal, n),
	}
	copy(f.points, points)
	copy(f.normals, normals)

	return f, nil
}

// From2D builds a Frame from per-row sequences, points[row][col].
// Rows must be non-empty and rectangular, and normals must have the same shape.
func From2D(points [][]Point, normals [][]Normal) (*Frame, error) {
	if len(points) == 0 || len(points[0]) == 0 {
		return nil, ErrEmptyFrame
	}
	h, w := len(points), len(points[0])
	if len(normals) != h {
		return nil, fmt.Errorf("frame: %d normal rows for %d point rows: %w", len(normals), h, ErrSizeMismatch)
	}
	flatP := make([]Point, 0, w*h)
	flatN := make([]Normal, 0, w*h)
	for row := 0; row < h; row++ {
		if len(points[row]) != w || len(normals[row]) != w {
			return nil, ErrNonRectangular
		}
		flatP = append(flatP, points[row]...)
		flatN = append(flatN, normals[row]...)
	}

	return New(w, h, flatP, flatN)
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Frame) Height() int {
	return f.height
}

// Len returns the number of samples, Width*Height.
func (f *Frame) Len() int {
	return f.width * f.height
}

// Empty reports whether f has no samples. This holds for the zero Frame,
// which was not produced by New or From2D.
func (f *Frame) Empty() bool {
	return f.width < 1 || f.height < 1 || len(f.points) != f.Len() || len(f.normals) != f.Len()
}

// Index maps (col,row) to a row-major index: row*Width + col.
func (f *Frame) Index(col, row int) int {
	return row*f.width + col
}

// Coordinate converts a row-major index back to (col,row).
func (f *Frame) Coordinate(idx int) (col, row int) {
	return idx % f.width, idx / f.width
}

// Point returns the sample at row-major index idx.
func (f *Frame) Point(idx int) Point {
	return f.points[idx]
}

// Normal returns the normal at row-major index idx.
func (f *Frame) Normal(idx int) Normal {
	return f.normals[idx]
}

// ValidCount returns the number of samples with a defined depth.
func (f *Frame) ValidCount() int {
	n := 0
	for _, p := range f.points {
		if p.Valid() {
			n++
		}
	}

	return n
}

// MaxCurvature returns the largest curvature among valid samples, or 0 when
// the frame has none. NaN curvatures are ignored.
func (f *Frame) MaxCurvature() float64 {
	maxCurv := 0.0
	for i, p := range f.points {
		if !p.Valid() {
			continue
		}
		c := f.normals[i].Curvature
		if !math.IsNaN(c) && c > maxCurv {
			maxCurv = c
		}
	}

	return maxCurv
}
