// SPDX-License-Identifier: MIT
// Package: lvseg/cutgraph
//
// grid.go: BuildFromPointCloud, the 4-neighbor lattice builder.
//
// Canonical model:
//   • Lattice cells (col,row) with col < W-1 and row < H-1, row-major.
//   • Per cell, four candidates in fixed order: Right (+1), Down (+W),
//     DownRight (+W+1), DownLeft (+W-1). At col 0 the DownLeft candidate is
//     gated on +W-1 and emitted towards +W+1, which must pass the gate too.
//   • Pass 1 fills an owned [(W-1)*(H-1)][4] raw color distance buffer and the
//     per-row maxima; the frame maximum is reduced only after every row is done.
//   • Pass 2 normalizes, computes angles, applies the depth gate, and writes
//     each row's edges into its own slot. Slots are concatenated in row order.
//
// Concurrency:
//   • Rows are independent in both passes; WithWorkers(n) bounds an errgroup.
//   • Each worker writes only its own row slot; no locks are needed.

package cutgraph

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvseg/frame"
	"github.com/katalvlaran/lvseg/weight"
)

// direction indexes the four lattice neighbors.
type direction int

const (
	dirRight direction = iota
	dirDown
	dirDownRight
	dirDownLeft
	numDirections
)

// firstColumnRaw is the raw distance recorded for the first-column
// down-left candidate. It never enters the frame maximum.
const firstColumnRaw = 1.0

// rowTally counts what one row contributed to the build.
type rowTally struct {
	candidates     int
	prunedInvalid  int
	prunedDepth    int
	angleFallbacks int
}

// gridRun holds the state of one BuildFromPointCloud invocation.
type gridRun struct {
	f       *frame.Frame
	cols    int // lattice columns, W-1
	rows    int // lattice rows, H-1
	offsets [numDirections]int
	raw     [][numDirections]float64
	rowMax  []float64
	maxRaw  float64
	edges   [][]Edge
	tallies []rowTally
}

func newGridRun(f *frame.Frame) *gridRun {
	cols, rows := f.Width()-1, f.Height()-1
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	w := f.Width()
	return &gridRun{
		f:       f,
		cols:    cols,
		rows:    rows,
		offsets: [numDirections]int{1, w, w + 1, w - 1},
		raw:     make([][numDirections]float64, cols*rows),
		rowMax:  make([]float64, rows),
		edges:   make([][]Edge, rows),
		tallies: make([]rowTally, rows),
	}
}

// BuildFromPointCloud populates the Graph from an organized frame and returns
// the emitted edges. Node ids are row-major pixel indices; the node count
// becomes f.Width()*f.Height().
//
// Only structural problems are errors (nil or empty frame, node count
// mismatch, an already-built Graph, ctx cancellation). Undefined depths, undefined angles
// and zero color variance are resolved by the configured fallbacks.
//
// Complexity: O(W×H) time; O(W×H) memory.
func (g *Graph) BuildFromPointCloud(ctx context.Context, f *frame.Frame) (Result, error) {
	if err := g.checkUnbuilt(methodPointCloud); err != nil {
		return Result{}, err
	}
	if f == nil {
		return Result{}, fmt.Errorf("%s: %w", methodPointCloud, ErrNilFrame)
	}
	if f.Empty() {
		return Result{}, fmt.Errorf("%s: %w", methodPointCloud, frame.ErrEmptyFrame)
	}
	if g.nodeCount != 0 && g.nodeCount != f.Len() {
		return Result{}, fmt.Errorf("%s: node count %d, frame %dx%d: %w",
			methodPointCloud, g.nodeCount, f.Width(), f.Height(), ErrNodeCountMismatch)
	}

	start := time.Now()
	log := g.cfg.logger
	maxCurv := f.MaxCurvature()
	log.DebugContext(ctx, "building graph from point cloud",
		"width", f.Width(), "height", f.Height(), "valid", f.ValidCount(), "max_curvature", maxCurv)

	run := newGridRun(f)
	if err := forEachRow(ctx, g.cfg.workers, run.rows, run.colorPass); err != nil {
		return Result{}, fmt.Errorf("%s: color pass: %w", methodPointCloud, err)
	}
	for _, m := range run.rowMax {
		if m > run.maxRaw {
			run.maxRaw = m
		}
	}
	log.DebugContext(ctx, "color normalization", "max_color_distance", run.maxRaw)

	if err := forEachRow(ctx, g.cfg.workers, run.rows, func(row int) error {
		run.edgePass(g.cfg, row)
		return nil
	}); err != nil {
		return Result{}, fmt.Errorf("%s: edge pass: %w", methodPointCloud, err)
	}

	stats := Stats{
		Mode:             ModeGrid,
		MaxColorDistance: run.maxRaw,
		ZeroVariance:     run.maxRaw == 0 && run.cols*run.rows > 0,
		MaxCurvature:     maxCurv,
	}
	total := 0
	for row := range run.edges {
		total += len(run.edges[row])
		t := run.tallies[row]
		stats.Candidates += t.candidates
		stats.PrunedInvalid += t.prunedInvalid
		stats.PrunedDepth += t.prunedDepth
		stats.AngleFallbacks += t.angleFallbacks
	}
	edges := make([]Edge, 0, total)
	for _, rowEdges := range run.edges {
		edges = append(edges, rowEdges...)
	}

	g.nodeCount = f.Len()
	res := g.commit(edges, stats)
	elapsed := time.Since(start)
	log.DebugContext(ctx, "graph built from point cloud",
		"edges", res.NumEdges,
		"candidates", stats.Candidates,
		"pruned_invalid", stats.PrunedInvalid,
		"pruned_depth", stats.PrunedDepth,
		"angle_fallbacks", stats.AngleFallbacks,
		"zero_variance", stats.ZeroVariance,
		"elapsed", elapsed)
	g.cfg.observer.ObserveBuild(res.Stats, elapsed)

	return res, nil
}

// colorPass computes the raw color distances of one lattice row and its maximum.
func (r *gridRun) colorPass(row int) error {
	rowMax := 0.0
	for col := 0; col < r.cols; col++ {
		idx := r.f.Index(col, row)
		cell := &r.raw[row*r.cols+col]
		c0 := r.f.Point(idx).Color()
		for d := dirRight; d < numDirections; d++ {
			if d == dirDownLeft && col == 0 {
				cell[d] = firstColumnRaw
				continue
			}
			dist := weight.ColorDistance(c0, r.f.Point(idx+r.offsets[d]).Color())
			cell[d] = dist
			if dist > rowMax {
				rowMax = dist
			}
		}
	}
	r.rowMax[row] = rowMax

	return nil
}

// edgePass emits the surviving edges of one lattice row into its slot.
func (r *gridRun) edgePass(cfg graphConfig, row int) {
	params := cfg.params
	var (
		t   rowTally
		out []Edge
	)
	for col := 0; col < r.cols; col++ {
		idx := r.f.Index(col, row)
		p := r.f.Point(idx)
		cell := r.raw[row*r.cols+col]
		for d := dirRight; d < numDirections; d++ {
			q := idx + r.offsets[d]
			t.candidates++

			// Hard pruning: both endpoints must carry depth and lie on one surface.
			pq := r.f.Point(q)
			if !p.Valid() || !pq.Valid() {
				t.prunedInvalid++
				continue
			}
			if !params.Continuous(p.Z, pq.Z) {
				t.prunedDepth++
				continue
			}

			e := Edge{A: idx, B: q, Type: TypeNeighbor}
			if d == dirDownLeft && col == 0 {
				// No down-left neighbor exists. After the gate on +W-1 the edge
				// joins the down-right neighbor, which must pass the gate too.
				e.B = idx + r.offsets[dirDownRight]
				pb := r.f.Point(e.B)
				if !pb.Valid() {
					t.prunedInvalid++
					continue
				}
				if !params.Continuous(p.Z, pb.Z) {
					t.prunedDepth++
					continue
				}
				e.W = params.FirstColumnWeight
				e.W2 = params.AngleFallback
				t.angleFallbacks++
			} else {
				var fellBack bool
				e.W = params.Normalize(cell[d], r.maxRaw)
				e.W2, fellBack = params.Angle(r.f.Normal(idx).Vec(), r.f.Normal(q).Vec(), true, true)
				if fellBack {
					t.angleFallbacks++
				}
			}
			out = append(out, e)
		}
	}
	r.edges[row] = out
	r.tallies[row] = t
}

// forEachRow runs fn for every row in [0, rows) with at most workers rows in
// flight. It returns ctx.Err() if the context is done before a row starts.
func forEachRow(ctx context.Context, workers, rows int, fn func(row int) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for row := 0; row < rows; row++ {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			return fn(row)
		})
	}

	return eg.Wait()
}
