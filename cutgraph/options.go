// SPDX-License-Identifier: MIT
// Package: lvseg/cutgraph
//
// options.go: functional options for Graph builders.
//
// Contract:
//   • Options are functional (type Option func(*graphConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves MUST NOT panic.
//   • No hidden globals; everything flows through graphConfig.
//   • Values read from files should go through config.Validate first, which
//     reports errors instead of panicking.

package cutgraph

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvseg/weight"
)

// Option customizes a Graph before it is built.
type Option func(*graphConfig)

// WithLogger replaces the discarding default logger. Build summaries, repairs
// and normalization constants are logged at Debug level.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("cutgraph: WithLogger(nil)")
	}
	return func(c *graphConfig) {
		c.logger = l
	}
}

// WithObserver attaches an Observer notified after every successful build.
// Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("cutgraph: WithObserver(nil)")
	}
	return func(c *graphConfig) {
		c.observer = o
	}
}

// WithWorkers bounds the number of rows processed concurrently by
// BuildFromPointCloud. Output does not depend on n. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("cutgraph: WithWorkers(%d)", n))
	}
	return func(c *graphConfig) {
		c.workers = n
	}
}

// WithParams replaces the whole weight model. Panics if p fails Validate.
func WithParams(p weight.Params) Option {
	if err := p.Validate(); err != nil {
		panic("cutgraph: WithParams: " + err.Error())
	}
	return func(c *graphConfig) {
		c.params = p
	}
}

// WithDepthRatio sets the relative depth step admitted between neighbors.
// Panics unless r is finite and > 0.
func WithDepthRatio(r float64) Option {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		panic(fmt.Sprintf("cutgraph: WithDepthRatio(%g)", r))
	}
	return func(c *graphConfig) {
		c.params.DepthRatio = r
	}
}

// WithAngleFallback sets w2 used when no angle can be computed.
// Panics unless a ∈ [0, π].
func WithAngleFallback(a float64) Option {
	if math.IsNaN(a) || a < 0 || a > math.Pi {
		panic(fmt.Sprintf("cutgraph: WithAngleFallback(%g)", a))
	}
	return func(c *graphConfig) {
		c.params.AngleFallback = a
	}
}

// WithFirstColumnWeight sets w of the first-column down-left edge.
// Panics unless w ∈ [0, 1].
func WithFirstColumnWeight(w float64) Option {
	if !probability(w) {
		panic(fmt.Sprintf("cutgraph: WithFirstColumnWeight(%g)", w))
	}
	return func(c *graphConfig) {
		c.params.FirstColumnWeight = w
	}
}

// WithZeroVarianceWeight sets w used for every edge of a frame whose raw
// color distances are all zero. Panics unless w ∈ [0, 1].
func WithZeroVarianceWeight(w float64) Option {
	if !probability(w) {
		panic(fmt.Sprintf("cutgraph: WithZeroVarianceWeight(%g)", w))
	}
	return func(c *graphConfig) {
		c.params.ZeroVarianceWeight = w
	}
}

// WithRepairProbability sets the [P(connected), P(separated)] pair carried by
// synthesized relations. Panics unless both lie in [0, 1].
func WithRepairProbability(connected, separated float64) Option {
	if !probability(connected) || !probability(separated) {
		panic(fmt.Sprintf("cutgraph: WithRepairProbability(%g, %g)", connected, separated))
	}
	return func(c *graphConfig) {
		c.repair = [2]float64{connected, separated}
	}
}

func probability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
