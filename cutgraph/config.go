// SPDX-License-Identifier: MIT
// Package: lvseg/cutgraph
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • params   = weight.DefaultParams()  (0.01 / 1.57 / 1.0 / 0.0)
//   • workers  = 1                       (single-threaded, synchronous)
//   • repair   = [1.0, 0.0]              (maximal "connected" confidence)
//   • logger   = discard
//   • observer = no-op

package cutgraph

import (
	"log/slog"

	"github.com/katalvlaran/lvseg/weight"
)

// Repair relation defaults.
const (
	DefaultRepairConnected = 1.0
	DefaultRepairSeparated = 0.0
	defaultWorkers         = 1
)

// graphConfig aggregates the knobs used by both builders.
type graphConfig struct {
	params   weight.Params
	workers  int
	repair   [2]float64
	logger   *slog.Logger
	observer Observer
}

// newGraphConfig applies opts in order over the defaults; last wins.
func newGraphConfig(opts ...Option) graphConfig {
	cfg := graphConfig{
		params:   weight.DefaultParams(),
		workers:  defaultWorkers,
		repair:   [2]float64{DefaultRepairConnected, DefaultRepairSeparated},
		logger:   slog.New(slog.DiscardHandler),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
