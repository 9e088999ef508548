// SPDX-License-Identifier: MIT
// Package: lvseg/cutgraph
//
// errors.go: sentinel errors for the cutgraph package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Builders attach method context with %w: "BuildFromRelations: relation 3: ...".
//   • Builders never panic at runtime; panics are confined to WithX option
//     constructors receiving meaningless values.

package cutgraph

import "errors"

// ErrAlreadyBuilt indicates a second build on a Graph that was already populated.
var ErrAlreadyBuilt = errors.New("cutgraph: graph already built")

// ErrNilFrame indicates BuildFromPointCloud was called with a nil frame.
var ErrNilFrame = errors.New("cutgraph: nil frame")

// ErrNodeCountMismatch indicates a non-zero node count given to New that
// differs from width*height of the frame being built.
var ErrNodeCountMismatch = errors.New("cutgraph: node count does not match frame size")

// ErrNegativeNodeCount indicates a relation graph with a node count below zero.
var ErrNegativeNodeCount = errors.New("cutgraph: node count must be ≥ 0")

// ErrNodeOutOfRange indicates a relation referencing an id outside [0, node count).
var ErrNodeOutOfRange = errors.New("cutgraph: node id out of range")

// ErrInvalidRelation indicates a relation without a 2-entry probability pair.
var ErrInvalidRelation = errors.New("cutgraph: relation must carry [P(connected), P(separated)]")

// Method tokens used as error context prefixes.
const (
	methodPointCloud = "BuildFromPointCloud"
	methodRelations  = "BuildFromRelations"
)
