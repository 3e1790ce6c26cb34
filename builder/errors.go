// SPDX-License-Identifier: MIT
// Package: flis/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with "%s: ...: %w" (method tag first).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, arity,
// dimension) is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyVertices indicates that a parameter would produce a graph larger
// than the constructor supports (hypercube dimension above maxCubeDim).
var ErrTooManyVertices = errors.New("builder: parameter too large")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed (nil
// constructor, unknown family name).
var ErrConstructFailed = errors.New("builder: construction failed")
