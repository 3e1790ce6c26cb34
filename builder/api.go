// SPDX-License-Identifier: MIT
// Package: flis/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flis/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return wrapped
// sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The first constructor error is wrapped as "BuildGraph: %w" and returned; the
// partially built graph is discarded.
//
// Complexity: O(len(bopts)) plus the sum of the constructor costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Family resolves a named single-parameter family (as used by the CLI) into a
// Constructor. Recognized names: cycle, path, star, wheel, complete, hypercube,
// balanced-binary (height n), petersen (n ignored), random (n vertices, p=0.3).
func Family(name string, n int) (Constructor, error) {
	switch name {
	case "cycle":
		return Cycle(n), nil
	case "path":
		return Path(n), nil
	case "star":
		return Star(n), nil
	case "wheel":
		return Wheel(n), nil
	case "complete":
		return Complete(n), nil
	case "hypercube":
		return Hypercube(n), nil
	case "balanced-binary":
		return BalancedTree(2, n), nil
	case "petersen":
		return Petersen(), nil
	case "random":
		return RandomSparse(n, defaultRandomDensity), nil
	}

	return nil, fmt.Errorf("Family: unknown family %q: %w", name, ErrConstructFailed)
}

// defaultRandomDensity is the edge probability used by the "random" family.
const defaultRandomDensity = 0.3
