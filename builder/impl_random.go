// SPDX-License-Identifier: MIT
// Package: flis/builder
//
// impl_random.go - RandomSparse(n, p) and RandomTree(n).
//
// Contract:
//   • RandomSparse: n ≥ 1, 0 ≤ p ≤ 1, cfg.rng required when 0 < p < 1.
//     Unordered pairs {i,j}, i<j, each kept with probability p.
//   • RandomTree: n ≥ 1, cfg.rng required when n ≥ 3. Vertex i ≥ 1 attaches to
//     a uniformly chosen earlier vertex.
//
// Determinism:
//   • Stable trial order (i asc, then j asc) ⇒ identical graphs for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flis/core"
)

const (
	methodRandomSparse = "RandomSparse"
	methodRandomTree   = "RandomTree"
	minRandomVertices  = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, methodRandomSparse, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if cfg.rng != nil {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomTree returns a Constructor that samples a random recursive tree on n vertices.
// Complexity: O(n).
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minRandomVertices, ErrTooFewVertices)
		}
		if cfg.rng == nil && n > 2 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomTree, ErrNeedRandSource)
		}

		ids, err := addVertices(g, methodRandomTree, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			parent := 0
			if i > 1 {
				parent = cfg.rng.Intn(i)
			}
			if err = addEdge(g, methodRandomTree, ids[parent], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
