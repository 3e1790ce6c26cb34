// SPDX-License-Identifier: MIT
// Package: flis/builder
//
// impl_named.go - fixed and parametric named graphs: Petersen, BalancedTree, Hypercube.
//
// Contract:
//   • Petersen: 10 vertices idFn(0..9); outer ring 0..4, inner pentagram 5..9,
//     spokes i—i+5.
//   • BalancedTree(r, h): r ≥ 2, h ≥ 0; root idFn(0), children of k are
//     idFn(r·k+1 .. r·k+r); (r^(h+1)-1)/(r-1) vertices.
//   • Hypercube(d): 1 ≤ d ≤ maxCubeDim; IDs are d-bit strings (BinaryIDFn(d)),
//     cfg.idFn is ignored; u—v iff the labels differ in exactly one bit.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flis/core"
)

const (
	methodPetersen     = "Petersen"
	methodBalancedTree = "BalancedTree"
	methodHypercube    = "Hypercube"

	petersenRing   = 5
	minTreeArity   = 2
	minCubeDim     = 1
	maxCubeDim     = 16
	maxTreeVertex  = 1 << 20
	petersenStride = 2
)

// Petersen returns a Constructor for the Petersen graph.
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addVertices(g, methodPetersen, 2*petersenRing, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < petersenRing; i++ {
			outer, inner := ids[i], ids[i+petersenRing]
			if err = addEdge(g, methodPetersen, outer, ids[(i+1)%petersenRing]); err != nil {
				return err
			}
			if err = addEdge(g, methodPetersen, outer, inner); err != nil {
				return err
			}
			if err = addEdge(g, methodPetersen, inner, ids[(i+petersenStride)%petersenRing+petersenRing]); err != nil {
				return err
			}
		}

		return nil
	}
}

// BalancedTree returns a Constructor for the complete r-ary tree of height h.
// Complexity: O(r^(h+1)).
func BalancedTree(r, h int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if r < minTreeArity || h < 0 {
			return fmt.Errorf("%s: r=%d, h=%d (r must be ≥ %d, h ≥ 0): %w",
				methodBalancedTree, r, h, minTreeArity, ErrTooFewVertices)
		}

		n, level := 1, 1
		for i := 0; i < h; i++ {
			level *= r
			n += level
			if n > maxTreeVertex {
				return fmt.Errorf("%s: more than %d vertices: %w", methodBalancedTree, maxTreeVertex, ErrTooManyVertices)
			}
		}

		ids, err := addVertices(g, methodBalancedTree, n, cfg.idFn)
		if err != nil {
			return err
		}
		for child := 1; child < n; child++ {
			if err = addEdge(g, methodBalancedTree, ids[(child-1)/r], ids[child]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Hypercube returns a Constructor for the d-dimensional hypercube Q_d.
// Complexity: O(d·2^d).
func Hypercube(d int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if d < minCubeDim {
			return fmt.Errorf("%s: d=%d < min=%d: %w", methodHypercube, d, minCubeDim, ErrTooFewVertices)
		}
		if d > maxCubeDim {
			return fmt.Errorf("%s: d=%d > max=%d: %w", methodHypercube, d, maxCubeDim, ErrTooManyVertices)
		}

		n := 1 << d
		ids, err := addVertices(g, methodHypercube, n, BinaryIDFn(d))
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for b := 0; b < d; b++ {
				if j := i ^ (1 << b); j > i {
					if err = addEdge(g, methodHypercube, ids[i], ids[j]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
