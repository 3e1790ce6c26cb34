// SPDX-License-Identifier: MIT
// Package: flis/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1,n2).
//
// Contract:
//   • Complete: n ≥ 1; vertices idFn(0..n-1); edges for every i<j.
//   • CompleteBipartite: n1,n2 ≥ 1; IDs "<leftPrefix><i>" and "<rightPrefix><j>";
//     every cross pair emitted with i over left, j over right.
//
// Complexity: O(n²) and O(n1·n2) edges respectively.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flis/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodComplete, n, cfg.idFn)
		if err != nil {
			return err
		}

		return addCompleteEdges(g, methodComplete, ids)
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left, err := addVertices(g, methodCompleteBipartite, n1, SymbolNumberIDFn(cfg.leftPrefix))
		if err != nil {
			return err
		}
		right, err := addVertices(g, methodCompleteBipartite, n2, SymbolNumberIDFn(cfg.rightPrefix))
		if err != nil {
			return err
		}

		for _, u := range left {
			for _, v := range right {
				if err = addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
