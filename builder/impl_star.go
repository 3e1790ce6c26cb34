// SPDX-License-Identifier: MIT
// Package: flis/builder
//
// impl_star.go - Star(n) and Wheel(n), both hubbed on CenterVertexID.
//
// Canonical definitions:
//   • Star(n)  = hub "Center" + (n-1) leaves idFn(0..n-2), n ≥ 2.
//   • Wheel(n) = C_{n-1} + hub "Center", n ≥ 4.
//
// Spokes are emitted in ascending rim index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flis/core"
)

// CenterVertexID is the fixed ID of the hub vertex in Star and Wheel.
const CenterVertexID = "Center"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor for the star K_{1,n-1}.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}

		leaves, err := addVertices(g, methodStar, n-1, cfg.idFn)
		if err != nil {
			return err
		}

		return addSpokes(g, methodStar, leaves)
	}
}

// Wheel returns a Constructor for Wₙ = Cₙ₋₁ + "Center".
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, CenterVertexID, err)
		}

		rim := make([]string, n-1)
		for i := range rim {
			rim[i] = cfg.idFn(i)
		}

		return addSpokes(g, methodWheel, rim)
	}
}

func addSpokes(g *core.Graph, method string, rim []string) error {
	for _, id := range rim {
		if err := addEdge(g, method, CenterVertexID, id); err != nil {
			return err
		}
	}

	return nil
}
