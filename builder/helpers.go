package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/flis/core"
)

// addVertices inserts idFn(0..n-1) and returns the IDs in index order.
// Complexity: O(n).
func addVertices(g *core.Graph, method string, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge adds u-v and wraps failures with the method tag.
func addEdge(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s): %w", method, u, v, err)
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids (i<j order).
// Complexity: O(m²).
func addCompleteEdges(g *core.Graph, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
