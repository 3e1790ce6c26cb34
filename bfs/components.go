package bfs

// Components returns the connected components of g, each in BFS visit order,
// ordered by their smallest vertex ID (Vertices() is sorted). opts apply to
// every underlying BFS, so WithContext bounds the whole scan.
// Complexity: O(V + E).
func Components(g Graph, opts ...Option) ([][]string, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id, opts...)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// IsConnected reports whether g has at most one connected component.
// The empty graph counts as connected.
func IsConnected(g Graph, opts ...Option) (bool, error) {
	comps, err := Components(g, opts...)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}
