package leafmap

import "fmt"

// snapshot is a dense, index-addressed copy of a Graph.
type snapshot struct {
	ids   []string
	index map[string]int
	adj   [][]int
	edges int
}

func takeSnapshot(g Graph) (*snapshot, error) {
	ids := g.Vertices()
	s := &snapshot{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		adj:   make([][]int, len(ids)),
	}
	for i, id := range ids {
		s.index[id] = i
	}
	for v, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("leafmap: neighbors of %q: %w", id, err)
		}
		for _, nid := range nbrs {
			u, ok := s.index[nid]
			if !ok {
				return nil, fmt.Errorf("leafmap: neighbor %q of %q is not a vertex: %w", nid, id, ErrUnsupportedInput)
			}
			if u == v {
				return nil, fmt.Errorf("leafmap: loop on %q: %w", id, ErrUnsupportedInput)
			}
			s.adj[v] = append(s.adj[v], u)
			if v < u {
				s.edges++
			}
		}
	}

	return s, nil
}

func (s *snapshot) order() int { return len(s.ids) }

func (s *snapshot) names(vs []int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = s.ids[v]
	}

	return out
}
