// File: partition.go
// Role: distance partition of the non-excluded vertices around the subtree's
//       internal vertices, consumed by the Dist estimator.

package subtree

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// layered is a vertex together with its number of non-excluded neighbors.
type layered struct {
	v      int
	degree int
}

type queued struct {
	v    int
	dist int
}

// partitionByDistance runs a multi-source BFS from the included vertices of
// degree > 1 over non-excluded vertices. The sources themselves (distance 0)
// are dropped: layers[k] holds the vertices at distance k+1.
//
// Border vertices met during the scan refresh a stale VertexToAdd hint.
// Requires SubtreeSize() > 2, which guarantees at least one internal vertex.
// Complexity: O(V + E).
func (c *Configuration) partitionByDistance() [][]layered {
	for i := range c.visited {
		c.visited[i] = false
	}

	queue := linkedlistqueue.New()
	for _, u := range c.subtree {
		if c.status[u].Degree > 1 {
			queue.Enqueue(queued{v: u})
		}
	}

	var (
		layers [][]layered
		layer  []layered
		prev   int
	)
	for !queue.Empty() {
		raw, _ := queue.Dequeue()
		item := raw.(queued)
		if c.visited[item.v] {
			continue
		}
		c.visited[item.v] = true

		if prev < item.dist {
			if prev > 0 {
				layers = append(layers, layer)
			}
			layer = nil
		}

		degree := 0
		for _, u := range c.adj[item.v] {
			if c.status[u].State == Excluded {
				continue
			}
			degree++
			if !c.visited[u] {
				queue.Enqueue(queued{v: u, dist: item.dist + 1})
			}
		}
		layer = append(layer, layered{v: item.v, degree: degree})

		if c.status[item.v].State == Border && (c.hint < 0 || c.status[c.hint].State != Border) {
			c.hint = item.v
		}
		prev = item.dist
	}

	return append(layers, layer)
}
