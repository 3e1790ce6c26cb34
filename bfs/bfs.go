// Package bfs provides breadth-first search over an undirected graph,
// returning unweighted shortest-path distances and visit order.
package bfs

import (
	"context"
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Graph
	ctx     context.Context
	queue   *linkedlistqueue.Queue
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrNeighbors for graph failures, or ctx.Err() once the context is done.
func BFS(g Graph, startID string, opts ...Option) (*BFSResult, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := g.NeighborIDs(startID); err != nil {
		return nil, fmt.Errorf("bfs: %q: %w", startID, ErrStartVertexNotFound)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		ctx:     o.Ctx,
		queue:   linkedlistqueue.New(),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}

	w.enqueue(startID, 0)

	return w.res, w.loop()
}

// isNil catches both a nil interface and a typed nil pointer inside it.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

func (w *walker) enqueue(id string, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue.Enqueue(queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		raw, _ := w.queue.Dequeue()
		item := raw.(queueItem)
		w.res.Order = append(w.res.Order, item.id)
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor one layer deeper.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, item.depth+1)
		}
	}

	return nil
}
