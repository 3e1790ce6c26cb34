// File: operations.go
// Role: the mutating operations (include, exclude, undo) and VertexToAdd.
// Complexity:
//   - IncludeVertex / ExcludeVertex / UndoLastOperation: O(deg(v)).
//   - VertexToAdd: O(1) on a fresh hint, O(V) otherwise.

package subtree

import "fmt"

// VertexToAdd returns a vertex that can extend the subtree: any Unseen vertex
// while the subtree is empty, otherwise a Border vertex. ok is false when no
// such vertex exists.
func (c *Configuration) VertexToAdd() (v int, ok bool) {
	if c.hint >= 0 && c.status[c.hint].State == Border {
		return c.hint, true
	}

	want := Border
	if c.size == 0 {
		want = Unseen
	}
	for v = range c.status {
		if c.status[v].State == want {
			return v, true
		}
	}

	return -1, false
}

// IncludeVertex adds v to the subtree and returns the subtree degree of the
// vertex it attaches to (0 when v becomes the root).
//
// v must be Border, or Unseen while the subtree is empty. Border neighbors of
// v become Excluded with cause v, Unseen neighbors become Border.
func (c *Configuration) IncludeVertex(v int) (int, error) {
	if err := c.checkIndex("IncludeVertex", v); err != nil {
		return 0, err
	}
	st := c.status[v].State
	if st != Border && !(st == Unseen && c.size == 0) {
		return 0, fmt.Errorf("IncludeVertex: vertex %q is %s with subtree size %d: %w",
			c.ids[v], c.status[v], c.size, ErrInvalidOperation)
	}

	attach := 0
	for _, u := range c.adj[v] {
		s := c.status[u]
		switch s.State {
		case Unseen:
			c.status[u] = Status{State: Border}
			c.borderSize++
			c.hint = u
		case Included:
			attach = s.Degree + 1
			c.status[u].Degree = attach
			if s.Degree == 1 {
				c.numLeaf--
			}
		case Border:
			c.status[u] = Status{State: Excluded, Cause: v}
			c.borderSize--
			c.numExcluded++
		}
	}

	if st == Border {
		c.status[v] = Status{State: Included, Degree: 1}
		c.borderSize--
	} else {
		c.status[v] = Status{State: Included}
	}
	c.subtree = append(c.subtree, v)
	c.numLeaf++
	c.size++
	c.history = append(c.history, v)
	c.memoValid = false

	return attach, nil
}

// ExcludeVertex bars v from the subtree for the current branch.
// v must be Border, or Unseen while the subtree is empty.
func (c *Configuration) ExcludeVertex(v int) error {
	if err := c.checkIndex("ExcludeVertex", v); err != nil {
		return err
	}
	st := c.status[v].State
	if st != Border && !(st == Unseen && c.size == 0) {
		return fmt.Errorf("ExcludeVertex: vertex %q is %s with subtree size %d: %w",
			c.ids[v], c.status[v], c.size, ErrInvalidOperation)
	}

	c.status[v] = Status{State: Excluded, Cause: v}
	if c.size != 0 {
		c.borderSize--
	}
	c.numExcluded++
	c.history = append(c.history, v)
	c.memoValid = false

	return nil
}

// UndoLastOperation reverts the most recent IncludeVertex or ExcludeVertex.
func (c *Configuration) UndoLastOperation() error {
	top := len(c.history) - 1
	if top < 0 {
		return fmt.Errorf("UndoLastOperation: empty history: %w", ErrInvalidOperation)
	}
	v := c.history[top]
	c.history = c.history[:top]
	c.memoValid = false

	if c.status[v].State == Included {
		c.undoInclusion(v)
	} else {
		c.undoExclusion(v)
	}

	return nil
}

func (c *Configuration) undoInclusion(v int) {
	for _, u := range c.adj[v] {
		s := c.status[u]
		switch {
		case s.State == Border:
			c.status[u] = Status{State: Unseen}
			c.borderSize--
		case s.State == Included:
			c.status[u].Degree--
			if s.Degree == 2 {
				c.numLeaf++
			}
		case s.State == Excluded && s.Cause == v:
			c.status[u] = Status{State: Border}
			c.numExcluded--
			c.borderSize++
		}
	}

	c.size--
	if c.size > 0 {
		c.status[v] = Status{State: Border}
		c.borderSize++
	} else {
		c.status[v] = Status{State: Unseen}
	}
	c.numLeaf--
	c.subtree = c.subtree[:len(c.subtree)-1]
}

func (c *Configuration) undoExclusion(v int) {
	c.numExcluded--
	if c.size == 0 {
		c.status[v] = Status{State: Unseen}
		return
	}
	c.status[v] = Status{State: Border}
	c.borderSize++
}

func (c *Configuration) checkIndex(method string, v int) error {
	if v < 0 || v >= len(c.ids) {
		return fmt.Errorf("%s: vertex index %d out of range [0,%d): %w", method, v, len(c.ids), ErrInvalidOperation)
	}

	return nil
}
