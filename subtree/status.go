// File: status.go
// Role: per-vertex tagged status and the bounding Strategy enum.

package subtree

import (
	"fmt"
	"strings"
)

// State is the tag of a vertex Status.
type State uint8

const (
	// Unseen vertices have no relation to the subtree yet.
	Unseen State = iota
	// Border vertices are adjacent to exactly one included vertex.
	Border
	// Included vertices belong to the subtree.
	Included
	// Excluded vertices may not enter the subtree in the current branch.
	Excluded
)

var stateNames = [...]string{"unseen", "border", "included", "excluded"}

// String returns the lowercase name of s.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return fmt.Sprintf("state(%d)", uint8(s))
}

// Status is the tagged value stored for each vertex.
// Degree is meaningful only for Included, Cause only for Excluded.
type Status struct {
	State  State
	Degree int
	Cause  int
}

// Manual reports whether an Excluded status for vertex v came from a
// branching decision rather than a cascade.
func (s Status) Manual(v int) bool {
	return s.State == Excluded && s.Cause == v
}

func (s Status) String() string {
	switch s.State {
	case Included:
		return fmt.Sprintf("included(%d)", s.Degree)
	case Excluded:
		return fmt.Sprintf("excluded(%d)", s.Cause)
	default:
		return s.State.String()
	}
}

// Strategy selects the leaf-potential estimator.
type Strategy uint8

const (
	// Dist uses the distance-partition greedy bound (default).
	Dist Strategy = iota
	// Naive uses the border-size bound only.
	Naive
)

// String returns "dist" or "naive".
func (s Strategy) String() string {
	if s == Naive {
		return "naive"
	}

	return "dist"
}

// ParseStrategy maps "dist" / "naive" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dist", "":
		return Dist, nil
	case "naive":
		return Naive, nil
	}

	return Dist, fmt.Errorf("subtree: unknown strategy %q: %w", name, ErrOptionViolation)
}
