package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is reported when a later record shares a key with an
	// earlier one. The earlier record is kept.
	ErrDuplicateKey = errors.New("duplicate node key")

	// ErrNoRootNodes is reported when every node of a non-empty directed
	// graph has at least one parent.
	ErrNoRootNodes = errors.New("graph has no root nodes")

	// ErrCycleDetected is reported for every cycle the walk runs into.
	ErrCycleDetected = errors.New("cycle detected")

	// ErrDanglingReference is reported when a record points at a key that
	// has no node.
	ErrDanglingReference = errors.New("reference to unknown node")
)

// Diagnostic is a non-fatal condition found while building a graph.
type Diagnostic struct {
	// Key is the node the diagnostic is about. Empty for graph-wide conditions.
	Key string
	// Err wraps one of the package sentinel errors.
	Err error
}

// Error implements the error interface so a Diagnostic can be passed around
// and unwrapped like any other error.
func (d Diagnostic) Error() string {
	return d.Err.Error()
}

// Unwrap returns the wrapped sentinel error.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

func duplicateKey(key string) Diagnostic {
	return Diagnostic{Key: key, Err: fmt.Errorf("%w %q, only the first one is added to the graph", ErrDuplicateKey, key)}
}

func noRootNodes() Diagnostic {
	return Diagnostic{Err: fmt.Errorf("%w, it may contain a circular reference that cannot be located", ErrNoRootNodes)}
}

func cycleAt(key string) Diagnostic {
	if key == "" {
		return Diagnostic{Err: ErrCycleDetected}
	}
	return Diagnostic{Key: key, Err: fmt.Errorf("%w involving %q", ErrCycleDetected, key)}
}

func danglingReference(from, to string) Diagnostic {
	return Diagnostic{Key: from, Err: fmt.Errorf("%w: %q references %q", ErrDanglingReference, from, to)}
}
