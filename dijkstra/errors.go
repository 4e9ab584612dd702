package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the stepping engine.
var (
	// ErrInvalidInput is matched (errors.Is) by every *InvalidInputError.
	ErrInvalidInput = errors.New("dijkstra: invalid input")

	// ErrMalformedEdge is matched (errors.Is) by every *MalformedEdgeError.
	ErrMalformedEdge = errors.New("dijkstra: malformed edge")

	// ErrNilGraph indicates that a nil graph view was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrVertexNotFound indicates that the source vertex is not in the graph's vertex set.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNotInitialized indicates an Engine that was not built by New.
	ErrNotInitialized = errors.New("dijkstra: engine is not initialized")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNonFiniteWeight indicates a NaN or infinite edge weight.
	ErrNonFiniteWeight = errors.New("dijkstra: edge weight is not finite")

	// ErrMissingWeight indicates an edge declared without any weight.
	ErrMissingWeight = errors.New("dijkstra: edge weight is missing")

	// ErrNonNumericWeight indicates an edge whose weight is not a number.
	ErrNonNumericWeight = errors.New("dijkstra: edge weight is not numeric")

	// ErrUnknownTarget indicates an edge pointing at a vertex outside the vertex set.
	ErrUnknownTarget = errors.New("dijkstra: edge target is not a vertex of the graph")

	// ErrMisorientedEdge indicates an outgoing edge whose From is not the vertex it was listed under.
	ErrMisorientedEdge = errors.New("dijkstra: outgoing edge does not start at its vertex")

	// ErrPathNotRecorded indicates PathTo on a result built without WithReturnPath.
	ErrPathNotRecorded = errors.New("dijkstra: predecessors were not recorded")

	// ErrUnreachable indicates PathTo on a vertex with infinite distance.
	ErrUnreachable = errors.New("dijkstra: vertex is unreachable from source")
)

// InvalidInputError reports input that prevents the engine from being built
// or used: nil graph, empty or unknown source, or a zero-value Engine.
type InvalidInputError struct {
	Op     string // operation that detected the problem ("New", "Step", ...)
	Vertex string // offending vertex, if any
	Err    error  // underlying sentinel
}

func (e *InvalidInputError) Error() string {
	if e.Vertex != "" {
		return fmt.Sprintf("dijkstra: %s: vertex %q: %v", e.Op, e.Vertex, e.Err)
	}

	return fmt.Sprintf("dijkstra: %s: %v", e.Op, e.Err)
}

// Is makes errors.Is(err, ErrInvalidInput) hold.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// Unwrap returns the underlying sentinel.
func (e *InvalidInputError) Unwrap() error { return e.Err }

// MalformedEdgeError reports an edge whose weight or endpoints cannot be used.
type MalformedEdgeError struct {
	EdgeID string
	From   string
	To     string
	Weight float64
	Err    error
}

func (e *MalformedEdgeError) Error() string {
	id := e.EdgeID
	if id == "" {
		id = "<unnamed>"
	}

	return fmt.Sprintf("dijkstra: malformed edge %s %s→%s (weight=%g): %v", id, e.From, e.To, e.Weight, e.Err)
}

// Is makes errors.Is(err, ErrMalformedEdge) hold.
func (e *MalformedEdgeError) Is(target error) bool { return target == ErrMalformedEdge }

// Unwrap returns the underlying sentinel.
func (e *MalformedEdgeError) Unwrap() error { return e.Err }

// CheckWeight validates an edge weight: it must be finite, and non-negative
// unless allowNegative is set.
func CheckWeight(w float64, allowNegative bool) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrNonFiniteWeight
	}
	if w < 0 && !allowNegative {
		return ErrNegativeWeight
	}

	return nil
}
