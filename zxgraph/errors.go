package zxgraph

import "errors"

// Sentinel errors for graph mutations. All are matched via errors.Is;
// precondition-style failures in actions and rules are reported as false
// returns, not as errors, so everything below signals a structural misuse
// of the store itself.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent
	// vertex id.
	ErrVertexNotFound = errors.New("zxgraph: vertex not found")

	// ErrDuplicateID indicates an explicit-id insertion collided with an
	// existing vertex.
	ErrDuplicateID = errors.New("zxgraph: vertex id already in use")

	// ErrEdgeNotFound indicates a removal referenced an edge that does not
	// exist.
	ErrEdgeNotFound = errors.New("zxgraph: edge not found")

	// ErrQubitTaken indicates an input (or output) already exists for the
	// requested qubit id.
	ErrQubitTaken = errors.New("zxgraph: qubit id already bound")

	// ErrBoundaryEdge indicates an attempt to add a second edge between two
	// boundary vertices.
	ErrBoundaryEdge = errors.New("zxgraph: second edge between boundaries")
)
