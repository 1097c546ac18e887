package zxgraph

import (
	"github.com/katalvlaran/zxcalc/phase"
)

// VertexID identifies a vertex within a graph. Ids are nonnegative, unique
// within a graph, and never reused by the allocator.
type VertexID = int

// VertexType classifies a vertex.
type VertexType uint8

const (
	// Boundary marks an input or output wire endpoint.
	Boundary VertexType = iota

	// Z is a Z-spider (green).
	Z

	// X is an X-spider (red).
	X

	// HBox is a Hadamard box; graph-like form replaces these with
	// Hadamard edges.
	HBox
)

// String renders the vertex type the way diagram dumps spell it.
func (t VertexType) String() string {
	switch t {
	case Boundary:
		return "●"
	case Z:
		return "Z"
	case X:
		return "X"
	case HBox:
		return "H"
	default:
		return "?"
	}
}

// EdgeType classifies a wire.
type EdgeType uint8

const (
	// Simple is a plain wire.
	Simple EdgeType = iota

	// Hadamard is a wire with a Hadamard gate on it.
	Hadamard
)

// String renders the edge type.
func (t EdgeType) String() string {
	if t == Hadamard {
		return "H"
	}

	return "-"
}

// ToggleEdge flips Simple ↔ Hadamard.
func ToggleEdge(t EdgeType) EdgeType {
	if t == Hadamard {
		return Simple
	}

	return Hadamard
}

// ConcatEdge composes two wire segments: the result is Hadamard iff exactly
// one of the segments is (the XOR rule used when splicing identities in and
// out of an edge).
func ConcatEdge(a, b EdgeType) EdgeType {
	if (a == Hadamard) != (b == Hadamard) {
		return Hadamard
	}

	return Simple
}

// Neighbor is one adjacency record: the neighbor's id and the connecting
// edge type. A vertex holds at most one record per (id, type) pair.
type Neighbor struct {
	ID   VertexID
	Type EdgeType
}

// Edge is an undirected edge as reported by ForEachEdge, with U < V.
type Edge struct {
	U, V VertexID
	Type EdgeType
}

// Vertex is a node of the diagram. Type, Phase, Qubit, Row, and Col are
// plain attributes; adjacency is owned by the graph and mutated only
// through the graph API. Row and Col are layout hints carried through I/O
// and never participate in equality.
type Vertex struct {
	ID    VertexID
	Type  VertexType
	Phase phase.Phase

	// Qubit is meaningful for boundary vertices only; elsewhere it is a
	// scratch field collaborators may mark.
	Qubit int

	Row float64
	Col float64

	adj map[Neighbor]struct{}
}

// IsZ reports whether the vertex is a Z-spider.
func (v *Vertex) IsZ() bool { return v.Type == Z }

// IsX reports whether the vertex is an X-spider.
func (v *Vertex) IsX() bool { return v.Type == X }

// IsZX reports whether the vertex is a spider of either color.
func (v *Vertex) IsZX() bool { return v.Type == Z || v.Type == X }

// IsHBox reports whether the vertex is a Hadamard box.
func (v *Vertex) IsHBox() bool { return v.Type == HBox }

// IsBoundary reports whether the vertex is a boundary.
func (v *Vertex) IsBoundary() bool { return v.Type == Boundary }

// HasNPiPhase reports whether the vertex phase is an integer multiple of π.
func (v *Vertex) HasNPiPhase() bool { return v.Phase.IsNPi() }

// IsCliffordPhase reports whether the vertex phase is a multiple of π/2.
func (v *Vertex) IsCliffordPhase() bool { return v.Phase.IsClifford() }
