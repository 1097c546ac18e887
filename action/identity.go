package action

import (
	"github.com/katalvlaran/zxcalc/phase"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// AddIdentityVertex splits an existing (left, e, right) edge by a fresh
// phase-0 spider: the edge is removed, the new spider connects to `left`
// with EtypeToLeft and to `right` with the type that makes the two
// segments compose back to e under the XOR rule.
type AddIdentityVertex struct {
	Left  zxgraph.VertexID
	Right zxgraph.VertexID
	VType zxgraph.VertexType

	// EtypeToLeft is the wire type between the new spider and Left.
	EtypeToLeft zxgraph.EdgeType

	// NewID, when non-nil, requests an explicit id for the new spider
	// (used when an undone insertion is replayed).
	NewID *zxgraph.VertexID

	created zxgraph.VertexID
	snap    *zxgraph.Snapshot
}

// NewAddIdentityVertex builds the action.
func NewAddIdentityVertex(left, right zxgraph.VertexID, vt zxgraph.VertexType, etypeToLeft zxgraph.EdgeType) *AddIdentityVertex {
	return &AddIdentityVertex{Left: left, Right: right, VType: vt, EtypeToLeft: etypeToLeft}
}

// CreatedID returns the id of the spider the last Apply inserted.
func (a *AddIdentityVertex) CreatedID() zxgraph.VertexID { return a.created }

// Apply splits the edge. Fails when the endpoints are not connected or the
// requested vertex type is not a spider.
func (a *AddIdentityVertex) Apply(g *zxgraph.Graph) bool {
	if a.VType != zxgraph.Z && a.VType != zxgraph.X {
		return false
	}
	et, ok := g.EdgeTypeBetween(a.Left, a.Right)
	if !ok {
		return false
	}

	a.snap = capture(g, a.Left, a.Right)

	left, right := g.Vertex(a.Left), g.Vertex(a.Right)

	var mid *zxgraph.Vertex
	if a.NewID != nil {
		var err error
		mid, err = g.AddVertexWithID(*a.NewID, a.VType, phase.Zero(),
			(left.Row+right.Row)/2, (left.Col+right.Col)/2)
		if err != nil {
			a.snap = nil

			return false
		}
	} else {
		mid = g.AddVertexAt(a.VType, phase.Zero(),
			(left.Row+right.Row)/2, (left.Col+right.Col)/2)
	}
	a.created = mid.ID

	_ = g.RemoveEdge(a.Left, a.Right, et)
	_ = g.AddEdge(a.Left, mid.ID, a.EtypeToLeft)
	_ = g.AddEdge(mid.ID, a.Right, zxgraph.ConcatEdge(et, a.EtypeToLeft))

	return true
}

// Undo removes the inserted spider and reinstates the original edge.
func (a *AddIdentityVertex) Undo(g *zxgraph.Graph) bool {
	if a.snap == nil {
		return false
	}

	return a.snap.Restore(g)
}

// RemoveIdentityVertex deletes a phase-0 spider with exactly two adjacency
// records and reconnects its neighbors with the XOR-composed edge type.
type RemoveIdentityVertex struct {
	V zxgraph.VertexID

	snap *zxgraph.Snapshot
}

// NewRemoveIdentityVertex builds the action for vertex v.
func NewRemoveIdentityVertex(v zxgraph.VertexID) *RemoveIdentityVertex {
	return &RemoveIdentityVertex{V: v}
}

// Applicable reports whether v currently satisfies the identity-removal
// preconditions: a Z/X spider, phase 0, exactly two adjacency records.
func (a *RemoveIdentityVertex) Applicable(g *zxgraph.Graph) bool {
	v := g.Vertex(a.V)

	return v != nil && v.IsZX() && v.Phase.IsZero() && g.NumNeighbors(a.V) == 2
}

// Apply removes the identity. The two neighbors reconnect over
// ConcatEdge(left type, right type); if both records point at the same
// vertex the reconnection folds as a self-loop.
func (a *RemoveIdentityVertex) Apply(g *zxgraph.Graph) bool {
	if !a.Applicable(g) {
		return false
	}

	left, _ := g.FirstNeighbor(a.V)
	right, _ := g.SecondNeighbor(a.V)

	a.snap = capture(g, a.V)

	_ = g.RemoveVertex(a.V)
	_ = g.AddEdge(left.ID, right.ID, zxgraph.ConcatEdge(left.Type, right.Type))

	return true
}

// Undo re-mints v at its original id with the original edge split.
func (a *RemoveIdentityVertex) Undo(g *zxgraph.Graph) bool {
	if a.snap == nil {
		return false
	}

	return a.snap.Restore(g)
}
