package action

import (
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// ToggleVertex flips a spider's color (Z ↔ X) and toggles every incident
// edge between simple and Hadamard. Adjacency counts and structure are
// preserved.
type ToggleVertex struct {
	V zxgraph.VertexID

	snap *zxgraph.Snapshot
}

// NewToggleVertex builds the action for vertex v.
func NewToggleVertex(v zxgraph.VertexID) *ToggleVertex {
	return &ToggleVertex{V: v}
}

// Apply flips the spider. Fails on unknown ids and non-spider vertices.
func (a *ToggleVertex) Apply(g *zxgraph.Graph) bool {
	v := g.Vertex(a.V)
	if v == nil || !v.IsZX() {
		return false
	}

	a.snap = capture(g, a.V)

	// Detach every incident edge first so re-adding the toggled types
	// cannot collide pairwise.
	nbs := g.Neighbors(a.V)
	for _, nb := range nbs {
		_ = g.RemoveEdge(a.V, nb.ID, nb.Type)
	}

	if v.IsZ() {
		v.Type = zxgraph.X
	} else {
		v.Type = zxgraph.Z
	}

	for _, nb := range nbs {
		_ = g.AddEdge(a.V, nb.ID, zxgraph.ToggleEdge(nb.Type))
	}

	return true
}

// Undo restores the pre-toggle state.
func (a *ToggleVertex) Undo(g *zxgraph.Graph) bool {
	if a.snap == nil {
		return false
	}

	return a.snap.Restore(g)
}
