package action

import (
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// BoundaryDetachment buffers v away from its boundary neighbors: every
// boundary neighbor whose edge is not Hadamard — and every boundary
// neighbor at all when v touches more than one — gets a fresh phase-0
// Z-spider spliced onto its edge, reached from v over a Hadamard wire.
// Afterwards v has at most one boundary neighbor, and if one remains its
// edge is Hadamard.
//
// With no boundary neighbors the action is a successful no-op.
type BoundaryDetachment struct {
	V zxgraph.VertexID

	snap *zxgraph.Snapshot
}

// NewBoundaryDetachment builds the action for vertex v.
func NewBoundaryDetachment(v zxgraph.VertexID) *BoundaryDetachment {
	return &BoundaryDetachment{V: v}
}

// Apply performs the detachment. Fails only on unknown ids.
func (a *BoundaryDetachment) Apply(g *zxgraph.Graph) bool {
	if g.Vertex(a.V) == nil {
		return false
	}

	var boundaries []zxgraph.Neighbor
	for _, nb := range g.Neighbors(a.V) {
		if g.Vertex(nb.ID).IsBoundary() {
			boundaries = append(boundaries, nb)
		}
	}

	a.snap = capture(g, a.V)

	if len(boundaries) == 0 {
		return true
	}

	for _, nb := range boundaries {
		if nb.Type == zxgraph.Hadamard && len(boundaries) == 1 {
			continue
		}
		split := NewAddIdentityVertex(a.V, nb.ID, zxgraph.Z, zxgraph.Hadamard)
		if !split.Apply(g) {
			a.snap.Restore(g)
			a.snap = nil

			return false
		}
	}

	return true
}

// Undo restores the pre-detachment state.
func (a *BoundaryDetachment) Undo(g *zxgraph.Graph) bool {
	if a.snap == nil {
		return false
	}

	return a.snap.Restore(g)
}
