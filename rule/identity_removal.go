package rule

import (
	"github.com/katalvlaran/zxcalc/action"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// IdentityRemoval deletes a phase-0 spider with exactly two adjacency
// records and reconnects its neighbors with the XOR-composed edge type.
// Repeated application flattens identity chains regardless of order.
type IdentityRemoval struct {
	V zxgraph.VertexID

	undoState
}

// NewIdentityRemoval builds the rule for vertex v.
func NewIdentityRemoval(v zxgraph.VertexID) *IdentityRemoval {
	return &IdentityRemoval{V: v}
}

// IsApplicable reports whether v is a Z/X spider with phase 0 and exactly
// two adjacency records.
func (r *IdentityRemoval) IsApplicable(g *zxgraph.Graph) bool {
	v := g.Vertex(r.V)

	return v != nil && v.IsZX() && v.Phase.IsZero() && g.NumNeighbors(r.V) == 2
}

// Apply removes the identity.
func (r *IdentityRemoval) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	r.begin(g, r.CoreVertices())

	if !action.NewRemoveIdentityVertex(r.V).Apply(g) {
		r.abort()

		return false
	}

	return true
}

// CoreVertices returns the removed spider's id.
func (r *IdentityRemoval) CoreVertices() []zxgraph.VertexID {
	return []zxgraph.VertexID{r.V}
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *IdentityRemoval) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *IdentityRemoval) Radius() int { return 1 }
