package rule

import (
	"github.com/katalvlaran/zxcalc/phase"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// IdentityFusion removes a phase-0 Z-spider of degree two in graph-like
// form and fuses its two neighbors through it: the higher neighbor
// dissolves into the lower one. A direct Hadamard wire between the
// neighbors folds into a π phase, and a cancelling Hadamard double-edge
// on a shared neighbor contributes π as well.
type IdentityFusion struct {
	V zxgraph.VertexID

	undoState
}

// NewIdentityFusion builds the rule for vertex v.
func NewIdentityFusion(v zxgraph.VertexID) *IdentityFusion {
	return &IdentityFusion{V: v}
}

// endpoints resolves the two fused neighbors (left = lower id).
func (r *IdentityFusion) endpoints(g *zxgraph.Graph) (left, right zxgraph.Neighbor) {
	left, _ = g.FirstNeighbor(r.V)
	right, _ = g.SecondNeighbor(r.V)

	return left, right
}

// IsApplicable reports whether V is a phase-0 Z-spider with exactly two
// Hadamard wires to two distinct interior Z-spiders.
func (r *IdentityFusion) IsApplicable(g *zxgraph.Graph) bool {
	v := g.Vertex(r.V)
	if v == nil || !v.IsZ() || !v.Phase.IsZero() || g.NumNeighbors(r.V) != 2 {
		return false
	}
	left, right := r.endpoints(g)
	if left.ID == right.ID {
		return false
	}
	if left.Type != zxgraph.Hadamard || right.Type != zxgraph.Hadamard {
		return false
	}
	l, w := g.Vertex(left.ID), g.Vertex(right.ID)

	return l.IsZ() && !l.IsBoundary() && w.IsZ() && !w.IsBoundary()
}

// Apply fuses the right neighbor into the left through V.
func (r *IdentityFusion) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	leftNb, rightNb := r.endpoints(g)
	leftID, rightID := leftNb.ID, rightNb.ID

	r.begin(g, r.CoreVertices())

	left := g.Vertex(leftID)
	left.Phase = left.Phase.Add(g.Vertex(rightID).Phase)

	for _, nb := range g.Neighbors(rightID) {
		switch {
		case nb.ID == r.V:
			// The identity itself disappears below.
		case nb.ID == leftID:
			// Direct wire between the fused pair becomes a self-loop.
			left.Phase = left.Phase.Add(phase.Pi())
		case nb.Type == zxgraph.Hadamard && g.IsNeighborOfType(leftID, nb.ID, zxgraph.Hadamard):
			// Parallel Hadamard pair on a shared neighbor: cancel and
			// keep the π.
			_ = g.RemoveEdge(leftID, nb.ID, zxgraph.Hadamard)
			left.Phase = left.Phase.Add(phase.Pi())
		default:
			_ = g.AddEdge(leftID, nb.ID, nb.Type)
		}
	}

	_ = g.RemoveVertex(r.V)
	_ = g.RemoveVertex(rightID)

	return true
}

// CoreVertices returns the fused identity's id.
func (r *IdentityFusion) CoreVertices() []zxgraph.VertexID {
	return []zxgraph.VertexID{r.V}
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *IdentityFusion) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *IdentityFusion) Radius() int { return 2 }
