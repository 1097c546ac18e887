package rule

import (
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// replaceHBoxByEdge removes an arity-2 H-box and reconnects its two
// neighbors: the new wire is Hadamard when the two original segments had
// equal types, simple otherwise.
func replaceHBoxByEdge(g *zxgraph.Graph, h zxgraph.VertexID) {
	nbs := g.Neighbors(h)
	et := zxgraph.Simple
	if nbs[0].Type == nbs[1].Type {
		et = zxgraph.Hadamard
	}
	_ = g.RemoveVertex(h)
	_ = g.AddEdge(nbs[0].ID, nbs[1].ID, et)
}

// HadamardRule converts an arity-2 H-box into a Hadamard edge; the
// simplifier runs it to normalize towards graph-like form.
type HadamardRule struct {
	V zxgraph.VertexID

	undoState
}

// NewHadamardRule builds the rule for H-box v.
func NewHadamardRule(v zxgraph.VertexID) *HadamardRule {
	return &HadamardRule{V: v}
}

// IsApplicable reports whether v is an H-box with exactly two adjacency
// records to two distinct neighbors.
func (r *HadamardRule) IsApplicable(g *zxgraph.Graph) bool {
	v := g.Vertex(r.V)
	if v == nil || !v.IsHBox() || g.NumNeighbors(r.V) != 2 {
		return false
	}
	nbs := g.Neighbors(r.V)

	return nbs[0].ID != nbs[1].ID
}

// Apply replaces the H-box by an edge.
func (r *HadamardRule) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	r.begin(g, r.CoreVertices())
	replaceHBoxByEdge(g, r.V)

	return true
}

// CoreVertices returns the H-box id.
func (r *HadamardRule) CoreVertices() []zxgraph.VertexID {
	return []zxgraph.VertexID{r.V}
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *HadamardRule) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *HadamardRule) Radius() int { return 1 }

// HadamardFusion cancels H-boxes produced by other rules: an arity-2
// H-box reached over simple wires, or one of a simple-connected pair of
// arity-2 H-boxes, collapses back into a single edge.
type HadamardFusion struct {
	V zxgraph.VertexID

	undoState
}

// NewHadamardFusion builds the rule for H-box v.
func NewHadamardFusion(v zxgraph.VertexID) *HadamardFusion {
	return &HadamardFusion{V: v}
}

// IsApplicable mirrors HadamardRule: the rewrite shape is identical, only
// the matcher differs.
func (r *HadamardFusion) IsApplicable(g *zxgraph.Graph) bool {
	v := g.Vertex(r.V)
	if v == nil || !v.IsHBox() || g.NumNeighbors(r.V) != 2 {
		return false
	}
	nbs := g.Neighbors(r.V)

	return nbs[0].ID != nbs[1].ID
}

// Apply replaces the H-box by an edge.
func (r *HadamardFusion) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	r.begin(g, r.CoreVertices())
	replaceHBoxByEdge(g, r.V)

	return true
}

// CoreVertices returns the H-box id.
func (r *HadamardFusion) CoreVertices() []zxgraph.VertexID {
	return []zxgraph.VertexID{r.V}
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *HadamardFusion) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *HadamardFusion) Radius() int { return 1 }
