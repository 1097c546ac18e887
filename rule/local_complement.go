package rule

import (
	"github.com/katalvlaran/zxcalc/phase"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// LocalComplement removes a ±π/2 Z-spider and complements the Hadamard
// edges among its neighborhood, subtracting the removed phase from every
// neighbor.
type LocalComplement struct {
	V zxgraph.VertexID

	undoState
}

// NewLocalComplement builds the rule for vertex v.
func NewLocalComplement(v zxgraph.VertexID) *LocalComplement {
	return &LocalComplement{V: v}
}

// IsApplicable reports whether v is a Z-spider with phase ±π/2 whose
// neighbors are all Z-spiders reached over Hadamard edges.
func (r *LocalComplement) IsApplicable(g *zxgraph.Graph) bool {
	v := g.Vertex(r.V)
	if v == nil || !v.IsZ() {
		return false
	}
	if !v.Phase.Equal(phase.PiHalf()) && !v.Phase.Equal(phase.New(-1, 2)) {
		return false
	}
	for _, nb := range g.Neighbors(r.V) {
		if nb.Type != zxgraph.Hadamard || !g.Vertex(nb.ID).IsZ() {
			return false
		}
	}

	return true
}

// Apply performs the complementation: delete v, toggle the Hadamard edge
// inside every neighbor pair, and subtract phase(v) from each neighbor.
func (r *LocalComplement) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	r.begin(g, r.CoreVertices())

	p := g.Vertex(r.V).Phase
	neighbors := g.NeighborIDs(r.V)

	_ = g.RemoveVertex(r.V)

	for i, a := range neighbors {
		w := g.Vertex(a)
		w.Phase = w.Phase.Sub(p)
		for _, b := range neighbors[i+1:] {
			// The edge algebra toggles: present pairs cancel, absent
			// pairs record.
			_ = g.AddEdge(a, b, zxgraph.Hadamard)
		}
	}

	return true
}

// CoreVertices returns the removed spider's id.
func (r *LocalComplement) CoreVertices() []zxgraph.VertexID {
	return []zxgraph.VertexID{r.V}
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *LocalComplement) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *LocalComplement) Radius() int { return 1 }
