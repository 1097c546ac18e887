package rule

import (
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// SpiderFusion merges two same-color spiders connected by a simple edge:
// V1 dissolves into V0, phases sum, and every edge incident to V1
// transfers to V0 under the edge algebra (a parallel Hadamard wire between
// the pair folds into a π phase as a self-loop; Hopf pairs cancel).
type SpiderFusion struct {
	V0 zxgraph.VertexID
	V1 zxgraph.VertexID

	undoState
}

// NewSpiderFusion builds the rule merging v1 into v0.
func NewSpiderFusion(v0, v1 zxgraph.VertexID) *SpiderFusion {
	return &SpiderFusion{V0: v0, V1: v1}
}

// IsApplicable reports whether both vertices are spiders of the same
// color connected by a simple edge.
func (r *SpiderFusion) IsApplicable(g *zxgraph.Graph) bool {
	v0, v1 := g.Vertex(r.V0), g.Vertex(r.V1)

	return v0 != nil && v1 != nil && v0 != v1 &&
		v0.IsZX() && v0.Type == v1.Type &&
		g.IsNeighborOfType(r.V0, r.V1, zxgraph.Simple)
}

// Apply merges V1 into V0.
func (r *SpiderFusion) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	r.begin(g, r.CoreVertices())

	v0 := g.Vertex(r.V0)
	v0.Phase = v0.Phase.Add(g.Vertex(r.V1).Phase)

	// Transfer every record of V1; an edge back to V0 arrives as a
	// self-loop and folds into the phase.
	for _, nb := range g.Neighbors(r.V1) {
		_ = g.AddEdge(r.V0, nb.ID, nb.Type)
	}
	_ = g.RemoveVertex(r.V1)

	return true
}

// CoreVertices returns the merged pair.
func (r *SpiderFusion) CoreVertices() []zxgraph.VertexID {
	return []zxgraph.VertexID{r.V0, r.V1}
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *SpiderFusion) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *SpiderFusion) Radius() int { return 1 }
