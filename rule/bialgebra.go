package rule

import (
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// Bialgebra applies the bialgebra rewrite across a simple Z–X edge: both
// endpoints vanish and every neighbor of one connects to every neighbor
// of the other by a simple wire.
type Bialgebra struct {
	V0 zxgraph.VertexID
	V1 zxgraph.VertexID

	undoState
}

// NewBialgebra builds the rule for the edge (v0, v1).
func NewBialgebra(v0, v1 zxgraph.VertexID) *Bialgebra {
	return &Bialgebra{V0: v0, V1: v1}
}

// IsApplicable reports whether (V0, V1) is a simple edge between a
// phase-0 Z and a phase-0 X spider, both with more than one neighbor,
// whose surrounding edges are all simple and whose neighbors all carry
// the opposite color with phase 0.
func (r *Bialgebra) IsApplicable(g *zxgraph.Graph) bool {
	v0, v1 := g.Vertex(r.V0), g.Vertex(r.V1)
	if v0 == nil || v1 == nil {
		return false
	}
	if !g.IsNeighborOfType(r.V0, r.V1, zxgraph.Simple) {
		return false
	}
	if !v0.Phase.IsZero() || !v1.Phase.IsZero() {
		return false
	}
	zxPair := (v0.IsZ() && v1.IsX()) || (v0.IsX() && v1.IsZ())
	if !zxPair {
		return false
	}
	if g.NumNeighbors(r.V0) <= 1 || g.NumNeighbors(r.V1) <= 1 {
		return false
	}

	ok := func(center *zxgraph.Vertex, opposite zxgraph.VertexType) bool {
		for _, nb := range g.Neighbors(center.ID) {
			if nb.Type != zxgraph.Simple {
				return false
			}
			w := g.Vertex(nb.ID)
			if w.Type != opposite || !w.Phase.IsZero() {
				return false
			}
		}

		return true
	}

	return ok(v0, v1.Type) && ok(v1, v0.Type)
}

// Apply performs the rewrite.
func (r *Bialgebra) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	r.begin(g, r.CoreVertices())

	left := subtract(g.NeighborIDs(r.V0), []zxgraph.VertexID{r.V1})
	right := subtract(g.NeighborIDs(r.V1), []zxgraph.VertexID{r.V0})

	_ = g.RemoveVertex(r.V0)
	_ = g.RemoveVertex(r.V1)

	for _, a := range left {
		for _, b := range right {
			_ = g.AddEdge(a, b, zxgraph.Simple)
		}
	}

	return true
}

// CoreVertices returns the consumed edge endpoints.
func (r *Bialgebra) CoreVertices() []zxgraph.VertexID {
	return []zxgraph.VertexID{r.V0, r.V1}
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *Bialgebra) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *Bialgebra) Radius() int { return 1 }
