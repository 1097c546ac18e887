package rule

import (
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// StateCopy pushes a degree-1 Z-spider carrying 0 or π through its
// Z-spider neighbor: both vanish, every internal neighbor of the carrier
// absorbs the copied phase, and boundary neighbors get a fresh spider
// carrying it interposed on their wire.
type StateCopy struct {
	V       zxgraph.VertexID // the state spider (phase 0 or π, degree 1)
	Carrier zxgraph.VertexID // its Z-spider neighbor

	undoState
}

// NewStateCopy builds the rule.
func NewStateCopy(v, carrier zxgraph.VertexID) *StateCopy {
	return &StateCopy{V: v, Carrier: carrier}
}

// IsApplicable reports whether V is a Z-spider with phase 0 or π whose
// single neighbor is the Z-spider Carrier.
func (r *StateCopy) IsApplicable(g *zxgraph.Graph) bool {
	v, carrier := g.Vertex(r.V), g.Vertex(r.Carrier)
	if v == nil || carrier == nil || !v.IsZ() || !carrier.IsZ() {
		return false
	}
	if !v.Phase.IsNPi() {
		return false
	}
	if g.NumNeighbors(r.V) != 1 {
		return false
	}
	nb, _ := g.FirstNeighbor(r.V)

	return nb.ID == r.Carrier
}

// Apply copies the state through the carrier.
func (r *StateCopy) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	r.begin(g, r.CoreVertices())

	copied := g.Vertex(r.V).Phase
	neighbors := g.Neighbors(r.Carrier)

	_ = g.RemoveVertex(r.V)

	for _, nb := range neighbors {
		if nb.ID == r.V {
			continue
		}
		w := g.Vertex(nb.ID)
		if !w.IsBoundary() {
			w.Phase = w.Phase.Add(copied)

			continue
		}
		// A boundary cannot absorb a phase: interpose a fresh spider
		// carrying the copy, toggling the wire it sits on.
		fresh := g.AddVertexAt(zxgraph.Z, copied, w.Row, (w.Col+g.Vertex(r.Carrier).Col)/2)
		_ = g.RemoveEdge(r.Carrier, nb.ID, nb.Type)
		_ = g.AddEdge(fresh.ID, nb.ID, zxgraph.ToggleEdge(nb.Type))
	}

	_ = g.RemoveVertex(r.Carrier)

	return true
}

// CoreVertices returns the state spider and its carrier.
func (r *StateCopy) CoreVertices() []zxgraph.VertexID {
	return []zxgraph.VertexID{r.V, r.Carrier}
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *StateCopy) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *StateCopy) Radius() int { return 1 }
