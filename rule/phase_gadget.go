package rule

import (
	"github.com/katalvlaran/zxcalc/phase"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// PhaseGadget fuses a group of phase gadgets whose axels hang off
// identical neighbor sets: the leaf phases sum onto one surviving gadget
// and the rest disappear. A π on an axel is absorbed by negating its leaf
// phase first.
type PhaseGadget struct {
	// Axels[i] is the axel whose leaf is Leaves[i]; index 0 survives.
	Axels  []zxgraph.VertexID
	Leaves []zxgraph.VertexID

	undoState
}

// NewPhaseGadget builds the rule for a gadget group.
func NewPhaseGadget(axels, leaves []zxgraph.VertexID) *PhaseGadget {
	return &PhaseGadget{Axels: axels, Leaves: leaves}
}

// gadgetGroup returns the sorted non-leaf neighbor ids of an axel.
func gadgetGroup(g *zxgraph.Graph, axel, leaf zxgraph.VertexID) []zxgraph.VertexID {
	return subtract(g.NeighborIDs(axel), []zxgraph.VertexID{leaf})
}

// IsApplicable reports whether every (axel, leaf) pair still forms a
// gadget, all axels share one neighbor group, and the group is worth
// fusing (more than one gadget, or a π axel to normalize).
func (r *PhaseGadget) IsApplicable(g *zxgraph.Graph) bool {
	if len(r.Axels) == 0 || len(r.Axels) != len(r.Leaves) {
		return false
	}

	flip := false
	var group []zxgraph.VertexID
	for i, axelID := range r.Axels {
		leafID := r.Leaves[i]
		axel, leaf := g.Vertex(axelID), g.Vertex(leafID)
		if axel == nil || leaf == nil {
			return false
		}
		if !leaf.IsZ() || g.NumNeighbors(leafID) != 1 ||
			!g.IsNeighborOfType(leafID, axelID, zxgraph.Hadamard) {
			return false
		}
		if !axel.IsZ() || axel.IsBoundary() || !axel.HasNPiPhase() {
			return false
		}
		if axel.Phase.Equal(phase.Pi()) {
			flip = true
		}

		grp := gadgetGroup(g, axelID, leafID)
		if len(grp) == 0 {
			return false
		}
		if i == 0 {
			group = grp

			continue
		}
		if len(grp) != len(group) {
			return false
		}
		for j := range grp {
			if grp[j] != group[j] {
				return false
			}
		}
	}

	return len(r.Axels) > 1 || flip
}

// Apply fuses the group onto the first gadget.
func (r *PhaseGadget) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	r.begin(g, r.CoreVertices())

	// Absorb π axels into their leaf phases.
	total := phase.Zero()
	for i, axelID := range r.Axels {
		axel := g.Vertex(axelID)
		leaf := g.Vertex(r.Leaves[i])
		if axel.Phase.Equal(phase.Pi()) {
			axel.Phase = phase.Zero()
			leaf.Phase = leaf.Phase.Neg()
		}
		total = total.Add(leaf.Phase)
	}

	g.Vertex(r.Leaves[0]).Phase = total
	for i := 1; i < len(r.Axels); i++ {
		_ = g.RemoveVertex(r.Axels[i])
		_ = g.RemoveVertex(r.Leaves[i])
	}

	return true
}

// CoreVertices returns every axel and leaf of the group.
func (r *PhaseGadget) CoreVertices() []zxgraph.VertexID {
	out := make([]zxgraph.VertexID, 0, len(r.Axels)+len(r.Leaves))
	out = append(out, r.Axels...)
	out = append(out, r.Leaves...)

	return sortedIDs(out)
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *PhaseGadget) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *PhaseGadget) Radius() int { return 1 }
