package action

import (
	"github.com/katalvlaran/zxcalc/phase"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// GadgetizePhase moves a Z-spider's phase onto a fresh phase gadget: v
// keeps KeepPhase, and a new axel Z-spider (phase 0) hangs off v by a
// Hadamard wire, itself Hadamard-connected to a new leaf Z-spider carrying
// phase(v) − KeepPhase.
type GadgetizePhase struct {
	V         zxgraph.VertexID
	KeepPhase phase.Phase

	axel zxgraph.VertexID
	leaf zxgraph.VertexID
	snap *zxgraph.Snapshot
}

// NewGadgetizePhase builds the action; the vertex keeps phase 0.
func NewGadgetizePhase(v zxgraph.VertexID) *GadgetizePhase {
	return &GadgetizePhase{V: v, KeepPhase: phase.Zero()}
}

// AxelID returns the axel spider the last Apply created.
func (a *GadgetizePhase) AxelID() zxgraph.VertexID { return a.axel }

// LeafID returns the leaf spider the last Apply created.
func (a *GadgetizePhase) LeafID() zxgraph.VertexID { return a.leaf }

// Apply gadgetizes the phase. Fails when v is not a Z-spider.
func (a *GadgetizePhase) Apply(g *zxgraph.Graph) bool {
	v := g.Vertex(a.V)
	if v == nil || !v.IsZ() {
		return false
	}

	a.snap = capture(g, a.V)

	axel := g.AddVertexAt(zxgraph.Z, phase.Zero(), -1, v.Col)
	leaf := g.AddVertexAt(zxgraph.Z, v.Phase.Sub(a.KeepPhase), -2, v.Col)
	a.axel, a.leaf = axel.ID, leaf.ID

	v.Phase = a.KeepPhase
	_ = g.AddEdge(a.V, axel.ID, zxgraph.Hadamard)
	_ = g.AddEdge(axel.ID, leaf.ID, zxgraph.Hadamard)

	return true
}

// Undo removes the gadget and puts the phase back on v.
func (a *GadgetizePhase) Undo(g *zxgraph.Graph) bool {
	if a.snap == nil {
		return false
	}

	return a.snap.Restore(g)
}
