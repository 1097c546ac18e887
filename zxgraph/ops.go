package zxgraph

import (
	"github.com/katalvlaran/zxcalc/phase"
)

// Adjoint reverses the diagram: inputs and outputs swap roles and every
// phase is negated. Layout columns are mirrored so dumps read left to
// right.
// Complexity: O(V).
func (g *Graph) Adjoint() {
	g.inputs, g.outputs = g.outputs, g.inputs
	g.inputList, g.outputList = g.outputList, g.inputList

	maxCol := 0.0
	for _, v := range g.vertices {
		if v.Col > maxCol {
			maxCol = v.Col
		}
	}
	for _, v := range g.vertices {
		v.Phase = v.Phase.Neg()
		v.Col = maxCol - v.Col
	}
}

// AddGadget attaches a phase gadget of phase p to the given spiders: a
// fresh axel Z-spider (phase 0) Hadamard-connected to a fresh leaf
// Z-spider (phase p), with the axel Hadamard-connected to every target.
// Returns the (axel, leaf) pair, or (nil, nil) if any target is a boundary
// or H-box.
func (g *Graph) AddGadget(p phase.Phase, targets []VertexID) (axel, leaf *Vertex) {
	for _, id := range targets {
		v := g.vertices[id]
		if v == nil || v.IsBoundary() || v.IsHBox() {
			return nil, nil
		}
	}

	axel = g.AddVertexAt(Z, phase.Zero(), -1, 0)
	leaf = g.AddVertexAt(Z, p, -2, 0)

	record(axel, leaf, Hadamard)
	for _, id := range targets {
		_ = g.AddEdge(id, axel.ID, Hadamard)
	}

	return axel, leaf
}

// RemoveGadget removes the phase gadget whose leaf is `leaf`: both the
// leaf and its axel are deleted. No-op when leaf is not a gadget leaf.
func (g *Graph) RemoveGadget(leaf VertexID) {
	if !g.IsGadgetLeaf(leaf) {
		return
	}
	nb, _ := g.FirstNeighbor(leaf)
	_ = g.RemoveVertex(nb.ID)
	_ = g.RemoveVertex(leaf)
}

// TopologicalOrder returns the vertices in DFS finishing order seeded from
// the inputs (then any unreached vertices by ascending id), a stable order
// collaborators use for printing and extraction.
// Complexity: O(V + E).
func (g *Graph) TopologicalOrder() []*Vertex {
	visited := make(map[VertexID]struct{}, len(g.vertices))
	var order []*Vertex

	var dfs func(v *Vertex)
	dfs = func(v *Vertex) {
		visited[v.ID] = struct{}{}
		for _, nb := range g.Neighbors(v.ID) {
			if _, seen := visited[nb.ID]; !seen {
				dfs(g.vertices[nb.ID])
			}
		}
		order = append(order, v)
	}

	for _, v := range g.inputs {
		if _, seen := visited[v.ID]; !seen {
			dfs(v)
		}
	}
	for _, v := range g.Vertices() {
		if _, seen := visited[v.ID]; !seen {
			dfs(v)
		}
	}

	return order
}

// AddBuffer splices a phase-0 Z-spider between `protect` and `from` on
// their (protect, et, from) edge: the buffer reaches `protect` over the
// toggled edge type and `from` over a Hadamard edge, so the two original
// endpoints no longer touch. Returns the buffer vertex, or nil when no
// such edge exists.
func (g *Graph) AddBuffer(protect, from VertexID, et EdgeType) *Vertex {
	if !g.IsNeighborOfType(protect, from, et) {
		return nil
	}

	buffer := g.AddVertexAt(Z, phase.Zero(),
		g.vertices[protect].Row,
		(g.vertices[protect].Col+g.vertices[from].Col)/2)

	_ = g.AddEdge(protect, buffer.ID, ToggleEdge(et))
	_ = g.AddEdge(buffer.ID, from, Hadamard)
	_ = g.RemoveEdge(protect, from, et)

	return buffer
}
