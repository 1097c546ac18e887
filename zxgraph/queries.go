package zxgraph

import "sort"

// IsValid checks the structural invariants: every adjacency record has its
// symmetric twin, and every boundary vertex has exactly one neighbor.
// Intended for tests and debug assertions.
// Complexity: O(V + E).
func (g *Graph) IsValid() bool {
	for _, v := range g.inputs {
		if len(v.adj) != 1 {
			return false
		}
	}
	for _, v := range g.outputs {
		if len(v.adj) != 1 {
			return false
		}
	}
	for id, v := range g.vertices {
		for nb := range v.adj {
			w, ok := g.vertices[nb.ID]
			if !ok {
				return false
			}
			if _, ok := w.adj[Neighbor{ID: id, Type: nb.Type}]; !ok {
				return false
			}
		}
	}

	return true
}

// IsGraphLike reports whether the diagram is graph-like: every non-boundary
// vertex is a Z-spider, every spider–spider edge is Hadamard, every
// boundary edge is simple, and every boundary has exactly one neighbor.
// Complexity: O(V + E).
func (g *Graph) IsGraphLike() bool {
	for _, v := range g.vertices {
		if !v.IsZ() && !v.IsBoundary() {
			return false
		}
		for nb := range v.adj {
			w := g.vertices[nb.ID]
			if v.IsBoundary() || w.IsBoundary() {
				if nb.Type != Simple {
					return false
				}

				continue
			}
			if nb.Type != Hadamard {
				return false
			}
		}
	}
	for _, v := range g.inputs {
		if len(v.adj) != 1 {
			return false
		}
	}
	for _, v := range g.outputs {
		if len(v.adj) != 1 {
			return false
		}
	}

	return true
}

// IsIdentity reports whether every input connects straight to the output
// of the same qubit.
func (g *Graph) IsIdentity() bool {
	for _, in := range g.inputs {
		if len(in.adj) != 1 {
			return false
		}
		nb, _ := g.FirstNeighbor(in.ID)
		w := g.vertices[nb.ID]
		if !g.IsOutput(w) || w.Qubit != in.Qubit {
			return false
		}
	}

	return true
}

// TCount counts spiders carrying an odd multiple of π/4.
func (g *Graph) TCount() int {
	count := 0
	for _, v := range g.vertices {
		if v.Phase.IsT() {
			count++
		}
	}

	return count
}

// NonCliffordCount counts spiders whose phase is not a multiple of π/2.
func (g *Graph) NonCliffordCount() int {
	count := 0
	for _, v := range g.vertices {
		if !v.Phase.IsClifford() {
			count++
		}
	}

	return count
}

// Density returns Σ deg(v)² / |V|, a proxy for how entangled the diagram
// is. Zero for an empty graph.
func (g *Graph) Density() float64 {
	if len(g.vertices) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range g.vertices {
		d := float64(len(v.adj))
		sum += d * d
	}

	return sum / float64(len(g.vertices))
}

// NumGadgets counts non-boundary vertices of degree one (phase-gadget
// leaves and other danglers).
func (g *Graph) NumGadgets() int {
	count := 0
	for _, v := range g.vertices {
		if !v.IsBoundary() && len(v.adj) == 1 {
			count++
		}
	}

	return count
}

// IsGadgetLeaf reports whether v is the leaf of a phase gadget: a Z-spider
// whose single neighbor is a Z-spider with an n·π phase, reached over a
// Hadamard edge.
func (g *Graph) IsGadgetLeaf(id VertexID) bool {
	v := g.vertices[id]
	if v == nil || !v.IsZ() || len(v.adj) != 1 {
		return false
	}
	nb, _ := g.FirstNeighbor(id)
	axel := g.vertices[nb.ID]

	return nb.Type == Hadamard && axel.IsZ() && axel.HasNPiPhase()
}

// IsGadgetAxel reports whether v is the axel of a phase gadget: a Z-spider
// with an n·π phase holding at least one gadget leaf by a Hadamard edge.
func (g *Graph) IsGadgetAxel(id VertexID) bool {
	v := g.vertices[id]
	if v == nil || !v.IsZ() || !v.HasNPiPhase() {
		return false
	}
	for _, nb := range g.Neighbors(id) {
		w := g.vertices[nb.ID]
		if nb.Type == Hadamard && w.IsZ() && len(w.adj) == 1 {
			return true
		}
	}

	return false
}

// HasDanglingNeighbors reports whether any neighbor of v has degree one.
func (g *Graph) HasDanglingNeighbors(id VertexID) bool {
	for _, nb := range g.Neighbors(id) {
		if len(g.vertices[nb.ID].adj) == 1 {
			return true
		}
	}

	return false
}

// ClosedNeighborhood returns the ids reachable from `seeds` in at most
// `level` steps, seeds included, in ascending order. Unknown seed ids are
// skipped.
// Complexity: O(ball size · log).
func (g *Graph) ClosedNeighborhood(seeds []VertexID, level int) []VertexID {
	visited := make(map[VertexID]struct{}, len(seeds))
	frontier := make([]VertexID, 0, len(seeds))
	for _, id := range seeds {
		if !g.HasVertex(id) {
			continue
		}
		if _, seen := visited[id]; !seen {
			visited[id] = struct{}{}
			frontier = append(frontier, id)
		}
	}

	for step := 0; step < level && len(frontier) > 0; step++ {
		var next []VertexID
		for _, id := range frontier {
			for nb := range g.vertices[id].adj {
				if _, seen := visited[nb.ID]; !seen {
					visited[nb.ID] = struct{}{}
					next = append(next, nb.ID)
				}
			}
		}
		frontier = next
	}

	out := make([]VertexID, 0, len(visited))
	for id := range visited {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// IsolatedVertexIDs returns the ids of zero-degree vertices in ascending
// order.
func (g *Graph) IsolatedVertexIDs() []VertexID {
	var out []VertexID
	for id, v := range g.vertices {
		if len(v.adj) == 0 {
			out = append(out, id)
		}
	}
	sort.Ints(out)

	return out
}
