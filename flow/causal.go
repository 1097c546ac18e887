package flow

import (
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// CausalFlow is the result of a successful causal-flow calculation.
type CausalFlow struct {
	// Order maps each corrector to the layer (1-based) it fired in.
	Order map[zxgraph.VertexID]int

	// Successor maps each non-output vertex to its successor.
	Successor map[zxgraph.VertexID]zxgraph.VertexID

	// Depth is the number of layers processed.
	Depth int
}

// corrector is one processed vertex still hunting for its predecessor,
// with its not-yet-processed neighborhood shrunk in place.
type corrector struct {
	v       zxgraph.VertexID
	pending []zxgraph.VertexID
}

// pendingNeighbors lists v's neighbors outside `processed`.
func pendingNeighbors(g *zxgraph.Graph, v zxgraph.VertexID, processed map[zxgraph.VertexID]struct{}) []zxgraph.VertexID {
	var out []zxgraph.VertexID
	for _, id := range g.NeighborIDs(v) {
		if _, done := processed[id]; !done {
			out = append(out, id)
		}
	}

	return out
}

// loopThroughCorrectors is the core causal-flow loop. onLastNeighbor
// fires when corrector v claims predecessor pred; onLevelEnd fires after
// each completed layer. Returns whether every vertex was processed.
func loopThroughCorrectors(
	g *zxgraph.Graph,
	onLastNeighbor func(v, pred zxgraph.VertexID),
	onLevelEnd func(),
) bool {
	processed := make(map[zxgraph.VertexID]struct{}, g.NumVertices())
	isInput := make(map[zxgraph.VertexID]struct{}, g.NumInputs())
	for _, v := range g.Inputs() {
		isInput[v.ID] = struct{}{}
	}
	for _, v := range g.Outputs() {
		processed[v.ID] = struct{}{}
	}

	var correctors []corrector
	for _, v := range g.Outputs() {
		if _, in := isInput[v.ID]; !in {
			correctors = append(correctors, corrector{v: v.ID, pending: pendingNeighbors(g, v.ID, processed)})
		}
	}

	for {
		var fired []zxgraph.VertexID
		claimed := make(map[zxgraph.VertexID]struct{})

		for i := range correctors {
			c := &correctors[i]

			// Shrink the pending list in place.
			kept := c.pending[:0]
			for _, id := range c.pending {
				if _, done := processed[id]; !done {
					kept = append(kept, id)
				}
			}
			c.pending = kept

			if len(c.pending) != 1 {
				continue
			}
			pred := c.pending[0]

			onLastNeighbor(c.v, pred)
			if _, dup := claimed[pred]; !dup {
				claimed[pred] = struct{}{}
				fired = append(fired, pred)
			}
		}

		if len(fired) == 0 {
			return len(processed) == g.NumVertices()
		}

		for _, id := range fired {
			processed[id] = struct{}{}
		}

		// Retire correctors that fired (or ran dry) and enlist the new
		// layer.
		kept := correctors[:0]
		for _, c := range correctors {
			if len(c.pending) != 1 && len(c.pending) != 0 {
				kept = append(kept, c)
			}
		}
		correctors = kept
		for _, id := range fired {
			if _, in := isInput[id]; !in {
				correctors = append(correctors, corrector{v: id, pending: pendingNeighbors(g, id, processed)})
			}
		}

		onLevelEnd()
	}
}

// HasCausalFlow reports whether the diagram admits a causal flow. It
// records nothing and is the fast path of the optimizer's acceptance
// check.
// Complexity: O(V + E) amortized over the corrector loop.
func HasCausalFlow(g *zxgraph.Graph) bool {
	return loopThroughCorrectors(g, func(zxgraph.VertexID, zxgraph.VertexID) {}, func() {})
}

// CalculateCausalFlow returns the causal flow — layer order and
// successor map — or nil when the diagram has none.
func CalculateCausalFlow(g *zxgraph.Graph) *CausalFlow {
	flow := &CausalFlow{
		Order:     make(map[zxgraph.VertexID]int, g.NumVertices()),
		Successor: make(map[zxgraph.VertexID]zxgraph.VertexID, g.NumVertices()),
		Depth:     1,
	}

	ok := loopThroughCorrectors(g,
		func(v, pred zxgraph.VertexID) {
			if _, dup := flow.Order[v]; !dup {
				flow.Order[v] = flow.Depth
			}
			if _, dup := flow.Successor[pred]; !dup {
				flow.Successor[pred] = v
			}
		},
		func() { flow.Depth++ },
	)
	if !ok {
		return nil
	}

	return flow
}

// CalculateCausalFlowPredecessors returns only the predecessor map
// (successor → corrector inverted), or nil when the diagram has no
// causal flow. Cheaper than CalculateCausalFlow when the order is not
// needed.
func CalculateCausalFlowPredecessors(g *zxgraph.Graph) map[zxgraph.VertexID]zxgraph.VertexID {
	pred := make(map[zxgraph.VertexID]zxgraph.VertexID, g.NumVertices())

	ok := loopThroughCorrectors(g,
		func(v, p zxgraph.VertexID) {
			if _, dup := pred[v]; !dup {
				pred[v] = p
			}
		},
		func() {},
	)
	if !ok {
		return nil
	}

	return pred
}
