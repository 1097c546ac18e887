package heuristic

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/zxcalc/rule"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// TwoQCost returns edges − vertices, the 2Q-cost of a graph-like
// diagram.
func TwoQCost(g *zxgraph.Graph) int {
	return g.NumEdges() - g.NumVertices()
}

// TwoQubitDecrease predicts the 2Q-cost drop of applying r and sweeping
// isolated vertices, without mutating the graph. The second return is
// false when r is not one of the flow-preserving rules or is not
// applicable.
func TwoQubitDecrease(r rule.Rule, g *zxgraph.Graph) (int, bool) {
	if !r.IsApplicable(g) {
		return 0, false
	}

	switch m := r.(type) {
	case *rule.IdentityFusion:
		return identityFusionDecrease(m, g), true
	case *rule.LCompUnfusion:
		return lcompUnfusionDecrease(m, g), true
	case *rule.PivotUnfusion:
		return pivotUnfusionDecrease(m, g), true
	default:
		return 0, false
	}
}

// identityFusionDecrease counts the fused pair's shared structure: every
// common neighbor loses two wires (the cancelling Hadamard pair), a
// direct wire between the endpoints folds away, and degree-2 common
// neighbors — the fused identity among them — end up isolated and
// swept.
func identityFusionDecrease(r *rule.IdentityFusion, g *zxgraph.Graph) int {
	left, _ := g.FirstNeighbor(r.V)
	right, _ := g.SecondNeighbor(r.V)

	common := intersectSorted(g.NeighborIDs(left.ID), g.NeighborIDs(right.ID))

	eDecrease := 2 * len(common)
	if g.IsNeighbor(left.ID, right.ID) {
		eDecrease++
	}

	vDecrease := 1 // the merged-away endpoint
	for _, id := range common {
		if g.NumNeighbors(id) == 2 {
			vDecrease++
		}
	}

	return eDecrease - vDecrease
}

// lcompUnfusionDecrease scores complementing the retained clique: toggled
// pairs count double (an existing wire removed vs. a new one added), the
// removed spider frees its degree, and each unfusion pays two vertices
// and two wires.
func lcompUnfusionDecrease(r *rule.LCompUnfusion, g *zxgraph.Graph) int {
	retained := subtractSorted(g.NeighborIDs(r.V), r.NeighborsToUnfuse)

	numUnfusions := 0
	if len(r.NeighborsToUnfuse) > 0 || g.Vertex(r.V).Phase.Denominator() != 2 {
		numUnfusions = 1
	}

	cliqueSize := len(retained) + numUnfusions
	maxNewEdges := cliqueSize * (cliqueSize - 1) / 2

	numEdges := 0
	if len(retained) >= 2 {
		for _, pair := range combin.Combinations(len(retained), 2) {
			if g.IsNeighborOfType(retained[pair[0]], retained[pair[1]], zxgraph.Hadamard) {
				numEdges++
			}
		}
	}

	eDecrease := 2*numEdges - maxNewEdges + cliqueSize - 2*numUnfusions
	vDecrease := 1 - 2*numUnfusions

	return eDecrease - vDecrease
}

// pivotUnfusionDecrease scores the pivot complementation across the
// three partitions, the removal of both endpoints, and the unfusion
// overhead of each non-n·π or neighbor-shedding endpoint.
func pivotUnfusionDecrease(r *rule.PivotUnfusion, g *zxgraph.Graph) int {
	n1 := subtractSorted(g.NeighborIDs(r.V0), append([]zxgraph.VertexID{r.V1}, r.NeighborsToUnfuseV0...))
	n2 := subtractSorted(g.NeighborIDs(r.V1), append([]zxgraph.VertexID{r.V0}, r.NeighborsToUnfuseV1...))

	common := intersectSorted(n1, n2)
	n1 = subtractSorted(n1, common)
	n2 = subtractSorted(n2, common)

	countH := func(a, b []zxgraph.VertexID) int {
		count := 0
		for _, u := range a {
			for _, v := range b {
				if g.IsNeighborOfType(u, v, zxgraph.Hadamard) {
					count++
				}
			}
		}

		return count
	}
	numEdges := countH(n1, n2) + countH(n1, common) + countH(n2, common)

	doUnfusion1 := len(r.NeighborsToUnfuseV0) > 0 || !g.Vertex(r.V0).HasNPiPhase()
	doUnfusion2 := len(r.NeighborsToUnfuseV1) > 0 || !g.Vertex(r.V1).HasNPiPhase()

	numV1 := len(n1) + boolToInt(doUnfusion1)
	numV2 := len(n2) + boolToInt(doUnfusion2)
	numUnfusions := boolToInt(doUnfusion1) + boolToInt(doUnfusion2)
	numCommon := len(common)

	maxNewEdges := numV1*numV2 + numV1*numCommon + numV2*numCommon

	eDecrease := 2*numEdges - maxNewEdges +
		numV1 + numV2 + 2*numCommon + 1 -
		2*numUnfusions
	vDecrease := 2 - 2*numUnfusions

	return eDecrease - vDecrease
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

// intersectSorted returns the intersection of two ascending id slices.
func intersectSorted(a, b []zxgraph.VertexID) []zxgraph.VertexID {
	var out []zxgraph.VertexID
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// subtractSorted returns a \ b for ascending a and any-order b.
func subtractSorted(a, b []zxgraph.VertexID) []zxgraph.VertexID {
	drop := make(map[zxgraph.VertexID]struct{}, len(b))
	for _, id := range b {
		drop[id] = struct{}{}
	}
	var out []zxgraph.VertexID
	for _, id := range a {
		if _, gone := drop[id]; !gone {
			out = append(out, id)
		}
	}

	return out
}
