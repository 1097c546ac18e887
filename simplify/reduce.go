package simplify

import (
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// InteriorCliffordSimp removes interior Clifford structure to a fixed
// point: identity removal, spider fusion, pivot, and local
// complementation round-robin until a full round changes nothing.
// Returns the number of rounds that changed the graph.
func InteriorCliffordSimp(g *zxgraph.Graph, opts Options) int {
	opts.normalize()
	ToGraphLike(g, opts)

	iterations := 0
	for ; !opts.stopped(); iterations++ {
		i1 := IdentityRemovalSimp(g, opts)
		i2 := SpiderFusionSimp(g, opts)
		i3 := PivotSimp(g, opts)
		i4 := LocalComplementSimp(g, opts)
		if i1+i2+i3+i4 == 0 {
			return iterations
		}
	}

	return iterations
}

// CliffordSimp alternates InteriorCliffordSimp with boundary pivots
// until no boundary pivot fires.
func CliffordSimp(g *zxgraph.Graph, opts Options) int {
	opts.normalize()

	iterations := 0
	for !opts.stopped() {
		iterations += InteriorCliffordSimp(g, opts)
		if PivotBoundarySimp(g, opts) == 0 {
			break
		}
	}

	return iterations
}

// FullReduce is the classic reduction recipe: interior Clifford
// simplification and gadget pivots, then rounds of Clifford
// simplification, phase-gadget fusion, and gadget pivots until stable.
func FullReduce(g *zxgraph.Graph, opts Options) {
	opts.normalize()
	HadamardRuleSimp(g, opts)

	InteriorCliffordSimp(g, opts)
	PivotGadgetSimp(g, opts)
	for !opts.stopped() {
		CliffordSimp(g, opts)
		i1 := PhaseGadgetSimp(g, opts)
		InteriorCliffordSimp(g, opts)
		i2 := PivotGadgetSimp(g, opts)
		if i1+i2 == 0 {
			break
		}
	}
}

// DynamicReduce learns the optimal T-count by fully reducing a copy,
// then replays the reduction on the original, exiting as soon as that
// optimum is reached — keeping the density as low as possible.
func DynamicReduce(g *zxgraph.Graph, opts Options) {
	opts.normalize()
	HadamardRuleSimp(g, opts)

	probe := g.Clone()
	FullReduce(probe, opts)
	optimal := probe.TCount()

	opts.Logger.Debug("dynamic reduce", "optimal_t_count", optimal)
	DynamicReduceTo(g, optimal, opts)
}

// DynamicReduceTo runs the full-reduce loop but stops the moment the
// T-count reaches the given optimum.
func DynamicReduceTo(g *zxgraph.Graph, optimalTCount int, opts Options) {
	opts.normalize()

	InteriorCliffordSimp(g, opts)
	PivotGadgetSimp(g, opts)
	if g.TCount() == optimalTCount {
		return
	}

	for !opts.stopped() {
		CliffordSimp(g, opts)
		if g.TCount() == optimalTCount {
			break
		}
		i1 := PhaseGadgetSimp(g, opts)
		if g.TCount() == optimalTCount {
			break
		}
		InteriorCliffordSimp(g, opts)
		if g.TCount() == optimalTCount {
			break
		}
		i2 := PivotGadgetSimp(g, opts)
		if g.TCount() == optimalTCount {
			break
		}
		if i1+i2 == 0 {
			break
		}
	}
}

// SymbolicReduce is FullReduce with state copies propagated each round,
// finishing in X-spider form for symbolic inspection.
func SymbolicReduce(g *zxgraph.Graph, opts Options) {
	opts.normalize()
	HadamardRuleSimp(g, opts)

	InteriorCliffordSimp(g, opts)
	PivotGadgetSimp(g, opts)
	StateCopySimp(g, opts)
	for !opts.stopped() {
		CliffordSimp(g, opts)
		i1 := PhaseGadgetSimp(g, opts)
		InteriorCliffordSimp(g, opts)
		i2 := PivotGadgetSimp(g, opts)
		StateCopySimp(g, opts)
		if i1+i2 == 0 {
			break
		}
	}
	ToXGraph(g)
}
