package rule

import (
	"github.com/katalvlaran/zxcalc/action"
	"github.com/katalvlaran/zxcalc/phase"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// pivotRewrite performs the plain pivot on a Hadamard edge (u, v): any
// boundary still adjacent to either endpoint is first buffered behind a
// phase-0 Z-spider, then the joint neighborhood splits into
// exclusive and common parts, Hadamard edges toggle across every
// cross-partition pair, phases propagate, and the pair is deleted.
// Partitions are computed on sorted ids so the rewrite is reproducible.
func pivotRewrite(g *zxgraph.Graph, u, v zxgraph.VertexID) {
	for _, c := range []zxgraph.VertexID{u, v} {
		for _, nb := range g.Neighbors(c) {
			if g.Vertex(nb.ID).IsBoundary() {
				g.AddBuffer(nb.ID, c, nb.Type)
			}
		}
	}

	m0 := subtract(g.NeighborIDs(u), []zxgraph.VertexID{v})
	m1 := subtract(g.NeighborIDs(v), []zxgraph.VertexID{u})

	common := intersect(m0, m1)
	onlyU := subtract(m0, common)
	onlyV := subtract(m1, common)

	pu := g.Vertex(u).Phase
	pv := g.Vertex(v).Phase

	for _, a := range onlyU {
		for _, b := range onlyV {
			_ = g.AddEdge(a, b, zxgraph.Hadamard)
		}
		for _, b := range common {
			_ = g.AddEdge(a, b, zxgraph.Hadamard)
		}
	}
	for _, a := range onlyV {
		for _, b := range common {
			_ = g.AddEdge(a, b, zxgraph.Hadamard)
		}
	}

	for _, a := range onlyU {
		w := g.Vertex(a)
		w.Phase = w.Phase.Add(pv)
	}
	for _, a := range onlyV {
		w := g.Vertex(a)
		w.Phase = w.Phase.Add(pu)
	}
	for _, a := range common {
		w := g.Vertex(a)
		w.Phase = w.Phase.Add(pu).Add(pv).Add(phase.Pi())
	}

	_ = g.RemoveVertex(u)
	_ = g.RemoveVertex(v)
}

// neighborhoodFitsPivot checks that every neighbor of `center` is either a
// Z-spider over a Hadamard wire or a boundary, counting boundaries.
func neighborhoodFitsPivot(g *zxgraph.Graph, center zxgraph.VertexID, boundaries *int) bool {
	for _, nb := range g.Neighbors(center) {
		w := g.Vertex(nb.ID)
		if w.IsBoundary() {
			*boundaries++

			continue
		}
		if !w.IsZ() || nb.Type != zxgraph.Hadamard {
			return false
		}
	}

	return true
}

// Pivot is the plain pivot: a Hadamard edge between two n·π Z-spiders
// whose joint neighborhood is interior up to at most one boundary. Any
// boundary neighbor is buffered away before the complementation so the
// boundary degree-1 invariant survives.
type Pivot struct {
	V0 zxgraph.VertexID
	V1 zxgraph.VertexID

	undoState
}

// NewPivot builds the rule for the Hadamard edge (v0, v1).
func NewPivot(v0, v1 zxgraph.VertexID) *Pivot {
	return &Pivot{V0: v0, V1: v1}
}

// IsApplicable reports whether the pivot preconditions hold.
func (r *Pivot) IsApplicable(g *zxgraph.Graph) bool {
	v0, v1 := g.Vertex(r.V0), g.Vertex(r.V1)
	if v0 == nil || v1 == nil || !v0.IsZ() || !v1.IsZ() {
		return false
	}
	if !g.IsNeighborOfType(r.V0, r.V1, zxgraph.Hadamard) {
		return false
	}
	if !v0.HasNPiPhase() || !v1.HasNPiPhase() {
		return false
	}

	boundaries := 0
	if !neighborhoodFitsPivot(g, r.V0, &boundaries) ||
		!neighborhoodFitsPivot(g, r.V1, &boundaries) {
		return false
	}

	return boundaries <= 1
}

// Apply performs the pivot.
func (r *Pivot) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	r.begin(g, r.CoreVertices())

	if !action.NewBoundaryDetachment(r.V0).Apply(g) ||
		!action.NewBoundaryDetachment(r.V1).Apply(g) {
		r.abort()

		return false
	}
	pivotRewrite(g, r.V0, r.V1)

	return true
}

// CoreVertices returns the pivoted pair.
func (r *Pivot) CoreVertices() []zxgraph.VertexID {
	return []zxgraph.VertexID{r.V0, r.V1}
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *Pivot) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *Pivot) Radius() int { return 1 }

// PivotBoundary pivots a boundary-adjacent spider V0 against an interior
// n·π neighbor V1: the boundary edge is buffered, non-n·π phases are
// gadgetized away, then the plain pivot rewrite runs.
type PivotBoundary struct {
	V0 zxgraph.VertexID // adjacent to exactly one boundary
	V1 zxgraph.VertexID // interior, n·π phase

	undoState
}

// NewPivotBoundary builds the rule.
func NewPivotBoundary(v0, v1 zxgraph.VertexID) *PivotBoundary {
	return &PivotBoundary{V0: v0, V1: v1}
}

// IsApplicable reports whether V0 is a Z-spider with exactly one boundary
// neighbor, V1 an n·π Z-spider reached from V0 over a Hadamard wire, and
// both neighborhoods otherwise interior Z over Hadamard wires.
func (r *PivotBoundary) IsApplicable(g *zxgraph.Graph) bool {
	v0, v1 := g.Vertex(r.V0), g.Vertex(r.V1)
	if v0 == nil || v1 == nil || !v0.IsZ() || !v1.IsZ() {
		return false
	}
	if !g.IsNeighborOfType(r.V0, r.V1, zxgraph.Hadamard) || !v1.HasNPiPhase() {
		return false
	}
	if g.HasDanglingNeighbors(r.V1) {
		return false // V1 is the axel of a phase gadget
	}

	boundaries := 0
	if !neighborhoodFitsPivot(g, r.V0, &boundaries) {
		return false
	}
	if boundaries != 1 {
		return false
	}
	interior := 0

	return neighborhoodFitsPivot(g, r.V1, &interior) && interior == 0
}

// Apply detaches, gadgetizes, and pivots.
func (r *PivotBoundary) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	r.begin(g, r.CoreVertices())

	if !action.NewBoundaryDetachment(r.V0).Apply(g) {
		r.abort()

		return false
	}
	for _, id := range r.CoreVertices() {
		if !g.Vertex(id).HasNPiPhase() {
			if !action.NewGadgetizePhase(id).Apply(g) {
				r.abort()

				return false
			}
		}
	}
	pivotRewrite(g, r.V0, r.V1)

	return true
}

// CoreVertices returns the pivoted pair.
func (r *PivotBoundary) CoreVertices() []zxgraph.VertexID {
	return []zxgraph.VertexID{r.V0, r.V1}
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *PivotBoundary) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *PivotBoundary) Radius() int { return 1 }

// PivotGadget pivots a Hadamard edge where exactly V0 carries an n·π
// phase: V1's phase is pushed onto a fresh gadget first, then the plain
// pivot rewrite runs.
type PivotGadget struct {
	V0 zxgraph.VertexID // n·π phase
	V1 zxgraph.VertexID // non-n·π phase, to be gadgetized

	undoState
}

// NewPivotGadget builds the rule.
func NewPivotGadget(v0, v1 zxgraph.VertexID) *PivotGadget {
	return &PivotGadget{V0: v0, V1: v1}
}

// IsApplicable reports whether (V0, V1) is an interior Hadamard edge with
// exactly one n·π endpoint (V0), V1 not itself a gadget leaf, V0's
// neighbors interior and non-dangling, and V1's neighbors interior.
func (r *PivotGadget) IsApplicable(g *zxgraph.Graph) bool {
	v0, v1 := g.Vertex(r.V0), g.Vertex(r.V1)
	if v0 == nil || v1 == nil || !v0.IsZ() || !v1.IsZ() {
		return false
	}
	if !g.IsNeighborOfType(r.V0, r.V1, zxgraph.Hadamard) {
		return false
	}
	if !v0.HasNPiPhase() || v1.HasNPiPhase() {
		return false
	}
	if g.NumNeighbors(r.V1) == 1 {
		return false // (V0, V1) is a phase gadget
	}
	for _, nb := range g.Neighbors(r.V0) {
		w := g.Vertex(nb.ID)
		if !w.IsZ() || nb.Type != zxgraph.Hadamard {
			return false
		}
		if g.NumNeighbors(nb.ID) == 1 {
			return false // (V0, nb) is a phase gadget
		}
	}
	interior := 0

	return neighborhoodFitsPivot(g, r.V1, &interior) && interior == 0
}

// Apply gadgetizes V1's phase and pivots.
func (r *PivotGadget) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	r.begin(g, r.CoreVertices())

	if !action.NewGadgetizePhase(r.V1).Apply(g) {
		r.abort()

		return false
	}
	pivotRewrite(g, r.V0, r.V1)

	return true
}

// CoreVertices returns the pivoted pair.
func (r *PivotGadget) CoreVertices() []zxgraph.VertexID {
	return []zxgraph.VertexID{r.V0, r.V1}
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *PivotGadget) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *PivotGadget) Radius() int { return 1 }
