package flow

import (
	"sort"

	"github.com/katalvlaran/zxcalc/boolmat"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// MeasurementPlane classifies how a vertex is measured.
type MeasurementPlane uint8

const (
	// PlaneXY is the default measurement plane.
	PlaneXY MeasurementPlane = iota

	// PlaneYZ marks the axel of a phase gadget with an n·π phase.
	PlaneYZ

	// PlaneXZ marks the axel of a phase gadget with a ±π/2 phase.
	PlaneXZ

	// PlaneNone marks gadget leaves, which are not measured as qubits.
	PlaneNone
)

// String renders the plane.
func (p MeasurementPlane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneYZ:
		return "YZ"
	case PlaneXZ:
		return "XZ"
	case PlaneNone:
		return "not a qubit"
	default:
		return "?"
	}
}

// GFlow computes a generalized flow of a graph-like diagram: per-vertex
// X-correction sets solved over GF(2), level by level from the outputs.
type GFlow struct {
	g *zxgraph.Graph

	levels        [][]zxgraph.VertexID
	xCorrections  map[zxgraph.VertexID][]zxgraph.VertexID
	planes        map[zxgraph.VertexID]MeasurementPlane
	vertexToLevel map[zxgraph.VertexID]int
	valid         bool
	independent   bool
	extended      bool

	// per-round working sets, ascending by id
	frontier  []zxgraph.VertexID
	neighbors []zxgraph.VertexID
	taken     map[zxgraph.VertexID]struct{}
}

// NewGFlow builds a calculator over g.
func NewGFlow(g *zxgraph.Graph) *GFlow {
	return &GFlow{g: g}
}

// SetIndependentLayers restricts each level to vertices not adjacent to
// that level (layers become anti-chains).
func (gf *GFlow) SetIndependentLayers(on bool) { gf.independent = on }

// SetExtended derives YZ/XZ measurement planes from phase-gadget
// structure instead of assuming all-XY.
func (gf *GFlow) SetExtended(on bool) { gf.extended = on }

// IsValid reports whether the last Calculate found a g-flow.
func (gf *GFlow) IsValid() bool { return gf.valid }

// Levels returns the computed levels, outputs first.
func (gf *GFlow) Levels() [][]zxgraph.VertexID { return gf.levels }

// Level returns the level index of v (valid flows only).
func (gf *GFlow) Level(v zxgraph.VertexID) (int, bool) {
	lvl, ok := gf.vertexToLevel[v]

	return lvl, ok
}

// XCorrectionSet returns the correction set of v.
func (gf *GFlow) XCorrectionSet(v zxgraph.VertexID) []zxgraph.VertexID {
	return gf.xCorrections[v]
}

// Plane returns the measurement plane assigned to v.
func (gf *GFlow) Plane(v zxgraph.VertexID) MeasurementPlane {
	return gf.planes[v]
}

// ZCorrectionSet derives Odd(x-correction set of v): the vertices with an
// odd number of neighbors inside it.
func (gf *GFlow) ZCorrectionSet(v zxgraph.VertexID) []zxgraph.VertexID {
	occurrences := make(map[zxgraph.VertexID]int)
	for _, gv := range gf.xCorrections[v] {
		for _, nb := range gf.g.NeighborIDs(gv) {
			occurrences[nb]++
		}
	}

	var out []zxgraph.VertexID
	for id, n := range occurrences {
		if n%2 == 1 {
			out = append(out, id)
		}
	}
	sort.Ints(out)

	return out
}

// isZError reports whether v's correction needs the identity summand.
func (gf *GFlow) isZError(v zxgraph.VertexID) bool {
	return !gf.extended || gf.planes[v] == PlaneXY || gf.planes[v] == PlaneXZ
}

// isXError reports whether v's correction needs v's own adjacency
// summand.
func (gf *GFlow) isXError(v zxgraph.VertexID) bool {
	return gf.extended && (gf.planes[v] == PlaneXZ || gf.planes[v] == PlaneYZ)
}

// initialize resets state and assigns measurement planes.
func (gf *GFlow) initialize() bool {
	gf.levels = nil
	gf.xCorrections = make(map[zxgraph.VertexID][]zxgraph.VertexID)
	gf.planes = make(map[zxgraph.VertexID]MeasurementPlane)
	gf.vertexToLevel = make(map[zxgraph.VertexID]int)
	gf.frontier = nil
	gf.neighbors = nil
	gf.taken = make(map[zxgraph.VertexID]struct{})
	gf.valid = false

	for _, v := range gf.g.Vertices() {
		gf.planes[v.ID] = PlaneXY
	}
	if !gf.extended {
		return true
	}

	// Measurement planes per Backens et al., "There and back again: a
	// circuit extraction tale" (Quantum 5, 421), Table 1.
	for _, v := range gf.g.Vertices() {
		switch {
		case gf.g.IsGadgetLeaf(v.ID):
			gf.planes[v.ID] = PlaneNone
			gf.taken[v.ID] = struct{}{}
		case gf.g.IsGadgetAxel(v.ID):
			if v.HasNPiPhase() {
				gf.planes[v.ID] = PlaneYZ
			} else if v.Phase.Denominator() == 2 {
				gf.planes[v.ID] = PlaneXZ
			} else {
				return false // non-Clifford axel phase has no plane
			}
		}
	}

	return true
}

// calculateZerothLayer seeds the frontier and level 0 with the outputs.
func (gf *GFlow) calculateZerothLayer() {
	outputs := make([]zxgraph.VertexID, 0, gf.g.NumOutputs())
	for _, v := range gf.g.Outputs() {
		outputs = append(outputs, v.ID)
	}
	sort.Ints(outputs)

	gf.frontier = outputs
	gf.levels = append(gf.levels, append([]zxgraph.VertexID(nil), outputs...))
	for _, id := range outputs {
		gf.xCorrections[id] = nil
		gf.taken[id] = struct{}{}
	}
}

// updateNeighborsByFrontier collects the untaken neighbors of the
// frontier; unmeasured vertices (gadget leaves) are absorbed silently.
func (gf *GFlow) updateNeighborsByFrontier() {
	seen := make(map[zxgraph.VertexID]struct{})
	gf.neighbors = gf.neighbors[:0]

	for _, f := range gf.frontier {
		for _, nb := range gf.g.NeighborIDs(f) {
			if _, done := gf.taken[nb]; done {
				continue
			}
			if gf.planes[nb] == PlaneNone {
				gf.taken[nb] = struct{}{}

				continue
			}
			if _, dup := seen[nb]; !dup {
				seen[nb] = struct{}{}
				gf.neighbors = append(gf.neighbors, nb)
			}
		}
	}
	sort.Ints(gf.neighbors)
}

// biadjacency builds the boolean matrix rows×cols with a 1 wherever the
// row vertex is adjacent to the column vertex.
func biadjacency(g *zxgraph.Graph, rows, cols []zxgraph.VertexID) *boolmat.Matrix {
	m, err := boolmat.New(len(rows), len(cols))
	if err != nil {
		return nil
	}
	for i, r := range rows {
		for j, c := range cols {
			if g.IsNeighbor(r, c) {
				m.Row(i)[j] = 1
			}
		}
	}

	return m
}

// prepareMatrix augments the coefficient matrix with candidate v's
// correction vector: an identity summand for Z-type errors, v's Hadamard
// adjacency for X-type errors, everything mod 2.
func (gf *GFlow) prepareMatrix(v zxgraph.VertexID, i int, coeff *boolmat.Matrix) *boolmat.Matrix {
	aug := coeff.Clone()
	aug.AppendZeroColumn()

	last := aug.NumCols() - 1
	for j := 0; j < aug.NumRows(); j++ {
		if gf.isZError(v) && i == j {
			aug.Row(j)[last] ^= 1
		}
		if gf.isXError(v) && gf.g.IsNeighborOfType(v, gf.neighbors[j], zxgraph.Hadamard) {
			aug.Row(j)[last] ^= 1
		}
	}

	return aug
}

// setCorrectionSetByMatrix reads v's correction set off the solved
// augmented matrix.
func (gf *GFlow) setCorrectionSetByMatrix(v zxgraph.VertexID, m *boolmat.Matrix) {
	var corr []zxgraph.VertexID
	last := m.NumCols() - 1
	for r := 0; r < m.NumRows(); r++ {
		row := m.Row(r)
		if row[last] == 0 {
			continue
		}
		for c, f := range gf.frontier {
			if row[c] == 1 {
				corr = append(corr, f)

				break
			}
		}
	}
	if gf.isXError(v) {
		corr = append(corr, v)
	}
	sort.Ints(corr)
	gf.xCorrections[v] = corr
}

// updateFrontier retires saturated frontier vertices and admits the new
// level's non-inputs.
func (gf *GFlow) updateFrontier() {
	kept := gf.frontier[:0]
	for _, f := range gf.frontier {
		saturated := true
		for _, nb := range gf.g.NeighborIDs(f) {
			if _, done := gf.taken[nb]; !done {
				saturated = false

				break
			}
		}
		if !saturated {
			kept = append(kept, f)
		}
	}
	gf.frontier = kept

	last := gf.levels[len(gf.levels)-1]
	for _, id := range last {
		if !gf.g.IsInput(gf.g.Vertex(id)) {
			gf.frontier = append(gf.frontier, id)
		}
	}
	sort.Ints(gf.frontier)
}

// Calculate runs the g-flow search. Returns whether a g-flow exists; the
// levels, planes, and correction sets are retained either way for
// inspection.
// Complexity: O(levels · neighbors · Gauss) with Gauss = O(n²·m).
func (gf *GFlow) Calculate() bool {
	if !gf.initialize() {
		return false
	}

	gf.calculateZerothLayer()

	for len(gf.levels[len(gf.levels)-1]) > 0 {
		gf.updateNeighborsByFrontier()
		gf.levels = append(gf.levels, nil)

		if len(gf.neighbors) > 0 && len(gf.frontier) > 0 {
			coeff := biadjacency(gf.g, gf.neighbors, gf.frontier)

			for i, v := range gf.neighbors {
				if gf.independent && gf.adjacentToCurrentLevel(v) {
					continue
				}
				aug := gf.prepareMatrix(v, i, coeff)
				if aug.GaussianEliminationAugmented(false) {
					gf.taken[v] = struct{}{}
					gf.levels[len(gf.levels)-1] = append(gf.levels[len(gf.levels)-1], v)
					gf.setCorrectionSetByMatrix(v, aug)
				}
			}
		}

		gf.updateFrontier()
		for _, v := range gf.levels[len(gf.levels)-1] {
			gf.vertexToLevel[v] = len(gf.levels) - 1
		}
	}

	gf.valid = len(gf.taken) == gf.g.NumVertices()
	gf.levels = gf.levels[:len(gf.levels)-1] // the back is always empty

	gf.relocateInputs()
	for i := range gf.levels {
		sort.Ints(gf.levels[i])
	}

	return gf.valid
}

// adjacentToCurrentLevel reports whether v touches the level being
// built.
func (gf *GFlow) adjacentToCurrentLevel(v zxgraph.VertexID) bool {
	current := gf.levels[len(gf.levels)-1]
	for _, id := range current {
		if gf.g.IsNeighbor(v, id) {
			return true
		}
	}

	return false
}

// relocateInputs moves inputs found in earlier levels into the last one:
// inputs are prepared last in the measurement order.
func (gf *GFlow) relocateInputs() {
	if len(gf.levels) == 0 {
		return
	}
	lastIdx := len(gf.levels) - 1
	for i := 0; i < lastIdx; i++ {
		kept := gf.levels[i][:0]
		for _, id := range gf.levels[i] {
			if gf.g.IsInput(gf.g.Vertex(id)) {
				gf.levels[lastIdx] = append(gf.levels[lastIdx], id)
				gf.vertexToLevel[id] = lastIdx

				continue
			}
			kept = append(kept, id)
		}
		gf.levels[i] = kept
	}
}
