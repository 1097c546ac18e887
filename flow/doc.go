// Package flow implements the flow analyses the optimizer gates rewrites
// with: a causal-flow detector and a g-flow calculator over graph-like ZX
// diagrams.
//
// # Causal flow
//
// A causal flow is a successor function succ: V\O → V\I such that
// succ(v) is a neighbor of v lying strictly in v's future under a partial
// order consistent with the measurement pattern. The detector runs the
// corrector loop of Perdrix & Mhalla ("Finding Optimal Flows
// Efficiently", arXiv:0709.2670): processed vertices whose unprocessed
// neighborhood has shrunk to a single vertex claim that vertex as their
// predecessor; layers advance until either everything is processed
// (success) or no corrector fires (failure).
//
// HasCausalFlow answers the decision question without recording anything
// and is the hot path of the causal-flow-preserving optimizer;
// CalculateCausalFlow additionally returns the layer order and the
// successor map.
//
// # g-flow
//
// The GFlow calculator generalizes to correction sets solved over GF(2):
// each round it builds the biadjacency matrix of (frontier ×
// neighbors-of-frontier), augments it per candidate with the candidate's
// correction vector, and accepts the candidate iff Gaussian elimination
// finds the system solvable. Measurement planes are all XY in plain
// mode; extended mode derives YZ/XZ planes from phase-gadget structure.
//
// Both analyses are read-only over the graph and deterministic:
// frontier, neighbor, and level sets are kept in ascending-id order.
package flow
