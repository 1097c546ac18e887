// Package zxgraph implements the graph store at the heart of the rewrite
// engine: a labelled multigraph whose vertices are Z-spiders, X-spiders,
// H-boxes, and boundaries, and whose edges are simple or Hadamard wires.
//
// # Data model
//
// Vertices are owned by the graph in an id-keyed arena; ids are assigned by
// a monotonically increasing allocator and never reused, so a removed id
// may be re-minted to restore a vertex exactly. Adjacency is stored per
// vertex as a set of (neighbor id, edge type) pairs: between two distinct
// vertices there is at most one simple and at most one Hadamard edge, and
// each edge is recorded symmetrically in both endpoints.
//
// Inputs and outputs are distinguished ordered sets of boundary vertices,
// keyed by qubit id; a boundary vertex has exactly one neighbor.
//
// # Edge algebra
//
// AddEdge is not a plain insertion: for spider endpoints it runs the ZX
// edge algebra, collapsing parallel edges (Hopf cancellation, Hadamard
// pair cancellation, π induction) and folding self-loops into the
// endpoint's phase. H-box endpoints that cannot absorb a parallel edge
// get a subdividing spider spliced onto it instead. See AddEdge.
//
// # Determinism
//
// Every enumeration (Vertices, Neighbors, ForEachEdge) is sorted by id,
// so matchers and set operations built on top of the store are
// reproducible run to run.
//
// # Ownership
//
// A graph is single-owner and not safe for concurrent use. Vertex handles
// are valid only until RemoveVertex is called on that vertex; callers that
// retain a vertex across mutations must re-resolve it by id.
package zxgraph
