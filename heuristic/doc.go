// Package heuristic scores candidate rewrites for the causal-flow
// optimizer.
//
// The 2Q-cost of a graph-like diagram is edges − vertices, a proxy for
// the two-qubit gate count of the extracted circuit. For each
// flow-preserving rule the package predicts, by closed-form counting and
// without touching the graph, how much that cost drops when the rule is
// applied and isolated vertices are swept: the optimizer ranks matches
// by this score and applies the best first.
//
// The formulas mirror the rewrites exactly — complementation toggles,
// vertex removals, unfusion overhead (each unfusion adds two vertices and
// two wires) — so the prediction equals the measured difference.
package heuristic
