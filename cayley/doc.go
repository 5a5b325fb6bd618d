// Package cayley exposes a completed group structure as its Cayley
// graph: vertices are the canonical elements (sinks), and each generator
// character labels one outgoing edge per vertex, given by the engine's
// total transition table.
//
// What:
//
//   - Build(g): snapshot the transition table of a completed
//     *group.Group into a Graph.
//   - Step, Neighbors: walk single transitions.
//   - Distances, Diameter: breadth-first word-length metric from the
//     identity — how many generator applications each element needs.
//   - Multiply, ElementOrder: composition of canonical elements and the
//     order of an element (smallest n with xⁿ = e).
//
// Why:
//
//	The completion engine's whole purpose is to close the structure into
//	a total (element × generator) → element table. This package is the
//	graph-shaped read side of that table, useful for visualization,
//	distance arguments, and sanity checks on inferred structures.
//
// Errors:
//
//   - group.ErrIncomplete — Build called before the structure is closed.
//   - ErrUnknownElement   — a vertex argument is not a canonical element.
//
// Complexity:
//
//   - Build:      O(|sinks|·|generators|)
//   - Distances:  O(V+E) breadth-first traversal
//   - ElementOrder: at most Order() multiplications
package cayley
