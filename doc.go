// Package sandbox is an in-memory playground for finitely presented
// groups: feed it generators and a handful of defining relations, and it
// infers the complete multiplication structure of the group.
//
// 🚀 What is Group-Theory-Sandbox?
//
//	A pure-Go library that brings together:
//		• Word primitives: overlaps, single-step rewriting, shaving, formal inverses
//		• A completion engine: Knuth–Bendix-style critical-pair and totality closure
//		  over free-monoid-with-inverses string rewriting
//		• Constant-effort queries: canonical forms and inverses of arbitrary words
//		  once the structure is complete
//		• A Cayley-graph view: the total (element × generator) transition table,
//		  with BFS distances and element orders
//
// ✨ Why choose it?
//
//   - Minimal API, clear naming – relations in, canonical forms out
//   - Defensive by default – a sink cap aborts divergent (infinite-group) input
//   - Pure Go core – the engine itself has no dependencies
//   - Deterministic – the same presentation always yields the same structure
//
// Everything is organized under a handful of packages:
//
//	word/     — stateless word primitives and the generator/inverse alphabet
//	notation/ — human-readable notation (powers, identity marker) ↔ plain words
//	group/    — the equivalence store, primality testing and completion loops
//	cayley/   — transition-table graph view of a completed group
//
// Quick example, the cyclic group of order 3:
//
//	g, err := group.New([][]string{{"g3", "e"}})
//	// g now has exactly three elements: e, g, g2
//	sink, _ := g.CanonicalForm("g4") // "g"
//
// A thin command-line wrapper lives under cmd/grouptool; presentations can
// be loaded from YAML files and completed structures cached in SQLite.
package sandbox
