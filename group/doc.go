// Package group infers the complete multiplication structure of a
// finitely presented group from a partial set of relations.
//
// What:
//
//	Given generator characters and a handful of defining identities
//	("g3 = e", "ghgh = e", …), the engine computes a confluent,
//	terminating string-rewriting system over those generators and closes
//	it into a total transition table — a Cayley-graph automaton — after
//	which canonical forms and inverses of arbitrary words are answered in
//	near-constant effort.
//
// How:
//
//	A Knuth–Bendix-style completion procedure specialized to
//	free-monoid-with-inverses rewriting. The engine maintains:
//	  - an equivalence store mapping every encountered word to its
//	    currently-believed canonical form (its sink);
//	  - the set of sinks, capped by a configurable limit that doubles as
//	    the divergence guard for infinite or oversized groups;
//	  - the prime reductibles: the minimal set of rewrite rules from which
//	    every other known equality is derivable.
//	Two closure loops drive the system to a fixed point: critical-pair
//	closure integrates every contraction of two prime rules, and totality
//	closure forces an entry for every (sink, generator) combination.
//
// Ordering:
//
//	Words are compared by (inverse-character count, length, lexicographic
//	value), ascending. The minimum of an equivalence class is its sink,
//	and rules always rewrite toward smaller words, so individual rewrite
//	chains terminate.
//
// Concurrency:
//
//	A Group is single-threaded. Every mutation — integration, sink
//	merging, primality re-testing — happens within one Integrate call
//	before it returns, and a single merge can touch arbitrarily many
//	entries, so embedders adding concurrency must guard the whole Group
//	with one exclusive lock.
//
// Errors:
//
//   - ErrSinkCapExceeded     — more distinct sinks than the configured cap;
//     the presentation is presumed infinite or too large, and the Group
//     must be discarded.
//   - ErrIncomplete          — a canonical-form or inverse query arrived
//     before the structure was completed.
//   - ErrUnknownGenerator    — a query word uses a character never seen in
//     any relation.
//   - notation.ErrMalformed  — a supplied representation does not expand
//     to a plain alphabetic word.
//
// Complexity is dominated by the completion loops; the sink cap is the
// only bound on their work.
package group
