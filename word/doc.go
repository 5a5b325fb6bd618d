// Package word implements the stateless primitives over words — finite
// sequences of generator characters — that the completion engine in
// package group is built from, together with the dynamic Alphabet that
// tracks generator/inverse characters and defines the canonical ordering.
//
// What:
//
//   - Contractions(a, b): every splice of a suffix of one word with a
//     matching prefix of the other, for both orders. These are the
//     critical-pair candidates of the completion procedure.
//   - ApplyRuleOnce(left, right, s): every word obtained by replacing a
//     single occurrence of left inside s with right, occurrences scanned
//     left to right including overlapping ones.
//   - MostShaved(a, b): a and b with any shared prefix and/or suffix
//     stripped, shaving from the left first and from the right first.
//     Extracts the new information content of an equality.
//   - Inverse(s): the formal inverse of a word — reversed, with every
//     character replaced by its inverse counterpart.
//   - Alphabet: registry of generator characters and their inverses (an
//     involutive case flip), plus the canonical ordering key
//     (inverse-character count, length, lexicographic value, ascending).
//
// Why:
//
//	The completion engine treats group elements purely as strings over a
//	growing alphabet. Keeping the string manipulation here, pure and
//	deterministic, lets the engine reason only about which equalities to
//	integrate, never about how to splice characters.
//
// Determinism:
//
//	All functions return slices in a reproducible order for identical
//	inputs, so callers iterating over results behave identically from run
//	to run.
//
// Complexity:
//
//   - Contractions:  O(min(|a|,|b|)²) comparisons
//   - ApplyRuleOnce: O(|s|·|left|)
//   - MostShaved:    O(min(|a|,|b|))
//   - Inverse:       O(|s|)
package word
