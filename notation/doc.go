// Package notation converts between the human-readable notation for group
// words and the plain generator-character sequences the engine works on.
//
// What:
//
//   - Expand("H2r3") → "HHrrr": number suffixes denote repeated letters,
//     and every "e" — the identity element — disappears.
//   - Compress("HHrrr") → "H2r3": runs of the same letter collapse to a
//     letter plus its count; the empty word renders as "e".
//
// Why:
//
//	Presentations such as g3 = e read far better than ggg, but the
//	rewriting engine only ever sees plain alphabetic words. These two
//	stateless transforms sit at the boundary and nowhere else.
//
// Errors:
//
//   - ErrMalformed — the input misuses the reserved letter "E" (the
//     would-be inverse of the identity marker), or does not reduce to a
//     purely alphabetic word after expansion.
package notation
