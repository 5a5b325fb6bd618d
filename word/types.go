// Package word types: the dynamic generator/inverse alphabet and the
// canonical ordering key used to orient rewrite rules.
package word

import "sort"

// Alphabet tracks the generator characters observed so far, paired with
// their inverse counterparts via the involutive case flip. It grows
// dynamically as new characters appear in supplied relations and defines
// the canonical ordering over words: fewer inverse characters first, then
// shorter, then lexicographically smaller.
//
// Alphabet is not safe for concurrent use; see the group package's
// concurrency notes.
type Alphabet struct {
	generators map[rune]struct{} // characters registered as generators
	inverses   map[rune]struct{} // their case-flipped counterparts
}

// NewAlphabet returns an empty alphabet.
func NewAlphabet() *Alphabet {
	return &Alphabet{
		generators: make(map[rune]struct{}),
		inverses:   make(map[rune]struct{}),
	}
}

// Register records r as a generator character and returns its inverse
// counterpart, plus whether r was newly registered. Characters already
// known — as a generator or as some generator's inverse — are left
// untouched and reported as not new.
func (a *Alphabet) Register(r rune) (rune, bool) {
	inv := InverseChar(r)
	if a.Known(r) {
		return inv, false
	}

	a.generators[r] = struct{}{}
	a.inverses[inv] = struct{}{}

	return inv, true
}

// Known reports whether r has been registered, either as a generator or
// as an inverse character.
func (a *Alphabet) Known(r rune) bool {
	if _, ok := a.generators[r]; ok {
		return true
	}
	_, ok := a.inverses[r]

	return ok
}

// IsInverse reports whether r is the inverse counterpart of a registered
// generator.
func (a *Alphabet) IsInverse(r rune) bool {
	_, ok := a.inverses[r]

	return ok
}

// Generators returns the registered generator characters in ascending
// order, giving callers a deterministic iteration order.
func (a *Alphabet) Generators() []rune {
	gens := make([]rune, 0, len(a.generators))
	for r := range a.generators {
		gens = append(gens, r)
	}
	sort.Slice(gens, func(i, j int) bool { return gens[i] < gens[j] })

	return gens
}

// CountInverses returns how many characters of s are inverse characters
// under this alphabet.
func (a *Alphabet) CountInverses(s string) int {
	n := 0
	for _, r := range s {
		if a.IsInverse(r) {
			n++
		}
	}

	return n
}

// Key returns the canonical ordering key of s: inverse-character count,
// then length, then the word itself. Words are compared ascending on this
// key, so the preferred class representative is the word with the fewest
// inverse characters, then the shortest, then the lexicographically
// smallest. Rewriting always moves toward smaller keys, which keeps every
// individual rewrite chain finite.
func (a *Alphabet) Key(s string) Key {
	return Key{Inverses: a.CountInverses(s), Length: len(s), Value: s}
}

// Less reports whether the word with key behind a.Key(x) sorts before the
// word behind a.Key(y). Shorthand for a.Key(x).Less(a.Key(y)).
func (a *Alphabet) Less(x, y string) bool {
	return a.Key(x).Less(a.Key(y))
}

// SortWords sorts words in place by the canonical ordering.
func (a *Alphabet) SortWords(words []string) {
	sort.Slice(words, func(i, j int) bool { return a.Less(words[i], words[j]) })
}

// Key is the canonical ordering key of a word. Keys compare ascending
// field by field: Inverses, then Length, then Value.
type Key struct {
	Inverses int    // number of inverse characters in the word
	Length   int    // word length
	Value    string // the word itself, as the lexicographic tiebreak
}

// Less reports whether k sorts strictly before o.
func (k Key) Less(o Key) bool {
	if k.Inverses != o.Inverses {
		return k.Inverses < o.Inverses
	}
	if k.Length != o.Length {
		return k.Length < o.Length
	}

	return k.Value < o.Value
}
