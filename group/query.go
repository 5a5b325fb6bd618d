package group

import (
	"fmt"

	"github.com/VosDeMens/Group-Theory-Sandbox/notation"
	"github.com/VosDeMens/Group-Theory-Sandbox/word"
)

// CanonicalForm returns the sink of the element denoted by the
// human-notation representation s, as a plain word. It requires a
// completed structure (ErrIncomplete otherwise) and characters that the
// group has actually seen (ErrUnknownGenerator otherwise) — an unseen
// character would mean the structure is not complete for s at all.
//
// Lookup splits s at its midpoint, canonicalizes each half, and resolves
// the concatenation of the two canonical halves — directly when the store
// already knows it, by one integration when it does not. Results are
// cached against the original word, so repeated queries cost one map hit.
func (g *Group) CanonicalForm(s string) (string, error) {
	plain, err := g.checkQueryable(s)
	if err != nil {
		return "", err
	}

	return g.sinkOf(plain)
}

// Inverse returns the canonical form of the inverse of the element
// denoted by s: the formal inverse word, canonicalized. Same
// preconditions as CanonicalForm.
func (g *Group) Inverse(s string) (string, error) {
	plain, err := g.checkQueryable(s)
	if err != nil {
		return "", err
	}

	return g.sinkOf(word.Inverse(plain))
}

// checkQueryable expands s and verifies the query preconditions:
// completeness, and every character known to the alphabet.
func (g *Group) checkQueryable(s string) (string, error) {
	if !g.IsComplete() {
		return "", ErrIncomplete
	}

	plain, err := notation.Expand(s)
	if err != nil {
		return "", err
	}

	for _, r := range plain {
		if !g.alphabet.Known(r) {
			return "", fmt.Errorf("%w: %q", ErrUnknownGenerator, r)
		}
	}

	return plain, nil
}

// sinkOf resolves the canonical form of a plain word over the known
// alphabet by divide and conquer, memoizing every resolved word. Cache
// writes skip primality processing: a query never carries new structural
// information.
func (g *Group) sinkOf(s string) (string, error) {
	// Already resolved — the base case for known words of any length.
	if sink, ok := g.repsToSinks[s]; ok {
		return sink, nil
	}

	// A lone character that survived the lookup is a registered inverse
	// character that completion never keyed: the totality closure keys
	// every generator character against the identity sink, but inverse
	// characters only enter the store when some rule derivation touches
	// them. Splitting cannot shrink it further; resolve it through the
	// transition table instead.
	if len(s) == 1 {
		return g.resolveInverseChar(rune(s[0]))
	}

	// Canonicalize both halves, then resolve their concatenation.
	half := len(s) / 2
	first, err := g.sinkOf(s[:half])
	if err != nil {
		return "", err
	}
	second, err := g.sinkOf(s[half:])
	if err != nil {
		return "", err
	}

	reduced := first + second

	sink, ok := g.repsToSinks[reduced]
	if !ok {
		if sink, err = g.integrate([]string{reduced}); err != nil {
			return "", err
		}
	}

	if err := g.setEntry(s, sink, false); err != nil {
		return "", err
	}

	return sink, nil
}

// resolveInverseChar resolves an inverse character with no store entry.
// Its element is the inverse of the matching generator, and right
// multiplication by a generator permutes the canonical elements, so
// exactly one sink steps to the identity under that generator — the
// inverse itself. Reading the answer off the completed transition table
// keeps the query path from ever minting a new sink.
func (g *Group) resolveInverseChar(r rune) (string, error) {
	identity := g.repsToSinks[""]
	gen := word.InverseChar(r)

	for _, sink := range g.sortedSinks() {
		next, ok := g.repsToSinks[sink+string(gen)]
		if !ok || next != identity {
			continue
		}

		if err := g.setEntry(string(r), sink, false); err != nil {
			return "", err
		}

		return sink, nil
	}

	return "", fmt.Errorf("group: no transition to the identity under %q: %w", gen, ErrIncomplete)
}
