package group

import "github.com/VosDeMens/Group-Theory-Sandbox/word"

// Complete drives the structure to a full description of the group:
// critical-pair closure until no new prime rule is discoverable, then
// totality closure until every (sink, generator) combination has an
// entry. New never returns an incomplete Group unless completion was
// explicitly deferred.
//
// Fails with ErrSinkCapExceeded on divergent presentations; the Group is
// unusable afterward.
func (g *Group) Complete() error {
	if err := g.CombinePrimeRules(); err != nil {
		return err
	}

	return g.FillGaps()
}

// CombinePrimeRules runs the critical-pair closure: every unordered pair
// of prime rules (a rule paired with itself included) is contracted, and
// every contraction integrated as a relation of its own. A contraction
// reduces along either parent rule, so integrating it equates the two
// reduction results — the classic critical-pair resolution step.
//
// Passes repeat until one discovers no new prime, or the structure is
// already complete.
func (g *Group) CombinePrimeRules() error {
	for !g.IsComplete() {
		snapshot := g.sortedPrimes()

		for i, s1 := range snapshot {
			for _, s2 := range snapshot[i:] {
				// Either rule may have been demoted mid-pass.
				if !g.isPrime(s1) || !g.isPrime(s2) {
					continue
				}

				for _, contraction := range g.contractions(s1, s2) {
					if _, err := g.integrate([]string{contraction}); err != nil {
						return err
					}
				}
			}
		}

		// A pass that adds no prime has nothing left to try.
		if g.samePrimes(snapshot) {
			break
		}
	}

	return nil
}

// FillGaps runs the totality closure: while some (sink, generator)
// combination has no entry, the first missing one — sinks and generators
// both in canonical order — is integrated as its own relation, forcing it
// to receive a canonical form, new or existing. Once FillGaps returns nil
// the store defines a total transition function over (sink, generator).
func (g *Group) FillGaps() error {
	for {
		sink, gen, missing := g.firstMissing()
		if !missing {
			return nil
		}

		if _, err := g.integrate([]string{sink + string(gen)}); err != nil {
			return err
		}
	}
}

// IsComplete reports whether every (sink, generator) combination has an
// entry in the store — i.e. the transition table is total.
func (g *Group) IsComplete() bool {
	_, _, missing := g.firstMissing()

	return !missing
}

// firstMissing returns the first (sink, generator) combination without a
// store entry, iterating sinks then generators in canonical order so the
// answer is deterministic.
func (g *Group) firstMissing() (string, rune, bool) {
	gens := g.alphabet.Generators()
	for _, sink := range g.sortedSinks() {
		for _, gen := range gens {
			if _, ok := g.repsToSinks[sink+string(gen)]; !ok {
				return sink, gen, true
			}
		}
	}

	return "", 0, false
}

// isPrime reports current membership in the prime rule set.
func (g *Group) isPrime(rep string) bool {
	_, ok := g.primes[rep]

	return ok
}

// samePrimes reports whether the current prime set is exactly snapshot.
func (g *Group) samePrimes(snapshot []string) bool {
	if len(snapshot) != len(g.primes) {
		return false
	}
	for _, p := range snapshot {
		if !g.isPrime(p) {
			return false
		}
	}

	return true
}

// contractions memoizes word.Contractions per ordered pair; completion
// passes revisit the same rule pairs many times.
func (g *Group) contractions(s1, s2 string) []string {
	key := [2]string{s1, s2}
	if cached, ok := g.contractionMemo[key]; ok {
		return cached
	}

	out := word.Contractions(s1, s2)
	g.contractionMemo[key] = out

	return out
}
