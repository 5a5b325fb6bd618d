package group

// reviewPrime re-evaluates whether rep belongs in the prime rule set,
// then propagates the consequences: admitting a prime can render any
// larger established prime redundant, so those are re-tested in turn.
//
// A rule can only be made redundant by a rule rewriting an earlier point
// of its derivation, which must be ordered smaller; primes smaller than
// rep are therefore never re-tested here.
func (g *Group) reviewPrime(rep string) {
	if !g.shouldBePrime(rep) {
		// A redirected entry may have lost its primality.
		delete(g.primes, rep)

		return
	}

	g.primes[rep] = struct{}{}

	repKey := g.alphabet.Key(rep)
	for _, established := range g.sortedPrimes() {
		if established == rep {
			continue
		}

		// Only strictly larger primes can have become redundant.
		if !repKey.Less(g.alphabet.Key(established)) {
			continue
		}

		if !g.shouldBePrime(established) {
			delete(g.primes, established)
		}
	}
}

// shouldBePrime reports whether the entry rep → sink is irreducible: the
// sink must not be reachable from rep using only the other established
// primes. Derivable entries are composites; keeping them out of the rule
// set keeps the critical-pair closure's pair space minimal.
func (g *Group) shouldBePrime(rep string) bool {
	// Restrict both the rules and the reference map to the other primes:
	// rep must not participate in its own derivation.
	others := make([]string, 0, len(g.primes))
	restricted := make(map[string]string, len(g.primes))
	for _, p := range g.sortedPrimes() {
		if p == rep {
			continue
		}
		others = append(others, p)
		restricted[p] = g.repsToSinks[p]
	}

	reachable := make(map[string]struct{})
	g.reach([]string{rep}, restricted, others, reachable)

	_, derivable := reachable[g.repsToSinks[rep]]

	return !derivable
}
