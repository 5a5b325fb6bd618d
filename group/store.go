package group

import (
	"fmt"

	"github.com/VosDeMens/Group-Theory-Sandbox/word"
)

// integrate folds the information that all words denote the same group
// element into the store. It computes everything currently reachable from
// the input under the established rules, elects the smallest reachable
// word as the canonical form, registers every reachable word against it,
// and recursively integrates the shaved residue of each non-canonical
// word — the shorter relations hiding inside the discovered equality.
//
// Returns the canonical form. Sub-integrations triggered by shaving and
// merging complete before integrate returns, so no caller ever observes a
// partially merged store.
func (g *Group) integrate(words []string) (string, error) {
	// 1. Close the input under the current rules.
	reachable := make(map[string]struct{})
	g.reach(words, g.repsToSinks, g.sortedPrimes(), reachable)

	// 2. The smallest reachable word represents the class. Sorting also
	//    fixes the registration order, canonical form first, which keeps
	//    runs deterministic.
	equivalent := make([]string, 0, len(reachable))
	for rep := range reachable {
		equivalent = append(equivalent, rep)
	}
	g.alphabet.SortWords(equivalent)
	canonical := equivalent[0]

	// 3. Register every reachable word, then mine the non-canonical ones
	//    for shorter relations.
	for _, rep := range equivalent {
		if err := g.setEntry(rep, canonical, true); err != nil {
			return "", err
		}

		if rep == canonical {
			continue
		}

		for _, shaved := range word.MostShaved(rep, canonical) {
			// Nothing shaved means nothing new to integrate.
			if shaved[0] == rep {
				continue
			}

			if _, err := g.integrate([]string{shaved[0], shaved[1]}); err != nil {
				return "", err
			}
		}
	}

	return canonical, nil
}

// setEntry records that rep reduces to reduced.
//
// Unknown reps are registered and reduced joins the sink set; a rep equal
// to its own reduction is a sink, which is where the sink cap is
// enforced. A rep already mapped to a different value means two words
// believed to be distinct sinks are actually equal: the smaller survives
// and every entry referencing the loser is redirected.
//
// processPrimes disables primality bookkeeping for cache writes from the
// query path, which never carry new structural information.
func (g *Group) setEntry(rep, reduced string, processPrimes bool) error {
	if known, ok := g.repsToSinks[rep]; ok {
		if reduced == known {
			return nil
		}

		// Two previously distinct canonical forms collapsed.
		winner, loser := known, reduced
		if g.alphabet.Less(loser, winner) {
			winner, loser = loser, winner
		}
		g.mergeSinks(loser, winner)

		return nil
	}

	g.repsToSinks[rep] = reduced
	g.sinks[reduced] = struct{}{}

	// A self-mapped rep is a sink and can never serve as a rewrite rule.
	if rep == reduced {
		if len(g.sinks) > g.sinkCap {
			return fmt.Errorf("%w: more than %d sinks", ErrSinkCapExceeded, g.sinkCap)
		}

		return nil
	}

	if processPrimes {
		g.reviewPrime(rep)
	}

	return nil
}

// mergeSinks redirects every store entry referencing loser to winner and
// drops loser from the sink set. Each redirected key gets its primality
// re-tested: its canonical target just changed.
func (g *Group) mergeSinks(loser, winner string) {
	if loser == winner {
		return
	}
	if _, isSink := g.sinks[loser]; !isSink {
		return
	}

	// Snapshot the affected keys first; reviewPrime mutates the store's
	// prime set while we walk them.
	var affected []string
	for rep, sink := range g.repsToSinks {
		if sink == loser {
			affected = append(affected, rep)
		}
	}
	g.alphabet.SortWords(affected)

	for _, rep := range affected {
		g.repsToSinks[rep] = winner
		g.reviewPrime(rep)
	}

	delete(g.sinks, loser)
	g.sinks[winner] = struct{}{}
}
