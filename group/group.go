package group

import (
	"github.com/VosDeMens/Group-Theory-Sandbox/notation"
	"github.com/VosDeMens/Group-Theory-Sandbox/word"
)

// Group holds the (partially) inferred structure of a finitely presented
// group: the equivalence store, the sink set, the prime reductibles, and
// the growing generator alphabet. The zero value is not usable; construct
// with New.
//
// A Group is not safe for concurrent use. A single merge may rewrite an
// unbounded number of store entries, so any embedding that adds
// concurrency must serialize every call on the whole Group.
type Group struct {
	name    string
	sinkCap int

	alphabet *word.Alphabet

	// repsToSinks maps every encountered word to its currently-believed
	// canonical form. A key mapping to itself is a sink.
	repsToSinks map[string]string

	// sinks mirrors the image of repsToSinks for O(1) membership.
	sinks map[string]struct{}

	// primes is the minimal rule set: non-sink keys whose reduction is
	// not derivable from the other primes.
	primes map[string]struct{}

	// contractionMemo caches word.Contractions per ordered pair; the
	// completion loops revisit the same pairs across passes.
	contractionMemo map[[2]string][]string
}

// New constructs a Group from an ordered collection of relation groups,
// each a collection of human-notation representations asserted equal.
// The identity element is registered first; generator characters register
// themselves (together with the g·G = G·g = e axiom) as they are first
// seen. Unless WithDeferredCompletion is given, the completion loops run
// before New returns.
//
// Fails with a wrapped notation.ErrMalformed on invalid input, or with
// ErrSinkCapExceeded when the presentation exceeds the configured cap.
func New(relations [][]string, opts ...Option) (*Group, error) {
	// 1. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	g := &Group{
		name:            o.Name,
		sinkCap:         o.SinkCap,
		alphabet:        word.NewAlphabet(),
		repsToSinks:     make(map[string]string),
		sinks:           make(map[string]struct{}),
		primes:          make(map[string]struct{}),
		contractionMemo: make(map[[2]string][]string),
	}

	// 2. Every group contains the identity element.
	if _, err := g.integrate([]string{""}); err != nil {
		return nil, err
	}

	// 3. Integrate the supplied relations in order.
	for _, reps := range relations {
		if _, err := g.integrateNotation(reps); err != nil {
			return nil, err
		}
	}

	// 4. Infer the rest of the structure, unless deferred.
	if !o.DeferCompletion {
		if err := g.Complete(); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Integrate asserts that all supplied human-notation representations
// denote the same group element, folding the new information into the
// structure. New generator characters register themselves on the way in.
// Returns the canonical form (as a plain word) of the shared element.
//
// Note that integrating new relations can leave the structure incomplete
// again; run Complete afterward before querying.
func (g *Group) Integrate(reps ...string) (string, error) {
	return g.integrateNotation(reps)
}

// integrateNotation expands reps, registers unseen generator characters,
// and integrates the resulting plain words as one relation.
func (g *Group) integrateNotation(reps []string) (string, error) {
	expanded := make([]string, 0, len(reps))
	for _, rep := range reps {
		plain, err := notation.Expand(rep)
		if err != nil {
			return "", err
		}
		expanded = append(expanded, plain)
	}

	if err := g.registerGenerators(expanded); err != nil {
		return "", err
	}

	return g.integrate(expanded)
}

// registerGenerators records every unseen character across words as a
// generator, pairing it with its inverse counterpart and immediately
// integrating the axiom that the two compose to the identity either way.
func (g *Group) registerGenerators(words []string) error {
	for _, w := range words {
		for _, r := range w {
			inv, isNew := g.alphabet.Register(r)
			if !isNew {
				continue
			}

			axiom := []string{string(r) + string(inv), string(inv) + string(r), ""}
			if _, err := g.integrate(axiom); err != nil {
				return err
			}
		}
	}

	return nil
}

// Name returns the group's configured name.
func (g *Group) Name() string {
	return g.name
}

// SinkCap returns the configured maximum number of distinct sinks.
func (g *Group) SinkCap() int {
	return g.sinkCap
}

// ElementCount returns the number of distinct words encountered while
// inferring the structure.
func (g *Group) ElementCount() int {
	return len(g.repsToSinks)
}

// SinkCount returns the number of distinct canonical elements discovered
// so far. Once complete, this is the order of the group.
func (g *Group) SinkCount() int {
	return len(g.sinks)
}

// Generators returns the registered generator characters in ascending
// order.
func (g *Group) Generators() []rune {
	return g.alphabet.Generators()
}

// Sinks returns the canonical representatives discovered so far, as
// plain words in canonical order.
func (g *Group) Sinks() []string {
	return g.sortedSinks()
}

// PrimeRules returns the current minimal rule set as plain-word pairs in
// canonical order of their left sides.
func (g *Group) PrimeRules() []Rule {
	primes := g.sortedPrimes()
	rules := make([]Rule, 0, len(primes))
	for _, p := range primes {
		rules = append(rules, Rule{Left: p, Right: g.repsToSinks[p]})
	}

	return rules
}

// Transition returns the sink reached from sink by appending the
// generator character gen, and whether that transition is known. Once the
// structure is complete, every (sink, generator) transition is known.
func (g *Group) Transition(sink string, gen rune) (string, bool) {
	next, ok := g.repsToSinks[sink+string(gen)]

	return next, ok
}

// sortedSinks returns the sinks in canonical order.
func (g *Group) sortedSinks() []string {
	out := make([]string, 0, len(g.sinks))
	for s := range g.sinks {
		out = append(out, s)
	}
	g.alphabet.SortWords(out)

	return out
}

// sortedPrimes returns the prime reductibles in canonical order.
func (g *Group) sortedPrimes() []string {
	out := make([]string, 0, len(g.primes))
	for p := range g.primes {
		out = append(out, p)
	}
	g.alphabet.SortWords(out)

	return out
}
