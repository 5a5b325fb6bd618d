package group

import (
	"fmt"
	"strings"

	"github.com/VosDeMens/Group-Theory-Sandbox/notation"
)

// Report is a structural snapshot of a Group: its sinks and prime rules
// in compressed human notation and canonical order, plus completeness.
type Report struct {
	Name     string   `json:"name"`
	Sinks    []string `json:"sinks"`
	Primes   []Rule   `json:"prime_reductibles"`
	Complete bool     `json:"complete"`
	Trivial  bool     `json:"trivial,omitempty"`
	// Missing holds the first absent (sink, generator) combination in
	// compressed notation when the structure is incomplete.
	Missing string `json:"missing,omitempty"`
}

// Report returns the current structural snapshot.
func (g *Group) Report() Report {
	r := Report{Name: g.name}

	for _, sink := range g.sortedSinks() {
		r.Sinks = append(r.Sinks, notation.Compress(sink))
	}

	for _, prime := range g.sortedPrimes() {
		r.Primes = append(r.Primes, Rule{
			Left:  notation.Compress(prime),
			Right: notation.Compress(g.repsToSinks[prime]),
		})
	}

	sink, gen, missing := g.firstMissing()
	if missing {
		r.Missing = notation.Compress(sink + string(gen))
	} else {
		r.Complete = true
		r.Trivial = len(g.sinks) == 1
	}

	return r
}

// String renders the report in the human layout: name, sinks, prime
// reductibles as "left -> right" lines, and the completeness verdict.
func (r Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Group with name: %s\n\n", r.Name)

	fmt.Fprintf(&b, "Sinks:\n%v\n\n", r.Sinks)

	b.WriteString("Prime reductibles:\n")
	for _, rule := range r.Primes {
		fmt.Fprintf(&b, "%s -> %s\n", rule.Left, rule.Right)
	}
	b.WriteString("\n")

	switch {
	case r.Complete && r.Trivial:
		b.WriteString("Complete (trivially)")
	case r.Complete:
		b.WriteString("Complete")
	default:
		fmt.Fprintf(&b, "Incomplete, missing %s", r.Missing)
	}

	return b.String()
}
