package group

import "github.com/VosDeMens/Group-Theory-Sandbox/word"

// reach expands seeds into the full set of words provably equal to them
// under refs and rules, accumulating into acc.
//
// refs maps known words to their sinks; rules is the restricted set of
// rule left sides, each rewriting to refs[left]. A word with a known sink
// contributes that sink and is not expanded further — sinks are never
// rewritten. An unknown word is expanded by every single-step rule
// application, depth first.
//
// The search runs on an explicit worklist rather than the call stack, so
// pathological rule sets cannot overflow recursion; the discovered set is
// identical either way. Termination is not structurally guaranteed, but
// rule applications only ever rewrite toward words bounded by inputs
// already integrated, keeping the search finite for well-formed
// presentations.
func (g *Group) reach(seeds []string, refs map[string]string, rules []string, acc map[string]struct{}) {
	stack := make([]string, len(seeds))
	copy(stack, seeds)

	for len(stack) > 0 {
		rep := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := acc[rep]; seen {
			continue
		}
		acc[rep] = struct{}{}

		// Known words jump straight to their sink.
		if sink, ok := refs[rep]; ok {
			acc[sink] = struct{}{}
			continue
		}

		// Unknown words expand under every rule.
		for _, left := range rules {
			right := refs[left]
			stack = append(stack, word.ApplyRuleOnce(left, right, rep)...)
		}
	}
}
