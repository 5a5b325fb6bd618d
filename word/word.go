package word

import "strings"

// Contractions returns every word formed by overlapping a suffix of a with
// a prefix of b (or vice versa) and splicing the two words together. Every
// overlap length from 1 up to one less than the shorter word's length is
// tried; the full word is kept and only the overlapped part of the other
// word is dropped.
//
// Example:
//
//	Contractions("Hrr", "rrH") // [HrrrH rrHrr HrrH]
//
// These are exactly the ways two rewrite rules can interact when one's
// left side sits adjacent to the other's, which makes them the
// critical-pair candidates of the completion procedure.
func Contractions(a, b string) []string {
	// 1. The longest overlap to try is bounded by the shorter word.
	maxLen := min(len(a), len(b))

	var out []string
	seen := make(map[string]struct{}, 2*maxLen)
	add := func(s string) {
		if _, dup := seen[s]; !dup {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	// 2. For each overlap length, splice in both orders when the
	//    overlapping parts agree.
	for overlap := 1; overlap < maxLen; overlap++ {
		if a[len(a)-overlap:] == b[:overlap] {
			add(a + b[overlap:])
		}
		if b[len(b)-overlap:] == a[:overlap] {
			add(b + a[overlap:])
		}
	}

	return out
}

// ApplyRuleOnce returns every word reachable by replacing exactly one
// occurrence of left inside s with right. Occurrences are scanned left to
// right with the search position advancing by one past each match, so
// overlapping occurrences each contribute a result. The returned words may
// still be reducible further.
//
// Example:
//
//	ApplyRuleOnce("HH", "", "HHrHH") // [rHH HHr]
//
// An empty left side matches everywhere and never shrinks s, so it is
// rejected with a nil result.
func ApplyRuleOnce(left, right, s string) []string {
	if left == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	for start := 0; ; {
		idx := strings.Index(s[start:], left)
		if idx < 0 {
			break
		}
		idx += start

		rewritten := s[:idx] + right + s[idx+len(left):]
		if _, dup := seen[rewritten]; !dup {
			seen[rewritten] = struct{}{}
			out = append(out, rewritten)
		}

		start = idx + 1
	}

	return out
}

// MostShaved strips from a and b any prefix and/or suffix the two words
// share, and returns the distinct (a-shaved, b-shaved) pairs produced by
// the two shaving orders: prefix first, then suffix; and suffix first,
// then prefix. When both components of the prefix-first pair are
// non-empty the orders provably agree and only one pair is returned.
//
// Example:
//
//	MostShaved("rrHrr", "rr") // [[Hrr ] [rrH ]]
//
// Shaving extracts the new information content of an equality a = b once
// the structure common to both sides is removed.
func MostShaved(a, b string) [][2]string {
	// 1. Prefix-first shave.
	leftFirst := shave(a, b, true)

	// 2. If neither side was consumed entirely, the suffix-first shave
	//    cannot differ.
	if leftFirst[0] != "" && leftFirst[1] != "" {
		return [][2]string{leftFirst}
	}

	// 3. Suffix-first shave, deduplicated against the first pair.
	rightFirst := shave(a, b, false)
	if rightFirst == leftFirst {
		return [][2]string{leftFirst}
	}

	return [][2]string{leftFirst, rightFirst}
}

// shave removes the longest shared prefix and suffix from a and b, taking
// the prefix first when prefixFirst is set, and never letting the two
// shaves overlap within the shorter word.
func shave(a, b string, prefixFirst bool) [2]string {
	limit := min(len(a), len(b))

	var pre, suf int
	if prefixFirst {
		pre = commonPrefix(a, b, limit)
		suf = commonSuffix(a, b, limit-pre)
	} else {
		suf = commonSuffix(a, b, limit)
		pre = commonPrefix(a, b, limit-suf)
	}

	return [2]string{a[pre : len(a)-suf], b[pre : len(b)-suf]}
}

// commonPrefix returns the length of the longest shared prefix of a and b,
// capped at limit.
func commonPrefix(a, b string, limit int) int {
	n := 0
	for n < limit && a[n] == b[n] {
		n++
	}

	return n
}

// commonSuffix returns the length of the longest shared suffix of a and b,
// capped at limit.
func commonSuffix(a, b string, limit int) int {
	n := 0
	for n < limit && a[len(a)-n-1] == b[len(b)-n-1] {
		n++
	}

	return n
}

// InverseChar returns the inverse counterpart of a generator character:
// the same ASCII letter with its case flipped. The mapping is an
// involution, so InverseChar(InverseChar(r)) == r. Non-letter runes are
// returned unchanged.
func InverseChar(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r - ('a' - 'A')
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A')
	default:
		return r
	}
}

// Inverse returns the formal inverse of s: the word reversed, with every
// character mapped to its inverse counterpart. Composing a word with its
// inverse always reduces to the identity in the group the word lives in.
func Inverse(s string) string {
	inv := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		inv[len(s)-1-i] = byte(InverseChar(rune(s[i])))
	}

	return string(inv)
}
