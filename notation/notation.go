package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformed is returned when a human-readable representation cannot be
// expanded into a plain alphabetic word.
var ErrMalformed = errors.New("notation: malformed representation")

// Identity is the human-readable marker for the identity element.
const Identity = "e"

// powerPattern matches a letter followed by a decimal power suffix.
var powerPattern = regexp.MustCompile(`([a-zA-Z])([0-9]+)`)

// Expand turns a human-readable representation into a plain word over the
// generator alphabet: power suffixes are unrolled ("H2r3" → "HHrrr") and
// identity markers vanish ("r5eH" → "rrrrrH").
//
// The uppercase letter E is rejected outright: it would have to denote
// the inverse of "e", which is reserved for the identity element. Any
// input that leaves non-alphabetic residue after expansion is rejected as
// well. Both cases surface as a wrapped ErrMalformed.
func Expand(s string) (string, error) {
	// 1. "E" has no meaning: "e" is reserved for the identity element,
	//    so its inverse counterpart can never name a generator.
	if strings.ContainsRune(s, 'E') {
		return "", fmt.Errorf("%w: %q contains the reserved letter E", ErrMalformed, s)
	}

	// 2. Identity markers contribute nothing.
	stripped := strings.ReplaceAll(s, Identity, "")

	// 3. Unroll power suffixes.
	var expandErr error
	expanded := powerPattern.ReplaceAllStringFunc(stripped, func(m string) string {
		letter, digits := m[:1], m[1:]
		n, err := strconv.Atoi(digits)
		if err != nil {
			expandErr = fmt.Errorf("%w: power %q in %q: %v", ErrMalformed, digits, s, err)

			return m
		}

		return strings.Repeat(letter, n)
	})
	if expandErr != nil {
		return "", expandErr
	}

	// 4. Whatever survives must be purely alphabetic.
	if !isAlpha(expanded) {
		return "", fmt.Errorf("%w: %q expands to non-alphabetic %q", ErrMalformed, s, expanded)
	}

	return expanded, nil
}

// Compress turns a plain word into its human-readable form: runs of two
// or more identical letters become the letter followed by the run length,
// and the empty word renders as the identity marker "e".
func Compress(s string) string {
	if s == "" {
		return Identity
	}

	var out strings.Builder
	for i := 0; i < len(s); {
		run := 1
		for i+run < len(s) && s[i+run] == s[i] {
			run++
		}

		out.WriteByte(s[i])
		if run > 1 {
			out.WriteString(strconv.Itoa(run))
		}

		i += run
	}

	return out.String()
}

// isAlpha reports whether s consists solely of ASCII letters. The empty
// word counts: it is the identity.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}

	return true
}
