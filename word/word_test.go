package word_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VosDeMens/Group-Theory-Sandbox/word"
)

// TestContractions_Overlaps verifies that both splice directions and all
// overlap lengths are produced for two mutually overlapping words.
func TestContractions_Overlaps(t *testing.T) {
	got := word.Contractions("Hrr", "rrH")
	assert.ElementsMatch(t, []string{"HrrH", "rrHrr", "HrrrH"}, got,
		"suffix/prefix splices of Hrr and rrH")
}

// TestContractions_SelfOverlap checks a rule contracted with itself,
// which is how a single rule produces its own critical pairs.
func TestContractions_SelfOverlap(t *testing.T) {
	got := word.Contractions("aba", "aba")
	assert.ElementsMatch(t, []string{"ababa"}, got,
		"aba overlaps itself only on the single shared 'a'")
}

// TestContractions_NoOverlap verifies that words sharing no boundary
// produce no contractions.
func TestContractions_NoOverlap(t *testing.T) {
	assert.Empty(t, word.Contractions("gg", "hh"), "no shared boundary, no splice")
	assert.Empty(t, word.Contractions("", "hh"), "empty word cannot overlap")
}

// TestContractions_Deterministic verifies repeated calls return the same
// slice in the same order.
func TestContractions_Deterministic(t *testing.T) {
	first := word.Contractions("Hrr", "rrH")
	second := word.Contractions("Hrr", "rrH")
	assert.Equal(t, first, second, "contraction order must be reproducible")
}

// TestApplyRuleOnce_Basic covers the single-substitution cases from the
// engine's reduction step, including overlapping occurrences.
func TestApplyRuleOnce_Basic(t *testing.T) {
	assert.ElementsMatch(t, []string{"ba", "ab"},
		word.ApplyRuleOnce("aa", "b", "aaa"),
		"overlapping occurrences both rewrite")

	assert.ElementsMatch(t, []string{"cab"},
		word.ApplyRuleOnce("aba", "c", "abaab"))

	assert.ElementsMatch(t, []string{"ababcba", "abcbaba"},
		word.ApplyRuleOnce("bc", "", "abcbabcba"))
}

// TestApplyRuleOnce_NoMatch verifies that absent left sides produce no
// rewrites, and that an empty left side is rejected outright.
func TestApplyRuleOnce_NoMatch(t *testing.T) {
	assert.Empty(t, word.ApplyRuleOnce("HH", "", "Hr"))
	assert.Empty(t, word.ApplyRuleOnce("HH", "", "rrH"))
	assert.Nil(t, word.ApplyRuleOnce("", "x", "abc"), "empty left side is rejected")
}

// TestApplyRuleOnce_DuplicateResults verifies rewrites landing on the
// same word are reported once.
func TestApplyRuleOnce_DuplicateResults(t *testing.T) {
	got := word.ApplyRuleOnce("aa", "", "aaaa")
	assert.ElementsMatch(t, []string{"aa"}, got,
		"all three occurrences collapse to the same result")
}

// TestMostShaved covers the shaving cases: shared prefixes, shared
// suffixes, and the two-order divergence when one side empties out.
func TestMostShaved(t *testing.T) {
	assert.ElementsMatch(t, [][2]string{{"HH", ""}},
		word.MostShaved("HH", ""))

	assert.ElementsMatch(t, [][2]string{{"HH", ""}},
		word.MostShaved("HHH", "H"))

	assert.ElementsMatch(t, [][2]string{{"Hrr", ""}, {"rrH", ""}},
		word.MostShaved("rrHrr", "rr"),
		"prefix-first and suffix-first disagree")

	assert.ElementsMatch(t, [][2]string{{"Hr", ""}, {"rH", ""}},
		word.MostShaved("rrHr", "rr"))

	assert.ElementsMatch(t, [][2]string{{"H", ""}},
		word.MostShaved("rrHr", "rrr"))
}

// TestMostShaved_BothSidesRemain verifies the single-pair fast path when
// neither shaved word is empty.
func TestMostShaved_BothSidesRemain(t *testing.T) {
	got := word.MostShaved("gah", "gbh")
	assert.Equal(t, [][2]string{{"a", "b"}}, got,
		"interior mismatch shaves identically from either side")
}

// TestInverseChar verifies the involutive case flip.
func TestInverseChar(t *testing.T) {
	assert.Equal(t, 'R', word.InverseChar('r'))
	assert.Equal(t, 'r', word.InverseChar('R'))
	assert.Equal(t, 'g', word.InverseChar(word.InverseChar('g')), "involution")
}

// TestInverse verifies formal inversion: reverse plus per-character flip.
func TestInverse(t *testing.T) {
	assert.Equal(t, "", word.Inverse(""))
	assert.Equal(t, "G", word.Inverse("g"))
	assert.Equal(t, "HG", word.Inverse("gh"))
	assert.Equal(t, "gh", word.Inverse(word.Inverse("gh")), "inversion is an involution")
	assert.Equal(t, "RRg", word.Inverse("Grr"))
}

// TestAlphabet_Register verifies registration, inverse pairing, and that
// re-registering (or registering an inverse) is a no-op.
func TestAlphabet_Register(t *testing.T) {
	a := word.NewAlphabet()

	inv, isNew := a.Register('g')
	assert.True(t, isNew)
	assert.Equal(t, 'G', inv)
	assert.True(t, a.Known('g'))
	assert.True(t, a.Known('G'), "inverse becomes known alongside its generator")
	assert.True(t, a.IsInverse('G'))
	assert.False(t, a.IsInverse('g'))

	_, isNew = a.Register('g')
	assert.False(t, isNew, "second registration is a no-op")

	_, isNew = a.Register('G')
	assert.False(t, isNew, "a known inverse char does not register again")
}

// TestAlphabet_Generators verifies the sorted, deterministic generator
// listing.
func TestAlphabet_Generators(t *testing.T) {
	a := word.NewAlphabet()
	a.Register('r')
	a.Register('H')
	a.Register('g')

	assert.Equal(t, []rune{'H', 'g', 'r'}, a.Generators())
}

// TestAlphabet_Ordering verifies the canonical ordering: inverse count
// first, then length, then lexicographic value.
func TestAlphabet_Ordering(t *testing.T) {
	a := word.NewAlphabet()
	a.Register('g')
	a.Register('h')

	assert.Equal(t, 2, a.CountInverses("GgH"))

	assert.True(t, a.Less("g", "G"), "fewer inverse characters wins")
	assert.True(t, a.Less("h", "gg"), "then shorter wins")
	assert.True(t, a.Less("gh", "hg"), "then lexicographic wins")
	assert.True(t, a.Less("", "g"), "the identity precedes everything")
	assert.False(t, a.Less("g", "g"))

	words := []string{"hg", "G", "g", "", "gh"}
	a.SortWords(words)
	assert.Equal(t, []string{"", "g", "gh", "hg", "G"}, words)
}
