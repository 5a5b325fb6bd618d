package cayley_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VosDeMens/Group-Theory-Sandbox/cayley"
	"github.com/VosDeMens/Group-Theory-Sandbox/group"
)

// buildC3 completes the cyclic group of order 3 and wraps it as a graph.
func buildC3(t *testing.T) *cayley.Graph {
	t.Helper()

	g, err := group.New([][]string{{"g3", "e"}})
	require.NoError(t, err)

	c, err := cayley.Build(g)
	require.NoError(t, err)

	return c
}

// TestBuild_RequiresCompleteness rejects structures whose transition
// table is not yet total.
func TestBuild_RequiresCompleteness(t *testing.T) {
	g, err := group.New([][]string{{"g3", "e"}}, group.WithDeferredCompletion())
	require.NoError(t, err)

	_, err = cayley.Build(g)
	assert.ErrorIs(t, err, group.ErrIncomplete)
}

// TestGraph_Shape verifies vertices, generators and the identity of c3.
func TestGraph_Shape(t *testing.T) {
	c := buildC3(t)

	assert.Equal(t, 3, c.Order())
	assert.Equal(t, []string{"", "g", "gg"}, c.Vertices())
	assert.Equal(t, []rune{'g'}, c.Generators())
	assert.Equal(t, "", c.Identity())
}

// TestGraph_Step walks single transitions around the 3-cycle.
func TestGraph_Step(t *testing.T) {
	c := buildC3(t)

	to, err := c.Step("", 'g')
	require.NoError(t, err)
	assert.Equal(t, "g", to)

	to, err = c.Step("gg", 'g')
	require.NoError(t, err)
	assert.Equal(t, "", to, "the cycle closes")

	_, err = c.Step("ggg", 'g')
	assert.ErrorIs(t, err, cayley.ErrUnknownElement, "ggg is not canonical")
}

// TestGraph_Distances verifies the breadth-first word-length metric.
func TestGraph_Distances(t *testing.T) {
	c := buildC3(t)

	assert.Equal(t, map[string]int{"": 0, "g": 1, "gg": 2}, c.Distances())
	assert.Equal(t, 2, c.Diameter())
}

// TestGraph_DistancesKlein verifies distances in a two-generator group.
func TestGraph_DistancesKlein(t *testing.T) {
	g, err := group.New([][]string{
		{"g2", "e"},
		{"h2", "e"},
		{"ghgh", "e"},
	})
	require.NoError(t, err)

	c, err := cayley.Build(g)
	require.NoError(t, err)

	dist := c.Distances()
	assert.Len(t, dist, 4)
	assert.Equal(t, 0, dist[""])
	assert.Equal(t, 1, dist["g"])
	assert.Equal(t, 1, dist["h"])
	assert.Equal(t, 2, c.Diameter(), "the g·h product sits two steps out")
}

// TestGraph_Multiply composes canonical elements.
func TestGraph_Multiply(t *testing.T) {
	c := buildC3(t)

	prod, err := c.Multiply("g", "gg")
	require.NoError(t, err)
	assert.Equal(t, "", prod)

	prod, err = c.Multiply("gg", "gg")
	require.NoError(t, err)
	assert.Equal(t, "g", prod)

	_, err = c.Multiply("g", "ggg")
	assert.ErrorIs(t, err, cayley.ErrUnknownElement)
}

// TestGraph_ElementOrder verifies element orders divide the group order.
func TestGraph_ElementOrder(t *testing.T) {
	c := buildC3(t)

	n, err := c.ElementOrder("")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = c.ElementOrder("g")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = c.ElementOrder("gg")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

// TestGraph_Neighbors verifies deterministic neighbor listing.
func TestGraph_Neighbors(t *testing.T) {
	c := buildC3(t)

	nbs, err := c.Neighbors("")
	require.NoError(t, err)
	assert.Equal(t, []string{"g"}, nbs)

	_, err = c.Neighbors("nope")
	assert.ErrorIs(t, err, cayley.ErrUnknownElement)
}
