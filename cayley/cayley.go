package cayley

import (
	"errors"
	"fmt"

	"github.com/VosDeMens/Group-Theory-Sandbox/group"
)

// ErrUnknownElement is returned when a vertex argument is not one of the
// graph's canonical elements.
var ErrUnknownElement = errors.New("cayley: unknown element")

// Graph is the Cayley graph of a completed group: one vertex per
// canonical element, one labeled edge per (element, generator) pair.
// It keeps the underlying Group for composite operations (Multiply,
// ElementOrder), so it shares the Group's single-threaded constraint.
type Graph struct {
	grp      *group.Group
	vertices []string                   // sinks in canonical order; vertices[0] is the identity
	gens     []rune                     // generator characters, ascending
	next     map[string]map[rune]string // the total transition table
}

// Build snapshots the transition table of g into a Graph. The structure
// must be complete; an incomplete group has no total table to expose and
// Build fails with group.ErrIncomplete.
func Build(g *group.Group) (*Graph, error) {
	if !g.IsComplete() {
		return nil, fmt.Errorf("cayley: build: %w", group.ErrIncomplete)
	}

	vertices := g.Sinks()
	gens := g.Generators()

	next := make(map[string]map[rune]string, len(vertices))
	for _, v := range vertices {
		row := make(map[rune]string, len(gens))
		for _, gen := range gens {
			to, ok := g.Transition(v, gen)
			if !ok {
				// Unreachable once IsComplete holds; guard anyway.
				return nil, fmt.Errorf("cayley: build: no transition for %q under %q: %w",
					v, gen, group.ErrIncomplete)
			}
			row[gen] = to
		}
		next[v] = row
	}

	return &Graph{grp: g, vertices: vertices, gens: gens, next: next}, nil
}

// Order returns the number of elements — the order of the group.
func (c *Graph) Order() int {
	return len(c.vertices)
}

// Vertices returns the canonical elements in canonical order.
func (c *Graph) Vertices() []string {
	out := make([]string, len(c.vertices))
	copy(out, c.vertices)

	return out
}

// Generators returns the generator characters labeling the edges.
func (c *Graph) Generators() []rune {
	out := make([]rune, len(c.gens))
	copy(out, c.gens)

	return out
}

// Identity returns the identity element's canonical form.
func (c *Graph) Identity() string {
	return c.vertices[0]
}

// Step returns the element reached from v by one application of the
// generator gen.
func (c *Graph) Step(v string, gen rune) (string, error) {
	row, ok := c.next[v]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownElement, v)
	}

	to, ok := row[gen]
	if !ok {
		return "", fmt.Errorf("cayley: %q is not a generator", gen)
	}

	return to, nil
}

// Neighbors returns the distinct elements reachable from v by a single
// generator application, in generator order.
func (c *Graph) Neighbors(v string) ([]string, error) {
	row, ok := c.next[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, v)
	}

	var out []string
	seen := make(map[string]struct{}, len(c.gens))
	for _, gen := range c.gens {
		to := row[gen]
		if _, dup := seen[to]; !dup {
			seen[to] = struct{}{}
			out = append(out, to)
		}
	}

	return out, nil
}

// Distances returns the word-length metric: for every element, the
// minimum number of generator applications taking the identity to it.
// Computed breadth first over the transition table.
func (c *Graph) Distances() map[string]int {
	dist := make(map[string]int, len(c.vertices))
	dist[c.Identity()] = 0

	queue := []string{c.Identity()}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, gen := range c.gens {
			to := c.next[v][gen]
			if _, visited := dist[to]; visited {
				continue
			}
			dist[to] = dist[v] + 1
			queue = append(queue, to)
		}
	}

	return dist
}

// Diameter returns the largest word-length distance from the identity.
func (c *Graph) Diameter() int {
	maxDist := 0
	for _, d := range c.Distances() {
		if d > maxDist {
			maxDist = d
		}
	}

	return maxDist
}

// Multiply composes two canonical elements and returns the canonical
// form of their product.
func (c *Graph) Multiply(a, b string) (string, error) {
	if _, ok := c.next[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownElement, a)
	}
	if _, ok := c.next[b]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownElement, b)
	}

	return c.grp.CanonicalForm(a + b)
}

// ElementOrder returns the order of v: the smallest n ≥ 1 with vⁿ equal
// to the identity. By Lagrange's theorem the order divides Order(), so
// exceeding it indicates a corrupted table and fails.
func (c *Graph) ElementOrder(v string) (int, error) {
	if _, ok := c.next[v]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownElement, v)
	}

	cur := v
	for n := 1; n <= c.Order(); n++ {
		if cur == c.Identity() {
			return n, nil
		}

		var err error
		if cur, err = c.Multiply(cur, v); err != nil {
			return 0, err
		}
	}

	return 0, fmt.Errorf("cayley: order of %q exceeds group order %d", v, c.Order())
}
