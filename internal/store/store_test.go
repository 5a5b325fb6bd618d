package store_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VosDeMens/Group-Theory-Sandbox/group"
	"github.com/VosDeMens/Group-Theory-Sandbox/internal/store"
)

// openTemp opens a store backed by a fresh database file.
func openTemp(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "groups.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

// completeC3 builds the cyclic group of order 3.
func completeC3(t *testing.T) *group.Group {
	t.Helper()

	g, err := group.New([][]string{{"g3", "e"}}, group.WithName("c3"))
	require.NoError(t, err)

	return g
}

// TestSaveLoad round-trips a completed structure through SQLite.
func TestSaveLoad(t *testing.T) {
	s := openTemp(t)
	g := completeC3(t)

	require.NoError(t, s.Save(g))

	snap, err := s.Load("c3")
	require.NoError(t, err)

	assert.Equal(t, "c3", snap.Name)
	assert.Equal(t, g.SinkCap(), snap.SinkCap)
	assert.Equal(t, g.ElementCount(), snap.ElementCount)
	assert.Equal(t, []string{"", "g", "gg"}, snap.Sinks)
	assert.Equal(t, g.PrimeRules(), snap.Rules)
	assert.Len(t, snap.Transitions, 3, "three sinks, one generator")
}

// TestSave_RejectsIncomplete refuses structures without a total
// transition table.
func TestSave_RejectsIncomplete(t *testing.T) {
	s := openTemp(t)

	g, err := group.New([][]string{{"g3", "e"}}, group.WithDeferredCompletion())
	require.NoError(t, err)

	assert.ErrorIs(t, s.Save(g), group.ErrIncomplete)
}

// TestSave_Replaces verifies that saving under an existing name replaces
// the earlier snapshot instead of accumulating rows.
func TestSave_Replaces(t *testing.T) {
	s := openTemp(t)
	g := completeC3(t)

	require.NoError(t, s.Save(g))
	require.NoError(t, s.Save(g))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"c3"}, names)

	snap, err := s.Load("c3")
	require.NoError(t, err)
	assert.Len(t, snap.Sinks, 3, "no duplicated sink rows")
}

// TestLoad_NotFound surfaces the sentinel for unknown names.
func TestLoad_NotFound(t *testing.T) {
	s := openTemp(t)

	_, err := s.Load("nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// TestLoad_CorruptGenerator surfaces a mangled transition row — here an
// emptied generator column — as an error rather than a panic.
func TestLoad_CorruptGenerator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groups.db")

	s, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(completeC3(t)))
	require.NoError(t, s.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE transitions SET generator = ''`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err = store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Load("c3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty generator")
}

// TestList returns saved names in ascending order.
func TestList(t *testing.T) {
	s := openTemp(t)

	g1, err := group.New([][]string{{"g3", "e"}}, group.WithName("zeta"))
	require.NoError(t, err)
	g2, err := group.New([][]string{{"g2", "e"}}, group.WithName("alpha"))
	require.NoError(t, err)

	require.NoError(t, s.Save(g1))
	require.NoError(t, s.Save(g2))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

// TestSnapshot_Rebuild reconstructs a live engine from the stored prime
// rules and compares it against the original structure.
func TestSnapshot_Rebuild(t *testing.T) {
	s := openTemp(t)
	g := completeC3(t)
	require.NoError(t, s.Save(g))

	snap, err := s.Load("c3")
	require.NoError(t, err)

	rebuilt, err := snap.Rebuild()
	require.NoError(t, err)

	assert.True(t, rebuilt.IsComplete())
	assert.Equal(t, g.Sinks(), rebuilt.Sinks())
	assert.Equal(t, g.Report(), rebuilt.Report())
}
