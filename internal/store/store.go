package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/VosDeMens/Group-Theory-Sandbox/group"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound is returned by Load when no structure with the requested
// name has been saved.
var ErrNotFound = errors.New("store: group not found")

// Store provides durable storage for completed group structures.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and applies
// the schema. Idempotent: safe to call on an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()

		return nil, fmt.Errorf("store: connect: %w", err)
	}

	// SQLite supports one writer at a time; a single connection keeps
	// transactions serialized without busy retries.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()

			return nil, fmt.Errorf("store: %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()

		return nil, fmt.Errorf("store: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists the structure of a completed group under its name,
// replacing any previously saved snapshot with the same name. Incomplete
// groups have no total transition table to store and are rejected with
// group.ErrIncomplete.
func (s *Store) Save(g *group.Group) error {
	if !g.IsComplete() {
		return fmt.Errorf("store: save %q: %w", g.Name(), group.ErrIncomplete)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin save: %w", err)
	}
	defer tx.Rollback()

	// Replace any earlier snapshot; child rows cascade.
	if _, err = tx.Exec(`DELETE FROM groups WHERE name = ?`, g.Name()); err != nil {
		return fmt.Errorf("store: clear %q: %w", g.Name(), err)
	}

	if _, err = tx.Exec(
		`INSERT INTO groups (name, sink_cap, element_count) VALUES (?, ?, ?)`,
		g.Name(), g.SinkCap(), g.ElementCount(),
	); err != nil {
		return fmt.Errorf("store: insert group %q: %w", g.Name(), err)
	}

	for i, sink := range g.Sinks() {
		if _, err = tx.Exec(
			`INSERT INTO sinks (group_name, position, word) VALUES (?, ?, ?)`,
			g.Name(), i, sink,
		); err != nil {
			return fmt.Errorf("store: insert sink: %w", err)
		}
	}

	for i, rule := range g.PrimeRules() {
		if _, err = tx.Exec(
			`INSERT INTO rules (group_name, position, left_word, right_word) VALUES (?, ?, ?, ?)`,
			g.Name(), i, rule.Left, rule.Right,
		); err != nil {
			return fmt.Errorf("store: insert rule: %w", err)
		}
	}

	for _, sink := range g.Sinks() {
		for _, gen := range g.Generators() {
			to, ok := g.Transition(sink, gen)
			if !ok {
				return fmt.Errorf("store: save %q: missing transition: %w", g.Name(), group.ErrIncomplete)
			}

			if _, err = tx.Exec(
				`INSERT INTO transitions (group_name, from_word, generator, to_word) VALUES (?, ?, ?, ?)`,
				g.Name(), sink, string(gen), to,
			); err != nil {
				return fmt.Errorf("store: insert transition: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit save: %w", err)
	}

	return nil
}

// Load reads the snapshot saved under name, or ErrNotFound.
func (s *Store) Load(name string) (*Snapshot, error) {
	snap := &Snapshot{Name: name}

	err := s.db.QueryRow(
		`SELECT sink_cap, element_count FROM groups WHERE name = ?`, name,
	).Scan(&snap.SinkCap, &snap.ElementCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %q: %w", name, err)
	}

	if snap.Sinks, err = s.loadSinks(name); err != nil {
		return nil, err
	}
	if snap.Rules, err = s.loadRules(name); err != nil {
		return nil, err
	}
	if snap.Transitions, err = s.loadTransitions(name); err != nil {
		return nil, err
	}

	return snap, nil
}

// List returns the names of all saved structures, ascending.
func (s *Store) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM groups ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("store: list scan: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func (s *Store) loadSinks(name string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT word FROM sinks WHERE group_name = ? ORDER BY position`, name,
	)
	if err != nil {
		return nil, fmt.Errorf("store: load sinks of %q: %w", name, err)
	}
	defer rows.Close()

	var sinks []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("store: sink scan: %w", err)
		}
		sinks = append(sinks, w)
	}

	return sinks, rows.Err()
}

func (s *Store) loadRules(name string) ([]group.Rule, error) {
	rows, err := s.db.Query(
		`SELECT left_word, right_word FROM rules WHERE group_name = ? ORDER BY position`, name,
	)
	if err != nil {
		return nil, fmt.Errorf("store: load rules of %q: %w", name, err)
	}
	defer rows.Close()

	var rules []group.Rule
	for rows.Next() {
		var r group.Rule
		if err := rows.Scan(&r.Left, &r.Right); err != nil {
			return nil, fmt.Errorf("store: rule scan: %w", err)
		}
		rules = append(rules, r)
	}

	return rules, rows.Err()
}

func (s *Store) loadTransitions(name string) ([]Transition, error) {
	rows, err := s.db.Query(
		`SELECT from_word, generator, to_word FROM transitions
		 WHERE group_name = ? ORDER BY from_word, generator`, name,
	)
	if err != nil {
		return nil, fmt.Errorf("store: load transitions of %q: %w", name, err)
	}
	defer rows.Close()

	var ts []Transition
	for rows.Next() {
		var t Transition
		var gen string
		if err := rows.Scan(&t.From, &gen, &t.To); err != nil {
			return nil, fmt.Errorf("store: transition scan: %w", err)
		}
		// Rows are written with a one-rune generator; anything else means
		// the database was edited or corrupted outside this package.
		if gen == "" {
			return nil, fmt.Errorf("store: load transitions of %q: empty generator column", name)
		}
		t.Generator = []rune(gen)[0]
		ts = append(ts, t)
	}

	return ts, rows.Err()
}
