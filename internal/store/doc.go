// Package store persists completed group structures in SQLite so the
// command-line wrapper can cache inference results between runs.
//
// A saved structure is a snapshot, not a live engine: the group's name,
// sink cap, sinks, prime rules, and the full transition table. Snapshot
// rows are enough to answer structural questions directly, and
// Snapshot.Rebuild replays the stored prime rules through the completion
// engine when a live *group.Group is needed again.
//
// The database is opened with foreign keys enforced and a busy timeout;
// one writer at a time is assumed, matching the engine's single-threaded
// model.
package store
