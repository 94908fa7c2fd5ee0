// Package store persists the tracker snapshot in a local SQLite database.
// The snapshot is one opaque payload under a fixed storage key; the store
// neither inspects nor migrates it. A file lock next to the database keeps
// the single-writer guarantee across processes.
package store
