package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"overdub/internal/config"
	"overdub/internal/logging"
)

// StorageKey identifies the single snapshot record. The value matches the
// storage key older dashboard exports were saved under, so they import
// cleanly.
const StorageKey = "albumProgress_v3"

// ErrLocked indicates another process currently holds the writer lock.
var ErrLocked = errors.New("data directory is locked by another process")

// Store manages snapshot persistence backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// Open acquires the writer lock, connects to the snapshot database, and
// verifies the schema. The lock is held until Close.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire data lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, cfg.LockPath())
	}

	db, err := sql.Open("sqlite", cfg.DatabasePath())
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:     db,
		path:   cfg.DatabasePath(),
		lock:   lock,
		logger: logging.NewComponentLogger(logger, "store"),
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close releases the database connection and the writer lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var dbErr error
	if s.db != nil {
		dbErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && dbErr == nil {
			dbErr = err
		}
	}
	return dbErr
}

// LoadInitial reads the persisted snapshot payload. A missing record is not
// an error: it reports ok=false so the caller falls through to defaults,
// which is the expected first-run path.
func (s *Store) LoadInitial(ctx context.Context) ([]byte, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE storage_key = ?`, StorageKey)
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load snapshot: %w", err)
	}
	return payload, true, nil
}

// Replace atomically substitutes the entire persisted snapshot with the
// given payload. Every accepted mutation writes through here; there is no
// partial write path.
func (s *Store) Replace(ctx context.Context, payload []byte) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (storage_key, payload, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(storage_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		StorageKey, payload, now)
	if err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	s.logger.Debug("snapshot replaced", logging.Int("bytes", len(payload)))
	return nil
}

// Clear removes the persisted snapshot so the next load rebuilds defaults.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE storage_key = ?`, StorageKey)
	if err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	s.logger.Debug("snapshot cleared")
	return nil
}
