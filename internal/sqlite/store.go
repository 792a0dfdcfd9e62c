// This file implements the Store lifecycle: open, schema creation, seed,
// and close. The store holds exactly one connection to the embedded
// database for its whole lifetime; every operation serializes through it.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

// Store owns the SQLite database holding recipes, labels, ingredients, and
// shopping lists. It is not safe for concurrent use; the application is
// single-threaded by design.
type Store struct {
	mu     sync.Mutex
	config types.Config
	dbPath string
	db     *sql.DB
	closed bool
}

// Open creates the data directory if needed, opens the database file,
// creates the schema, and seeds the default categories and tags. Opening
// an existing database is safe: every DDL statement is conditional and
// seed inserts ignore conflicts.
func Open(config types.Config) (*Store, error) {
	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, config.File())
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, err
	}

	return &Store{
		config: config,
		dbPath: dbPath,
		db:     db,
	}, nil
}

// openDatabase opens the SQLite file and initializes schema and seed data.
// Shared between Open and the backup/restore reopen path.
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// The cascade and set-null rules in the schema are inert without this.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, stmt := range indexDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating indexes: %w", err)
		}
	}

	if err := seedDefaultLabels(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding labels: %w", err)
	}

	return db, nil
}

// Close releases the database connection. Idempotent. After Close, all
// operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.closed = true
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// check returns ErrStoreClosed when the store has been closed.
func (s *Store) check() error {
	if s.closed || s.db == nil {
		return types.ErrStoreClosed
	}
	return nil
}

// generateID generates a new UUID v7 for entity IDs, falling back to v4
// if v7 generation fails.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// formatTime and parseTime convert between time.Time and the RFC3339 TEXT
// representation used in every timestamp column.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
