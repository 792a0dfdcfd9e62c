// This file implements category and tag label operations. Labels are pure
// names: case-sensitive, unique, shared across recipes through join tables.
package sqlite

import (
	"database/sql"
	"fmt"
)

// Categories returns every known category name, alphabetical, whether or
// not any recipe uses it.
func (s *Store) Categories() ([]string, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.labelNames("categories")
}

// Tags returns every known tag name, alphabetical.
func (s *Store) Tags() ([]string, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.labelNames("tags")
}

// labelNames queries all names from the given label table in alphabetical
// order. The table name is always one of the two schema constants, never
// caller input.
func (s *Store) labelNames(table string) ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM " + table + " ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning %s name: %w", table, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", table, err)
	}
	return names, nil
}

// getOrCreateLabel looks up a label by exact name in the given table and
// inserts it when absent, returning the label id either way. The
// insert-then-reselect order keeps this safe against a duplicate insert
// from a concurrent writer, even though the process is the sole writer in
// normal operation.
func getOrCreateLabel(tx *sql.Tx, table, name string) (string, error) {
	var id string
	err := tx.QueryRow("SELECT id FROM "+table+" WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("looking up %s %q: %w", table, name, err)
	}

	newID := generateID()
	if _, err := tx.Exec(
		"INSERT OR IGNORE INTO "+table+" (id, name) VALUES (?, ?)",
		newID, name,
	); err != nil {
		return "", fmt.Errorf("inserting %s %q: %w", table, name, err)
	}

	// Re-select rather than trusting newID: the ignored-conflict path means
	// another row may own the name.
	if err := tx.QueryRow("SELECT id FROM "+table+" WHERE name = ?", name).Scan(&id); err != nil {
		return "", fmt.Errorf("re-reading %s %q: %w", table, name, err)
	}
	return id, nil
}
