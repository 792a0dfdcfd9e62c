// This file implements backup and restore by raw file copy. The connection
// is closed around the copy; this is only sound because the process is the
// sole writer.
package sqlite

import (
	"fmt"
	"io"
	"os"
)

// Backup copies the database file to dst. The store stays usable
// afterwards: the connection is reopened whether or not the copy
// succeeded.
func (s *Store) Backup(dst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(); err != nil {
		return err
	}
	return s.withClosedDB(func() error {
		return copyFile(s.dbPath, dst)
	})
}

// Restore replaces the database file with the one at src and reopens the
// store. Everything in the current database is lost.
func (s *Store) Restore(src string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(); err != nil {
		return err
	}
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("checking backup file: %w", err)
	}
	return s.withClosedDB(func() error {
		return copyFile(src, s.dbPath)
	})
}

// withClosedDB closes the SQLite handle, runs fn, and reopens the handle.
// The reopen runs even when fn fails so the store is never left dead.
func (s *Store) withClosedDB(fn func() error) error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.db = nil

	fnErr := fn()

	db, openErr := openDatabase(s.dbPath)
	if openErr != nil {
		s.closed = true
		return fmt.Errorf("reopening database: %w", openErr)
	}
	s.db = db
	return fnErr
}

// copyFile copies src to dst, truncating dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return fmt.Errorf("syncing %s: %w", dst, err)
	}
	return out.Close()
}
