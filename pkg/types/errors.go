package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
)

// Entity operation errors. Not-found conditions are signaled with
// ErrNotFound rather than a panic or an opaque SQL error; callers
// check with errors.Is.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid entity ID")
	ErrInvalidName   = errors.New("name must not be empty")
	ErrEmptyUpdate   = errors.New("no fields to update")
	ErrInvalidImport = errors.New("malformed import record")
)
