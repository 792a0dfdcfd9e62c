// Package main provides the pantry CLI, a recipe and shopping list
// organizer backed by a local SQLite database.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps sentinel errors onto user-error exits; everything else
// is a system error.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidName),
		errors.Is(err, types.ErrEmptyUpdate),
		errors.Is(err, types.ErrInvalidImport):
		return exitUserError
	default:
		return exitSysError
	}
}
