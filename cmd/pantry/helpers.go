// Shared helpers for pantry CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/codyhinz/RecipeOrganizer/internal/sqlite"
	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

// openStore resolves the data directory and opens the SQLite store. The
// caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := sqlite.Open(types.Config{
		DataDir:      dataDir,
		DatabaseFile: configDatabaseFile,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseIngredientFlag parses a --ingredient value of the form
// "quantity:unit:name" or "quantity:unit:name:notes".
func parseIngredientFlag(value string) (types.IngredientInput, error) {
	parts := strings.SplitN(value, ":", 4)
	if len(parts) < 3 {
		return types.IngredientInput{}, fmt.Errorf("ingredient %q: want quantity:unit:name[:notes]", value)
	}

	quantity, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return types.IngredientInput{}, fmt.Errorf("ingredient %q: bad quantity: %w", value, err)
	}

	in := types.IngredientInput{
		Quantity: quantity,
		Unit:     strings.TrimSpace(parts[1]),
		Name:     strings.TrimSpace(parts[2]),
	}
	if len(parts) == 4 {
		in.Notes = strings.TrimSpace(parts[3])
	}
	if in.Name == "" {
		return types.IngredientInput{}, fmt.Errorf("ingredient %q: empty name", value)
	}
	return in, nil
}

// shortID truncates an id for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens a string for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// checkbox renders a checked flag for table display.
func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
