// This file implements ingredient operations. Ingredients are reusable
// rows referenced by recipes and shopping lists; they are never owned by a
// single recipe and survive recipe deletion.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

// Ingredients returns every known ingredient, alphabetical by name.
func (s *Store) Ingredients() ([]types.Ingredient, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT id, name, category, unit FROM ingredients ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []types.Ingredient{}
	for rows.Next() {
		var ing types.Ingredient
		var category, unit sql.NullString
		if err := rows.Scan(&ing.ID, &ing.Name, &category, &unit); err != nil {
			return nil, fmt.Errorf("scanning ingredient: %w", err)
		}
		ing.Category = category.String
		ing.Unit = unit.String
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ingredients: %w", err)
	}
	return ingredients, nil
}

// getOrCreateIngredient looks up an ingredient by exact name and inserts it
// with the given category and default unit when absent. A match is strictly
// by name; category and unit on an existing row are left as they are.
func getOrCreateIngredient(tx *sql.Tx, name, category, unit string) (string, error) {
	var id string
	err := tx.QueryRow("SELECT id FROM ingredients WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("looking up ingredient %q: %w", name, err)
	}

	newID := generateID()
	if _, err := tx.Exec(
		"INSERT OR IGNORE INTO ingredients (id, name, category, unit) VALUES (?, ?, ?, ?)",
		newID, name, category, unit,
	); err != nil {
		return "", fmt.Errorf("inserting ingredient %q: %w", name, err)
	}

	if err := tx.QueryRow("SELECT id FROM ingredients WHERE name = ?", name).Scan(&id); err != nil {
		return "", fmt.Errorf("re-reading ingredient %q: %w", name, err)
	}
	return id, nil
}
