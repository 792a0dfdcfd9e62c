// This file seeds the default category and tag labels on first run.
package sqlite

import (
	"database/sql"
	"fmt"
)

// defaultCategories are the labels every fresh database starts with.
var defaultCategories = []string{
	"Breakfast", "Lunch", "Dinner", "Dessert",
	"Appetizer", "Snack", "Soup", "Salad",
	"Main Course", "Side Dish", "Beverage", "Baked Goods",
}

// defaultTags are the dietary and convenience labels seeded alongside the
// categories.
var defaultTags = []string{
	"Vegetarian", "Vegan", "Gluten-Free", "Dairy-Free",
	"Nut-Free", "Low-Carb", "High-Protein", "Quick",
	"Easy", "Budget-Friendly", "One-Pot", "Kid-Friendly",
}

// seedDefaultLabels inserts the default categories and tags. The inserts
// ignore conflicts on the unique name columns, so re-running against an
// existing database changes nothing, including databases where the user
// has renamed or deleted defaults.
func seedDefaultLabels(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, name := range defaultCategories {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO categories (id, name) VALUES (?, ?)",
			generateID(), name,
		); err != nil {
			return fmt.Errorf("seeding category %s: %w", name, err)
		}
	}
	for _, name := range defaultTags {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO tags (id, name) VALUES (?, ?)",
			generateID(), name,
		); err != nil {
			return fmt.Errorf("seeding tag %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}
