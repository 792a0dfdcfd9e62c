// This file implements shopping list operations, including generation from
// a set of recipes with quantity aggregation per (ingredient, unit) pair.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

// CreateShoppingList creates an empty shopping list and returns its id.
func (s *Store) CreateShoppingList(name, notes string) (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	if strings.TrimSpace(name) == "" {
		return "", types.ErrInvalidName
	}

	id := generateID()
	if _, err := s.db.Exec(
		"INSERT INTO shopping_lists (id, name, date_created, notes) VALUES (?, ?, ?, ?)",
		id, strings.TrimSpace(name), formatTime(time.Now()), notes,
	); err != nil {
		return "", fmt.Errorf("inserting shopping list: %w", err)
	}
	return id, nil
}

// AddShoppingListItem appends an item to a shopping list, get-or-creating
// the named ingredient. Returns the new item id, or ErrNotFound when the
// list does not exist.
func (s *Store) AddShoppingListItem(listID, ingredientName string, quantity float64, unit, notes string) (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	if strings.TrimSpace(ingredientName) == "" {
		return "", types.ErrInvalidName
	}
	if err := s.shoppingListExists(listID); err != nil {
		return "", err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	ingID, err := getOrCreateIngredient(tx, strings.TrimSpace(ingredientName), "", unit)
	if err != nil {
		return "", err
	}

	id := generateID()
	if _, err := tx.Exec(
		`INSERT INTO shopping_list_items
         (id, shopping_list_id, ingredient_id, quantity, unit, checked, notes)
         VALUES (?, ?, ?, ?, ?, 0, ?)`,
		id, listID, ingID, quantity, unit, notes,
	); err != nil {
		return "", fmt.Errorf("inserting shopping list item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing shopping list item: %w", err)
	}
	return id, nil
}

// ShoppingLists returns every shopping list, newest first. Items are not
// loaded.
func (s *Store) ShoppingLists() ([]types.ShoppingList, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT id, name, date_created, notes FROM shopping_lists ORDER BY date_created DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying shopping lists: %w", err)
	}
	defer rows.Close()

	lists := []types.ShoppingList{}
	for rows.Next() {
		list, err := scanShoppingList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, *list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shopping lists: %w", err)
	}
	return lists, nil
}

// GetShoppingList retrieves a shopping list with its items, ordered by
// ingredient category then name so the list reads in store-aisle order.
// Items whose ingredient was deleted keep their row with a blank name.
// Returns ErrNotFound when the id is unknown.
func (s *Store) GetShoppingList(id string) (*types.ShoppingList, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := s.db.QueryRow(
		"SELECT id, name, date_created, notes FROM shopping_lists WHERE id = ?", id,
	)
	var list types.ShoppingList
	var notes sql.NullString
	var created string
	if err := row.Scan(&list.ID, &list.Name, &created, &notes); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting shopping list %s: %w", id, err)
	}
	list.Notes = notes.String
	createdAt, err := parseTime(created)
	if err != nil {
		return nil, fmt.Errorf("parsing date_created: %w", err)
	}
	list.DateCreated = createdAt

	rows, err := s.db.Query(`SELECT sli.id, sli.ingredient_id, i.name,
        sli.quantity, sli.unit, sli.checked, sli.notes, i.category
        FROM shopping_list_items sli
        LEFT JOIN ingredients i ON sli.ingredient_id = i.id
        WHERE sli.shopping_list_id = ?
        ORDER BY i.category, i.name`, id)
	if err != nil {
		return nil, fmt.Errorf("querying shopping list items: %w", err)
	}
	defer rows.Close()

	list.Items = []types.ShoppingListItem{}
	for rows.Next() {
		var item types.ShoppingListItem
		var ingID, name, unit, itemNotes, category sql.NullString
		var quantity sql.NullFloat64
		var checked int
		if err := rows.Scan(&item.ID, &ingID, &name, &quantity, &unit, &checked, &itemNotes, &category); err != nil {
			return nil, fmt.Errorf("scanning shopping list item: %w", err)
		}
		item.IngredientID = ingID.String
		item.Name = name.String
		item.Quantity = quantity.Float64
		item.Unit = unit.String
		item.Checked = checked != 0
		item.Notes = itemNotes.String
		item.Category = category.String
		list.Items = append(list.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shopping list items: %w", err)
	}
	return &list, nil
}

// UpdateShoppingListItem writes only the supplied fields of an item.
// Returns ErrEmptyUpdate when no field is supplied and ErrNotFound when
// the item does not exist.
func (s *Store) UpdateShoppingListItem(id string, upd types.ItemUpdate) error {
	if err := s.check(); err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}
	if upd.Empty() {
		return types.ErrEmptyUpdate
	}

	var fields []string
	var args []any
	if upd.Checked != nil {
		fields = append(fields, "checked = ?")
		args = append(args, boolToInt(*upd.Checked))
	}
	if upd.Quantity != nil {
		fields = append(fields, "quantity = ?")
		args = append(args, *upd.Quantity)
	}
	if upd.Notes != nil {
		fields = append(fields, "notes = ?")
		args = append(args, *upd.Notes)
	}
	args = append(args, id)

	res, err := s.db.Exec(
		"UPDATE shopping_list_items SET "+strings.Join(fields, ", ")+" WHERE id = ?",
		args...,
	)
	if err != nil {
		return fmt.Errorf("updating shopping list item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// DeleteShoppingListItem removes a single item. Returns ErrNotFound when
// the id is unknown.
func (s *Store) DeleteShoppingListItem(id string) error {
	if err := s.check(); err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}

	res, err := s.db.Exec("DELETE FROM shopping_list_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting shopping list item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// DeleteShoppingList removes a shopping list; the foreign-key cascade
// removes its items. Returns ErrNotFound when the id is unknown.
func (s *Store) DeleteShoppingList(id string) error {
	if err := s.check(); err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}

	res, err := s.db.Exec("DELETE FROM shopping_lists WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting shopping list: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// GenerateShoppingList creates a shopping list from the ingredients of the
// given recipes. Quantities are summed per (ingredient, unit) pair; the
// same ingredient in different units stays as separate line items. With no
// recipe ids the list is created empty. The default name embeds today's
// date in ISO form.
func (s *Store) GenerateShoppingList(recipeIDs []string, name string) (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	if name == "" {
		name = fmt.Sprintf("Shopping list (%s)", time.Now().Format("2006-01-02"))
	}

	listID, err := s.CreateShoppingList(name, "Generated from selected recipes")
	if err != nil {
		return "", err
	}
	if len(recipeIDs) == 0 {
		return listID, nil
	}

	args := make([]any, len(recipeIDs))
	for i, rid := range recipeIDs {
		args[i] = rid
	}
	rows, err := s.db.Query(`SELECT ri.ingredient_id,
        SUM(ri.quantity) AS total_quantity, ri.unit
        FROM recipe_ingredients ri
        JOIN ingredients i ON ri.ingredient_id = i.id
        WHERE ri.recipe_id IN (`+placeholders(len(recipeIDs))+`)
        GROUP BY ri.ingredient_id, ri.unit
        ORDER BY i.category, i.name`, args...)
	if err != nil {
		return "", fmt.Errorf("aggregating recipe ingredients: %w", err)
	}
	defer rows.Close()

	type line struct {
		ingredientID string
		quantity     float64
		unit         string
	}
	var lines []line
	for rows.Next() {
		var l line
		var quantity sql.NullFloat64
		var unit sql.NullString
		if err := rows.Scan(&l.ingredientID, &quantity, &unit); err != nil {
			return "", fmt.Errorf("scanning aggregated ingredient: %w", err)
		}
		l.quantity = quantity.Float64
		l.unit = unit.String
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterating aggregated ingredients: %w", err)
	}

	for _, l := range lines {
		if _, err := s.db.Exec(
			`INSERT INTO shopping_list_items
             (id, shopping_list_id, ingredient_id, quantity, unit, checked, notes)
             VALUES (?, ?, ?, ?, ?, 0, '')`,
			generateID(), listID, l.ingredientID, l.quantity, l.unit,
		); err != nil {
			return "", fmt.Errorf("inserting generated item: %w", err)
		}
	}
	return listID, nil
}

// shoppingListExists returns ErrNotFound when no shopping list has the id.
func (s *Store) shoppingListExists(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	var one int
	err := s.db.QueryRow("SELECT 1 FROM shopping_lists WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking shopping list existence: %w", err)
	}
	return nil
}

// scanShoppingList converts a list-view row into a types.ShoppingList.
func scanShoppingList(rows *sql.Rows) (*types.ShoppingList, error) {
	var list types.ShoppingList
	var notes sql.NullString
	var created string
	if err := rows.Scan(&list.ID, &list.Name, &created, &notes); err != nil {
		return nil, fmt.Errorf("scanning shopping list: %w", err)
	}
	list.Notes = notes.String
	createdAt, err := parseTime(created)
	if err != nil {
		return nil, fmt.Errorf("parsing date_created: %w", err)
	}
	list.DateCreated = createdAt
	return &list, nil
}
