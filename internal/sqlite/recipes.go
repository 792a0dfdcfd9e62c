// This file implements recipe CRUD and search. A recipe row carries the
// scalar fields; categories, tags, and ingredient lines live in join
// tables keyed by recipe id and are replaced wholesale on update.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

// AddRecipe inserts a recipe with its category, tag, and ingredient links
// in one transaction and returns the new id. Label and ingredient names
// are resolved get-or-create by exact match.
func (s *Store) AddRecipe(in types.RecipeInput) (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	if err := in.Validate(); err != nil {
		return "", err
	}
	in.Normalize()

	id := generateID()
	now := time.Now()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO recipes
        (id, name, description, instructions, prep_time, cook_time,
         servings, difficulty, source, notes, favorite, date_added)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, in.Name, in.Description, in.Instructions, in.PrepTime, in.CookTime,
		in.Servings, in.Difficulty, in.Source, in.Notes, boolToInt(in.Favorite),
		formatTime(now),
	)
	if err != nil {
		return "", fmt.Errorf("inserting recipe: %w", err)
	}

	if err := linkCategories(tx, id, in.Categories); err != nil {
		return "", err
	}
	if err := linkTags(tx, id, in.Tags); err != nil {
		return "", err
	}
	if err := linkIngredients(tx, id, in.Ingredients); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing recipe: %w", err)
	}
	return id, nil
}

// GetRecipe retrieves a recipe by id with its ingredients, categories, and
// tags hydrated. Returns ErrNotFound when no recipe has the id.
func (s *Store) GetRecipe(id string) (*types.Recipe, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := s.db.QueryRow(`SELECT id, name, description, instructions,
        prep_time, cook_time, servings, difficulty, source, notes,
        favorite, date_added FROM recipes WHERE id = ?`, id)
	recipe, err := hydrateRecipe(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting recipe %s: %w", id, err)
	}

	if err := s.hydrateAssociations(recipe); err != nil {
		return nil, fmt.Errorf("hydrating recipe %s: %w", id, err)
	}
	return recipe, nil
}

// UpdateRecipe overwrites the scalar fields of an existing recipe and, for
// each association group present in the update, deletes the existing links
// and reinserts from scratch. A group that is absent (nil pointer) is left
// untouched; a present-but-empty group clears all links in that group.
// DateAdded is never modified. Returns ErrNotFound when the id is unknown.
func (s *Store) UpdateRecipe(id string, upd types.RecipeUpdate) error {
	if err := s.check(); err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}
	if err := upd.Validate(); err != nil {
		return err
	}
	upd.Normalize()

	if err := s.recipeExists(id); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`UPDATE recipes SET
        name = ?, description = ?, instructions = ?, prep_time = ?,
        cook_time = ?, servings = ?, difficulty = ?, source = ?,
        notes = ?, favorite = ? WHERE id = ?`,
		upd.Name, upd.Description, upd.Instructions, upd.PrepTime,
		upd.CookTime, upd.Servings, upd.Difficulty, upd.Source,
		upd.Notes, boolToInt(upd.Favorite), id,
	)
	if err != nil {
		return fmt.Errorf("updating recipe: %w", err)
	}

	if upd.Categories != nil {
		if _, err := tx.Exec("DELETE FROM recipe_categories WHERE recipe_id = ?", id); err != nil {
			return fmt.Errorf("clearing recipe categories: %w", err)
		}
		if err := linkCategories(tx, id, *upd.Categories); err != nil {
			return err
		}
	}
	if upd.Tags != nil {
		if _, err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", id); err != nil {
			return fmt.Errorf("clearing recipe tags: %w", err)
		}
		if err := linkTags(tx, id, *upd.Tags); err != nil {
			return err
		}
	}
	if upd.Ingredients != nil {
		if _, err := tx.Exec("DELETE FROM recipe_ingredients WHERE recipe_id = ?", id); err != nil {
			return fmt.Errorf("clearing recipe ingredients: %w", err)
		}
		if err := linkIngredients(tx, id, *upd.Ingredients); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing recipe update: %w", err)
	}
	return nil
}

// DeleteRecipe removes a recipe. The foreign-key cascade removes its
// category, tag, and ingredient links; the ingredients themselves stay.
// Returns ErrNotFound when the id is unknown.
func (s *Store) DeleteRecipe(id string) error {
	if err := s.check(); err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}
	if err := s.recipeExists(id); err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM recipes WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	return nil
}

// SearchRecipes returns summaries of the recipes matching the options.
// The text query is a case-insensitive substring match over name,
// description, and instructions. Category and tag filters are OR'd within
// each list and AND'd across dimensions. DISTINCT collapses the row
// multiplication the label joins would otherwise produce.
func (s *Store) SearchRecipes(opts types.SearchOptions) ([]types.RecipeSummary, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	query := `SELECT DISTINCT r.id, r.name, r.description, r.prep_time,
        r.cook_time, r.difficulty, r.favorite FROM recipes r`
	var conditions []string
	var args []any

	if len(opts.Categories) > 0 {
		query += ` JOIN recipe_categories rc ON r.id = rc.recipe_id
            JOIN categories c ON rc.category_id = c.id`
		conditions = append(conditions, "c.name IN ("+placeholders(len(opts.Categories))+")")
		for _, name := range opts.Categories {
			args = append(args, name)
		}
	}
	if len(opts.Tags) > 0 {
		query += ` JOIN recipe_tags rt ON r.id = rt.recipe_id
            JOIN tags t ON rt.tag_id = t.id`
		conditions = append(conditions, "t.name IN ("+placeholders(len(opts.Tags))+")")
		for _, name := range opts.Tags {
			args = append(args, name)
		}
	}
	if opts.Query != "" {
		conditions = append(conditions, "(r.name LIKE ? OR r.description LIKE ? OR r.instructions LIKE ?)")
		term := "%" + opts.Query + "%"
		args = append(args, term, term, term)
	}
	if opts.Favorite != nil {
		conditions = append(conditions, "r.favorite = ?")
		args = append(args, boolToInt(*opts.Favorite))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY r.name"

	return s.querySummaries(query, args...)
}

// ListRecipes returns summaries of every recipe, alphabetical by name.
func (s *Store) ListRecipes() ([]types.RecipeSummary, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.querySummaries(`SELECT id, name, description, prep_time,
        cook_time, difficulty, favorite FROM recipes ORDER BY name`)
}

// recipeExists returns ErrNotFound when no recipe row has the id.
func (s *Store) recipeExists(id string) error {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM recipes WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking recipe existence: %w", err)
	}
	return nil
}

// linkCategories get-or-creates each category name and links it to the
// recipe. Duplicate names in the input collapse onto one link row.
func linkCategories(tx *sql.Tx, recipeID string, names []string) error {
	for _, name := range names {
		catID, err := getOrCreateLabel(tx, "categories", name)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO recipe_categories (recipe_id, category_id) VALUES (?, ?)",
			recipeID, catID,
		); err != nil {
			return fmt.Errorf("linking category %q: %w", name, err)
		}
	}
	return nil
}

// linkTags get-or-creates each tag name and links it to the recipe.
func linkTags(tx *sql.Tx, recipeID string, names []string) error {
	for _, name := range names {
		tagID, err := getOrCreateLabel(tx, "tags", name)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)",
			recipeID, tagID,
		); err != nil {
			return fmt.Errorf("linking tag %q: %w", name, err)
		}
	}
	return nil
}

// linkIngredients get-or-creates each ingredient and inserts the link row
// carrying the recipe-specific quantity, unit, and notes.
func linkIngredients(tx *sql.Tx, recipeID string, inputs []types.IngredientInput) error {
	for _, in := range inputs {
		unit := in.DefaultUnit
		if unit == "" {
			unit = in.Unit
		}
		ingID, err := getOrCreateIngredient(tx, in.Name, in.Category, unit)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO recipe_ingredients
             (recipe_id, ingredient_id, quantity, unit, notes)
             VALUES (?, ?, ?, ?, ?)`,
			recipeID, ingID, in.Quantity, in.Unit, in.Notes,
		); err != nil {
			return fmt.Errorf("linking ingredient %q: %w", in.Name, err)
		}
	}
	return nil
}

// hydrateAssociations loads the ingredient lines, category names, and tag
// names for an already-scanned recipe.
func (s *Store) hydrateAssociations(recipe *types.Recipe) error {
	rows, err := s.db.Query(`SELECT i.id, i.name, ri.quantity, ri.unit,
        ri.notes, i.category
        FROM recipe_ingredients ri
        JOIN ingredients i ON ri.ingredient_id = i.id
        WHERE ri.recipe_id = ?
        ORDER BY i.name`, recipe.ID)
	if err != nil {
		return fmt.Errorf("querying recipe ingredients: %w", err)
	}
	defer rows.Close()

	recipe.Ingredients = []types.RecipeIngredient{}
	for rows.Next() {
		var ri types.RecipeIngredient
		var quantity sql.NullFloat64
		var unit, notes, category sql.NullString
		if err := rows.Scan(&ri.IngredientID, &ri.Name, &quantity, &unit, &notes, &category); err != nil {
			return fmt.Errorf("scanning recipe ingredient: %w", err)
		}
		ri.Quantity = quantity.Float64
		ri.Unit = unit.String
		ri.Notes = notes.String
		ri.Category = category.String
		recipe.Ingredients = append(recipe.Ingredients, ri)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating recipe ingredients: %w", err)
	}

	recipe.Categories, err = s.recipeLabels(
		`SELECT c.name FROM recipe_categories rc
         JOIN categories c ON rc.category_id = c.id
         WHERE rc.recipe_id = ? ORDER BY c.name`, recipe.ID)
	if err != nil {
		return err
	}
	recipe.Tags, err = s.recipeLabels(
		`SELECT t.name FROM recipe_tags rt
         JOIN tags t ON rt.tag_id = t.id
         WHERE rt.recipe_id = ? ORDER BY t.name`, recipe.ID)
	return err
}

// recipeLabels runs a single-column name query for one recipe.
func (s *Store) recipeLabels(query, recipeID string) ([]string, error) {
	rows, err := s.db.Query(query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("querying recipe labels: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning recipe label: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipe labels: %w", err)
	}
	return names, nil
}

// querySummaries runs a summary-shaped query and scans the result rows.
func (s *Store) querySummaries(query string, args ...any) ([]types.RecipeSummary, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying recipes: %w", err)
	}
	defer rows.Close()

	summaries := []types.RecipeSummary{}
	for rows.Next() {
		var sum types.RecipeSummary
		var description sql.NullString
		var prep, cook sql.NullInt64
		var difficulty sql.NullString
		var favorite int
		if err := rows.Scan(&sum.ID, &sum.Name, &description, &prep, &cook, &difficulty, &favorite); err != nil {
			return nil, fmt.Errorf("scanning recipe summary: %w", err)
		}
		sum.Description = description.String
		sum.PrepTime = int(prep.Int64)
		sum.CookTime = int(cook.Int64)
		sum.Difficulty = difficulty.String
		sum.Favorite = favorite != 0
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipe summaries: %w", err)
	}
	return summaries, nil
}

// hydrateRecipe converts a single row into a *types.Recipe without
// associations.
func hydrateRecipe(row *sql.Row) (*types.Recipe, error) {
	var r types.Recipe
	var description, instructions, difficulty, source, notes sql.NullString
	var prep, cook, servings sql.NullInt64
	var favorite int
	var dateAdded string
	if err := row.Scan(&r.ID, &r.Name, &description, &instructions,
		&prep, &cook, &servings, &difficulty, &source, &notes,
		&favorite, &dateAdded); err != nil {
		return nil, err
	}
	r.Description = description.String
	r.Instructions = instructions.String
	r.PrepTime = int(prep.Int64)
	r.CookTime = int(cook.Int64)
	r.Servings = int(servings.Int64)
	r.Difficulty = difficulty.String
	r.Source = source.String
	r.Notes = notes.String
	r.Favorite = favorite != 0

	added, err := parseTime(dateAdded)
	if err != nil {
		return nil, fmt.Errorf("parsing date_added: %w", err)
	}
	r.DateAdded = added
	return &r, nil
}

// placeholders returns n comma-joined "?" marks for an IN clause.
func placeholders(n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = "?"
	}
	return strings.Join(marks, ", ")
}

// boolToInt converts a bool to the 0/1 representation used in the schema.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
