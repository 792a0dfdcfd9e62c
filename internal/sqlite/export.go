// This file implements recipe import and export. Exported records mirror
// the data model with human-editable field names; import validates only
// name presence and upserts by id.
package sqlite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

// ExportRecipe returns a single recipe as an import-ready record. Returns
// ErrNotFound when the id is unknown.
func (s *Store) ExportRecipe(id string) (*types.RecipeRecord, error) {
	recipe, err := s.GetRecipe(id)
	if err != nil {
		return nil, err
	}
	rec := recipeToRecord(recipe)
	return &rec, nil
}

// ExportRecipes returns records for the given ids. An unknown id fails the
// whole export; partial archives are worse than loud errors here.
func (s *Store) ExportRecipes(ids []string) ([]types.RecipeRecord, error) {
	records := make([]types.RecipeRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := s.ExportRecipe(id)
		if err != nil {
			return nil, fmt.Errorf("exporting recipe %s: %w", id, err)
		}
		records = append(records, *rec)
	}
	return records, nil
}

// ExportAllRecipes returns records for every recipe in the store.
func (s *Store) ExportAllRecipes() ([]types.RecipeRecord, error) {
	summaries, err := s.ListRecipes()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(summaries))
	for i, sum := range summaries {
		ids[i] = sum.ID
	}
	return s.ExportRecipes(ids)
}

// ExportShoppingList returns a shopping list with its items for
// serialization. Returns ErrNotFound when the id is unknown.
func (s *Store) ExportShoppingList(id string) (*types.ShoppingList, error) {
	return s.GetShoppingList(id)
}

// ImportRecipes imports a batch of records, producing one result per
// record. A record with a non-empty ID matching an existing recipe updates
// it; otherwise a new recipe is inserted and any supplied id is ignored.
// A bad record is reported in its result and the batch continues.
func (s *Store) ImportRecipes(records []types.RecipeRecord) []types.ImportResult {
	results := make([]types.ImportResult, 0, len(records))
	for _, rec := range records {
		id, err := s.importRecipe(rec)
		results = append(results, types.ImportResult{
			Name: rec.Name,
			ID:   id,
			Err:  err,
		})
	}
	return results
}

// ImportRecipesJSON decodes a JSON payload holding either a single recipe
// object or an array of them, then imports record by record. Records that
// fail to decode are reported in their result without aborting the rest.
func (s *Store) ImportRecipesJSON(data []byte) ([]types.ImportResult, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, types.ErrInvalidImport
	}

	var raws []json.RawMessage
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrInvalidImport, err)
		}
	} else {
		raws = []json.RawMessage{trimmed}
	}

	results := make([]types.ImportResult, 0, len(raws))
	for _, raw := range raws {
		var rec types.RecipeRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			results = append(results, types.ImportResult{
				Err: fmt.Errorf("%w: %v", types.ErrInvalidImport, err),
			})
			continue
		}
		id, err := s.importRecipe(rec)
		results = append(results, types.ImportResult{
			Name: rec.Name,
			ID:   id,
			Err:  err,
		})
	}
	return results, nil
}

// importRecipe upserts one record: update when the supplied id exists,
// insert otherwise.
func (s *Store) importRecipe(rec types.RecipeRecord) (string, error) {
	if strings.TrimSpace(rec.Name) == "" {
		return "", types.ErrInvalidImport
	}

	if rec.ID != "" {
		err := s.UpdateRecipe(rec.ID, recordToUpdate(rec))
		if err == nil {
			return rec.ID, nil
		}
		if !errors.Is(err, types.ErrNotFound) {
			return "", err
		}
		// Unknown id: fall through to insert with a fresh one.
	}
	return s.AddRecipe(rec.RecipeInput)
}

// recipeToRecord flattens a hydrated recipe into the import/export shape.
func recipeToRecord(recipe *types.Recipe) types.RecipeRecord {
	ingredients := make([]types.IngredientInput, len(recipe.Ingredients))
	for i, ri := range recipe.Ingredients {
		ingredients[i] = types.IngredientInput{
			Name:     ri.Name,
			Quantity: ri.Quantity,
			Unit:     ri.Unit,
			Notes:    ri.Notes,
			Category: ri.Category,
		}
	}
	return types.RecipeRecord{
		ID: recipe.ID,
		RecipeInput: types.RecipeInput{
			Name:         recipe.Name,
			Description:  recipe.Description,
			Instructions: recipe.Instructions,
			PrepTime:     recipe.PrepTime,
			CookTime:     recipe.CookTime,
			Servings:     recipe.Servings,
			Difficulty:   recipe.Difficulty,
			Source:       recipe.Source,
			Notes:        recipe.Notes,
			Favorite:     recipe.Favorite,
			Ingredients:  ingredients,
			Categories:   recipe.Categories,
			Tags:         recipe.Tags,
		},
	}
}

// recordToUpdate converts an import record into the update shape. A nil
// slice in the record means the field was absent from the JSON and the
// corresponding links are left untouched.
func recordToUpdate(rec types.RecipeRecord) types.RecipeUpdate {
	upd := types.RecipeUpdate{
		Name:         rec.Name,
		Description:  rec.Description,
		Instructions: rec.Instructions,
		PrepTime:     rec.PrepTime,
		CookTime:     rec.CookTime,
		Servings:     rec.Servings,
		Difficulty:   rec.Difficulty,
		Source:       rec.Source,
		Notes:        rec.Notes,
		Favorite:     rec.Favorite,
	}
	if rec.Ingredients != nil {
		ings := rec.Ingredients
		upd.Ingredients = &ings
	}
	if rec.Categories != nil {
		cats := rec.Categories
		upd.Categories = &cats
	}
	if rec.Tags != nil {
		tags := rec.Tags
		upd.Tags = &tags
	}
	return upd
}
