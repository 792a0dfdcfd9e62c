// Unit tests for recipe export and import, including the upsert-by-id and
// per-record failure semantics.
package sqlite

import (
	"encoding/json"
	"testing"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRecipeRoundtrip(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddRecipe(pancakeInput())
	require.NoError(t, err)

	rec, err := s.ExportRecipe(id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "Pancakes", rec.Name)
	assert.ElementsMatch(t, []string{"Quick", "Kid-Friendly"}, rec.Tags)
	require.Len(t, rec.Ingredients, 2)

	// Importing the exported record into a fresh store reproduces the
	// recipe under a new id.
	dst := setupStore(t)
	results := dst.ImportRecipes([]types.RecipeRecord{*rec})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.NotEqual(t, id, results[0].ID)

	got, err := dst.GetRecipe(results[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", got.Name)
	assert.Equal(t, []string{"Breakfast"}, got.Categories)
	assert.Len(t, got.Ingredients, 2)
}

func TestExportRecipeNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.ExportRecipe("no-such-id")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestExportRecipesFailsOnUnknownID(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddRecipe(types.RecipeInput{Name: "Toast"})
	require.NoError(t, err)

	_, err = s.ExportRecipes([]string{id, "no-such-id"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestExportAllRecipes(t *testing.T) {
	s := setupStore(t)

	for _, name := range []string{"Toast", "Soup", "Stew"} {
		_, err := s.AddRecipe(types.RecipeInput{Name: name})
		require.NoError(t, err)
	}

	records, err := s.ExportAllRecipes()
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestImportUpsertsByID(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddRecipe(types.RecipeInput{Name: "Toast", Servings: 2})
	require.NoError(t, err)

	rec, err := s.ExportRecipe(id)
	require.NoError(t, err)
	rec.Name = "French toast"

	results := s.ImportRecipes([]types.RecipeRecord{*rec})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, id, results[0].ID)

	got, err := s.GetRecipe(id)
	require.NoError(t, err)
	assert.Equal(t, "French toast", got.Name)

	all, err := s.ListRecipes()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestImportUnknownIDInsertsFresh(t *testing.T) {
	s := setupStore(t)

	results := s.ImportRecipes([]types.RecipeRecord{{
		ID:          "stale-id-from-another-database",
		RecipeInput: types.RecipeInput{Name: "Curry"},
	}})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.NotEqual(t, "stale-id-from-another-database", results[0].ID)

	_, err := s.GetRecipe(results[0].ID)
	assert.NoError(t, err)
}

func TestImportContinuesPastBadRecords(t *testing.T) {
	s := setupStore(t)

	results := s.ImportRecipes([]types.RecipeRecord{
		{RecipeInput: types.RecipeInput{Name: "Good"}},
		{RecipeInput: types.RecipeInput{Name: "   "}},
		{RecipeInput: types.RecipeInput{Name: "Also good"}},
	})
	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, types.ErrInvalidImport)
	assert.NoError(t, results[2].Err)

	all, err := s.ListRecipes()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImportRecipesJSON(t *testing.T) {
	s := setupStore(t)

	tests := []struct {
		name        string
		payload     string
		wantResults int
		wantErrs    int
		wantErr     bool
	}{
		{
			name:        "single object",
			payload:     `{"name": "Omelette", "servings": 2}`,
			wantResults: 1,
		},
		{
			name:        "array of objects",
			payload:     `[{"name": "A"}, {"name": "B"}]`,
			wantResults: 2,
		},
		{
			name:        "array with one malformed element",
			payload:     `[{"name": "OK"}, {"name": 42}]`,
			wantResults: 2,
			wantErrs:    1,
		},
		{
			name:    "empty payload",
			payload: "",
			wantErr: true,
		},
		{
			name:    "malformed array",
			payload: `[{"name": "A"`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := s.ImportRecipesJSON([]byte(tt.payload))
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrInvalidImport)
				return
			}
			require.NoError(t, err)
			require.Len(t, results, tt.wantResults)
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
			}
			assert.Equal(t, tt.wantErrs, failed)
		})
	}
}

func TestExportedJSONRoundtripsThroughImport(t *testing.T) {
	s := setupStore(t)

	_, err := s.AddRecipe(pancakeInput())
	require.NoError(t, err)

	records, err := s.ExportAllRecipes()
	require.NoError(t, err)
	payload, err := json.Marshal(records)
	require.NoError(t, err)

	dst := setupStore(t)
	results, err := dst.ImportRecipesJSON(payload)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	got, err := dst.GetRecipe(results[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", got.Name)
	assert.ElementsMatch(t, []string{"Quick", "Kid-Friendly"}, got.Tags)
}

func TestExportShoppingList(t *testing.T) {
	s := setupStore(t)

	listID, err := s.CreateShoppingList("Groceries", "")
	require.NoError(t, err)
	_, err = s.AddShoppingListItem(listID, "eggs", 12, "pcs", "")
	require.NoError(t, err)

	list, err := s.ExportShoppingList(listID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", list.Name)
	require.Len(t, list.Items, 1)

	_, err = s.ExportShoppingList("no-such-id")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
