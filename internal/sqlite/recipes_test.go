// Unit tests for recipe CRUD, association handling, and search.
package sqlite

import (
	"testing"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pancakeInput returns a fully populated recipe input for roundtrip tests.
func pancakeInput() types.RecipeInput {
	return types.RecipeInput{
		Name:         "Pancakes",
		Description:  "Fluffy breakfast pancakes",
		Instructions: "Mix and fry.",
		PrepTime:     10,
		CookTime:     15,
		Servings:     4,
		Difficulty:   types.DifficultyEasy,
		Source:       "Grandma",
		Notes:        "Double the batch",
		Favorite:     true,
		Categories:   []string{"Breakfast"},
		Tags:         []string{"Quick", "Kid-Friendly"},
		Ingredients: []types.IngredientInput{
			{Name: "flour", Quantity: 200, Unit: "g", Category: "Baking"},
			{Name: "milk", Quantity: 300, Unit: "ml", Category: "Dairy"},
		},
	}
}

func TestAddAndGetRecipe(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddRecipe(pancakeInput())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.GetRecipe(id)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Pancakes", got.Name)
	assert.Equal(t, "Fluffy breakfast pancakes", got.Description)
	assert.Equal(t, "Mix and fry.", got.Instructions)
	assert.Equal(t, 10, got.PrepTime)
	assert.Equal(t, 15, got.CookTime)
	assert.Equal(t, 4, got.Servings)
	assert.Equal(t, types.DifficultyEasy, got.Difficulty)
	assert.Equal(t, "Grandma", got.Source)
	assert.Equal(t, "Double the batch", got.Notes)
	assert.True(t, got.Favorite)
	assert.False(t, got.DateAdded.IsZero())

	assert.Equal(t, []string{"Breakfast"}, got.Categories)
	assert.ElementsMatch(t, []string{"Quick", "Kid-Friendly"}, got.Tags)

	require.Len(t, got.Ingredients, 2)
	names := []string{got.Ingredients[0].Name, got.Ingredients[1].Name}
	assert.ElementsMatch(t, []string{"flour", "milk"}, names)
	for _, ing := range got.Ingredients {
		if ing.Name == "flour" {
			assert.Equal(t, 200.0, ing.Quantity)
			assert.Equal(t, "g", ing.Unit)
			assert.Equal(t, "Baking", ing.Category)
		}
	}
}

func TestAddRecipeDefaults(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddRecipe(types.RecipeInput{Name: "  Toast  "})
	require.NoError(t, err)

	got, err := s.GetRecipe(id)
	require.NoError(t, err)
	assert.Equal(t, "Toast", got.Name)
	assert.Equal(t, types.DifficultyMedium, got.Difficulty)
	assert.Equal(t, 1, got.Servings)
	assert.Empty(t, got.Categories)
	assert.Empty(t, got.Tags)
	assert.Empty(t, got.Ingredients)
}

func TestAddRecipeRejectsBlankName(t *testing.T) {
	s := setupStore(t)

	_, err := s.AddRecipe(types.RecipeInput{Name: "   "})
	assert.ErrorIs(t, err, types.ErrInvalidName)
}

func TestGetRecipeNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.GetRecipe("no-such-id")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = s.GetRecipe("")
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestLabelsAndIngredientsAreSharedByName(t *testing.T) {
	s := setupStore(t)

	baseline, err := s.Categories()
	require.NoError(t, err)

	_, err = s.AddRecipe(types.RecipeInput{
		Name:        "Bread",
		Categories:  []string{"Baked Goods", "Fermentation"},
		Ingredients: []types.IngredientInput{{Name: "flour", Quantity: 500, Unit: "g"}},
	})
	require.NoError(t, err)
	_, err = s.AddRecipe(types.RecipeInput{
		Name:        "Pizza",
		Categories:  []string{"Baked Goods", "Fermentation"},
		Ingredients: []types.IngredientInput{{Name: "flour", Quantity: 300, Unit: "g"}},
	})
	require.NoError(t, err)

	// "Baked Goods" is seeded, "Fermentation" is new; both recipes share
	// the same rows.
	categories, err := s.Categories()
	require.NoError(t, err)
	assert.Len(t, categories, len(baseline)+1)
	assert.Contains(t, categories, "Fermentation")

	ingredients, err := s.Ingredients()
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "flour", ingredients[0].Name)
}

func TestUpdateRecipeScalars(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddRecipe(pancakeInput())
	require.NoError(t, err)
	before, err := s.GetRecipe(id)
	require.NoError(t, err)

	err = s.UpdateRecipe(id, types.RecipeUpdate{
		Name:       "Blueberry pancakes",
		Servings:   6,
		Difficulty: types.DifficultyHard,
	})
	require.NoError(t, err)

	got, err := s.GetRecipe(id)
	require.NoError(t, err)
	assert.Equal(t, "Blueberry pancakes", got.Name)
	assert.Equal(t, 6, got.Servings)
	assert.Equal(t, types.DifficultyHard, got.Difficulty)
	assert.Equal(t, before.DateAdded, got.DateAdded)

	// Absent association groups stay as they were.
	assert.Equal(t, before.Categories, got.Categories)
	assert.ElementsMatch(t, before.Tags, got.Tags)
	assert.Len(t, got.Ingredients, len(before.Ingredients))
}

func TestUpdateRecipeReplacesAssociations(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddRecipe(pancakeInput())
	require.NoError(t, err)

	newIngredients := []types.IngredientInput{
		{Name: "oats", Quantity: 150, Unit: "g"},
	}
	err = s.UpdateRecipe(id, types.RecipeUpdate{
		Name:        "Pancakes",
		Categories:  &[]string{"Dessert"},
		Ingredients: &newIngredients,
	})
	require.NoError(t, err)

	got, err := s.GetRecipe(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dessert"}, got.Categories)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, "oats", got.Ingredients[0].Name)
	// Tags were absent from the update and survive.
	assert.ElementsMatch(t, []string{"Quick", "Kid-Friendly"}, got.Tags)
}

func TestUpdateRecipeClearsAssociationsWithEmptyGroup(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddRecipe(pancakeInput())
	require.NoError(t, err)

	err = s.UpdateRecipe(id, types.RecipeUpdate{
		Name: "Pancakes",
		Tags: &[]string{},
	})
	require.NoError(t, err)

	got, err := s.GetRecipe(id)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
	assert.Equal(t, []string{"Breakfast"}, got.Categories)
}

func TestUpdateRecipeNotFound(t *testing.T) {
	s := setupStore(t)

	err := s.UpdateRecipe("no-such-id", types.RecipeUpdate{Name: "X"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteRecipe(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddRecipe(pancakeInput())
	require.NoError(t, err)

	require.NoError(t, s.DeleteRecipe(id))

	_, err = s.GetRecipe(id)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Ingredients outlive the recipes referencing them.
	ingredients, err := s.Ingredients()
	require.NoError(t, err)
	assert.Len(t, ingredients, 2)

	assert.ErrorIs(t, s.DeleteRecipe(id), types.ErrNotFound)
}

func TestSearchRecipes(t *testing.T) {
	s := setupStore(t)

	_, err := s.AddRecipe(types.RecipeInput{
		Name:       "Chicken soup",
		Categories: []string{"Soup", "Dinner"},
		Tags:       []string{"Quick"},
		Favorite:   true,
	})
	require.NoError(t, err)
	_, err = s.AddRecipe(types.RecipeInput{
		Name:        "Lentil soup",
		Description: "Hearty vegetarian soup",
		Categories:  []string{"Soup"},
		Tags:        []string{"Vegetarian"},
	})
	require.NoError(t, err)
	_, err = s.AddRecipe(types.RecipeInput{
		Name:       "Brownies",
		Categories: []string{"Dessert"},
		Tags:       []string{"Kid-Friendly"},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		opts types.SearchOptions
		want []string
	}{
		{
			name: "no filters returns everything",
			opts: types.SearchOptions{},
			want: []string{"Brownies", "Chicken soup", "Lentil soup"},
		},
		{
			name: "text query is case-insensitive",
			opts: types.SearchOptions{Query: "SOUP"},
			want: []string{"Chicken soup", "Lentil soup"},
		},
		{
			name: "text query matches description",
			opts: types.SearchOptions{Query: "hearty"},
			want: []string{"Lentil soup"},
		},
		{
			name: "category filter",
			opts: types.SearchOptions{Categories: []string{"Dessert"}},
			want: []string{"Brownies"},
		},
		{
			name: "categories OR within the list",
			opts: types.SearchOptions{Categories: []string{"Dessert", "Soup"}},
			want: []string{"Brownies", "Chicken soup", "Lentil soup"},
		},
		{
			name: "category and tag AND across dimensions",
			opts: types.SearchOptions{Categories: []string{"Soup"}, Tags: []string{"Quick"}},
			want: []string{"Chicken soup"},
		},
		{
			name: "favorite filter",
			opts: types.SearchOptions{Favorite: boolPtr(true)},
			want: []string{"Chicken soup"},
		},
		{
			name: "non-favorite filter",
			opts: types.SearchOptions{Favorite: boolPtr(false)},
			want: []string{"Brownies", "Lentil soup"},
		},
		{
			name: "no matches yields empty result",
			opts: types.SearchOptions{Query: "sushi"},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.SearchRecipes(tt.opts)
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, summary := range got {
				names = append(names, summary.Name)
			}
			if tt.want == nil {
				assert.Empty(t, names)
				return
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestSearchDeduplicatesAcrossMultipleMatchingLabels(t *testing.T) {
	s := setupStore(t)

	_, err := s.AddRecipe(types.RecipeInput{
		Name:       "Stew",
		Categories: []string{"Soup", "Dinner"},
	})
	require.NoError(t, err)

	got, err := s.SearchRecipes(types.SearchOptions{Categories: []string{"Soup", "Dinner"}})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestListRecipesIsAlphabetical(t *testing.T) {
	s := setupStore(t)

	for _, name := range []string{"Zucchini bake", "Apple pie", "Miso soup"} {
		_, err := s.AddRecipe(types.RecipeInput{Name: name})
		require.NoError(t, err)
	}

	got, err := s.ListRecipes()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Apple pie", got[0].Name)
	assert.Equal(t, "Miso soup", got[1].Name)
	assert.Equal(t, "Zucchini bake", got[2].Name)
}

func boolPtr(b bool) *bool { return &b }
