// Unit tests for recipe input validation, normalization, and the
// absent-vs-empty decoding of update field groups.
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   RecipeInput
		wantErr error
	}{
		{name: "valid", input: RecipeInput{Name: "Pancakes"}},
		{name: "empty name", input: RecipeInput{}, wantErr: ErrInvalidName},
		{name: "whitespace name", input: RecipeInput{Name: "   "}, wantErr: ErrInvalidName},
		{name: "name with surrounding spaces", input: RecipeInput{Name: "  Toast  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRecipeInputNormalize(t *testing.T) {
	in := RecipeInput{Name: "  Toast  "}
	in.Normalize()
	assert.Equal(t, "Toast", in.Name)
	assert.Equal(t, DifficultyMedium, in.Difficulty)
	assert.Equal(t, 1, in.Servings)

	// Explicit values survive.
	in = RecipeInput{Name: "Stew", Difficulty: DifficultyHard, Servings: 8}
	in.Normalize()
	assert.Equal(t, DifficultyHard, in.Difficulty)
	assert.Equal(t, 8, in.Servings)
}

func TestRecipeUpdateNormalize(t *testing.T) {
	u := RecipeUpdate{Name: " Soup ", Servings: -1}
	u.Normalize()
	assert.Equal(t, "Soup", u.Name)
	assert.Equal(t, DifficultyMedium, u.Difficulty)
	assert.Equal(t, 1, u.Servings)
}

func TestRecipeUpdateJSONDistinguishesAbsentFromEmpty(t *testing.T) {
	var u RecipeUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Soup", "tags": []}`), &u))

	// An omitted key leaves its pointer nil; a present empty array does not.
	assert.Nil(t, u.Categories)
	assert.Nil(t, u.Ingredients)
	require.NotNil(t, u.Tags)
	assert.Empty(t, *u.Tags)
}
