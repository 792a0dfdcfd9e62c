package types

import (
	"strings"
	"time"
)

// Recipe difficulty levels.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Recipe is a fully hydrated recipe, including its ingredient links and
// label associations. DateAdded is set by the store on creation and is
// immutable afterwards.
type Recipe struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Instructions string             `json:"instructions"`
	PrepTime     int                `json:"prep_time"`
	CookTime     int                `json:"cook_time"`
	Servings     int                `json:"servings"`
	Difficulty   string             `json:"difficulty"`
	Source       string             `json:"source"`
	Notes        string             `json:"notes"`
	Favorite     bool               `json:"favorite"`
	DateAdded    time.Time          `json:"date_added"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Categories   []string           `json:"categories"`
	Tags         []string           `json:"tags"`
}

// RecipeIngredient is one ingredient line of a recipe. Quantity, Unit, and
// Notes belong to the recipe-ingredient pairing and override the
// ingredient's default unit for this recipe.
type RecipeIngredient struct {
	IngredientID string  `json:"ingredient_id"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Notes        string  `json:"notes"`
	Category     string  `json:"category"`
}

// RecipeSummary holds the fields shown in list views. Associations are not
// loaded.
type RecipeSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PrepTime    int    `json:"prep_time"`
	CookTime    int    `json:"cook_time"`
	Difficulty  string `json:"difficulty"`
	Favorite    bool   `json:"favorite"`
}

// RecipeInput carries the caller-supplied fields for creating a recipe.
type RecipeInput struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Instructions string            `json:"instructions"`
	PrepTime     int               `json:"prep_time"`
	CookTime     int               `json:"cook_time"`
	Servings     int               `json:"servings"`
	Difficulty   string            `json:"difficulty"`
	Source       string            `json:"source"`
	Notes        string            `json:"notes"`
	Favorite     bool              `json:"favorite"`
	Ingredients  []IngredientInput `json:"ingredients"`
	Categories   []string          `json:"categories"`
	Tags         []string          `json:"tags"`
}

// IngredientInput names an ingredient line on a recipe. Category and
// DefaultUnit are only used when the ingredient does not exist yet and has
// to be created.
type IngredientInput struct {
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Notes       string  `json:"notes"`
	Category    string  `json:"category"`
	DefaultUnit string  `json:"default_unit"`
}

// Validate checks that the input is well-formed enough to store. Name and
// trimmed-name presence is the only validation performed; everything else
// is the caller's responsibility.
func (in RecipeInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidName
	}
	return nil
}

// Normalize fills in the defaults applied on creation.
func (in *RecipeInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	if in.Difficulty == "" {
		in.Difficulty = DifficultyMedium
	}
	if in.Servings <= 0 {
		in.Servings = 1
	}
}

// RecipeUpdate carries a full-replace update of the scalar fields plus
// optional association replacements. A nil slice pointer means the field
// group was absent from the input and existing links are left untouched; a
// pointer to an empty slice clears the group. The distinction between
// absent and present-but-empty is load-bearing.
type RecipeUpdate struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Instructions string             `json:"instructions"`
	PrepTime     int                `json:"prep_time"`
	CookTime     int                `json:"cook_time"`
	Servings     int                `json:"servings"`
	Difficulty   string             `json:"difficulty"`
	Source       string             `json:"source"`
	Notes        string             `json:"notes"`
	Favorite     bool               `json:"favorite"`
	Ingredients  *[]IngredientInput `json:"ingredients"`
	Categories   *[]string          `json:"categories"`
	Tags         *[]string          `json:"tags"`
}

// Validate checks the update the same way RecipeInput is checked.
func (u RecipeUpdate) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrInvalidName
	}
	return nil
}

// Normalize applies the same creation defaults to an update.
func (u *RecipeUpdate) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	if u.Difficulty == "" {
		u.Difficulty = DifficultyMedium
	}
	if u.Servings <= 0 {
		u.Servings = 1
	}
}

// SearchOptions selects recipes in Store.SearchRecipes. Zero-valued fields
// do not constrain the search. Categories and tags are OR'd within each
// list and AND'd across dimensions.
type SearchOptions struct {
	Query      string
	Categories []string
	Tags       []string
	Favorite   *bool
}
