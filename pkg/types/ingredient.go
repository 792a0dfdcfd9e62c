package types

// Ingredient is a reusable named item. Its lifetime is independent of the
// recipes and shopping lists that reference it; deleting a recipe never
// deletes an ingredient.
type Ingredient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
}
