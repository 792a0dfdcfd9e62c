package types

import "time"

// ShoppingList is an ordered collection of purchasable items. Items is only
// populated by Store.GetShoppingList; list-view queries leave it nil.
type ShoppingList struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	DateCreated time.Time          `json:"date_created"`
	Notes       string             `json:"notes"`
	Items       []ShoppingListItem `json:"items,omitempty"`
}

// ShoppingListItem is one line of a shopping list. IngredientID is empty
// when the referenced ingredient has been deleted; the line survives with
// its last known name blanked.
type ShoppingListItem struct {
	ID           string  `json:"id"`
	IngredientID string  `json:"ingredient_id"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Checked      bool    `json:"checked"`
	Notes        string  `json:"notes"`
	Category     string  `json:"category"`
}

// ItemUpdate is a partial update of a shopping list item. Only non-nil
// fields are written. An ItemUpdate with every field nil is rejected with
// ErrEmptyUpdate.
type ItemUpdate struct {
	Checked  *bool
	Quantity *float64
	Notes    *string
}

// Empty reports whether no field is supplied.
func (u ItemUpdate) Empty() bool {
	return u.Checked == nil && u.Quantity == nil && u.Notes == nil
}
