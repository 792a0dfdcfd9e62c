package types

// RecipeRecord is the JSON shape written by recipe export and accepted by
// recipe import. The field names match the data-model attribute names so
// exported files are human-editable. On import a non-empty ID that matches
// an existing recipe triggers an update; any other ID is ignored and the
// store assigns a fresh one.
type RecipeRecord struct {
	ID string `json:"id,omitempty"`
	RecipeInput
}

// ImportResult reports the outcome of importing a single record. A batch
// import produces one result per record and never aborts on a bad record.
type ImportResult struct {
	Name string
	ID   string
	Err  error
}
