// Package sqlite implements the SQLite storage layer for the recipe
// organizer.
package sqlite

// Schema DDL. Every statement is conditional so that opening an existing
// database is a no-op; there is no migration versioning.
const (
	createRecipes = `CREATE TABLE IF NOT EXISTS recipes (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    instructions TEXT,
    prep_time INTEGER,
    cook_time INTEGER,
    servings INTEGER,
    difficulty TEXT,
    source TEXT,
    notes TEXT,
    favorite INTEGER NOT NULL DEFAULT 0,
    date_added TEXT NOT NULL
);`

	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);`

	createRecipeCategories = `CREATE TABLE IF NOT EXISTS recipe_categories (
    recipe_id TEXT NOT NULL,
    category_id TEXT NOT NULL,
    PRIMARY KEY (recipe_id, category_id),
    FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE,
    FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
);`

	createTags = `CREATE TABLE IF NOT EXISTS tags (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);`

	createRecipeTags = `CREATE TABLE IF NOT EXISTS recipe_tags (
    recipe_id TEXT NOT NULL,
    tag_id TEXT NOT NULL,
    PRIMARY KEY (recipe_id, tag_id),
    FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE,
    FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
);`

	createIngredients = `CREATE TABLE IF NOT EXISTS ingredients (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    category TEXT,
    unit TEXT
);`

	createRecipeIngredients = `CREATE TABLE IF NOT EXISTS recipe_ingredients (
    recipe_id TEXT NOT NULL,
    ingredient_id TEXT NOT NULL,
    quantity REAL,
    unit TEXT,
    notes TEXT,
    PRIMARY KEY (recipe_id, ingredient_id),
    FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE,
    FOREIGN KEY (ingredient_id) REFERENCES ingredients(id) ON DELETE CASCADE
);`

	createShoppingLists = `CREATE TABLE IF NOT EXISTS shopping_lists (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    date_created TEXT NOT NULL,
    notes TEXT
);`

	createShoppingListItems = `CREATE TABLE IF NOT EXISTS shopping_list_items (
    id TEXT PRIMARY KEY,
    shopping_list_id TEXT NOT NULL,
    ingredient_id TEXT,
    quantity REAL,
    unit TEXT,
    checked INTEGER NOT NULL DEFAULT 0,
    notes TEXT,
    FOREIGN KEY (shopping_list_id) REFERENCES shopping_lists(id) ON DELETE CASCADE,
    FOREIGN KEY (ingredient_id) REFERENCES ingredients(id) ON DELETE SET NULL
);`
)

// Index DDL for the join-table lookups the list views depend on.
const (
	idxRecipeCategoriesRecipe  = `CREATE INDEX IF NOT EXISTS idx_recipe_categories_recipe ON recipe_categories(recipe_id);`
	idxRecipeTagsRecipe        = `CREATE INDEX IF NOT EXISTS idx_recipe_tags_recipe ON recipe_tags(recipe_id);`
	idxRecipeIngredientsRecipe = `CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_recipe ON recipe_ingredients(recipe_id);`
	idxShoppingItemsList       = `CREATE INDEX IF NOT EXISTS idx_shopping_list_items_list ON shopping_list_items(shopping_list_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createRecipes,
	createCategories,
	createRecipeCategories,
	createTags,
	createRecipeTags,
	createIngredients,
	createRecipeIngredients,
	createShoppingLists,
	createShoppingListItems,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxRecipeCategoriesRecipe,
	idxRecipeTagsRecipe,
	idxRecipeIngredientsRecipe,
	idxShoppingItemsList,
}
