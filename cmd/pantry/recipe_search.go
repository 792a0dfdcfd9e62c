// Recipe search command filters recipes by text, labels, and favorite
// status.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

var (
	searchQuery      string
	searchCategories []string
	searchTags       []string
	searchFavorite   bool
)

var recipeSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search recipes",
	Long: `Search filters recipes. The text query matches name, description,
and instructions case-insensitively. Multiple --category values match any
of them; likewise --tag; combining the two requires a match in both.

Example:
  pantry recipe search --query pasta
  pantry recipe search --category Dinner --tag Vegetarian
  pantry recipe search --favorite`,
	RunE: runRecipeSearch,
}

func init() {
	recipeSearchCmd.Flags().StringVar(&searchQuery, "query", "", "substring to match in name, description, or instructions")
	recipeSearchCmd.Flags().StringArrayVar(&searchCategories, "category", nil, "category to match (repeatable, OR'd)")
	recipeSearchCmd.Flags().StringArrayVar(&searchTags, "tag", nil, "tag to match (repeatable, OR'd)")
	recipeSearchCmd.Flags().BoolVar(&searchFavorite, "favorite", false, "filter by favorite status")
}

func runRecipeSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	opts := types.SearchOptions{
		Query:      searchQuery,
		Categories: searchCategories,
		Tags:       searchTags,
	}
	// Only constrain on favorite when the flag was actually given, so
	// --favorite=false can select non-favorites.
	if cmd.Flags().Changed("favorite") {
		fav := searchFavorite
		opts.Favorite = &fav
	}

	summaries, err := store.SearchRecipes(opts)
	if err != nil {
		return fmt.Errorf("search recipes: %w", err)
	}

	if flagJSON {
		return printJSON(summaries)
	}
	printRecipeTable(summaries)
	return nil
}
