// Recipe get command shows one recipe in full.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

var recipeGetCmd = &cobra.Command{
	Use:   "get <recipe-id>",
	Short: "Show a recipe with its ingredients, categories, and tags",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipeGet,
}

func runRecipeGet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	recipe, err := store.GetRecipe(args[0])
	if err != nil {
		return fmt.Errorf("get recipe: %w", err)
	}

	if flagJSON {
		return printJSON(recipe)
	}
	printRecipe(recipe)
	return nil
}

// printRecipe prints a full recipe in a human-readable layout.
func printRecipe(r *types.Recipe) {
	fmt.Printf("%s\n", r.Name)
	fmt.Printf("ID: %s\n", r.ID)
	if r.Description != "" {
		fmt.Printf("Description: %s\n", r.Description)
	}
	fmt.Printf("Difficulty: %s  Prep: %d min  Cook: %d min  Serves: %d\n",
		r.Difficulty, r.PrepTime, r.CookTime, r.Servings)
	if r.Favorite {
		fmt.Println("Favorite: yes")
	}
	if len(r.Categories) > 0 {
		fmt.Printf("Categories: %s\n", strings.Join(r.Categories, ", "))
	}
	if len(r.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	if len(r.Ingredients) > 0 {
		fmt.Println("Ingredients:")
		for _, ing := range r.Ingredients {
			line := fmt.Sprintf("  %g %s %s", ing.Quantity, ing.Unit, ing.Name)
			if ing.Notes != "" {
				line += " (" + ing.Notes + ")"
			}
			fmt.Println(line)
		}
	}
	if r.Instructions != "" {
		fmt.Printf("Instructions:\n%s\n", r.Instructions)
	}
	if r.Source != "" {
		fmt.Printf("Source: %s\n", r.Source)
	}
	if r.Notes != "" {
		fmt.Printf("Notes: %s\n", r.Notes)
	}
	fmt.Printf("Added: %s\n", r.DateAdded.Format("2006-01-02"))
}
