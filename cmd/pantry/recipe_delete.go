// Recipe delete command removes a recipe and its links.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recipeDeleteCmd = &cobra.Command{
	Use:   "delete <recipe-id>",
	Short: "Delete a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipeDelete,
}

func runRecipeDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteRecipe(args[0]); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}

	fmt.Printf("Deleted recipe %s\n", shortID(args[0]))
	return nil
}
