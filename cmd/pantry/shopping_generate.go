// Shopping generate command builds a shopping list from recipes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	generateRecipes []string
	generateName    string
)

var shoppingGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a shopping list from recipes",
	Long: `Generate creates a shopping list holding every ingredient of the
given recipes. Quantities of the same ingredient in the same unit are
summed; the same ingredient in different units stays as separate items.

Example:
  pantry shopping generate --recipe 0195c9e2 --recipe 0195c9e3
  pantry shopping generate --recipe 0195c9e2 --name "Weekend baking"`,
	RunE: runShoppingGenerate,
}

func init() {
	shoppingGenerateCmd.Flags().StringArrayVar(&generateRecipes, "recipe", nil, "recipe id to include (repeatable)")
	shoppingGenerateCmd.Flags().StringVar(&generateName, "name", "", "list name (default embeds today's date)")
}

func runShoppingGenerate(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.GenerateShoppingList(generateRecipes, generateName)
	if err != nil {
		return fmt.Errorf("generate shopping list: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"id": id})
	}
	fmt.Printf("Generated shopping list %s from %d recipe(s)\n", shortID(id), len(generateRecipes))
	return nil
}
