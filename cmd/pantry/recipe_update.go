// Recipe update command replaces a recipe from a JSON file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

var updateFile string

var recipeUpdateCmd = &cobra.Command{
	Use:   "update <recipe-id>",
	Short: "Update a recipe from a JSON file",
	Long: `Update overwrites a recipe's fields from a JSON document.

Scalar fields are replaced outright. For each of "categories", "tags",
and "ingredients": a key present in the JSON replaces all existing links
(an empty list clears them); a key omitted from the JSON leaves the
existing links untouched.

Example:
  pantry recipe update 0195c9e2 --file pancakes.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRecipeUpdate,
}

func init() {
	recipeUpdateCmd.Flags().StringVar(&updateFile, "file", "", "JSON file holding the updated recipe (required)")
	_ = recipeUpdateCmd.MarkFlagRequired("file")
}

func runRecipeUpdate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(updateFile)
	if err != nil {
		return fmt.Errorf("read update file: %w", err)
	}

	var upd types.RecipeUpdate
	if err := json.Unmarshal(data, &upd); err != nil {
		return fmt.Errorf("parse update file: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.UpdateRecipe(args[0], upd); err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"id": args[0]})
	}
	fmt.Printf("Updated recipe %s\n", shortID(args[0]))
	return nil
}
