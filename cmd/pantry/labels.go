// Label commands list the known categories, tags, and ingredients.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLabelList(func(s storeLabels) ([]string, error) { return s.Categories() })
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLabelList(func(s storeLabels) ([]string, error) { return s.Tags() })
	},
}

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "List all known ingredients",
	RunE:  runIngredientList,
}

// storeLabels is the slice of the store the label commands need.
type storeLabels interface {
	Categories() ([]string, error)
	Tags() ([]string, error)
}

func runLabelList(fetch func(storeLabels) ([]string, error)) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := fetch(store)
	if err != nil {
		return fmt.Errorf("list labels: %w", err)
	}

	if flagJSON {
		return printJSON(names)
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runIngredientList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ingredients, err := store.Ingredients()
	if err != nil {
		return fmt.Errorf("list ingredients: %w", err)
	}

	if flagJSON {
		return printJSON(ingredients)
	}
	for _, ing := range ingredients {
		line := ing.Name
		if ing.Category != "" {
			line += " (" + ing.Category + ")"
		}
		if ing.Unit != "" {
			line += " [" + ing.Unit + "]"
		}
		fmt.Println(line)
	}
	return nil
}
