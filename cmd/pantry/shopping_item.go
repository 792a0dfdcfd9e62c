// Shopping item commands: add, check, uncheck, set, delete-item.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

var (
	itemIngredient string
	itemQuantity   float64
	itemUnit       string
	itemNotes      string
)

var shoppingAddItemCmd = &cobra.Command{
	Use:   "add-item <list-id>",
	Short: "Add an item to a shopping list",
	Long: `Add-item appends an ingredient line to a shopping list. The
ingredient is created if it is not known yet.

Example:
  pantry shopping add-item 0195c9e2 --ingredient "olive oil" --quantity 1 --unit bottle`,
	Args: cobra.ExactArgs(1),
	RunE: runShoppingAddItem,
}

func init() {
	shoppingAddItemCmd.Flags().StringVar(&itemIngredient, "ingredient", "", "ingredient name (required)")
	shoppingAddItemCmd.Flags().Float64Var(&itemQuantity, "quantity", 0, "quantity to buy")
	shoppingAddItemCmd.Flags().StringVar(&itemUnit, "unit", "", "unit of measure")
	shoppingAddItemCmd.Flags().StringVar(&itemNotes, "notes", "", "free-form notes")
	_ = shoppingAddItemCmd.MarkFlagRequired("ingredient")
}

func runShoppingAddItem(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.AddShoppingListItem(args[0], itemIngredient, itemQuantity, itemUnit, itemNotes)
	if err != nil {
		return fmt.Errorf("add shopping list item: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"id": id})
	}
	fmt.Printf("Added %s (%s)\n", itemIngredient, shortID(id))
	return nil
}

var shoppingCheckCmd = &cobra.Command{
	Use:   "check <item-id>",
	Short: "Check off a shopping list item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setItemChecked(args[0], true)
	},
}

var shoppingUncheckCmd = &cobra.Command{
	Use:   "uncheck <item-id>",
	Short: "Uncheck a shopping list item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setItemChecked(args[0], false)
	},
}

func setItemChecked(itemID string, checked bool) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	upd := types.ItemUpdate{Checked: &checked}
	if err := store.UpdateShoppingListItem(itemID, upd); err != nil {
		return fmt.Errorf("update shopping list item: %w", err)
	}
	fmt.Printf("Item %s %s\n", shortID(itemID), checkbox(checked))
	return nil
}

var (
	setQuantity float64
	setNotes    string
)

var shoppingSetItemCmd = &cobra.Command{
	Use:   "set-item <item-id>",
	Short: "Update quantity or notes of a shopping list item",
	Args:  cobra.ExactArgs(1),
	RunE:  runShoppingSetItem,
}

func init() {
	shoppingSetItemCmd.Flags().Float64Var(&setQuantity, "quantity", 0, "new quantity")
	shoppingSetItemCmd.Flags().StringVar(&setNotes, "notes", "", "new notes")
}

func runShoppingSetItem(cmd *cobra.Command, args []string) error {
	var upd types.ItemUpdate
	if cmd.Flags().Changed("quantity") {
		q := setQuantity
		upd.Quantity = &q
	}
	if cmd.Flags().Changed("notes") {
		n := setNotes
		upd.Notes = &n
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.UpdateShoppingListItem(args[0], upd); err != nil {
		return fmt.Errorf("update shopping list item: %w", err)
	}
	fmt.Printf("Updated item %s\n", shortID(args[0]))
	return nil
}

var shoppingDeleteItemCmd = &cobra.Command{
	Use:   "delete-item <item-id>",
	Short: "Remove an item from its shopping list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteShoppingListItem(args[0]); err != nil {
			return fmt.Errorf("delete shopping list item: %w", err)
		}
		fmt.Printf("Deleted item %s\n", shortID(args[0]))
		return nil
	},
}
