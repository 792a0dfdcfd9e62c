// Shopping delete command removes a shopping list and its items.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var shoppingDeleteCmd = &cobra.Command{
	Use:   "delete <list-id>",
	Short: "Delete a shopping list",
	Args:  cobra.ExactArgs(1),
	RunE:  runShoppingDelete,
}

func runShoppingDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteShoppingList(args[0]); err != nil {
		return fmt.Errorf("delete shopping list: %w", err)
	}
	fmt.Printf("Deleted shopping list %s\n", shortID(args[0]))
	return nil
}
