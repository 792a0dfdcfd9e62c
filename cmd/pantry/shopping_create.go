// Shopping create command makes a new, empty shopping list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createNotes string

var shoppingCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty shopping list",
	Args:  cobra.ExactArgs(1),
	RunE:  runShoppingCreate,
}

func init() {
	shoppingCreateCmd.Flags().StringVar(&createNotes, "notes", "", "free-form notes")
}

func runShoppingCreate(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.CreateShoppingList(args[0], createNotes)
	if err != nil {
		return fmt.Errorf("create shopping list: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"id": id})
	}
	fmt.Printf("Created shopping list %s (%s)\n", args[0], shortID(id))
	return nil
}
