// Shopping parent command grouping shopping list operations.
package main

import "github.com/spf13/cobra"

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Manage shopping lists",
}

func init() {
	shoppingCmd.AddCommand(shoppingCreateCmd)
	shoppingCmd.AddCommand(shoppingListCmd)
	shoppingCmd.AddCommand(shoppingShowCmd)
	shoppingCmd.AddCommand(shoppingGenerateCmd)
	shoppingCmd.AddCommand(shoppingAddItemCmd)
	shoppingCmd.AddCommand(shoppingCheckCmd)
	shoppingCmd.AddCommand(shoppingUncheckCmd)
	shoppingCmd.AddCommand(shoppingSetItemCmd)
	shoppingCmd.AddCommand(shoppingDeleteItemCmd)
	shoppingCmd.AddCommand(shoppingDeleteCmd)
}
