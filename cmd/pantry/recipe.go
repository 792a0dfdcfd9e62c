// Recipe parent command grouping recipe operations.
package main

import "github.com/spf13/cobra"

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage recipes",
}

func init() {
	recipeCmd.AddCommand(recipeAddCmd)
	recipeCmd.AddCommand(recipeGetCmd)
	recipeCmd.AddCommand(recipeListCmd)
	recipeCmd.AddCommand(recipeSearchCmd)
	recipeCmd.AddCommand(recipeUpdateCmd)
	recipeCmd.AddCommand(recipeDeleteCmd)
}
