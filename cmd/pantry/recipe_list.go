// Recipe list command prints all recipes alphabetically.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recipes",
	RunE:  runRecipeList,
}

func runRecipeList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	summaries, err := store.ListRecipes()
	if err != nil {
		return fmt.Errorf("list recipes: %w", err)
	}

	if flagJSON {
		return printJSON(summaries)
	}
	printRecipeTable(summaries)
	return nil
}

// printRecipeTable prints recipe summaries in a tab-aligned table.
func printRecipeTable(summaries []types.RecipeSummary) {
	if len(summaries) == 0 {
		fmt.Println("No recipes found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tDIFFICULTY\tPREP\tCOOK\tFAV")
	fmt.Fprintln(w, "--\t----\t----------\t----\t----\t---")
	for _, s := range summaries {
		fav := ""
		if s.Favorite {
			fav = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%dm\t%dm\t%s\n",
			shortID(s.ID),
			truncate(s.Name, 40),
			s.Difficulty,
			s.PrepTime,
			s.CookTime,
			fav,
		)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d recipe(s)\n", len(summaries))
}
