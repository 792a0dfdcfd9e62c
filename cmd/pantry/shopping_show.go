// Shopping show command prints a shopping list with its items.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/codyhinz/RecipeOrganizer/pkg/types"
)

var shoppingShowCmd = &cobra.Command{
	Use:   "show <list-id>",
	Short: "Show a shopping list with its items",
	Args:  cobra.ExactArgs(1),
	RunE:  runShoppingShow,
}

func runShoppingShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.GetShoppingList(args[0])
	if err != nil {
		return fmt.Errorf("get shopping list: %w", err)
	}

	if flagJSON {
		return printJSON(list)
	}
	printShoppingList(list)
	return nil
}

// printShoppingList prints a list header and its items grouped the way
// they come back from the store: by ingredient category, then name.
func printShoppingList(list *types.ShoppingList) {
	fmt.Printf("%s (created %s)\n", list.Name, list.DateCreated.Format("2006-01-02"))
	if list.Notes != "" {
		fmt.Printf("Notes: %s\n", list.Notes)
	}
	if len(list.Items) == 0 {
		fmt.Println("No items.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, " \tID\tITEM\tQTY\tUNIT\tNOTES")
	for _, item := range list.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%s\t%s\n",
			checkbox(item.Checked),
			shortID(item.ID),
			item.Name,
			item.Quantity,
			item.Unit,
			truncate(item.Notes, 30),
		)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d item(s)\n", len(list.Items))
}
