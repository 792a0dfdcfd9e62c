// Shopping list command prints all shopping lists, newest first.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var shoppingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all shopping lists",
	RunE:  runShoppingList,
}

func runShoppingList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	lists, err := store.ShoppingLists()
	if err != nil {
		return fmt.Errorf("list shopping lists: %w", err)
	}

	if flagJSON {
		return printJSON(lists)
	}

	if len(lists) == 0 {
		fmt.Println("No shopping lists found.")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCREATED")
	fmt.Fprintln(w, "--\t----\t-------")
	for _, list := range lists {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			shortID(list.ID),
			truncate(list.Name, 40),
			list.DateCreated.Format("2006-01-02"),
		)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d list(s)\n", len(lists))
	return nil
}
