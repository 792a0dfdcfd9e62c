// Import command reads recipes from a JSON file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import recipes from a JSON file",
	Long: `Import reads a JSON file holding one recipe object or an array of
them. A record whose "id" matches an existing recipe updates it; other
records are inserted with fresh ids. Bad records are reported and the
rest of the batch continues.

Example:
  pantry import pancakes.json
  pantry import all-recipes.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.ImportRecipesJSON(data)
	if err != nil {
		return fmt.Errorf("import recipes: %w", err)
	}

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			name := res.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Fprintf(os.Stderr, "Failed: %s: %v\n", name, res.Err)
			continue
		}
		fmt.Printf("Imported %s (%s)\n", res.Name, shortID(res.ID))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d record(s) failed", failed, len(results))
	}
	return nil
}
