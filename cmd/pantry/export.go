// Export command writes recipes or shopping lists as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recipes or shopping lists as JSON",
}

var exportRecipeCmd = &cobra.Command{
	Use:   "recipe <recipe-id>...",
	Short: "Export one or more recipes",
	Long: `Export recipe writes the given recipes as JSON: a single object
for one recipe, an array for several.

Example:
  pantry export recipe 0195c9e2 -o pancakes.json
  pantry export recipe 0195c9e2 0195c9e3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExportRecipe,
}

var exportAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Export every recipe as a JSON array",
	RunE:  runExportAll,
}

var exportListCmd = &cobra.Command{
	Use:   "list <list-id>",
	Short: "Export a shopping list",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportList,
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.AddCommand(exportRecipeCmd)
	exportCmd.AddCommand(exportAllCmd)
	exportCmd.AddCommand(exportListCmd)
}

func runExportRecipe(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 1 {
		rec, err := store.ExportRecipe(args[0])
		if err != nil {
			return fmt.Errorf("export recipe: %w", err)
		}
		return writeExport(rec)
	}

	records, err := store.ExportRecipes(args)
	if err != nil {
		return fmt.Errorf("export recipes: %w", err)
	}
	return writeExport(records)
}

func runExportAll(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.ExportAllRecipes()
	if err != nil {
		return fmt.Errorf("export recipes: %w", err)
	}
	return writeExport(records)
}

func runExportList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.ExportShoppingList(args[0])
	if err != nil {
		return fmt.Errorf("export shopping list: %w", err)
	}
	return writeExport(list)
}

// writeExport marshals v and writes it to the --output file, or stdout
// when no file was given.
func writeExport(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}

	if exportOutput == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(exportOutput, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	fmt.Printf("Exported to %s\n", exportOutput)
	return nil
}
