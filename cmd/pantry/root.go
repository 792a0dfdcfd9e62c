// Root command for the pantry CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/codyhinz/RecipeOrganizer/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var configDataDir string

// configDatabaseFile holds the database_file value from config.yaml.
var configDatabaseFile string

var rootCmd = &cobra.Command{
	Use:     "pantry",
	Short:   "Pantry organizes recipes and shopping lists",
	Long: `Pantry is a local recipe organizer. It stores recipes with their
ingredients, categories, and tags in an embedded SQLite database, builds
shopping lists from selected recipes, and imports/exports recipes as JSON.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configDatabaseFile = cfg.GetString(cfgKeyDatabaseFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(recipeCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(ingredientsCmd)
	rootCmd.AddCommand(shoppingCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > PANTRY_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > PANTRY_DATA_DIR env > platform
// default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
