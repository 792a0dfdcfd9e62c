// Backup and restore commands copy the database file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup <destination>",
	Short: "Copy the database file to a backup location",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackup,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "Replace the database with a backup copy",
	Long: `Restore overwrites the current database file with the given
backup. Everything added since the backup was taken is lost.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func runBackup(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Backup(args[0]); err != nil {
		return fmt.Errorf("backup database: %w", err)
	}
	fmt.Printf("Backed up database to %s\n", args[0])
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Restore(args[0]); err != nil {
		return fmt.Errorf("restore database: %w", err)
	}
	fmt.Printf("Restored database from %s\n", args[0])
	return nil
}
