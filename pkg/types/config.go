package types

// Config holds the parameters for opening a Store.
type Config struct {
	// DataDir is the directory holding the SQLite database file.
	// Created on open if it does not exist. Empty means the current
	// working directory.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// DatabaseFile is the name of the SQLite file inside DataDir.
	// Empty means DefaultDatabaseFile.
	DatabaseFile string `json:"database_file" yaml:"database_file"`
}

// DefaultDatabaseFile is the database file name used when Config.DatabaseFile
// is empty.
const DefaultDatabaseFile = "recipes.db"

// File returns the configured database file name, falling back to
// DefaultDatabaseFile.
func (c Config) File() string {
	if c.DatabaseFile == "" {
		return DefaultDatabaseFile
	}
	return c.DatabaseFile
}
