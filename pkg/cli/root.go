// Package cli implements the gdsctl administrative command-line interface
// for the sharing metastore.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	internaldb "sharegov/internal/db"
)

var version = "dev"

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:           "gdsctl",
		Short:         "Administrative CLI for the sharing metastore",
		Long:          "gdsctl manages the governed-data-sharing metastore: migrations, seeding, and dev tokens.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addDBFlag(rootCmd.PersistentFlags(), &dbPath)

	rootCmd.AddCommand(
		newAuthCmd(),
		newMigrateCmd(&dbPath),
		newSeedCmd(&dbPath),
		newVersionCmd(),
	)
	return rootCmd
}

func addDBFlag(fs *pflag.FlagSet, dbPath *string) {
	fs.StringVar(dbPath, "db", "sharegov_meta.sqlite", "path to the SQLite metastore file")
}

// openMetastore opens a single write pool and runs pending migrations so
// every subcommand operates on a current schema.
func openMetastore(path string) (*sql.DB, error) {
	db, err := internaldb.OpenSQLite(path, "write", 0)
	if err != nil {
		return nil, err
	}
	if err := internaldb.RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gdsctl version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gdsctl", version)
		},
	}
}
