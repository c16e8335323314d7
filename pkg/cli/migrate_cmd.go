package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations to the metastore",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openMetastore(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			fmt.Fprintln(cmd.OutOrStdout(), "migrations up to date:", *dbPath)
			return nil
		},
	}
}
