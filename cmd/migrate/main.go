package main

import (
	"fmt"
	"os"

	"github.com/graeme-hill/shunt-go/lib"
	"github.com/spf13/cobra"
)

var dsn string

var rootCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or revert the evaluation history schema",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := "up"
		if len(args) == 1 {
			direction = args[0]
		}

		ctx := cmd.Context()
		db, err := lib.OpenDB(ctx, dsn)
		if err != nil {
			return err
		}
		defer db.Close()

		migrations, err := lib.HistoryMigrations()
		if err != nil {
			return err
		}
		if direction == "down" {
			return lib.RevertMigrations(ctx, db, migrations)
		}
		return lib.RunMigrations(ctx, db, migrations)
	},
}

func init() {
	rootCmd.Flags().StringVar(&dsn, "dsn", "dbname=shunt sslmode=disable", "Postgres connection string")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
