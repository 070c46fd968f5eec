package cmd

import (
	"book-manager/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCmd loads the demo catalog.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo books, authors and publishers",
	Long:  `Migrates the schema and inserts a small demo catalog. Rows that already exist are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, l, store, err := openCatalog()
		if err != nil {
			return err
		}
		defer l.Sync()

		ctx := cmd.Context()
		if err := store.Migrate(ctx); err != nil {
			return err
		}
		if err := catalog.Seed(ctx, store); err != nil {
			return err
		}

		l.Info("Demo catalog loaded",
			zap.Int("publishers", len(catalog.DemoPublishers)),
			zap.Int("authors", len(catalog.DemoAuthors)),
			zap.Int("books", len(catalog.DemoBooks)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}
