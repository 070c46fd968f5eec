package cmd

import (
	"fmt"

	"book-manager/core/storage"
	"book-manager/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listExports bool

// exportCmd writes a catalog snapshot to object storage.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as a JSON snapshot",
	Long: `Writes every publisher, author, book and link to the export bucket as
exports/catalog-<timestamp>.json. Use --list to show earlier snapshots.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, l, store, err := openCatalog()
		if err != nil {
			return err
		}
		defer l.Sync()

		if !cfg.Storage.Enabled {
			return fmt.Errorf("object storage is disabled; set STORAGE_ENABLED=true")
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		svc := export.NewService(store, client, cfg.Storage.Bucket, l)

		if listExports {
			infos, err := svc.List(ctx)
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				l.Info("No snapshots found", zap.String("bucket", cfg.Storage.Bucket))
			}
			for _, info := range infos {
				l.Info("Snapshot",
					zap.String("name", info.Name),
					zap.Int64("size", info.Size),
					zap.Time("last_modified", info.LastModified),
				)
			}
			return nil
		}

		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return err
		}

		info, err := svc.Export(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Snapshot written: %s (%d bytes)\n", info.Name, info.Size)
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&listExports, "list", false, "List stored snapshots instead of exporting")
	RootCmd.AddCommand(exportCmd)
}
