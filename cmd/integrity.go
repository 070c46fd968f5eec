package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"book-manager/core/config"
	"book-manager/core/database"
	"book-manager/core/logger"
	"book-manager/core/storage"
	"book-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the catalog",
	Long:  `Checks the catalog schema, the book_authors links and the export bucket.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Compare the catalog tables with the models",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// linksCmd represents the integrity links command
var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Check and fix orphaned book_authors rows",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the export bucket",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, linksCmd, storageCmd)

	linksCmd.Flags().BoolVar(&fixFlag, "fix", false, "Delete orphaned links")
	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bucket and folders")
}

func runIntegrityChecks(ctx context.Context, runSchema, runLinks, runStorage bool) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logg.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Fatal("Database connection failed", zap.Error(err))
	}

	// Storage is optional; the storage check reports it as disabled.
	var client storage.Client
	if cfg.Storage.Enabled {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
	}

	svc := integrity.NewService(db, client, cfg.Storage, logg)
	only := !(runSchema && runLinks && runStorage)

	if runSchema {
		logg.Info("Checking catalog schema...", zap.String("driver", cfg.Database.Driver))
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Schema matches the catalog models.")
		} else {
			logg.Warn("Schema mismatches found", zap.String("driver", report.Driver))
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if tblReport.Status == "missing" {
					logg.Warn("Missing Table", zap.String("table", table))
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runLinks {
		logg.Info("Checking book_authors links...")
		report, err := svc.CheckLinks(ctx)
		if err != nil {
			logg.Fatal("Link check failed", zap.Error(err))
		}

		if len(report.BooksWithoutPublisher) > 0 {
			logg.Warn("Books without publisher", zap.Uints("books", report.BooksWithoutPublisher))
		}

		if len(report.OrphanedLinks) == 0 {
			logg.Info("Links are intact.")
		} else {
			logg.Warn("Orphaned links detected", zap.Int("count", len(report.OrphanedLinks)))
			for _, o := range report.OrphanedLinks {
				logg.Warn("Orphaned link",
					zap.Uint("book_id", o.BookID),
					zap.Uint("author_id", o.AuthorID),
					zap.String("missing", o.Missing),
				)
			}

			if only && fixFlag {
				logg.Info("Removing orphaned links...")
				removed, err := svc.FixLinks(ctx, report)
				if err != nil {
					logg.Fatal("Failed to remove orphaned links", zap.Error(err))
				}
				logg.Info("Orphaned links removed.", zap.Int64("removed", removed))
			} else if only {
				logg.Info("Run with --fix to delete orphaned links.")
			}
		}
	}

	if runStorage {
		logg.Info("Checking export bucket...", zap.String("bucket", cfg.Storage.Bucket))
		report, err := svc.CheckStorage(ctx)
		switch {
		case errors.Is(err, integrity.ErrStorageDisabled):
			logg.Info("Object storage is disabled; set STORAGE_ENABLED=true to check it.")
		case err != nil:
			logg.Fatal("Storage check failed", zap.Error(err))
		case report.OK():
			logg.Info("Storage layout is intact.")
		default:
			logg.Warn("Storage layout incomplete",
				zap.Bool("bucket_exists", report.BucketExists),
				zap.Strings("missing", report.Missing),
			)
			if only && fixFlag {
				logg.Info("Fixing storage layout...")
				if err := svc.FixStorage(ctx, report); err != nil {
					logg.Fatal("Failed to fix storage", zap.Error(err))
				}
				logg.Info("Storage fixed successfully.")
			} else if only {
				logg.Info("Run with --fix to create the bucket and missing folders.")
			}
		}
	}
}
