package cmd

import (
	"fmt"
	"os"

	"book-manager/core/config"
	"book-manager/core/database"
	"book-manager/core/logger"
	"book-manager/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "book-manager",
	Short: "Book Manager Service",
	Long: `Book Manager keeps a catalog of books, authors and publishers.
It serves HTML pages and a JSON API, and manages the many-to-many links
between books and authors.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps reads better in a terminal.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// openCatalog loads the configuration, builds the logger and connects the catalog store.
func openCatalog() (*config.Config, *zap.Logger, *catalog.Store, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return cfg, l, catalog.NewStore(db), nil
}
