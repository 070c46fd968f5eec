package cmd

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"book-manager/core/config"
	"book-manager/core/database"
	"book-manager/core/loader"
	"book-manager/core/logger"
	"book-manager/core/middleware/rayid"
	"book-manager/core/storage"
	"book-manager/core/views"

	"book-manager/feature/authors"
	"book-manager/feature/books"
	"book-manager/feature/catalog"
	"book-manager/feature/export"
	"book-manager/feature/health"
	"book-manager/feature/integrity"
	"book-manager/feature/publishers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "book-manager/docs/swagger"
)

// @title Book Manager API
// @version 1.0
// @description Books, authors and publishers with many-to-many author links. Send Accept: application/json for JSON responses.
// @host localhost:8080
// @BasePath /

// viewsDir holds the templates on disk for reload mode.
const viewsDir = "core/views/templates"

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the book manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Required)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to catalog database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("database", cfg.Database.Name),
		)

		store := catalog.NewStore(db)
		if cfg.Database.AutoMigrate {
			if err := store.Migrate(cmd.Context()); err != nil {
				logg.Fatal("Schema migration failed", zap.Error(err))
			}
		}

		// 4. Views
		engine := views.New(views.FS, false)
		if cfg.Server.ReloadViews {
			engine = views.New(os.DirFS(viewsDir), true)
			logg.Info("Reloading views from disk", zap.String("dir", viewsDir))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			Views:                 engine,
			ReadTimeout:           time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				code := fiber.StatusInternalServerError
				message := views.InternalErrorMessage
				var fe *fiber.Error
				if errors.As(err, &fe) {
					code = fe.Code
					message = fe.Message
				}
				return views.Error(c, code, message)
			},
		})

		// 5. Initialize Storage (Optional)
		var client storage.Client
		if cfg.Storage.Enabled {
			client, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			if err := storage.EnsureBucket(cmd.Context(), client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				logg.Warn("Storage bucket unavailable", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
			}
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		// Register Features
		mgr.Register(health.NewFeature(db, logg))
		mgr.Register(authors.NewFeature(store, logg))
		mgr.Register(books.NewFeature(store, logg))
		mgr.Register(publishers.NewFeature(store, logg))
		mgr.Register(integrity.NewFeature(db, client, cfg.Storage, logg))
		mgr.Register(export.NewFeature(store, client, cfg.Storage.Bucket, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Swagger Documentation
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Get("/", func(c *fiber.Ctx) error {
			return c.Redirect("/books", fiber.StatusFound)
		})

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
