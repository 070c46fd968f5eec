package integrity

import (
	"errors"

	"book-manager/core/logger"
	"book-manager/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Referenced by the swagger annotations.
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/links", h.HandleLinkCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleIntegrityCheck runs every check without fixing anything.
// @Summary Run All Integrity Checks
// @Description Runs the schema, link and storage checks.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if links, err := h.service.CheckLinks(ctx); err != nil {
		report["links"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["links"] = links
	}

	switch st, err := h.service.CheckStorage(ctx); {
	case errors.Is(err, ErrStorageDisabled):
		report["storage"] = fiber.Map{"status": "disabled"}
	case err != nil:
		report["storage"] = fiber.Map{"status": "error", "error": err.Error()}
	default:
		report["storage"] = st
	}

	return c.JSON(report)
}

// HandleSchemaCheck compares the live schema with the models.
// @Summary Check Schema
// @Description Checks that the four catalog tables have the columns and types the models declare.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Schema drift detected", zap.Strings("errors", report.Errors))
	}
	return c.JSON(report)
}

// HandleLinkCheck finds dangling relationships and optionally removes orphaned links.
// @Summary Check Links
// @Description Finds book_authors rows pointing at deleted books or authors and books whose publisher is gone. Optionally removes the orphaned rows.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Remove orphaned links"
// @Success 200 {object} map[string]interface{} "Link Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/links [get]
func (h *Handler) HandleLinkCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckLinks(c.Context())
	if err != nil {
		l.Error("Link check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(report.OrphanedLinks) > 0 {
		l.Warn("Orphaned links detected", zap.Int("count", len(report.OrphanedLinks)))

		if fix {
			removed, err := h.service.FixLinks(c.Context(), report)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to remove orphaned links",
					"details": err.Error(),
					"report":  report,
				})
			}
			return c.JSON(fiber.Map{
				"status":  "fixed",
				"removed": removed,
				"report":  report,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "checked",
		"report": report,
	})
}

// HandleStorageCheck checks and optionally fixes the export bucket.
// @Summary Check Storage
// @Description Checks that the export bucket and its folders exist. Optionally creates them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create missing bucket and folders"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 503 {object} map[string]string "Storage disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckStorage(c.Context())
	if errors.Is(err, ErrStorageDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.OK() && fix {
		l.Info("Attempting to fix storage layout", zap.Strings("missing", report.Missing))
		if err := h.service.FixStorage(c.Context(), report); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to fix storage",
				"details": err.Error(),
				"missing": report.Missing,
			})
		}
		return c.JSON(fiber.Map{
			"status": "fixed",
			"fixed":  report.Missing,
		})
	}

	return c.JSON(fiber.Map{
		"status": "checked",
		"report": report,
	})
}
