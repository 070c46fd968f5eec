package export

import (
	"errors"

	"book-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog exports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the export routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/export")
	group.Post("/", h.HandleExport)
	group.Get("/", h.HandleList)
	group.Get("/:name", h.HandleDownload)
}

// HandleExport writes a new snapshot.
// @Summary Export Catalog
// @Description Writes the whole catalog as a JSON snapshot to the object store.
// @Tags export
// @Produce json
// @Success 201 {object} Info "Snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	info, err := h.service.Export(c.Context())
	if err != nil {
		l.Error("Export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandleList lists stored snapshots.
// @Summary List Exports
// @Tags export
// @Produce json
// @Success 200 {array} Info "Snapshots"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	infos, err := h.service.List(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Listing exports failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(infos)
}

// HandleDownload streams one snapshot.
// @Summary Download Export
// @Tags export
// @Produce json
// @Param name path string true "Snapshot file name"
// @Success 200 {object} Snapshot "Snapshot"
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export/{name} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	name := c.Params("name")

	rc, err := h.service.Open(c.Context(), name)
	if errors.Is(err, ErrInvalidName) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Opening export failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendStream(rc)
}
