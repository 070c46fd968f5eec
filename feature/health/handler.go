package health

import (
	"context"
	"time"

	"book-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// pingTimeout bounds a single database ping.
const pingTimeout = 2 * time.Second

// Status is the body returned by the health endpoint.
type Status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Handler answers health probes.
type Handler struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewHandler creates a new health handler.
func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// RegisterRoutes registers the health route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
}

// HandleHealth pings the database.
// @Summary Health Check
// @Description Reports whether the catalog database answers a ping.
// @Tags health
// @Produce json
// @Success 200 {object} health.Status "Healthy"
// @Failure 503 {object} health.Status "Database unreachable"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	if err := h.ping(c.Context()); err != nil {
		logger.WithRayID(h.logger, c).Warn("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(Status{
			Status:   "degraded",
			Database: "down",
			Error:    err.Error(),
		})
	}
	return c.JSON(Status{Status: "ok", Database: "up"})
}

func (h *Handler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
