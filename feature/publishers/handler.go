package publishers

import (
	"errors"

	"book-manager/core/logger"
	"book-manager/core/views"
	"book-manager/feature/catalog"
	"book-manager/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for publishers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the publisher routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/publishers")
	group.Get("/", h.HandleIndex)
	group.Get("/details/:id?", h.HandleDetails)
	group.Get("/create", h.HandleCreateForm)
	group.Post("/create", h.HandleCreate)
	group.Get("/edit/:id?", h.HandleEditForm)
	group.Post("/edit/:id?", h.HandleEdit)
	group.Get("/delete/:id?", h.HandleDeleteConfirm)
	group.Post("/delete/:id?", h.HandleDelete)
}

func readPublisher(c *fiber.Ctx) (models.PublisherInput, error) {
	var input models.PublisherInput
	if views.IsJSONBody(c) {
		err := c.BodyParser(&input)
		return input, err
	}
	input.PublisherName = c.FormValue("publisher_name")
	return input, nil
}

func (h *Handler) fail(c *fiber.Ctx, err error, msg string) error {
	status := catalog.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return views.Fail(c, status, err)
}

// HandleIndex lists publishers.
// @Summary List Publishers
// @Tags publishers
// @Produce json,html
// @Param id query int false "Selected publisher ID"
// @Success 200 {object} models.PublisherIndexData "Publishers"
// @Failure 404 {object} views.ErrorData "Unknown publisher"
// @Router /publishers [get]
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	id, ok := views.QueryID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "invalid publisher id")
	}

	data, err := h.service.Index(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to list publishers")
	}
	return views.Page(c, fiber.StatusOK, "publishers/index", data)
}

// HandleDetails shows one publisher with its books.
// @Summary Get Publisher
// @Tags publishers
// @Produce json,html
// @Param id path int true "Publisher ID"
// @Success 200 {object} models.Publisher "Publisher"
// @Failure 404 {object} views.ErrorData "Not Found"
// @Router /publishers/details/{id} [get]
func (h *Handler) HandleDetails(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "publisher id is required")
	}

	publisher, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to load publisher")
	}
	return views.Page(c, fiber.StatusOK, "publishers/details", publisher)
}

// HandleCreateForm shows the empty publisher form.
func (h *Handler) HandleCreateForm(c *fiber.Ctx) error {
	return views.Page(c, fiber.StatusOK, "publishers/form", models.PublisherForm{})
}

// HandleCreate inserts a publisher and redirects to the list.
// @Summary Create Publisher
// @Tags publishers
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param publisher body models.PublisherInput true "Publisher"
// @Success 201 {object} models.Publisher "Created"
// @Failure 422 {object} models.PublisherForm "Validation errors"
// @Router /publishers/create [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	input, err := readPublisher(c)
	if err != nil {
		return views.Error(c, fiber.StatusBadRequest, err.Error())
	}

	publisher, err := h.service.Create(c.Context(), input)
	if errs := catalog.FieldErrors(err); errs != nil {
		form := models.PublisherForm{Errors: errs}
		input.Apply(&form.Publisher)
		return views.Page(c, fiber.StatusUnprocessableEntity, "publishers/form", form)
	}
	if err != nil {
		return h.fail(c, err, "Failed to create publisher")
	}

	logger.WithRayID(h.service.logger, c).Info("Publisher created", zap.Uint("publisher_id", publisher.ID))
	return views.Redirect(c, "/publishers", fiber.StatusCreated, publisher)
}

// HandleEditForm shows the publisher form.
func (h *Handler) HandleEditForm(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "publisher id is required")
	}

	publisher, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to load publisher")
	}
	return views.Page(c, fiber.StatusOK, "publishers/form", models.PublisherForm{Publisher: *publisher})
}

// HandleEdit renames a publisher.
// @Summary Update Publisher
// @Tags publishers
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Publisher ID"
// @Param publisher body models.PublisherInput true "Publisher"
// @Success 200 {object} models.Publisher "Updated"
// @Failure 404 {object} views.ErrorData "Not Found"
// @Failure 422 {object} models.PublisherForm "Validation errors"
// @Router /publishers/edit/{id} [post]
func (h *Handler) HandleEdit(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "publisher id is required")
	}

	input, err := readPublisher(c)
	if err != nil {
		return views.Error(c, fiber.StatusBadRequest, err.Error())
	}

	publisher, err := h.service.Update(c.Context(), id, input)
	if errs := catalog.FieldErrors(err); errs != nil {
		form := models.PublisherForm{Publisher: models.Publisher{ID: id}, Errors: errs}
		input.Apply(&form.Publisher)
		return views.Page(c, fiber.StatusUnprocessableEntity, "publishers/form", form)
	}
	if err != nil {
		return h.fail(c, err, "Failed to update publisher")
	}

	logger.WithRayID(h.service.logger, c).Info("Publisher updated", zap.Uint("publisher_id", id))
	return views.Redirect(c, "/publishers", fiber.StatusOK, publisher)
}

// HandleDeleteConfirm asks before deleting a publisher.
func (h *Handler) HandleDeleteConfirm(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "publisher id is required")
	}

	publisher, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to load publisher")
	}
	return views.Page(c, fiber.StatusOK, "publishers/delete", models.PublisherDelete{Publisher: *publisher})
}

// HandleDelete removes a publisher that no longer owns books.
// @Summary Delete Publisher
// @Tags publishers
// @Param id path int true "Publisher ID"
// @Success 204 "Deleted"
// @Failure 404 {object} views.ErrorData "Not Found"
// @Failure 409 {object} models.PublisherDelete "Publisher still owns books"
// @Router /publishers/delete/{id} [post]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "publisher id is required")
	}

	err := h.service.Delete(c.Context(), id)
	if errors.Is(err, catalog.ErrPublisherInUse) {
		publisher, gerr := h.service.Get(c.Context(), id)
		if gerr != nil {
			return h.fail(c, gerr, "Failed to load publisher")
		}
		return views.Page(c, fiber.StatusConflict, "publishers/delete", models.PublisherDelete{Publisher: *publisher, Error: err.Error()})
	}
	if err != nil {
		return h.fail(c, err, "Failed to delete publisher")
	}

	logger.WithRayID(h.service.logger, c).Info("Publisher deleted", zap.Uint("publisher_id", id))
	return views.Redirect(c, "/publishers", fiber.StatusNoContent, nil)
}
