package authors

import (
	"book-manager/core/logger"
	"book-manager/core/reconcile"
	"book-manager/core/views"
	"book-manager/feature/catalog"
	"book-manager/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for authors.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the author routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/authors")
	group.Get("/", h.HandleIndex)
	group.Get("/details/:id?", h.HandleDetails)
	group.Get("/create", h.HandleCreateForm)
	group.Post("/create", h.HandleCreate)
	group.Get("/edit/:id?", h.HandleEditForm)
	group.Post("/edit/:id?", h.HandleEdit)
	group.Get("/delete/:id?", h.HandleDeleteConfirm)
	group.Post("/delete/:id?", h.HandleDelete)
}

// authorPayload is the JSON body accepted by create and edit.
type authorPayload struct {
	models.AuthorInput
	SelectedBooks *[]string `json:"selected_books"`
}

func readAuthor(c *fiber.Ctx) (models.AuthorInput, reconcile.Selection, error) {
	if views.IsJSONBody(c) {
		var p authorPayload
		if err := c.BodyParser(&p); err != nil {
			return models.AuthorInput{}, nil, err
		}
		return p.AuthorInput, views.JSONSelection(p.SelectedBooks), nil
	}

	input := models.AuthorInput{
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
	}
	return input, views.Selection(c, "selectedBooks"), nil
}

func (h *Handler) fail(c *fiber.Ctx, err error, msg string) error {
	status := catalog.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return views.Fail(c, status, err)
}

// HandleIndex lists authors, optionally focused on one of them.
// @Summary List Authors
// @Description Lists every author with their books. With id, also lists the books of that author.
// @Tags authors
// @Produce json,html
// @Param id query int false "Selected author ID"
// @Success 200 {object} models.AuthorIndexData "Authors"
// @Failure 404 {object} views.ErrorData "Unknown author"
// @Router /authors [get]
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	id, ok := views.QueryID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "invalid author id")
	}

	data, err := h.service.Index(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to list authors")
	}
	return views.Page(c, fiber.StatusOK, "authors/index", data)
}

// HandleDetails shows one author with their books.
// @Summary Get Author
// @Tags authors
// @Produce json,html
// @Param id path int true "Author ID"
// @Success 200 {object} models.Author "Author"
// @Failure 404 {object} views.ErrorData "Not Found"
// @Router /authors/details/{id} [get]
func (h *Handler) HandleDetails(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "author id is required")
	}

	author, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to load author")
	}
	return views.Page(c, fiber.StatusOK, "authors/details", author)
}

// HandleCreateForm shows the empty author form.
func (h *Handler) HandleCreateForm(c *fiber.Ctx) error {
	return views.Page(c, fiber.StatusOK, "authors/form", models.AuthorForm{})
}

// HandleCreate inserts an author and redirects to the list.
// @Summary Create Author
// @Tags authors
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param author body models.AuthorInput true "Author"
// @Success 201 {object} models.Author "Created"
// @Failure 422 {object} models.AuthorForm "Validation errors"
// @Router /authors/create [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	input, _, err := readAuthor(c)
	if err != nil {
		return views.Error(c, fiber.StatusBadRequest, err.Error())
	}

	author, err := h.service.Create(c.Context(), input)
	if errs := catalog.FieldErrors(err); errs != nil {
		form := models.AuthorForm{Errors: errs}
		input.Apply(&form.Author)
		return views.Page(c, fiber.StatusUnprocessableEntity, "authors/form", form)
	}
	if err != nil {
		return h.fail(c, err, "Failed to create author")
	}

	logger.WithRayID(h.service.logger, c).Info("Author created", zap.Uint("author_id", author.ID))
	return views.Redirect(c, "/authors", fiber.StatusCreated, author)
}

// HandleEditForm shows an author with one checkbox per book.
// @Summary Get Author Edit Form
// @Tags authors
// @Produce json,html
// @Param id path int true "Author ID"
// @Success 200 {object} models.AuthorForm "Form"
// @Failure 404 {object} views.ErrorData "Not Found"
// @Router /authors/edit/{id} [get]
func (h *Handler) HandleEditForm(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "author id is required")
	}

	form, err := h.service.EditForm(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to load author form")
	}
	return views.Page(c, fiber.StatusOK, "authors/form", form)
}

// HandleEdit updates an author and reconciles their books.
// Posting no selectedBooks field removes every book from the author.
// @Summary Update Author
// @Tags authors
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Author ID"
// @Param author body authorPayload true "Author and selected book IDs"
// @Success 200 {object} models.Author "Updated"
// @Failure 404 {object} views.ErrorData "Not Found"
// @Failure 422 {object} models.AuthorForm "Validation errors"
// @Router /authors/edit/{id} [post]
func (h *Handler) HandleEdit(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "author id is required")
	}

	input, sel, err := readAuthor(c)
	if err != nil {
		return views.Error(c, fiber.StatusBadRequest, err.Error())
	}

	author, plan, err := h.service.Update(c.Context(), id, input, sel)
	if errs := catalog.FieldErrors(err); errs != nil {
		form, ferr := h.service.RetryForm(c.Context(), id, input, sel, errs)
		if ferr != nil {
			return h.fail(c, ferr, "Failed to rebuild author form")
		}
		return views.Page(c, fiber.StatusUnprocessableEntity, "authors/form", form)
	}
	if err != nil {
		return h.fail(c, err, "Failed to update author")
	}

	logger.WithRayID(h.service.logger, c).Info("Author updated",
		zap.Uint("author_id", id),
		zap.Strings("books", plan.Result),
	)
	return views.Redirect(c, "/authors", fiber.StatusOK, author)
}

// HandleDeleteConfirm asks before deleting an author.
func (h *Handler) HandleDeleteConfirm(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "author id is required")
	}

	author, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to load author")
	}
	return views.Page(c, fiber.StatusOK, "authors/delete", author)
}

// HandleDelete removes an author and their book links.
// @Summary Delete Author
// @Tags authors
// @Param id path int true "Author ID"
// @Success 204 "Deleted"
// @Failure 404 {object} views.ErrorData "Not Found"
// @Router /authors/delete/{id} [post]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "author id is required")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, err, "Failed to delete author")
	}

	logger.WithRayID(h.service.logger, c).Info("Author deleted", zap.Uint("author_id", id))
	return views.Redirect(c, "/authors", fiber.StatusNoContent, nil)
}
