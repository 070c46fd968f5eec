package books

import (
	"errors"
	"strconv"
	"time"

	"book-manager/core/logger"
	"book-manager/core/reconcile"
	"book-manager/core/views"
	"book-manager/feature/catalog"
	"book-manager/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for books.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the book routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/books")
	group.Get("/", h.HandleIndex)
	group.Get("/details/:id?", h.HandleDetails)
	group.Get("/create", h.HandleCreateForm)
	group.Post("/create", h.HandleCreate)
	group.Get("/edit/:id?", h.HandleEditForm)
	group.Post("/edit/:id?", h.HandleEdit)
	group.Get("/delete/:id?", h.HandleDeleteConfirm)
	group.Post("/delete/:id?", h.HandleDelete)
}

// bookPayload is the JSON body accepted by create and edit.
type bookPayload struct {
	Title           string          `json:"title"`
	PublishingDate  string          `json:"publishing_date" example:"1965-08-01"`
	Category        models.Category `json:"category" swaggertype:"string" example:"Fiction"`
	PublisherID     uint            `json:"publisher_id"`
	SelectedAuthors *[]string       `json:"selected_authors"`
}

// readBook decodes the posted book. Field values that cannot be parsed
// are reported in errs next to the partially filled input.
func readBook(c *fiber.Ctx) (input models.BookInput, sel reconcile.Selection, errs models.Errors, err error) {
	var date, category, publisher string
	if views.IsJSONBody(c) {
		var p bookPayload
		if err := c.BodyParser(&p); err != nil {
			return input, nil, nil, err
		}
		input.Title = p.Title
		input.Category = p.Category
		input.PublisherID = p.PublisherID
		date = p.PublishingDate
		sel = views.JSONSelection(p.SelectedAuthors)
	} else {
		input.Title = c.FormValue("title")
		date = c.FormValue("publishing_date")
		category = c.FormValue("category")
		publisher = c.FormValue("publisher_id")
		sel = views.Selection(c, "selectedAuthors")
	}

	errs = models.Errors{}
	if date != "" {
		parsed, perr := time.Parse(models.DateLayout, date)
		if perr != nil {
			errs["publishing_date"] = "publishing date must look like " + models.DateLayout
		}
		input.PublishingDate = parsed
	}
	if category != "" {
		parsed, perr := models.ParseCategory(category)
		if perr != nil {
			errs["category"] = perr.Error()
		}
		input.Category = parsed
	}
	if publisher != "" {
		id, perr := strconv.ParseUint(publisher, 10, 64)
		if perr != nil {
			errs["publisher_id"] = "publisher must be a number"
		}
		input.PublisherID = uint(id)
	}
	return input, sel, errs, nil
}

// formErrors merges parse problems with the service error.
// It returns nil when err is neither a validation nor a publisher error.
func formErrors(parse models.Errors, err error) models.Errors {
	errs := models.Errors{}
	for field, msg := range catalog.FieldErrors(err) {
		errs[field] = msg
	}
	if errors.Is(err, catalog.ErrUnknownPublisher) {
		errs["publisher_id"] = "publisher does not exist"
	}
	for field, msg := range parse {
		errs[field] = msg
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (h *Handler) fail(c *fiber.Ctx, err error, msg string) error {
	status := catalog.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return views.Fail(c, status, err)
}

// HandleIndex lists books, optionally focused on one of them.
// @Summary List Books
// @Description Lists every book with its publisher and authors. With id, also lists the authors of that book.
// @Tags books
// @Produce json,html
// @Param id query int false "Selected book ID"
// @Success 200 {object} models.BookIndexData "Books"
// @Failure 404 {object} views.ErrorData "Unknown book"
// @Router /books [get]
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	id, ok := views.QueryID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "invalid book id")
	}

	data, err := h.service.Index(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to list books")
	}
	return views.Page(c, fiber.StatusOK, "books/index", data)
}

// HandleDetails shows one book with its authors, its publisher and the publisher's other books.
// @Summary Get Book
// @Tags books
// @Produce json,html
// @Param id path int true "Book ID"
// @Success 200 {object} models.Book "Book"
// @Failure 404 {object} views.ErrorData "Not Found"
// @Router /books/details/{id} [get]
func (h *Handler) HandleDetails(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "book id is required")
	}

	book, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to load book")
	}
	return views.Page(c, fiber.StatusOK, "books/details", book)
}

// HandleCreateForm shows the empty book form with the publisher select.
func (h *Handler) HandleCreateForm(c *fiber.Ctx) error {
	form, err := h.service.CreateForm(c.Context(), models.BookInput{}, nil)
	if err != nil {
		return h.fail(c, err, "Failed to load book form")
	}
	return views.Page(c, fiber.StatusOK, "books/form", form)
}

// HandleCreate inserts a book and redirects to the list.
// @Summary Create Book
// @Tags books
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param book body bookPayload true "Book"
// @Success 201 {object} models.Book "Created"
// @Failure 422 {object} models.BookForm "Validation errors"
// @Router /books/create [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	input, _, parseErrs, err := readBook(c)
	if err != nil {
		return views.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var book *models.Book
	if len(parseErrs) == 0 {
		book, err = h.service.Create(c.Context(), input)
	} else {
		err = input.Validate()
	}

	if errs := formErrors(parseErrs, err); errs != nil {
		form, ferr := h.service.CreateForm(c.Context(), input, errs)
		if ferr != nil {
			return h.fail(c, ferr, "Failed to load book form")
		}
		return views.Page(c, fiber.StatusUnprocessableEntity, "books/form", form)
	}
	if err != nil {
		return h.fail(c, err, "Failed to create book")
	}

	logger.WithRayID(h.service.logger, c).Info("Book created", zap.Uint("book_id", book.ID))
	return views.Redirect(c, "/books", fiber.StatusCreated, book)
}

// HandleEditForm shows a book with one checkbox per author.
// @Summary Get Book Edit Form
// @Tags books
// @Produce json,html
// @Param id path int true "Book ID"
// @Success 200 {object} models.BookForm "Form"
// @Failure 404 {object} views.ErrorData "Not Found"
// @Router /books/edit/{id} [get]
func (h *Handler) HandleEditForm(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "book id is required")
	}

	form, err := h.service.EditForm(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to load book form")
	}
	return views.Page(c, fiber.StatusOK, "books/form", form)
}

// HandleEdit updates a book and reconciles its authors.
// Posting no selectedAuthors field removes every author from the book.
// @Summary Update Book
// @Tags books
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Book ID"
// @Param book body bookPayload true "Book and selected author IDs"
// @Success 200 {object} models.Book "Updated"
// @Failure 404 {object} views.ErrorData "Not Found"
// @Failure 422 {object} models.BookForm "Validation errors"
// @Router /books/edit/{id} [post]
func (h *Handler) HandleEdit(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "book id is required")
	}

	input, sel, parseErrs, err := readBook(c)
	if err != nil {
		return views.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var (
		book *models.Book
		plan *reconcile.ReconcilePlan
	)
	if len(parseErrs) == 0 {
		book, plan, err = h.service.Update(c.Context(), id, input, sel)
	} else {
		err = input.Validate()
	}

	if errs := formErrors(parseErrs, err); errs != nil {
		form, ferr := h.service.RetryForm(c.Context(), id, input, sel, errs)
		if ferr != nil {
			return h.fail(c, ferr, "Failed to rebuild book form")
		}
		return views.Page(c, fiber.StatusUnprocessableEntity, "books/form", form)
	}
	if err != nil {
		return h.fail(c, err, "Failed to update book")
	}

	logger.WithRayID(h.service.logger, c).Info("Book updated",
		zap.Uint("book_id", id),
		zap.Strings("authors", plan.Result),
	)
	return views.Redirect(c, "/books", fiber.StatusOK, book)
}

// HandleDeleteConfirm asks before deleting a book.
func (h *Handler) HandleDeleteConfirm(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "book id is required")
	}

	book, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to load book")
	}
	return views.Page(c, fiber.StatusOK, "books/delete", book)
}

// HandleDelete removes a book and its author links.
// @Summary Delete Book
// @Tags books
// @Param id path int true "Book ID"
// @Success 204 "Deleted"
// @Failure 404 {object} views.ErrorData "Not Found"
// @Router /books/delete/{id} [post]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, ok := views.ID(c, "id")
	if !ok {
		return views.Error(c, fiber.StatusNotFound, "book id is required")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, err, "Failed to delete book")
	}

	logger.WithRayID(h.service.logger, c).Info("Book deleted", zap.Uint("book_id", id))
	return views.Redirect(c, "/books", fiber.StatusNoContent, nil)
}
