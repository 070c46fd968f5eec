package catalog

import (
	"errors"

	"book-manager/feature/catalog/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
)

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPublisherInUse is returned when deleting a publisher that still owns books.
	ErrPublisherInUse = errors.New("publisher still has books")
	// ErrUnknownPublisher is returned when a book references a missing publisher.
	ErrUnknownPublisher = errors.New("unknown publisher")
)

// FieldErrors flattens an ozzo validation error into per-field messages.
// It returns nil when err is not a validation error.
func FieldErrors(err error) models.Errors {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(models.Errors, len(verrs))
	for field, ferr := range verrs {
		out[field] = ferr.Error()
	}
	return out
}

// HTTPStatus maps a catalog error to the response status it deserves.
func HTTPStatus(err error) int {
	var verrs validation.Errors
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrPublisherInUse):
		return fiber.StatusConflict
	case errors.Is(err, ErrUnknownPublisher), errors.As(err, &verrs):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
