package views

import (
	"strconv"

	"book-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
)

// WantsJSON reports whether the client prefers JSON over HTML.
// A missing or wildcard Accept header gets HTML.
func WantsJSON(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

// Page renders name with data, or data itself as JSON when the client asks for it.
func Page(c *fiber.Ctx, status int, name string, data interface{}) error {
	c.Status(status)
	if WantsJSON(c) {
		return c.JSON(data)
	}
	return c.Render(name, data)
}

// Error renders the shared error page or a JSON error body.
func Error(c *fiber.Ctx, status int, message string) error {
	return Page(c, status, "shared/error", ErrorData{Status: status, Message: message})
}

// InternalErrorMessage replaces the text of server errors shown to clients.
const InternalErrorMessage = "internal server error"

// Fail renders err with status. Server errors are shown as InternalErrorMessage;
// callers log the real error.
func Fail(c *fiber.Ctx, status int, err error) error {
	message := err.Error()
	if status >= fiber.StatusInternalServerError {
		message = InternalErrorMessage
	}
	return Error(c, status, message)
}

// Redirect sends browsers to location after a successful POST.
// JSON clients get data with status instead.
func Redirect(c *fiber.Ctx, location string, status int, data interface{}) error {
	if WantsJSON(c) {
		if data == nil {
			return c.SendStatus(status)
		}
		return c.Status(status).JSON(data)
	}
	return c.Redirect(location, fiber.StatusFound)
}

// ID reads a positive numeric route parameter.
func ID(c *fiber.Ctx, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// QueryID reads an optional positive numeric query parameter.
// ok is false when the parameter is present but malformed.
func QueryID(c *fiber.Ctx, name string) (id uint, ok bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// IsJSONBody reports whether the request body is JSON.
func IsJSONBody(c *fiber.Ctx) bool {
	return c.Is("json")
}

// Selection collects every value posted under field in an url-encoded or
// multipart form. It returns nil when the field was not posted at all,
// which is what browsers send for a group with no box checked.
func Selection(c *fiber.Ctx, field string) reconcile.Selection {
	args := c.Request().PostArgs()
	if args.Has(field) {
		raw := args.PeekMulti(field)
		values := make([]string, 0, len(raw))
		for _, v := range raw {
			values = append(values, string(v))
		}
		return reconcile.NewSelection(values, true)
	}

	if form, err := c.MultipartForm(); err == nil {
		if values, ok := form.Value[field]; ok {
			return reconcile.NewSelection(values, true)
		}
	}
	return nil
}

// JSONSelection converts an optional JSON array into a Selection.
func JSONSelection(values *[]string) reconcile.Selection {
	if values == nil {
		return nil
	}
	return reconcile.NewSelection(*values, true)
}
