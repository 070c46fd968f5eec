package books_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"book-manager/core/views"
	"book-manager/feature/books"
	"book-manager/feature/catalog"
	"book-manager/feature/catalog/catalogtest"
	"book-manager/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) (*fiber.App, *catalog.Store) {
	t.Helper()

	store := catalogtest.NewSeededStore(t)
	app := fiber.New(fiber.Config{Views: views.New(views.FS, false)})
	require.NoError(t, books.NewFeature(store, zap.NewNop()).Load(app))
	return app, store
}

func do(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, app *fiber.App, target string, out interface{}) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Accept", fiber.MIMEApplicationJSON)
	resp := do(t, app, req)
	if out != nil && resp.StatusCode == fiber.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func postForm(t *testing.T, app *fiber.App, target string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return do(t, app, req)
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func authorIDs(t *testing.T, store *catalog.Store, bookID uint) []uint {
	t.Helper()
	var ids []uint
	require.NoError(t, store.DB().Model(&models.BookAuthor{}).Where("book_id = ?", bookID).Order("author_id").Pluck("author_id", &ids).Error)
	return ids
}

func validForm() url.Values {
	return url.Values{
		"title":           {"Dune Messiah"},
		"publishing_date": {"1969-10-15"},
		"category":        {"Fiction"},
		"publisher_id":    {"2"},
	}
}

func TestHandleIndex(t *testing.T) {
	app, _ := setupApp(t)

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/books", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "Pride and Prejudice")
	assert.Contains(t, html, "Chilton Books")
	assert.Contains(t, html, "1813-01-28")

	var data models.BookIndexData
	require.Equal(t, fiber.StatusOK, getJSON(t, app, "/books?id=3", &data))
	assert.Equal(t, uint(3), data.SelectedID)
	require.Len(t, data.Authors, 1)
	assert.Equal(t, "Austen", data.Authors[0].LastName)

	assert.Equal(t, fiber.StatusNotFound, getJSON(t, app, "/books?id=77", nil))
}

func TestHandleDetails_TraversesPublisher(t *testing.T) {
	app, store := setupApp(t)
	require.NoError(t, store.CreateBook(t.Context(), &models.Book{Title: "Children of Dune", PublisherID: 2}))

	var book models.Book
	require.Equal(t, fiber.StatusOK, getJSON(t, app, "/books/details/2", &book))
	require.NotNil(t, book.Publisher)
	assert.Equal(t, "Chilton Books", book.Publisher.PublisherName)
	assert.Len(t, book.Publisher.Books, 2)
	require.Len(t, book.Authors(), 1)
	assert.Equal(t, "Herbert, Frank", book.Authors()[0].FullName())

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/books/details/2", nil))
	assert.Contains(t, body(t, resp), "Children of Dune")

	assert.Equal(t, fiber.StatusNotFound, getJSON(t, app, "/books/details/", nil))
}

func TestHandleCreateForm_ListsPublishers(t *testing.T) {
	app, _ := setupApp(t)

	var form models.BookForm
	require.Equal(t, fiber.StatusOK, getJSON(t, app, "/books/create", &form))
	assert.Len(t, form.Publishers, 3)
	assert.Equal(t, models.Categories(), form.Categories)
}

func TestHandleCreate(t *testing.T) {
	app, store := setupApp(t)

	resp := postForm(t, app, "/books/create", validForm())
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/books", resp.Header.Get("Location"))

	var book models.Book
	require.NoError(t, store.DB().Where("title = ?", "Dune Messiah").First(&book).Error)
	assert.Equal(t, models.CategoryFiction, book.Category)
	assert.Equal(t, "1969-10-15", book.PublishingDateString())
	assert.Equal(t, uint(2), book.PublisherID)
}

func TestHandleCreate_InvalidFields(t *testing.T) {
	app, store := setupApp(t)

	form := validForm()
	form.Set("title", "")
	form.Set("publishing_date", "15/10/1969")
	form.Set("category", "Poetry")

	resp := postForm(t, app, "/books/create", form)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	html := body(t, resp)
	assert.Contains(t, html, "title is required")
	assert.Contains(t, html, "publishing date must look like 2006-01-02")
	assert.Contains(t, html, "unknown category")

	var count int64
	require.NoError(t, store.DB().Model(&models.Book{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestHandleCreate_UnknownPublisher(t *testing.T) {
	app, _ := setupApp(t)

	form := validForm()
	form.Set("publisher_id", "99")

	resp := postForm(t, app, "/books/create", form)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body(t, resp), "publisher does not exist")
}

func TestHandleCreate_JSON(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodPost, "/books/create",
		strings.NewReader(`{"title":"Emma","publishing_date":"1815-12-23","category":"Romance","publisher_id":3}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	req.Header.Set("Accept", fiber.MIMEApplicationJSON)

	resp := do(t, app, req)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Contains(t, body(t, resp), `"category":"Romance"`)
}

func TestHandleEditForm_ChecksLinkedAuthors(t *testing.T) {
	app, _ := setupApp(t)

	var form models.BookForm
	require.Equal(t, fiber.StatusOK, getJSON(t, app, "/books/edit/2", &form))
	assert.Equal(t, []models.CheckBox{
		{ID: 3, Label: "Austen, Jane"},
		{ID: 2, Label: "Herbert, Frank", Checked: true},
		{ID: 1, Label: "Tolkien, J.R.R."},
	}, form.Authors)

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/books/edit/2", nil))
	html := body(t, resp)
	assert.Contains(t, html, `name="selectedAuthors" value="2" checked`)
	assert.Contains(t, html, `<option value="2" selected>Chilton Books</option>`)
}

func TestHandleEdit_ReconcilesAuthors(t *testing.T) {
	app, store := setupApp(t)

	form := validForm()
	form.Set("title", "Dune")
	form["selectedAuthors"] = []string{"1", "3"}

	resp := postForm(t, app, "/books/edit/2", form)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, []uint{1, 3}, authorIDs(t, store, 2))

	// Same submission again changes nothing.
	resp = postForm(t, app, "/books/edit/2", form)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, []uint{1, 3}, authorIDs(t, store, 2))
}

func TestHandleEdit_AbsentSelectionClearsAuthors(t *testing.T) {
	app, store := setupApp(t)

	resp := postForm(t, app, "/books/edit/2", validForm())
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Empty(t, authorIDs(t, store, 2))
}

func TestHandleEdit_JSONEmptySelection(t *testing.T) {
	app, store := setupApp(t)

	req := httptest.NewRequest(http.MethodPost, "/books/edit/1",
		strings.NewReader(`{"title":"The Hobbit","publishing_date":"1937-09-21","category":0,"publisher_id":1,"selected_authors":[]}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	req.Header.Set("Accept", fiber.MIMEApplicationJSON)

	resp := do(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, authorIDs(t, store, 1))
}

func TestHandleEdit_InvalidKeepsLinks(t *testing.T) {
	app, store := setupApp(t)

	form := validForm()
	form.Set("publisher_id", "")
	form["selectedAuthors"] = []string{"1"}

	resp := postForm(t, app, "/books/edit/2", form)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	html := body(t, resp)
	assert.Contains(t, html, "publisher is required")
	assert.Contains(t, html, `name="selectedAuthors" value="1" checked`)
	assert.Equal(t, []uint{2}, authorIDs(t, store, 2))
}

func TestHandleEdit_UnknownBook(t *testing.T) {
	app, _ := setupApp(t)
	assert.Equal(t, fiber.StatusNotFound, postForm(t, app, "/books/edit/50", validForm()).StatusCode)
}

func TestHandleDelete(t *testing.T) {
	app, store := setupApp(t)

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/books/delete/3", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Pride and Prejudice")

	req := httptest.NewRequest(http.MethodPost, "/books/delete/3", nil)
	req.Header.Set("Accept", fiber.MIMEApplicationJSON)
	assert.Equal(t, fiber.StatusNoContent, do(t, app, req).StatusCode)
	assert.Empty(t, authorIDs(t, store, 3))
	assert.Equal(t, fiber.StatusNotFound, getJSON(t, app, "/books/details/3", nil))
}

func TestHandleDetails_DatabaseErrorIsGeneric(t *testing.T) {
	app, store := setupApp(t)
	sqlDB, err := store.DB().DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	req := httptest.NewRequest(http.MethodGet, "/books/details/1", nil)
	resp := do(t, app, req)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	page := body(t, resp)
	assert.Contains(t, page, views.InternalErrorMessage)
	assert.NotContains(t, page, "database is closed")
}
