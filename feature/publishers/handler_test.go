package publishers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"book-manager/core/views"
	"book-manager/feature/catalog"
	"book-manager/feature/catalog/catalogtest"
	"book-manager/feature/catalog/models"
	"book-manager/feature/publishers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) (*fiber.App, *catalog.Store) {
	t.Helper()

	store := catalogtest.NewSeededStore(t)
	app := fiber.New(fiber.Config{Views: views.New(views.FS, false)})
	require.NoError(t, publishers.NewFeature(store, zap.NewNop()).Load(app))
	return app, store
}

func request(t *testing.T, app *fiber.App, method, target string, form url.Values, jsonAccept bool) *http.Response {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if jsonAccept {
		req.Header.Set("Accept", fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHandleIndex(t *testing.T) {
	app, _ := setupApp(t)

	resp := request(t, app, http.MethodGet, "/publishers?id=1", nil, true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data models.PublisherIndexData
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&data))
	assert.Len(t, data.Publishers, 3)
	require.Len(t, data.Books, 1)
	assert.Equal(t, "The Hobbit", data.Books[0].Title)

	resp = request(t, app, http.MethodGet, "/publishers", nil, false)
	assert.Contains(t, readBody(t, resp), "T. Egerton")
}

func TestHandleDetails(t *testing.T) {
	app, _ := setupApp(t)

	resp := request(t, app, http.MethodGet, "/publishers/details/2", nil, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Dune")

	assert.Equal(t, fiber.StatusNotFound, request(t, app, http.MethodGet, "/publishers/details/9", nil, false).StatusCode)
	assert.Equal(t, fiber.StatusNotFound, request(t, app, http.MethodGet, "/publishers/details/", nil, false).StatusCode)
}

func TestHandleCreateAndEdit(t *testing.T) {
	app, store := setupApp(t)

	resp := request(t, app, http.MethodPost, "/publishers/create", url.Values{"publisher_name": {"Ace"}}, false)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	var publisher models.Publisher
	require.NoError(t, store.DB().Where("publisher_name = ?", "Ace").First(&publisher).Error)

	target := "/publishers/edit/" + publisher.Key()
	resp = request(t, app, http.MethodPost, target, url.Values{"publisher_name": {"Ace Books"}}, true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"publisher_name":"Ace Books"`)

	resp = request(t, app, http.MethodPost, target, url.Values{"publisher_name": {""}}, false)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "publisher name is required")
}

func TestHandleDelete_InUse(t *testing.T) {
	app, _ := setupApp(t)

	resp := request(t, app, http.MethodPost, "/publishers/delete/1", url.Values{}, false)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "cannot be deleted")

	resp = request(t, app, http.MethodPost, "/publishers/delete/1", url.Values{}, true)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "publisher still has books")
}

func TestHandleDelete(t *testing.T) {
	app, store := setupApp(t)
	require.NoError(t, store.DeleteBook(t.Context(), 3))

	resp := request(t, app, http.MethodPost, "/publishers/delete/3", url.Values{}, false)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/publishers", resp.Header.Get("Location"))

	_, err := store.GetPublisher(t.Context(), 3)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestHandleDelete_DatabaseErrorIsGeneric(t *testing.T) {
	app, store := setupApp(t)
	sqlDB, err := store.DB().DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp := request(t, app, http.MethodPost, "/publishers/delete/1", nil, true)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	text := readBody(t, resp)
	assert.Contains(t, text, views.InternalErrorMessage)
	assert.NotContains(t, text, "database is closed")
}
