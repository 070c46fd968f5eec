package views

import (
	"bytes"
	"testing"
	"testing/fstest"
	"time"

	"book-manager/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedPages(t *testing.T) {
	e := New(FS, false)
	require.NoError(t, e.Load())

	assert.ElementsMatch(t, []string{
		"authors/index", "authors/details", "authors/form", "authors/delete",
		"books/index", "books/details", "books/form", "books/delete",
		"publishers/index", "publishers/details", "publishers/form", "publishers/delete",
		"shared/error",
	}, e.Pages())
}

func TestRender_AuthorIndex(t *testing.T) {
	hobbit := models.Book{ID: 1, Title: "The Hobbit", PublishingDate: time.Date(1937, time.September, 21, 0, 0, 0, 0, time.UTC)}
	data := models.AuthorIndexData{
		Authors: []models.Author{{
			ID: 1, FirstName: "J.R.R.", LastName: "Tolkien",
			BookAuthors: []models.BookAuthor{{BookID: 1, AuthorID: 1, Book: &hobbit}},
		}},
		SelectedID: 1,
		Books:      []models.Book{hobbit},
	}

	var buf bytes.Buffer
	require.NoError(t, New(FS, false).Render(&buf, "authors/index", data))

	html := buf.String()
	assert.Contains(t, html, "<title>Authors - Book Manager</title>")
	assert.Contains(t, html, `class="selected"`)
	assert.Contains(t, html, "Tolkien")
	assert.Contains(t, html, "1937-09-21")
}

func TestRender_AuthorEditForm(t *testing.T) {
	form := models.AuthorForm{
		Author: models.Author{ID: 2, FirstName: "Frank", LastName: ""},
		Books: []models.CheckBox{
			{ID: 1, Label: "The Hobbit"},
			{ID: 2, Label: "Dune", Checked: true},
		},
		Errors: models.Errors{"last_name": "last name is required"},
	}

	var buf bytes.Buffer
	require.NoError(t, New(FS, false).Render(&buf, "authors/form", form))

	html := buf.String()
	assert.Contains(t, html, `action="/authors/edit/2"`)
	assert.Contains(t, html, `name="selectedBooks" value="2" checked`)
	assert.NotContains(t, html, `name="selectedBooks" value="1" checked`)
	assert.Contains(t, html, "last name is required")
}

func TestRender_BookFormSelectsPublisher(t *testing.T) {
	form := models.BookForm{
		Book:       models.Book{Title: "Dune", Category: models.CategoryFiction, PublisherID: 2},
		Publishers: []models.Publisher{{ID: 1, PublisherName: "Allen & Unwin"}, {ID: 2, PublisherName: "Chilton Books"}},
		Categories: models.Categories(),
	}

	var buf bytes.Buffer
	require.NoError(t, New(FS, false).Render(&buf, "books/form", form))

	html := buf.String()
	assert.Contains(t, html, `action="/books/create"`)
	assert.Contains(t, html, `<option value="2" selected>Chilton Books</option>`)
	assert.Contains(t, html, `<option value="Fiction" selected>Fiction</option>`)
	assert.NotContains(t, html, "selectedAuthors")
}

func TestRender_Escapes(t *testing.T) {
	var buf bytes.Buffer
	err := New(FS, false).Render(&buf, "shared/error", ErrorData{Status: 404, Message: "<script>"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestRender_UnknownPage(t *testing.T) {
	var buf bytes.Buffer
	err := New(FS, false).Render(&buf, "missing/page", nil)
	assert.EqualError(t, err, "template missing/page does not exist")
}

func TestRender_CustomLayoutAndReload(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.html":      {Data: []byte(`{{define "layout"}}[{{template "content" .}}]{{end}}{{define "plain"}}{{template "content" .}}{{end}}`)},
		"pages/hello.html": {Data: []byte(`{{define "content"}}hello {{.}}{{end}}`)},
	}
	e := New(fsys, true)

	var buf bytes.Buffer
	require.NoError(t, e.Render(&buf, "pages/hello", "world"))
	assert.Equal(t, "[hello world]", buf.String())

	fsys["pages/hello.html"] = &fstest.MapFile{Data: []byte(`{{define "content"}}bye {{.}}{{end}}`)}

	buf.Reset()
	require.NoError(t, e.Render(&buf, "pages/hello", "world", "plain"))
	assert.Equal(t, "bye world", buf.String())
}

func TestLoad_NoLayout(t *testing.T) {
	err := New(fstest.MapFS{"pages/a.html": {Data: []byte("a")}}, false).Load()
	assert.EqualError(t, err, "no layout templates found")
}
