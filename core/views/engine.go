package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"book-manager/feature/catalog/models"
)

//go:embed templates
var embedded embed.FS

// FS is the embedded template tree rooted at "templates".
var FS, _ = fs.Sub(embedded, "templates")

// DefaultLayout is executed when Render is called without a layout.
const DefaultLayout = "layout"

// Engine renders pages from a template tree and satisfies fiber.Views.
// Every page under a sub-directory is parsed together with the root
// level partials (layout.html and friends) and addressed by its path
// without the extension, e.g. "authors/index".
type Engine struct {
	fsys   fs.FS
	reload bool

	mu    sync.RWMutex
	pages map[string]*template.Template
}

// New creates an engine over fsys. With reload set, templates are parsed again on every render.
func New(fsys fs.FS, reload bool) *Engine {
	return &Engine{fsys: fsys, reload: reload}
}

// ErrorData backs the shared error page.
type ErrorData struct {
	Status  int    `json:"status"`
	Message string `json:"error"`
}

// FieldRef points a partial at one field of a validation error map.
type FieldRef struct {
	Errors models.Errors
	Field  string
}

// CheckBoxGroup is a named group of checkboxes posted under one form key.
type CheckBoxGroup struct {
	Name  string
	Boxes []models.CheckBox
}

// Funcs returns the template helpers shared by every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"date": func(b models.Book) string { return b.PublishingDateString() },
		"mod":  func(a, b int) int { return a % b },
		"field": func(errs models.Errors, name string) FieldRef {
			return FieldRef{Errors: errs, Field: name}
		},
		"boxes": func(name string, boxes []models.CheckBox) CheckBoxGroup {
			return CheckBoxGroup{Name: name, Boxes: boxes}
		},
	}
}

// Load parses every page in the tree.
func (e *Engine) Load() error {
	partials, err := fs.Glob(e.fsys, "*.html")
	if err != nil {
		return fmt.Errorf("failed to list partials: %w", err)
	}
	if len(partials) == 0 {
		return fmt.Errorf("no layout templates found")
	}

	base, err := template.New("").Funcs(Funcs()).ParseFS(e.fsys, partials...)
	if err != nil {
		return fmt.Errorf("failed to parse partials: %w", err)
	}

	pages := make(map[string]*template.Template)
	err = fs.WalkDir(e.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Dir(p) == "." || path.Ext(p) != ".html" {
			return nil
		}
		page, err := base.Clone()
		if err != nil {
			return err
		}
		if _, err := page.ParseFS(e.fsys, p); err != nil {
			return fmt.Errorf("failed to parse %s: %w", p, err)
		}
		pages[strings.TrimSuffix(p, ".html")] = page
		return nil
	})
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.pages = pages
	e.mu.Unlock()
	return nil
}

// Render executes the layout of page name with data.
func (e *Engine) Render(w io.Writer, name string, data interface{}, layouts ...string) error {
	if e.reload || e.loaded() == 0 {
		if err := e.Load(); err != nil {
			return err
		}
	}

	e.mu.RLock()
	page, ok := e.pages[name]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("template %s does not exist", name)
	}

	layout := DefaultLayout
	if len(layouts) > 0 && layouts[0] != "" {
		layout = layouts[0]
	}
	return page.ExecuteTemplate(w, layout, data)
}

// Pages lists the loaded page names.
func (e *Engine) Pages() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.pages))
	for name := range e.pages {
		names = append(names, name)
	}
	return names
}

func (e *Engine) loaded() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.pages)
}
