package models

// CheckBox is one selectable counterpart on an edit form.
type CheckBox struct {
	ID      uint   `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// AuthorIndexData backs the author list, optionally focused on one author.
type AuthorIndexData struct {
	Authors    []Author `json:"authors"`
	SelectedID uint     `json:"selected_id,omitempty"`
	Books      []Book   `json:"books,omitempty"`
}

// BookIndexData backs the book list, optionally focused on one book.
type BookIndexData struct {
	Books      []Book   `json:"books"`
	SelectedID uint     `json:"selected_id,omitempty"`
	Authors    []Author `json:"authors,omitempty"`
}

// PublisherIndexData backs the publisher list, optionally focused on one publisher.
type PublisherIndexData struct {
	Publishers []Publisher `json:"publishers"`
	SelectedID uint        `json:"selected_id,omitempty"`
	Books      []Book      `json:"books,omitempty"`
}

// AuthorForm backs the author create and edit pages.
type AuthorForm struct {
	Author Author     `json:"author"`
	Books  []CheckBox `json:"books,omitempty"`
	Errors Errors     `json:"errors,omitempty"`
}

// BookForm backs the book create and edit pages.
type BookForm struct {
	Book       Book        `json:"book"`
	Authors    []CheckBox  `json:"authors,omitempty"`
	Publishers []Publisher `json:"publishers"`
	Categories []Category  `json:"categories"`
	Errors     Errors      `json:"errors,omitempty"`
}

// PublisherForm backs the publisher create and edit pages.
type PublisherForm struct {
	Publisher Publisher `json:"publisher"`
	Errors    Errors    `json:"errors,omitempty"`
}

// PublisherDelete backs the publisher delete confirmation.
type PublisherDelete struct {
	Publisher Publisher `json:"publisher"`
	Error     string    `json:"error,omitempty"`
}

// Errors maps field names to validation messages.
type Errors map[string]string
