package links

import (
	"book-manager/feature/catalog/models"
)

// BookCheckBoxes lists every book, checked when the author is linked to it.
func BookCheckBoxes(author *models.Author, books []models.Book) []models.CheckBox {
	linked := make(map[uint]struct{}, len(author.BookAuthors))
	for _, ba := range author.BookAuthors {
		linked[ba.BookID] = struct{}{}
	}

	boxes := make([]models.CheckBox, 0, len(books))
	for _, book := range books {
		_, checked := linked[book.ID]
		boxes = append(boxes, models.CheckBox{ID: book.ID, Label: book.Title, Checked: checked})
	}
	return boxes
}

// AuthorCheckBoxes lists every author, checked when the book is linked to them.
func AuthorCheckBoxes(book *models.Book, authors []models.Author) []models.CheckBox {
	linked := make(map[uint]struct{}, len(book.BookAuthors))
	for _, ba := range book.BookAuthors {
		linked[ba.AuthorID] = struct{}{}
	}

	boxes := make([]models.CheckBox, 0, len(authors))
	for _, author := range authors {
		_, checked := linked[author.ID]
		boxes = append(boxes, models.CheckBox{ID: author.ID, Label: author.FullName(), Checked: checked})
	}
	return boxes
}
