package models

import (
	"strconv"
	"time"
)

// DateLayout is the form and display layout of a publishing date.
const DateLayout = "2006-01-02"

// Author represents the 'authors' table.
type Author struct {
	ID          uint         `gorm:"column:id;primaryKey" json:"id"`
	FirstName   string       `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	LastName    string       `gorm:"column:last_name;type:varchar(100);not null" json:"last_name"`
	BookAuthors []BookAuthor `gorm:"foreignKey:AuthorID" json:"book_authors,omitempty"`
}

// TableName overrides the table name for authors.
func (Author) TableName() string {
	return "authors"
}

// FullName is "Last, First". It is derived from the name fields and never stored.
func (a Author) FullName() string {
	return a.LastName + ", " + a.FirstName
}

// Key returns the author id as a reconcile key.
func (a Author) Key() string {
	return strconv.FormatUint(uint64(a.ID), 10)
}

// Books returns the books reached through the loaded join records.
func (a Author) Books() []Book {
	books := make([]Book, 0, len(a.BookAuthors))
	for _, ba := range a.BookAuthors {
		if ba.Book != nil {
			books = append(books, *ba.Book)
		}
	}
	return books
}

// Book represents the 'books' table.
type Book struct {
	ID             uint         `gorm:"column:id;primaryKey" json:"id"`
	Title          string       `gorm:"column:title;type:varchar(255);not null" json:"title"`
	PublishingDate time.Time    `gorm:"column:publishing_date" json:"publishing_date"`
	Category       Category     `gorm:"column:category;not null;default:0" json:"category"`
	PublisherID    uint         `gorm:"column:publisher_id;not null;index" json:"publisher_id"`
	Publisher      *Publisher   `gorm:"foreignKey:PublisherID" json:"publisher,omitempty"`
	BookAuthors    []BookAuthor `gorm:"foreignKey:BookID" json:"book_authors,omitempty"`
}

// TableName overrides the table name for books.
func (Book) TableName() string {
	return "books"
}

// Key returns the book id as a reconcile key.
func (b Book) Key() string {
	return strconv.FormatUint(uint64(b.ID), 10)
}

// PublishingDateString formats the publishing date for forms and listings.
func (b Book) PublishingDateString() string {
	if b.PublishingDate.IsZero() {
		return ""
	}
	return b.PublishingDate.Format(DateLayout)
}

// Authors returns the authors reached through the loaded join records.
func (b Book) Authors() []Author {
	authors := make([]Author, 0, len(b.BookAuthors))
	for _, ba := range b.BookAuthors {
		if ba.Author != nil {
			authors = append(authors, *ba.Author)
		}
	}
	return authors
}

// Publisher represents the 'publishers' table.
type Publisher struct {
	ID            uint   `gorm:"column:id;primaryKey" json:"id"`
	PublisherName string `gorm:"column:publisher_name;type:varchar(255);not null" json:"publisher_name"`
	Books         []Book `gorm:"foreignKey:PublisherID" json:"books,omitempty"`
}

// TableName overrides the table name for publishers.
func (Publisher) TableName() string {
	return "publishers"
}

// Key returns the publisher id as a string key.
func (p Publisher) Key() string {
	return strconv.FormatUint(uint64(p.ID), 10)
}

// BookAuthor is the join record between a book and one of its authors.
// The composite primary key keeps each pair unique.
type BookAuthor struct {
	BookID   uint    `gorm:"column:book_id;primaryKey;autoIncrement:false" json:"book_id"`
	AuthorID uint    `gorm:"column:author_id;primaryKey;autoIncrement:false;index" json:"author_id"`
	Book     *Book   `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Author   *Author `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName overrides the table name for the join entity.
func (BookAuthor) TableName() string {
	return "book_authors"
}

// All lists every catalog model in migration order.
func All() []any {
	return []any{&Publisher{}, &Author{}, &Book{}, &BookAuthor{}}
}
