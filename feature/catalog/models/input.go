package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AuthorInput carries the editable author fields.
type AuthorInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Validate checks that both names are present.
func (i AuthorInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FirstName, validation.Required.Error("first name is required"), validation.Length(1, 100)),
		validation.Field(&i.LastName, validation.Required.Error("last name is required"), validation.Length(1, 100)),
	)
}

// Apply copies the input onto an author.
func (i AuthorInput) Apply(a *Author) {
	a.FirstName = i.FirstName
	a.LastName = i.LastName
}

// BookInput carries the editable book fields.
type BookInput struct {
	Title          string    `json:"title"`
	PublishingDate time.Time `json:"publishing_date"`
	Category       Category  `json:"category"`
	PublisherID    uint      `json:"publisher_id"`
}

// Validate checks the title, category and publisher.
func (i BookInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required.Error("title is required"), validation.Length(1, 255)),
		validation.Field(&i.Category, validation.By(func(value any) error {
			if c, _ := value.(Category); !c.IsValid() {
				return validation.NewError("validation_category", "unknown category")
			}
			return nil
		})),
		validation.Field(&i.PublisherID, validation.Required.Error("publisher is required")),
	)
}

// Apply copies the input onto a book.
func (i BookInput) Apply(b *Book) {
	b.Title = i.Title
	b.PublishingDate = i.PublishingDate
	b.Category = i.Category
	b.PublisherID = i.PublisherID
}

// PublisherInput carries the editable publisher fields.
type PublisherInput struct {
	PublisherName string `json:"publisher_name"`
}

// Validate checks that the publisher has a name.
func (i PublisherInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.PublisherName, validation.Required.Error("publisher name is required"), validation.Length(1, 255)),
	)
}

// Apply copies the input onto a publisher.
func (i PublisherInput) Apply(p *Publisher) {
	p.PublisherName = i.PublisherName
}
