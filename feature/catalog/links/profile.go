package links

// Profile describes one direction of the book_authors relation.
type Profile struct {
	// Name is the reconcile relation name.
	Name string

	// OwnerTable is the table of the entity whose links are edited.
	OwnerTable string

	// OwnerColumn is the join column referencing the owner.
	OwnerColumn string

	// CounterpartTable is the table that forms the universe.
	CounterpartTable string

	// CounterpartColumn is the join column referencing the counterpart.
	CounterpartColumn string
}

// JoinTable is the many-to-many join table between books and authors.
const JoinTable = "book_authors"

// AuthorBooks edits an author's books; the universe is every book.
func AuthorBooks() Profile {
	return Profile{
		Name:              "author_books",
		OwnerTable:        "authors",
		OwnerColumn:       "author_id",
		CounterpartTable:  "books",
		CounterpartColumn: "book_id",
	}
}

// BookAuthors edits a book's authors; the universe is every author.
func BookAuthors() Profile {
	return Profile{
		Name:              "book_authors",
		OwnerTable:        "books",
		OwnerColumn:       "book_id",
		CounterpartTable:  "authors",
		CounterpartColumn: "author_id",
	}
}

// GetProfileByName resolves a profile from its relation name or owner alias.
func GetProfileByName(name string) (Profile, bool) {
	switch name {
	case "author_books", "author", "authors":
		return AuthorBooks(), true
	case "book_authors", "book", "books":
		return BookAuthors(), true
	default:
		return Profile{}, false
	}
}
