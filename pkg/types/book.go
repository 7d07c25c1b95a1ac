package types

import (
	"fmt"
	"strings"
)

// Book is a catalog entry. ISBN identifies a book for lookup but is not
// required to be unique.
type Book struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	PublicationYear int    `json:"publication_year"`
}

// Validate checks the fields a book must carry before it enters the catalog.
// Returns an error wrapping ErrInvalidData.
func (b Book) Validate() error {
	switch {
	case strings.TrimSpace(b.Title) == "":
		return fmt.Errorf("%w: title must not be empty", ErrInvalidData)
	case strings.TrimSpace(b.ISBN) == "":
		return fmt.Errorf("%w: isbn must not be empty", ErrInvalidData)
	case b.PublicationYear < 0:
		return fmt.Errorf("%w: publication year must not be negative", ErrInvalidData)
	}
	return nil
}

// Equal reports whether every field of b and other matches.
func (b Book) Equal(other Book) bool {
	return b == other
}

// CompareBooks orders books lexicographically by title. It is the natural
// ordering used when listing the catalog.
func CompareBooks(a, b Book) int {
	return strings.Compare(a.Title, b.Title)
}

func (b Book) String() string {
	return fmt.Sprintf("%s by %s (ISBN %s, %d)", b.Title, b.Author, b.ISBN, b.PublicationYear)
}
