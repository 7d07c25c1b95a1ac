package catalog

import (
	"fmt"

	"github.com/mesh-intelligence/libris/pkg/types"
)

// FindBookByISBN returns the first inserted book with the given ISBN.
// Returns an error wrapping types.ErrBookNotFound on a miss.
func (c *Catalog) FindBookByISBN(isbn string) (types.Book, error) {
	b, ok := c.books.Find(func(b types.Book) bool { return b.ISBN == isbn })
	if !ok {
		return types.Book{}, fmt.Errorf("isbn %q: %w", isbn, types.ErrBookNotFound)
	}
	return b, nil
}

// FindMemberByID returns the first inserted member with the given ID.
// Returns an error wrapping types.ErrMemberNotFound on a miss.
func (c *Catalog) FindMemberByID(memberID string) (types.Member, error) {
	i := c.memberIndex(memberID)
	if i < 0 {
		return types.Member{}, fmt.Errorf("member id %q: %w", memberID, types.ErrMemberNotFound)
	}
	return c.members.At(i).Clone(), nil
}

func (c *Catalog) memberIndex(memberID string) int {
	return c.members.Index(func(m types.Member) bool { return m.MemberID == memberID })
}

// AddBook validates the fields and appends a new book. A book whose ISBN is
// already in the catalog is accepted.
func (c *Catalog) AddBook(title, author, isbn string, year int) (types.Book, error) {
	b := types.Book{Title: title, Author: author, ISBN: isbn, PublicationYear: year}
	if err := b.Validate(); err != nil {
		return types.Book{}, err
	}
	c.books.Add(b)
	c.logger.Debug("book added", "isbn", isbn, "title", title)
	return b, nil
}

// AddMember validates the fields and appends a new member with nothing
// borrowed. A duplicate member ID is accepted.
func (c *Catalog) AddMember(name, memberID string) (types.Member, error) {
	m := types.Member{Name: name, MemberID: memberID}
	if err := m.Validate(); err != nil {
		return types.Member{}, err
	}
	c.members.Add(m)
	c.logger.Debug("member added", "member_id", memberID, "name", name)
	return m, nil
}

// RemoveBook deletes the first book with the given ISBN and returns it.
// Members who borrowed it keep their copy in their borrowed list.
func (c *Catalog) RemoveBook(isbn string) (types.Book, error) {
	i := c.books.Index(func(b types.Book) bool { return b.ISBN == isbn })
	if i < 0 {
		return types.Book{}, fmt.Errorf("isbn %q: %w", isbn, types.ErrBookNotFound)
	}
	b := c.books.At(i)
	c.books.RemoveAt(i)
	c.logger.Debug("book removed", "isbn", isbn)
	return b, nil
}
