package types

import (
	"fmt"
	"slices"
	"strings"
)

// Member is a library patron. BorrowedBooks keeps borrow order and may hold
// the same book more than once.
type Member struct {
	Name          string `json:"name"`
	MemberID      string `json:"member_id"`
	BorrowedBooks []Book `json:"borrowed_books"`
}

// Validate checks that the member has a name and an identifier.
func (m Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidData)
	}
	if strings.TrimSpace(m.MemberID) == "" {
		return fmt.Errorf("%w: member id must not be empty", ErrInvalidData)
	}
	return nil
}

// Borrow appends b to the borrowed list.
func (m *Member) Borrow(b Book) {
	m.BorrowedBooks = append(m.BorrowedBooks, b)
}

// Return removes the first borrowed book equal to b. It reports whether a
// book was removed; returning a book that was never borrowed is a no-op.
func (m *Member) Return(b Book) bool {
	i := slices.IndexFunc(m.BorrowedBooks, b.Equal)
	if i < 0 {
		return false
	}
	m.BorrowedBooks = slices.Delete(m.BorrowedBooks, i, i+1)
	return true
}

// BorrowCount returns how many copies of b the member currently holds.
func (m Member) BorrowCount(b Book) int {
	n := 0
	for _, bb := range m.BorrowedBooks {
		if bb.Equal(b) {
			n++
		}
	}
	return n
}

// Equal compares name, identifier, and the borrowed list element by element.
// A nil and an empty borrowed list are equal.
func (m Member) Equal(other Member) bool {
	return m.Name == other.Name &&
		m.MemberID == other.MemberID &&
		slices.EqualFunc(m.BorrowedBooks, other.BorrowedBooks, Book.Equal)
}

// Clone returns a copy whose borrowed list does not share storage with m.
func (m Member) Clone() Member {
	m.BorrowedBooks = slices.Clone(m.BorrowedBooks)
	return m
}
