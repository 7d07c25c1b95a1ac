package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dune       = Book{Title: "Dune", ISBN: "111"}
	foundation = Book{Title: "Foundation", ISBN: "222"}
)

func TestMemberBorrowAndReturn(t *testing.T) {
	m := Member{Name: "Ann", MemberID: "M1"}

	m.Borrow(dune)
	m.Borrow(foundation)
	m.Borrow(dune)
	assert.Equal(t, 2, m.BorrowCount(dune))

	require.True(t, m.Return(dune))
	assert.Equal(t, []Book{foundation, dune}, m.BorrowedBooks, "first match is removed")

	require.True(t, m.Return(dune))
	assert.False(t, m.Return(dune), "returning a book not held is a no-op")
	assert.Equal(t, []Book{foundation}, m.BorrowedBooks)
}

func TestMemberReturnMatchesStructurally(t *testing.T) {
	m := Member{Name: "Ann", MemberID: "M1"}
	m.Borrow(dune)

	sameISBN := dune
	sameISBN.Author = "someone else"
	assert.False(t, m.Return(sameISBN))
	assert.Len(t, m.BorrowedBooks, 1)
}

func TestMemberEqual(t *testing.T) {
	a := Member{Name: "Ann", MemberID: "M1"}
	b := Member{Name: "Ann", MemberID: "M1", BorrowedBooks: []Book{}}
	assert.True(t, a.Equal(b), "nil and empty borrowed lists compare equal")

	b.Borrow(dune)
	assert.False(t, a.Equal(b))

	a.Borrow(dune)
	assert.True(t, a.Equal(b))
}

func TestMemberClone(t *testing.T) {
	m := Member{Name: "Ann", MemberID: "M1"}
	m.Borrow(dune)

	c := m.Clone()
	c.Borrow(foundation)
	c.BorrowedBooks[0].Title = "changed"

	assert.Equal(t, []Book{dune}, m.BorrowedBooks)
}

func TestMemberValidate(t *testing.T) {
	assert.NoError(t, Member{Name: "Ann", MemberID: "M1"}.Validate())
	assert.ErrorIs(t, Member{MemberID: "M1"}.Validate(), ErrInvalidData)
	assert.ErrorIs(t, Member{Name: "Ann"}.Validate(), ErrInvalidData)
}
