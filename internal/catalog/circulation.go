package catalog

import (
	"fmt"

	"github.com/mesh-intelligence/libris/pkg/types"
)

// Borrow appends the book with the given ISBN to the member's borrowed list
// and opens a ledger transaction dated today. Availability is not checked:
// any number of members may hold the same book.
//
// The member is looked up first, so an unknown member is reported even when
// the ISBN is also unknown.
func (c *Catalog) Borrow(memberID, isbn string) (types.Transaction, error) {
	mi, book, err := c.resolve(memberID, isbn)
	if err != nil {
		return types.Transaction{}, err
	}

	m := c.members.At(mi).Clone()
	m.Borrow(book)
	c.members.Set(mi, m)

	tx := types.Transaction{
		TransactionID: c.newID(),
		Book:          book,
		MemberID:      memberID,
		BorrowDate:    types.DateOf(c.now()),
	}
	c.transactions.Add(tx)

	c.logger.Debug("book borrowed", "member_id", memberID, "isbn", isbn, "transaction_id", tx.TransactionID)
	return tx, nil
}

// Return removes the first copy of the book from the member's borrowed list
// and reports whether one was held. Returning a book the member does not
// hold succeeds and changes nothing. When a copy is removed, the member's
// oldest open transaction for that book is closed with today's date.
func (c *Catalog) Return(memberID, isbn string) (bool, error) {
	mi, book, err := c.resolve(memberID, isbn)
	if err != nil {
		return false, err
	}

	m := c.members.At(mi).Clone()
	if !m.Return(book) {
		c.logger.Debug("return of book not held", "member_id", memberID, "isbn", isbn)
		return false, nil
	}
	c.members.Set(mi, m)
	c.closeTransaction(memberID, book)

	c.logger.Debug("book returned", "member_id", memberID, "isbn", isbn)
	return true, nil
}

// resolve looks up the member index and the book for a circulation request.
func (c *Catalog) resolve(memberID, isbn string) (int, types.Book, error) {
	mi := c.memberIndex(memberID)
	if mi < 0 {
		return -1, types.Book{}, fmt.Errorf("member id %q: %w", memberID, types.ErrMemberNotFound)
	}
	book, err := c.FindBookByISBN(isbn)
	if err != nil {
		return -1, types.Book{}, err
	}
	return mi, book, nil
}

func (c *Catalog) closeTransaction(memberID string, book types.Book) {
	i := c.transactions.Index(func(tx types.Transaction) bool {
		return !tx.Returned() && tx.MemberID == memberID && tx.Book.Equal(book)
	})
	if i < 0 {
		// Borrowed before the ledger existed.
		return
	}
	tx := c.transactions.At(i)
	if err := tx.Close(types.DateOf(c.now())); err != nil {
		c.logger.Warn("closing transaction", "transaction_id", tx.TransactionID, "error", err)
		return
	}
	c.transactions.Set(i, tx)
}
