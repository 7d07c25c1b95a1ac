package types

// Transaction records one borrow episode. The member is referenced by
// MemberID. ReturnDate is nil while the book is still out.
type Transaction struct {
	TransactionID string `json:"transaction_id"`
	Book          Book   `json:"book"`
	MemberID      string `json:"member_id"`
	BorrowDate    Date   `json:"borrow_date"`
	ReturnDate    *Date  `json:"return_date"`
}

// Returned reports whether a return has been recorded.
func (t Transaction) Returned() bool {
	return t.ReturnDate != nil
}

// Close records the return date. A transaction closes once; a second call
// returns ErrAlreadyReturned and leaves the first date in place.
func (t *Transaction) Close(on Date) error {
	if t.Returned() {
		return ErrAlreadyReturned
	}
	t.ReturnDate = &on
	return nil
}

// Equal compares all fields, including return dates by value.
func (t Transaction) Equal(other Transaction) bool {
	if t.TransactionID != other.TransactionID ||
		!t.Book.Equal(other.Book) ||
		t.MemberID != other.MemberID ||
		!t.BorrowDate.Equal(other.BorrowDate) {
		return false
	}
	if t.ReturnDate == nil || other.ReturnDate == nil {
		return t.ReturnDate == nil && other.ReturnDate == nil
	}
	return t.ReturnDate.Equal(*other.ReturnDate)
}
