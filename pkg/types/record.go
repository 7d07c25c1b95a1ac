package types

// Record is implemented by every value a collection can hold. Equal reports
// structural (field by field) equality.
type Record[T any] interface {
	Equal(other T) bool
}
