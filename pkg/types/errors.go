package types

import "errors"

// Lookup errors. ErrBookNotFound and ErrMemberNotFound both match ErrNotFound
// under errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrBookNotFound   = notFound("book not found")
	ErrMemberNotFound = notFound("member not found")
)

// Persistence errors.
var (
	ErrStoreNotFound = errors.New("store not found")
	ErrIO            = errors.New("store i/o failure")
	ErrDecode        = errors.New("store content cannot be decoded")
)

// Entity errors.
var (
	ErrInvalidData     = errors.New("invalid entity data")
	ErrAlreadyReturned = errors.New("transaction already returned")
)

type notFoundError string

func notFound(msg string) error { return notFoundError(msg) }

func (e notFoundError) Error() string { return string(e) }

func (e notFoundError) Is(target error) bool { return target == ErrNotFound }
