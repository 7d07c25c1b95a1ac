// Package catalog owns the book, member, and transaction collections and
// implements the operations that span them: lookups, borrow, and return.
package catalog

import (
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/libris/internal/collection"
	"github.com/mesh-intelligence/libris/pkg/types"
)

// Default store names, one blob per collection.
const (
	DefaultBooksStore        = "books.jsonl"
	DefaultMembersStore      = "members.jsonl"
	DefaultTransactionsStore = "transactions.jsonl"
)

// Catalog is the single owner of the library's state. It is not safe for
// concurrent use.
type Catalog struct {
	store        types.BlobStore
	books        *collection.Collection[types.Book]
	members      *collection.Collection[types.Member]
	transactions *collection.Collection[types.Transaction]

	booksStore        string
	membersStore      string
	transactionsStore string

	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) { c.logger = l }
}

// WithClock sets the time source used for borrow and return dates.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// WithStoreNames overrides the blob names the collections persist under.
// Empty names keep their defaults.
func WithStoreNames(books, members, transactions string) Option {
	return func(c *Catalog) {
		if books != "" {
			c.booksStore = books
		}
		if members != "" {
			c.membersStore = members
		}
		if transactions != "" {
			c.transactionsStore = transactions
		}
	}
}

// New returns an empty catalog that persists to store.
func New(store types.BlobStore, opts ...Option) *Catalog {
	c := &Catalog{
		store:             store,
		books:             collection.New[types.Book](),
		members:           collection.New[types.Member](),
		transactions:      collection.New[types.Transaction](),
		booksStore:        DefaultBooksStore,
		membersStore:      DefaultMembersStore,
		transactionsStore: DefaultTransactionsStore,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:               time.Now,
		newID:             generateUUID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// generateUUID generates a new UUID v7 for transaction IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// ListBooks returns the books in insertion order.
func (c *Catalog) ListBooks() []types.Book {
	return c.books.All()
}

// SortedBooks returns the books ordered by title. Books with equal titles
// keep insertion order.
func (c *Catalog) SortedBooks() []types.Book {
	books := c.books.All()
	slices.SortStableFunc(books, types.CompareBooks)
	return books
}

// ListMembers returns the members in insertion order. The returned members
// do not share borrowed lists with the catalog.
func (c *Catalog) ListMembers() []types.Member {
	members := c.members.All()
	for i := range members {
		members[i] = members[i].Clone()
	}
	return members
}

// ListTransactions returns the borrow ledger in the order borrows happened.
func (c *Catalog) ListTransactions() []types.Transaction {
	return c.transactions.All()
}

// OpenTransactions returns the ledger entries that have no return date.
func (c *Catalog) OpenTransactions() []types.Transaction {
	var open []types.Transaction
	for _, tx := range c.transactions.All() {
		if !tx.Returned() {
			open = append(open, tx)
		}
	}
	return open
}
