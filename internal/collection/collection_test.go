package collection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/libris/pkg/types"
)

// memStore is an in-memory BlobStore for tests.
type memStore struct {
	blobs    map[string][]byte
	readErr  error
	writeErr error
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (m *memStore) ReadBlob(name string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.blobs[name]
	if !ok {
		return nil, types.ErrStoreNotFound
	}
	return data, nil
}

func (m *memStore) WriteBlob(name string, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.blobs[name] = append([]byte(nil), data...)
	return nil
}

var testBooks = []types.Book{
	{Title: "Dune", Author: "Frank Herbert", ISBN: "111", PublicationYear: 1965},
	{Title: "Foundation", Author: "Isaac Asimov", ISBN: "222", PublicationYear: 1951},
	{Title: "Dune", Author: "Frank Herbert", ISBN: "111", PublicationYear: 1965},
	{Title: "Hyperion", Author: "Dan Simmons", ISBN: "333", PublicationYear: 1989},
}

func TestAddKeepsInsertionOrderAndDuplicates(t *testing.T) {
	c := New[types.Book]()
	for _, b := range testBooks {
		c.Add(b)
	}

	assert.Equal(t, testBooks, c.All())
	assert.Equal(t, 4, c.Len())
}

func TestAllReturnsSnapshot(t *testing.T) {
	c := New[types.Book]()
	c.Add(testBooks[0])

	snap := c.All()
	snap[0].Title = "changed"
	c.Add(testBooks[1])

	assert.Len(t, snap, 1)
	assert.Equal(t, "Dune", c.At(0).Title)
}

func TestRemoveFirstMatchOnly(t *testing.T) {
	c := New[types.Book]()
	for _, b := range testBooks {
		c.Add(b)
	}

	require.True(t, c.Remove(testBooks[0]))
	assert.Equal(t, []types.Book{testBooks[1], testBooks[2], testBooks[3]}, c.All())
}

func TestRemoveMissingIsNoop(t *testing.T) {
	c := New[types.Book]()
	for _, b := range testBooks {
		c.Add(b)
	}
	before := c.All()

	assert.False(t, c.Remove(types.Book{Title: "Missing", ISBN: "999"}))
	assert.False(t, c.Remove(types.Book{Title: "Dune", ISBN: "111"}), "partial match is not equal")
	assert.Equal(t, before, c.All())

	empty := New[types.Member]()
	assert.False(t, empty.Remove(types.Member{Name: "Ann", MemberID: "M1"}))
	assert.Empty(t, empty.All())
}

func TestIndexFindAndSet(t *testing.T) {
	c := New[types.Book]()
	for _, b := range testBooks {
		c.Add(b)
	}

	byISBN := func(isbn string) func(types.Book) bool {
		return func(b types.Book) bool { return b.ISBN == isbn }
	}

	assert.Equal(t, 0, c.Index(byISBN("111")))
	assert.Equal(t, -1, c.Index(byISBN("999")))

	got, ok := c.Find(byISBN("333"))
	require.True(t, ok)
	assert.Equal(t, "Hyperion", got.Title)

	_, ok = c.Find(byISBN("999"))
	assert.False(t, ok)

	updated := testBooks[1]
	updated.PublicationYear = 1952
	c.Set(1, updated)
	assert.Equal(t, 1952, c.At(1).PublicationYear)
}

func TestSaveLoadRoundTripBooks(t *testing.T) {
	store := newMemStore()
	c := New[types.Book]()
	for _, b := range testBooks {
		c.Add(b)
	}
	require.NoError(t, c.Save(store, "books.jsonl"))

	fresh := New[types.Book]()
	require.NoError(t, fresh.Load(store, "books.jsonl"))
	assert.Equal(t, testBooks, fresh.All())
}

func TestSaveLoadRoundTripMembers(t *testing.T) {
	store := newMemStore()
	c := New[types.Member]()
	ann := types.Member{Name: "Ann", MemberID: "M1"}
	ann.Borrow(testBooks[0])
	ann.Borrow(testBooks[0])
	bob := types.Member{Name: "Bob", MemberID: "M2"}
	c.Add(ann)
	c.Add(bob)
	require.NoError(t, c.Save(store, "members.jsonl"))

	fresh := New[types.Member]()
	require.NoError(t, fresh.Load(store, "members.jsonl"))
	got := fresh.All()
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(ann))
	assert.True(t, got[1].Equal(bob))
}

func TestSaveOverwritesPreviousContent(t *testing.T) {
	store := newMemStore()
	c := New[types.Book]()
	for _, b := range testBooks {
		c.Add(b)
	}
	require.NoError(t, c.Save(store, "books.jsonl"))

	c.RemoveAt(0)
	c.RemoveAt(0)
	require.NoError(t, c.Save(store, "books.jsonl"))

	fresh := New[types.Book]()
	require.NoError(t, fresh.Load(store, "books.jsonl"))
	assert.Equal(t, testBooks[2:], fresh.All())
}

func TestSaveEmptyCollection(t *testing.T) {
	store := newMemStore()
	require.NoError(t, New[types.Book]().Save(store, "books.jsonl"))

	fresh := New[types.Book]()
	fresh.Add(testBooks[0])
	require.NoError(t, fresh.Load(store, "books.jsonl"))
	assert.Empty(t, fresh.All())
}

func TestLoadMissingStore(t *testing.T) {
	c := New[types.Book]()
	c.Add(testBooks[0])

	err := c.Load(newMemStore(), "books.jsonl")
	assert.ErrorIs(t, err, types.ErrStoreNotFound)
	assert.NotErrorIs(t, err, types.ErrDecode)
	assert.NotErrorIs(t, err, types.ErrIO)
	assert.Empty(t, c.All())
}

func TestLoadDecodeFailureKeepsItems(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "garbage line", content: "{\"title\":\"Dune\",\"isbn\":\"111\"}\nnot json\n"},
		{name: "wrong field type", content: "{\"title\":\"Dune\",\"publication_year\":\"soon\"}\n"},
		{name: "array record", content: "[1,2,3]\n"},
		{name: "null record", content: "null\n"},
		{name: "unknown field", content: "{\"title\":\"Dune\",\"isbn\":\"111\",\"shelf\":\"B2\"}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.blobs["books.jsonl"] = []byte(tt.content)

			c := New[types.Book]()
			c.Add(testBooks[3])

			err := c.Load(store, "books.jsonl")
			assert.ErrorIs(t, err, types.ErrDecode)
			assert.NotErrorIs(t, err, types.ErrStoreNotFound)
			assert.Equal(t, []types.Book{testBooks[3]}, c.All())
		})
	}
}

func TestLoadOtherRecordTypeKeepsItems(t *testing.T) {
	store := newMemStore()
	members := New[types.Member]()
	members.Add(types.Member{Name: "Ann", MemberID: "M1", BorrowedBooks: []types.Book{testBooks[0]}})
	require.NoError(t, members.Save(store, "members.jsonl"))

	books := New[types.Book]()
	books.Add(testBooks[1])

	err := books.Load(store, "members.jsonl")
	require.ErrorIs(t, err, types.ErrDecode)
	assert.Contains(t, err.Error(), "line 1")
	assert.Equal(t, []types.Book{testBooks[1]}, books.All())
}

func TestLoadDecodeFailureReportsLine(t *testing.T) {
	store := newMemStore()
	store.blobs["books.jsonl"] = []byte("{\"title\":\"Dune\"}\n\n{oops\n")

	err := New[types.Book]().Load(store, "books.jsonl")
	require.ErrorIs(t, err, types.ErrDecode)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoadSkipsBlankLines(t *testing.T) {
	store := newMemStore()
	store.blobs["books.jsonl"] = []byte("\n{\"title\":\"Dune\",\"isbn\":\"111\"}\n\n   \n{\"title\":\"Emma\",\"isbn\":\"444\"}")

	c := New[types.Book]()
	require.NoError(t, c.Load(store, "books.jsonl"))
	assert.Equal(t, []types.Book{{Title: "Dune", ISBN: "111"}, {Title: "Emma", ISBN: "444"}}, c.All())
}

func TestLoadIOFailure(t *testing.T) {
	store := newMemStore()
	store.readErr = errors.New("disk on fire")

	c := New[types.Book]()
	c.Add(testBooks[0])

	err := c.Load(store, "books.jsonl")
	assert.ErrorIs(t, err, types.ErrIO)
	assert.NotErrorIs(t, err, types.ErrStoreNotFound)
	assert.Len(t, c.All(), 1)
}

func TestSaveIOFailure(t *testing.T) {
	store := newMemStore()
	store.writeErr = errors.New("read-only")

	c := New[types.Book]()
	c.Add(testBooks[0])

	err := c.Save(store, "books.jsonl")
	assert.ErrorIs(t, err, types.ErrIO)
	assert.Len(t, c.All(), 1)
}
