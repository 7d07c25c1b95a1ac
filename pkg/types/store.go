package types

// BlobStore is the durable byte store a collection saves to and loads from.
// Each name addresses one opaque blob.
type BlobStore interface {
	// ReadBlob returns the full content stored under name.
	// Returns an error wrapping ErrStoreNotFound if nothing was ever written.
	ReadBlob(name string) ([]byte, error)

	// WriteBlob replaces the content stored under name. Readers observe
	// either the previous content or data, never a mix.
	WriteBlob(name string, data []byte) error
}
