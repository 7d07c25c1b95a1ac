// This file provides whole-collection persistence in JSONL form: one record
// per line, written and read as a single blob.
package collection

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/mesh-intelligence/libris/pkg/types"
)

// json matches encoding/json output but rejects fields the record type does
// not declare, so a blob written for another record type fails to decode.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
}.Froze()

// maxLineSize bounds a single encoded record.
const maxLineSize = 16 << 20

// Save encodes every item and writes the result under name, replacing any
// previous content. Failures wrap types.ErrIO.
func (c *Collection[T]) Save(store types.BlobStore, name string) error {
	data, err := Encode(c.items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := store.WriteBlob(name, data); err != nil {
		return fmt.Errorf("%w: saving %s: %w", types.ErrIO, name, err)
	}
	return nil
}

// Load replaces the items with the sequence stored under name.
//
// If name was never written the collection is emptied and the returned error
// wraps types.ErrStoreNotFound. If the content cannot be decoded the error
// wraps types.ErrDecode and the items are left as they were. Any other read
// failure wraps types.ErrIO, also leaving the items untouched.
func (c *Collection[T]) Load(store types.BlobStore, name string) error {
	data, err := store.ReadBlob(name)
	if err != nil {
		if errors.Is(err, types.ErrStoreNotFound) {
			c.items = nil
			return fmt.Errorf("loading %s: %w", name, err)
		}
		return fmt.Errorf("%w: loading %s: %w", types.ErrIO, name, err)
	}

	items, err := Decode[T](data)
	if err != nil {
		return fmt.Errorf("loading %s: %w", name, err)
	}
	c.items = items
	return nil
}

// Encode renders items as JSONL.
func Encode[T any](items []T) ([]byte, error) {
	var buf bytes.Buffer
	for i, item := range items {
		rec, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		buf.Write(rec)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Decode parses JSONL into a fresh slice. Blank lines are skipped. Any line
// that is not a valid encoding of T fails the whole decode with an error
// wrapping types.ErrDecode.
func Decode[T any](data []byte) ([]T, error) {
	var items []T
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		if raw[0] != '{' {
			return nil, fmt.Errorf("%w: line %d: record is not an object", types.ErrDecode, line)
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", types.ErrDecode, line, err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", types.ErrDecode, line+1, err)
	}
	return items, nil
}
