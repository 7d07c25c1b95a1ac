package catalog

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/libris/pkg/types"
)

// persister is the part of a collection SaveAll and LoadAll drive.
type persister interface {
	Save(store types.BlobStore, name string) error
	Load(store types.BlobStore, name string) error
}

type namedCollection struct {
	label string
	name  string
	coll  persister
}

func (c *Catalog) collections() []namedCollection {
	return []namedCollection{
		{label: "books", name: c.booksStore, coll: c.books},
		{label: "members", name: c.membersStore, coll: c.members},
		{label: "transactions", name: c.transactionsStore, coll: c.transactions},
	}
}

// SaveAll writes every collection to its store. All collections are
// attempted; the failures are joined.
func (c *Catalog) SaveAll() error {
	var errs []error
	for _, nc := range c.collections() {
		if err := nc.coll.Save(c.store, nc.name); err != nil {
			c.logger.Error("save failed", "collection", nc.label, "store", nc.name, "error", err)
			errs = append(errs, fmt.Errorf("save %s: %w", nc.label, err))
			continue
		}
		c.logger.Debug("saved", "collection", nc.label, "store", nc.name)
	}
	return errors.Join(errs...)
}

// LoadAll restores every collection from its store. A store that does not
// exist yet leaves that collection empty and is not an error. I/O and decode
// failures are joined and returned; the affected collection keeps whatever
// it held before.
func (c *Catalog) LoadAll() error {
	var errs []error
	for _, nc := range c.collections() {
		err := nc.coll.Load(c.store, nc.name)
		switch {
		case err == nil:
			c.logger.Debug("loaded", "collection", nc.label, "store", nc.name)
		case errors.Is(err, types.ErrStoreNotFound):
			c.logger.Info("no saved data, starting empty", "collection", nc.label, "store", nc.name)
		default:
			c.logger.Error("load failed", "collection", nc.label, "store", nc.name, "error", err)
			errs = append(errs, fmt.Errorf("load %s: %w", nc.label, err))
		}
	}
	return errors.Join(errs...)
}
