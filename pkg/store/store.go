// Package store provides the public factory for libris durable stores. It
// picks the BlobStore implementation named by Config.Backend while keeping
// the implementations internal.
package store

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/libris/internal/filestore"
	"github.com/mesh-intelligence/libris/internal/sqlite"
	"github.com/mesh-intelligence/libris/pkg/types"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open validates cfg and returns the BlobStore for cfg.Backend rooted at
// cfg.DataDir, together with the closer that releases it.
//
// Example:
//
//	s, closer, err := store.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: "/var/lib/libris",
//	})
//	defer closer.Close()
func Open(cfg types.Config) (types.BlobStore, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	switch cfg.Backend {
	case types.BackendSQLite:
		s, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case types.BackendFile:
		s, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}
}
