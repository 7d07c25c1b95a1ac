// Package types defines the record types, the BlobStore interface, the
// configuration, and the standard errors for the libris catalog.
package types
