// Package docstore is the keyed document store the app persists its records
// in: named collections of flat documents, reached over the network.
package docstore

import (
	"context"
	"errors"
	"time"
)

// Document is the flat field-to-value mapping stored per key.
type Document map[string]any

// Record is a stored document together with the metadata the store assigns.
type Record struct {
	Key       string
	Doc       Document
	CreatedAt time.Time
}

var (
	ErrNotFound    = errors.New("document not found")
	ErrUnavailable = errors.New("document store unavailable")
)

type Store interface {
	// Create writes a new document under an explicit key.
	Create(ctx context.Context, collection, key string, doc Document) error
	// Add writes a new document under a store-generated key and returns
	// the record with its server-assigned creation time.
	Add(ctx context.Context, collection string, doc Document) (Record, error)
	Get(ctx context.Context, collection, key string) (Record, error)
	// List enumerates a whole collection. Enumeration order is the store's
	// natural order and is not guaranteed stable across calls.
	List(ctx context.Context, collection string) ([]Record, error)
	Delete(ctx context.Context, collection, key string) error
}
