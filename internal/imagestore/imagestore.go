// Package imagestore keeps product photos on local storage, independent of
// the remote document store's availability. Records hold only the returned
// key; the files are owned exclusively by this package.
package imagestore

import (
	"context"
	"errors"
	"image"
)

// jpegQuality matches the source photos' compression setting.
const jpegQuality = 75

// ErrNotFound signals a missing image. It is an expected, non-fatal
// condition: a record's image may not have replicated yet or may have been
// deleted, and callers fall back to a placeholder.
var ErrNotFound = errors.New("image not found")

type Store interface {
	// Save encodes the photo as JPEG and writes it under a generated
	// globally-unique key.
	Save(ctx context.Context, img image.Image) (string, error)
	Load(ctx context.Context, key string) (image.Image, error)
	// Delete removes the stored image. It is used to roll back after a
	// failed record write.
	Delete(ctx context.Context, key string) error
}
