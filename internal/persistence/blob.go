package persistence

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by BlobStore.Get when the key holds no value.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is a string-keyed store holding one opaque value per key.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}
