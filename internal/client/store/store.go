package store

import (
	"context"
	"errors"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("store closed")

// Store is the persisted key/value store the client state machines hydrate
// from and write through to. Values are opaque strings.
//
// GetString reports ok == false with a nil error when the key is absent.
// Deleting an absent key is not an error.
type Store interface {
	GetString(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// Backend is a Store that can also be wiped and released.
type Backend interface {
	Store
	Clear(ctx context.Context) error
	Close() error
}
