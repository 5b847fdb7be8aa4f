package repository

import (
	"context"
	"errors"
)

var ErrEmptyKey = errors.New("key cannot be empty")

// flat string key-value storage, the durable side of the widget
type KVStore interface {
	// ok is false when the key was never written
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
