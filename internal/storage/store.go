// Package storage persists per-user JSON documents behind a small key/value
// contract with interchangeable backends.
package storage

import (
	"context"
	"errors"

	"github.com/dadprep/dadprep-backend/internal/apperr"
)

var (
	// ErrNotFound is returned by Load when nothing is stored under the key.
	ErrNotFound = errors.New("storage: key not found")
	// ErrUnavailable wraps backend failures surfaced to callers.
	ErrUnavailable = apperr.NewUnavailable("storage: backend unavailable")
)

// Store reads and writes raw JSON documents.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Key names one document: a collection, optionally scoped to an owner.
type Key struct {
	Collection string
	Owner      string
}

func NewKey(collection, owner string) Key {
	return Key{Collection: collection, Owner: owner}
}

// String renders the persisted form "<collection>-<owner>", or just the
// collection when there is no owner.
func (k Key) String() string {
	if k.Owner == "" {
		return k.Collection
	}
	return k.Collection + "-" + k.Owner
}
