// Package state keeps a per-user collection in step with the blob store:
// load once, mutate a copy, save, then swap the copy in.
package state

import (
	"context"

	"github.com/dadprep/dadprep-backend/internal/apperr"
	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/dadprep/dadprep-backend/internal/storage"
)

var (
	ErrNotFound = apperr.NewNotFound("item not found")
	ErrReadOnly = apperr.NewForbidden("built-in items cannot be changed")
)

// Entity is anything stored in a Collection.
type Entity interface {
	EntityID() string
}

// Hook loads collections of T for one feature.
type Hook[T Entity] struct {
	collection string
	repo       *storage.Repository[[]T]
	metrics    *metrics.Metrics
	defaults   func() []T
}

// NewHook binds a collection name to a store. defaults may be nil; when set
// its items are listed first and are never persisted.
func NewHook[T Entity](collection string, store storage.Store, m *metrics.Metrics, defaults func() []T) *Hook[T] {
	return &Hook[T]{
		collection: collection,
		repo:       storage.NewRepository[[]T](store, m),
		metrics:    m,
		defaults:   defaults,
	}
}

func (h *Hook[T]) Collection() string { return h.collection }

// Load reads the owner's stored items. It never fails; unreadable data
// leaves only the defaults.
func (h *Hook[T]) Load(ctx context.Context, owner string) *Collection[T] {
	var defaults []T
	if h.defaults != nil {
		defaults = h.defaults()
	}
	key := storage.NewKey(h.collection, owner)
	return &Collection[T]{
		hook:     h,
		key:      key,
		defaults: defaults,
		stored:   h.repo.Get(ctx, key, nil),
	}
}

// Collection is one owner's loaded items.
type Collection[T Entity] struct {
	hook     *Hook[T]
	key      storage.Key
	defaults []T
	stored   []T
}

// All returns defaults followed by stored items.
func (c *Collection[T]) All() []T {
	out := make([]T, 0, len(c.defaults)+len(c.stored))
	out = append(out, c.defaults...)
	return append(out, c.stored...)
}

// Stored returns only the items the owner created.
func (c *Collection[T]) Stored() []T {
	return append([]T(nil), c.stored...)
}

func (c *Collection[T]) Len() int { return len(c.defaults) + len(c.stored) }

func (c *Collection[T]) Find(id string) (T, bool) {
	for _, list := range [][]T{c.defaults, c.stored} {
		for _, item := range list {
			if item.EntityID() == id {
				return item, true
			}
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) IsDefault(id string) bool {
	for _, item := range c.defaults {
		if item.EntityID() == id {
			return true
		}
	}
	return false
}

func (c *Collection[T]) Add(ctx context.Context, item T) error {
	next := make([]T, 0, len(c.stored)+1)
	next = append(next, c.stored...)
	next = append(next, item)
	return c.commit(ctx, "add", next)
}

func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	idx, err := c.indexOf(id)
	if err != nil {
		return err
	}
	next := make([]T, 0, len(c.stored)-1)
	next = append(next, c.stored[:idx]...)
	next = append(next, c.stored[idx+1:]...)
	return c.commit(ctx, "remove", next)
}

// Update applies patch to a copy of the item. A patch error rejects the
// update without saving.
func (c *Collection[T]) Update(ctx context.Context, id string, patch func(T) (T, error)) error {
	idx, err := c.indexOf(id)
	if err != nil {
		return err
	}
	updated, err := patch(c.stored[idx])
	if err != nil {
		return err
	}
	next := append([]T(nil), c.stored...)
	next[idx] = updated
	return c.commit(ctx, "update", next)
}

func (c *Collection[T]) indexOf(id string) (int, error) {
	if c.IsDefault(id) {
		return -1, ErrReadOnly
	}
	for i, item := range c.stored {
		if item.EntityID() == id {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

func (c *Collection[T]) commit(ctx context.Context, action string, next []T) error {
	err := c.hook.repo.Put(ctx, c.key, next)
	c.hook.metrics.ObserveMutation(c.hook.collection, action, err)
	if err != nil {
		return err
	}
	c.stored = next
	return nil
}
