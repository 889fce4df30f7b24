package state

import (
	"context"

	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/dadprep/dadprep-backend/internal/storage"
)

// Document is a single per-user value such as settings or progress.
type Document[T any] struct {
	collection string
	repo       *storage.Repository[T]
	metrics    *metrics.Metrics
	def        func() T
}

func NewDocument[T any](collection string, store storage.Store, m *metrics.Metrics, def func() T) *Document[T] {
	return &Document[T]{
		collection: collection,
		repo:       storage.NewRepository[T](store, m),
		metrics:    m,
		def:        def,
	}
}

func (d *Document[T]) Load(ctx context.Context, owner string) T {
	return d.repo.Get(ctx, storage.NewKey(d.collection, owner), d.def())
}

func (d *Document[T]) Save(ctx context.Context, owner string, v T) error {
	err := d.repo.Put(ctx, storage.NewKey(d.collection, owner), v)
	d.metrics.ObserveMutation(d.collection, "save", err)
	return err
}
