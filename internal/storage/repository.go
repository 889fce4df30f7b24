package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dadprep/dadprep-backend/internal/metrics"
)

// Repository is a typed view over a Store. Reads never fail: anything that
// cannot be loaded and decoded yields the caller's default.
type Repository[T any] struct {
	store   Store
	metrics *metrics.Metrics
}

func NewRepository[T any](store Store, m *metrics.Metrics) *Repository[T] {
	return &Repository[T]{store: store, metrics: m}
}

func (r *Repository[T]) Get(ctx context.Context, key Key, def T) T {
	raw, err := r.store.Load(ctx, key.String())
	if errors.Is(err, ErrNotFound) {
		r.metrics.ObserveStore("load", nil)
		return def
	}
	r.metrics.ObserveStore("load", err)
	if err != nil {
		slog.ErrorContext(ctx, "store load failed, using default",
			"collection", key.Collection, "user_email", key.Owner, "error", err)
		r.metrics.ObserveFallback(key.Collection, "unavailable")
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.WarnContext(ctx, "malformed stored document, using default",
			"collection", key.Collection, "user_email", key.Owner, "error", err)
		r.metrics.ObserveFallback(key.Collection, "malformed")
		return def
	}
	return v
}

func (r *Repository[T]) Put(ctx context.Context, key Key, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrUnavailable, key.Collection, err)
	}
	err = r.store.Save(ctx, key.String(), raw)
	r.metrics.ObserveStore("save", err)
	if err != nil {
		slog.ErrorContext(ctx, "store save failed",
			"collection", key.Collection, "user_email", key.Owner, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
