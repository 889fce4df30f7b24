package state

import (
	"context"
	"slices"

	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/dadprep/dadprep-backend/internal/storage"
)

// Set is a per-user list of unique strings, used for favorites and likes.
type Set struct {
	doc *Document[[]string]
}

func NewSet(collection string, store storage.Store, m *metrics.Metrics) *Set {
	return &Set{doc: NewDocument[[]string](collection, store, m, func() []string { return nil })}
}

func (s *Set) Members(ctx context.Context, owner string) []string {
	return s.doc.Load(ctx, owner)
}

// Toggle adds value when absent and removes it when present. It reports
// whether value is a member afterwards.
func (s *Set) Toggle(ctx context.Context, owner, value string) (bool, error) {
	current := s.doc.Load(ctx, owner)
	idx := slices.Index(current, value)
	var next []string
	if idx >= 0 {
		next = slices.Delete(slices.Clone(current), idx, idx+1)
	} else {
		next = append(slices.Clone(current), value)
	}
	if err := s.doc.Save(ctx, owner, next); err != nil {
		return idx >= 0, err
	}
	return idx < 0, nil
}
