package state

import (
	"context"
	"errors"
	"testing"

	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/dadprep/dadprep-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type meal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (m meal) EntityID() string { return m.ID }

type brokenStore struct {
	storage.Store
	failSave bool
}

func (b *brokenStore) Save(ctx context.Context, key string, data []byte) error {
	if b.failSave {
		return errors.New("disk full")
	}
	return b.Store.Save(ctx, key, data)
}

func builtins() []meal {
	return []meal{{ID: "builtin-1", Name: "Smoothie"}}
}

func TestHookMergesDefaultsFirst(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	hook := NewHook[meal]("user-meals", store, metrics.New(), builtins)

	c := hook.Load(ctx, "dad@example.com")
	require.NoError(t, c.Add(ctx, meal{ID: "a", Name: "Tacos"}))
	require.NoError(t, c.Add(ctx, meal{ID: "b", Name: "Soup"}))

	reloaded := hook.Load(ctx, "dad@example.com")
	assert.Equal(t, []meal{
		{ID: "builtin-1", Name: "Smoothie"},
		{ID: "a", Name: "Tacos"},
		{ID: "b", Name: "Soup"},
	}, reloaded.All())
	assert.Len(t, reloaded.Stored(), 2)

	raw, err := store.Load(ctx, "user-meals-dad@example.com")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "builtin-1")
}

func TestHookOwnersAreIsolated(t *testing.T) {
	ctx := context.Background()
	hook := NewHook[meal]("user-meals", storage.NewMemoryStore(), nil, nil)

	require.NoError(t, hook.Load(ctx, "a@example.com").Add(ctx, meal{ID: "1"}))
	assert.Empty(t, hook.Load(ctx, "b@example.com").All())
}

func TestCollectionRemoveAndUpdate(t *testing.T) {
	ctx := context.Background()
	hook := NewHook[meal]("user-meals", storage.NewMemoryStore(), nil, builtins)
	c := hook.Load(ctx, "dad@example.com")
	require.NoError(t, c.Add(ctx, meal{ID: "a", Name: "Tacos"}))

	require.NoError(t, c.Update(ctx, "a", func(m meal) (meal, error) {
		m.Name = "Fish tacos"
		return m, nil
	}))
	got, ok := c.Find("a")
	require.True(t, ok)
	assert.Equal(t, "Fish tacos", got.Name)

	rejected := errors.New("rejected")
	err := c.Update(ctx, "a", func(m meal) (meal, error) { return m, rejected })
	assert.ErrorIs(t, err, rejected)

	assert.ErrorIs(t, c.Remove(ctx, "builtin-1"), ErrReadOnly)
	assert.ErrorIs(t, c.Remove(ctx, "missing"), ErrNotFound)
	require.NoError(t, c.Remove(ctx, "a"))
	assert.Equal(t, builtins(), hook.Load(ctx, "dad@example.com").All())
}

func TestCollectionSaveFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	store := &brokenStore{Store: storage.NewMemoryStore()}
	hook := NewHook[meal]("user-meals", store, nil, nil)
	c := hook.Load(ctx, "dad@example.com")
	require.NoError(t, c.Add(ctx, meal{ID: "a"}))

	store.failSave = true
	err := c.Add(ctx, meal{ID: "b"})
	assert.ErrorIs(t, err, storage.ErrUnavailable)
	assert.Equal(t, []meal{{ID: "a"}}, c.All())
}

func TestHookMalformedStoredDataUsesDefaults(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "user-meals-dad@example.com", []byte("oops")))

	c := NewHook[meal]("user-meals", store, nil, builtins).Load(ctx, "dad@example.com")
	assert.Equal(t, builtins(), c.All())
}

type settings struct {
	Venmo string `json:"venmo,omitempty"`
}

func TestDocument(t *testing.T) {
	ctx := context.Background()
	doc := NewDocument[settings]("payment-links", storage.NewMemoryStore(), nil, func() settings { return settings{} })

	assert.Equal(t, settings{}, doc.Load(ctx, "dad@example.com"))
	require.NoError(t, doc.Save(ctx, "dad@example.com", settings{Venmo: "@dad"}))
	assert.Equal(t, settings{Venmo: "@dad"}, doc.Load(ctx, "dad@example.com"))
}

func TestSetToggle(t *testing.T) {
	ctx := context.Background()
	set := NewSet("favoriteNames", storage.NewMemoryStore(), nil)

	on, err := set.Toggle(ctx, "dad@example.com", "Emma")
	require.NoError(t, err)
	assert.True(t, on)
	_, err = set.Toggle(ctx, "dad@example.com", "Liam")
	require.NoError(t, err)
	assert.Equal(t, []string{"Emma", "Liam"}, set.Members(ctx, "dad@example.com"))

	on, err = set.Toggle(ctx, "dad@example.com", "Emma")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Equal(t, []string{"Liam"}, set.Members(ctx, "dad@example.com"))
}
