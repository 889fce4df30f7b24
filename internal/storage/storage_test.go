package storage

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/dadprep/dadprep-backend/internal/database"
	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

type failingStore struct{ err error }

func (f failingStore) Load(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Save(context.Context, string, []byte) error   { return f.err }

func newSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.MigrateShared(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return NewSQLStore(db)
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	out := map[string]Store{
		"memory": NewMemoryStore(),
		"sql":    newSQLStore(t),
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		t.Cleanup(func() { _ = client.Close() })
		out["redis"] = NewRedisStore(client)
	}
	return out
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "registry-items-dad@example.com", NewKey("registry-items", "dad@example.com").String())
	assert.Equal(t, "babyNames", NewKey("babyNames", "").String())
}

func TestStores(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			key := "test-" + name + "-roundtrip"

			_, err := s.Load(ctx, key+"-missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Save(ctx, key, []byte(`[1]`)))
			require.NoError(t, s.Save(ctx, key, []byte(`[1,2]`)))

			got, err := s.Load(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, `[1,2]`, string(got))
		})
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			repo := NewRepository[[]item](s, metrics.New())
			key := NewKey("registry-items", name+"@example.com")
			want := []item{{ID: "1", Price: 149.95}, {ID: "2", Price: 0}}

			require.NoError(t, repo.Put(ctx, key, want))
			assert.Equal(t, want, repo.Get(ctx, key, nil))
		})
	}
}

func TestRepositoryMalformedFallsBack(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	m := metrics.New()
	repo := NewRepository[[]item](s, m)
	key := NewKey("registry-items", "dad@example.com")

	require.NoError(t, s.Save(ctx, key.String(), []byte(`{not json`)))

	def := []item{{ID: "default"}}
	assert.NotPanics(t, func() {
		assert.Equal(t, def, repo.Get(ctx, key, def))
	})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreFallbacks.WithLabelValues("registry-items", "malformed")))
}

func TestRepositoryMissingReturnsDefault(t *testing.T) {
	repo := NewRepository[map[string]string](NewMemoryStore(), nil)
	got := repo.Get(context.Background(), NewKey("payment-links", "x"), map[string]string{"a": "b"})
	assert.Equal(t, map[string]string{"a": "b"}, got)
}

func TestRepositoryBackendFailure(t *testing.T) {
	ctx := context.Background()
	m := metrics.New()
	repo := NewRepository[[]item](failingStore{err: errors.New("connection refused")}, m)
	key := NewKey("registry-items", "dad@example.com")

	assert.Empty(t, repo.Get(ctx, key, nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreFallbacks.WithLabelValues("registry-items", "unavailable")))

	err := repo.Put(ctx, key, []item{{ID: "1"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperations.WithLabelValues("save", "error")))
}
