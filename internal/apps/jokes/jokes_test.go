package jokes

import (
	"context"
	"net/http"
	"testing"

	"github.com/dadprep/dadprep-backend/internal/apps/apptest"
	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/dadprep/dadprep-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dad = "dad@example.com"

func newService() *JokeService {
	return NewJokeService(storage.NewMemoryStore(), metrics.New())
}

func TestNavigationWraps(t *testing.T) {
	s := newService()

	assert.Equal(t, 10, s.Len())
	assert.Equal(t, 1, s.Next(0))
	assert.Equal(t, 0, s.Next(9))
	assert.Equal(t, 9, s.Prev(0))
	assert.Equal(t, 3, s.Get(13).Index)
	assert.Equal(t, 9, s.Get(-1).Index)
	assert.Equal(t, "Tooth-hurty!", s.Get(4).Joke.Punchline)
}

func TestRandomNeverRepeatsExcluded(t *testing.T) {
	s := newService()
	for pick := 0; pick < s.Len()-1; pick++ {
		s.intn = func(int) int { return pick }
		for exclude := 0; exclude < s.Len(); exclude++ {
			assert.NotEqual(t, exclude, s.Random(exclude).Index)
		}
	}

	s.intn = func(n int) int { return n - 1 }
	assert.Equal(t, 9, s.Random(0).Index)
	assert.Equal(t, 8, s.Random(9).Index)
}

func TestRandomSingleJoke(t *testing.T) {
	s := newService()
	s.jokes = s.jokes[:1]
	assert.Equal(t, 0, s.Random(0).Index)
}

func TestToggleLike(t *testing.T) {
	s := newService()
	ctx := context.Background()

	view, err := s.ToggleLike(ctx, dad, 12)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Index)
	assert.True(t, view.Liked)
	assert.True(t, s.IsLiked(ctx, dad, 2))

	_, err = s.ToggleLike(ctx, dad, 0)
	require.NoError(t, err)
	liked := s.Liked(ctx, dad)
	require.Len(t, liked, 2)
	assert.Equal(t, 0, liked[0].Index)
	assert.Equal(t, 2, liked[1].Index)

	view, err = s.ToggleLike(ctx, dad, 2)
	require.NoError(t, err)
	assert.False(t, view.Liked)
	assert.Len(t, s.Liked(ctx, dad), 1)
}

func TestRoutes(t *testing.T) {
	env := apptest.NewEnv(t)
	app := apptest.NewApp(t, env, New(env))

	var view JokeView
	status := apptest.DoJSON(t, app, http.MethodGet, "/api/jokes/10", "", nil, &view)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, view.Index)
	assert.Equal(t, 9, view.Prev)

	status = apptest.DoJSON(t, app, http.MethodGet, "/api/jokes/random?exclude=3", "", nil, &view)
	require.Equal(t, http.StatusOK, status)
	assert.NotEqual(t, 3, view.Index)

	status, _ = apptest.Do(t, app, http.MethodGet, "/api/jokes/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = apptest.Do(t, app, http.MethodPost, "/api/p/jokes/5/like", dad, nil)
	assert.Equal(t, http.StatusOK, status)

	var liked struct {
		Jokes []JokeView `json:"jokes"`
	}
	apptest.DoJSON(t, app, http.MethodGet, "/api/p/jokes/liked", dad, nil, &liked)
	require.Len(t, liked.Jokes, 1)
	assert.Equal(t, "A satisfactory!", liked.Jokes[0].Joke.Punchline)

	status, _ = apptest.Do(t, app, http.MethodGet, "/api/p/jokes/liked", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
