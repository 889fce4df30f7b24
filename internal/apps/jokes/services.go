package jokes

import (
	"context"
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/dadprep/dadprep-backend/internal/state"
	"github.com/dadprep/dadprep-backend/internal/storage"
)

const likedCollection = "liked-jokes"

type JokeService struct {
	jokes []Joke
	liked *state.Set
	intn  func(n int) int
}

func NewJokeService(store storage.Store, m *metrics.Metrics) *JokeService {
	return &JokeService{
		jokes: dadJokes,
		liked: state.NewSet(likedCollection, store, m),
		intn:  rand.IntN,
	}
}

func (s *JokeService) All() []Joke { return append([]Joke(nil), s.jokes...) }

func (s *JokeService) Len() int { return len(s.jokes) }

// Wrap maps any integer onto a valid index.
func (s *JokeService) Wrap(i int) int {
	n := len(s.jokes)
	return ((i % n) + n) % n
}

func (s *JokeService) Get(i int) JokeView {
	i = s.Wrap(i)
	return JokeView{Index: i, Next: s.Next(i), Prev: s.Prev(i), Joke: s.jokes[i]}
}

func (s *JokeService) Next(i int) int { return s.Wrap(i + 1) }

func (s *JokeService) Prev(i int) int { return s.Wrap(i - 1) }

// Random picks any joke other than exclude, unless only one exists.
func (s *JokeService) Random(exclude int) JokeView {
	n := len(s.jokes)
	if n == 1 {
		return s.Get(0)
	}
	exclude = s.Wrap(exclude)
	i := s.intn(n - 1)
	if i >= exclude {
		i++
	}
	return s.Get(i)
}

// ToggleLike flips a joke on the owner's liked list.
func (s *JokeService) ToggleLike(ctx context.Context, owner string, i int) (JokeView, error) {
	view := s.Get(i)
	liked, err := s.liked.Toggle(ctx, owner, strconv.Itoa(view.Index))
	view.Liked = liked
	return view, err
}

// Liked returns the owner's liked jokes in list order.
func (s *JokeService) Liked(ctx context.Context, owner string) []JokeView {
	members := s.liked.Members(ctx, owner)
	out := []JokeView{}
	for i := range s.jokes {
		if slices.Contains(members, strconv.Itoa(i)) {
			view := s.Get(i)
			view.Liked = true
			out = append(out, view)
		}
	}
	return out
}

func (s *JokeService) IsLiked(ctx context.Context, owner string, i int) bool {
	return slices.Contains(s.liked.Members(ctx, owner), strconv.Itoa(s.Wrap(i)))
}
