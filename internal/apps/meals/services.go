package meals

import (
	"context"
	"slices"
	"strings"

	"github.com/dadprep/dadprep-backend/internal/apperr"
	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/dadprep/dadprep-backend/internal/state"
	"github.com/dadprep/dadprep-backend/internal/storage"
	"github.com/google/uuid"
)

const (
	mealsCollection = "user-meals"
	savedCollection = "saved-meals"
)

var (
	ErrNameRequired = apperr.NewValidation("Please enter a meal name.")
	ErrInvalidType  = apperr.NewValidation("Meal type must be breakfast, lunch, dinner or snack.")
)

type MealService struct {
	meals *state.Hook[Meal]
	saved *state.Set
}

func NewMealService(store storage.Store, m *metrics.Metrics) *MealService {
	return &MealService{
		meals: state.NewHook[Meal](mealsCollection, store, m, Builtin),
		saved: state.NewSet(savedCollection, store, m),
	}
}

// List returns built-in meals followed by the owner's, filtered by type
// ("all" or empty for every type) and search query.
func (s *MealService) List(ctx context.Context, owner, mealType, query string) ([]MealView, error) {
	keep := func(Meal) bool { return true }
	if mealType != "" && !strings.EqualFold(mealType, "all") {
		t, err := parseType(MealType(mealType))
		if err != nil {
			return nil, err
		}
		keep = func(m Meal) bool { return m.Type == t }
	}

	saved := s.saved.Members(ctx, owner)
	out := []MealView{}
	for _, m := range s.meals.Load(ctx, owner).All() {
		if keep(m) && Matches(m, query) {
			out = append(out, MealView{Meal: m, Saved: slices.Contains(saved, m.ID)})
		}
	}
	return out, nil
}

// Matches reports whether query is a case-insensitive substring of the
// meal's name or description.
func Matches(m Meal, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), q) ||
		strings.Contains(strings.ToLower(m.Description), q)
}

func (s *MealService) AddMeal(ctx context.Context, owner string, req AddMealRequest) (Meal, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Meal{}, ErrNameRequired
	}
	t, err := parseType(req.Type)
	if err != nil {
		return Meal{}, err
	}

	nutrients := []string{}
	for _, n := range req.Nutrients {
		if n = strings.TrimSpace(n); n != "" {
			nutrients = append(nutrients, n)
		}
	}

	meal := Meal{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Type:        t,
		PrepTime:    strings.TrimSpace(req.PrepTime),
		Nutrients:   nutrients,
		UserAdded:   true,
	}
	if err := s.meals.Load(ctx, owner).Add(ctx, meal); err != nil {
		return Meal{}, err
	}
	return meal, nil
}

// RemoveMeal deletes one of the owner's meals. Built-in meals are read only.
func (s *MealService) RemoveMeal(ctx context.Context, owner, id string) error {
	return s.meals.Load(ctx, owner).Remove(ctx, id)
}

// ToggleSaved flips a meal on the owner's saved list and reports whether it
// is saved afterwards.
func (s *MealService) ToggleSaved(ctx context.Context, owner, id string) (Meal, bool, error) {
	meal, ok := s.meals.Load(ctx, owner).Find(id)
	if !ok {
		return Meal{}, false, state.ErrNotFound
	}
	saved, err := s.saved.Toggle(ctx, owner, id)
	return meal, saved, err
}

// Saved returns the owner's saved meals that still exist.
func (s *MealService) Saved(ctx context.Context, owner string) []Meal {
	meals := s.meals.Load(ctx, owner)
	out := []Meal{}
	for _, id := range s.saved.Members(ctx, owner) {
		if m, ok := meals.Find(id); ok {
			out = append(out, m)
		}
	}
	return out
}

func parseType(t MealType) (MealType, error) {
	t = MealType(strings.ToLower(strings.TrimSpace(string(t))))
	if slices.Contains(mealTypes, t) {
		return t, nil
	}
	return "", ErrInvalidType
}
