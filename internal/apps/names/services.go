package names

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dadprep/dadprep-backend/internal/apperr"
	"github.com/dadprep/dadprep-backend/internal/apps/registry"
	"github.com/dadprep/dadprep-backend/internal/services"
	"github.com/dadprep/dadprep-backend/internal/state"
	"github.com/google/uuid"
)

const (
	TabAll       = "all"
	TabBoys      = "boys"
	TabGirls     = "girls"
	TabNeutral   = "neutral"
	TabFavorites = "favorites"
	TabPersonal  = "personal"
)

var (
	ErrNameRequired  = apperr.NewValidation("Please enter a name.")
	ErrInvalidGender = apperr.NewValidation("Gender must be boy, girl or neutral.")
	ErrInvalidWallet = apperr.NewValidation("Invalid wallet address: Please enter a valid address")
	ErrDuplicateName = apperr.NewConflict("That name is already in your list.")
	ErrInvalidTab    = apperr.NewValidation("Unknown tab.")
)

var namingTips = []string{
	"Consider the meaning and origin of the name",
	"Think about potential nicknames and initials",
	"Say it out loud to test how it sounds with your last name",
	"Consider family names or cultural traditions that are meaningful to you",
}

func Tips() []string { return append([]string(nil), namingTips...) }

type NamesService struct {
	catalog   Catalog
	personal  PersonalStore
	favorites *state.Set
	filter    *services.ContentFilter
	now       func() time.Time
}

func NewNamesService(catalog Catalog, personal PersonalStore, favorites *state.Set, filter *services.ContentFilter, now func() time.Time) *NamesService {
	return &NamesService{catalog: catalog, personal: personal, favorites: favorites, filter: filter, now: now}
}

// Catalog returns the public names. A failing remote catalog falls back
// to the bundled one.
func (s *NamesService) Catalog(ctx context.Context) []BabyName {
	list, err := s.catalog.List(ctx)
	if err != nil {
		slog.Warn("baby name catalog unavailable, using built-in names", "error", err)
		return Builtin()
	}
	if len(list) == 0 {
		return Builtin()
	}
	return list
}

// Personal lists the owner's own names. Read failures leave an empty list.
func (s *NamesService) Personal(ctx context.Context, owner string) []PersonalBabyName {
	list, err := s.personal.List(ctx, owner)
	if err != nil {
		slog.Warn("personal names unavailable", "user_email", owner, "error", err)
		return nil
	}
	return list
}

// Explore merges catalog and personal names, marks favorites and narrows
// the result to one tab and a search query.
func (s *NamesService) Explore(ctx context.Context, owner, tab, query string) ([]NameView, error) {
	if tab == "" {
		tab = TabAll
	}
	keep, err := tabFilter(tab)
	if err != nil {
		return nil, err
	}

	favs := make(map[string]bool)
	for _, name := range s.favorites.Members(ctx, owner) {
		favs[name] = true
	}

	var views []NameView
	for _, n := range s.Catalog(ctx) {
		views = append(views, NameView{
			Name: n.Name, Meaning: n.Meaning, Origin: n.Origin, Gender: n.Gender,
			IsFavorite: favs[n.Name],
		})
	}
	for _, n := range s.Personal(ctx, owner) {
		views = append(views, NameView{
			ID: n.ID.String(), Name: n.Name, Meaning: n.Meaning, Origin: n.Origin, Gender: n.Gender,
			Notes: n.Notes, WalletAddress: n.WalletAddress,
			Personal: true, IsFavorite: favs[n.Name],
		})
	}

	out := []NameView{}
	for _, v := range views {
		if keep(v) && Matches(v, query) {
			out = append(out, v)
		}
	}
	return out, nil
}

func tabFilter(tab string) (func(NameView) bool, error) {
	switch strings.ToLower(tab) {
	case TabAll:
		return func(NameView) bool { return true }, nil
	case TabBoys:
		return func(v NameView) bool { return v.Gender == GenderBoy }, nil
	case TabGirls:
		return func(v NameView) bool { return v.Gender == GenderGirl }, nil
	case TabNeutral:
		return func(v NameView) bool { return v.Gender == GenderNeutral }, nil
	case TabFavorites:
		return func(v NameView) bool { return v.IsFavorite }, nil
	case TabPersonal:
		return func(v NameView) bool { return v.Personal }, nil
	}
	return nil, ErrInvalidTab
}

// Matches reports whether query is a case-insensitive substring of the
// name, meaning or origin. An empty query matches everything.
func Matches(v NameView, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{v.Name, v.Meaning, v.Origin} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// AddPersonal validates and stores a name on the owner's list.
func (s *NamesService) AddPersonal(ctx context.Context, owner string, req AddNameRequest) (PersonalBabyName, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return PersonalBabyName{}, ErrNameRequired
	}
	gender, err := normalizeGender(req.Gender)
	if err != nil {
		return PersonalBabyName{}, err
	}
	if err := s.filter.Check(name, req.Meaning, req.Origin, req.Notes); err != nil {
		return PersonalBabyName{}, err
	}
	wallet := strings.TrimSpace(req.WalletAddress)
	if wallet != "" && !registry.IsETHAddress(wallet) {
		return PersonalBabyName{}, ErrInvalidWallet
	}

	existing, err := s.personal.List(ctx, owner)
	if err != nil {
		return PersonalBabyName{}, err
	}
	for _, n := range existing {
		if strings.EqualFold(n.Name, name) {
			return PersonalBabyName{}, ErrDuplicateName
		}
	}

	entry := PersonalBabyName{
		ID:            uuid.New(),
		UserID:        owner,
		Name:          name,
		Meaning:       strings.TrimSpace(req.Meaning),
		Origin:        strings.TrimSpace(req.Origin),
		Gender:        gender,
		Notes:         strings.TrimSpace(req.Notes),
		WalletAddress: wallet,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.personal.Add(ctx, entry); err != nil {
		return PersonalBabyName{}, err
	}
	return entry, nil
}

func normalizeGender(g Gender) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(string(g)))) {
	case "", GenderNeutral:
		return GenderNeutral, nil
	case GenderBoy:
		return GenderBoy, nil
	case GenderGirl:
		return GenderGirl, nil
	}
	return "", ErrInvalidGender
}

func (s *NamesService) RemovePersonal(ctx context.Context, owner, id string) error {
	return s.personal.Remove(ctx, owner, id)
}

// ToggleFavorite flips a name on the owner's favorites and reports whether
// it is now a favorite.
func (s *NamesService) ToggleFavorite(ctx context.Context, owner, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, ErrNameRequired
	}
	return s.favorites.Toggle(ctx, owner, name)
}

func (s *NamesService) Favorites(ctx context.Context, owner string) []string {
	return s.favorites.Members(ctx, owner)
}

// ByWallet lists personal names linked to a wallet address.
func (s *NamesService) ByWallet(ctx context.Context, address string) ([]PersonalBabyName, error) {
	if !registry.IsETHAddress(address) {
		return nil, ErrInvalidWallet
	}
	return s.personal.ByWallet(ctx, address)
}
