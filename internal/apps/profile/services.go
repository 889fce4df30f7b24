package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dadprep/dadprep-backend/internal/apperr"
	"github.com/dadprep/dadprep-backend/internal/apps/registry"
	"github.com/dadprep/dadprep-backend/internal/models"
	"github.com/dadprep/dadprep-backend/internal/services"
	"github.com/dadprep/dadprep-backend/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNameRequired    = apperr.NewValidation("Please enter your name.")
	ErrUserNotFound    = apperr.NewNotFound("user not found")
	ErrProfileNotFound = apperr.NewNotFound("Profile not found")
)

type ProfileService struct {
	db       *gorm.DB
	registry *registry.RegistryService
	filter   *services.ContentFilter
	baseURL  string
}

func NewProfileService(db *gorm.DB, reg *registry.RegistryService, filter *services.ContentFilter, baseURL string) *ProfileService {
	return &ProfileService{db: db, registry: reg, filter: filter, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (ProfileView, error) {
	user, err := s.load(ctx, "id = ?", id)
	if err != nil {
		return ProfileView{}, err
	}
	return s.view(user), nil
}

// UpdateName renames the user. The profile slug stays as generated. The
// bool reports whether anything changed.
func (s *ProfileService) UpdateName(ctx context.Context, id uuid.UUID, name string) (ProfileView, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ProfileView{}, false, ErrNameRequired
	}
	if err := s.filter.Check(name); err != nil {
		return ProfileView{}, false, err
	}
	user, err := s.load(ctx, "id = ?", id)
	if err != nil {
		return ProfileView{}, false, err
	}
	if user.Name == name {
		return s.view(user), false, nil
	}
	if err := s.db.WithContext(ctx).Model(user).Update("name", name).Error; err != nil {
		return ProfileView{}, false, unavailable(err)
	}
	user.Name = name
	return s.view(user), true, nil
}

func (s *ProfileService) UpdatePrivacy(ctx context.Context, id uuid.UUID, req UpdatePrivacyRequest) (ProfileView, error) {
	user, err := s.load(ctx, "id = ?", id)
	if err != nil {
		return ProfileView{}, err
	}

	updates := map[string]interface{}{}
	if req.ShowRegistry != nil {
		updates["show_registry"] = *req.ShowRegistry
		user.ShowRegistry = *req.ShowRegistry
	}
	if req.ShowPaymentLinks != nil {
		updates["show_payment_links"] = *req.ShowPaymentLinks
		user.ShowPaymentLinks = *req.ShowPaymentLinks
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return ProfileView{}, unavailable(err)
		}
	}
	return s.view(user), nil
}

// Public looks a profile up by slug and includes only what the owner
// shares. Only items still needed are listed.
func (s *ProfileService) Public(ctx context.Context, slug string) (PublicProfile, error) {
	user, err := s.load(ctx, "profile_slug = ?", slug)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return PublicProfile{}, ErrProfileNotFound
		}
		return PublicProfile{}, err
	}
	return s.public(ctx, user), nil
}

// Preview renders the caller's own public profile.
func (s *ProfileService) Preview(ctx context.Context, id uuid.UUID) (PublicProfile, error) {
	user, err := s.load(ctx, "id = ?", id)
	if err != nil {
		return PublicProfile{}, err
	}
	return s.public(ctx, user), nil
}

func (s *ProfileService) public(ctx context.Context, user *models.User) PublicProfile {
	out := PublicProfile{
		Name:             user.Name,
		ProfileSlug:      user.ProfileSlug,
		ShowRegistry:     user.ShowRegistry,
		ShowPaymentLinks: user.ShowPaymentLinks,
	}
	if user.ShowRegistry {
		out.NeededItems = registry.PartitionItems(s.registry.Items(ctx, user.Email)).Needed
		if out.NeededItems == nil {
			out.NeededItems = []registry.Item{}
		}
	}
	if user.ShowPaymentLinks {
		links := s.registry.PaymentLinks(ctx, user.Email)
		out.PaymentLinks = &links
	}
	return out
}

func (s *ProfileService) ShareURL(slug string) string {
	return s.baseURL + "/profile/" + slug
}

func (s *ProfileService) view(user *models.User) ProfileView {
	return ProfileView{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		ProfileSlug:      user.ProfileSlug,
		ShowRegistry:     user.ShowRegistry,
		ShowPaymentLinks: user.ShowPaymentLinks,
		Share: Share{
			URL:   s.ShareURL(user.ProfileSlug),
			Title: user.Name + "'s Baby Registry",
			Text:  "Check out my baby registry!",
		},
	}
}

func (s *ProfileService) load(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where(query, arg).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, unavailable(err)
	}
	return &user, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
}
