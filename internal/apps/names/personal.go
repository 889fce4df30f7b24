package names

import (
	"context"
	"fmt"

	"github.com/dadprep/dadprep-backend/internal/apperr"
	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/dadprep/dadprep-backend/internal/state"
	"github.com/dadprep/dadprep-backend/internal/storage"
	"gorm.io/gorm"
)

const personalCollection = "babyNames"

// ErrUnsupported is returned for operations the configured backend lacks.
var ErrUnsupported = apperr.NewValidation("This action is not available for saved names")

// PersonalStore keeps the names users add themselves.
type PersonalStore interface {
	List(ctx context.Context, owner string) ([]PersonalBabyName, error)
	Add(ctx context.Context, name PersonalBabyName) error
	Remove(ctx context.Context, owner, id string) error
	ByWallet(ctx context.Context, address string) ([]PersonalBabyName, error)
}

// LocalPersonalStore keeps each user's names as one blob.
type LocalPersonalStore struct {
	hook *state.Hook[PersonalBabyName]
}

func NewLocalPersonalStore(store storage.Store, m *metrics.Metrics) *LocalPersonalStore {
	return &LocalPersonalStore{hook: state.NewHook[PersonalBabyName](personalCollection, store, m, nil)}
}

func (s *LocalPersonalStore) List(ctx context.Context, owner string) ([]PersonalBabyName, error) {
	return s.hook.Load(ctx, owner).All(), nil
}

func (s *LocalPersonalStore) Add(ctx context.Context, name PersonalBabyName) error {
	return s.hook.Load(ctx, name.UserID).Add(ctx, name)
}

func (s *LocalPersonalStore) Remove(ctx context.Context, owner, id string) error {
	return s.hook.Load(ctx, owner).Remove(ctx, id)
}

// ByWallet needs a cross-user index, which per-user blobs do not have.
func (s *LocalPersonalStore) ByWallet(context.Context, string) ([]PersonalBabyName, error) {
	return nil, ErrUnsupported
}

// RemotePersonalStore uses the personal_baby_names table. Rows are insert
// only.
type RemotePersonalStore struct {
	db *gorm.DB
}

func NewRemotePersonalStore(db *gorm.DB) *RemotePersonalStore {
	return &RemotePersonalStore{db: db}
}

func (s *RemotePersonalStore) List(ctx context.Context, owner string) ([]PersonalBabyName, error) {
	var out []PersonalBabyName
	err := s.db.WithContext(ctx).Where("user_id = ?", owner).Order("created_at ASC").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}
	return out, nil
}

func (s *RemotePersonalStore) Add(ctx context.Context, name PersonalBabyName) error {
	if err := s.db.WithContext(ctx).Create(&name).Error; err != nil {
		return fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}
	return nil
}

func (s *RemotePersonalStore) Remove(context.Context, string, string) error {
	return ErrUnsupported
}

func (s *RemotePersonalStore) ByWallet(ctx context.Context, address string) ([]PersonalBabyName, error) {
	var out []PersonalBabyName
	err := s.db.WithContext(ctx).Where("LOWER(wallet_address) = LOWER(?)", address).Order("created_at ASC").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}
	return out, nil
}
