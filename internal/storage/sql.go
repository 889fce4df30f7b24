package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dadprep/dadprep-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ Store = (*SQLStore)(nil)

// SQLStore keeps documents in the stored_blobs table.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Load(ctx context.Context, key string) ([]byte, error) {
	var blob models.StoredBlob
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", key, err)
	}
	return []byte(blob.Value), nil
}

func (s *SQLStore) Save(ctx context.Context, key string, data []byte) error {
	blob := models.StoredBlob{Key: key, Value: string(data), UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}
