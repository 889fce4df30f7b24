package names

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dadprep/dadprep-backend/internal/storage"
	"gorm.io/gorm"
)

var builtinNames = []BabyName{
	{Name: "Liam", Meaning: "Strong-willed warrior", Origin: "Irish", Gender: GenderBoy},
	{Name: "Noah", Meaning: "Rest, comfort", Origin: "Hebrew", Gender: GenderBoy},
	{Name: "Oliver", Meaning: "Olive tree", Origin: "Latin", Gender: GenderBoy},
	{Name: "Elijah", Meaning: "Jehovah is God", Origin: "Hebrew", Gender: GenderBoy},
	{Name: "William", Meaning: "Resolute protector", Origin: "Germanic", Gender: GenderBoy},
	{Name: "James", Meaning: "Supplanter", Origin: "Hebrew", Gender: GenderBoy},
	{Name: "Benjamin", Meaning: "Son of the right hand", Origin: "Hebrew", Gender: GenderBoy},
	{Name: "Lucas", Meaning: "Bringer of light", Origin: "Latin", Gender: GenderBoy},
	{Name: "Henry", Meaning: "Ruler of the home", Origin: "Germanic", Gender: GenderBoy},
	{Name: "Alexander", Meaning: "Defender of men", Origin: "Greek", Gender: GenderBoy},

	{Name: "Olivia", Meaning: "Olive tree", Origin: "Latin", Gender: GenderGirl},
	{Name: "Emma", Meaning: "Whole or universal", Origin: "Germanic", Gender: GenderGirl},
	{Name: "Charlotte", Meaning: "Free woman", Origin: "French", Gender: GenderGirl},
	{Name: "Amelia", Meaning: "Work", Origin: "Germanic", Gender: GenderGirl},
	{Name: "Ava", Meaning: "Life", Origin: "Latin", Gender: GenderGirl},
	{Name: "Sophia", Meaning: "Wisdom", Origin: "Greek", Gender: GenderGirl},
	{Name: "Isabella", Meaning: "God is my oath", Origin: "Hebrew/Italian", Gender: GenderGirl},
	{Name: "Mia", Meaning: "Mine", Origin: "Italian", Gender: GenderGirl},
	{Name: "Evelyn", Meaning: "Wished for child", Origin: "English", Gender: GenderGirl},
	{Name: "Harper", Meaning: "Harpist", Origin: "English", Gender: GenderGirl},

	{Name: "Jordan", Meaning: "To flow down", Origin: "Hebrew", Gender: GenderNeutral},
	{Name: "Riley", Meaning: "Valiant", Origin: "Irish", Gender: GenderNeutral},
	{Name: "Avery", Meaning: "Ruler of the elves", Origin: "English", Gender: GenderNeutral},
	{Name: "Quinn", Meaning: "Counsel", Origin: "Irish", Gender: GenderNeutral},
	{Name: "Morgan", Meaning: "Sea circle", Origin: "Welsh", Gender: GenderNeutral},
	{Name: "Taylor", Meaning: "Tailor", Origin: "English", Gender: GenderNeutral},
	{Name: "Sam", Meaning: "God has heard", Origin: "Hebrew", Gender: GenderNeutral},
	{Name: "Alex", Meaning: "Defender of mankind", Origin: "Greek", Gender: GenderNeutral},
	{Name: "Cameron", Meaning: "Crooked nose", Origin: "Scottish", Gender: GenderNeutral},
	{Name: "Dakota", Meaning: "Friend, ally", Origin: "Native American", Gender: GenderNeutral},
}

// Builtin returns a copy of the bundled catalog.
func Builtin() []BabyName {
	return append([]BabyName(nil), builtinNames...)
}

// Catalog lists the public names.
type Catalog interface {
	List(ctx context.Context) ([]BabyName, error)
}

type BuiltinCatalog struct{}

func (BuiltinCatalog) List(context.Context) ([]BabyName, error) { return Builtin(), nil }

// RemoteCatalog reads the baby_names table.
type RemoteCatalog struct {
	db *gorm.DB
}

func NewRemoteCatalog(db *gorm.DB) *RemoteCatalog {
	return &RemoteCatalog{db: db}
}

func (c *RemoteCatalog) List(ctx context.Context) ([]BabyName, error) {
	var out []BabyName
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}
	return out, nil
}

// Seed inserts the bundled names when the table is empty.
func (c *RemoteCatalog) Seed(ctx context.Context) error {
	var count int64
	if err := c.db.WithContext(ctx).Model(&BabyName{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count baby names: %w", err)
	}
	if count > 0 {
		return nil
	}
	seed := Builtin()
	if err := c.db.WithContext(ctx).CreateInBatches(&seed, 50).Error; err != nil {
		return fmt.Errorf("seed baby names: %w", err)
	}
	slog.Info("seeded baby names", "count", len(seed))
	return nil
}
