package names

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderBoy     Gender = "boy"
	GenderGirl    Gender = "girl"
	GenderNeutral Gender = "neutral"
)

// BabyName is one catalog entry, shared by every user.
type BabyName struct {
	ID      uint   `gorm:"primaryKey" json:"id,omitempty"`
	Name    string `gorm:"size:100;not null;uniqueIndex:idx_baby_names_name_gender" json:"name"`
	Meaning string `gorm:"size:255" json:"meaning"`
	Origin  string `gorm:"size:100" json:"origin"`
	Gender  Gender `gorm:"size:10;not null;index;uniqueIndex:idx_baby_names_name_gender" json:"gender"`
}

// PersonalBabyName is a name a user added to their own list. UserID holds
// the owner's email.
type PersonalBabyName struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        string    `gorm:"size:255;not null;index" json:"user_id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Meaning       string    `gorm:"size:255" json:"meaning"`
	Origin        string    `gorm:"size:100" json:"origin"`
	Gender        Gender    `gorm:"size:10;not null" json:"gender"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	WalletAddress string    `gorm:"size:42;index" json:"wallet_address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (n PersonalBabyName) EntityID() string { return n.ID.String() }

func (n *PersonalBabyName) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// NameView is a catalog or personal name as the explorer lists it.
type NameView struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Meaning       string `json:"meaning"`
	Origin        string `json:"origin"`
	Gender        Gender `json:"gender"`
	Notes         string `json:"notes,omitempty"`
	WalletAddress string `json:"wallet_address,omitempty"`
	Personal      bool   `json:"personal"`
	IsFavorite    bool   `json:"is_favorite"`
}

type AddNameRequest struct {
	Name          string `json:"name"`
	Meaning       string `json:"meaning"`
	Origin        string `json:"origin"`
	Gender        Gender `json:"gender"`
	Notes         string `json:"notes"`
	WalletAddress string `json:"wallet_address"`
}

type ToggleFavoriteRequest struct {
	Name string `json:"name"`
}
