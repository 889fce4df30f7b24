package models

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a DadPrep account. Privacy flags default to private and the
// profile slug is fixed at construction.
type User struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email            string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name             string         `gorm:"size:255" json:"name"`
	Password         string         `gorm:"not null" json:"-"`
	ShowRegistry     bool           `gorm:"not null;default:false" json:"show_registry"`
	ShowPaymentLinks bool           `gorm:"not null;default:false" json:"show_payment_links"`
	ProfileSlug      string         `gorm:"size:120;not null;uniqueIndex" json:"profile_slug"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// NewUser builds an account with every optional field defaulted.
func NewUser(email, name, passwordHash string) *User {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if name == "" {
		name = DisplayNameFromEmail(email)
	}
	return &User{
		ID:          uuid.New(),
		Email:       email,
		Name:        name,
		Password:    passwordHash,
		ProfileSlug: ProfileSlug(name),
	}
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.ProfileSlug == "" {
		u.ProfileSlug = ProfileSlug(u.Name)
	}
	return nil
}

// DisplayNameFromEmail returns the local part of an address.
func DisplayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

var (
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]`)
)

const slugAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ProfileSlug lowercases name, joins words with "-", drops anything outside
// [a-z0-9-] and appends a 6 character base-36 suffix.
func ProfileSlug(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = slugSpaces.ReplaceAllString(base, "-")
	base = slugInvalid.ReplaceAllString(base, "")
	return base + "-" + randomSuffix(6)
}

func randomSuffix(n int) string {
	var sb strings.Builder
	max := big.NewInt(int64(len(slugAlphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			idx = big.NewInt(time.Now().UnixNano() % int64(len(slugAlphabet)))
		}
		sb.WriteByte(slugAlphabet[idx.Int64()])
	}
	return sb.String()
}
