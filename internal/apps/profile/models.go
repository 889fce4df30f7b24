package profile

import (
	"github.com/dadprep/dadprep-backend/internal/apps/registry"
	"github.com/google/uuid"
)

type ProfileView struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	ProfileSlug      string    `json:"profile_slug"`
	ShowRegistry     bool      `json:"show_registry"`
	ShowPaymentLinks bool      `json:"show_payment_links"`
	Share            Share     `json:"share"`
}

// Share is what the client hands to the platform share sheet.
type Share struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// PublicProfile is what visitors to a shared link see. Registry and
// payment fields are nil when the owner keeps them private.
type PublicProfile struct {
	Name             string                 `json:"name"`
	ProfileSlug      string                 `json:"profile_slug"`
	ShowRegistry     bool                   `json:"show_registry"`
	ShowPaymentLinks bool                   `json:"show_payment_links"`
	NeededItems      []registry.Item        `json:"needed_items,omitempty"`
	PaymentLinks     *registry.PaymentLinks `json:"payment_links,omitempty"`
}

type UpdateNameRequest struct {
	Name string `json:"name"`
}

// UpdatePrivacyRequest leaves nil flags unchanged.
type UpdatePrivacyRequest struct {
	ShowRegistry     *bool `json:"show_registry"`
	ShowPaymentLinks *bool `json:"show_payment_links"`
}
