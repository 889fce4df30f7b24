package registry

import (
	"encoding/json"
	"strconv"
)

type Priority string

const (
	PriorityEssential Priority = "Essential"
	PriorityHigh      Priority = "High"
	PriorityMedium    Priority = "Medium"
	PriorityLow       Priority = "Low"
)

var Priorities = []Priority{PriorityEssential, PriorityHigh, PriorityMedium, PriorityLow}

type Category string

const (
	CategoryNursery   Category = "Nursery"
	CategoryFeeding   Category = "Feeding"
	CategoryDiapering Category = "Diapering"
	CategoryClothing  Category = "Clothing"
	CategorySafety    Category = "Safety"
	CategoryTravel    Category = "Travel"
	CategoryToys      Category = "Toys"
	CategoryOther     Category = "Other"
)

var Categories = []Category{
	CategoryNursery, CategoryFeeding, CategoryDiapering, CategoryClothing,
	CategorySafety, CategoryTravel, CategoryToys, CategoryOther,
}

type Status string

const (
	StatusNeeded   Status = "Needed"
	StatusReceived Status = "Received"
)

// Item is one registry wish. Status only ever moves Needed -> Received.
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Priority Priority `json:"priority"`
	Category Category `json:"category"`
	Status   Status   `json:"status"`
}

func (i Item) EntityID() string { return i.ID }

// PaymentLinks are the cash gift handles shown on a public profile. Empty
// fields are omitted.
type PaymentLinks struct {
	Venmo      string `json:"venmo,omitempty"`
	CashApp    string `json:"cashApp,omitempty"`
	ETHAddress string `json:"ethAddress,omitempty"`
}

func (p PaymentLinks) IsEmpty() bool {
	return p == PaymentLinks{}
}

// LinkedRegistry points at a registry kept on another store.
type LinkedRegistry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Items int    `json:"items"`
}

func (l LinkedRegistry) EntityID() string { return l.ID }

// Partition is the registry split by status, each side in insertion order.
type Partition struct {
	Needed   []Item `json:"needed"`
	Received []Item `json:"received"`
}

// --- DTOs ---

// PriceText accepts a price sent either as a JSON string or a number.
type PriceText string

func (p *PriceText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = PriceText(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*p = PriceText(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

type AddItemRequest struct {
	Name     string    `json:"name"`
	Price    PriceText `json:"price"`
	Priority Priority  `json:"priority"`
	Category Category  `json:"category"`
}

type AddLinkedRegistryRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
