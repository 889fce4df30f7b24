package registry

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/dadprep/dadprep-backend/internal/apperr"
)

var (
	ErrMissingFields    = apperr.NewValidation("Please provide both name and price for the item.")
	ErrInvalidPrice     = apperr.NewValidation("Please enter a valid price.")
	ErrInvalidPriority  = apperr.NewValidation("Unknown priority")
	ErrInvalidCategory  = apperr.NewValidation("Unknown category")
	ErrInvalidVenmo     = apperr.NewValidation("Invalid Venmo username: Venmo usernames must start with @")
	ErrInvalidETH       = apperr.NewValidation("Invalid ETH address: Please enter a valid Ethereum address")
	ErrMissingRegistry  = apperr.NewValidation("Please fill in all fields.")
	ErrInvalidStatusArg = apperr.NewValidation("status must be Needed or Received")
)

var (
	ethAddress   = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	decimalPrice = regexp.MustCompile(`^[0-9]*\.?[0-9]+$|^[0-9]+\.$`)
)

// IsETHAddress reports whether s is 0x followed by 40 hex digits.
func IsETHAddress(s string) bool {
	return ethAddress.MatchString(s)
}

// ParsePrice reads a non-negative finite decimal written as plain digits
// with an optional point. Hex, exponent and underscore forms are rejected.
func ParsePrice(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrMissingFields
	}
	if !decimalPrice.MatchString(text) {
		return 0, ErrInvalidPrice
	}
	price, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, ErrInvalidPrice
	}
	return price, nil
}

func normalizePriority(p Priority) (Priority, error) {
	if p == "" {
		return PriorityMedium, nil
	}
	for _, known := range Priorities {
		if strings.EqualFold(string(known), string(p)) {
			return known, nil
		}
	}
	return "", ErrInvalidPriority
}

func normalizeCategory(c Category) (Category, error) {
	if c == "" {
		return CategoryOther, nil
	}
	for _, known := range Categories {
		if strings.EqualFold(string(known), string(c)) {
			return known, nil
		}
	}
	return "", ErrInvalidCategory
}

// ValidatePaymentLinks trims every handle and checks the Venmo and ETH
// formats. Empty handles are allowed.
func ValidatePaymentLinks(in PaymentLinks) (PaymentLinks, error) {
	out := PaymentLinks{
		Venmo:      strings.TrimSpace(in.Venmo),
		CashApp:    strings.TrimSpace(in.CashApp),
		ETHAddress: strings.TrimSpace(in.ETHAddress),
	}
	if out.Venmo != "" && !strings.HasPrefix(out.Venmo, "@") {
		return PaymentLinks{}, ErrInvalidVenmo
	}
	if out.ETHAddress != "" && !IsETHAddress(out.ETHAddress) {
		return PaymentLinks{}, ErrInvalidETH
	}
	return out, nil
}

// NormalizeURL adds https:// when no http(s) scheme is present.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

func parseStatus(s string) (Status, error) {
	for _, st := range []Status{StatusNeeded, StatusReceived} {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", ErrInvalidStatusArg
}

// PartitionItems splits items by status, preserving order.
func PartitionItems(items []Item) Partition {
	p := Partition{Needed: []Item{}, Received: []Item{}}
	for _, it := range items {
		if it.Status == StatusReceived {
			p.Received = append(p.Received, it)
		} else {
			p.Needed = append(p.Needed, it)
		}
	}
	return p
}

func filterStatus(items []Item, st Status) []Item {
	return slices.DeleteFunc(slices.Clone(items), func(it Item) bool { return it.Status != st })
}
