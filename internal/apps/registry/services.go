package registry

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/dadprep/dadprep-backend/internal/state"
	"github.com/dadprep/dadprep-backend/internal/storage"
)

const (
	itemsCollection   = "registry-items"
	paymentCollection = "payment-links"
	linkedCollection  = "linked-registries"
)

type RegistryService struct {
	items   *state.Hook[Item]
	payment *state.Document[PaymentLinks]
	linked  *state.Hook[LinkedRegistry]
	now     func() time.Time
}

func NewRegistryService(store storage.Store, m *metrics.Metrics, now func() time.Time) *RegistryService {
	return &RegistryService{
		items:   state.NewHook[Item](itemsCollection, store, m, nil),
		payment: state.NewDocument[PaymentLinks](paymentCollection, store, m, func() PaymentLinks { return PaymentLinks{} }),
		linked:  state.NewHook[LinkedRegistry](linkedCollection, store, m, nil),
		now:     now,
	}
}

func (s *RegistryService) Items(ctx context.Context, owner string) []Item {
	return s.items.Load(ctx, owner).All()
}

func (s *RegistryService) ItemsByStatus(ctx context.Context, owner, status string) ([]Item, error) {
	st, err := parseStatus(status)
	if err != nil {
		return nil, err
	}
	return filterStatus(s.Items(ctx, owner), st), nil
}

// AddItem validates the form and appends a Needed item.
func (s *RegistryService) AddItem(ctx context.Context, owner string, req AddItemRequest) (Item, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || strings.TrimSpace(string(req.Price)) == "" {
		return Item{}, ErrMissingFields
	}
	price, err := ParsePrice(string(req.Price))
	if err != nil {
		return Item{}, err
	}
	priority, err := normalizePriority(req.Priority)
	if err != nil {
		return Item{}, err
	}
	category, err := normalizeCategory(req.Category)
	if err != nil {
		return Item{}, err
	}

	items := s.items.Load(ctx, owner)
	item := Item{
		ID:       timestampID(s.now(), func(id string) bool { _, ok := items.Find(id); return ok }),
		Name:     name,
		Price:    price,
		Priority: priority,
		Category: category,
		Status:   StatusNeeded,
	}
	if err := items.Add(ctx, item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// timestampID uses the clock in milliseconds, stepping past ids already
// taken.
func timestampID(now time.Time, taken func(id string) bool) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if !taken(id) {
			return id
		}
		ms++
	}
}

// MarkReceived moves an item to Received. Marking a Received item again
// changes nothing and writes nothing.
func (s *RegistryService) MarkReceived(ctx context.Context, owner, id string) (Item, error) {
	items := s.items.Load(ctx, owner)
	current, ok := items.Find(id)
	if !ok {
		return Item{}, state.ErrNotFound
	}
	if current.Status == StatusReceived {
		return current, nil
	}
	var updated Item
	err := items.Update(ctx, id, func(it Item) (Item, error) {
		it.Status = StatusReceived
		updated = it
		return it, nil
	})
	return updated, err
}

func (s *RegistryService) DeleteItem(ctx context.Context, owner, id string) error {
	return s.items.Load(ctx, owner).Remove(ctx, id)
}

func (s *RegistryService) PaymentLinks(ctx context.Context, owner string) PaymentLinks {
	return s.payment.Load(ctx, owner)
}

// SavePaymentLinks replaces the stored links. Invalid input leaves the
// stored links untouched.
func (s *RegistryService) SavePaymentLinks(ctx context.Context, owner string, in PaymentLinks) (PaymentLinks, error) {
	links, err := ValidatePaymentLinks(in)
	if err != nil {
		return PaymentLinks{}, err
	}
	if err := s.payment.Save(ctx, owner, links); err != nil {
		return PaymentLinks{}, err
	}
	return links, nil
}

func (s *RegistryService) LinkedRegistries(ctx context.Context, owner string) []LinkedRegistry {
	return s.linked.Load(ctx, owner).All()
}

func (s *RegistryService) AddLinkedRegistry(ctx context.Context, owner string, req AddLinkedRegistryRequest) (LinkedRegistry, error) {
	name := strings.TrimSpace(req.Name)
	url := strings.TrimSpace(req.URL)
	if name == "" || url == "" {
		return LinkedRegistry{}, ErrMissingRegistry
	}

	linked := s.linked.Load(ctx, owner)
	reg := LinkedRegistry{
		ID:   timestampID(s.now(), func(id string) bool { _, ok := linked.Find(id); return ok }),
		Name: name,
		URL:  NormalizeURL(url),
	}
	if err := linked.Add(ctx, reg); err != nil {
		return LinkedRegistry{}, err
	}
	return reg, nil
}

func (s *RegistryService) RemoveLinkedRegistry(ctx context.Context, owner, id string) error {
	return s.linked.Load(ctx, owner).Remove(ctx, id)
}
