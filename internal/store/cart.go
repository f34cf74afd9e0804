package store

import (
	"context"
	"sync"

	"mohini-backend/internal/domain"
	"mohini-backend/pkg/logger"

	"github.com/goccy/go-json"
)

// CartStore holds a shopper's pending purchase selection: an insertion-ordered
// collection of product snapshots with quantities, at most one entry per
// product ID. All reads and writes go through its methods; there is no other
// way to mutate cart state.
//
// Every mutation re-serializes the full collection into the Snapshots mirror
// and hands a fresh immutable snapshot to subscribers.
type CartStore struct {
	mu        sync.Mutex
	items     []domain.CartItem
	snapshots Snapshots
	key       string
	subs      []func([]domain.CartItem)
}

// NewCartStore creates a cart store seeded from the persisted snapshot under
// key. Malformed or missing persisted data means the cart starts empty; it is
// never an error.
func NewCartStore(ctx context.Context, snapshots Snapshots, key string) *CartStore {
	s := &CartStore{
		snapshots: snapshots,
		key:       key,
	}

	data, err := snapshots.Load(ctx, key)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cart snapshot load failed, starting empty")
		return s
	}
	if len(data) == 0 {
		return s
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		// Treated as "no data", not a fatal error.
		logger.Warn().Err(err).Str("key", key).Msg("Discarding malformed cart snapshot")
		return s
	}
	s.items = items
	return s
}

// Subscribe registers fn to be called with the new snapshot after every
// mutation. Callbacks run synchronously on the mutating goroutine.
func (s *CartStore) Subscribe(fn func(items []domain.CartItem)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Add inserts the product with quantity 1, or increments the existing entry's
// quantity by 1. Repeated calls accumulate quantity; they never fail.
func (s *CartStore) Add(ctx context.Context, product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			s.persist(ctx)
			return
		}
	}

	s.items = append(s.items, domain.CartItem{Product: product, Quantity: 1})
	s.persist(ctx)
}

// UpdateQuantity sets the entry's quantity. A quantity of zero or below
// removes the entry entirely. Absent product IDs are a no-op. No upper bound
// is enforced here; stock is validated at checkout by the backend.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = quantity
		}
		s.persist(ctx)
		return
	}
}

// Remove deletes the entry if present; no-op otherwise.
func (s *CartStore) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the collection unconditionally. Called after a successful
// checkout.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Items returns a copy of the current entries in insertion order.
func (s *CartStore) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Total returns the sum of price x quantity over all entries, 0 when empty.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities across all entries (not the entry
// count). Used for the cart badge.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// persist writes the full collection to the snapshot mirror and notifies
// subscribers. Must be called with s.mu held. Persistence failures are
// logged, never surfaced to the caller.
func (s *CartStore) persist(ctx context.Context) {
	snap := s.snapshot()

	data, err := json.Marshal(snap)
	if err != nil {
		logger.Error().Err(err).Str("key", s.key).Msg("Cart snapshot marshal failed")
	} else if err := s.snapshots.Save(ctx, s.key, data); err != nil {
		logger.Error().Err(err).Str("key", s.key).Msg("Cart snapshot write failed")
	}

	for _, fn := range s.subs {
		fn(snap)
	}
}

func (s *CartStore) snapshot() []domain.CartItem {
	snap := make([]domain.CartItem, len(s.items))
	copy(snap, s.items)
	return snap
}
