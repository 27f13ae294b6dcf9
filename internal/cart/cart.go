// Package cart keeps server-side shopping carts keyed by a client-chosen cart id.
// A cart is a scratch list of line items; checkout turns it into an order and
// clears it.
package cart

import (
	"slices"
	"strings"
	"sync"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Cart is a snapshot of one cart's lines in insertion order.
type Cart struct {
	ID    string
	Items []kernel.LineItem
}

// Total sums the line totals at full precision.
func (c Cart) Total() kernel.Money {
	total := kernel.ZeroMoney
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Store is a process-local cart registry safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	carts map[string][]kernel.LineItem
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]kernel.LineItem)}
}

// Add appends item to the cart, creating the cart on first use. Adding a product
// that is already in the cart increases its quantity and keeps the original price.
func (s *Store) Add(cartID string, item kernel.LineItem) (Cart, error) {
	key, err := cartKey(cartID)
	if err != nil {
		return Cart{}, err
	}
	if err := item.Validate(); err != nil {
		return Cart{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[key]
	i := slices.IndexFunc(items, func(existing kernel.LineItem) bool {
		return existing.ProductID() == item.ProductID()
	})
	if i < 0 {
		items = append(items, item)
	} else {
		merged, err := kernel.NewLineItem(
			items[i].ProductID(),
			items[i].Name(),
			items[i].UnitPrice().Decimal(),
			items[i].Quantity()+item.Quantity(),
		)
		if err != nil {
			return Cart{}, err
		}
		items[i] = merged
	}
	s.carts[key] = items

	return Cart{ID: key, Items: slices.Clone(items)}, nil
}

// Get returns the cart. An unknown cart is empty, not missing.
func (s *Store) Get(cartID string) (Cart, error) {
	key, err := cartKey(cartID)
	if err != nil {
		return Cart{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return Cart{ID: key, Items: slices.Clone(s.carts[key])}, nil
}

// Remove drops every line of productID. It fails with ObjectNotFound for an unknown cart.
func (s *Store) Remove(cartID string, productID int) (Cart, error) {
	key, err := cartKey(cartID)
	if err != nil {
		return Cart{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.carts[key]
	if !ok {
		return Cart{}, errs.NewObjectNotFoundError("cartId", key)
	}
	items = slices.DeleteFunc(items, func(item kernel.LineItem) bool {
		return item.ProductID() == productID
	})
	s.carts[key] = items

	return Cart{ID: key, Items: slices.Clone(items)}, nil
}

// Clear deletes the cart. It fails with ObjectNotFound for an unknown cart.
func (s *Store) Clear(cartID string) error {
	key, err := cartKey(cartID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[key]; !ok {
		return errs.NewObjectNotFoundError("cartId", key)
	}
	delete(s.carts, key)
	return nil
}

// Take removes the cart and returns its contents in one step so two checkouts of
// the same cart cannot both succeed. An unknown or empty cart fails as an invalid cart.
func (s *Store) Take(cartID string) (Cart, error) {
	key, err := cartKey(cartID)
	if err != nil {
		return Cart{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[key]
	if len(items) == 0 {
		return Cart{}, errs.NewInvalidCartError("cart is empty")
	}
	delete(s.carts, key)
	return Cart{ID: key, Items: items}, nil
}

// Restore puts back a cart taken by Take, e.g. after a failed checkout. Lines added
// in the meantime are kept after the restored ones.
func (s *Store) Restore(c Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[c.ID] = append(slices.Clone(c.Items), s.carts[c.ID]...)
}

func cartKey(cartID string) (string, error) {
	key := strings.TrimSpace(cartID)
	if key == "" {
		return "", errs.NewValueIsRequiredError("cartId")
	}
	return key, nil
}
