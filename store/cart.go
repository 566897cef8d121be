package store

import (
	"sync"
	"time"

	"github.com/ozguragaoglu95/pastayapp-api/models"
)

// CartStore holds one cart per user. Every mutation keys on the full line
// fingerprint, never on the product id alone, so two lines for the same
// template with different options stay independently addressable.
type CartStore struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem // user id -> lines
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string][]models.CartItem)}
}

// AddItem computes the line fingerprint and merges quantities into an
// existing line with the same fingerprint, otherwise appends. Always
// succeeds; returns the resulting line.
func (s *CartStore) AddItem(userID string, item models.CartItem) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.Fingerprint = models.ComputeFingerprint(
		item.TemplateProductID, item.SelectedOptions, item.Note, item.Extras)
	item.AddedAt = time.Now()

	lines := s.carts[userID]
	for i, line := range lines {
		if line.Fingerprint == item.Fingerprint {
			lines[i].Quantity += item.Quantity
			lines[i].AddedAt = item.AddedAt
			s.carts[userID] = lines
			return lines[i]
		}
	}
	s.carts[userID] = append(lines, item)
	return item
}

func (s *CartStore) RemoveItem(userID, fingerprint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(userID, fingerprint)
}

func (s *CartStore) removeLocked(userID, fingerprint string) error {
	lines := s.carts[userID]
	for i, line := range lines {
		if line.Fingerprint == fingerprint {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// UpdateQuantity sets the quantity on the matching line. A quantity of zero
// or less behaves like removal.
func (s *CartStore) UpdateQuantity(userID, fingerprint string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		return s.removeLocked(userID, fingerprint)
	}
	lines := s.carts[userID]
	for i, line := range lines {
		if line.Fingerprint == fingerprint {
			lines[i].Quantity = qty
			s.carts[userID] = lines
			return nil
		}
	}
	return ErrNotFound
}

func (s *CartStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func (s *CartStore) Items(userID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	out := make([]models.CartItem, len(lines))
	copy(out, lines)
	return out
}

// Totals recomputes item count and price from the current lines on every
// call. There is no cached total to drift.
func (s *CartStore) Totals(userID string) (totalItems int, totalPrice float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.carts[userID] {
		totalItems += line.Quantity
		totalPrice += line.LineTotal()
	}
	return totalItems, totalPrice
}
