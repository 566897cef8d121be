package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ozguragaoglu95/pastayapp-api/models"
)

// OrderStore holds confirmed orders, newest first. Orders are never deleted
// by business operations; removal exists only as the compensating half of
// offer acceptance.
type OrderStore struct {
	mu     sync.Mutex
	orders []*models.Order
	byID   map[string]*models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{byID: make(map[string]*models.Order)}
}

// Create assigns id, ref and creation time, seeds the status history with the
// confirmed entry and prepends the order to the collection.
func (s *OrderStore) Create(order models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	order.ID = uuid.NewString()
	order.OrderRef = now.Format("20060102150405") + "-" + uuid.NewString()
	order.Status = models.OrderStatusConfirmed
	order.StatusHistory = []models.StatusEntry{{Status: models.OrderStatusConfirmed, Timestamp: now}}
	order.CreatedAt = now

	stored := order
	s.orders = append([]*models.Order{&stored}, s.orders...)
	s.byID[stored.ID] = &stored
	return order
}

// UpdateStatus validates the transition against the canonical table, then
// sets the status and appends exactly one history entry.
func (s *OrderStore) UpdateStatus(orderID string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.byID[orderID]
	if !ok {
		return ErrNotFound
	}
	if !order.Status.CanTransition(status) {
		return ErrInvalidTransition
	}
	order.Status = status
	order.StatusHistory = append(order.StatusHistory, models.StatusEntry{
		Status:    status,
		Timestamp: time.Now(),
	})
	return nil
}

// Delete removes an order. Only the acceptance unit of work calls this, to
// roll back an order whose request update failed.
func (s *OrderStore) Delete(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[orderID]; !ok {
		return ErrNotFound
	}
	delete(s.byID, orderID)
	for i, o := range s.orders {
		if o.ID == orderID {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			break
		}
	}
	return nil
}

// Get looks up an order by id or order ref. Absence is a normal outcome.
func (s *OrderStore) Get(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order, ok := s.byID[id]; ok {
		return cloneOrder(order), nil
	}
	for _, o := range s.orders {
		if o.OrderRef == id {
			return cloneOrder(o), nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (s *OrderStore) ListByUser(userID string) []models.Order {
	return s.list(func(o *models.Order) bool { return o.UserID == userID })
}

func (s *OrderStore) ListByVendor(vendorID string) []models.Order {
	return s.list(func(o *models.Order) bool { return o.VendorID == vendorID })
}

func (s *OrderStore) ListAll() []models.Order {
	return s.list(func(*models.Order) bool { return true })
}

func (s *OrderStore) list(keep func(*models.Order) bool) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Order
	for _, o := range s.orders {
		if keep(o) {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

func cloneOrder(o *models.Order) models.Order {
	out := *o
	out.StatusHistory = append([]models.StatusEntry(nil), o.StatusHistory...)
	return out
}
