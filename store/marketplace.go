package store

import (
	"sync"
	"time"

	"github.com/ozguragaoglu95/pastayapp-api/models"
)

// DefaultCommissionRate is the platform's cut of every order total.
const DefaultCommissionRate = 0.10

// Marketplace bundles the stores and implements the cross-store operations:
// offer acceptance and cart checkout. Both are guarded against accidental
// double submission.
type Marketplace struct {
	Catalog  *Catalog
	Users    *UserStore
	Carts    *CartStore
	Requests *RequestStore
	Orders   *OrderStore

	commissionRate float64
	guard          *submitGuard
}

func NewMarketplace(catalog *Catalog, users *UserStore, carts *CartStore, requests *RequestStore, orders *OrderStore, commissionRate float64) *Marketplace {
	if commissionRate <= 0 {
		commissionRate = DefaultCommissionRate
	}
	return &Marketplace{
		Catalog:        catalog,
		Users:          users,
		Carts:          carts,
		Requests:       requests,
		Orders:         orders,
		commissionRate: commissionRate,
		guard:          newSubmitGuard(3 * time.Second),
	}
}

func (m *Marketplace) CommissionRate() float64 {
	return m.commissionRate
}

// AcceptOffer is a single logical transaction: create the order, then move
// the request to agreed with the offer recorded as selected. If the request
// update fails the order is deleted again, leaving both sides untouched.
func (m *Marketplace) AcceptOffer(requestID, offerID, userID string, addr models.Address) (models.Order, error) {
	req, err := m.Requests.Get(requestID)
	if err != nil {
		return models.Order{}, err
	}
	if req.UserID != userID {
		return models.Order{}, ErrNotFound
	}
	if req.Status.Terminal() {
		return models.Order{}, ErrInvalidTransition
	}
	offer, ok := req.FindOffer(offerID)
	if !ok {
		return models.Order{}, ErrOfferNotFound
	}

	if !m.guard.Admit("accept:" + userID + ":" + requestID) {
		return models.Order{}, ErrDuplicate
	}

	order := m.Orders.Create(models.Order{
		UserID:          userID,
		VendorID:        offer.VendorID,
		RequestID:       requestID,
		Quantity:        1,
		TotalPrice:      offer.TotalPrice,
		Commission:      offer.TotalPrice * m.commissionRate,
		DeliveryAddress: addr,
	})

	if err := m.Requests.UpdateStatus(requestID, models.RequestStatusAgreed, offerID); err != nil {
		// Compensating rollback: the request must not appear agreed without
		// an order, nor the order exist without the agreement. The guard key
		// is released so a legitimate retry is not rejected as a duplicate.
		_ = m.Orders.Delete(order.ID)
		m.guard.Release("accept:" + userID + ":" + requestID)
		return models.Order{}, err
	}
	return order, nil
}

// CheckoutCart turns every cart line into an order and clears the cart.
func (m *Marketplace) CheckoutCart(userID string, addr models.Address) ([]models.Order, error) {
	lines := m.Carts.Items(userID)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	if !m.guard.Admit("checkout:" + userID) {
		return nil, ErrDuplicate
	}

	orders := make([]models.Order, 0, len(lines))
	for _, line := range lines {
		total := line.LineTotal()
		orders = append(orders, m.Orders.Create(models.Order{
			UserID:            userID,
			VendorID:          line.VendorID,
			TemplateProductID: line.TemplateProductID,
			Quantity:          line.Quantity,
			TotalPrice:        total,
			Commission:        total * m.commissionRate,
			DeliveryAddress:   addr,
		}))
	}
	m.Carts.Clear(userID)
	return orders, nil
}

// submitGuard is a keyed idempotency window: the first Admit for a key wins,
// repeats inside the window are rejected. Covers the double-click between a
// user action and its (simulated) completion.
type submitGuard struct {
	mu     sync.Mutex
	window time.Duration
	seen   map[string]time.Time
}

func newSubmitGuard(window time.Duration) *submitGuard {
	return &submitGuard{window: window, seen: make(map[string]time.Time)}
}

func (g *submitGuard) Admit(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if last, ok := g.seen[key]; ok && now.Sub(last) < g.window {
		return false
	}
	// Opportunistic cleanup keeps the map from growing unbounded.
	for k, t := range g.seen {
		if now.Sub(t) >= g.window {
			delete(g.seen, k)
		}
	}
	g.seen[key] = now
	return true
}

// Release frees a key early so the operation it guarded can be retried
// inside the window, used when the guarded operation rolled back.
func (g *submitGuard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.seen, key)
}
