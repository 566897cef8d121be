package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed" // Order placed and confirmed
	OrderStatusPreparing OrderStatus = "preparing" // Vendor is baking
	OrderStatusReady     OrderStatus = "ready"     // Ready for dispatch or pickup
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the order
	OrderStatusCompleted OrderStatus = "completed" // Closed after delivery
	OrderStatusReturned  OrderStatus = "returned"  // Customer returned the order
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

// MapOrderStatus maps a wire string to the canonical OrderStatus vocabulary.
// Unknown strings are rejected at the boundary rather than stored.
func MapOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(status)) {
	case OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCompleted,
		OrderStatusReturned, OrderStatusCancelled:
		return OrderStatus(strings.ToLower(status)), nil
	default:
		return "", errors.New("invalid order status")
	}
}

// orderTransitions is the single canonical transition table. A status absent
// from the map is terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusReturned},
	OrderStatusDelivered: {OrderStatusCompleted, OrderStatusReturned},
}

// CanTransition reports whether to is a legal successor of from.
func (from OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// StatusEntry is one line of an order's history. Every status change appends
// exactly one entry; the history is append-only and monotonic in time.
type StatusEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// Order is a confirmed transaction, created either from an accepted offer
// (RequestID set) or from a direct catalog checkout (TemplateProductID set).
type Order struct {
	ID                string        `json:"id"`
	OrderRef          string        `json:"order_ref"`
	UserID            string        `json:"user_id"`
	VendorID          string        `json:"vendor_id"`
	RequestID         string        `json:"request_id,omitempty"`
	TemplateProductID string        `json:"template_product_id,omitempty"`
	Quantity          int           `json:"quantity"`
	TotalPrice        float64       `json:"total_price"`
	Commission        float64       `json:"commission"`
	Status            OrderStatus   `json:"status"`
	StatusHistory     []StatusEntry `json:"status_history"`
	DeliveryAddress   Address       `json:"delivery_address"`
	HasChangeRequest  bool          `json:"has_change_request"`
	CreatedAt         time.Time     `json:"created_at"`
}
