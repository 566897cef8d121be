package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozguragaoglu95/pastayapp-api/models"
	"github.com/ozguragaoglu95/pastayapp-api/store"
)

type CheckoutRequest struct {
	DeliveryAddress models.Address `json:"delivery_address"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /user/checkout
// Turns the caller's cart into orders, one per line, and clears the cart.
func CheckoutHandler(market *store.Marketplace) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		orders, err := market.CheckoutCart(userID, req.DeliveryAddress)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			case errors.Is(err, store.ErrDuplicate):
				c.JSON(http.StatusConflict, gin.H{"error": "checkout already in progress"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
			}
			return
		}
		c.JSON(http.StatusCreated, orders)
	}
}

// GET /user/orders
func GetUserOrdersHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.ListByUser(c.GetString("user_id")))
	}
}

// GET /vendor/orders
func GetVendorOrdersHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.ListByVendor(c.GetString("user_id")))
	}
}

// GET /admin/orders
func GetAllOrdersHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.ListAll())
	}
}

// GET /.../orders/:orderID
// Accepts the order id or the order ref. Absence renders as a 404 empty
// state, not a failure.
func GetOrderByIDHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		order, err := orders.Get(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /vendor/orders/:orderID/status
// Vendor-driven fulfillment advance, validated against the transition table.
func UpdateOrderStatusHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID := c.GetString("user_id")
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.MapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := orders.Get(orderID)
		if err != nil || order.VendorID != vendorID {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		if err := orders.UpdateStatus(orderID, newStatus); err != nil {
			if errors.Is(err, store.ErrInvalidTransition) {
				c.JSON(http.StatusConflict, gin.H{"error": "illegal status transition"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
