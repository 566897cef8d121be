package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozguragaoglu95/pastayapp-api/store"
)

// GET /admin/dashboard
func GetDashboard(users *store.UserStore, requests *store.RequestStore, orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestsByStatus := make(map[string]int)
		for _, r := range requests.ListAll() {
			requestsByStatus[string(r.Status)]++
		}

		ordersByStatus := make(map[string]int)
		var gross, commission float64
		allOrders := orders.ListAll()
		for _, o := range allOrders {
			ordersByStatus[string(o.Status)]++
			gross += o.TotalPrice
			commission += o.Commission
		}

		c.JSON(http.StatusOK, gin.H{
			"users":              len(users.List()),
			"requests_by_status": requestsByStatus,
			"orders":             len(allOrders),
			"orders_by_status":   ordersByStatus,
			"gross_total":        gross,
			"commission_total":   commission,
		})
	}
}

// GET /admin/requests
func GetAllRequests(requests *store.RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, requests.ListAll())
	}
}

// POST /admin/requests/:id/cancel
// Admin override: cancel any non-terminal request.
func CancelRequest(requests *store.RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := requests.Cancel(c.Param("id")); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Request cannot be cancelled"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Request cancelled"})
	}
}
