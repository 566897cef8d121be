package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/order"
	requestControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/request"
	vendorControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/vendor"
	"github.com/ozguragaoglu95/pastayapp-api/middleware"
	"github.com/ozguragaoglu95/pastayapp-api/models"
)

// SetupVendorRoutes registers all "/vendor/*" endpoints. Requires a vendor JWT.
func SetupVendorRoutes(r *gin.Engine, deps *Deps) {
	m := deps.Market

	vendorGroup := r.Group("/vendor")
	vendorGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleVendor))
	{
		// ──────────────── Open Requests & Offers ────────────────
		vendorGroup.GET("/requests", requestControllers.ListOpenRequests(m.Requests))
		vendorGroup.GET("/requests/:id", requestControllers.GetRequest(m.Requests))
		vendorGroup.POST("/requests/:id/offers", requestControllers.SubmitOffer(m.Requests))
		vendorGroup.PUT("/requests/:id/status", requestControllers.UpdateRequestStatus(m.Requests))
		vendorGroup.POST("/requests/:id/messages", requestControllers.SendMessage(m.Requests))

		// ──────────────── Fulfillment ────────────────
		vendorGroup.GET("/orders", orderControllers.GetVendorOrdersHandler(m.Orders))
		vendorGroup.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(m.Orders))
		vendorGroup.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(m.Orders))

		// ──────────────── Finance ────────────────
		vendorGroup.GET("/finance/export", vendorControllers.ExportFinanceToExcel(m.Orders))
	}
}
