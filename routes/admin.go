package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/admin"
	orderControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/order"
	userControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/user"
	"github.com/ozguragaoglu95/pastayapp-api/middleware"
	"github.com/ozguragaoglu95/pastayapp-api/models"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an admin JWT.
func SetupAdminRoutes(r *gin.Engine, deps *Deps) {
	m := deps.Market

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		adminGroup.GET("/dashboard", adminControllers.GetDashboard(m.Users, m.Requests, m.Orders))
		adminGroup.GET("/users", userControllers.GetAllUsers(m.Users))
		adminGroup.GET("/requests", adminControllers.GetAllRequests(m.Requests))
		adminGroup.POST("/requests/:id/cancel", adminControllers.CancelRequest(m.Requests))
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(m.Orders))
		adminGroup.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(m.Orders))
	}
}
