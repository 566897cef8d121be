package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/cart"
	draftControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/draft"
	orderControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/order"
	productControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/product"
	requestControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/request"
	userControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/user"
	"github.com/ozguragaoglu95/pastayapp-api/middleware"
	"github.com/ozguragaoglu95/pastayapp-api/models"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires a customer JWT.
func SetupUserRoutes(r *gin.Engine, deps *Deps) {
	m := deps.Market

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleCustomer))
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(m.Users))
		userGroup.PUT("/", userControllers.UpdateUser(m.Users))

		// ──────────────── Catalog ────────────────
		userGroup.GET("/vendors", productControllers.GetVendors(m.Catalog))
		userGroup.GET("/templates", productControllers.GetTemplates(m.Catalog))
		userGroup.GET("/templates/recently-viewed", productControllers.GetRecentlyViewed(m.Catalog, deps.Drafts))
		userGroup.GET("/templates/:id", productControllers.GetTemplateByID(m.Catalog, deps.Drafts))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(m.Carts))
			cartGroup.POST("/", cartControllers.AddCartItem(m.Catalog, m.Carts))
			cartGroup.PUT("/:fingerprint", cartControllers.UpdateCartItem(m.Carts))
			cartGroup.DELETE("/:fingerprint", cartControllers.DeleteCartItem(m.Carts))
			cartGroup.DELETE("/", cartControllers.ClearCart(m.Carts))
		}
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(m))

		// ──────────────── Custom Requests ────────────────
		reqGroup := userGroup.Group("/requests")
		{
			reqGroup.POST("/", requestControllers.CreateRequest(m.Requests))
			reqGroup.GET("/", requestControllers.ListMyRequests(m.Requests))
			reqGroup.GET("/:id", requestControllers.GetRequest(m.Requests))
			reqGroup.PUT("/:id/spec", requestControllers.UpdateRequestSpec(m.Requests))
			reqGroup.POST("/:id/cancel", requestControllers.CancelRequest(m.Requests))
			reqGroup.POST("/:id/accept-offer", requestControllers.AcceptOffer(m))
			reqGroup.POST("/:id/messages", requestControllers.SendMessage(m.Requests))
			reqGroup.GET("/:id/chat/ws", requestControllers.ChatWebSocketHandler(m.Requests, deps.Feed))
		}

		// ──────────────── Orders ────────────────
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(m.Orders))
		userGroup.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(m.Orders))

		// ──────────────── Wizard Draft ────────────────
		userGroup.GET("/draft", draftControllers.GetDraft(deps.Drafts))
		userGroup.PUT("/draft", draftControllers.SaveDraft(deps.Drafts))
		userGroup.DELETE("/draft", draftControllers.DeleteDraft(deps.Drafts))
	}
}
