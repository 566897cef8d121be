package routes

import (
	"github.com/gin-gonic/gin"
	requestControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/request"
	"github.com/ozguragaoglu95/pastayapp-api/localstore"
	"github.com/ozguragaoglu95/pastayapp-api/store"
)

// Deps carries everything the route groups wire handlers to.
type Deps struct {
	Market *store.Marketplace
	Drafts *localstore.Drafts
	Feed   *requestControllers.ChatFeed
}

// SetupRoutes is the single entry-point that wires up the Auth, User, Vendor
// and Admin route groups.
func SetupRoutes(r *gin.Engine, deps *Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Customer routes (JWT, customer role)
	SetupUserRoutes(r, deps)

	// Vendor routes (JWT, vendor role)
	SetupVendorRoutes(r, deps)

	// Admin routes (JWT, admin role)
	SetupAdminRoutes(r, deps)
}
