package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ozguragaoglu95/pastayapp-api/auth"
	draftControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/draft"
	"github.com/ozguragaoglu95/pastayapp-api/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints plus the anonymous draft
// save used by the pre-registration wizard flow.
func SetupAuthRoutes(r *gin.Engine, deps *Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(deps.Market.Users, deps.Market.Requests, deps.Drafts))
		authGroup.POST("/login", auth.LoginHandler(deps.Market.Users, deps.Market.Requests, deps.Drafts))
		authGroup.POST("/switch-role", middleware.ValidateToken, auth.SwitchRoleHandler(deps.Market.Users))
		authGroup.POST("/logout", middleware.ValidateToken, auth.LogoutHandler(deps.Drafts))
	}

	// Anonymous wizard drafts, claimed later through /auth with draft_key
	r.PUT("/drafts/:key", draftControllers.SaveAnonymousDraft(deps.Drafts))
}
