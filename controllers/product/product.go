package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozguragaoglu95/pastayapp-api/localstore"
	"github.com/ozguragaoglu95/pastayapp-api/models"
	"github.com/ozguragaoglu95/pastayapp-api/store"
)

// GET /user/templates
func GetTemplates(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		if vendorID := c.Query("vendor_id"); vendorID != "" {
			c.JSON(http.StatusOK, catalog.TemplatesByVendor(vendorID))
			return
		}
		c.JSON(http.StatusOK, catalog.Templates())
	}
}

// GET /user/templates/:id
// Fetching a template detail records it on the viewer's recently-viewed list.
func GetTemplateByID(catalog *store.Catalog, drafts *localstore.Drafts) gin.HandlerFunc {
	return func(c *gin.Context) {
		template, err := catalog.Template(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}

		// Best-effort, like the client's local storage writes.
		if userID := c.GetString("user_id"); userID != "" {
			_ = drafts.RecordViewed(userID, template.ID)
		}
		c.JSON(http.StatusOK, template)
	}
}

// GET /user/templates/recently-viewed
func GetRecentlyViewed(catalog *store.Catalog, drafts *localstore.Drafts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		ids := drafts.RecentlyViewed(userID)
		templates := make([]models.TemplateProduct, 0, len(ids))
		for _, id := range ids {
			if t, err := catalog.Template(id); err == nil {
				templates = append(templates, t)
			}
		}
		c.JSON(http.StatusOK, templates)
	}
}

// GET /user/vendors
func GetVendors(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.Vendors())
	}
}
