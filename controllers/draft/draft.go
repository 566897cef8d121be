package draftControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozguragaoglu95/pastayapp-api/localstore"
	"github.com/ozguragaoglu95/pastayapp-api/models"
)

// Draft endpoints persist the design wizard's working state so an
// interrupted flow (usually forced authentication) resumes exactly where it
// left off. Anonymous callers address their draft with a client-generated
// key via /auth's draft_key field instead.

// GET /user/draft
func GetDraft(drafts *localstore.Drafts) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft, ok := drafts.Get(c.GetString("user_id"))
		if !ok {
			// Missing and corrupt both read as "nothing to restore".
			c.JSON(http.StatusNotFound, gin.H{"error": "No saved draft"})
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// PUT /user/draft
func SaveDraft(drafts *localstore.Drafts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft models.WizardDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := drafts.Save(c.GetString("user_id"), draft); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Draft saved"})
	}
}

// DELETE /user/draft
func DeleteDraft(drafts *localstore.Drafts) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := drafts.Delete(c.GetString("user_id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete draft"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Draft deleted"})
	}
}

// PUT /drafts/:key
// Anonymous save: the client supplies its own draft key and hands the same
// key to /auth/register or /auth/login to resume.
func SaveAnonymousDraft(drafts *localstore.Drafts) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "draft key is required"})
			return
		}

		var draft models.WizardDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := drafts.Save(key, draft); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Draft saved"})
	}
}
