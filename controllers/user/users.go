package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozguragaoglu95/pastayapp-api/models"
	"github.com/ozguragaoglu95/pastayapp-api/store"
)

type UpdateUserInput struct {
	Name    *string         `json:"name"`
	Phone   *string         `json:"phone"`
	Address *models.Address `json:"address"`
}

// GET /user
func GetUser(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.GetByID(c.GetString("user_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user
func UpdateUser(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := users.GetByID(userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if input.Name != nil || input.Phone != nil {
			name, phone := user.Name, user.Phone
			if input.Name != nil {
				name = *input.Name
			}
			if input.Phone != nil {
				phone = *input.Phone
			}
			if user, err = users.UpdateProfile(userID, name, phone); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}

		if input.Address != nil {
			if user, err = users.UpdateAddress(userID, *input.Address); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /admin/users
func GetAllUsers(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, users.List())
	}
}
