package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozguragaoglu95/pastayapp-api/models"
	"github.com/ozguragaoglu95/pastayapp-api/store"
)

type CartItemInput struct {
	TemplateProductID string              `json:"template_product_id" binding:"required"`
	SelectedOptions   map[string][]string `json:"selected_options"`
	Quantity          int                 `json:"quantity" binding:"required,min=1"`
	Note              string              `json:"note"`
	Extras            []string            `json:"extras"`
}

type UpdateQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GET /user/cart
func GetCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		items := carts.Items(userID)
		totalItems, totalPrice := carts.Totals(userID)

		c.JSON(http.StatusOK, gin.H{
			"items":       items,
			"total_items": totalItems,
			"total_price": totalPrice,
		})
	}
}

// POST /user/cart
// Prices the selection against the catalog and merges into the cart by
// fingerprint.
func AddCartItem(catalog *store.Catalog, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		template, err := catalog.Template(input.TemplateProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		unitPrice, err := catalog.UnitPrice(input.TemplateProductID, input.SelectedOptions)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option selection"})
			return
		}

		line := carts.AddItem(userID, models.CartItem{
			TemplateProductID: template.ID,
			ProductName:       template.Name,
			VendorID:          template.VendorID,
			SelectedOptions:   input.SelectedOptions,
			Quantity:          input.Quantity,
			UnitPrice:         unitPrice,
			Note:              input.Note,
			Extras:            input.Extras,
		})

		c.JSON(http.StatusCreated, line)
	}
}

// PUT /user/cart/:fingerprint
func UpdateCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		fingerprint := c.Param("fingerprint")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := carts.UpdateQuantity(userID, fingerprint, *input.Quantity); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item updated"})
	}
}

// DELETE /user/cart/:fingerprint
func DeleteCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		fingerprint := c.Param("fingerprint")

		if err := carts.RemoveItem(userID, fingerprint); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts.Clear(c.GetString("user_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
