package requestControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ozguragaoglu95/pastayapp-api/models"
	"github.com/ozguragaoglu95/pastayapp-api/store"
)

type CreateRequestInput struct {
	Spec            models.CakeSpec `json:"spec" binding:"required"`
	ReferenceImages []string        `json:"reference_images"`
}

type UpdateSpecInput struct {
	Spec models.CakeSpec `json:"spec" binding:"required"`
}

type OfferInput struct {
	TotalPrice        float64   `json:"total_price" binding:"required,gt=0"`
	EarliestReady     time.Time `json:"earliest_ready" binding:"required"`
	DeliverySupported bool      `json:"delivery_supported"`
	MatchLevel        string    `json:"match_level" binding:"required"`
	Flags             []string  `json:"flags"`
	Note              string    `json:"note"`
}

type AcceptOfferInput struct {
	OfferID         string         `json:"offer_id" binding:"required"`
	DeliveryAddress models.Address `json:"delivery_address"`
}

type UpdateRequestStatusInput struct {
	Status          string `json:"status" binding:"required"`
	SelectedOfferID string `json:"selected_offer_id"`
}

// POST /user/requests
func CreateRequest(requests *store.RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CreateRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		req := requests.AddRequest(input.Spec, input.ReferenceImages, userID)
		c.JSON(http.StatusCreated, req)
	}
}

// GET /user/requests
func ListMyRequests(requests *store.RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, requests.ListByUser(c.GetString("user_id")))
	}
}

// GET /user/requests/:id
func GetRequest(requests *store.RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := requests.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		c.JSON(http.StatusOK, req)
	}
}

// PUT /user/requests/:id/spec
func UpdateRequestSpec(requests *store.RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		id := c.Param("id")

		req, err := requests.Get(id)
		if err != nil || req.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}

		var input UpdateSpecInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := requests.UpdateSpec(id, input.Spec); err != nil {
			if errors.Is(err, store.ErrEditNotAllowed) {
				c.JSON(http.StatusConflict, gin.H{"error": "Request is no longer editable"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Request updated"})
	}
}

// POST /user/requests/:id/cancel
func CancelRequest(requests *store.RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		id := c.Param("id")

		req, err := requests.Get(id)
		if err != nil || req.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}

		if err := requests.Cancel(id); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Request can no longer be cancelled"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Request cancelled"})
	}
}

// POST /user/requests/:id/accept-offer
func AcceptOffer(market *store.Marketplace) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		id := c.Param("id")

		var input AcceptOfferInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := market.AcceptOffer(id, input.OfferID, userID, input.DeliveryAddress)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			case errors.Is(err, store.ErrOfferNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found on request"})
			case errors.Is(err, store.ErrDuplicate):
				c.JSON(http.StatusConflict, gin.H{"error": "Acceptance already in progress"})
			case errors.Is(err, store.ErrInvalidTransition):
				c.JSON(http.StatusConflict, gin.H{"error": "Request can no longer accept offers"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept offer"})
			}
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /vendor/requests
func ListOpenRequests(requests *store.RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, requests.ListOpen(c.GetString("user_id")))
	}
}

// POST /vendor/requests/:id/offers
func SubmitOffer(requests *store.RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID := c.GetString("user_id")
		id := c.Param("id")

		var input OfferInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		matchLevel, err := models.MapMatchLevel(input.MatchLevel)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		offer, err := requests.AddOffer(id, models.Offer{
			VendorID:          vendorID,
			TotalPrice:        input.TotalPrice,
			EarliestReady:     input.EarliestReady,
			DeliverySupported: input.DeliverySupported,
			MatchLevel:        matchLevel,
			Flags:             input.Flags,
			Note:              input.Note,
		})
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		c.JSON(http.StatusCreated, offer)
	}
}

// PUT /vendor/requests/:id/status
// The vendor advances fulfillment of an agreed request.
func UpdateRequestStatus(requests *store.RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input UpdateRequestStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, err := models.MapRequestStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := requests.UpdateStatus(id, status, input.SelectedOfferID); err != nil {
			switch {
			case errors.Is(err, store.ErrOfferNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Selected offer not found on request"})
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			case errors.Is(err, store.ErrInvalidTransition):
				c.JSON(http.StatusConflict, gin.H{"error": "Request is closed"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
	}
}
