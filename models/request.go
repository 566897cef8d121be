package models

import (
	"errors"
	"strings"
	"time"
)

type RequestStatus string

const (
	RequestStatusPending        RequestStatus = "pending"         // Submitted, no vendor has responded yet
	RequestStatusDraft          RequestStatus = "draft"           // Saved but not published to vendors
	RequestStatusWaitingOffers  RequestStatus = "waiting_offers"  // Published, visible to vendors
	RequestStatusOffersReceived RequestStatus = "offers_received" // At least one offer attached
	RequestStatusOfferSelected  RequestStatus = "offer_selected"  // Customer picked an offer, not yet agreed
	RequestStatusAgreed         RequestStatus = "agreed"          // Offer accepted, order created
	RequestStatusInProgress     RequestStatus = "in_progress"     // Vendor is baking
	RequestStatusReady          RequestStatus = "ready"           // Ready for pickup/delivery
	RequestStatusDelivered      RequestStatus = "delivered"       // Customer received the cake
	RequestStatusCancelled      RequestStatus = "cancelled"       // Cancelled by customer or admin
)

// MapRequestStatus maps a wire string to a RequestStatus.
func MapRequestStatus(status string) (RequestStatus, error) {
	switch RequestStatus(strings.ToLower(status)) {
	case RequestStatusPending, RequestStatusDraft, RequestStatusWaitingOffers,
		RequestStatusOffersReceived, RequestStatusOfferSelected, RequestStatusAgreed,
		RequestStatusInProgress, RequestStatusReady, RequestStatusDelivered,
		RequestStatusCancelled:
		return RequestStatus(strings.ToLower(status)), nil
	default:
		return "", errors.New("invalid request status")
	}
}

// Editable reports whether the customer may still replace the cake spec.
func (s RequestStatus) Editable() bool {
	return s == RequestStatusPending || s == RequestStatusDraft || s == RequestStatusWaitingOffers
}

// Terminal reports whether the request can no longer change state.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusDelivered || s == RequestStatusCancelled
}

// AcceptsOffers reports whether a new offer auto-promotes the request to
// offers_received.
func (s RequestStatus) AcceptsOffers() bool {
	return s == RequestStatusPending || s == RequestStatusDraft || s == RequestStatusWaitingOffers
}

// CakeSpec is the free-form description of what the customer wants. It is a
// value object: replaced wholesale on edit, never patched field by field.
type CakeSpec struct {
	Occasion     string `json:"occasion"`
	Portions     int    `json:"portions"`
	Flavor       string `json:"flavor"`
	Filling      string `json:"filling"`
	Frosting     string `json:"frosting"`
	Recipient    string `json:"recipient"`
	AllergyInfo  string `json:"allergy_info"`
	Note         string `json:"note"`
	TemplateID   string `json:"template_id,omitempty"`
	VendorID     string `json:"vendor_id,omitempty"`
	ConceptImage string `json:"concept_image,omitempty"`
}

type MatchLevel string

const (
	MatchExact    MatchLevel = "EXACT"
	MatchClose    MatchLevel = "CLOSE"
	MatchInspired MatchLevel = "INSPIRED"
)

// MapMatchLevel maps a wire string to a MatchLevel.
func MapMatchLevel(level string) (MatchLevel, error) {
	switch MatchLevel(strings.ToUpper(level)) {
	case MatchExact, MatchClose, MatchInspired:
		return MatchLevel(strings.ToUpper(level)), nil
	default:
		return "", errors.New("invalid match level")
	}
}

// Offer is a vendor's priced proposal against a request. Immutable once
// created; the newest offer sits at the head of the request's offer list.
type Offer struct {
	ID                string     `json:"id"`
	RequestID         string     `json:"request_id"`
	VendorID          string     `json:"vendor_id"`
	TotalPrice        float64    `json:"total_price"`
	EarliestReady     time.Time  `json:"earliest_ready"`
	DeliverySupported bool       `json:"delivery_supported"`
	MatchLevel        MatchLevel `json:"match_level"`
	Flags             []string   `json:"flags"`
	Note              string     `json:"note"`
	CreatedAt         time.Time  `json:"created_at"`
}

// CustomRequest is a customer's cake request with its offers and chat thread.
type CustomRequest struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	Spec            CakeSpec      `json:"spec"`
	ReferenceImages []string      `json:"reference_images"`
	Status          RequestStatus `json:"status"`
	Offers          []Offer       `json:"offers"`
	SelectedOfferID string        `json:"selected_offer_id,omitempty"`
	Messages        []ChatMessage `json:"messages"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// FindOffer returns the offer with the given id, if attached to this request.
func (r *CustomRequest) FindOffer(offerID string) (Offer, bool) {
	for _, o := range r.Offers {
		if o.ID == offerID {
			return o, true
		}
	}
	return Offer{}, false
}
