package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ozguragaoglu95/pastayapp-api/models"
)

// RequestStore holds custom cake requests, their offers and chat threads.
// Requests are never hard-deleted; cancellation is a status.
type RequestStore struct {
	mu       sync.Mutex
	requests map[string]*models.CustomRequest

	// onMessage, when set, is invoked after a chat message is appended.
	// Used by the websocket feed; called outside the lock.
	onMessage func(models.ChatMessage)
}

func NewRequestStore() *RequestStore {
	return &RequestStore{requests: make(map[string]*models.CustomRequest)}
}

// OnMessage registers the chat broadcast hook. Must be called before the
// store is shared.
func (s *RequestStore) OnMessage(fn func(models.ChatMessage)) {
	s.onMessage = fn
}

// AddRequest creates a request in status pending with no offers and returns
// the created entity so the caller can keep its id.
func (s *RequestStore) AddRequest(spec models.CakeSpec, referenceImages []string, userID string) models.CustomRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	req := &models.CustomRequest{
		ID:              uuid.NewString(),
		UserID:          userID,
		Spec:            spec,
		ReferenceImages: append([]string(nil), referenceImages...),
		Status:          models.RequestStatusPending,
		Offers:          []models.Offer{},
		Messages:        []models.ChatMessage{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.requests[req.ID] = req
	return *req
}

func (s *RequestStore) Get(id string) (models.CustomRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return models.CustomRequest{}, ErrNotFound
	}
	return cloneRequest(req), nil
}

func (s *RequestStore) ListByUser(userID string) []models.CustomRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.CustomRequest
	for _, req := range s.requests {
		if req.UserID == userID {
			out = append(out, cloneRequest(req))
		}
	}
	sortRequests(out)
	return out
}

// ListOpen returns requests vendors may still offer on. Requests the given
// vendor has already offered on are filtered out.
func (s *RequestStore) ListOpen(vendorID string) []models.CustomRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.CustomRequest
	for _, req := range s.requests {
		if !req.Status.AcceptsOffers() && req.Status != models.RequestStatusOffersReceived {
			continue
		}
		offered := false
		for _, o := range req.Offers {
			if o.VendorID == vendorID {
				offered = true
				break
			}
		}
		if !offered {
			out = append(out, cloneRequest(req))
		}
	}
	sortRequests(out)
	return out
}

func (s *RequestStore) ListAll() []models.CustomRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CustomRequest, 0, len(s.requests))
	for _, req := range s.requests {
		out = append(out, cloneRequest(req))
	}
	sortRequests(out)
	return out
}

// AddOffer attaches a vendor offer with a fresh id, prepended so the newest
// offer renders first. The first offer against a request still waiting
// promotes it to offers_received; any other status is left untouched.
func (s *RequestStore) AddOffer(requestID string, offer models.Offer) (models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[requestID]
	if !ok {
		return models.Offer{}, ErrNotFound
	}

	offer.ID = uuid.NewString()
	offer.RequestID = requestID
	offer.CreatedAt = time.Now()
	req.Offers = append([]models.Offer{offer}, req.Offers...)

	if req.Status.AcceptsOffers() {
		req.Status = models.RequestStatusOffersReceived
	}
	req.UpdatedAt = time.Now()
	return offer, nil
}

// UpdateStatus sets the request status. Terminal requests reject further
// updates. selectedOfferID, when non-empty, must name an attached offer and
// overwrites the stored selection; when empty the existing selection is
// preserved, never cleared implicitly.
func (s *RequestStore) UpdateStatus(id string, status models.RequestStatus, selectedOfferID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return ErrNotFound
	}
	if req.Status.Terminal() {
		return ErrInvalidTransition
	}
	if selectedOfferID != "" {
		if _, found := req.FindOffer(selectedOfferID); !found {
			return ErrOfferNotFound
		}
		req.SelectedOfferID = selectedOfferID
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	return nil
}

// UpdateSpec replaces the whole cake spec. Only requests still in an
// editable status accept edits.
func (s *RequestStore) UpdateSpec(id string, spec models.CakeSpec) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return ErrNotFound
	}
	if !req.Status.Editable() {
		return ErrEditNotAllowed
	}
	req.Spec = spec
	req.UpdatedAt = time.Now()
	return nil
}

// Cancel moves any non-terminal request to cancelled.
func (s *RequestStore) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return ErrNotFound
	}
	if req.Status.Terminal() {
		return ErrInvalidTransition
	}
	req.Status = models.RequestStatusCancelled
	req.UpdatedAt = time.Now()
	return nil
}

// SendMessage appends a chat message to the request's thread and notifies
// the feed hook.
func (s *RequestStore) SendMessage(requestID, text, senderID string, role models.Role) (models.ChatMessage, error) {
	s.mu.Lock()
	req, ok := s.requests[requestID]
	if !ok {
		s.mu.Unlock()
		return models.ChatMessage{}, ErrNotFound
	}

	msg := models.ChatMessage{
		ID:         uuid.NewString(),
		RequestID:  requestID,
		SenderID:   senderID,
		SenderRole: role,
		Text:       text,
		CreatedAt:  time.Now(),
	}
	req.Messages = append(req.Messages, msg)
	req.UpdatedAt = msg.CreatedAt
	hook := s.onMessage
	s.mu.Unlock()

	if hook != nil {
		hook(msg)
	}
	return msg, nil
}

func cloneRequest(req *models.CustomRequest) models.CustomRequest {
	out := *req
	out.ReferenceImages = append([]string(nil), req.ReferenceImages...)
	out.Offers = append([]models.Offer(nil), req.Offers...)
	out.Messages = append([]models.ChatMessage(nil), req.Messages...)
	return out
}

func sortRequests(reqs []models.CustomRequest) {
	sort.Slice(reqs, func(i, j int) bool {
		return reqs[i].CreatedAt.After(reqs[j].CreatedAt)
	})
}
