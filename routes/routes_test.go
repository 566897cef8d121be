package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	requestControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/request"
	"github.com/ozguragaoglu95/pastayapp-api/localstore"
	"github.com/ozguragaoglu95/pastayapp-api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	kv, err := localstore.Open(":memory:")
	require.NoError(t, err)

	vendors, templates := store.SeedCatalog()
	requests := store.NewRequestStore()
	market := store.NewMarketplace(
		store.NewCatalog(vendors, templates),
		store.NewUserStore(),
		store.NewCartStore(),
		requests,
		store.NewOrderStore(),
		store.DefaultCommissionRate,
	)
	feed := requestControllers.NewChatFeed()
	requests.OnMessage(feed.Broadcast)

	r := gin.New()
	SetupRoutes(r, &Deps{Market: market, Drafts: localstore.NewDrafts(kv), Feed: feed})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, name, email, role string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name": name, "email": email, "role": role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestCartFlow(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "Ayşe", "ayse@example.com", "customer")

	line := gin.H{
		"template_product_id": "t-drip-caramel",
		"selected_options":    gin.H{"size": []string{"15p"}, "flavor": []string{"chocolate"}},
		"quantity":            1,
	}
	w := doJSON(t, r, http.MethodPost, "/user/cart/", token, line)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Same selection again merges instead of duplicating.
	line["quantity"] = 2
	w = doJSON(t, r, http.MethodPost, "/user/cart/", token, line)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/user/cart/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cart struct {
		Items      []struct{ Fingerprint string } `json:"items"`
		TotalItems int                            `json:"total_items"`
		TotalPrice float64                        `json:"total_price"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.TotalItems)
	assert.Equal(t, 4800.0, cart.TotalPrice) // (1350+250) * 3

	w = doJSON(t, r, http.MethodPost, "/user/checkout", token, gin.H{
		"delivery_address": gin.H{"city": "Istanbul"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/user/cart/", token, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Zero(t, cart.TotalItems)
}

func TestRequestOfferOrderFlow(t *testing.T) {
	r := newTestRouter(t)
	customer := registerAndLogin(t, r, "Ayşe", "ayse@example.com", "customer")
	vendor := registerAndLogin(t, r, "Karamel", "karamel@example.com", "vendor")

	// Customer submits a request.
	w := doJSON(t, r, http.MethodPost, "/user/requests/", customer, gin.H{
		"spec": gin.H{"occasion": "birthday", "portions": 15, "flavor": "chocolate"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "pending", created.Status)

	// Vendor sees it and offers.
	w = doJSON(t, r, http.MethodGet, "/vendor/requests", vendor, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/vendor/requests/"+created.ID+"/offers", vendor, gin.H{
		"total_price":    2500,
		"earliest_ready": time.Now().Add(72 * time.Hour),
		"match_level":    "CLOSE",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var offer struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &offer))

	// Customer accepts; an order materializes, linked both ways.
	w = doJSON(t, r, http.MethodPost, "/user/requests/"+created.ID+"/accept-offer", customer, gin.H{
		"offer_id":         offer.ID,
		"delivery_address": gin.H{"city": "Izmir"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order struct {
		ID         string  `json:"id"`
		RequestID  string  `json:"request_id"`
		TotalPrice float64 `json:"total_price"`
		Commission float64 `json:"commission"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, created.ID, order.RequestID)
	assert.Equal(t, 2500.0, order.TotalPrice)
	assert.Equal(t, 250.0, order.Commission)

	// Vendor advances fulfillment; an illegal jump is rejected.
	w = doJSON(t, r, http.MethodPut, "/vendor/orders/"+order.ID+"/status", vendor, gin.H{"status": "delivered"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPut, "/vendor/orders/"+order.ID+"/status", vendor, gin.H{"status": "preparing"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Chat works for both parties on the same thread.
	w = doJSON(t, r, http.MethodPost, "/user/requests/"+created.ID+"/messages", customer, gin.H{"text": "can it be ready Friday?"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/vendor/requests/"+created.ID+"/messages", vendor, gin.H{"text": "yes"})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestRoleGating(t *testing.T) {
	r := newTestRouter(t)
	customer := registerAndLogin(t, r, "Ayşe", "ayse@example.com", "customer")

	// No token
	w := doJSON(t, r, http.MethodGet, "/user/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong role
	w = doJSON(t, r, http.MethodGet, "/vendor/orders", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, r, http.MethodGet, "/admin/dashboard", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDraftResumeWithAutoSubmit(t *testing.T) {
	r := newTestRouter(t)

	// Anonymous user saves the wizard state mid-flow with auto_submit set.
	w := doJSON(t, r, http.MethodPut, "/drafts/anon-abc", "", gin.H{
		"step":        3,
		"design_name": "Gold birthday",
		"spec":        gin.H{"occasion": "birthday", "portions": 15, "flavor": "chocolate"},
		"auto_submit": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Registration with the draft key completes request creation.
	w = doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Ayşe", "email": "ayse@example.com", "draft_key": "anon-abc",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token            string `json:"token"`
		ResumedRequestID string `json:"resumed_request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ResumedRequestID)

	w = doJSON(t, r, http.MethodGet, "/user/requests/"+resp.ResumedRequestID, resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var req struct {
		Status string `json:"status"`
		Spec   struct {
			Occasion string `json:"occasion"`
		} `json:"spec"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &req))
	assert.Equal(t, "pending", req.Status)
	assert.Equal(t, "birthday", req.Spec.Occasion)
}

func TestUpdateProfile(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "Ayşe", "ayse@example.com", "customer")

	w := doJSON(t, r, http.MethodPut, "/user/", token, gin.H{
		"name":  "Ayşe Yılmaz",
		"phone": "+90 555 000 0000",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Ayşe Yılmaz", profile.Name)
	assert.Equal(t, "+90 555 000 0000", profile.Phone)

	// Persisted, not just echoed.
	w = doJSON(t, r, http.MethodGet, "/user/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Ayşe Yılmaz", profile.Name)
	assert.Equal(t, "+90 555 000 0000", profile.Phone)

	// Address-only update leaves name and phone alone.
	w = doJSON(t, r, http.MethodPut, "/user/", token, gin.H{
		"address": gin.H{"city": "Izmir"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Ayşe Yılmaz", profile.Name)
	assert.Equal(t, "+90 555 000 0000", profile.Phone)
}

func TestChatFeedBroadcast(t *testing.T) {
	r := newTestRouter(t)
	customer := registerAndLogin(t, r, "Ayşe", "ayse@example.com", "customer")
	vendor := registerAndLogin(t, r, "Karamel", "karamel@example.com", "vendor")

	w := doJSON(t, r, http.MethodPost, "/user/requests/", customer, gin.H{
		"spec": gin.H{"occasion": "birthday", "portions": 15, "flavor": "chocolate"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	srv := httptest.NewServer(r)
	defer srv.Close()

	dial := func(token string) *websocket.Conn {
		t.Helper()
		wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/user/requests/" + created.ID + "/chat/ws"
		conn, resp, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Authorization": {token}})
		require.NoError(t, err)
		resp.Body.Close()
		// Give the handler a beat to register the subscription.
		time.Sleep(50 * time.Millisecond)
		return conn
	}

	conn := dial(customer)
	defer conn.Close()

	// A subscriber that hangs up must not break delivery to the rest.
	gone := dial(customer)
	gone.Close()

	w = doJSON(t, r, http.MethodPost, "/vendor/requests/"+created.ID+"/messages", vendor, gin.H{"text": "yes, Friday works"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg struct {
		RequestID string `json:"request_id"`
		Text      string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, created.ID, msg.RequestID)
	assert.Equal(t, "yes, Friday works", msg.Text)

	w = doJSON(t, r, http.MethodPost, "/user/requests/"+created.ID+"/messages", customer, gin.H{"text": "great"})
	require.Equal(t, http.StatusCreated, w.Code)

	_, data, err = conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "great", msg.Text)
}

func TestLogoutClearsDraft(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "Ayşe", "ayse@example.com", "customer")

	w := doJSON(t, r, http.MethodPut, "/user/draft", token, gin.H{
		"step": 1, "spec": gin.H{"occasion": "wedding"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Token is stateless, but the pending wizard state is gone.
	w = doJSON(t, r, http.MethodGet, "/user/draft", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
