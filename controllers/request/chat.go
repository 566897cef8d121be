package requestControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ozguragaoglu95/pastayapp-api/models"
	"github.com/ozguragaoglu95/pastayapp-api/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatFeed fans appended chat messages out to websocket clients subscribed
// per request thread.
type ChatFeed struct {
	mu      sync.Mutex
	clients map[string]map[*websocket.Conn]bool // request id -> connections
}

func NewChatFeed() *ChatFeed {
	return &ChatFeed{clients: make(map[string]map[*websocket.Conn]bool)}
}

// Broadcast pushes a message to every client watching its thread. Wire this
// into RequestStore.OnMessage.
func (f *ChatFeed) Broadcast(msg models.ChatMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients[msg.RequestID] {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(f.clients[msg.RequestID], conn)
		}
	}
}

func (f *ChatFeed) subscribe(requestID string, conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clients[requestID] == nil {
		f.clients[requestID] = make(map[*websocket.Conn]bool)
	}
	f.clients[requestID][conn] = true
}

func (f *ChatFeed) unsubscribe(requestID string, conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.clients[requestID], conn)
}

type SendMessageInput struct {
	Text string `json:"text" binding:"required"`
}

// POST /.../requests/:id/messages
func SendMessage(requests *store.RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		role := models.Role(c.GetString("role"))
		id := c.Param("id")

		var input SendMessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		msg, err := requests.SendMessage(id, input.Text, userID, role)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

// GET /user/requests/:id/chat/ws
func ChatWebSocketHandler(requests *store.RequestStore, feed *ChatFeed) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := requests.Get(id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		feed.subscribe(id, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				feed.unsubscribe(id, conn)
				break
			}
		}
	}
}
