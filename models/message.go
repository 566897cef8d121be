package models

import "time"

// ChatMessage is one entry in a request's chat thread. The thread is
// append-only and ordered by creation; messages are never edited or deleted.
type ChatMessage struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id"`
	SenderID   string    `json:"sender_id"`
	SenderRole Role      `json:"sender_role"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
