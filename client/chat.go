package client

import (
	"context"
	"strconv"
	"time"

	"github.com/volatiletech/null/v8"
)

// ChatThread is one row on the chat list screen.
type ChatThread struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Avatar        null.String `json:"avatar,omitempty"`
	LastMessage   null.String `json:"last_message,omitempty"`
	LastMessageAt null.Time   `json:"last_message_at,omitempty"`
	Unread        int         `json:"unread"`
}

func (c *Client) Chats(ctx context.Context) ([]ChatThread, error) {
	var threads []ChatThread
	if err := c.get(ctx, "/chats", &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

// ChatMessage is a single message inside a thread.
type ChatMessage struct {
	ID       int       `json:"id"`
	ThreadID int       `json:"thread_id"`
	Sender   string    `json:"sender"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sent_at"` // UTC
	Mine     bool      `json:"mine"`
}

func (c *Client) ChatMessages(ctx context.Context, threadID int) ([]ChatMessage, error) {
	var msgs []ChatMessage
	if err := c.get(ctx, "/chats/"+strconv.Itoa(threadID), &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
