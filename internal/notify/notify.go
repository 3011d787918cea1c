// Package notify holds the transient, user-visible messages (toasts) that
// console screens emit after loads and mutations.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a single toast.
type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notifier is what controllers and editors report to.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Center keeps the most recent notifications in a bounded buffer.
type Center struct {
	mu    sync.Mutex
	items []Notification
	limit int
}

// NewCenter keeps at most limit notifications (100 when limit < 1).
func NewCenter(limit int) *Center {
	if limit < 1 {
		limit = 100
	}
	return &Center{limit: limit}
}

func (c *Center) Success(message string) { c.add(LevelSuccess, message) }

func (c *Center) Error(message string) { c.add(LevelError, message) }

func (c *Center) add(level Level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	})
	if over := len(c.items) - c.limit; over > 0 {
		c.items = append([]Notification(nil), c.items[over:]...)
	}
}

// Recent returns up to n notifications, newest first. n < 1 returns all.
func (c *Center) Recent(n int) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n < 1 || n > len(c.items) {
		n = len(c.items)
	}
	out := make([]Notification, 0, n)
	for i := len(c.items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, c.items[i])
	}
	return out
}

// Hub keeps one Center per user, so a toast is only shown to the user whose
// call produced it.
type Hub struct {
	mu      sync.Mutex
	limit   int
	centers map[int64]*Center
}

// NewHub gives every user a Center of limit notifications.
func NewHub(limit int) *Hub {
	return &Hub{limit: limit, centers: make(map[int64]*Center)}
}

// For returns userID's Center, creating it on first use.
func (h *Hub) For(userID int64) *Center {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.centers[userID]
	if !ok {
		c = NewCenter(h.limit)
		h.centers[userID] = c
	}
	return c
}

type notifierKey struct{}

// WithNotifier makes n the notifier for work done under ctx.
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, notifierKey{}, n)
}

// From returns the notifier carried by ctx, or fallback when there is none.
func From(ctx context.Context, fallback Notifier) Notifier {
	if n, ok := ctx.Value(notifierKey{}).(Notifier); ok && n != nil {
		return n
	}
	return fallback
}

// Discard drops every notification. Used where nobody is watching.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
