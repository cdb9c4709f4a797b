// Package notify implements the transient one-shot user notifications the
// console shows in its status bar. The API gateway and media host adapter
// publish here; the UI drains pending notifications and shows each exactly
// once.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a notification for styling.
type Level int

// Notification levels.
const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Notification is a single one-shot message.
type Notification struct {
	ID      string
	Level   Level
	Message string
	At      time.Time
}

// Center collects pending notifications. The zero value is usable.
type Center struct {
	mu      sync.Mutex
	pending []Notification
}

// NewCenter builds an empty Center.
func NewCenter() *Center {
	return &Center{}
}

// Publish queues a notification at the given level.
func (c *Center) Publish(level Level, message string) {
	if message == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, Notification{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
		At:      time.Now(),
	})
}

// Success queues a success notification.
func (c *Center) Success(message string) { c.Publish(LevelSuccess, message) }

// Error queues an error notification.
func (c *Center) Error(message string) { c.Publish(LevelError, message) }

// Info queues an informational notification.
func (c *Center) Info(message string) { c.Publish(LevelInfo, message) }

// Drain returns all pending notifications in publish order and clears the
// queue. Each notification is therefore delivered at most once.
func (c *Center) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	drained := c.pending
	c.pending = nil
	return drained
}
