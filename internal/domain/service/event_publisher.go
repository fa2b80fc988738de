package service

import (
	"context"
	"time"
)

// UserRegisteredEvent is published after a registration transaction commits.
// It is the only coupling between the session core and the mail pipeline.
type UserRegisteredEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishUserRegistered publishes a registration event for async processing.
	PublishUserRegistered(ctx context.Context, event *UserRegisteredEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
