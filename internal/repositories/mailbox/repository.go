// Package mailbox provides the interface for cross-character deliveries
package mailbox

//go:generate mockgen -destination=mock/mock_repository.go -package=mailboxmock github.com/a602017206/WordRPGGame/internal/repositories/mailbox Repository

import (
	"context"

	"github.com/a602017206/WordRPGGame/internal/entities"
)

// Repository defines the interface for per-character delivery queues.
// Entries are delivered in the order they were enqueued.
type Repository interface {
	// Enqueue appends a delivery to a character's mailbox
	Enqueue(ctx context.Context, input EnqueueInput) (*EnqueueOutput, error)

	// List returns all pending deliveries without removing them
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Drain returns all pending deliveries and empties the mailbox
	Drain(ctx context.Context, input DrainInput) (*DrainOutput, error)
}

// EnqueueInput defines the input for enqueueing a delivery
type EnqueueInput struct {
	CharacterID string
	Entry       *entities.MailEntry
}

// EnqueueOutput defines the output for enqueueing a delivery
type EnqueueOutput struct{}

// ListInput defines the input for listing deliveries
type ListInput struct {
	CharacterID string
}

// ListOutput defines the output for listing deliveries
type ListOutput struct {
	Entries []*entities.MailEntry
}

// DrainInput defines the input for draining a mailbox
type DrainInput struct {
	CharacterID string
}

// DrainOutput defines the output for draining a mailbox
type DrainOutput struct {
	Entries []*entities.MailEntry
}
