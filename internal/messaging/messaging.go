package messaging

import (
	"context"

	"github.com/atelier-labs/fashion-indexer/internal/domain"
)

// EventHandler is called for each normalized platform event
type EventHandler func(event *domain.Event) error

// Publisher defines the interface for publishing events to the message queue
//
//go:generate mockgen -source=messaging.go -destination=../mocks/messaging.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a normalized event to the message broker
	PublishEvent(ctx context.Context, event *domain.Event) error
	// Close closes the connection
	Close()
}

// Subscriber defines the interface for subscribing to on-chain platform events
//
//go:generate mockgen -source=messaging.go -destination=../mocks/messaging.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents subscribes to platform contract events starting at
	// fromBlock (0 for latest) and invokes handler for each decoded event
	SubscribeEvents(ctx context.Context, fromBlock uint64, handler EventHandler) error

	// GetLatestBlock returns the latest block number
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection and cleans up resources
	Close()
}
