package messaging

import (
	"context"

	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a customization event to the message broker
	PublishEvent(ctx context.Context, event *schema.CustomizationEvent) error
	// Close closes the connection
	Close()
}
