package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// SubjectPrefix is the root of every customization event subject
const SubjectPrefix = "canvas.events"

// Envelope is the wire form of a customization event
type Envelope struct {
	ID        string           `json:"id"`
	Type      domain.EventType `json:"type"`
	AssetID   uint64           `json:"asset_id"`
	Actor     string           `json:"actor"`
	Timestamp int64            `json:"timestamp"`
	Payload   json.RawMessage  `json:"payload,omitempty"`
	Digest    string           `json:"digest"`
}

// NewEnvelope builds the wire envelope of an outbox row
func NewEnvelope(event *schema.CustomizationEvent) Envelope {
	var payload json.RawMessage
	if len(event.Payload) > 0 {
		payload = json.RawMessage(event.Payload)
	}

	return Envelope{
		ID:        event.ID,
		Type:      event.Type,
		AssetID:   event.AssetID,
		Actor:     event.Actor,
		Timestamp: event.Timestamp,
		Payload:   payload,
		Digest:    event.Digest,
	}
}

// Subject returns the subject an event is published on, e.g. canvas.events.trait_applied
func Subject(eventType domain.EventType) string {
	return fmt.Sprintf("%s.%s", SubjectPrefix, eventType)
}
