package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-canvas/internal/domain"
)

// CustomizationEvent represents the customization_events table - the auditable outbox of every
// successful top-level operation. Rows are written inside the operation's transaction and
// published to the message broker after commit.
type CustomizationEvent struct {
	// ID is a ULID, lexicographically ordered by creation time
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Type identifies the operation that produced the event
	Type domain.EventType `gorm:"column:type;not null;type:text;index:idx_customization_events_type"`
	// AssetID is the asset the event relates to (0 for catalog events)
	AssetID uint64 `gorm:"column:asset_id;not null;default:0;index:idx_customization_events_asset"`
	// Actor is the caller of the operation
	Actor string `gorm:"column:actor;not null;type:text"`
	// Timestamp is the logical clock reading of the operation
	Timestamp int64 `gorm:"column:timestamp;not null"`
	// Payload is the structured event body as JSON
	Payload datatypes.JSON `gorm:"column:payload"`
	// Digest is the Keccak-256 hash of the canonical (JCS) payload
	Digest string `gorm:"column:digest;not null;type:text"`
	// PublishedAt is set once the relay delivered the event to the broker
	PublishedAt *time.Time `gorm:"column:published_at;index:idx_customization_events_published_at"`
	// CreatedAt is the wall-clock time the row was inserted
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the CustomizationEvent model
func (CustomizationEvent) TableName() string {
	return "customization_events"
}
