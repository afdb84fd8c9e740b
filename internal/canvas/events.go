package canvas

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// TraitDefinedPayload is the body of a trait_defined event
type TraitDefinedPayload struct {
	Name              string `json:"name"`
	BaseRarity        uint32 `json:"base_rarity"`
	CustomizationCost uint64 `json:"customization_cost"`
	MaxApplications   uint64 `json:"max_applications"`
	Creator           string `json:"creator"`
	Timestamp         int64  `json:"timestamp"`
}

// AssetMintedPayload is the body of an asset_minted event
type AssetMintedPayload struct {
	AssetID      uint64 `json:"asset_id"`
	Owner        string `json:"owner"`
	BaseTemplate string `json:"base_template"`
	RarityScore  uint64 `json:"rarity_score"`
	Fee          uint64 `json:"fee"`
	Timestamp    int64  `json:"timestamp"`
}

// TraitAppliedPayload is the body of a trait_applied event
type TraitAppliedPayload struct {
	AssetID     uint64 `json:"asset_id"`
	SlotIndex   uint32 `json:"slot_index"`
	TraitType   string `json:"trait_type"`
	TraitValue  string `json:"trait_value"`
	RarityTier  uint32 `json:"rarity_tier"`
	RarityScore uint64 `json:"rarity_score"`
	Cost        uint64 `json:"cost"`
	Timestamp   int64  `json:"timestamp"`
}

// AssetLockedPayload is the body of an asset_locked event
type AssetLockedPayload struct {
	AssetID   uint64 `json:"asset_id"`
	Owner     string `json:"owner"`
	Timestamp int64  `json:"timestamp"`
}

// recordEvent writes an outbox row in the operation's transaction.
// The payload is stored in its JCS canonical form and digested with Keccak-256.
func (s *service) recordEvent(ctx context.Context, tx store.Store, call domain.Call, eventType domain.EventType, assetID uint64, payload interface{}) (*schema.CustomizationEvent, error) {
	raw, err := s.json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	canonical, err := s.jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize %s payload: %w", eventType, err)
	}

	event := &schema.CustomizationEvent{
		ID:        ulid.MustNewDefault(s.clock.Now()).String(),
		Type:      eventType,
		AssetID:   assetID,
		Actor:     call.Caller.String(),
		Timestamp: call.Now,
		Payload:   datatypes.JSON(canonical),
		Digest:    crypto.Keccak256Hash(canonical).Hex(),
	}
	if err := tx.CreateCustomizationEvent(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}
