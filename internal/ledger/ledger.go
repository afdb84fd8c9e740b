package ledger

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// Ledger defines the interface for the append-only applied trait ledger
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// Append writes an immutable trait record at slot = asset.TraitCount.
	// The caller increments the asset's trait count afterwards.
	Append(ctx context.Context, call domain.Call, asset *schema.Asset, traitType, traitValue string, rarityTier uint32) (domain.SlotIndex, error)

	// TraitsOf returns the applied traits of an asset ordered by slot
	TraitsOf(ctx context.Context, assetID domain.AssetID) ([]schema.AppliedTrait, error)
}

type ledger struct {
	store store.Store
}

// New creates a ledger backed by the given store
func New(store store.Store) Ledger {
	return &ledger{store: store}
}

// Append writes the next slot of the asset
func (l *ledger) Append(ctx context.Context, call domain.Call, asset *schema.Asset, traitType, traitValue string, rarityTier uint32) (domain.SlotIndex, error) {
	if asset.TraitCount >= domain.MAX_TRAITS_PER_ASSET {
		return 0, fmt.Errorf("asset %d has %d traits: %w", asset.ID, asset.TraitCount, domain.ErrMaxTraitsExceeded)
	}
	if !domain.ValidTraitValue(traitValue) {
		return 0, fmt.Errorf("trait value must be at most %d characters: %w", domain.MAX_TRAIT_VALUE_LENGTH, domain.ErrInvalidTrait)
	}

	slot := asset.TraitCount
	record := &schema.AppliedTrait{
		AssetID:              asset.ID,
		SlotIndex:            slot,
		TraitType:            traitType,
		TraitValue:           traitValue,
		RarityTier:           rarityTier,
		AppliedBy:            call.Caller.String(),
		ApplicationTimestamp: call.Now,
	}
	if err := l.store.CreateAppliedTrait(ctx, record); err != nil {
		return 0, err
	}

	return domain.SlotIndex(slot), nil
}

// TraitsOf returns the applied traits of an asset ordered by slot
func (l *ledger) TraitsOf(ctx context.Context, assetID domain.AssetID) ([]schema.AppliedTrait, error) {
	return l.store.GetAppliedTraits(ctx, uint64(assetID))
}
