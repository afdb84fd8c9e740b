package registry

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// Mutator changes an asset in place. Returning an error aborts the update.
type Mutator func(asset *schema.Asset) error

// Registry defines the interface for asset operations
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// Create allocates the next asset id and stores a fresh, unlocked asset
	Create(ctx context.Context, call domain.Call, owner domain.Account, template string) (*schema.Asset, error)

	// Get retrieves an asset, failing with domain.ErrNotFound
	Get(ctx context.Context, id domain.AssetID) (*schema.Asset, error)

	// Update re-reads the asset, applies the mutator and writes the result guarded by
	// the trait count read here
	Update(ctx context.Context, id domain.AssetID, mutate Mutator) (*schema.Asset, error)
}

type registry struct {
	store store.Store
}

// New creates a registry backed by the given store
func New(store store.Store) Registry {
	return &registry{store: store}
}

// Create allocates the next asset id and stores a fresh asset
func (r *registry) Create(ctx context.Context, call domain.Call, owner domain.Account, template string) (*schema.Asset, error) {
	if !owner.Valid() {
		return nil, fmt.Errorf("invalid owner %q: %w", owner, domain.ErrUnauthorized)
	}
	if !domain.ValidTemplate(template) {
		return nil, fmt.Errorf("template must be 1..%d characters: %w", domain.MAX_TEMPLATE_LENGTH, domain.ErrInvalidTrait)
	}

	id, err := r.store.IncrementCounter(ctx, domain.COUNTER_NEXT_ASSET_ID, 1)
	if err != nil {
		return nil, err
	}

	asset := &schema.Asset{
		ID:                    id,
		Owner:                 owner.String(),
		BaseTemplate:          template,
		TraitCount:            0,
		RarityScore:           domain.BASE_RARITY_SCORE,
		CustomizationLocked:   false,
		CreationTimestamp:     call.Now,
		LastModifiedTimestamp: call.Now,
	}
	if err := r.store.CreateAsset(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// Get retrieves an asset
func (r *registry) Get(ctx context.Context, id domain.AssetID) (*schema.Asset, error) {
	asset, err := r.store.GetAssetByID(ctx, uint64(id))
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("asset %d: %w", id, domain.ErrNotFound)
	}
	return asset, nil
}

// Update applies the mutator to a fresh copy of the asset
func (r *registry) Update(ctx context.Context, id domain.AssetID, mutate Mutator) (*schema.Asset, error) {
	asset, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	before := *asset
	if err := mutate(asset); err != nil {
		return nil, err
	}

	if asset.ID != before.ID {
		return nil, fmt.Errorf("asset id is immutable")
	}
	if asset.TraitCount < before.TraitCount {
		return nil, fmt.Errorf("trait count of asset %d cannot decrease from %d to %d", id, before.TraitCount, asset.TraitCount)
	}
	if asset.TraitCount > domain.MAX_TRAITS_PER_ASSET {
		return nil, fmt.Errorf("asset %d: %w", id, domain.ErrMaxTraitsExceeded)
	}
	if before.CustomizationLocked && !asset.CustomizationLocked {
		return nil, fmt.Errorf("asset %d cannot be unlocked", id)
	}

	if err := r.store.UpdateAsset(ctx, asset, before.TraitCount); err != nil {
		return nil, err
	}

	return asset, nil
}
