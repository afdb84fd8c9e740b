package catalog

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// Catalog defines the interface for trait definition operations
//
//go:generate mockgen -source=catalog.go -destination=../mocks/catalog.go -package=mocks -mock_names=Catalog=MockCatalog
type Catalog interface {
	// Define registers a new trait type. The existing definition is never modified.
	Define(ctx context.Context, call domain.Call, name string, baseRarity uint32, cost domain.Amount) (*schema.TraitDefinition, error)

	// Lookup returns the trait definition or nil when the name is not registered
	Lookup(ctx context.Context, name string) (*schema.TraitDefinition, error)

	// RecordApplication counts one more application of the trait type
	RecordApplication(ctx context.Context, name string) error
}

type catalog struct {
	store store.Store
}

// New creates a catalog backed by the given store (usually a transaction-bound one)
func New(store store.Store) Catalog {
	return &catalog{store: store}
}

// Define registers a new trait type
func (c *catalog) Define(ctx context.Context, call domain.Call, name string, baseRarity uint32, cost domain.Amount) (*schema.TraitDefinition, error) {
	if !domain.ValidTraitName(name) {
		return nil, fmt.Errorf("trait name must be 1..%d characters: %w", domain.MAX_TRAIT_NAME_LENGTH, domain.ErrInvalidTrait)
	}
	if baseRarity > domain.MAX_BASE_RARITY {
		return nil, fmt.Errorf("base rarity %d above %d: %w", baseRarity, domain.MAX_BASE_RARITY, domain.ErrInvalidTrait)
	}
	if !domain.ValidAmount(cost) {
		return nil, fmt.Errorf("customization cost %d above %d: %w", cost, uint64(domain.MAX_AMOUNT), domain.ErrInvalidTrait)
	}

	def := &schema.TraitDefinition{
		Name:                name,
		BaseRarity:          baseRarity,
		CustomizationCost:   uint64(cost),
		MaxApplications:     domain.DEFAULT_MAX_APPLICATION,
		CurrentApplications: 0,
		Creator:             call.Caller.String(),
		CreationTimestamp:   call.Now,
	}
	if err := c.store.CreateTraitDefinition(ctx, def); err != nil {
		return nil, err
	}

	return def, nil
}

// Lookup returns the trait definition or nil when the name is not registered
func (c *catalog) Lookup(ctx context.Context, name string) (*schema.TraitDefinition, error) {
	return c.store.GetTraitDefinition(ctx, name)
}

// RecordApplication increments current applications while below the ceiling
func (c *catalog) RecordApplication(ctx context.Context, name string) error {
	ok, err := c.store.IncrementTraitApplications(ctx, name)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	// Nothing was updated: tell an unknown name apart from an exhausted one
	def, err := c.store.GetTraitDefinition(ctx, name)
	if err != nil {
		return err
	}
	if def == nil {
		return fmt.Errorf("trait %q: %w", name, domain.ErrNotFound)
	}
	return fmt.Errorf("trait %q reached %d applications: %w", name, def.MaxApplications, domain.ErrCapacityExceeded)
}
