package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// Store defines the interface for database operations.
// Lookups return (nil, nil) when the record does not exist.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// WithTx runs fn inside a single database transaction. The Store passed to fn is bound to
	// the transaction; fn must use it exclusively. Returning an error rolls everything back.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	// GetCounter retrieves the current value of a global counter
	GetCounter(ctx context.Context, name string) (uint64, error)
	// IncrementCounter adds delta to a global counter and returns the new value
	IncrementCounter(ctx context.Context, name string, delta uint64) (uint64, error)
	// GetCounters retrieves every global counter
	GetCounters(ctx context.Context) (map[string]uint64, error)

	// CreateAsset inserts a new asset row
	CreateAsset(ctx context.Context, asset *schema.Asset) error
	// GetAssetByID retrieves an asset by its id
	GetAssetByID(ctx context.Context, id uint64) (*schema.Asset, error)
	// UpdateAsset writes the mutable asset fields if the stored trait count still equals expectedTraitCount
	UpdateAsset(ctx context.Context, asset *schema.Asset, expectedTraitCount uint32) error
	// GetAssetsByOwner retrieves the assets owned by an account
	GetAssetsByOwner(ctx context.Context, owner string, limit int, offset uint64) ([]schema.Asset, uint64, error)

	// CreateTraitDefinition inserts a trait definition, returning domain.ErrAlreadyExists on a duplicate name
	CreateTraitDefinition(ctx context.Context, def *schema.TraitDefinition) error
	// GetTraitDefinition retrieves a trait definition by name
	GetTraitDefinition(ctx context.Context, name string) (*schema.TraitDefinition, error)
	// IncrementTraitApplications bumps current_applications if it is below max_applications.
	// It reports false when the ceiling was already reached.
	IncrementTraitApplications(ctx context.Context, name string) (bool, error)

	// CreateAppliedTrait inserts an immutable ledger row
	CreateAppliedTrait(ctx context.Context, trait *schema.AppliedTrait) error
	// GetAppliedTraits retrieves the ledger rows of an asset ordered by slot
	GetAppliedTraits(ctx context.Context, assetID uint64) ([]schema.AppliedTrait, error)

	// GetAccountBalance retrieves the balance of an account (0 when unknown)
	GetAccountBalance(ctx context.Context, account string) (uint64, error)
	// CreditAccount adds amount to an account balance, creating the account if needed
	CreditAccount(ctx context.Context, account string, amount uint64) error
	// DebitAccount subtracts amount if the balance covers it. It reports false otherwise.
	DebitAccount(ctx context.Context, account string, amount uint64) (bool, error)

	// IncrementUserStats adds the delta to the account's statistics
	IncrementUserStats(ctx context.Context, account string, delta UserStatsDelta) error
	// GetUserStats retrieves the statistics of an account
	GetUserStats(ctx context.Context, account string) (*schema.UserStats, error)

	// CreateCustomizationEvent inserts an outbox event
	CreateCustomizationEvent(ctx context.Context, event *schema.CustomizationEvent) error
	// GetCustomizationEvents retrieves events matching the filter, ordered by id
	GetCustomizationEvents(ctx context.Context, filter EventQueryFilter) ([]schema.CustomizationEvent, uint64, error)
	// GetUnpublishedEvents retrieves the oldest events not yet delivered to the broker
	GetUnpublishedEvents(ctx context.Context, limit int) ([]schema.CustomizationEvent, error)
	// MarkEventsPublished stamps the given events as delivered at publishedAt
	MarkEventsPublished(ctx context.Context, ids []string, publishedAt time.Time) error
}

// UserStatsDelta holds increments applied to a user_stats row
type UserStatsDelta struct {
	AssetsOwned           uint64
	CustomizationsApplied uint64
	TraitsCreated         uint64
	Collaborations        uint64
	CollaborationEarnings uint64
}

// IsZero reports whether the delta changes nothing
func (d UserStatsDelta) IsZero() bool {
	return d == UserStatsDelta{}
}

// EventQueryFilter represents filters for customization event queries
type EventQueryFilter struct {
	AssetID *uint64
	Types   []domain.EventType
	Limit   int
	Offset  uint64
}
