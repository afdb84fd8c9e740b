package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

type sqlStore struct {
	db *gorm.DB
}

// NewStore creates a new store instance over a gorm connection (postgres or sqlite)
func NewStore(db *gorm.DB) Store {
	return &sqlStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// WithTx runs fn inside a single transaction. Nested calls use savepoints.
func (s *sqlStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&sqlStore{db: tx})
	})
}

// =============================================================================
// Counters
// =============================================================================

// GetCounter retrieves the current value of a global counter
func (s *sqlStore) GetCounter(ctx context.Context, name string) (uint64, error) {
	var counter schema.Counter
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get counter %s: %w", name, err)
	}
	return counter.Value, nil
}

// IncrementCounter adds delta to a global counter and returns the new value
func (s *sqlStore) IncrementCounter(ctx context.Context, name string, delta uint64) (uint64, error) {
	if delta > domain.MAX_AMOUNT {
		return 0, fmt.Errorf("counter %s delta %d above %d: %w", name, delta, uint64(domain.MAX_AMOUNT), domain.ErrInvalidTrait)
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Counter{}).
		Where("name = ? AND value <= ?", name, uint64(domain.MAX_AMOUNT)-delta).
		Update("value", gorm.Expr("value + ?", delta))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", name, result.Error)
	}

	// Counters are seeded by Migrate; create on the fly for stores that skipped seeding
	if result.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&schema.Counter{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return 0, fmt.Errorf("failed to check counter %s: %w", name, err)
		}
		if count > 0 {
			return 0, fmt.Errorf("counter %s overflows: %w", name, domain.ErrInvalidTrait)
		}

		counter := schema.Counter{Name: name, Value: delta}
		if err := s.db.WithContext(ctx).Create(&counter).Error; err != nil {
			return 0, fmt.Errorf("failed to create counter %s: %w", name, err)
		}
		return delta, nil
	}

	return s.GetCounter(ctx, name)
}

// GetCounters retrieves every global counter
func (s *sqlStore) GetCounters(ctx context.Context) (map[string]uint64, error) {
	var counters []schema.Counter
	if err := s.db.WithContext(ctx).Find(&counters).Error; err != nil {
		return nil, fmt.Errorf("failed to get counters: %w", err)
	}

	result := make(map[string]uint64, len(counters))
	for _, c := range counters {
		result[c.Name] = c.Value
	}
	return result, nil
}

// =============================================================================
// Assets
// =============================================================================

// CreateAsset inserts a new asset row
func (s *sqlStore) CreateAsset(ctx context.Context, asset *schema.Asset) error {
	if err := s.db.WithContext(ctx).Create(asset).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

// GetAssetByID retrieves an asset by its id
func (s *sqlStore) GetAssetByID(ctx context.Context, id uint64) (*schema.Asset, error) {
	var asset schema.Asset
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &asset, nil
}

// UpdateAsset writes the mutable asset fields guarded by the trait count read before the mutation
func (s *sqlStore) UpdateAsset(ctx context.Context, asset *schema.Asset, expectedTraitCount uint32) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Asset{}).
		Where("id = ? AND trait_count = ?", asset.ID, expectedTraitCount).
		Updates(map[string]interface{}{
			"owner":                   asset.Owner,
			"trait_count":             asset.TraitCount,
			"rarity_score":            asset.RarityScore,
			"customization_locked":    asset.CustomizationLocked,
			"last_modified_timestamp": asset.LastModifiedTimestamp,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("asset %d: %w", asset.ID, domain.ErrConcurrentModification)
	}
	return nil
}

// GetAssetsByOwner retrieves the assets owned by an account ordered by id
func (s *sqlStore) GetAssetsByOwner(ctx context.Context, owner string, limit int, offset uint64) ([]schema.Asset, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Asset{}).Where("owner = ?", owner)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	var assets []schema.Asset
	err := query.
		Order("id ASC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&assets).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get assets by owner: %w", err)
	}

	return assets, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Trait definitions
// =============================================================================

// CreateTraitDefinition inserts a trait definition
func (s *sqlStore) CreateTraitDefinition(ctx context.Context, def *schema.TraitDefinition) error {
	existing, err := s.GetTraitDefinition(ctx, def.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("trait %q: %w", def.Name, domain.ErrAlreadyExists)
	}

	if err := s.db.WithContext(ctx).Create(def).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("trait %q: %w", def.Name, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create trait definition: %w", err)
	}
	return nil
}

// GetTraitDefinition retrieves a trait definition by name
func (s *sqlStore) GetTraitDefinition(ctx context.Context, name string) (*schema.TraitDefinition, error) {
	var def schema.TraitDefinition
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&def).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trait definition: %w", err)
	}
	return &def, nil
}

// IncrementTraitApplications bumps current_applications while it is below the ceiling
func (s *sqlStore) IncrementTraitApplications(ctx context.Context, name string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.TraitDefinition{}).
		Where("name = ? AND current_applications < max_applications", name).
		Update("current_applications", gorm.Expr("current_applications + ?", 1))
	if result.Error != nil {
		return false, fmt.Errorf("failed to increment trait applications: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// =============================================================================
// Applied traits
// =============================================================================

// CreateAppliedTrait inserts an immutable ledger row
func (s *sqlStore) CreateAppliedTrait(ctx context.Context, trait *schema.AppliedTrait) error {
	if err := s.db.WithContext(ctx).Create(trait).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("asset %d slot %d: %w", trait.AssetID, trait.SlotIndex, domain.ErrConcurrentModification)
		}
		return fmt.Errorf("failed to create applied trait: %w", err)
	}
	return nil
}

// GetAppliedTraits retrieves the ledger rows of an asset ordered by slot
func (s *sqlStore) GetAppliedTraits(ctx context.Context, assetID uint64) ([]schema.AppliedTrait, error) {
	var traits []schema.AppliedTrait
	err := s.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("slot_index ASC").
		Find(&traits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get applied traits: %w", err)
	}
	return traits, nil
}

// =============================================================================
// Account balances
// =============================================================================

// GetAccountBalance retrieves the balance of an account
func (s *sqlStore) GetAccountBalance(ctx context.Context, account string) (uint64, error) {
	var balance schema.AccountBalance
	err := s.db.WithContext(ctx).Where("account = ?", account).First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get account balance: %w", err)
	}
	return balance.Balance, nil
}

// CreditAccount adds amount to an account balance.
// A credit that would push the balance above domain.MAX_AMOUNT is rejected with domain.ErrInvalidTrait.
func (s *sqlStore) CreditAccount(ctx context.Context, account string, amount uint64) error {
	if amount > domain.MAX_AMOUNT {
		return fmt.Errorf("credit %d above %d: %w", amount, uint64(domain.MAX_AMOUNT), domain.ErrInvalidTrait)
	}

	result := s.db.WithContext(ctx).
		Model(&schema.AccountBalance{}).
		Where("account = ? AND balance <= ?", account, uint64(domain.MAX_AMOUNT)-amount).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to credit account: %w", result.Error)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&schema.AccountBalance{}).Where("account = ?", account).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check account balance: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("credit %d overflows balance of %s: %w", amount, account, domain.ErrInvalidTrait)
	}

	balance := schema.AccountBalance{Account: account, Balance: amount}
	if err := s.db.WithContext(ctx).Create(&balance).Error; err != nil {
		return fmt.Errorf("failed to create account balance: %w", err)
	}
	return nil
}

// DebitAccount subtracts amount if the balance covers it
func (s *sqlStore) DebitAccount(ctx context.Context, account string, amount uint64) (bool, error) {
	if amount == 0 {
		return true, nil
	}

	result := s.db.WithContext(ctx).
		Model(&schema.AccountBalance{}).
		Where("account = ? AND balance >= ?", account, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return false, fmt.Errorf("failed to debit account: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// =============================================================================
// User statistics
// =============================================================================

// IncrementUserStats adds the delta to the account's statistics
func (s *sqlStore) IncrementUserStats(ctx context.Context, account string, delta UserStatsDelta) error {
	if delta.IsZero() {
		return nil
	}

	result := s.db.WithContext(ctx).
		Model(&schema.UserStats{}).
		Where("account = ?", account).
		Updates(map[string]interface{}{
			"assets_owned":           gorm.Expr("assets_owned + ?", delta.AssetsOwned),
			"customizations_applied": gorm.Expr("customizations_applied + ?", delta.CustomizationsApplied),
			"traits_created":         gorm.Expr("traits_created + ?", delta.TraitsCreated),
			"collaborations":         gorm.Expr("collaborations + ?", delta.Collaborations),
			"collaboration_earnings": gorm.Expr("collaboration_earnings + ?", delta.CollaborationEarnings),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user stats: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		stats := schema.UserStats{
			Account:               account,
			AssetsOwned:           delta.AssetsOwned,
			CustomizationsApplied: delta.CustomizationsApplied,
			TraitsCreated:         delta.TraitsCreated,
			Collaborations:        delta.Collaborations,
			CollaborationEarnings: delta.CollaborationEarnings,
		}
		if err := s.db.WithContext(ctx).Create(&stats).Error; err != nil {
			return fmt.Errorf("failed to create user stats: %w", err)
		}
	}
	return nil
}

// GetUserStats retrieves the statistics of an account
func (s *sqlStore) GetUserStats(ctx context.Context, account string) (*schema.UserStats, error) {
	var stats schema.UserStats
	err := s.db.WithContext(ctx).Where("account = ?", account).First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return &stats, nil
}

// =============================================================================
// Customization events
// =============================================================================

// CreateCustomizationEvent inserts an outbox event
func (s *sqlStore) CreateCustomizationEvent(ctx context.Context, event *schema.CustomizationEvent) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create customization event: %w", err)
	}
	return nil
}

// GetCustomizationEvents retrieves events matching the filter
func (s *sqlStore) GetCustomizationEvents(ctx context.Context, filter EventQueryFilter) ([]schema.CustomizationEvent, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.CustomizationEvent{})
	if filter.AssetID != nil {
		query = query.Where("asset_id = ?", *filter.AssetID)
	}
	if len(filter.Types) > 0 {
		query = query.Where("type IN ?", filter.Types)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customization events: %w", err)
	}

	var events []schema.CustomizationEvent
	err := query.
		Order("id ASC").
		Limit(filter.Limit).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&events).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get customization events: %w", err)
	}

	return events, uint64(total), nil //nolint:gosec,G115
}

// GetUnpublishedEvents retrieves the oldest events not yet delivered to the broker
func (s *sqlStore) GetUnpublishedEvents(ctx context.Context, limit int) ([]schema.CustomizationEvent, error) {
	var events []schema.CustomizationEvent
	err := s.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("id ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get unpublished events: %w", err)
	}
	return events, nil
}

// MarkEventsPublished stamps the given events as delivered
func (s *sqlStore) MarkEventsPublished(ctx context.Context, ids []string, publishedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Model(&schema.CustomizationEvent{}).
		Where("id IN ? AND published_at IS NULL", ids).
		Update("published_at", publishedAt.UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to mark events published: %w", err)
	}
	return nil
}
