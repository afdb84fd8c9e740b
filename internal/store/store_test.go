package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// RunStoreTests runs the shared store suite against any backend.
// initDB must return a store over an empty, migrated database.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(t *testing.T, store Store)
	}{
		{"Counters", testCounters},
		{"Assets", testAssets},
		{"TraitDefinitions", testTraitDefinitions},
		{"AppliedTraits", testAppliedTraits},
		{"AccountBalances", testAccountBalances},
		{"UserStats", testUserStats},
		{"CustomizationEvents", testCustomizationEvents},
		{"WithTxRollback", testWithTxRollback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestAsset(id uint64, owner string) *schema.Asset {
	return &schema.Asset{
		ID:                    id,
		Owner:                 owner,
		BaseTemplate:          "portrait",
		RarityScore:           domain.BASE_RARITY_SCORE,
		CreationTimestamp:     100,
		LastModifiedTimestamp: 100,
	}
}

func buildTestTraitDefinition(name string, rarity uint32, maxApplications uint64) *schema.TraitDefinition {
	return &schema.TraitDefinition{
		Name:              name,
		BaseRarity:        rarity,
		CustomizationCost: 1000,
		MaxApplications:   maxApplications,
		Creator:           "curator",
		CreationTimestamp: 100,
	}
}

func buildTestEvent(id string, eventType domain.EventType, assetID uint64) *schema.CustomizationEvent {
	return &schema.CustomizationEvent{
		ID:        id,
		Type:      eventType,
		AssetID:   assetID,
		Actor:     "alice",
		Timestamp: 100,
		Payload:   datatypes.JSON(`{"asset_id":1}`),
		Digest:    "0xdigest",
	}
}

// =============================================================================
// Tests
// =============================================================================

func testCounters(t *testing.T, store Store) {
	ctx := context.Background()

	value, err := store.GetCounter(ctx, domain.COUNTER_NEXT_ASSET_ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), value)

	value, err = store.IncrementCounter(ctx, domain.COUNTER_NEXT_ASSET_ID, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), value)

	value, err = store.IncrementCounter(ctx, domain.COUNTER_CONTRACT_BALANCE, 250)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), value)

	value, err = store.IncrementCounter(ctx, domain.COUNTER_CONTRACT_BALANCE, 50)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), value)

	t.Run("unseeded counter is created on first increment", func(t *testing.T) {
		value, err := store.IncrementCounter(ctx, "custom_counter", 7)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), value)
	})

	t.Run("overflowing increment is rejected", func(t *testing.T) {
		_, err := store.IncrementCounter(ctx, "custom_counter", domain.MAX_AMOUNT)
		assert.ErrorIs(t, err, domain.ErrInvalidTrait)

		_, err = store.IncrementCounter(ctx, "custom_counter", domain.MAX_AMOUNT+1)
		assert.ErrorIs(t, err, domain.ErrInvalidTrait)
	})

	counters, err := store.GetCounters(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), counters[domain.COUNTER_NEXT_ASSET_ID])
	assert.Equal(t, uint64(300), counters[domain.COUNTER_CONTRACT_BALANCE])
	assert.Equal(t, uint64(0), counters[domain.COUNTER_TOTAL_CUSTOMIZATIONS])
	assert.Equal(t, uint64(7), counters["custom_counter"])
}

func testAssets(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateAsset(ctx, buildTestAsset(1, "alice")))
	require.NoError(t, store.CreateAsset(ctx, buildTestAsset(2, "alice")))
	require.NoError(t, store.CreateAsset(ctx, buildTestAsset(3, "bob")))

	t.Run("get existing asset", func(t *testing.T) {
		asset, err := store.GetAssetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, asset)
		assert.Equal(t, "alice", asset.Owner)
		assert.Equal(t, uint32(0), asset.TraitCount)
		assert.Equal(t, uint64(100), asset.RarityScore)
		assert.False(t, asset.CustomizationLocked)
	})

	t.Run("get missing asset returns nil", func(t *testing.T) {
		asset, err := store.GetAssetByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, asset)
	})

	t.Run("update with matching trait count", func(t *testing.T) {
		asset, err := store.GetAssetByID(ctx, 1)
		require.NoError(t, err)
		asset.TraitCount = 1
		asset.RarityScore = 140
		asset.LastModifiedTimestamp = 200
		require.NoError(t, store.UpdateAsset(ctx, asset, 0))

		updated, err := store.GetAssetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), updated.TraitCount)
		assert.Equal(t, uint64(140), updated.RarityScore)
		assert.Equal(t, int64(200), updated.LastModifiedTimestamp)
		assert.Equal(t, int64(100), updated.CreationTimestamp)
	})

	t.Run("update with stale trait count fails", func(t *testing.T) {
		asset, err := store.GetAssetByID(ctx, 1)
		require.NoError(t, err)
		asset.TraitCount = 2
		err = store.UpdateAsset(ctx, asset, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConcurrentModification)

		unchanged, err := store.GetAssetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), unchanged.TraitCount)
	})

	t.Run("list by owner", func(t *testing.T) {
		assets, total, err := store.GetAssetsByOwner(ctx, "alice", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, assets, 2)
		assert.Equal(t, uint64(1), assets[0].ID)
		assert.Equal(t, uint64(2), assets[1].ID)

		assets, total, err = store.GetAssetsByOwner(ctx, "alice", 1, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, assets, 1)
		assert.Equal(t, uint64(2), assets[0].ID)
	})
}

func testTraitDefinitions(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateTraitDefinition(ctx, buildTestTraitDefinition("texture", 40, 2)))

	t.Run("duplicate name fails and keeps the original", func(t *testing.T) {
		err := store.CreateTraitDefinition(ctx, buildTestTraitDefinition("texture", 90, 5))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		def, err := store.GetTraitDefinition(ctx, "texture")
		require.NoError(t, err)
		require.NotNil(t, def)
		assert.Equal(t, uint32(40), def.BaseRarity)
		assert.Equal(t, uint64(2), def.MaxApplications)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		require.NoError(t, store.CreateTraitDefinition(ctx, buildTestTraitDefinition("Texture", 10, 2)))
	})

	t.Run("missing definition returns nil", func(t *testing.T) {
		def, err := store.GetTraitDefinition(ctx, "glow")
		require.NoError(t, err)
		assert.Nil(t, def)
	})

	t.Run("applications stop at the ceiling", func(t *testing.T) {
		ok, err := store.IncrementTraitApplications(ctx, "texture")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.IncrementTraitApplications(ctx, "texture")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.IncrementTraitApplications(ctx, "texture")
		require.NoError(t, err)
		assert.False(t, ok)

		def, err := store.GetTraitDefinition(ctx, "texture")
		require.NoError(t, err)
		assert.Equal(t, uint64(2), def.CurrentApplications)
		assert.Equal(t, uint64(0), def.RemainingApplications())
	})

	t.Run("unknown trait does not increment", func(t *testing.T) {
		ok, err := store.IncrementTraitApplications(ctx, "glow")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func testAppliedTraits(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateAsset(ctx, buildTestAsset(1, "alice")))

	for slot, name := range []string{"texture", "glow", "frame"} {
		err := store.CreateAppliedTrait(ctx, &schema.AppliedTrait{
			AssetID:              1,
			SlotIndex:            uint32(slot), //nolint:gosec,G115
			TraitType:            name,
			TraitValue:           "v",
			RarityTier:           uint32(10 * (slot + 1)), //nolint:gosec,G115
			AppliedBy:            "alice",
			ApplicationTimestamp: 100,
		})
		require.NoError(t, err)
	}

	t.Run("ordered by slot", func(t *testing.T) {
		traits, err := store.GetAppliedTraits(ctx, 1)
		require.NoError(t, err)
		require.Len(t, traits, 3)
		assert.Equal(t, "texture", traits[0].TraitType)
		assert.Equal(t, "glow", traits[1].TraitType)
		assert.Equal(t, "frame", traits[2].TraitType)
		assert.Equal(t, uint32(30), traits[2].RarityTier)
	})

	t.Run("asset without traits", func(t *testing.T) {
		traits, err := store.GetAppliedTraits(ctx, 42)
		require.NoError(t, err)
		assert.Empty(t, traits)
	})

	// Runs last: a failed insert aborts the surrounding postgres transaction
	t.Run("duplicate slot is rejected", func(t *testing.T) {
		err := store.CreateAppliedTrait(ctx, &schema.AppliedTrait{
			AssetID:   1,
			SlotIndex: 0,
			TraitType: "other",
			AppliedBy: "alice",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConcurrentModification)
	})
}

func testAccountBalances(t *testing.T, store Store) {
	ctx := context.Background()

	balance, err := store.GetAccountBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)

	require.NoError(t, store.CreditAccount(ctx, "alice", 500))
	require.NoError(t, store.CreditAccount(ctx, "alice", 250))

	balance, err = store.GetAccountBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(750), balance)

	ok, err := store.DebitAccount(ctx, "alice", 700)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.DebitAccount(ctx, "alice", 51)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.DebitAccount(ctx, "nobody", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.DebitAccount(ctx, "nobody", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	balance, err = store.GetAccountBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(50), balance)

	t.Run("credit past the maximum balance is rejected", func(t *testing.T) {
		require.NoError(t, store.CreditAccount(ctx, "whale", domain.MAX_AMOUNT))

		err := store.CreditAccount(ctx, "whale", 1)
		assert.ErrorIs(t, err, domain.ErrInvalidTrait)

		err = store.CreditAccount(ctx, "minnow", domain.MAX_AMOUNT+1)
		assert.ErrorIs(t, err, domain.ErrInvalidTrait)

		balance, err := store.GetAccountBalance(ctx, "whale")
		require.NoError(t, err)
		assert.Equal(t, uint64(domain.MAX_AMOUNT), balance)

		balance, err = store.GetAccountBalance(ctx, "minnow")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), balance)
	})
}

func testUserStats(t *testing.T, store Store) {
	ctx := context.Background()

	stats, err := store.GetUserStats(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, stats)

	require.NoError(t, store.IncrementUserStats(ctx, "alice", UserStatsDelta{AssetsOwned: 1}))
	require.NoError(t, store.IncrementUserStats(ctx, "alice", UserStatsDelta{CustomizationsApplied: 2, CollaborationEarnings: 90}))
	require.NoError(t, store.IncrementUserStats(ctx, "alice", UserStatsDelta{}))

	stats, err = store.GetUserStats(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, uint64(1), stats.AssetsOwned)
	assert.Equal(t, uint64(2), stats.CustomizationsApplied)
	assert.Equal(t, uint64(90), stats.CollaborationEarnings)
	assert.Equal(t, uint64(0), stats.TraitsCreated)
}

func testCustomizationEvents(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateCustomizationEvent(ctx, buildTestEvent("01A", domain.EventTypeAssetMinted, 1)))
	require.NoError(t, store.CreateCustomizationEvent(ctx, buildTestEvent("01B", domain.EventTypeTraitApplied, 1)))
	require.NoError(t, store.CreateCustomizationEvent(ctx, buildTestEvent("01C", domain.EventTypeAssetMinted, 2)))

	t.Run("filter by asset", func(t *testing.T) {
		assetID := uint64(1)
		events, total, err := store.GetCustomizationEvents(ctx, EventQueryFilter{AssetID: &assetID, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, events, 2)
		assert.Equal(t, "01A", events[0].ID)
		assert.Equal(t, "01B", events[1].ID)
	})

	t.Run("filter by type", func(t *testing.T) {
		events, total, err := store.GetCustomizationEvents(ctx, EventQueryFilter{
			Types: []domain.EventType{domain.EventTypeAssetMinted},
			Limit: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, events, 2)
		assert.Equal(t, "01C", events[1].ID)
	})

	t.Run("publish bookkeeping", func(t *testing.T) {
		events, err := store.GetUnpublishedEvents(ctx, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "01A", events[0].ID)

		publishedAt := time.Unix(1700000000, 0).UTC()
		require.NoError(t, store.MarkEventsPublished(ctx, []string{"01A", "01B"}, publishedAt))
		require.NoError(t, store.MarkEventsPublished(ctx, nil, publishedAt))

		events, err = store.GetUnpublishedEvents(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "01C", events[0].ID)

		all, _, err := store.GetCustomizationEvents(ctx, EventQueryFilter{Limit: 10})
		require.NoError(t, err)
		require.NotEmpty(t, all)
		assert.Equal(t, "01A", all[0].ID)
		require.NotNil(t, all[0].PublishedAt)
		assert.True(t, publishedAt.Equal(*all[0].PublishedAt))
	})
}

func testWithTxRollback(t *testing.T, store Store) {
	ctx := context.Background()

	err := store.WithTx(ctx, func(tx Store) error {
		if _, err := tx.IncrementCounter(ctx, domain.COUNTER_NEXT_ASSET_ID, 1); err != nil {
			return err
		}
		if err := tx.CreateAsset(ctx, buildTestAsset(1, "alice")); err != nil {
			return err
		}
		return domain.ErrInsufficientPayment
	})
	require.ErrorIs(t, err, domain.ErrInsufficientPayment)

	value, err := store.GetCounter(ctx, domain.COUNTER_NEXT_ASSET_ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), value)

	asset, err := store.GetAssetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, asset)

	err = store.WithTx(ctx, func(tx Store) error {
		_, err := tx.IncrementCounter(ctx, domain.COUNTER_NEXT_ASSET_ID, 1)
		return err
	})
	require.NoError(t, err)

	value, err = store.GetCounter(ctx, domain.COUNTER_NEXT_ASSET_ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), value)
}
