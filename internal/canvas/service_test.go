package canvas_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-canvas/internal/adapter"
	"github.com/feral-file/ff-canvas/internal/canvas"
	"github.com/feral-file/ff-canvas/internal/collab"
	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/fee"
	"github.com/feral-file/ff-canvas/internal/metrics"
	"github.com/feral-file/ff-canvas/internal/mocks"
	"github.com/feral-file/ff-canvas/internal/rarity"
	"github.com/feral-file/ff-canvas/internal/store"
)

const (
	alice = domain.Account("alice")
	bob   = domain.Account("bob")
)

type fixture struct {
	store   store.Store
	service canvas.Service
}

func newFixture(t *testing.T, cfg canvas.Config, jcs adapter.JCS) *fixture {
	ctx := context.Background()
	db, err := store.OpenDatabase(store.DriverSQLite, ":memory:", false)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx, db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if jcs == nil {
		jcs = adapter.NewJCS()
	}
	s := store.NewStore(db)
	return &fixture{
		store:   s,
		service: canvas.NewService(cfg, s, adapter.NewClock(), adapter.NewJSON(), jcs, metrics.New("test")),
	}
}

func call(caller domain.Account, now int64) domain.Call {
	return domain.Call{Caller: caller, Now: now}
}

func (f *fixture) fund(t *testing.T, account domain.Account, amount domain.Amount) {
	_, err := f.service.CreditAccount(context.Background(), call("operator", 0), account, amount)
	require.NoError(t, err)
}

func (f *fixture) counter(t *testing.T, name string) uint64 {
	value, err := f.store.GetCounter(context.Background(), name)
	require.NoError(t, err)
	return value
}

func (f *fixture) balance(t *testing.T, account domain.Account) domain.Amount {
	balance, err := f.service.GetBalance(context.Background(), account)
	require.NoError(t, err)
	return balance
}

func (f *fixture) eventCount(t *testing.T) uint64 {
	_, total, err := f.store.GetCustomizationEvents(context.Background(), store.EventQueryFilter{Limit: 1})
	require.NoError(t, err)
	return total
}

func TestService_MintAndCustomize(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, canvas.DefaultConfig(), nil)
	f.fund(t, alice, 10_000_000)

	def, err := f.service.DefineTrait(ctx, call("curator", 1), "texture", 40, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(domain.DEFAULT_MAX_APPLICATION), def.MaxApplications)

	asset, err := f.service.Mint(ctx, call(alice, 2), "portrait")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), asset.ID)
	assert.Equal(t, alice.String(), asset.Owner)
	assert.Equal(t, uint32(0), asset.TraitCount)
	assert.Equal(t, uint64(100), asset.RarityScore)
	assert.Equal(t, domain.Amount(9_000_000), f.balance(t, alice))

	result, err := f.service.ApplyCustomization(ctx, call(alice, 3), 1, "texture", "rough")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), result.Asset.TraitCount)
	assert.Equal(t, uint64(140), result.Asset.RarityScore)
	assert.Equal(t, int64(3), result.Asset.LastModifiedTimestamp)
	assert.Equal(t, uint32(0), result.Trait.SlotIndex)
	assert.Equal(t, domain.Amount(501_000), result.Cost)
	assert.Equal(t, domain.Amount(8_499_000), f.balance(t, alice))

	traits, err := f.service.GetTraits(ctx, 1)
	require.NoError(t, err)
	require.Len(t, traits, 1)
	assert.Equal(t, "texture", traits[0].TraitType)
	assert.Equal(t, "rough", traits[0].TraitValue)
	assert.Equal(t, uint32(40), traits[0].RarityTier)

	// Score reads are idempotent and match the stored score
	first, err := f.service.GetScore(ctx, 1)
	require.NoError(t, err)
	second, err := f.service.GetScore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(140), first)
	assert.Equal(t, first, second)

	counters, err := f.service.GetCounters(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), counters[domain.COUNTER_NEXT_ASSET_ID])
	assert.Equal(t, uint64(1), counters[domain.COUNTER_TOTAL_CUSTOMIZATIONS])
	assert.Equal(t, uint64(1_501_000), counters[domain.COUNTER_CONTRACT_BALANCE])
	assert.Equal(t, domain.Amount(1_501_000), f.balance(t, "canvas"))

	stored, err := f.service.GetTrait(ctx, "texture")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stored.CurrentApplications)

	stats, err := f.service.GetUserStats(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stats.AssetsOwned)
	assert.Equal(t, uint64(1), stats.CustomizationsApplied)

	curator, err := f.service.GetUserStats(ctx, "curator")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), curator.TraitsCreated)

	owned, total, err := f.service.GetAssetsByOwner(ctx, alice, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, owned, 1)

	events, total, err := f.service.ListEvents(ctx, store.EventQueryFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, events, 3)
	assert.Equal(t, domain.EventTypeTraitDefined, events[0].Type)
	assert.Equal(t, domain.EventTypeAssetMinted, events[1].Type)
	assert.Equal(t, domain.EventTypeTraitApplied, events[2].Type)
	assert.Equal(t, uint64(1), events[2].AssetID)
	assert.Equal(t, int64(3), events[2].Timestamp)
	assert.Equal(t, crypto.Keccak256Hash(events[2].Payload).Hex(), events[2].Digest)
	assert.JSONEq(t, `{
		"asset_id": 1,
		"cost": 501000,
		"rarity_score": 140,
		"rarity_tier": 40,
		"slot_index": 0,
		"timestamp": 3,
		"trait_type": "texture",
		"trait_value": "rough"
	}`, string(events[2].Payload))
}

func TestService_MaxTraits(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, canvas.DefaultConfig(), nil)
	f.fund(t, alice, 20_000_000)

	_, err := f.service.DefineTrait(ctx, call("curator", 1), "glow", 5, 0)
	require.NoError(t, err)
	_, err = f.service.Mint(ctx, call(alice, 2), "portrait")
	require.NoError(t, err)

	for i := 0; i < domain.MAX_TRAITS_PER_ASSET; i++ {
		_, err := f.service.ApplyCustomization(ctx, call(alice, int64(10+i)), 1, "glow", "soft")
		require.NoError(t, err)
	}

	balance := f.balance(t, alice)
	events := f.eventCount(t)

	_, err = f.service.ApplyCustomization(ctx, call(alice, 100), 1, "glow", "soft")
	assert.ErrorIs(t, err, domain.ErrMaxTraitsExceeded)

	asset, err := f.service.GetAsset(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), asset.TraitCount)
	assert.Equal(t, uint64(160), asset.RarityScore)
	assert.Equal(t, balance, f.balance(t, alice))
	assert.Equal(t, events, f.eventCount(t))

	traits, err := f.service.GetTraits(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, traits, 12)
	for i, trait := range traits {
		assert.Equal(t, uint32(i), trait.SlotIndex) //nolint:gosec,G115
	}
}

func TestService_MintInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, canvas.DefaultConfig(), nil)
	f.fund(t, alice, 999_999)

	_, err := f.service.Mint(ctx, call(alice, 1), "portrait")
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)

	assert.Equal(t, uint64(0), f.counter(t, domain.COUNTER_NEXT_ASSET_ID))
	assert.Equal(t, uint64(0), f.counter(t, domain.COUNTER_CONTRACT_BALANCE))
	assert.Equal(t, domain.Amount(999_999), f.balance(t, alice))
	assert.Equal(t, uint64(0), f.eventCount(t))

	// The next successful mint still gets id 1
	f.fund(t, alice, 1)
	asset, err := f.service.Mint(ctx, call(alice, 2), "portrait")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), asset.ID)
}

func TestService_MintInvalidTemplate(t *testing.T) {
	f := newFixture(t, canvas.DefaultConfig(), nil)
	f.fund(t, alice, 5_000_000)

	_, err := f.service.Mint(context.Background(), call(alice, 1), strings.Repeat("t", domain.MAX_TEMPLATE_LENGTH+1))
	assert.ErrorIs(t, err, domain.ErrInvalidTrait)
	assert.Equal(t, domain.Amount(5_000_000), f.balance(t, alice))
}

func TestService_MissingCaller(t *testing.T) {
	f := newFixture(t, canvas.DefaultConfig(), nil)

	_, err := f.service.Mint(context.Background(), call("", 1), "portrait")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_DefineTraitDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, canvas.DefaultConfig(), nil)

	_, err := f.service.DefineTrait(ctx, call("curator", 1), "texture", 40, 1000)
	require.NoError(t, err)

	_, err = f.service.DefineTrait(ctx, call("other", 2), "texture", 99, 7)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = f.service.DefineTrait(ctx, call("other", 2), "loud", 101, 7)
	assert.ErrorIs(t, err, domain.ErrInvalidTrait)

	def, err := f.service.GetTrait(ctx, "texture")
	require.NoError(t, err)
	assert.Equal(t, uint32(40), def.BaseRarity)
	assert.Equal(t, uint64(1000), def.CustomizationCost)
	assert.Equal(t, "curator", def.Creator)

	other, err := f.service.GetUserStats(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), other.TraitsCreated)
	assert.Equal(t, uint64(1), f.eventCount(t))

	_, err = f.service.GetTrait(ctx, "loud")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ApplyCustomizationGates(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		setup       func(t *testing.T, f *fixture)
		caller      domain.Account
		assetID     domain.AssetID
		traitType   string
		traitValue  string
		expectedErr error
	}{
		{
			name:        "unknown asset",
			caller:      alice,
			assetID:     9,
			traitType:   "texture",
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "non-owner",
			caller:      bob,
			assetID:     1,
			traitType:   "texture",
			expectedErr: domain.ErrUnauthorized,
		},
		{
			name: "non-owner on a locked asset",
			setup: func(t *testing.T, f *fixture) {
				_, err := f.service.LockCustomization(ctx, call(alice, 5), 1)
				require.NoError(t, err)
			},
			caller:      bob,
			assetID:     1,
			traitType:   "missing",
			expectedErr: domain.ErrUnauthorized,
		},
		{
			name: "locked before unknown trait",
			setup: func(t *testing.T, f *fixture) {
				_, err := f.service.LockCustomization(ctx, call(alice, 5), 1)
				require.NoError(t, err)
			},
			caller:      alice,
			assetID:     1,
			traitType:   "missing",
			expectedErr: domain.ErrCustomizationLocked,
		},
		{
			name:        "unknown trait",
			caller:      alice,
			assetID:     1,
			traitType:   "missing",
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "trait value too long",
			caller:      alice,
			assetID:     1,
			traitType:   "texture",
			traitValue:  strings.Repeat("v", domain.MAX_TRAIT_VALUE_LENGTH+1),
			expectedErr: domain.ErrInvalidTrait,
		},
		{
			name: "insufficient balance",
			setup: func(t *testing.T, f *fixture) {
				ok, err := f.store.DebitAccount(ctx, alice.String(), 8_600_000)
				require.NoError(t, err)
				require.True(t, ok)
			},
			caller:      alice,
			assetID:     1,
			traitType:   "texture",
			expectedErr: domain.ErrInsufficientPayment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, canvas.DefaultConfig(), nil)
			f.fund(t, alice, 10_000_000)
			_, err := f.service.DefineTrait(ctx, call("curator", 1), "texture", 40, 1000)
			require.NoError(t, err)
			_, err = f.service.Mint(ctx, call(alice, 2), "portrait")
			require.NoError(t, err)
			if tt.setup != nil {
				tt.setup(t, f)
			}

			balance := f.balance(t, alice)
			events := f.eventCount(t)

			_, err = f.service.ApplyCustomization(ctx, call(tt.caller, 10), tt.assetID, tt.traitType, tt.traitValue)
			assert.ErrorIs(t, err, tt.expectedErr)

			asset, err := f.service.GetAsset(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, uint32(0), asset.TraitCount)
			assert.Equal(t, uint64(100), asset.RarityScore)
			assert.Equal(t, balance, f.balance(t, alice))
			assert.Equal(t, events, f.eventCount(t))
			assert.Equal(t, uint64(0), f.counter(t, domain.COUNTER_TOTAL_CUSTOMIZATIONS))
		})
	}
}

func TestService_Collaborate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, canvas.DefaultConfig(), nil)
	f.fund(t, alice, 10_000_000)

	_, err := f.service.DefineTrait(ctx, call("curator", 1), "texture", 40, 1000)
	require.NoError(t, err)
	_, err = f.service.DefineTrait(ctx, call("curator", 1), "glow", 5, 0)
	require.NoError(t, err)
	_, err = f.service.Mint(ctx, call(alice, 2), "portrait")
	require.NoError(t, err)

	in := collab.Input{
		AssetID:             1,
		CollaborationType:   "remix",
		TraitCombination:    []string{"texture", "glow"},
		CommunityVoteWeight: 70,
		EvolutionStage:      0,
	}

	_, err = f.service.Collaborate(ctx, call(alice, 50), in)
	assert.ErrorIs(t, err, domain.ErrInvalidTrait)
	assert.Equal(t, domain.Amount(9_000_000), f.balance(t, alice))

	in.CommunityVoteWeight = 71
	result, err := f.service.Collaborate(ctx, call(alice, 50), in)
	require.NoError(t, err)
	assert.True(t, result.CollaborationComplete)
	assert.True(t, result.ArtisticEnhancementConfirmed)
	assert.Equal(t, uint64(1), result.EvolutionStageAchieved)
	assert.Equal(t, uint64(145), result.FinalRarityScore)
	assert.Equal(t, int64(50+86400), result.NextEvolutionUnlock)
	assert.Equal(t, domain.Amount(9_000_000-1_340_000), f.balance(t, alice))

	asset, err := f.service.GetAsset(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), asset.TraitCount)

	score, err := f.service.GetScore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, asset.RarityScore, score)

	stats, err := f.service.GetUserStats(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stats.Collaborations)
	assert.Equal(t, uint64(134_000), stats.CollaborationEarnings)

	assert.Equal(t, uint64(1), f.counter(t, domain.COUNTER_TOTAL_CUSTOMIZATIONS))
	assert.Equal(t, uint64(1_000_000+1_340_000), f.counter(t, domain.COUNTER_CONTRACT_BALANCE))

	assetID := uint64(1)
	events, _, err := f.service.ListEvents(ctx, store.EventQueryFilter{
		AssetID: &assetID,
		Types:   []domain.EventType{domain.EventTypeCollaborationCompleted},
		Limit:   10,
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Contains(t, string(events[0].Payload), `"signature":"`+result.CollaborationSignature+`"`)
	assert.Contains(t, string(events[0].Payload), `"trait_combination":["texture","glow"]`)
}

func TestService_ApplyAfterBoostedCollaboration(t *testing.T) {
	tests := []struct {
		name     string
		boost    rarity.BoostPolicy
		expected uint64
	}{
		{name: "compounding keeps the boost", boost: rarity.CompoundingBoost{}, expected: 222},
		{name: "ledger recomputes", boost: rarity.LedgerBoost{}, expected: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cfg := canvas.DefaultConfig()
			cfg.Collab.Boost = tt.boost
			f := newFixture(t, cfg, nil)
			f.fund(t, alice, 10_000_000)

			_, err := f.service.DefineTrait(ctx, call("curator", 1), "texture", 40, 1000)
			require.NoError(t, err)
			_, err = f.service.DefineTrait(ctx, call("curator", 1), "glow", 5, 0)
			require.NoError(t, err)
			_, err = f.service.Mint(ctx, call(alice, 2), "portrait")
			require.NoError(t, err)

			result, err := f.service.Collaborate(ctx, call(alice, 50), collab.Input{
				AssetID:             1,
				CollaborationType:   "remix",
				TraitCombination:    []string{"texture", "glow"},
				CommunityVoteWeight: 71,
				RarityBoost:         true,
			})
			require.NoError(t, err)
			assert.Equal(t, uint64(217), result.FinalRarityScore)

			applied, err := f.service.ApplyCustomization(ctx, call(alice, 60), 1, "glow", "soft")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, applied.Asset.RarityScore)

			asset, err := f.service.GetAsset(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, asset.RarityScore)
			assert.Equal(t, uint32(3), asset.TraitCount)
		})
	}
}

func TestService_LockCustomization(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, canvas.DefaultConfig(), nil)
	f.fund(t, alice, 10_000_000)

	_, err := f.service.DefineTrait(ctx, call("curator", 1), "texture", 40, 1000)
	require.NoError(t, err)
	_, err = f.service.Mint(ctx, call(alice, 2), "portrait")
	require.NoError(t, err)

	_, err = f.service.LockCustomization(ctx, call(bob, 3), 1)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.service.LockCustomization(ctx, call(alice, 3), 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	asset, err := f.service.LockCustomization(ctx, call(alice, 4), 1)
	require.NoError(t, err)
	assert.True(t, asset.CustomizationLocked)
	assert.Equal(t, int64(4), asset.LastModifiedTimestamp)

	again, err := f.service.LockCustomization(ctx, call(alice, 9), 1)
	require.NoError(t, err)
	assert.True(t, again.CustomizationLocked)
	assert.Equal(t, int64(4), again.LastModifiedTimestamp)

	_, err = f.service.ApplyCustomization(ctx, call(alice, 10), 1, "texture", "rough")
	assert.ErrorIs(t, err, domain.ErrCustomizationLocked)

	_, err = f.service.Collaborate(ctx, call(alice, 10), collab.Input{
		AssetID:             1,
		CollaborationType:   "remix",
		TraitCombination:    []string{"texture"},
		CommunityVoteWeight: 90,
	})
	assert.ErrorIs(t, err, domain.ErrCustomizationLocked)

	locked, _, err := f.service.ListEvents(ctx, store.EventQueryFilter{Types: []domain.EventType{domain.EventTypeAssetLocked}, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, locked, 1)
}

func TestService_RollbackOnLateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockJCS := mocks.NewMockJCS(ctrl)
	f := newFixture(t, canvas.DefaultConfig(), mockJCS)
	f.fund(t, alice, 5_000_000)

	// Charging, id allocation and stats succeed; writing the event fails last
	mockJCS.EXPECT().Transform(gomock.Any()).Return(nil, errors.New("canonicalization failed"))

	_, err := f.service.Mint(ctx, call(alice, 1), "portrait")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "canonicalization failed")

	assert.Equal(t, uint64(0), f.counter(t, domain.COUNTER_NEXT_ASSET_ID))
	assert.Equal(t, uint64(0), f.counter(t, domain.COUNTER_CONTRACT_BALANCE))
	assert.Equal(t, domain.Amount(5_000_000), f.balance(t, alice))

	_, err = f.service.GetAsset(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stats, err := f.service.GetUserStats(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), stats.AssetsOwned)
}

func TestService_ExternalBank(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockBank := mocks.NewMockBank(ctrl)
	cfg := canvas.DefaultConfig()
	cfg.BankFactory = func(store.Store) fee.Bank { return mockBank }
	f := newFixture(t, cfg, nil)

	gomock.InOrder(
		mockBank.EXPECT().Balance(gomock.Any(), alice).Return(domain.Amount(2_000_000), nil),
		mockBank.EXPECT().Transfer(gomock.Any(), alice, domain.Account("canvas"), domain.Amount(1_000_000)).Return(domain.ErrInsufficientFunds),
	)

	_, err := f.service.Mint(ctx, call(alice, 1), "portrait")
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
	assert.Equal(t, uint64(0), f.counter(t, domain.COUNTER_NEXT_ASSET_ID))
}

func TestService_GetUserStatsUnknown(t *testing.T) {
	f := newFixture(t, canvas.DefaultConfig(), nil)

	stats, err := f.service.GetUserStats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", stats.Account)
	assert.Equal(t, uint64(0), stats.AssetsOwned)
}
