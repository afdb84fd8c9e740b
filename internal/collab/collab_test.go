package collab_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-canvas/internal/catalog"
	"github.com/feral-file/ff-canvas/internal/collab"
	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/fee"
	"github.com/feral-file/ff-canvas/internal/ledger"
	"github.com/feral-file/ff-canvas/internal/mocks"
	"github.com/feral-file/ff-canvas/internal/rarity"
	"github.com/feral-file/ff-canvas/internal/registry"
	"github.com/feral-file/ff-canvas/internal/store"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

const now = int64(1_700_000_000)

type fixture struct {
	store  store.Store
	engine *collab.Engine
}

func newFixture(t *testing.T, cfg collab.Config) *fixture {
	ctx := context.Background()
	db, err := store.OpenDatabase(store.DriverSQLite, ":memory:", false)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx, db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	s := store.NewStore(db)
	c := catalog.New(s)
	fees := fee.NewEngine(fee.DefaultPolicy(), s, c, fee.NewStoreBank(s))
	engine := collab.NewEngine(cfg, s, registry.New(s), ledger.New(s), c, fees)

	_, err = c.Define(ctx, domain.NewCall("curator", 1), "texture", 40, 1000)
	require.NoError(t, err)
	_, err = c.Define(ctx, domain.NewCall("curator", 1), "glow", 5, 0)
	require.NoError(t, err)

	require.NoError(t, s.CreateAsset(ctx, &schema.Asset{
		ID:                    1,
		Owner:                 "alice",
		BaseTemplate:          "portrait",
		RarityScore:           100,
		CreationTimestamp:     1,
		LastModifiedTimestamp: 1,
	}))
	_, err = s.IncrementCounter(ctx, domain.COUNTER_NEXT_ASSET_ID, 1)
	require.NoError(t, err)
	require.NoError(t, s.CreditAccount(ctx, "alice", 5_000_000))

	return &fixture{store: s, engine: engine}
}

func validInput() collab.Input {
	return collab.Input{
		AssetID:             1,
		CollaborationType:   "remix",
		TraitCombination:    []string{"texture", "glow"},
		CommunityVoteWeight: 71,
		EvolutionStage:      2,
	}
}

func TestEngine_Run(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, collab.DefaultConfig())

	result, payload, err := f.engine.Run(ctx, domain.NewCall("alice", now), validInput())
	require.NoError(t, err)

	assert.True(t, result.CollaborationComplete)
	assert.Equal(t, uint64(3), result.EvolutionStageAchieved)
	assert.Equal(t, uint64(145), result.FinalRarityScore)
	assert.Equal(t, uint64(87), result.CommunityImpactRating)
	assert.Equal(t, now+86400, result.NextEvolutionUnlock)
	assert.Equal(t, collab.Signature(now, 1, 2), result.CollaborationSignature)
	assert.True(t, result.ArtisticEnhancementConfirmed)
	assert.Equal(t, collab.Financials{
		TotalCost:         1_340_000,
		ParticipantReward: 134_000,
		CreatorRoyalty:    201_000,
		CommunityBonus:    95_140,
	}, result.Financials)

	assert.Equal(t, now, payload.Timestamp)
	assert.Equal(t, uint64(1), payload.AssetID)
	assert.Equal(t, "remix", payload.CollaborationType)
	assert.Equal(t, collab.EvolutionMetrics{Stage: 2, Innovation: 85, Synergy: 92, MarketAppeal: 88}, payload.EvolutionMetrics)
	assert.Equal(t, []string{"texture", "glow"}, payload.TraitCombination)
	assert.Equal(t, result.Financials, payload.Financials)
	assert.Equal(t, result.CollaborationSignature, payload.Signature)

	asset, err := f.store.GetAssetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), asset.TraitCount)
	assert.Equal(t, uint64(145), asset.RarityScore)
	assert.Equal(t, now, asset.LastModifiedTimestamp)

	traits, err := f.store.GetAppliedTraits(ctx, 1)
	require.NoError(t, err)
	require.Len(t, traits, 2)
	assert.Equal(t, "texture", traits[0].TraitType)
	assert.Equal(t, "remix", traits[0].TraitValue)
	assert.Equal(t, uint32(40), traits[0].RarityTier)
	assert.Equal(t, "glow", traits[1].TraitType)
	assert.Equal(t, uint32(1), traits[1].SlotIndex)
	assert.Equal(t, rarity.Score(traits), asset.RarityScore)

	balance, err := f.store.GetAccountBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(5_000_000-1_340_000), balance)

	counters, err := f.store.GetCounters(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), counters[domain.COUNTER_TOTAL_CUSTOMIZATIONS])
	assert.Equal(t, uint64(1_340_000), counters[domain.COUNTER_CONTRACT_BALANCE])

	texture, err := f.store.GetTraitDefinition(ctx, "texture")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), texture.CurrentApplications)
}

func TestEngine_RunBoost(t *testing.T) {
	ctx := context.Background()

	t.Run("compounding", func(t *testing.T) {
		f := newFixture(t, collab.DefaultConfig())
		in := validInput()
		in.RarityBoost = true

		result, _, err := f.engine.Run(ctx, domain.NewCall("alice", now), in)
		require.NoError(t, err)
		assert.Equal(t, uint64(217), result.FinalRarityScore)

		in.TraitCombination = []string{"glow"}
		result, _, err = f.engine.Run(ctx, domain.NewCall("alice", now+1), in)
		require.NoError(t, err)
		assert.Equal(t, uint64(333), result.FinalRarityScore) // floor((217 + 5) * 1.5)
	})

	t.Run("ledger", func(t *testing.T) {
		cfg := collab.DefaultConfig()
		cfg.Boost = rarity.LedgerBoost{}
		f := newFixture(t, cfg)
		in := validInput()
		in.RarityBoost = true

		result, _, err := f.engine.Run(ctx, domain.NewCall("alice", now), in)
		require.NoError(t, err)
		assert.Equal(t, uint64(217), result.FinalRarityScore)

		in.TraitCombination = []string{"glow"}
		result, _, err = f.engine.Run(ctx, domain.NewCall("alice", now+1), in)
		require.NoError(t, err)
		assert.Equal(t, uint64(225), result.FinalRarityScore) // floor(150 * 1.5)
	})
}

type conflictingPolicy struct {
	collab.ConstantPolicy
}

func (conflictingPolicy) ConflictScore(collab.Input) uint64 { return 20 }

func TestEngine_RunGates(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		cfg         func() collab.Config
		setup       func(t *testing.T, s store.Store)
		caller      string
		input       func(in *collab.Input)
		expectedErr error
	}{
		{
			name:        "unknown asset comes first",
			caller:      "bob",
			input:       func(in *collab.Input) { in.AssetID = 9; in.CommunityVoteWeight = 0 },
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "empty combination",
			caller:      "alice",
			input:       func(in *collab.Input) { in.TraitCombination = nil },
			expectedErr: domain.ErrInvalidTrait,
		},
		{
			name:   "combination above five",
			caller: "alice",
			input: func(in *collab.Input) {
				in.TraitCombination = []string{"glow", "glow", "glow", "glow", "glow", "glow"}
			},
			expectedErr: domain.ErrInvalidTrait,
		},
		{
			name:        "empty collaboration type",
			caller:      "alice",
			input:       func(in *collab.Input) { in.CollaborationType = "" },
			expectedErr: domain.ErrInvalidTrait,
		},
		{
			name:        "ownership before consensus",
			caller:      "bob",
			input:       func(in *collab.Input) { in.CommunityVoteWeight = 70 },
			expectedErr: domain.ErrUnauthorized,
		},
		{
			name:        "vote weight equal to threshold",
			caller:      "alice",
			input:       func(in *collab.Input) { in.CommunityVoteWeight = 70 },
			expectedErr: domain.ErrInvalidTrait,
		},
		{
			name: "conflict score at limit",
			cfg: func() collab.Config {
				cfg := collab.DefaultConfig()
				cfg.Scoring = conflictingPolicy{}
				return cfg
			},
			caller:      "alice",
			expectedErr: domain.ErrInvalidTrait,
		},
		{
			name: "locked asset",
			setup: func(t *testing.T, s store.Store) {
				asset, err := s.GetAssetByID(context.Background(), 1)
				require.NoError(t, err)
				asset.CustomizationLocked = true
				require.NoError(t, s.UpdateAsset(context.Background(), asset, 0))
			},
			caller:      "alice",
			input:       func(in *collab.Input) { in.TraitCombination = []string{"missing"} },
			expectedErr: domain.ErrCustomizationLocked,
		},
		{
			name: "not enough free slots",
			setup: func(t *testing.T, s store.Store) {
				asset, err := s.GetAssetByID(context.Background(), 1)
				require.NoError(t, err)
				asset.TraitCount = 11
				require.NoError(t, s.UpdateAsset(context.Background(), asset, 0))
			},
			caller:      "alice",
			expectedErr: domain.ErrMaxTraitsExceeded,
		},
		{
			name:        "unknown trait",
			caller:      "alice",
			input:       func(in *collab.Input) { in.TraitCombination = []string{"texture", "missing"} },
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "trait without capacity",
			setup: func(t *testing.T, s store.Store) {
				require.NoError(t, s.CreateTraitDefinition(context.Background(), &schema.TraitDefinition{
					Name:            "rare",
					BaseRarity:      90,
					MaxApplications: 1,
					Creator:         "curator",
				}))
			},
			caller:      "alice",
			input:       func(in *collab.Input) { in.TraitCombination = []string{"rare", "rare"} },
			expectedErr: domain.ErrCapacityExceeded,
		},
		{
			name: "insufficient balance",
			setup: func(t *testing.T, s store.Store) {
				ok, err := s.DebitAccount(context.Background(), "alice", 4_000_000)
				require.NoError(t, err)
				require.True(t, ok)
			},
			caller:      "alice",
			expectedErr: domain.ErrInsufficientPayment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := collab.DefaultConfig()
			if tt.cfg != nil {
				cfg = tt.cfg()
			}
			f := newFixture(t, cfg)
			if tt.setup != nil {
				tt.setup(t, f.store)
			}
			before, err := f.store.GetAssetByID(ctx, 1)
			require.NoError(t, err)
			balanceBefore, err := f.store.GetAccountBalance(ctx, "alice")
			require.NoError(t, err)

			in := validInput()
			if tt.input != nil {
				tt.input(&in)
			}

			result, payload, err := f.engine.Run(ctx, domain.NewCall(tt.caller, now), in)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, result)
			assert.Nil(t, payload)

			after, err := f.store.GetAssetByID(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, before.TraitCount, after.TraitCount)
			assert.Equal(t, before.RarityScore, after.RarityScore)

			balanceAfter, err := f.store.GetAccountBalance(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, balanceBefore, balanceAfter)

			traits, err := f.store.GetAppliedTraits(ctx, 1)
			require.NoError(t, err)
			assert.Empty(t, traits)
		})
	}
}

func TestEngine_ArtisticEnhancementThreshold(t *testing.T) {
	cfg := collab.DefaultConfig()
	cfg.Scoring = plainAesthetics{}
	f := newFixture(t, cfg)

	result, _, err := f.engine.Run(context.Background(), domain.NewCall("alice", now), validInput())
	require.NoError(t, err)
	assert.False(t, result.ArtisticEnhancementConfirmed)
}

// plainAesthetics scores an aesthetic improvement of exactly 90
type plainAesthetics struct {
	collab.ConstantPolicy
}

func (plainAesthetics) AestheticImprovement(collab.Input) uint64 { return 90 }

func TestRewardPolicy_Split(t *testing.T) {
	split := collab.DefaultRewardPolicy().Split(1_000, 100)
	assert.Equal(t, collab.Financials{
		TotalCost:         1_000,
		ParticipantReward: 100,
		CreatorRoyalty:    150,
		CommunityBonus:    100,
	}, split)

	assert.Equal(t, uint64(0), collab.RewardPolicy{PoolPercent: 30}.Split(1_000, 80).ParticipantReward)
}

func TestRewardPolicy_SplitLargeVoteWeight(t *testing.T) {
	policy := collab.DefaultRewardPolicy()

	split := policy.Split(1_340_000, 20_000_000_000_000)
	assert.Equal(t, uint64(26_800_000_000_000_000), split.CommunityBonus)
	assert.Equal(t, uint64(134_000), split.ParticipantReward)
	assert.Equal(t, uint64(201_000), split.CreatorRoyalty)

	assert.Equal(t, uint64(math.MaxUint64), policy.Split(1_340_000, math.MaxUint64/2).CommunityBonus)
	assert.Equal(t, uint64(math.MaxUint64), policy.Split(math.MaxUint64, math.MaxUint64).CommunityBonus)

	assert.Equal(t, uint64(2_767_011_611_056_432_742), policy.Split(math.MaxUint64, 0).CreatorRoyalty)
}

func TestSignature(t *testing.T) {
	sig := collab.Signature(now, 1, 2)
	assert.Len(t, sig, 66)
	assert.Equal(t, "0x", sig[:2])
	assert.Equal(t, sig, collab.Signature(now, 1, 2))
	assert.NotEqual(t, sig, collab.Signature(now, 1, 3))
	assert.NotEqual(t, sig, collab.Signature(now+1, 1, 2))
}

func TestEngine_CustomScoringPolicy(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	scoring := mocks.NewMockScoringPolicy(ctrl)

	cfg := collab.DefaultConfig()
	cfg.Scoring = scoring
	f := newFixture(t, cfg)

	// A conflicting combination is rejected before anything is charged
	scoring.EXPECT().ConflictScore(gomock.Any()).Return(cfg.Thresholds.ConflictLimit)
	_, _, err := f.engine.Run(ctx, domain.NewCall("alice", now), validInput())
	assert.True(t, errors.Is(err, domain.ErrInvalidTrait))

	balance, err := f.store.GetAccountBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(5_000_000), balance)

	scoring.EXPECT().ConflictScore(gomock.Any()).Return(uint64(0))
	scoring.EXPECT().CommunityImpact(gomock.Any()).Return(uint64(12))
	scoring.EXPECT().AestheticImprovement(gomock.Any()).Return(cfg.Thresholds.ArtisticThreshold)
	scoring.EXPECT().InnovationScore(gomock.Any()).Return(uint64(1)).AnyTimes()
	scoring.EXPECT().SynergyRating(gomock.Any()).Return(uint64(2)).AnyTimes()
	scoring.EXPECT().MarketAppeal(gomock.Any()).Return(uint64(3)).AnyTimes()

	result, _, err := f.engine.Run(ctx, domain.NewCall("alice", now), validInput())
	require.NoError(t, err)
	assert.Equal(t, uint64(12), result.CommunityImpactRating)
	// The aesthetic score must strictly exceed the threshold
	assert.False(t, result.ArtisticEnhancementConfirmed)
}

func TestEngine_RunAssetLookupFails(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := newFixture(t, collab.DefaultConfig())

	reg := mocks.NewMockRegistry(ctrl)
	reg.EXPECT().Get(gomock.Any(), domain.AssetID(1)).Return(nil, domain.ErrNotFound)

	c := catalog.New(f.store)
	fees := fee.NewEngine(fee.DefaultPolicy(), f.store, c, fee.NewStoreBank(f.store))
	engine := collab.NewEngine(collab.DefaultConfig(), f.store, reg, ledger.New(f.store), c, fees)

	_, _, err := engine.Run(ctx, domain.NewCall("alice", now), validInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
