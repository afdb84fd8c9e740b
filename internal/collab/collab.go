package collab

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/ff-canvas/internal/catalog"
	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/fee"
	"github.com/feral-file/ff-canvas/internal/ledger"
	"github.com/feral-file/ff-canvas/internal/rarity"
	"github.com/feral-file/ff-canvas/internal/registry"
	"github.com/feral-file/ff-canvas/internal/store"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// Input describes one collaborative customization
type Input struct {
	AssetID             domain.AssetID
	CollaborationType   string
	TraitCombination    []string
	CommunityVoteWeight uint64
	EvolutionStage      uint64
	RarityBoost         bool
}

// Result is returned to the caller of a successful collaboration
type Result struct {
	CollaborationComplete        bool          `json:"collaboration_complete"`
	EvolutionStageAchieved       uint64        `json:"evolution_stage_achieved"`
	FinalRarityScore             uint64        `json:"final_rarity_score"`
	CommunityImpactRating        uint64        `json:"community_impact_rating"`
	NextEvolutionUnlock          int64         `json:"next_evolution_unlock"`
	CollaborationSignature       string        `json:"collaboration_signature"`
	ArtisticEnhancementConfirmed bool          `json:"artistic_enhancement_confirmed"`
	Financials                   Financials    `json:"financials"`
	Asset                        *schema.Asset `json:"-"`
}

// EvolutionMetrics is the metrics block of the collaboration event
type EvolutionMetrics struct {
	Stage        uint64 `json:"stage"`
	Innovation   uint64 `json:"innovation"`
	Synergy      uint64 `json:"synergy"`
	MarketAppeal uint64 `json:"market_appeal"`
}

// Payload is the body of the collaboration_completed event
type Payload struct {
	Timestamp         int64            `json:"timestamp"`
	AssetID           uint64           `json:"asset_id"`
	CollaborationType string           `json:"collaboration_type"`
	EvolutionMetrics  EvolutionMetrics `json:"evolution_metrics"`
	TraitCombination  []string         `json:"trait_combination"`
	Financials        Financials       `json:"financials"`
	Signature         string           `json:"signature"`
}

// Config groups the pluggable policies of the engine
type Config struct {
	Scoring    ScoringPolicy
	Thresholds Thresholds
	Rewards    RewardPolicy
	Boost      rarity.BoostPolicy
}

// DefaultConfig returns the reference policies
func DefaultConfig() Config {
	return Config{
		Scoring:    ConstantPolicy{},
		Thresholds: DefaultThresholds(),
		Rewards:    DefaultRewardPolicy(),
		Boost:      rarity.CompoundingBoost{},
	}
}

// Engine runs collaborative customizations against the components of one transaction
type Engine struct {
	cfg      Config
	store    store.Store
	registry registry.Registry
	ledger   ledger.Ledger
	catalog  catalog.Catalog
	fees     *fee.Engine
	scores   *rarity.Engine
}

// NewEngine wires an engine over transaction-bound components
func NewEngine(cfg Config, s store.Store, r registry.Registry, l ledger.Ledger, c catalog.Catalog, fees *fee.Engine) *Engine {
	if cfg.Scoring == nil {
		cfg.Scoring = ConstantPolicy{}
	}
	return &Engine{
		cfg:      cfg,
		store:    s,
		registry: r,
		ledger:   l,
		catalog:  c,
		fees:     fees,
		scores:   rarity.NewEngine(l, cfg.Boost, cfg.Thresholds.BoostPercent),
	}
}

// Run validates every gate, then settles and applies the collaboration.
// The first failing gate is returned and nothing is mutated.
func (e *Engine) Run(ctx context.Context, call domain.Call, in Input) (*Result, *Payload, error) {
	asset, err := e.registry.Get(ctx, in.AssetID)
	if err != nil {
		return nil, nil, err
	}
	if len(in.TraitCombination) == 0 || len(in.TraitCombination) > domain.MAX_TRAIT_COMBINATION {
		return nil, nil, fmt.Errorf("trait combination must hold 1..%d traits: %w", domain.MAX_TRAIT_COMBINATION, domain.ErrInvalidTrait)
	}
	if !domain.ValidCollaborationType(in.CollaborationType) {
		return nil, nil, fmt.Errorf("collaboration type must be 1..%d characters: %w", domain.MAX_COLLABORATION_TYPE_LENGTH, domain.ErrInvalidTrait)
	}

	if domain.Account(asset.Owner) != call.Caller {
		return nil, nil, fmt.Errorf("%s does not own asset %d: %w", call.Caller, asset.ID, domain.ErrUnauthorized)
	}
	if in.CommunityVoteWeight <= e.cfg.Thresholds.ApprovalThreshold {
		return nil, nil, fmt.Errorf("vote weight %d does not exceed %d: %w", in.CommunityVoteWeight, e.cfg.Thresholds.ApprovalThreshold, domain.ErrInvalidTrait)
	}
	if conflict := e.cfg.Scoring.ConflictScore(in); conflict >= e.cfg.Thresholds.ConflictLimit {
		return nil, nil, fmt.Errorf("conflict score %d is not below %d: %w", conflict, e.cfg.Thresholds.ConflictLimit, domain.ErrInvalidTrait)
	}
	if asset.CustomizationLocked {
		return nil, nil, fmt.Errorf("asset %d: %w", asset.ID, domain.ErrCustomizationLocked)
	}
	if int(asset.TraitCount)+len(in.TraitCombination) > domain.MAX_TRAITS_PER_ASSET {
		return nil, nil, fmt.Errorf("asset %d has %d traits, cannot add %d: %w", asset.ID, asset.TraitCount, len(in.TraitCombination), domain.ErrMaxTraitsExceeded)
	}

	defs, err := e.resolveTraits(ctx, in.TraitCombination)
	if err != nil {
		return nil, nil, err
	}

	cost := e.fees.DynamicCost(in.TraitCombination, in.CommunityVoteWeight, in.EvolutionStage, in.RarityBoost)
	ok, err := e.fees.CanAfford(ctx, call.Caller, cost)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, fmt.Errorf("%s cannot pay %d: %w", call.Caller, cost, domain.ErrInsufficientPayment)
	}

	// Validated; from here on any error rolls the enclosing transaction back
	if err := e.fees.Settle(ctx, call.Caller, e.fees.Policy().FeeSink, cost); err != nil {
		return nil, nil, err
	}

	storedScore := asset.RarityScore
	updated, err := e.registry.Update(ctx, in.AssetID, func(a *schema.Asset) error {
		var added uint64
		for i, name := range in.TraitCombination {
			if _, err := e.ledger.Append(ctx, call, a, name, in.CollaborationType, defs[i].BaseRarity); err != nil {
				return err
			}
			a.TraitCount++
			added += uint64(defs[i].BaseRarity)

			if err := e.catalog.RecordApplication(ctx, name); err != nil {
				return err
			}
		}

		score, err := e.scores.Boosted(ctx, a, storedScore, added, in.RarityBoost)
		if err != nil {
			return err
		}
		a.RarityScore = score
		a.LastModifiedTimestamp = call.Now
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if _, err := e.store.IncrementCounter(ctx, domain.COUNTER_TOTAL_CUSTOMIZATIONS, 1); err != nil {
		return nil, nil, err
	}

	financials := e.cfg.Rewards.Split(uint64(cost), in.CommunityVoteWeight)
	signature := Signature(call.Now, updated.ID, in.EvolutionStage)

	result := &Result{
		CollaborationComplete:        true,
		EvolutionStageAchieved:       in.EvolutionStage + 1,
		FinalRarityScore:             updated.RarityScore,
		CommunityImpactRating:        e.cfg.Scoring.CommunityImpact(in),
		NextEvolutionUnlock:          call.Now + e.cfg.Thresholds.CooldownSeconds,
		CollaborationSignature:       signature,
		ArtisticEnhancementConfirmed: e.cfg.Scoring.AestheticImprovement(in) > e.cfg.Thresholds.ArtisticThreshold,
		Financials:                   financials,
		Asset:                        updated,
	}

	payload := &Payload{
		Timestamp:         call.Now,
		AssetID:           updated.ID,
		CollaborationType: in.CollaborationType,
		EvolutionMetrics: EvolutionMetrics{
			Stage:        in.EvolutionStage,
			Innovation:   e.cfg.Scoring.InnovationScore(in),
			Synergy:      e.cfg.Scoring.SynergyRating(in),
			MarketAppeal: e.cfg.Scoring.MarketAppeal(in),
		},
		TraitCombination: append([]string(nil), in.TraitCombination...),
		Financials:       financials,
		Signature:        signature,
	}

	return result, payload, nil
}

// resolveTraits loads every combination entry and checks it has room for the
// number of times it appears
func (e *Engine) resolveTraits(ctx context.Context, names []string) ([]*schema.TraitDefinition, error) {
	defs := make([]*schema.TraitDefinition, len(names))
	wanted := make(map[string]uint64, len(names))

	for i, name := range names {
		def, err := e.catalog.Lookup(ctx, name)
		if err != nil {
			return nil, err
		}
		if def == nil {
			return nil, fmt.Errorf("trait %q: %w", name, domain.ErrNotFound)
		}

		wanted[name]++
		if def.RemainingApplications() < wanted[name] {
			return nil, fmt.Errorf("trait %q has %d applications left: %w", name, def.RemainingApplications(), domain.ErrCapacityExceeded)
		}
		defs[i] = def
	}

	return defs, nil
}

// Signature is "0x" followed by the Keccak-256 of the big-endian timestamp, asset id and stage
func Signature(timestamp int64, assetID uint64, stage uint64) string {
	buf := make([]byte, 24)
	binary.BigEndian.PutUint64(buf[0:8], uint64(timestamp)) //nolint:gosec,G115
	binary.BigEndian.PutUint64(buf[8:16], assetID)
	binary.BigEndian.PutUint64(buf[16:24], stage)
	return crypto.Keccak256Hash(buf).Hex()
}
