package rarity

import (
	"context"

	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/ledger"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// NoBoost is the multiplier percentage of an operation without rarity boost
const NoBoost = 100

// Score returns the base score plus the rarity tier of every applied trait
func Score(traits []schema.AppliedTrait) uint64 {
	score := uint64(domain.BASE_RARITY_SCORE)
	for _, t := range traits {
		score += uint64(t.RarityTier)
	}
	return score
}

// BoostInput is everything a boost policy may base the new stored score on
type BoostInput struct {
	// StoredScore is the asset's rarity score before the operation
	StoredScore uint64
	// AddedTiers is the sum of the rarity tiers the operation appends
	AddedTiers uint64
	// LedgerScore is Score() over the ledger after the operation
	LedgerScore uint64
	// MultiplierPercent is the boost, NoBoost when inactive
	MultiplierPercent uint64
}

// BoostPolicy decides the rarity score stored after any operation that appends traits
type BoostPolicy interface {
	Apply(in BoostInput) uint64
}

// CompoundingBoost multiplies the stored score, so successive boosted operations compound
type CompoundingBoost struct{}

func (CompoundingBoost) Apply(in BoostInput) uint64 {
	score := in.StoredScore + in.AddedTiers
	if in.MultiplierPercent == NoBoost {
		return score
	}
	return score * in.MultiplierPercent / 100
}

// LedgerBoost stores the ledger score, multiplied only by the boost of the current operation
type LedgerBoost struct{}

func (LedgerBoost) Apply(in BoostInput) uint64 {
	if in.MultiplierPercent == NoBoost {
		return in.LedgerScore
	}
	return in.LedgerScore * in.MultiplierPercent / 100
}

// PolicyByName resolves a configured boost policy, defaulting to CompoundingBoost
func PolicyByName(name string) BoostPolicy {
	switch name {
	case "ledger":
		return LedgerBoost{}
	default:
		return CompoundingBoost{}
	}
}

// Engine computes asset scores from the ledger
type Engine struct {
	ledger       ledger.Ledger
	policy       BoostPolicy
	boostPercent uint64
}

// NewEngine creates a scoring engine. boostPercent is the multiplier of boosted operations.
func NewEngine(l ledger.Ledger, policy BoostPolicy, boostPercent uint64) *Engine {
	if policy == nil {
		policy = CompoundingBoost{}
	}
	return &Engine{ledger: l, policy: policy, boostPercent: boostPercent}
}

// Score recomputes the score of an asset from its ledger
func (e *Engine) Score(ctx context.Context, assetID domain.AssetID) (uint64, error) {
	traits, err := e.ledger.TraitsOf(ctx, assetID)
	if err != nil {
		return 0, err
	}
	return Score(traits), nil
}

// Boosted returns the score to store after an operation that appended addedTiers
// worth of traits. boost is false for single customizations. The ledger must already
// contain the new rows.
func (e *Engine) Boosted(ctx context.Context, asset *schema.Asset, storedScore, addedTiers uint64, boost bool) (uint64, error) {
	ledgerScore, err := e.Score(ctx, domain.AssetID(asset.ID))
	if err != nil {
		return 0, err
	}

	multiplier := uint64(NoBoost)
	if boost {
		multiplier = e.boostPercent
	}

	return e.policy.Apply(BoostInput{
		StoredScore:       storedScore,
		AddedTiers:        addedTiers,
		LedgerScore:       ledgerScore,
		MultiplierPercent: multiplier,
	}), nil
}
