package collab

import (
	"math"
	"math/bits"
)

// ScoringPolicy supplies the evolution metrics of a collaboration
//
//go:generate mockgen -source=policy.go -destination=../mocks/scoring_policy.go -package=mocks -mock_names=ScoringPolicy=MockScoringPolicy
type ScoringPolicy interface {
	InnovationScore(in Input) uint64
	SynergyRating(in Input) uint64
	MarketAppeal(in Input) uint64
	ConflictScore(in Input) uint64
	AestheticImprovement(in Input) uint64
	CommunityImpact(in Input) uint64
}

// ConstantPolicy returns the reference metrics regardless of the input
type ConstantPolicy struct{}

func (ConstantPolicy) InnovationScore(Input) uint64      { return 85 }
func (ConstantPolicy) SynergyRating(Input) uint64        { return 92 }
func (ConstantPolicy) MarketAppeal(Input) uint64         { return 88 }
func (ConstantPolicy) ConflictScore(Input) uint64        { return 8 }
func (ConstantPolicy) AestheticImprovement(Input) uint64 { return 95 }
func (ConstantPolicy) CommunityImpact(Input) uint64      { return 87 }

// Thresholds holds the gates and timing of a collaboration
type Thresholds struct {
	// ApprovalThreshold must be strictly exceeded by the community vote weight
	ApprovalThreshold uint64
	// ConflictLimit must be strictly above the conflict score
	ConflictLimit uint64
	// ArtisticThreshold must be strictly exceeded by the aesthetic improvement
	ArtisticThreshold uint64
	// BoostPercent is the rarity multiplier of boosted collaborations
	BoostPercent uint64
	// CooldownSeconds delays the next evolution unlock
	CooldownSeconds int64
}

// DefaultThresholds returns the reference gates
func DefaultThresholds() Thresholds {
	return Thresholds{
		ApprovalThreshold: 70,
		ConflictLimit:     20,
		ArtisticThreshold: 90,
		BoostPercent:      150,
		CooldownSeconds:   86400,
	}
}

// RewardPolicy splits the collaboration cost into reward figures
type RewardPolicy struct {
	PoolPercent           uint64
	Participants          uint64
	RoyaltyPercent        uint64
	CommunityBonusDivisor uint64
}

// DefaultRewardPolicy returns the reference split
func DefaultRewardPolicy() RewardPolicy {
	return RewardPolicy{
		PoolPercent:           30,
		Participants:          3,
		RoyaltyPercent:        15,
		CommunityBonusDivisor: 1000,
	}
}

// Financials is the reward breakdown of a collaboration
type Financials struct {
	TotalCost         uint64 `json:"total_cost"`
	ParticipantReward uint64 `json:"participant_reward"`
	CreatorRoyalty    uint64 `json:"creator_royalty"`
	CommunityBonus    uint64 `json:"community_bonus"`
}

// Split computes the breakdown of total for the given vote weight
// Products are computed at 128 bits; a quotient above MaxUint64 saturates.
func (p RewardPolicy) Split(total, voteWeight uint64) Financials {
	pool := mulDiv(total, p.PoolPercent, 100)

	var share uint64
	if p.Participants > 0 {
		share = pool / p.Participants
	}

	var bonus uint64
	if p.CommunityBonusDivisor > 0 {
		bonus = mulDiv(total, voteWeight, p.CommunityBonusDivisor)
	}

	return Financials{
		TotalCost:         total,
		ParticipantReward: share,
		CreatorRoyalty:    mulDiv(total, p.RoyaltyPercent, 100),
		CommunityBonus:    bonus,
	}
}

// mulDiv returns a*b/d without intermediate overflow, saturating at MaxUint64. d must be non-zero.
func mulDiv(a, b, d uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		return math.MaxUint64
	}
	quo, _ := bits.Div64(hi, lo, d)
	return quo
}
