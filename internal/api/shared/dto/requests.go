package dto

import (
	"fmt"

	apierrors "github.com/feral-file/ff-canvas/internal/api/shared/errors"
	"github.com/feral-file/ff-canvas/internal/collab"
	"github.com/feral-file/ff-canvas/internal/domain"
)

// DefineTraitRequest represents the request body for registering a trait type
type DefineTraitRequest struct {
	Name              string `json:"name"`
	BaseRarity        uint32 `json:"base_rarity"`
	CustomizationCost uint64 `json:"customization_cost"`
}

// Validate validates the request body.
// Range checks of the catalog itself are left to the operation so both paths report the same error.
func (r *DefineTraitRequest) Validate() error {
	if r.Name == "" {
		return apierrors.NewValidationError("name is required")
	}
	if !domain.ValidAmount(domain.Amount(r.CustomizationCost)) {
		return apierrors.NewValidationError(fmt.Sprintf("customization_cost must be at most %d", uint64(domain.MAX_AMOUNT)))
	}
	return nil
}

// MintRequest represents the request body for minting an asset
type MintRequest struct {
	BaseTemplate string `json:"base_template"`
}

// Validate validates the request body
func (r *MintRequest) Validate() error {
	if r.BaseTemplate == "" {
		return apierrors.NewValidationError("base_template is required")
	}
	return nil
}

// ApplyCustomizationRequest represents the request body for applying a trait
type ApplyCustomizationRequest struct {
	TraitType  string `json:"trait_type"`
	TraitValue string `json:"trait_value"`
}

// Validate validates the request body
func (r *ApplyCustomizationRequest) Validate() error {
	if r.TraitType == "" {
		return apierrors.NewValidationError("trait_type is required")
	}
	return nil
}

// CollaborateRequest represents the request body for a collaborative customization
type CollaborateRequest struct {
	CollaborationType   string   `json:"collaboration_type"`
	TraitCombination    []string `json:"trait_combination"`
	CommunityVoteWeight uint64   `json:"community_vote_weight"`
	EvolutionStage      uint64   `json:"evolution_stage"`
	RarityBoost         bool     `json:"rarity_boost"`
}

// Validate validates the request body
func (r *CollaborateRequest) Validate() error {
	if r.CollaborationType == "" {
		return apierrors.NewValidationError("collaboration_type is required")
	}
	if len(r.TraitCombination) == 0 {
		return apierrors.NewValidationError("trait_combination is required")
	}
	if len(r.TraitCombination) > domain.MAX_TRAIT_COMBINATION {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d traits per collaboration", domain.MAX_TRAIT_COMBINATION))
	}
	return nil
}

// Input converts the request into the collaboration engine input
func (r *CollaborateRequest) Input(assetID domain.AssetID) collab.Input {
	return collab.Input{
		AssetID:             assetID,
		CollaborationType:   r.CollaborationType,
		TraitCombination:    r.TraitCombination,
		CommunityVoteWeight: r.CommunityVoteWeight,
		EvolutionStage:      r.EvolutionStage,
		RarityBoost:         r.RarityBoost,
	}
}

// CreditAccountRequest represents the request body for topping up an account
type CreditAccountRequest struct {
	Amount uint64 `json:"amount"`
}

// Validate validates the request body
func (r *CreditAccountRequest) Validate() error {
	if r.Amount == 0 {
		return apierrors.NewValidationError("amount must be positive")
	}
	if !domain.ValidAmount(domain.Amount(r.Amount)) {
		return apierrors.NewValidationError(fmt.Sprintf("amount must be at most %d", uint64(domain.MAX_AMOUNT)))
	}
	return nil
}
