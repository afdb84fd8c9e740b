package dto

import (
	"encoding/json"

	"github.com/feral-file/ff-canvas/internal/canvas"
	"github.com/feral-file/ff-canvas/internal/collab"
	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// AssetResponse represents an asset
type AssetResponse struct {
	ID                    uint64 `json:"id"`
	Owner                 string `json:"owner"`
	BaseTemplate          string `json:"base_template"`
	TraitCount            uint32 `json:"trait_count"`
	RarityScore           uint64 `json:"rarity_score"`
	CustomizationLocked   bool   `json:"customization_locked"`
	CreationTimestamp     int64  `json:"creation_timestamp"`
	LastModifiedTimestamp int64  `json:"last_modified_timestamp"`
}

// AppliedTraitResponse represents one ledger row of an asset
type AppliedTraitResponse struct {
	SlotIndex            uint32 `json:"slot_index"`
	TraitType            string `json:"trait_type"`
	TraitValue           string `json:"trait_value"`
	RarityTier           uint32 `json:"rarity_tier"`
	AppliedBy            string `json:"applied_by"`
	ApplicationTimestamp int64  `json:"application_timestamp"`
}

// AssetTraitsResponse represents the ledger of an asset together with its derived score
type AssetTraitsResponse struct {
	AssetID     uint64                 `json:"asset_id"`
	RarityScore uint64                 `json:"rarity_score"`
	Traits      []AppliedTraitResponse `json:"traits"`
}

// TraitDefinitionResponse represents a catalog entry
type TraitDefinitionResponse struct {
	Name                string `json:"name"`
	BaseRarity          uint32 `json:"base_rarity"`
	CustomizationCost   uint64 `json:"customization_cost"`
	MaxApplications     uint64 `json:"max_applications"`
	CurrentApplications uint64 `json:"current_applications"`
	Creator             string `json:"creator"`
	CreationTimestamp   int64  `json:"creation_timestamp"`
}

// CustomizationResponse represents the outcome of a single trait application
type CustomizationResponse struct {
	Asset AssetResponse        `json:"asset"`
	Trait AppliedTraitResponse `json:"trait"`
	Cost  uint64               `json:"cost"`
}

// CollaborationResponse represents the outcome of a collaborative customization
type CollaborationResponse struct {
	collab.Result
	Asset *AssetResponse `json:"asset,omitempty"`
}

// UserStatsResponse represents the statistics of an account
type UserStatsResponse struct {
	Account               string `json:"account"`
	AssetsOwned           uint64 `json:"assets_owned"`
	CustomizationsApplied uint64 `json:"customizations_applied"`
	TraitsCreated         uint64 `json:"traits_created"`
	Collaborations        uint64 `json:"collaborations"`
	CollaborationEarnings uint64 `json:"collaboration_earnings"`
	Balance               uint64 `json:"balance"`
}

// BalanceResponse represents an account balance
type BalanceResponse struct {
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
}

// EventResponse represents an outbox event
type EventResponse struct {
	ID        string           `json:"id"`
	Type      domain.EventType `json:"type"`
	AssetID   uint64           `json:"asset_id"`
	Actor     string           `json:"actor"`
	Timestamp int64            `json:"timestamp"`
	Payload   json.RawMessage  `json:"payload,omitempty"`
	Digest    string           `json:"digest"`
	Published bool             `json:"published"`
}

// ListResponse represents a page of items
type ListResponse[T any] struct {
	Items  []T    `json:"items"`
	Total  uint64 `json:"total"`
	Offset uint64 `json:"offset"`
}

// ToAssetResponse maps an asset row
func ToAssetResponse(a *schema.Asset) AssetResponse {
	return AssetResponse{
		ID:                    a.ID,
		Owner:                 a.Owner,
		BaseTemplate:          a.BaseTemplate,
		TraitCount:            a.TraitCount,
		RarityScore:           a.RarityScore,
		CustomizationLocked:   a.CustomizationLocked,
		CreationTimestamp:     a.CreationTimestamp,
		LastModifiedTimestamp: a.LastModifiedTimestamp,
	}
}

// ToAppliedTraitResponse maps a ledger row
func ToAppliedTraitResponse(t *schema.AppliedTrait) AppliedTraitResponse {
	return AppliedTraitResponse{
		SlotIndex:            t.SlotIndex,
		TraitType:            t.TraitType,
		TraitValue:           t.TraitValue,
		RarityTier:           t.RarityTier,
		AppliedBy:            t.AppliedBy,
		ApplicationTimestamp: t.ApplicationTimestamp,
	}
}

// ToAssetTraitsResponse maps the ledger of an asset
func ToAssetTraitsResponse(assetID domain.AssetID, score uint64, traits []schema.AppliedTrait) AssetTraitsResponse {
	resp := AssetTraitsResponse{
		AssetID:     uint64(assetID),
		RarityScore: score,
		Traits:      make([]AppliedTraitResponse, 0, len(traits)),
	}
	for i := range traits {
		resp.Traits = append(resp.Traits, ToAppliedTraitResponse(&traits[i]))
	}
	return resp
}

// ToTraitDefinitionResponse maps a catalog row
func ToTraitDefinitionResponse(d *schema.TraitDefinition) TraitDefinitionResponse {
	return TraitDefinitionResponse{
		Name:                d.Name,
		BaseRarity:          d.BaseRarity,
		CustomizationCost:   d.CustomizationCost,
		MaxApplications:     d.MaxApplications,
		CurrentApplications: d.CurrentApplications,
		Creator:             d.Creator,
		CreationTimestamp:   d.CreationTimestamp,
	}
}

// ToCustomizationResponse maps the outcome of a trait application
func ToCustomizationResponse(c *canvas.Customization) CustomizationResponse {
	return CustomizationResponse{
		Asset: ToAssetResponse(c.Asset),
		Trait: ToAppliedTraitResponse(c.Trait),
		Cost:  uint64(c.Cost),
	}
}

// ToCollaborationResponse maps the outcome of a collaboration
func ToCollaborationResponse(r *collab.Result) CollaborationResponse {
	resp := CollaborationResponse{Result: *r}
	if r.Asset != nil {
		asset := ToAssetResponse(r.Asset)
		resp.Asset = &asset
	}
	return resp
}

// ToUserStatsResponse maps the statistics of an account together with its balance
func ToUserStatsResponse(s *schema.UserStats, balance domain.Amount) UserStatsResponse {
	return UserStatsResponse{
		Account:               s.Account,
		AssetsOwned:           s.AssetsOwned,
		CustomizationsApplied: s.CustomizationsApplied,
		TraitsCreated:         s.TraitsCreated,
		Collaborations:        s.Collaborations,
		CollaborationEarnings: s.CollaborationEarnings,
		Balance:               uint64(balance),
	}
}

// ToEventResponse maps an outbox row
func ToEventResponse(e *schema.CustomizationEvent) EventResponse {
	var payload json.RawMessage
	if len(e.Payload) > 0 {
		payload = json.RawMessage(e.Payload)
	}
	return EventResponse{
		ID:        e.ID,
		Type:      e.Type,
		AssetID:   e.AssetID,
		Actor:     e.Actor,
		Timestamp: e.Timestamp,
		Payload:   payload,
		Digest:    e.Digest,
		Published: e.PublishedAt != nil,
	}
}
