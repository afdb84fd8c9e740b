package schema

import "time"

// AppliedTrait represents the applied_traits table - the append-only trait ledger keyed by (asset, slot)
type AppliedTrait struct {
	// AssetID references the asset the trait is attached to
	AssetID uint64 `gorm:"column:asset_id;primaryKey;autoIncrement:false"`
	// SlotIndex is the contiguous position of the trait on the asset
	SlotIndex uint32 `gorm:"column:slot_index;primaryKey;autoIncrement:false"`
	// TraitType references the trait definition by name
	TraitType string `gorm:"column:trait_type;not null;type:text;index:idx_applied_traits_trait_type"`
	// TraitValue is the free-form value chosen by the applier
	TraitValue string `gorm:"column:trait_value;not null;type:text"`
	// RarityTier is the base rarity copied from the definition at application time
	RarityTier uint32 `gorm:"column:rarity_tier;not null"`
	// AppliedBy is the account that applied the trait
	AppliedBy string `gorm:"column:applied_by;not null;type:text"`
	// ApplicationTimestamp is the logical clock reading at application time
	ApplicationTimestamp int64 `gorm:"column:application_timestamp;not null"`
	// CreatedAt is the wall-clock time the row was inserted
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the AppliedTrait model
func (AppliedTrait) TableName() string {
	return "applied_traits"
}
