package schema

import "time"

// Asset represents the assets table - the canonical record of every customizable canvas
type Asset struct {
	// ID is the sequential asset identifier allocated from the next_asset_id counter
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// Owner is the account that may customize the asset
	Owner string `gorm:"column:owner;not null;type:text;index:idx_assets_owner"`
	// BaseTemplate is the template the asset was minted from
	BaseTemplate string `gorm:"column:base_template;not null;type:text"`
	// TraitCount is the number of applied traits (0..12), it never decreases
	TraitCount uint32 `gorm:"column:trait_count;not null;default:0"`
	// RarityScore is the derived rarity score as of the last mutation
	RarityScore uint64 `gorm:"column:rarity_score;not null;default:100"`
	// CustomizationLocked blocks any further trait application when set
	CustomizationLocked bool `gorm:"column:customization_locked;not null;default:false"`
	// CreationTimestamp is the logical clock reading at mint time
	CreationTimestamp int64 `gorm:"column:creation_timestamp;not null"`
	// LastModifiedTimestamp is the logical clock reading of the last mutation
	LastModifiedTimestamp int64 `gorm:"column:last_modified_timestamp;not null"`
	// CreatedAt is the wall-clock time the row was inserted
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	// Associations
	AppliedTraits []AppliedTrait `gorm:"foreignKey:AssetID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}
