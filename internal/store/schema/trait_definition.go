package schema

import "time"

// TraitDefinition represents the trait_definitions table - the catalog of reusable trait types
type TraitDefinition struct {
	// Name is the unique, case-sensitive trait type name
	Name string `gorm:"column:name;primaryKey;type:text"`
	// BaseRarity is the rarity contribution of the trait (0..100)
	BaseRarity uint32 `gorm:"column:base_rarity;not null"`
	// CustomizationCost is the per-application cost added to the fixed customization fee
	CustomizationCost uint64 `gorm:"column:customization_cost;not null;default:0"`
	// MaxApplications is the ceiling on how many times the trait may be applied
	MaxApplications uint64 `gorm:"column:max_applications;not null"`
	// CurrentApplications counts successful applications, it never decreases
	CurrentApplications uint64 `gorm:"column:current_applications;not null;default:0"`
	// Creator is the catalog author account
	Creator string `gorm:"column:creator;not null;type:text"`
	// CreationTimestamp is the logical clock reading at definition time
	CreationTimestamp int64 `gorm:"column:creation_timestamp;not null"`
	// CreatedAt is the wall-clock time the row was inserted
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the TraitDefinition model
func (TraitDefinition) TableName() string {
	return "trait_definitions"
}

// RemainingApplications returns how many more times the trait may be applied
func (t *TraitDefinition) RemainingApplications() uint64 {
	if t.CurrentApplications >= t.MaxApplications {
		return 0
	}
	return t.MaxApplications - t.CurrentApplications
}
