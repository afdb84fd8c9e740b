package schema

import "time"

// UserStats represents the user_stats table - per-account counters written as a side effect of core operations
type UserStats struct {
	Account               string    `gorm:"column:account;primaryKey;type:text"`
	AssetsOwned           uint64    `gorm:"column:assets_owned;not null;default:0"`
	CustomizationsApplied uint64    `gorm:"column:customizations_applied;not null;default:0"`
	TraitsCreated         uint64    `gorm:"column:traits_created;not null;default:0"`
	Collaborations        uint64    `gorm:"column:collaborations;not null;default:0"`
	CollaborationEarnings uint64    `gorm:"column:collaboration_earnings;not null;default:0"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the UserStats model
func (UserStats) TableName() string {
	return "user_stats"
}
