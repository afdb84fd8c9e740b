package schema

import "time"

// Counter stores the global scalar counters (next asset id, total customizations, contract balance)
type Counter struct {
	Name      string    `gorm:"column:name;primaryKey;type:text"`
	Value     uint64    `gorm:"column:value;not null;default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Counter) TableName() string {
	return "counters"
}
