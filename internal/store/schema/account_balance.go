package schema

import (
	"time"
)

// AccountBalance represents the account_balances table - funds held by the store-backed bank
type AccountBalance struct {
	// Account is the account identifier
	Account string `gorm:"column:account;primaryKey;type:text"`
	// Balance is the spendable amount in the smallest currency unit
	Balance uint64 `gorm:"column:balance;not null;default:0"`
	// CreatedAt is the timestamp when this balance was created
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	// UpdatedAt is the timestamp when this balance was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the AccountBalance model
func (AccountBalance) TableName() string {
	return "account_balances"
}
