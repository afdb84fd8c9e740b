package domain

import "math"

const (
	// Asset constants
	MAX_TRAITS_PER_ASSET = 12
	BASE_RARITY_SCORE    = 100

	// Trait catalog constants
	MAX_BASE_RARITY         = 100
	DEFAULT_MAX_APPLICATION = 1000

	// Collaboration constants
	MAX_TRAIT_COMBINATION = 5

	// Field bounds
	MAX_ACCOUNT_LENGTH            = 128
	MAX_TEMPLATE_LENGTH           = 64
	MAX_TRAIT_NAME_LENGTH         = 32
	MAX_TRAIT_VALUE_LENGTH        = 64
	MAX_COLLABORATION_TYPE_LENGTH = 32

	// MAX_AMOUNT bounds balances, costs and credits so they fit BIGINT columns
	MAX_AMOUNT = math.MaxInt64

	// Counter names
	COUNTER_NEXT_ASSET_ID        = "next_asset_id"
	COUNTER_TOTAL_CUSTOMIZATIONS = "total_customizations"
	COUNTER_CONTRACT_BALANCE     = "contract_balance"
)

// Counters lists every global counter seeded at migration time
var Counters = []string{
	COUNTER_NEXT_ASSET_ID,
	COUNTER_TOTAL_CUSTOMIZATIONS,
	COUNTER_CONTRACT_BALANCE,
}
