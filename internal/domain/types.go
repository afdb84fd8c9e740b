package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
)

// Account identifies a participant (asset owner, trait creator, fee payer or beneficiary)
type Account string

// Amount is a value in the smallest currency unit
type Amount uint64

// AssetID is the sequential identifier of a canvas asset
type AssetID uint64

// SlotIndex is the position of an applied trait on an asset, in [0, trait count)
type SlotIndex uint32

// Call carries the environment-injected values of a single top-level operation.
// Caller is the operation's initiator, Now is the logical clock reading taken once
// at the start of the operation.
type Call struct {
	Caller Account
	Now    int64
}

// NewCall builds a Call with a normalized caller
func NewCall(caller string, now int64) Call {
	return Call{Caller: NormalizeAccount(caller), Now: now}
}

// NormalizeAccount trims the account identifier and converts hex addresses
// to their EIP-55 checksum form so the same address always compares equal
func NormalizeAccount(s string) Account {
	s = strings.TrimSpace(s)
	if common.IsHexAddress(s) {
		return Account(common.HexToAddress(s).Hex())
	}
	return Account(s)
}

// String returns the string representation of the Account
func (a Account) String() string {
	return string(a)
}

// Valid checks if the account identifier is usable
func (a Account) Valid() bool {
	return a != "" && boundedString(string(a), MAX_ACCOUNT_LENGTH)
}

// ValidAmount checks that an amount fits the signed 64-bit storage columns
func ValidAmount(a Amount) bool {
	return uint64(a) <= MAX_AMOUNT
}

// boundedString reports whether s is valid UTF-8 of at most limit runes
func boundedString(s string, limit int) bool {
	return utf8.ValidString(s) && utf8.RuneCountInString(s) <= limit
}

// String returns the decimal representation of the AssetID
func (id AssetID) String() string {
	return fmt.Sprintf("%d", id)
}

// ValidTraitName checks the trait type name bounds
func ValidTraitName(name string) bool {
	return name != "" && boundedString(name, MAX_TRAIT_NAME_LENGTH)
}

// ValidTraitValue checks the free-form trait value bounds
func ValidTraitValue(value string) bool {
	return boundedString(value, MAX_TRAIT_VALUE_LENGTH)
}

// ValidTemplate checks the base template bounds
func ValidTemplate(template string) bool {
	return template != "" && boundedString(template, MAX_TEMPLATE_LENGTH)
}

// ValidCollaborationType checks the collaboration type tag bounds
func ValidCollaborationType(tag string) bool {
	return tag != "" && boundedString(tag, MAX_COLLABORATION_TYPE_LENGTH)
}

// EventType represents the type of an auditable customization event
type EventType string

const (
	EventTypeTraitDefined           EventType = "trait_defined"
	EventTypeAssetMinted            EventType = "asset_minted"
	EventTypeTraitApplied           EventType = "trait_applied"
	EventTypeAssetLocked            EventType = "asset_locked"
	EventTypeCollaborationCompleted EventType = "collaboration_completed"
)

// IsValidEventType checks if an event type is known
func IsValidEventType(t EventType) bool {
	switch t {
	case EventTypeTraitDefined,
		EventTypeAssetMinted,
		EventTypeTraitApplied,
		EventTypeAssetLocked,
		EventTypeCollaborationCompleted:
		return true
	}
	return false
}
