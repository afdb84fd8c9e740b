package domain

import "errors"

var (
	// ErrUnauthorized is returned when the caller is not the asset owner
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when an asset or trait type does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a trait type name is already registered
	ErrAlreadyExists = errors.New("already exists")

	// ErrInsufficientPayment is returned when the payer cannot cover the required cost
	ErrInsufficientPayment = errors.New("insufficient payment")

	// ErrInvalidTrait is returned for out-of-range trait input and for failed
	// collaboration consensus or conflict gates
	ErrInvalidTrait = errors.New("invalid trait")

	// ErrCustomizationLocked is returned when the asset is locked against mutation
	ErrCustomizationLocked = errors.New("customization locked")

	// ErrMaxTraitsExceeded is returned when the asset has no free trait slot
	ErrMaxTraitsExceeded = errors.New("max traits exceeded")

	// ErrCapacityExceeded is returned when a trait type reached its application ceiling
	ErrCapacityExceeded = errors.New("trait capacity exceeded")

	// ErrInsufficientFunds is returned by value-transfer collaborators when the debit fails
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrConcurrentModification is returned when the asset changed between read and write
	ErrConcurrentModification = errors.New("concurrent modification")
)
