package fee

import (
	"context"
	"errors"
	"fmt"

	"github.com/feral-file/ff-canvas/internal/catalog"
	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store"
)

// Policy holds the pricing configuration
type Policy struct {
	// MintFee is charged for every new asset
	MintFee domain.Amount
	// CustomizationFee is the fixed part of a single customization
	CustomizationFee domain.Amount
	// DemandMultiplierPercent scales the collaboration base fee
	DemandMultiplierPercent uint64
	// FeeSink is the account that receives every fee
	FeeSink domain.Account
}

// DefaultPolicy returns the reference pricing
func DefaultPolicy() Policy {
	return Policy{
		MintFee:                 1_000_000,
		CustomizationFee:        500_000,
		DemandMultiplierPercent: 134,
		FeeSink:                 "canvas",
	}
}

// CollaborationBaseFee is twice the customization fee
func (p Policy) CollaborationBaseFee() domain.Amount {
	return 2 * p.CustomizationFee
}

// Engine prices operations and settles them through a Bank
type Engine struct {
	policy  Policy
	store   store.Store
	catalog catalog.Catalog
	bank    Bank
}

// NewEngine creates a fee engine bound to the store of the current transaction
func NewEngine(policy Policy, s store.Store, c catalog.Catalog, bank Bank) *Engine {
	return &Engine{
		policy:  policy,
		store:   s,
		catalog: c,
		bank:    bank,
	}
}

// Policy returns the pricing configuration
func (e *Engine) Policy() Policy {
	return e.policy
}

// MintCost returns the price of a new asset
func (e *Engine) MintCost() domain.Amount {
	return e.policy.MintFee
}

// SimpleCost returns the fixed customization fee plus the trait's own cost
func (e *Engine) SimpleCost(ctx context.Context, traitType string) (domain.Amount, error) {
	def, err := e.catalog.Lookup(ctx, traitType)
	if err != nil {
		return 0, err
	}
	if def == nil {
		return 0, fmt.Errorf("trait %q: %w", traitType, domain.ErrNotFound)
	}
	return e.policy.CustomizationFee + domain.Amount(def.CustomizationCost), nil
}

// DynamicCost returns the price of a collaborative customization.
// The price does not depend on its arguments; they only shape reward metadata.
func (e *Engine) DynamicCost(traitTypes []string, voteWeight, stage uint64, boost bool) domain.Amount {
	return e.policy.CollaborationBaseFee() * domain.Amount(e.policy.DemandMultiplierPercent) / 100
}

// CanAfford checks the payer balance before any mutation
func (e *Engine) CanAfford(ctx context.Context, payer domain.Account, amount domain.Amount) (bool, error) {
	balance, err := e.bank.Balance(ctx, payer)
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

// Settle transfers amount from payer to beneficiary. Fees paid to the sink accrue to
// the contract_balance counter.
func (e *Engine) Settle(ctx context.Context, payer, beneficiary domain.Account, amount domain.Amount) error {
	if err := e.bank.Transfer(ctx, payer, beneficiary, amount); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return fmt.Errorf("%s cannot pay %d: %w", payer, amount, domain.ErrInsufficientPayment)
		}
		return fmt.Errorf("failed to settle: %w", err)
	}

	if beneficiary == e.policy.FeeSink && amount > 0 {
		if _, err := e.store.IncrementCounter(ctx, domain.COUNTER_CONTRACT_BALANCE, uint64(amount)); err != nil {
			return err
		}
	}

	return nil
}

// Charge checks affordability and settles amount from payer to the fee sink
func (e *Engine) Charge(ctx context.Context, payer domain.Account, amount domain.Amount) error {
	ok, err := e.CanAfford(ctx, payer, amount)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s cannot pay %d: %w", payer, amount, domain.ErrInsufficientPayment)
	}
	return e.Settle(ctx, payer, e.policy.FeeSink, amount)
}
