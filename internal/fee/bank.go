package fee

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store"
)

// Bank is the value-transfer collaborator
//
//go:generate mockgen -source=bank.go -destination=../mocks/bank.go -package=mocks -mock_names=Bank=MockBank
type Bank interface {
	// Balance returns the current balance of an account
	Balance(ctx context.Context, account domain.Account) (domain.Amount, error)

	// Transfer atomically debits from and credits to, failing with domain.ErrInsufficientFunds
	Transfer(ctx context.Context, from, to domain.Account, amount domain.Amount) error
}

// BankFactory binds a Bank to the store of the current transaction
type BankFactory func(s store.Store) Bank

// StoreBank keeps balances in the account_balances table so transfers commit or
// roll back with the rest of the operation
type StoreBank struct {
	store store.Store
}

// NewStoreBank creates a bank over the given store
func NewStoreBank(s store.Store) Bank {
	return &StoreBank{store: s}
}

// Balance returns the current balance of an account
func (b *StoreBank) Balance(ctx context.Context, account domain.Account) (domain.Amount, error) {
	balance, err := b.store.GetAccountBalance(ctx, account.String())
	if err != nil {
		return 0, err
	}
	return domain.Amount(balance), nil
}

// Transfer moves amount from one account to another
func (b *StoreBank) Transfer(ctx context.Context, from, to domain.Account, amount domain.Amount) error {
	if amount == 0 {
		return nil
	}

	ok, err := b.store.DebitAccount(ctx, from.String(), uint64(amount))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("debit %d from %s: %w", amount, from, domain.ErrInsufficientFunds)
	}

	return b.store.CreditAccount(ctx, to.String(), uint64(amount))
}
