package canvas

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-canvas/internal/adapter"
	"github.com/feral-file/ff-canvas/internal/catalog"
	"github.com/feral-file/ff-canvas/internal/collab"
	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/fee"
	"github.com/feral-file/ff-canvas/internal/ledger"
	"github.com/feral-file/ff-canvas/internal/logger"
	"github.com/feral-file/ff-canvas/internal/metrics"
	"github.com/feral-file/ff-canvas/internal/rarity"
	"github.com/feral-file/ff-canvas/internal/registry"
	"github.com/feral-file/ff-canvas/internal/store"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// Operation names used for logs and metrics
const (
	OperationDefineTrait   = "define_trait"
	OperationMint          = "mint"
	OperationCustomize     = "apply_customization"
	OperationCollaborate   = "collaborate"
	OperationLock          = "lock_customization"
	OperationCreditAccount = "credit_account"
)

// Service defines the top-level canvas operations. Every mutating operation runs
// in one database transaction and either fully commits or leaves no trace.
//
//go:generate mockgen -source=service.go -destination=../mocks/service.go -package=mocks -mock_names=Service=MockService
type Service interface {
	// DefineTrait registers a trait type in the catalog
	DefineTrait(ctx context.Context, call domain.Call, name string, baseRarity uint32, cost domain.Amount) (*schema.TraitDefinition, error)
	// Mint charges the mint fee and creates an asset owned by the caller
	Mint(ctx context.Context, call domain.Call, template string) (*schema.Asset, error)
	// ApplyCustomization charges the simple cost and appends one trait to the asset
	ApplyCustomization(ctx context.Context, call domain.Call, assetID domain.AssetID, traitType, traitValue string) (*Customization, error)
	// Collaborate runs a collaborative customization
	Collaborate(ctx context.Context, call domain.Call, in collab.Input) (*collab.Result, error)
	// LockCustomization blocks any further trait application. Locking twice is a no-op.
	LockCustomization(ctx context.Context, call domain.Call, assetID domain.AssetID) (*schema.Asset, error)
	// CreditAccount tops up an account of the store-backed bank
	CreditAccount(ctx context.Context, call domain.Call, account domain.Account, amount domain.Amount) (domain.Amount, error)

	GetAsset(ctx context.Context, id domain.AssetID) (*schema.Asset, error)
	GetTraits(ctx context.Context, id domain.AssetID) ([]schema.AppliedTrait, error)
	// GetScore recomputes the ledger score of an asset
	GetScore(ctx context.Context, id domain.AssetID) (uint64, error)
	GetTrait(ctx context.Context, name string) (*schema.TraitDefinition, error)
	GetAssetsByOwner(ctx context.Context, owner domain.Account, limit int, offset uint64) ([]schema.Asset, uint64, error)
	// GetUserStats never fails for an unknown account, it returns zeroed stats
	GetUserStats(ctx context.Context, account domain.Account) (*schema.UserStats, error)
	GetBalance(ctx context.Context, account domain.Account) (domain.Amount, error)
	GetCounters(ctx context.Context) (map[string]uint64, error)
	ListEvents(ctx context.Context, filter store.EventQueryFilter) ([]schema.CustomizationEvent, uint64, error)
}

// Customization is the outcome of a single trait application
type Customization struct {
	Asset *schema.Asset        `json:"asset"`
	Trait *schema.AppliedTrait `json:"trait"`
	Cost  domain.Amount        `json:"cost"`
}

// Config holds the policies of the service
type Config struct {
	Fees   fee.Policy
	Collab collab.Config
	// BankFactory binds the value-transfer collaborator to a transaction, defaults to fee.NewStoreBank
	BankFactory fee.BankFactory
}

// DefaultConfig returns the reference policies over the store-backed bank
func DefaultConfig() Config {
	return Config{
		Fees:        fee.DefaultPolicy(),
		Collab:      collab.DefaultConfig(),
		BankFactory: fee.NewStoreBank,
	}
}

type service struct {
	cfg     Config
	store   store.Store
	clock   adapter.Clock
	json    adapter.JSON
	jcs     adapter.JCS
	metrics *metrics.Metrics
}

// NewService creates the canvas service
func NewService(cfg Config, s store.Store, clock adapter.Clock, json adapter.JSON, jcs adapter.JCS, m *metrics.Metrics) Service {
	if cfg.BankFactory == nil {
		cfg.BankFactory = fee.NewStoreBank
	}
	return &service{
		cfg:     cfg,
		store:   s,
		clock:   clock,
		json:    json,
		jcs:     jcs,
		metrics: m,
	}
}

// components are the engines bound to one transaction
type components struct {
	store    store.Store
	catalog  catalog.Catalog
	registry registry.Registry
	ledger   ledger.Ledger
	fees     *fee.Engine
	scores   *rarity.Engine
	collab   *collab.Engine
}

func (s *service) bind(tx store.Store) *components {
	c := &components{
		store:    tx,
		catalog:  catalog.New(tx),
		registry: registry.New(tx),
		ledger:   ledger.New(tx),
	}
	c.fees = fee.NewEngine(s.cfg.Fees, tx, c.catalog, s.cfg.BankFactory(tx))
	c.scores = rarity.NewEngine(c.ledger, s.cfg.Collab.Boost, s.cfg.Collab.Thresholds.BoostPercent)
	c.collab = collab.NewEngine(s.cfg.Collab, tx, c.registry, c.ledger, c.catalog, c.fees)
	return c
}

// run executes fn in a transaction and records the outcome
func (s *service) run(ctx context.Context, operation string, call domain.Call, fn func(ctx context.Context, c *components) error) error {
	start := s.clock.Now()
	ctx = logger.WithOperation(ctx, logger.OperationInfo{Name: operation, Caller: call.Caller.String()})

	if !call.Caller.Valid() {
		err := fmt.Errorf("missing caller: %w", domain.ErrUnauthorized)
		s.metrics.RecordOperation(operation, err, s.clock.Since(start).Seconds())
		return err
	}

	err := s.store.WithTx(ctx, func(tx store.Store) error {
		return fn(ctx, s.bind(tx))
	})
	s.metrics.RecordOperation(operation, err, s.clock.Since(start).Seconds())

	if err != nil {
		if isRejection(err) {
			logger.WarnCtx(ctx, "Operation rejected", zap.Error(err))
		} else {
			logger.ErrorCtx(ctx, fmt.Errorf("operation failed: %w", err))
		}
	}
	return err
}

// isRejection reports whether err is a precondition failure rather than a fault
func isRejection(err error) bool {
	for _, kind := range []error{
		domain.ErrUnauthorized,
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInsufficientPayment,
		domain.ErrInvalidTrait,
		domain.ErrCustomizationLocked,
		domain.ErrMaxTraitsExceeded,
		domain.ErrCapacityExceeded,
		domain.ErrConcurrentModification,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// DefineTrait registers a trait type in the catalog
func (s *service) DefineTrait(ctx context.Context, call domain.Call, name string, baseRarity uint32, cost domain.Amount) (*schema.TraitDefinition, error) {
	var def *schema.TraitDefinition
	err := s.run(ctx, OperationDefineTrait, call, func(ctx context.Context, c *components) error {
		var err error
		def, err = c.catalog.Define(ctx, call, name, baseRarity, cost)
		if err != nil {
			return err
		}

		if err := c.store.IncrementUserStats(ctx, call.Caller.String(), store.UserStatsDelta{TraitsCreated: 1}); err != nil {
			return err
		}

		_, err = s.recordEvent(ctx, c.store, call, domain.EventTypeTraitDefined, 0, TraitDefinedPayload{
			Name:              def.Name,
			BaseRarity:        def.BaseRarity,
			CustomizationCost: def.CustomizationCost,
			MaxApplications:   def.MaxApplications,
			Creator:           def.Creator,
			Timestamp:         call.Now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trait defined", zap.String("trait", def.Name), zap.Uint32("base_rarity", def.BaseRarity))
	return def, nil
}

// Mint charges the mint fee and creates an asset owned by the caller
func (s *service) Mint(ctx context.Context, call domain.Call, template string) (*schema.Asset, error) {
	var asset *schema.Asset
	var cost domain.Amount
	err := s.run(ctx, OperationMint, call, func(ctx context.Context, c *components) error {
		if !domain.ValidTemplate(template) {
			return fmt.Errorf("template must be 1..%d characters: %w", domain.MAX_TEMPLATE_LENGTH, domain.ErrInvalidTrait)
		}

		// Charge before allocating so a rejected mint never consumes an id
		cost = c.fees.MintCost()
		if err := c.fees.Charge(ctx, call.Caller, cost); err != nil {
			return err
		}

		var err error
		asset, err = c.registry.Create(ctx, call, call.Caller, template)
		if err != nil {
			return err
		}

		if err := c.store.IncrementUserStats(ctx, asset.Owner, store.UserStatsDelta{AssetsOwned: 1}); err != nil {
			return err
		}

		_, err = s.recordEvent(ctx, c.store, call, domain.EventTypeAssetMinted, asset.ID, AssetMintedPayload{
			AssetID:      asset.ID,
			Owner:        asset.Owner,
			BaseTemplate: asset.BaseTemplate,
			RarityScore:  asset.RarityScore,
			Fee:          uint64(cost),
			Timestamp:    call.Now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordFee(OperationMint, cost)
	logger.InfoCtx(ctx, "Asset minted", zap.Uint64("asset_id", asset.ID), zap.String("template", template))
	return asset, nil
}

// ApplyCustomization charges the simple cost and appends one trait to the asset
func (s *service) ApplyCustomization(ctx context.Context, call domain.Call, assetID domain.AssetID, traitType, traitValue string) (*Customization, error) {
	var result *Customization
	err := s.run(ctx, OperationCustomize, call, func(ctx context.Context, c *components) error {
		asset, err := c.registry.Get(ctx, assetID)
		if err != nil {
			return err
		}
		if domain.Account(asset.Owner) != call.Caller {
			return fmt.Errorf("%s does not own asset %d: %w", call.Caller, asset.ID, domain.ErrUnauthorized)
		}
		if asset.CustomizationLocked {
			return fmt.Errorf("asset %d: %w", asset.ID, domain.ErrCustomizationLocked)
		}
		if asset.TraitCount >= domain.MAX_TRAITS_PER_ASSET {
			return fmt.Errorf("asset %d has %d traits: %w", asset.ID, asset.TraitCount, domain.ErrMaxTraitsExceeded)
		}

		def, err := c.catalog.Lookup(ctx, traitType)
		if err != nil {
			return err
		}
		if def == nil {
			return fmt.Errorf("trait %q: %w", traitType, domain.ErrNotFound)
		}
		if def.RemainingApplications() == 0 {
			return fmt.Errorf("trait %q reached %d applications: %w", traitType, def.MaxApplications, domain.ErrCapacityExceeded)
		}
		if !domain.ValidTraitValue(traitValue) {
			return fmt.Errorf("trait value must be at most %d characters: %w", domain.MAX_TRAIT_VALUE_LENGTH, domain.ErrInvalidTrait)
		}

		cost, err := c.fees.SimpleCost(ctx, traitType)
		if err != nil {
			return err
		}
		if err := c.fees.Charge(ctx, call.Caller, cost); err != nil {
			return err
		}

		var slot domain.SlotIndex
		updated, err := c.registry.Update(ctx, assetID, func(a *schema.Asset) error {
			var err error
			slot, err = c.ledger.Append(ctx, call, a, def.Name, traitValue, def.BaseRarity)
			if err != nil {
				return err
			}
			a.TraitCount++

			if err := c.catalog.RecordApplication(ctx, def.Name); err != nil {
				return err
			}

			score, err := c.scores.Boosted(ctx, a, a.RarityScore, uint64(def.BaseRarity), false)
			if err != nil {
				return err
			}
			a.RarityScore = score
			a.LastModifiedTimestamp = call.Now
			return nil
		})
		if err != nil {
			return err
		}

		if _, err := c.store.IncrementCounter(ctx, domain.COUNTER_TOTAL_CUSTOMIZATIONS, 1); err != nil {
			return err
		}
		if err := c.store.IncrementUserStats(ctx, call.Caller.String(), store.UserStatsDelta{CustomizationsApplied: 1}); err != nil {
			return err
		}

		trait := &schema.AppliedTrait{
			AssetID:              updated.ID,
			SlotIndex:            uint32(slot),
			TraitType:            def.Name,
			TraitValue:           traitValue,
			RarityTier:           def.BaseRarity,
			AppliedBy:            call.Caller.String(),
			ApplicationTimestamp: call.Now,
		}
		result = &Customization{Asset: updated, Trait: trait, Cost: cost}

		_, err = s.recordEvent(ctx, c.store, call, domain.EventTypeTraitApplied, updated.ID, TraitAppliedPayload{
			AssetID:     updated.ID,
			SlotIndex:   trait.SlotIndex,
			TraitType:   trait.TraitType,
			TraitValue:  trait.TraitValue,
			RarityTier:  trait.RarityTier,
			RarityScore: updated.RarityScore,
			Cost:        uint64(cost),
			Timestamp:   call.Now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordFee(OperationCustomize, result.Cost)
	logger.InfoCtx(ctx, "Customization applied",
		zap.Uint64("asset_id", result.Asset.ID),
		zap.String("trait", traitType),
		zap.Uint32("slot", result.Trait.SlotIndex),
		zap.Uint64("rarity_score", result.Asset.RarityScore))
	return result, nil
}

// Collaborate runs a collaborative customization
func (s *service) Collaborate(ctx context.Context, call domain.Call, in collab.Input) (*collab.Result, error) {
	var result *collab.Result
	err := s.run(ctx, OperationCollaborate, call, func(ctx context.Context, c *components) error {
		var payload *collab.Payload
		var err error
		result, payload, err = c.collab.Run(ctx, call, in)
		if err != nil {
			return err
		}

		if err := c.store.IncrementUserStats(ctx, result.Asset.Owner, store.UserStatsDelta{
			Collaborations:        1,
			CollaborationEarnings: result.Financials.ParticipantReward,
		}); err != nil {
			return err
		}

		_, err = s.recordEvent(ctx, c.store, call, domain.EventTypeCollaborationCompleted, result.Asset.ID, payload)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordFee(OperationCollaborate, domain.Amount(result.Financials.TotalCost))
	logger.InfoCtx(ctx, "Collaboration completed",
		zap.Uint64("asset_id", result.Asset.ID),
		zap.Strings("traits", in.TraitCombination),
		zap.Uint64("rarity_score", result.FinalRarityScore),
		zap.String("signature", result.CollaborationSignature))
	return result, nil
}

// LockCustomization blocks any further trait application
func (s *service) LockCustomization(ctx context.Context, call domain.Call, assetID domain.AssetID) (*schema.Asset, error) {
	var asset *schema.Asset
	err := s.run(ctx, OperationLock, call, func(ctx context.Context, c *components) error {
		current, err := c.registry.Get(ctx, assetID)
		if err != nil {
			return err
		}
		if domain.Account(current.Owner) != call.Caller {
			return fmt.Errorf("%s does not own asset %d: %w", call.Caller, current.ID, domain.ErrUnauthorized)
		}
		if current.CustomizationLocked {
			asset = current
			return nil
		}

		asset, err = c.registry.Update(ctx, assetID, func(a *schema.Asset) error {
			a.CustomizationLocked = true
			a.LastModifiedTimestamp = call.Now
			return nil
		})
		if err != nil {
			return err
		}

		_, err = s.recordEvent(ctx, c.store, call, domain.EventTypeAssetLocked, asset.ID, AssetLockedPayload{
			AssetID:   asset.ID,
			Owner:     asset.Owner,
			Timestamp: call.Now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Customization locked", zap.Uint64("asset_id", asset.ID))
	return asset, nil
}

// CreditAccount tops up an account of the store-backed bank
func (s *service) CreditAccount(ctx context.Context, call domain.Call, account domain.Account, amount domain.Amount) (domain.Amount, error) {
	var balance domain.Amount
	err := s.run(ctx, OperationCreditAccount, call, func(ctx context.Context, c *components) error {
		if !account.Valid() {
			return fmt.Errorf("invalid account %q: %w", account, domain.ErrNotFound)
		}
		if !domain.ValidAmount(amount) {
			return fmt.Errorf("credit %d above %d: %w", amount, uint64(domain.MAX_AMOUNT), domain.ErrInvalidTrait)
		}
		if err := c.store.CreditAccount(ctx, account.String(), uint64(amount)); err != nil {
			return err
		}
		current, err := c.store.GetAccountBalance(ctx, account.String())
		if err != nil {
			return err
		}
		balance = domain.Amount(current)
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.InfoCtx(ctx, "Account credited", zap.String("account", account.String()), zap.Uint64("amount", uint64(amount)))
	return balance, nil
}

// GetAsset retrieves an asset
func (s *service) GetAsset(ctx context.Context, id domain.AssetID) (*schema.Asset, error) {
	return registry.New(s.store).Get(ctx, id)
}

// GetTraits retrieves the applied traits of an asset ordered by slot
func (s *service) GetTraits(ctx context.Context, id domain.AssetID) ([]schema.AppliedTrait, error) {
	if _, err := s.GetAsset(ctx, id); err != nil {
		return nil, err
	}
	return ledger.New(s.store).TraitsOf(ctx, id)
}

// GetScore recomputes the ledger score of an asset
func (s *service) GetScore(ctx context.Context, id domain.AssetID) (uint64, error) {
	traits, err := s.GetTraits(ctx, id)
	if err != nil {
		return 0, err
	}
	return rarity.Score(traits), nil
}

// GetTrait retrieves a trait definition
func (s *service) GetTrait(ctx context.Context, name string) (*schema.TraitDefinition, error) {
	def, err := catalog.New(s.store).Lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, fmt.Errorf("trait %q: %w", name, domain.ErrNotFound)
	}
	return def, nil
}

// GetAssetsByOwner retrieves the assets of an account
func (s *service) GetAssetsByOwner(ctx context.Context, owner domain.Account, limit int, offset uint64) ([]schema.Asset, uint64, error) {
	return s.store.GetAssetsByOwner(ctx, owner.String(), limit, offset)
}

// GetUserStats retrieves the statistics of an account
func (s *service) GetUserStats(ctx context.Context, account domain.Account) (*schema.UserStats, error) {
	stats, err := s.store.GetUserStats(ctx, account.String())
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return &schema.UserStats{Account: account.String()}, nil
	}
	return stats, nil
}

// GetBalance retrieves the balance of an account from the configured bank
func (s *service) GetBalance(ctx context.Context, account domain.Account) (domain.Amount, error) {
	return s.cfg.BankFactory(s.store).Balance(ctx, account)
}

// GetCounters retrieves the global counters
func (s *service) GetCounters(ctx context.Context) (map[string]uint64, error) {
	return s.store.GetCounters(ctx)
}

// ListEvents retrieves outbox events
func (s *service) ListEvents(ctx context.Context, filter store.EventQueryFilter) ([]schema.CustomizationEvent, uint64, error) {
	return s.store.GetCustomizationEvents(ctx, filter)
}
