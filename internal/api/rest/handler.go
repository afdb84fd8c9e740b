package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-canvas/internal/adapter"
	"github.com/feral-file/ff-canvas/internal/api/middleware"
	"github.com/feral-file/ff-canvas/internal/api/shared/dto"
	"github.com/feral-file/ff-canvas/internal/canvas"
	"github.com/feral-file/ff-canvas/internal/domain"
)

// OPERATOR_CALLER is the caller recorded for API key authenticated operations
const OPERATOR_CALLER = "operator"

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// DefineTrait registers a trait type
	// POST /api/v1/traits
	DefineTrait(c *gin.Context)

	// GetTrait retrieves a trait type by name
	// GET /api/v1/traits/:name
	GetTrait(c *gin.Context)

	// Mint creates an asset owned by the caller
	// POST /api/v1/assets
	Mint(c *gin.Context)

	// ListAssets retrieves the assets of an owner
	// GET /api/v1/assets?owner=<account>&limit=<limit>&offset=<offset>
	ListAssets(c *gin.Context)

	// GetAsset retrieves a single asset
	// GET /api/v1/assets/:id
	GetAsset(c *gin.Context)

	// GetAssetTraits retrieves the applied traits of an asset and its ledger score
	// GET /api/v1/assets/:id/traits
	GetAssetTraits(c *gin.Context)

	// ApplyCustomization applies a single trait to an asset
	// POST /api/v1/assets/:id/customizations
	ApplyCustomization(c *gin.Context)

	// Collaborate runs a collaborative customization
	// POST /api/v1/assets/:id/collaborations
	Collaborate(c *gin.Context)

	// LockCustomization locks an asset against further customization
	// POST /api/v1/assets/:id/lock
	LockCustomization(c *gin.Context)

	// GetAccountStats retrieves the statistics and balance of an account
	// GET /api/v1/accounts/:account/stats
	GetAccountStats(c *gin.Context)

	// CreditAccount tops up an account (requires API key authentication)
	// POST /api/v1/accounts/:account/credit
	CreditAccount(c *gin.Context)

	// ListEvents retrieves customization events
	// GET /api/v1/events?asset_id=<id>&type=<type>&limit=<limit>&offset=<offset>
	ListEvents(c *gin.Context)

	// GetCounters retrieves the global counters
	// GET /api/v1/counters
	GetCounters(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service canvas.Service
	clock   adapter.Clock
}

// NewHandler creates a new REST API handler
func NewHandler(service canvas.Service, clock adapter.Clock) Handler {
	return &handler{
		service: service,
		clock:   clock,
	}
}

// call builds the caller identity and logical clock of a mutating request
func (h *handler) call(c *gin.Context) (domain.Call, bool) {
	caller := middleware.CallerFromContext(c)
	if caller == "" {
		respondUnauthorized(c, "Caller identity is required")
		return domain.Call{}, false
	}
	return domain.NewCall(caller, h.clock.Now().Unix()), true
}

// DefineTrait registers a trait type
func (h *handler) DefineTrait(c *gin.Context) {
	call, ok := h.call(c)
	if !ok {
		return
	}

	var req dto.DefineTraitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	def, err := h.service.DefineTrait(c.Request.Context(), call, req.Name, req.BaseRarity, domain.Amount(req.CustomizationCost))
	if err != nil {
		respondOperationError(c, err, zap.String("trait", req.Name))
		return
	}

	c.JSON(http.StatusCreated, dto.ToTraitDefinitionResponse(def))
}

// GetTrait retrieves a trait type by name
func (h *handler) GetTrait(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		respondBadRequest(c, "Trait name is required")
		return
	}

	def, err := h.service.GetTrait(c.Request.Context(), name)
	if err != nil {
		respondOperationError(c, err, zap.String("trait", name))
		return
	}

	c.JSON(http.StatusOK, dto.ToTraitDefinitionResponse(def))
}

// Mint creates an asset owned by the caller
func (h *handler) Mint(c *gin.Context) {
	call, ok := h.call(c)
	if !ok {
		return
	}

	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	asset, err := h.service.Mint(c.Request.Context(), call, req.BaseTemplate)
	if err != nil {
		respondOperationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// ListAssets retrieves the assets of an owner
func (h *handler) ListAssets(c *gin.Context) {
	params, err := ParseListAssetsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	assets, total, err := h.service.GetAssetsByOwner(c.Request.Context(), domain.NormalizeAccount(params.Owner), params.Limit, params.Offset)
	if err != nil {
		respondOperationError(c, err)
		return
	}

	resp := dto.ListResponse[dto.AssetResponse]{
		Items:  make([]dto.AssetResponse, 0, len(assets)),
		Total:  total,
		Offset: params.Offset,
	}
	for i := range assets {
		resp.Items = append(resp.Items, dto.ToAssetResponse(&assets[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// GetAsset retrieves a single asset
func (h *handler) GetAsset(c *gin.Context) {
	id, err := parseAssetID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	asset, err := h.service.GetAsset(c.Request.Context(), id)
	if err != nil {
		respondOperationError(c, err, zap.Uint64("asset_id", uint64(id)))
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// GetAssetTraits retrieves the applied traits of an asset and its ledger score
func (h *handler) GetAssetTraits(c *gin.Context) {
	id, err := parseAssetID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	traits, err := h.service.GetTraits(ctx, id)
	if err != nil {
		respondOperationError(c, err, zap.Uint64("asset_id", uint64(id)))
		return
	}
	score, err := h.service.GetScore(ctx, id)
	if err != nil {
		respondOperationError(c, err, zap.Uint64("asset_id", uint64(id)))
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetTraitsResponse(id, score, traits))
}

// ApplyCustomization applies a single trait to an asset
func (h *handler) ApplyCustomization(c *gin.Context) {
	call, ok := h.call(c)
	if !ok {
		return
	}

	id, err := parseAssetID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req dto.ApplyCustomizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.service.ApplyCustomization(c.Request.Context(), call, id, req.TraitType, req.TraitValue)
	if err != nil {
		respondOperationError(c, err, zap.Uint64("asset_id", uint64(id)))
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomizationResponse(result))
}

// Collaborate runs a collaborative customization
func (h *handler) Collaborate(c *gin.Context) {
	call, ok := h.call(c)
	if !ok {
		return
	}

	id, err := parseAssetID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req dto.CollaborateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.service.Collaborate(c.Request.Context(), call, req.Input(id))
	if err != nil {
		respondOperationError(c, err, zap.Uint64("asset_id", uint64(id)))
		return
	}

	c.JSON(http.StatusOK, dto.ToCollaborationResponse(result))
}

// LockCustomization locks an asset against further customization
func (h *handler) LockCustomization(c *gin.Context) {
	call, ok := h.call(c)
	if !ok {
		return
	}

	id, err := parseAssetID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	asset, err := h.service.LockCustomization(c.Request.Context(), call, id)
	if err != nil {
		respondOperationError(c, err, zap.Uint64("asset_id", uint64(id)))
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// GetAccountStats retrieves the statistics and balance of an account
func (h *handler) GetAccountStats(c *gin.Context) {
	account := domain.NormalizeAccount(c.Param("account"))
	if !account.Valid() {
		respondBadRequest(c, "Invalid account")
		return
	}

	ctx := c.Request.Context()
	stats, err := h.service.GetUserStats(ctx, account)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	balance, err := h.service.GetBalance(ctx, account)
	if err != nil {
		respondOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserStatsResponse(stats, balance))
}

// CreditAccount tops up an account
func (h *handler) CreditAccount(c *gin.Context) {
	account := domain.NormalizeAccount(c.Param("account"))

	var req dto.CreditAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	call := domain.NewCall(OPERATOR_CALLER, h.clock.Now().Unix())
	balance, err := h.service.CreditAccount(c.Request.Context(), call, account, domain.Amount(req.Amount))
	if err != nil {
		respondOperationError(c, err, zap.String("account", account.String()))
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Account: account.String(), Balance: uint64(balance)})
}

// ListEvents retrieves customization events
func (h *handler) ListEvents(c *gin.Context) {
	params, err := ParseListEventsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	events, total, err := h.service.ListEvents(c.Request.Context(), params.Filter())
	if err != nil {
		respondOperationError(c, err)
		return
	}

	resp := dto.ListResponse[dto.EventResponse]{
		Items:  make([]dto.EventResponse, 0, len(events)),
		Total:  total,
		Offset: params.Offset,
	}
	for i := range events {
		resp.Items = append(resp.Items, dto.ToEventResponse(&events[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// GetCounters retrieves the global counters
func (h *handler) GetCounters(c *gin.Context) {
	counters, err := h.service.GetCounters(c.Request.Context())
	if err != nil {
		respondOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, counters)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-canvas",
	})
}

