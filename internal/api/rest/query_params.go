package rest

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store"
)

const (
	MAX_PAGE_SIZE     = 100
	DEFAULT_PAGE_SIZE = 20
)

// ListAssetsQueryParams holds query parameters for GET /assets
type ListAssetsQueryParams struct {
	Owner  string `form:"owner"`
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ParseListAssetsQuery parses query parameters for GET /assets
func ParseListAssetsQuery(c *gin.Context) (*ListAssetsQueryParams, error) {
	var params ListAssetsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Owner == "" {
		return nil, errors.New("owner is required")
	}
	params.Limit = capLimit(params.Limit)

	return &params, nil
}

// ListEventsQueryParams holds query parameters for GET /events
type ListEventsQueryParams struct {
	AssetID *uint64  `form:"asset_id"`
	Types   []string `form:"type"`
	Limit   int      `form:"limit,default=20"`
	Offset  uint64   `form:"offset,default=0"`
}

// ParseListEventsQuery parses query parameters for GET /events
func ParseListEventsQuery(c *gin.Context) (*ListEventsQueryParams, error) {
	var params ListEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	for _, t := range params.Types {
		if !domain.IsValidEventType(domain.EventType(t)) {
			return nil, fmt.Errorf("unknown event type: %s", t)
		}
	}
	params.Limit = capLimit(params.Limit)

	return &params, nil
}

// Filter converts the query into a store filter
func (p *ListEventsQueryParams) Filter() store.EventQueryFilter {
	filter := store.EventQueryFilter{
		AssetID: p.AssetID,
		Limit:   p.Limit,
		Offset:  p.Offset,
	}
	for _, t := range p.Types {
		filter.Types = append(filter.Types, domain.EventType(t))
	}
	return filter
}

// parseAssetID parses the :id path parameter
func parseAssetID(c *gin.Context) (domain.AssetID, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid asset id: %s", raw)
	}
	return domain.AssetID(id), nil
}

func capLimit(limit int) int {
	if limit <= 0 {
		return DEFAULT_PAGE_SIZE
	}
	if limit > MAX_PAGE_SIZE {
		return MAX_PAGE_SIZE
	}
	return limit
}
