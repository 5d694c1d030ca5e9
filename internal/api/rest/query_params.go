package rest

import (
	"math"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eos420/indexer-api/internal/domain"
	"github.com/eos420/indexer-api/internal/logger"
)

const (
	MAX_PAGE_SIZE     = 100
	DEFAULT_PAGE_SIZE = 10
	// MAX_PAGE keeps the row offset within int for any page size
	MAX_PAGE = math.MaxInt / MAX_PAGE_SIZE
)

// PaginationQueryParams holds the paging parameters shared by every listing
type PaginationQueryParams struct {
	Size int `form:"size,default=10" json:"-"`
	Page int `form:"page,default=0" json:"-"`
}

// normalize caps the page size and page and clamps negative values
func (p *PaginationQueryParams) normalize() {
	if p.Size <= 0 {
		p.Size = DEFAULT_PAGE_SIZE
	}
	if p.Size > MAX_PAGE_SIZE {
		p.Size = MAX_PAGE_SIZE
	}
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Page > MAX_PAGE {
		p.Page = MAX_PAGE
	}
}

// Offset is the number of rows before the requested page
func (p PaginationQueryParams) Offset() int {
	return p.Size * p.Page
}

// Pages is the number of pages needed to hold total rows
func (p PaginationQueryParams) Pages(total int64) int64 {
	size := int64(p.Size)
	return (total + size - 1) / size
}

// StatusQueryParams holds query parameters for GET /status
type StatusQueryParams struct {
	ChainID  string   `form:"chain_id" json:"chain_id,omitempty"`
	AssetIDs []string `form:"asset_id" json:"asset_id,omitempty"`
	// Bracketed form of the same list: asset_id[]=a&asset_id[]=b
	AssetIDList []string `form:"asset_id[]" json:"-"`
}

// ParseStatusQuery parses query parameters for GET /status
func ParseStatusQuery(c *gin.Context) (*StatusQueryParams, error) {
	var params StatusQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, malformed(c, err)
	}

	params.AssetIDs = merge(params.AssetIDs, params.AssetIDList)

	if params.ChainID == "" {
		return nil, domain.ErrMissingChainID
	}

	return &params, nil
}

// ListTokensQueryParams holds query parameters for GET /token
type ListTokensQueryParams struct {
	PaginationQueryParams

	ChainID      string                `form:"chain_id" json:"chain_id,omitempty"`
	Protocols    []domain.ContractType `form:"protocol" json:"protocol,omitempty"`
	ProtocolList []domain.ContractType `form:"protocol[]" json:"-"`
}

// ParseListTokensQuery parses query parameters for GET /token
func ParseListTokensQuery(c *gin.Context) (*ListTokensQueryParams, error) {
	var params ListTokensQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, malformed(c, err)
	}

	params.normalize()
	params.Protocols = merge(params.Protocols, params.ProtocolList)

	if params.ChainID == "" {
		return nil, domain.ErrMissingChainID
	}

	return &params, nil
}

// ChainQueryParams holds the chain selector of single-item lookups
type ChainQueryParams struct {
	ChainID string `form:"chain_id" json:"chain_id,omitempty"`
}

// ParseChainQuery parses a mandatory chain_id
func ParseChainQuery(c *gin.Context) (*ChainQueryParams, error) {
	var params ChainQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, malformed(c, err)
	}

	if params.ChainID == "" {
		return nil, domain.ErrMissingChainID
	}

	return &params, nil
}

// ListTransactionsQueryParams holds query parameters for GET /transaction
type ListTransactionsQueryParams struct {
	PaginationQueryParams

	ChainID string `form:"chain_id" json:"chain_id,omitempty"`
	// Block is a block hash
	Block string `form:"block" json:"block,omitempty"`
}

// ParseListTransactionsQuery parses query parameters for GET /transaction
func ParseListTransactionsQuery(c *gin.Context) (*ListTransactionsQueryParams, error) {
	var params ListTransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, malformed(c, err)
	}

	params.normalize()

	if params.ChainID == "" {
		return nil, domain.ErrMissingChainID
	}

	return &params, nil
}

// ListExtrinsicsQueryParams holds query parameters for GET /extrinsic
type ListExtrinsicsQueryParams struct {
	PaginationQueryParams

	ChainID     string   `form:"chain_id" json:"chain_id,omitempty"`
	TxHash      string   `form:"tx_hash" json:"tx_hash,omitempty"`
	AssetIDs    []string `form:"asset_id" json:"asset_id,omitempty"`
	AssetIDList []string `form:"asset_id[]" json:"-"`
	// Addresses match either side of an operation
	Addresses   []string `form:"address" json:"address,omitempty"`
	AddressList []string `form:"address[]" json:"-"`
}

// ParseListExtrinsicsQuery parses query parameters for GET /extrinsic
func ParseListExtrinsicsQuery(c *gin.Context) (*ListExtrinsicsQueryParams, error) {
	var params ListExtrinsicsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, malformed(c, err)
	}

	params.normalize()
	params.AssetIDs = merge(params.AssetIDs, params.AssetIDList)
	params.Addresses = merge(params.Addresses, params.AddressList)

	if params.ChainID == "" {
		return nil, domain.ErrMissingChainID
	}

	return &params, nil
}

// ListAssetsQueryParams holds query parameters for GET /asset
type ListAssetsQueryParams struct {
	PaginationQueryParams

	ChainID     string   `form:"chain_id" json:"chain_id,omitempty"`
	Address     string   `form:"address" json:"address,omitempty"`
	AssetIDs    []string `form:"asset_id" json:"asset_id,omitempty"`
	AssetIDList []string `form:"asset_id[]" json:"-"`
}

// ParseListAssetsQuery parses query parameters for GET /asset.
// Either address or asset_id must be given; address wins when both are.
func ParseListAssetsQuery(c *gin.Context) (*ListAssetsQueryParams, error) {
	var params ListAssetsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, malformed(c, err)
	}

	params.normalize()
	params.AssetIDs = merge(params.AssetIDs, params.AssetIDList)

	if params.Address == "" && len(params.AssetIDs) == 0 {
		return nil, domain.ErrMissingAddress
	}

	return &params, nil
}

// GetAssetQueryParams holds query parameters for GET /asset/:asset
type GetAssetQueryParams struct {
	ChainID string `form:"chain_id"`
	Address string `form:"address"`
}

// ParseGetAssetQuery parses query parameters for GET /asset/:asset
func ParseGetAssetQuery(c *gin.Context) (*GetAssetQueryParams, error) {
	var params GetAssetQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, malformed(c, err)
	}

	if params.ChainID == "" {
		return nil, domain.ErrMissingChainID
	}
	if params.Address == "" {
		return nil, domain.ErrMissingAddress
	}

	return &params, nil
}

// malformed logs a binding failure and reports it as a malformed request
func malformed(c *gin.Context, err error) error {
	logger.DebugCtx(c.Request.Context(), "Failed to bind request", zap.Error(err))
	return domain.ErrMalformedRequest
}

// merge joins the plain and bracketed forms of a list parameter
func merge[T any](plain, bracketed []T) []T {
	if len(bracketed) == 0 {
		return plain
	}
	return append(plain, bracketed...)
}
