package rest

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/alitto/pond/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eos420/indexer-api/internal/api/dto"
	"github.com/eos420/indexer-api/internal/domain"
	"github.com/eos420/indexer-api/internal/logger"
	"github.com/eos420/indexer-api/internal/manager"
	"github.com/eos420/indexer-api/internal/store"
	"github.com/eos420/indexer-api/internal/store/schema"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetStatus counts the operations of a chain by outcome
	// GET /api/v1/status?chain_id=<chain>&asset_id[]=<asset>
	GetStatus(c *gin.Context)

	// ListTokens retrieves the tokens deployed on a chain
	// GET /api/v1/token?chain_id=<chain>&protocol[]=<protocol>&size=<size>&page=<page>
	ListTokens(c *gin.Context)

	// GetToken retrieves a single token by name
	// GET /api/v1/token/:contract?chain_id=<chain>
	GetToken(c *gin.Context)

	// GetTokenHolders retrieves the largest holders of a token
	// GET /api/v1/token/:contract/holder?chain_id=<chain>
	GetTokenHolders(c *gin.Context)

	// DeployToken quotes the fee and target address for deploying a new token
	// POST /api/v1/token
	DeployToken(c *gin.Context)

	// ListTransactions retrieves the transactions of a chain
	// GET /api/v1/transaction?chain_id=<chain>&block=<hash>&size=<size>&page=<page>
	ListTransactions(c *gin.Context)

	// GetTransaction retrieves a single transaction by hash
	// GET /api/v1/transaction/:hash?chain_id=<chain>
	GetTransaction(c *gin.Context)

	// ListExtrinsics retrieves the settled operations of a chain
	// GET /api/v1/extrinsic?chain_id=<chain>&tx_hash=<hash>&asset_id[]=<asset>&address[]=<address>&size=<size>&page=<page>
	ListExtrinsics(c *gin.Context)

	// GetExtrinsic retrieves a single operation by transaction hash and index
	// GET /api/v1/extrinsic/:hash/:index?chain_id=<chain>
	GetExtrinsic(c *gin.Context)

	// ListAssets retrieves the balances of an address, or of a set of tokens
	// GET /api/v1/asset?chain_id=<chain>&address=<address>&asset_id[]=<asset>&size=<size>&page=<page>
	ListAssets(c *gin.Context)

	// GetAsset retrieves the balance of a fungible token held by an address
	// GET /api/v1/asset/:asset?chain_id=<chain>&address=<address>
	GetAsset(c *gin.Context)

	// GetAssetInstance retrieves one instance of a non-fungible token
	// GET /api/v1/asset/:asset/:index?chain_id=<chain>
	GetAssetInstance(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	managers *manager.Managers
	pool     pond.Pool
}

// NewHandler creates a new REST API handler over the entity managers.
// Listings render their rows on pool.
func NewHandler(managers *manager.Managers, pool pond.Pool) Handler {
	return &handler{
		managers: managers,
		pool:     pool,
	}
}

// GetStatus counts the operations of a chain by outcome
func (h *handler) GetStatus(c *gin.Context) {
	params, err := ParseStatusQuery(c)
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	filters := []store.Filter{store.Eq("chain_id", params.ChainID)}
	if len(params.AssetIDs) > 0 {
		filters = append(filters, store.In("asset_id", params.AssetIDs))
	}
	countIn := func(states ...domain.BlockState) int64 {
		return h.managers.Extrinsic.Count(ctx, slices.Concat(filters, []store.Filter{store.In("state", states)})...)
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Pending:   countIn(domain.PendingStates...),
		Finalized: countIn(domain.BlockStateFinalized),
		Dropped:   countIn(domain.BlockStateDropped),
	})
}

// ListTokens retrieves the tokens deployed on a chain
func (h *handler) ListTokens(c *gin.Context) {
	params, err := ParseListTokensQuery(c)
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	filters := []store.Filter{store.Eq("chain_id", params.ChainID)}
	if len(params.Protocols) > 0 {
		filters = append(filters, store.In("protocol", params.Protocols))
	}

	total := h.managers.Contract.Count(ctx, filters...)
	contracts := h.managers.Contract.Query(ctx, page(filters, params.PaginationQueryParams))

	data, err := dumpAll(ctx, h.pool, "contract", contracts, h.managers.Contract.Dump)
	if err != nil {
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, paginate[ListTokensQueryParams](params.PaginationQueryParams, total, data))
}

// GetToken retrieves a single token by name
func (h *handler) GetToken(c *gin.Context) {
	params, err := ParseChainQuery(c)
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	contract, ok := h.managers.Contract.Find(ctx, params.ChainID, c.Param("contract"))
	if !ok {
		respondNotFound(c, domain.ErrContractNotFound)
		return
	}

	resp, ok := h.managers.Contract.Dump(ctx, contract, true)
	if !ok {
		respondImpossible(c, zap.String("entity", "contract"), zap.Int64("id", contract.ID))
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse[*dto.ContractResponse]{Data: resp})
}

// GetTokenHolders retrieves the largest holders of a token
func (h *handler) GetTokenHolders(c *gin.Context) {
	params, err := ParseChainQuery(c)
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	contract, ok := h.managers.Contract.Find(ctx, params.ChainID, c.Param("contract"))
	if !ok {
		respondNotFound(c, domain.ErrContractNotFound)
		return
	}

	holders := h.managers.Contract.Holder(ctx, contract, domain.HolderLimit)
	data := make([]dto.HolderResponse, len(holders))
	for i, holder := range holders {
		data[i] = dto.HolderResponse{Address: holder.Address, Count: holder.Count}
	}

	c.JSON(http.StatusOK, dto.DataResponse[[]dto.HolderResponse]{Data: data})
}

// DeployToken quotes the fee and target address for deploying a new token.
// The body may be JSON or a form.
func (h *handler) DeployToken(c *gin.Context) {
	var req dto.DeployRequest
	if err := c.ShouldBind(&req); err != nil {
		respondInvalidRequest(c, malformed(c, err))
		return
	}
	if req.Protocol != nil && !domain.IsValidContractType(*req.Protocol) {
		respondInvalidRequest(c, malformed(c, fmt.Errorf("unknown protocol %q", *req.Protocol)))
		return
	}
	if req.ChainID == nil {
		respondInvalidRequest(c, domain.ErrMissingChainID)
		return
	}
	if req.Name == nil {
		respondInvalidRequest(c, domain.ErrMissingName)
		return
	}
	if req.Address != nil && !domain.IsEVMAddress(*req.Address) {
		respondInvalidRequest(c, domain.ErrInvalidAddress)
		return
	}

	ctx := c.Request.Context()
	if _, taken := h.managers.Contract.Find(ctx, *req.ChainID, *req.Name); taken {
		respondConflict(c, domain.ErrTokenNameTaken)
		return
	}

	quote := h.managers.Contract.Quote(*req.ChainID, *req.Name, req.Protocol)
	quote.Owner = req.Address

	c.JSON(http.StatusAccepted, dto.DataResponse[*dto.ContractResponse]{Data: quote})
}

// ListTransactions retrieves the transactions of a chain
func (h *handler) ListTransactions(c *gin.Context) {
	params, err := ParseListTransactionsQuery(c)
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	filters := []store.Filter{store.Eq("chain_id", params.ChainID)}
	if params.Block != "" {
		filters = append(filters, store.Eq("block_hash", params.Block))
	}

	total := h.managers.Transaction.Count(ctx, filters...)
	transactions := h.managers.Transaction.Query(ctx, page(filters, params.PaginationQueryParams))

	data, err := dumpAll(ctx, h.pool, "transaction", transactions, h.managers.Transaction.Dump)
	if err != nil {
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, paginate[ListTransactionsQueryParams](params.PaginationQueryParams, total, data))
}

// GetTransaction retrieves a single transaction by hash
func (h *handler) GetTransaction(c *gin.Context) {
	params, err := ParseChainQuery(c)
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	tx, ok := h.managers.Transaction.Find(ctx, params.ChainID, c.Param("hash"))
	if !ok {
		respondNotFound(c, domain.ErrTransactionNotFound)
		return
	}

	resp, ok := h.managers.Transaction.Dump(ctx, tx, true)
	if !ok {
		respondImpossible(c, zap.String("entity", "transaction"), zap.Int64("id", tx.ID))
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse[*dto.TransactionResponse]{Data: resp})
}

// ListExtrinsics retrieves the settled operations of a chain.
// Operations still waiting for finality are left out.
func (h *handler) ListExtrinsics(c *gin.Context) {
	params, err := ParseListExtrinsicsQuery(c)
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	filters := []store.Filter{store.Eq("chain_id", params.ChainID)}
	if params.TxHash != "" {
		filters = append(filters, store.Eq("tx_hash", params.TxHash))
	}
	if len(params.AssetIDs) > 0 {
		filters = append(filters, store.In("asset_id", params.AssetIDs))
	}
	if len(params.Addresses) > 0 {
		filters = append(filters, store.Or(
			store.In("from_address", params.Addresses),
			store.In("to_address", params.Addresses),
		))
	}
	filters = append(filters, store.In("state", []domain.BlockState{domain.BlockStateFinalized, domain.BlockStateDropped}))

	total := h.managers.Extrinsic.Count(ctx, filters...)
	extrinsics := h.managers.Extrinsic.Query(ctx, page(filters, params.PaginationQueryParams))

	data, err := dumpAll(ctx, h.pool, "extrinsic", extrinsics, h.managers.Extrinsic.Dump)
	if err != nil {
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, paginate[ListExtrinsicsQueryParams](params.PaginationQueryParams, total, data))
}

// GetExtrinsic retrieves a single operation by transaction hash and index
func (h *handler) GetExtrinsic(c *gin.Context) {
	params, err := ParseChainQuery(c)
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	index, err := strconv.ParseInt(c.Param("index"), 10, 64)
	if err != nil {
		respondInvalidRequest(c, malformed(c, err))
		return
	}

	ctx := c.Request.Context()
	ext, ok := h.managers.Extrinsic.Find(ctx, params.ChainID, c.Param("hash"), index)
	if !ok {
		respondNotFound(c, domain.ErrExtrinsicNotFound)
		return
	}

	resp, ok := h.managers.Extrinsic.Dump(ctx, ext, true)
	if !ok {
		respondImpossible(c, zap.String("entity", "extrinsic"), zap.Int64("id", ext.ID))
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse[*dto.ExtrinsicResponse]{Data: resp})
}

// ListAssets retrieves the balances of an address, or of a set of tokens
func (h *handler) ListAssets(c *gin.Context) {
	params, err := ParseListAssetsQuery(c)
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	var filters []store.Filter
	if params.ChainID != "" {
		filters = append(filters, store.Eq("chain_id", params.ChainID))
	}
	if params.Address != "" {
		filters = append(filters, store.Eq("address", params.Address))
	} else {
		filters = append(filters, store.In("asset_id", params.AssetIDs))
	}

	total := h.managers.Asset.Count(ctx, filters...)
	assets := h.managers.Asset.Query(ctx, page(filters, params.PaginationQueryParams))

	data, err := dumpAll(ctx, h.pool, "asset", assets, h.managers.Asset.Dump)
	if err != nil {
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, paginate[ListAssetsQueryParams](params.PaginationQueryParams, total, data))
}

// GetAsset retrieves the balance of a fungible token held by an address
func (h *handler) GetAsset(c *gin.Context) {
	params, err := ParseGetAssetQuery(c)
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	asset, ok := h.managers.Asset.Find(ctx, params.ChainID, c.Param("asset"), params.Address)
	if !ok {
		respondNotFound(c, domain.ErrAssetNotFound)
		return
	}

	h.respondAsset(c, asset)
}

// GetAssetInstance retrieves one instance of a non-fungible token
func (h *handler) GetAssetInstance(c *gin.Context) {
	params, err := ParseChainQuery(c)
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	asset, ok := h.managers.Asset.FindSingle(ctx, params.ChainID, c.Param("asset"), c.Param("index"))
	if !ok {
		respondNotFound(c, domain.ErrAssetNotFound)
		return
	}

	h.respondAsset(c, asset)
}

func (h *handler) respondAsset(c *gin.Context, asset *schema.Asset) {
	resp, ok := h.managers.Asset.Dump(c.Request.Context(), asset, true)
	if !ok {
		respondImpossible(c, zap.String("entity", "asset"), zap.Int64("id", asset.ID))
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse[*dto.AssetResponse]{Data: resp})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "eos420-indexer-api",
	})
}

// page selects the newest rows of one page
func page(filters []store.Filter, p PaginationQueryParams) store.Query {
	return store.Query{
		Filters: filters,
		Orders:  []store.Order{store.Latest},
		Limit:   p.Size,
		Offset:  p.Offset(),
	}
}

// paginate wraps one page of rendered rows
func paginate[Q any, D any](p PaginationQueryParams, total int64, data []D) dto.PaginationResponse[Q, D] {
	return dto.PaginationResponse[Q, D]{
		Size:  p.Size,
		Page:  p.Page,
		Total: p.Pages(total),
		Data:  data,
	}
}

// dumpAll renders rows on pool, keeping their order.
// Rows that cannot be rendered are skipped.
func dumpAll[R any, D any](
	ctx context.Context,
	pool pond.Pool,
	entity string,
	rows []R,
	dump func(context.Context, *R, bool) (*D, bool),
) ([]D, error) {
	dumped := make([]*D, len(rows))
	group := pool.NewGroup()
	for i := range rows {
		group.Submit(func() {
			dumped[i], _ = dump(ctx, &rows[i], true)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to render %s rows: %w", entity, err)
	}

	data := make([]D, 0, len(rows))
	for i, d := range dumped {
		if d == nil {
			logger.WarnCtx(ctx, "Skipping row that failed to render", zap.String("entity", entity), zap.Int("position", i))
			continue
		}
		data = append(data, *d)
	}
	return data, nil
}
