package manager

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eos420/indexer-api/internal/adapter"
	"github.com/eos420/indexer-api/internal/cache"
	"github.com/eos420/indexer-api/internal/id"
	"github.com/eos420/indexer-api/internal/logger"
	"github.com/eos420/indexer-api/internal/store"
	"github.com/eos420/indexer-api/internal/store/schema"
)

// Managers bundles every entity manager, wired to each other
type Managers struct {
	Block       BlockManager
	Class       ClassManager
	Contract    ContractManager
	Transaction TransactionManager
	Extrinsic   ExtrinsicManager
	Asset       AssetManager
	LockedAsset LockedAssetManager
	// IDs allocates identifiers for rows and requests
	IDs *id.Generator
}

// New builds all managers over st, giving each cached entity its own cache
func New(st store.Store, cacheCfg cache.Config, clock adapter.Clock, ids *id.Generator) (*Managers, error) {
	blocks, err := cache.New[*schema.Block](cacheCfg, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create block cache: %w", err)
	}
	classes, err := cache.New[*schema.Class](cacheCfg, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create class cache: %w", err)
	}
	contracts, err := cache.New[*schema.Contract](cacheCfg, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create contract cache: %w", err)
	}
	transactions, err := cache.New[*schema.Transaction](cacheCfg, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction cache: %w", err)
	}
	extrinsics, err := cache.New[*schema.Extrinsic](cacheCfg, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create extrinsic cache: %w", err)
	}
	assets, err := cache.New[*schema.Asset](cacheCfg, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset cache: %w", err)
	}

	m := &Managers{IDs: ids}
	m.Block = NewBlockManager(st, blocks)
	m.Class = NewClassManager(st, classes)
	m.Contract = NewContractManager(st, contracts, m.Class)
	m.Transaction = NewTransactionManager(st, transactions, m.Block)
	m.Extrinsic = NewExtrinsicManager(st, extrinsics, m.Contract, m.Transaction)
	m.LockedAsset = NewLockedAssetManager(st, m.Contract)
	m.Asset = NewAssetManager(st, assets, m.Contract, m.LockedAsset)
	return m, nil
}

// latest unwraps a single-row lookup ordered newest first.
// Storage failures are logged and reported as absent.
func latest[T any](ctx context.Context, entity string, rows []T, err error) (*T, bool) {
	if err != nil {
		logger.WarnCtx(ctx, "lookup failed", zap.String("entity", entity), zap.Error(err))
		return nil, false
	}
	if len(rows) == 0 {
		return nil, false
	}
	return &rows[0], true
}

// byID unwraps a primary-key lookup
func byID[T any](ctx context.Context, entity string, row *T, err error) (*T, bool) {
	if err != nil {
		logger.WarnCtx(ctx, "lookup failed", zap.String("entity", entity), zap.Error(err))
		return nil, false
	}
	return row, row != nil
}

// listed unwraps a listing, falling back to an empty result on failure
func listed[T any](ctx context.Context, entity string, rows []T, err error) []T {
	if err != nil {
		logger.WarnCtx(ctx, "query failed", zap.String("entity", entity), zap.Error(err))
		return []T{}
	}
	return rows
}

// counted unwraps a count, falling back to zero on failure
func counted(ctx context.Context, entity string, n int64, err error) int64 {
	if err != nil {
		logger.WarnCtx(ctx, "count failed", zap.String("entity", entity), zap.Error(err))
		return 0
	}
	return n
}

// single limits q to the newest matching row
func single(filters ...store.Filter) store.Query {
	return store.Query{Filters: filters, Orders: []store.Order{store.Latest}, Limit: 1}
}
