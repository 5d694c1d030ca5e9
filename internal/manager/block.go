package manager

import (
	"context"

	"github.com/eos420/indexer-api/internal/api/dto"
	"github.com/eos420/indexer-api/internal/cache"
	"github.com/eos420/indexer-api/internal/domain"
	"github.com/eos420/indexer-api/internal/store"
	"github.com/eos420/indexer-api/internal/store/schema"
)

// BlockManager resolves blocks
type BlockManager interface {
	// Find returns the latest row of a block selected by number or hash
	Find(ctx context.Context, chainID string, block domain.NumberOrHash) (*schema.Block, bool)
	Query(ctx context.Context, q store.Query) []schema.Block
	Count(ctx context.Context, filters ...store.Filter) int64
	Dump(ctx context.Context, block *schema.Block, includeDerived bool) (*dto.BlockResponse, bool)
}

type blockManager struct {
	store store.Store
	cache cache.Cache[*schema.Block]
}

// NewBlockManager creates a block manager
func NewBlockManager(st store.Store, c cache.Cache[*schema.Block]) BlockManager {
	return &blockManager{store: st, cache: c}
}

func (m *blockManager) Find(ctx context.Context, chainID string, block domain.NumberOrHash) (*schema.Block, bool) {
	key := cache.KeyOf("block.find", chainID, block.String())
	return m.cache.GetWith(ctx, key, func(ctx context.Context) (*schema.Block, bool) {
		var by store.Filter
		if number, ok := block.Number(); ok {
			by = store.Eq("block_number", number)
		} else {
			hash, _ := block.Hash()
			by = store.Eq("block_hash", hash)
		}
		blocks, err := m.store.FindBlocks(ctx, single(store.Eq("chain_id", chainID), by))
		return latest(ctx, "block", blocks, err)
	})
}

func (m *blockManager) Query(ctx context.Context, q store.Query) []schema.Block {
	blocks, err := m.store.FindBlocks(ctx, q)
	return listed(ctx, "block", blocks, err)
}

func (m *blockManager) Count(ctx context.Context, filters ...store.Filter) int64 {
	n, err := m.store.CountBlocks(ctx, filters...)
	return counted(ctx, "block", n, err)
}

func (m *blockManager) Dump(_ context.Context, block *schema.Block, includeDerived bool) (*dto.BlockResponse, bool) {
	resp := &dto.BlockResponse{
		ChainID: block.ChainID,
		Number:  block.BlockNumber,
		Hash:    block.BlockHash,
		State:   block.State,
	}
	if block.FinalizedAt != nil {
		finalizedAt := *block.FinalizedAt
		resp.Finalized = true
		resp.FinalizedAt = &finalizedAt
	}
	if includeDerived {
		txCount, extCount := block.TransactionCount, block.ExtrinsicCount
		resp.TransactionCount = &txCount
		resp.ExtrinsicCount = &extCount
	}
	return resp, true
}
