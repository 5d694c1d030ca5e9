package manager

import (
	"context"

	"github.com/eos420/indexer-api/internal/api/dto"
	"github.com/eos420/indexer-api/internal/bigint"
	"github.com/eos420/indexer-api/internal/cache"
	"github.com/eos420/indexer-api/internal/domain"
	"github.com/eos420/indexer-api/internal/store"
	"github.com/eos420/indexer-api/internal/store/schema"
)

// TransactionManager resolves chain transactions
type TransactionManager interface {
	Find(ctx context.Context, chainID, txHash string) (*schema.Transaction, bool)
	Query(ctx context.Context, q store.Query) []schema.Transaction
	Count(ctx context.Context, filters ...store.Filter) int64
	// Dump is absent when the transaction names a block that cannot be resolved
	Dump(ctx context.Context, tx *schema.Transaction, includeDerived bool) (*dto.TransactionResponse, bool)
}

type transactionManager struct {
	store  store.Store
	cache  cache.Cache[*schema.Transaction]
	blocks BlockManager
}

// NewTransactionManager creates a transaction manager
func NewTransactionManager(st store.Store, c cache.Cache[*schema.Transaction], blocks BlockManager) TransactionManager {
	return &transactionManager{store: st, cache: c, blocks: blocks}
}

func (m *transactionManager) Find(ctx context.Context, chainID, txHash string) (*schema.Transaction, bool) {
	key := cache.KeyOf("transaction.find", chainID, txHash)
	return m.cache.GetWith(ctx, key, func(ctx context.Context) (*schema.Transaction, bool) {
		txs, err := m.store.FindTransactions(ctx, single(
			store.Eq("chain_id", chainID),
			store.Eq("tx_hash", txHash),
		))
		return latest(ctx, "transaction", txs, err)
	})
}

func (m *transactionManager) Query(ctx context.Context, q store.Query) []schema.Transaction {
	txs, err := m.store.FindTransactions(ctx, q)
	return listed(ctx, "transaction", txs, err)
}

func (m *transactionManager) Count(ctx context.Context, filters ...store.Filter) int64 {
	n, err := m.store.CountTransactions(ctx, filters...)
	return counted(ctx, "transaction", n, err)
}

func (m *transactionManager) Dump(ctx context.Context, tx *schema.Transaction, includeDerived bool) (*dto.TransactionResponse, bool) {
	resp := &dto.TransactionResponse{
		Block:       dto.OnChain(tx.ChainID),
		Index:       tx.TxIndex,
		Hash:        tx.TxHash,
		FromAddress: tx.FromAddress,
	}

	if tx.BlockHash != nil {
		block, ok := m.blocks.Find(ctx, tx.ChainID, domain.BlockHash(*tx.BlockHash))
		if !ok {
			return nil, false
		}
		blockResp, ok := m.blocks.Dump(ctx, block, false)
		if !ok {
			return nil, false
		}
		resp.Block = dto.InBlock(blockResp)
	}

	if tx.ToAddress != nil {
		resp.ToAddress = *tx.ToAddress
	}
	if includeDerived {
		resp.Value = dto.U256(bigint.FromStringOrZero(tx.Value))
	}
	return resp, true
}
