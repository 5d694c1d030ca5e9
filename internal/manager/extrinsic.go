package manager

import (
	"context"

	"github.com/eos420/indexer-api/internal/api/dto"
	"github.com/eos420/indexer-api/internal/bigint"
	"github.com/eos420/indexer-api/internal/cache"
	"github.com/eos420/indexer-api/internal/currency"
	"github.com/eos420/indexer-api/internal/store"
	"github.com/eos420/indexer-api/internal/store/schema"
)

// ExtrinsicManager resolves token-protocol operations
type ExtrinsicManager interface {
	Find(ctx context.Context, chainID, txHash string, index int64) (*schema.Extrinsic, bool)
	Query(ctx context.Context, q store.Query) []schema.Extrinsic
	Count(ctx context.Context, filters ...store.Filter) int64
	// Dump is absent unless both the contract and the transaction resolve
	Dump(ctx context.Context, ext *schema.Extrinsic, includeDerived bool) (*dto.ExtrinsicResponse, bool)
}

type extrinsicManager struct {
	store        store.Store
	cache        cache.Cache[*schema.Extrinsic]
	contracts    ContractManager
	transactions TransactionManager
}

// NewExtrinsicManager creates an extrinsic manager
func NewExtrinsicManager(st store.Store, c cache.Cache[*schema.Extrinsic], contracts ContractManager, transactions TransactionManager) ExtrinsicManager {
	return &extrinsicManager{store: st, cache: c, contracts: contracts, transactions: transactions}
}

func (m *extrinsicManager) Find(ctx context.Context, chainID, txHash string, index int64) (*schema.Extrinsic, bool) {
	key := cache.KeyOf("extrinsic.find", chainID, txHash, index)
	return m.cache.GetWith(ctx, key, func(ctx context.Context) (*schema.Extrinsic, bool) {
		exts, err := m.store.FindExtrinsics(ctx, single(
			store.Eq("chain_id", chainID),
			store.Eq("tx_hash", txHash),
			store.Eq("index", index),
		))
		return latest(ctx, "extrinsic", exts, err)
	})
}

func (m *extrinsicManager) Query(ctx context.Context, q store.Query) []schema.Extrinsic {
	exts, err := m.store.FindExtrinsics(ctx, q)
	return listed(ctx, "extrinsic", exts, err)
}

func (m *extrinsicManager) Count(ctx context.Context, filters ...store.Filter) int64 {
	n, err := m.store.CountExtrinsics(ctx, filters...)
	return counted(ctx, "extrinsic", n, err)
}

func (m *extrinsicManager) Dump(ctx context.Context, ext *schema.Extrinsic, _ bool) (*dto.ExtrinsicResponse, bool) {
	contract, ok := m.contracts.Find(ctx, ext.ChainID, ext.AssetID)
	if !ok {
		return nil, false
	}
	contractResp, ok := m.contracts.Dump(ctx, contract, false)
	if !ok {
		return nil, false
	}
	tx, ok := m.transactions.Find(ctx, ext.ChainID, ext.TxHash)
	if !ok {
		return nil, false
	}
	txResp, ok := m.transactions.Dump(ctx, tx, false)
	if !ok {
		return nil, false
	}

	resp := &dto.ExtrinsicResponse{
		Transaction: *txResp,
		Contract:    *contractResp,
		Index:       ext.Index,
		FromAddress: ext.FromAddress,
		ToAddress:   ext.ToAddress,
		Operation:   ext.Operation,
		State:       ext.State,
		DropReason:  ext.DropReason,
	}
	resp.Amount, resp.Identifier = valueOf(contract, ext.Value)
	return resp, true
}

// valueOf renders a raw value as a display amount for contracts with decimals,
// or as an identifier otherwise
func valueOf(contract *schema.Contract, value string) (*dto.AmountValue, *string) {
	if contract.Decimals != nil {
		amount := bigint.FromStringOrZero(value)
		return dto.F64(currency.CalculateAmount(amount, *contract.Decimals)), nil
	}
	identifier := value
	return nil, &identifier
}
