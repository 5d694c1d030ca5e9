package manager

import (
	"context"

	"github.com/eos420/indexer-api/internal/api/dto"
	"github.com/eos420/indexer-api/internal/cache"
	"github.com/eos420/indexer-api/internal/store"
	"github.com/eos420/indexer-api/internal/store/schema"
)

// AssetManager resolves holdings
type AssetManager interface {
	// Find returns an address's balance row of a fungible token
	Find(ctx context.Context, chainID, assetID, address string) (*schema.Asset, bool)
	// FindSingle returns one instance of a non-fungible token
	FindSingle(ctx context.Context, chainID, assetID, identifier string) (*schema.Asset, bool)
	Query(ctx context.Context, q store.Query) []schema.Asset
	Count(ctx context.Context, filters ...store.Filter) int64
	Dump(ctx context.Context, asset *schema.Asset, includeDerived bool) (*dto.AssetResponse, bool)
}

type assetManager struct {
	store     store.Store
	cache     cache.Cache[*schema.Asset]
	contracts ContractManager
	locks     LockedAssetManager
}

// NewAssetManager creates an asset manager
func NewAssetManager(st store.Store, c cache.Cache[*schema.Asset], contracts ContractManager, locks LockedAssetManager) AssetManager {
	return &assetManager{store: st, cache: c, contracts: contracts, locks: locks}
}

func (m *assetManager) Find(ctx context.Context, chainID, assetID, address string) (*schema.Asset, bool) {
	key := cache.KeyOf("asset.find", chainID, assetID, address)
	return m.cache.GetWith(ctx, key, func(ctx context.Context) (*schema.Asset, bool) {
		contract, ok := m.contracts.Find(ctx, chainID, assetID)
		if !ok || !contract.Protocol.Fungible() {
			return nil, false
		}
		assets, err := m.store.FindAssets(ctx, single(
			store.Eq("contract_id", contract.ID),
			store.Eq("address", address),
		))
		return latest(ctx, "asset", assets, err)
	})
}

func (m *assetManager) FindSingle(ctx context.Context, chainID, assetID, identifier string) (*schema.Asset, bool) {
	key := cache.KeyOf("asset.find_single", chainID, assetID, identifier)
	return m.cache.GetWith(ctx, key, func(ctx context.Context) (*schema.Asset, bool) {
		contract, ok := m.contracts.Find(ctx, chainID, assetID)
		if !ok || contract.Protocol.Fungible() {
			return nil, false
		}
		assets, err := m.store.FindAssets(ctx, single(
			store.Eq("contract_id", contract.ID),
			store.Eq("value", identifier),
		))
		return latest(ctx, "asset", assets, err)
	})
}

func (m *assetManager) Query(ctx context.Context, q store.Query) []schema.Asset {
	assets, err := m.store.FindAssets(ctx, q)
	return listed(ctx, "asset", assets, err)
}

func (m *assetManager) Count(ctx context.Context, filters ...store.Filter) int64 {
	n, err := m.store.CountAssets(ctx, filters...)
	return counted(ctx, "asset", n, err)
}

func (m *assetManager) Dump(ctx context.Context, asset *schema.Asset, includeDerived bool) (*dto.AssetResponse, bool) {
	contract, ok := m.contracts.Get(ctx, asset.ContractID)
	if !ok {
		return nil, false
	}
	contractResp, ok := m.contracts.Dump(ctx, contract, false)
	if !ok {
		return nil, false
	}

	resp := &dto.AssetResponse{
		Contract: *contractResp,
		TxHash:   asset.TxHash,
	}
	resp.Amount, resp.Identifier = valueOf(contract, asset.Value)

	if includeDerived && !contract.Protocol.Fungible() {
		_, locked := m.locks.Single(ctx, asset.ChainID, asset.AssetID, asset.Value)
		resp.Locked = &locked
	}
	return resp, true
}
