package manager

import (
	"context"

	"github.com/eos420/indexer-api/internal/store"
	"github.com/eos420/indexer-api/internal/store/schema"
)

// LockedAssetManager resolves locks on non-fungible instances. Locks change
// often, so lookups are never cached.
type LockedAssetManager interface {
	// Single returns the latest lock on one instance of a non-fungible token
	Single(ctx context.Context, chainID, assetID, identifier string) (*schema.LockedAsset, bool)
	Query(ctx context.Context, q store.Query) []schema.LockedAsset
}

type lockedAssetManager struct {
	store     store.Store
	contracts ContractManager
}

// NewLockedAssetManager creates a locked asset manager
func NewLockedAssetManager(st store.Store, contracts ContractManager) LockedAssetManager {
	return &lockedAssetManager{store: st, contracts: contracts}
}

func (m *lockedAssetManager) Single(ctx context.Context, chainID, assetID, identifier string) (*schema.LockedAsset, bool) {
	contract, ok := m.contracts.Find(ctx, chainID, assetID)
	if !ok || contract.Protocol.Fungible() {
		return nil, false
	}
	locks, err := m.store.FindLockedAssets(ctx, single(
		store.Eq("contract_id", contract.ID),
		store.Eq("value", identifier),
	))
	return latest(ctx, "locked_asset", locks, err)
}

func (m *lockedAssetManager) Query(ctx context.Context, q store.Query) []schema.LockedAsset {
	locks, err := m.store.FindLockedAssets(ctx, q)
	return listed(ctx, "locked_asset", locks, err)
}
