package manager

import (
	"context"

	"go.uber.org/zap"

	"github.com/eos420/indexer-api/internal/api/dto"
	"github.com/eos420/indexer-api/internal/bigint"
	"github.com/eos420/indexer-api/internal/cache"
	"github.com/eos420/indexer-api/internal/domain"
	"github.com/eos420/indexer-api/internal/logger"
	"github.com/eos420/indexer-api/internal/store"
	"github.com/eos420/indexer-api/internal/store/schema"
)

// deployFee is charged for every token deployment
var deployFee = bigint.MustFromString(domain.DeployFeeHex)

// ContractManager resolves token contracts and their aggregates
type ContractManager interface {
	Get(ctx context.Context, id int64) (*schema.Contract, bool)
	// Find returns the latest contract of a token on a chain
	Find(ctx context.Context, chainID, assetID string) (*schema.Contract, bool)
	Query(ctx context.Context, q store.Query) []schema.Contract
	Count(ctx context.Context, filters ...store.Filter) int64
	// Supply is the number of minted instances; fungible tokens have none
	Supply(ctx context.Context, contract *schema.Contract) (bigint.Uint256, bool)
	// Holder returns up to limit holders with the most assets, largest first
	Holder(ctx context.Context, contract *schema.Contract, limit int) []store.HolderCount
	HolderCount(ctx context.Context, contract *schema.Contract) uint64
	Dump(ctx context.Context, contract *schema.Contract, includeDerived bool) (*dto.ContractResponse, bool)
	// Quote describes the deployment a caller must pay for to register a token
	Quote(chainID, name string, protocol *domain.ContractType) *dto.ContractResponse
}

type contractManager struct {
	store   store.Store
	cache   cache.Cache[*schema.Contract]
	classes ClassManager
}

// NewContractManager creates a contract manager
func NewContractManager(st store.Store, c cache.Cache[*schema.Contract], classes ClassManager) ContractManager {
	return &contractManager{store: st, cache: c, classes: classes}
}

func (m *contractManager) Get(ctx context.Context, id int64) (*schema.Contract, bool) {
	return m.cache.GetWith(ctx, cache.KeyOf("contract.get", id), func(ctx context.Context) (*schema.Contract, bool) {
		contract, err := m.store.GetContractByID(ctx, id)
		return byID(ctx, "contract", contract, err)
	})
}

func (m *contractManager) Find(ctx context.Context, chainID, assetID string) (*schema.Contract, bool) {
	key := cache.KeyOf("contract.find", chainID, assetID)
	return m.cache.GetWith(ctx, key, func(ctx context.Context) (*schema.Contract, bool) {
		contracts, err := m.store.FindContracts(ctx, single(
			store.Eq("chain_id", chainID),
			store.Eq("asset_id", assetID),
		))
		return latest(ctx, "contract", contracts, err)
	})
}

func (m *contractManager) Query(ctx context.Context, q store.Query) []schema.Contract {
	contracts, err := m.store.FindContracts(ctx, q)
	return listed(ctx, "contract", contracts, err)
}

func (m *contractManager) Count(ctx context.Context, filters ...store.Filter) int64 {
	n, err := m.store.CountContracts(ctx, filters...)
	return counted(ctx, "contract", n, err)
}

func (m *contractManager) Supply(ctx context.Context, contract *schema.Contract) (bigint.Uint256, bool) {
	if contract.Protocol.Fungible() {
		return bigint.Zero(), false
	}
	n, err := m.store.CountAssets(ctx, store.Eq("contract_id", contract.ID))
	if err != nil {
		logger.WarnCtx(ctx, "count failed", zap.String("entity", "asset"), zap.Error(err))
		return bigint.Zero(), false
	}
	return bigint.FromUint64(uint64(n)), true
}

func (m *contractManager) Holder(ctx context.Context, contract *schema.Contract, limit int) []store.HolderCount {
	holders, err := m.store.AssetHolders(ctx, contract.ID, limit)
	return listed(ctx, "asset", holders, err)
}

func (m *contractManager) HolderCount(ctx context.Context, contract *schema.Contract) uint64 {
	n, err := m.store.CountAssetHolders(ctx, contract.ID)
	return uint64(counted(ctx, "asset", n, err))
}

func (m *contractManager) Dump(ctx context.Context, contract *schema.Contract, includeDerived bool) (*dto.ContractResponse, bool) {
	class, ok := m.classes.Get(ctx, contract.ClassID)
	if !ok {
		return nil, false
	}

	description, coverImageURI := class.Description, class.CoverImageURI
	state := contract.State
	toAddress := contract.Address
	resp := &dto.ContractResponse{
		ChainID:       contract.ChainID,
		ID:            contract.AssetID,
		Type:          class.Type,
		Protocol:      contract.Protocol,
		Name:          class.Name,
		Symbol:        class.Symbol,
		Description:   &description,
		CoverImageURI: &coverImageURI,
		State:         &state,
		ToAddress:     &toAddress,
		Fee:           dto.U256(deployFee),
		Owner:         contract.Owner,
		Decimals:      contract.Decimals,
		NotBefore:     contract.NotBefore,
		DeployedAt:    contract.DeployedAt,
		TxHash:        contract.TxHash,
	}
	if contract.MaxSupply != nil {
		resp.MaxSupply = dto.U256(bigint.FromStringOrZero(*contract.MaxSupply))
	}
	if contract.MintLimit != nil {
		resp.MintLimit = dto.U256(bigint.FromStringOrZero(*contract.MintLimit))
	}

	if includeDerived {
		supply, _ := m.Supply(ctx, contract)
		resp.Supply = dto.U256(supply)
		resp.HolderCount = dto.U64(m.HolderCount(ctx, contract))
	}
	return resp, true
}

func (m *contractManager) Quote(chainID, name string, protocol *domain.ContractType) *dto.ContractResponse {
	toAddress := domain.DeployTargetAddress
	resp := &dto.ContractResponse{
		ChainID:   chainID,
		Type:      domain.ClassTypeFungible,
		Protocol:  domain.ContractTypeERC20,
		Name:      name,
		Symbol:    name,
		ToAddress: &toAddress,
		Fee:       dto.U256(deployFee),
	}
	if protocol != nil {
		resp.Type = protocol.ClassType()
		resp.Protocol = *protocol
	}
	return resp
}
