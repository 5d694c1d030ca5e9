package schema

import (
	"time"

	"github.com/eos420/indexer-api/internal/domain"
)

// Contract represents the contract table - a token deployed on one chain.
// (chain_id, asset_id) is unique per chain under latest-by-id resolution.
type Contract struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	ClassID int64  `gorm:"column:class_id;not null;index"`
	ChainID string `gorm:"column:chain_id;not null;type:text;index:idx_contract_chain_asset,priority:1"`
	// AssetID is the protocol-level token name
	AssetID  string              `gorm:"column:asset_id;not null;type:text;index:idx_contract_chain_asset,priority:2"`
	Address  string              `gorm:"column:address;not null;type:text"`
	Owner    *string             `gorm:"column:owner;type:text"`
	Protocol domain.ContractType `gorm:"column:protocol;not null;type:text"`
	// Decimals is set for fungible tokens only
	Decimals   *int32  `gorm:"column:decimals"`
	Identifier *string `gorm:"column:identifier;type:text"`
	// MaxSupply and MintLimit are decimal or 0x-prefixed integers
	MaxSupply  *string              `gorm:"column:max_supply;type:text"`
	MintLimit  *string              `gorm:"column:mint_limit;type:text"`
	NotBefore  *int64               `gorm:"column:not_before"`
	TxHash     *string              `gorm:"column:tx_hash;type:text"`
	State      domain.ContractState `gorm:"column:state;not null;type:text;default:pending"`
	DeployedAt *time.Time           `gorm:"column:deployed_at;type:timestamptz"`
	CreatedAt  time.Time            `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt  time.Time            `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Contract model
func (Contract) TableName() string {
	return "contract"
}
