package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/eos420/indexer-api/internal/domain"
)

// Extrinsic represents the extrinsic table - one token-protocol operation inside a transaction.
// (chain_id, tx_hash, index) identifies an extrinsic; the row with the highest id is current.
type Extrinsic struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement:false"`
	ChainID     string  `gorm:"column:chain_id;not null;type:text;index:idx_extrinsic_chain_tx,priority:1"`
	BlockNumber *int64  `gorm:"column:block_number"`
	BlockHash   *string `gorm:"column:block_hash;type:text"`
	TxIndex     *int64  `gorm:"column:tx_index"`
	TxHash      string  `gorm:"column:tx_hash;not null;type:text;index:idx_extrinsic_chain_tx,priority:2"`
	// Index is the position of the operation within the transaction
	Index int64 `gorm:"column:index;not null;index:idx_extrinsic_chain_tx,priority:3"`
	// AssetID is the token the operation targets
	AssetID     string                    `gorm:"column:asset_id;not null;type:text;index"`
	Protocol    domain.ContractType       `gorm:"column:protocol;not null;type:text"`
	FromAddress string                    `gorm:"column:from_address;not null;type:text"`
	ToAddress   string                    `gorm:"column:to_address;not null;type:text"`
	Operation   domain.ExtrinsicOperation `gorm:"column:operation;not null;type:text"`
	// Value is the raw amount for fungible tokens, or the token identifier otherwise
	Value string `gorm:"column:value;not null;type:text"`
	// Context is the decoded operation payload as published on chain
	Context    datatypes.JSON     `gorm:"column:context;type:jsonb"`
	State      domain.BlockState  `gorm:"column:state;not null;type:text;default:pending"`
	DropReason *domain.DropReason `gorm:"column:drop_reason;type:text"`
	CreatedAt  time.Time          `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt  time.Time          `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Extrinsic model
func (Extrinsic) TableName() string {
	return "extrinsic"
}
