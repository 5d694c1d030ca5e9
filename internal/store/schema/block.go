package schema

import (
	"time"

	"github.com/eos420/indexer-api/internal/domain"
)

// Block represents the block table - one row per observed block, re-inserted on state changes
type Block struct {
	// ID is the snowflake identifier, monotonically issued
	ID int64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// ChainID is the chain the block belongs to
	ChainID string `gorm:"column:chain_id;not null;type:text;index:idx_block_chain_hash,priority:1;index:idx_block_chain_number,priority:1"`
	// BlockNumber is the block height
	BlockNumber int64 `gorm:"column:block_number;not null;index:idx_block_chain_number,priority:2"`
	// BlockHash is the block hash
	BlockHash string `gorm:"column:block_hash;not null;type:text;index:idx_block_chain_hash,priority:2"`
	// ParentHash is the hash of the previous block
	ParentHash string `gorm:"column:parent_hash;not null;type:text"`
	// TransactionCount is the number of transactions in the block
	TransactionCount int64 `gorm:"column:transaction_count;not null;default:0"`
	// ExtrinsicCount is the number of protocol operations found in the block
	ExtrinsicCount int64 `gorm:"column:extrinsic_count;not null;default:0"`
	// State is the block lifecycle state
	State domain.BlockState `gorm:"column:state;not null;type:text;default:pending"`
	// MinedAt is when the block was produced
	MinedAt *time.Time `gorm:"column:mined_at;type:timestamptz"`
	// FinalizedAt is when the block reached finality
	FinalizedAt *time.Time `gorm:"column:finalized_at;type:timestamptz"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Block model
func (Block) TableName() string {
	return "block"
}
