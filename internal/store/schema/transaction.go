package schema

import (
	"time"

	"github.com/eos420/indexer-api/internal/domain"
)

// Transaction represents the transaction table - chain transactions carrying protocol operations
type Transaction struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement:false"`
	ChainID     string  `gorm:"column:chain_id;not null;type:text;index:idx_transaction_chain_hash,priority:1"`
	BlockNumber *int64  `gorm:"column:block_number"`
	BlockHash   *string `gorm:"column:block_hash;type:text;index"`
	// TxIndex is the position of the transaction within its block
	TxIndex     *int64            `gorm:"column:tx_index"`
	TxHash      string            `gorm:"column:tx_hash;not null;type:text;index:idx_transaction_chain_hash,priority:2"`
	FromAddress string            `gorm:"column:from_address;not null;type:text"`
	ToAddress   *string           `gorm:"column:to_address;type:text"`
	Value       string            `gorm:"column:value;not null;type:text;default:0"`
	ValueUsed   string            `gorm:"column:value_used;not null;type:text;default:0"`
	State       domain.BlockState `gorm:"column:state;not null;type:text;default:pending"`
	CreatedAt   time.Time         `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transaction"
}
