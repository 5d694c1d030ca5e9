package schema

import (
	"time"

	"github.com/eos420/indexer-api/internal/domain"
)

// LockedAsset represents the locked_asset table - a lock held on a non-fungible instance
type LockedAsset struct {
	ID         int64             `gorm:"column:id;primaryKey;autoIncrement:false"`
	ClassID    int64             `gorm:"column:class_id;not null"`
	ContractID int64             `gorm:"column:contract_id;not null;index:idx_locked_asset_contract_value,priority:1"`
	ChainID    string            `gorm:"column:chain_id;not null;type:text"`
	AssetID    string            `gorm:"column:asset_id;not null;type:text"`
	Address    string            `gorm:"column:address;not null;type:text"`
	Delegate   string            `gorm:"column:delegate;not null;type:text"`
	Nonce      int64             `gorm:"column:nonce;not null"`
	Value      string            `gorm:"column:value;not null;type:text;index:idx_locked_asset_contract_value,priority:2"`
	LockReason domain.LockReason `gorm:"column:lock_reason;not null;type:text"`
	ExpiresAt  *time.Time        `gorm:"column:expires_at;type:timestamptz"`
	CreatedAt  time.Time         `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt  time.Time         `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LockedAsset model
func (LockedAsset) TableName() string {
	return "locked_asset"
}
