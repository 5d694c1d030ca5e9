package schema

import "time"

// Asset represents the asset table - a fungible balance or one non-fungible instance
type Asset struct {
	ID         int64   `gorm:"column:id;primaryKey;autoIncrement:false"`
	ClassID    int64   `gorm:"column:class_id;not null"`
	ContractID int64   `gorm:"column:contract_id;not null;index:idx_asset_contract_address,priority:1;index:idx_asset_contract_value,priority:1"`
	ChainID    string  `gorm:"column:chain_id;not null;type:text"`
	AssetID    string  `gorm:"column:asset_id;not null;type:text;index"`
	TxHash     *string `gorm:"column:tx_hash;type:text"`
	Index      *int64  `gorm:"column:index"`
	// Address is the holder
	Address string `gorm:"column:address;not null;type:text;index:idx_asset_contract_address,priority:2"`
	// Value is the balance for fungible tokens, or the token identifier otherwise
	Value     string    `gorm:"column:value;not null;type:text;index:idx_asset_contract_value,priority:2"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Asset model
func (Asset) TableName() string {
	return "asset"
}
