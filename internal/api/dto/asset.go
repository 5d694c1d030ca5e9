package dto

import "encoding/json"

// AssetResponse represents a holding: a fungible balance or a single instance.
// The contract is flattened with an asset_ prefix; chain_id stays unprefixed.
type AssetResponse struct {
	Contract ContractResponse `json:"-"`
	TxHash   *string          `json:"tx_hash,omitempty"`
	// Amount is set for fungible tokens
	Amount *AmountValue `json:"amount,omitempty"`
	// Identifier is set for non-fungible tokens
	Identifier *string `json:"identifier,omitempty"`
	Locked     *bool   `json:"locked,omitempty"`
}

func (a AssetResponse) MarshalJSON() ([]byte, error) {
	type plain AssetResponse
	f := fields{}
	if err := f.merge(a.Contract, "asset_", "chain_"); err != nil {
		return nil, err
	}
	if err := f.merge(plain(a), ""); err != nil {
		return nil, err
	}
	return json.Marshal(f)
}
