package dto

import "encoding/json"

// TransactionResponse represents a chain transaction. The block is flattened
// with a block_ prefix; chain_id stays unprefixed.
type TransactionResponse struct {
	Block       BlockOrChainID `json:"-"`
	Index       *int64         `json:"index,omitempty"`
	Hash        string         `json:"hash"`
	FromAddress string         `json:"from_address"`
	ToAddress   string         `json:"to_address"`
	Value       *AmountValue   `json:"value,omitempty"`
}

func (t TransactionResponse) MarshalJSON() ([]byte, error) {
	type plain TransactionResponse
	f := fields{}
	if err := f.merge(t.Block, "block_", "chain_"); err != nil {
		return nil, err
	}
	if err := f.merge(plain(t), ""); err != nil {
		return nil, err
	}
	return json.Marshal(f)
}
