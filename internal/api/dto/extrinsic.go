package dto

import (
	"encoding/json"

	"github.com/eos420/indexer-api/internal/domain"
)

// ExtrinsicResponse represents one token-protocol operation.
// The transaction is flattened with a tx_ prefix (its block_ fields kept as is)
// and the contract with an asset_ prefix (chain_id kept as is).
type ExtrinsicResponse struct {
	Transaction TransactionResponse       `json:"-"`
	Contract    ContractResponse          `json:"-"`
	Index       int64                     `json:"index"`
	FromAddress string                    `json:"from_address"`
	ToAddress   string                    `json:"to_address"`
	Operation   domain.ExtrinsicOperation `json:"operation"`
	State       domain.BlockState         `json:"state"`
	DropReason  *domain.DropReason        `json:"drop_reason,omitempty"`
	Amount      *AmountValue              `json:"amount,omitempty"`
	Identifier  *string                   `json:"identifier,omitempty"`
}

func (e ExtrinsicResponse) MarshalJSON() ([]byte, error) {
	type plain ExtrinsicResponse
	f := fields{}
	if err := f.merge(e.Transaction, "tx_", "block_"); err != nil {
		return nil, err
	}
	if err := f.merge(e.Contract, "asset_", "chain_"); err != nil {
		return nil, err
	}
	if err := f.merge(plain(e), ""); err != nil {
		return nil, err
	}
	return json.Marshal(f)
}
