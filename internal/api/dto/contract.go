package dto

import (
	"encoding/json"
	"time"

	"github.com/eos420/indexer-api/internal/domain"
)

// ContractResponse represents a token contract joined with its class
type ContractResponse struct {
	ChainID       string                `json:"chain_id"`
	ID            string                `json:"id,omitempty"`
	Type          domain.ClassType      `json:"type"`
	Protocol      domain.ContractType   `json:"protocol"`
	Name          string                `json:"name"`
	Symbol        string                `json:"symbol"`
	Description   *string               `json:"description,omitempty"`
	CoverImageURI *string               `json:"cover_image_uri,omitempty"`
	Decimals      *int32                `json:"decimals,omitempty"`
	MaxSupply     *AmountValue          `json:"max_supply,omitempty"`
	MintLimit     *AmountValue          `json:"mint_limit,omitempty"`
	State         *domain.ContractState `json:"state,omitempty"`
	NotBefore     *int64                `json:"not_before,omitempty"`
	DeployedAt    *time.Time            `json:"deployed_at,omitempty"`
	TxHash        *string               `json:"tx_hash,omitempty"`
	Owner         *string               `json:"owner,omitempty"`
	ToAddress     *string               `json:"to_address,omitempty"`
	Fee           *AmountValue          `json:"fee,omitempty"`
	// Derived fields
	Supply      *AmountValue `json:"supply,omitempty"`
	HolderCount *AmountValue `json:"holder_count,omitempty"`
}

// DeployRequest is the body of a token deployment quote request
type DeployRequest struct {
	ChainID  *string              `json:"chain_id" form:"chain_id"`
	Name     *string              `json:"name" form:"name"`
	Protocol *domain.ContractType `json:"protocol" form:"protocol"`
	Address  *string              `json:"address" form:"address"`
}

// HolderResponse is one entry of the holder ranking, rendered as [address, count]
type HolderResponse struct {
	Address string
	Count   int64
}

// MarshalJSON renders the holder as a two element array
func (h HolderResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{h.Address, h.Count})
}
