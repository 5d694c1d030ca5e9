package dto

import (
	"time"

	"github.com/eos420/indexer-api/internal/domain"
)

// BlockResponse represents a block
type BlockResponse struct {
	ChainID          string            `json:"chain_id"`
	Number           int64             `json:"number"`
	Hash             string            `json:"hash"`
	State            domain.BlockState `json:"state"`
	TransactionCount *int64            `json:"transaction_count,omitempty"`
	ExtrinsicCount   *int64            `json:"extrinsic_count,omitempty"`
	Finalized        bool              `json:"finalized"`
	FinalizedAt      *time.Time        `json:"finalized_at,omitempty"`
}
