package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// BlockState is the lifecycle state shared by blocks, transactions and extrinsics
type BlockState string

const (
	BlockStatePending   BlockState = "pending"
	BlockStateIndexing  BlockState = "indexing"
	BlockStateConfirmed BlockState = "confirmed"
	BlockStateFinalized BlockState = "finalized"
	BlockStateDropped   BlockState = "dropped"
)

// PendingStates are the states reported as pending by the status endpoint
var PendingStates = []BlockState{BlockStatePending, BlockStateIndexing, BlockStateConfirmed}

// ClassType distinguishes balance tokens from unique-instance tokens
type ClassType string

const (
	ClassTypeFungible    ClassType = "fungible"
	ClassTypeNonFungible ClassType = "non-fungible"
)

// ContractState is the deployment state of a contract
type ContractState string

const (
	ContractStatePending   ContractState = "pending"
	ContractStateDeploying ContractState = "deploying"
	ContractStateDeployed  ContractState = "deployed"
)

// ContractType is the token protocol a contract implements
type ContractType string

const (
	ContractTypeERC20  ContractType = "erc20"
	ContractTypeERC721 ContractType = "erc721"
	ContractTypeEOS20  ContractType = "eos20"
	ContractTypeEOS420 ContractType = "eos420"
)

// IsValidContractType checks if a contract type is known
func IsValidContractType(t ContractType) bool {
	switch t {
	case ContractTypeERC20, ContractTypeERC721, ContractTypeEOS20, ContractTypeEOS420:
		return true
	}
	return false
}

// ClassType returns the class type implied by the protocol
func (t ContractType) ClassType() ClassType {
	switch t {
	case ContractTypeERC721, ContractTypeEOS420:
		return ClassTypeNonFungible
	default:
		return ClassTypeFungible
	}
}

// Fungible reports whether the protocol tracks balances
func (t ContractType) Fungible() bool {
	return t.ClassType() == ClassTypeFungible
}

// DropReason explains why an extrinsic was rejected.
// Stored with underscores, rendered with dashes.
type DropReason string

const (
	DropReasonUnknown              DropReason = "unknown"
	DropReasonContextMissing       DropReason = "context_missing"
	DropReasonContextMalformed     DropReason = "context_malformed"
	DropReasonTransactionDropped   DropReason = "transaction_dropped"
	DropReasonTransactionMalformed DropReason = "transaction_malformed"
	DropReasonProtocolMismatch     DropReason = "protocol_mismatch"
	DropReasonOperationInvalid     DropReason = "operation_invalid"
	DropReasonOperationUnsupported DropReason = "operation_unsupported"
	DropReasonFeeInsufficient      DropReason = "fee_insufficient"
	DropReasonFeeArrearage         DropReason = "fee_arrearage"
	DropReasonExtrinsicConflicted  DropReason = "extrinsic_conflicted"
	DropReasonBalanceInsufficient  DropReason = "balance_insufficient"
	DropReasonSupplyExceeded       DropReason = "supply_exceeded"
)

// MarshalJSON renders the reason in kebab-case
func (r DropReason) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ReplaceAll(string(r), "_", "-"))
}

// UnmarshalJSON accepts the kebab-case form
func (r *DropReason) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = DropReason(strings.ReplaceAll(s, "-", "_"))
	return nil
}

// ExtrinsicOperation is the kind of token-protocol operation
type ExtrinsicOperation string

const (
	ExtrinsicOperationDeploy   ExtrinsicOperation = "deploy"
	ExtrinsicOperationMint     ExtrinsicOperation = "mint"
	ExtrinsicOperationTransfer ExtrinsicOperation = "transfer"
	ExtrinsicOperationStake    ExtrinsicOperation = "stake"
	ExtrinsicOperationBurn     ExtrinsicOperation = "burn"
)

// LockReason is why a non-fungible asset is locked
type LockReason string

const (
	LockReasonRollup LockReason = "rollup"
	LockReasonUser   LockReason = "user"
)

// NumberOrHash selects a block either by height or by hash
type NumberOrHash struct {
	number *int64
	hash   string
}

// BlockNumber selects a block by height
func BlockNumber(n int64) NumberOrHash {
	return NumberOrHash{number: &n}
}

// BlockHash selects a block by hash
func BlockHash(h string) NumberOrHash {
	return NumberOrHash{hash: h}
}

// ParseNumberOrHash treats a decimal string as a height and anything else as a hash
func ParseNumberOrHash(s string) NumberOrHash {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && n >= 0 {
		return BlockNumber(n)
	}
	return BlockHash(s)
}

// Number returns the height and whether this selects by height
func (b NumberOrHash) Number() (int64, bool) {
	if b.number == nil {
		return 0, false
	}
	return *b.number, true
}

// Hash returns the hash and whether this selects by hash
func (b NumberOrHash) Hash() (string, bool) {
	return b.hash, b.number == nil
}

// String returns a stable representation used for cache keys
func (b NumberOrHash) String() string {
	if n, ok := b.Number(); ok {
		return fmt.Sprintf("number:%d", n)
	}
	return "hash:" + b.hash
}

// IsEVMAddress checks if the address is a 20-byte hex address, with or without 0x
func IsEVMAddress(address string) bool {
	return common.IsHexAddress(address)
}
