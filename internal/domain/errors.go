package domain

import "errors"

var (
	// ErrMissingChainID is returned when a request omits chain_id
	ErrMissingChainID = errors.New("missing mandatory parameter `chain_id`")

	// ErrMissingName is returned when a deploy request omits name
	ErrMissingName = errors.New("missing mandatory parameter `name`")

	// ErrMissingAddress is returned when a balance lookup or an asset listing omits address
	ErrMissingAddress = errors.New("missing mandatory parameter `address`")

	// ErrMalformedRequest is returned when a request body or path cannot be decoded
	ErrMalformedRequest = errors.New("malformed request")

	// ErrInvalidAddress is returned when an address is not a 20-byte hex address
	ErrInvalidAddress = errors.New("invalid address")

	// ErrContractNotFound is returned when a contract does not exist on the chain
	ErrContractNotFound = errors.New("contract not found")

	// ErrTransactionNotFound is returned when a transaction does not exist on the chain
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrExtrinsicNotFound is returned when a transaction has no operation at the index
	ErrExtrinsicNotFound = errors.New("extrinsic not found")

	// ErrAssetNotFound is returned when a balance or instance does not exist
	ErrAssetNotFound = errors.New("asset not found")

	// ErrTokenNameTaken is returned when deploying a name that already exists
	ErrTokenNameTaken = errors.New("token name already taken")
)
