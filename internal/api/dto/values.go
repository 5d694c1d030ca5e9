package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eos420/indexer-api/internal/bigint"
)

type amountKind uint8

const (
	amountU256 amountKind = iota
	amountU64
	amountF64
)

// AmountValue is a number rendered without a tag: a 256-bit integer as a 0x hex string,
// or a native integer or float as a JSON number
type AmountValue struct {
	kind amountKind
	u256 bigint.Uint256
	u64  uint64
	f64  float64
}

// U256 wraps a 256-bit integer
func U256(v bigint.Uint256) *AmountValue {
	return &AmountValue{kind: amountU256, u256: v}
}

// U64 wraps a native unsigned integer
func U64(v uint64) *AmountValue {
	return &AmountValue{kind: amountU64, u64: v}
}

// F64 wraps a display amount
func F64(v float64) *AmountValue {
	return &AmountValue{kind: amountF64, f64: v}
}

func (a AmountValue) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case amountU64:
		return json.Marshal(a.u64)
	case amountF64:
		return json.Marshal(a.f64)
	default:
		return a.u256.MarshalJSON()
	}
}

// BlockOrChainID is the block a transaction was included in,
// or only its chain while the transaction is unmined
type BlockOrChainID struct {
	block   *BlockResponse
	chainID string
}

// InBlock references a resolved block
func InBlock(b *BlockResponse) BlockOrChainID {
	return BlockOrChainID{block: b}
}

// OnChain references only a chain
func OnChain(chainID string) BlockOrChainID {
	return BlockOrChainID{chainID: chainID}
}

// Block returns the resolved block, if any
func (b BlockOrChainID) Block() (*BlockResponse, bool) {
	return b.block, b.block != nil
}

func (b BlockOrChainID) MarshalJSON() ([]byte, error) {
	if b.block != nil {
		return json.Marshal(b.block)
	}
	return json.Marshal(map[string]string{"chain_id": b.chainID})
}

// fields is a JSON object under construction
type fields map[string]json.RawMessage

// merge adds every field of v's JSON object. Keys get prefix unless they
// already start with one of the kept prefixes.
func (f fields) merge(v any, prefix string, keep ...string) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("cannot flatten %T: %w", v, err)
	}
	for k, val := range obj {
		f[prefixed(k, prefix, keep)] = val
	}
	return nil
}

func prefixed(key, prefix string, keep []string) string {
	for _, p := range keep {
		if strings.HasPrefix(key, p) {
			return key
		}
	}
	return prefix + key
}
