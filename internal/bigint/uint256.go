package bigint

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// ByteLen is the fixed width of the byte representation
const ByteLen = 32

var (
	// ErrOverflow is raised when a result does not fit in 256 bits
	ErrOverflow = errors.New("uint256 overflow")
	// ErrUnderflow is raised when a subtraction would go below zero
	ErrUnderflow = errors.New("uint256 underflow")
	// ErrDivisionByZero is raised on division or modulo by zero
	ErrDivisionByZero = errors.New("uint256 division by zero")
	// ErrSyntax is returned when a string is not a decimal or 0x-prefixed hex number
	ErrSyntax = errors.New("invalid uint256 string")
	// ErrTooWide is returned when a byte slice is longer than 32 bytes
	ErrTooWide = errors.New("value wider than 256 bits")
)

// ArithmeticError is the panic value for arithmetic faults.
// These are never returned as errors: an overflow means the caller modeled an amount wrong.
type ArithmeticError struct {
	Op  string
	Err error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

// Unsigned is any native unsigned integer width
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Uint256 is an unsigned 256-bit integer with fail-fast arithmetic.
// The zero value is 0 and ready to use.
type Uint256 struct {
	v uint256.Int
}

// Zero returns 0
func Zero() Uint256 {
	return Uint256{}
}

// From converts any native unsigned value
func From[T Unsigned](n T) Uint256 {
	var u Uint256
	u.v.SetUint64(uint64(n))
	return u
}

// FromUint64 converts a uint64
func FromUint64(n uint64) Uint256 {
	return From(n)
}

// FromBig converts a big.Int, failing on negative or too-wide values
func FromBig(b *big.Int) (Uint256, error) {
	if b == nil || b.Sign() < 0 {
		return Uint256{}, ErrSyntax
	}
	var u Uint256
	if overflow := u.v.SetFromBig(b); overflow {
		return Uint256{}, ErrTooWide
	}
	return u, nil
}

// FromString parses a decimal string, or a hex string when prefixed with 0x/0X
func FromString(s string) (Uint256, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		s = s[2:]
	}
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Uint256{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Uint256{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return FromBig(b)
}

// FromStringOrZero parses s and falls back to zero on any failure
func FromStringOrZero(s string) Uint256 {
	u, err := FromString(s)
	if err != nil {
		return Uint256{}
	}
	return u
}

// MustFromString parses s and panics if it is malformed
func MustFromString(s string) Uint256 {
	u, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return u
}

// FromBytesBE reads a big-endian value of at most 32 bytes
func FromBytesBE(b []byte) (Uint256, error) {
	if len(b) > ByteLen {
		return Uint256{}, ErrTooWide
	}
	var u Uint256
	u.v.SetBytes(b)
	return u, nil
}

// FromBytesLE reads a little-endian value of at most 32 bytes
func FromBytesLE(b []byte) (Uint256, error) {
	if len(b) > ByteLen {
		return Uint256{}, ErrTooWide
	}
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return FromBytesBE(be)
}

// Pow10 returns 10^n, panicking if it does not fit
func Pow10(n uint) Uint256 {
	ten := From(uint64(10))
	result := From(uint64(1))
	for range n {
		result = result.Mul(ten)
	}
	return result
}

// Bytes32BE returns the 32-byte big-endian representation
func (u Uint256) Bytes32BE() [ByteLen]byte {
	return u.v.Bytes32()
}

// Bytes32LE returns the 32-byte little-endian representation
func (u Uint256) Bytes32LE() [ByteLen]byte {
	be := u.v.Bytes32()
	var le [ByteLen]byte
	for i := range be {
		le[ByteLen-1-i] = be[i]
	}
	return le
}

func (u Uint256) Add(o Uint256) Uint256 {
	var r Uint256
	if _, overflow := r.v.AddOverflow(&u.v, &o.v); overflow {
		panic(&ArithmeticError{Op: "add", Err: ErrOverflow})
	}
	return r
}

func (u Uint256) Sub(o Uint256) Uint256 {
	var r Uint256
	if _, underflow := r.v.SubOverflow(&u.v, &o.v); underflow {
		panic(&ArithmeticError{Op: "sub", Err: ErrUnderflow})
	}
	return r
}

func (u Uint256) Mul(o Uint256) Uint256 {
	var r Uint256
	if _, overflow := r.v.MulOverflow(&u.v, &o.v); overflow {
		panic(&ArithmeticError{Op: "mul", Err: ErrOverflow})
	}
	return r
}

// Div is truncating integer division
func (u Uint256) Div(o Uint256) Uint256 {
	if o.v.IsZero() {
		panic(&ArithmeticError{Op: "div", Err: ErrDivisionByZero})
	}
	var r Uint256
	r.v.Div(&u.v, &o.v)
	return r
}

func (u Uint256) Mod(o Uint256) Uint256 {
	if o.v.IsZero() {
		panic(&ArithmeticError{Op: "mod", Err: ErrDivisionByZero})
	}
	var r Uint256
	r.v.Mod(&u.v, &o.v)
	return r
}

func (u Uint256) AddUint64(n uint64) Uint256 { return u.Add(From(n)) }
func (u Uint256) SubUint64(n uint64) Uint256 { return u.Sub(From(n)) }
func (u Uint256) MulUint64(n uint64) Uint256 { return u.Mul(From(n)) }
func (u Uint256) DivUint64(n uint64) Uint256 { return u.Div(From(n)) }

// Cmp returns -1, 0 or +1
func (u Uint256) Cmp(o Uint256) int {
	return u.v.Cmp(&o.v)
}

func (u Uint256) Eq(o Uint256) bool {
	return u.v.Eq(&o.v)
}

func (u Uint256) IsZero() bool {
	return u.v.IsZero()
}

// IsUint64 reports whether the value fits in a uint64
func (u Uint256) IsUint64() bool {
	return u.v.IsUint64()
}

// Uint64 returns the low 64 bits
func (u Uint256) Uint64() uint64 {
	return u.v.Uint64()
}

// Float64 returns the nearest float64
func (u Uint256) Float64() float64 {
	f, _ := new(big.Float).SetInt(u.v.ToBig()).Float64()
	return f
}

// Big returns a copy as a big.Int
func (u Uint256) Big() *big.Int {
	return u.v.ToBig()
}

// String returns the decimal representation
func (u Uint256) String() string {
	return u.v.Dec()
}

// Text returns the representation in the given base without prefix
func (u Uint256) Text(base int) string {
	return u.v.ToBig().Text(base)
}

// Hex returns the 0x-prefixed lowercase hex representation
func (u Uint256) Hex() string {
	return "0x" + u.Text(16)
}

// UpperHex returns the 0x-prefixed uppercase hex representation
func (u Uint256) UpperHex() string {
	return "0x" + strings.ToUpper(u.Text(16))
}

// Binary returns the 0b-prefixed binary representation
func (u Uint256) Binary() string {
	return "0b" + u.Text(2)
}

// Octal returns the 0o-prefixed octal representation
func (u Uint256) Octal() string {
	return "0o" + u.Text(8)
}

// Format implements fmt.Formatter. The '#' flag adds the radix prefix.
func (u Uint256) Format(s fmt.State, verb rune) {
	var out string
	switch verb {
	case 'x':
		out = u.Text(16)
		if s.Flag('#') {
			out = "0x" + out
		}
	case 'X':
		out = strings.ToUpper(u.Text(16))
		if s.Flag('#') {
			out = "0x" + out
		}
	case 'b':
		out = u.Text(2)
		if s.Flag('#') {
			out = "0b" + out
		}
	case 'o':
		out = u.Text(8)
		if s.Flag('#') {
			out = "0o" + out
		}
	case 'd', 'v', 's':
		out = u.String()
	default:
		out = fmt.Sprintf("%%!%c(bigint.Uint256=%s)", verb, u.String())
	}
	_, _ = s.Write([]byte(out))
}

// MarshalJSON always emits a 0x-prefixed lowercase hex string
func (u Uint256) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Hex())
}

// UnmarshalJSON accepts a hex or decimal string, or a JSON number.
// Malformed input decodes to zero instead of failing the document.
func (u *Uint256) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		s = string(data)
	}
	*u = FromStringOrZero(s)
	return nil
}
