package cache

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies a lookup by the exact encoding of its parameters
type Key string

// KeyOf encodes the lookup parameters into a Key. Each part is written as its
// dynamic type and its value, both length-prefixed, so distinct parameter
// lists never share a Key and ("1", 1) differs from (1, "1").
// Parts must be values, not pointers.
func KeyOf(parts ...any) Key {
	var b strings.Builder
	for _, p := range parts {
		writeField(&b, fmt.Sprintf("%T", p))
		writeField(&b, fmt.Sprint(p))
	}
	return Key(b.String())
}

func writeField(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}
