package bigint

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements sql.Scanner. Columns hold decimal or 0x-prefixed text.
func (u *Uint256) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*u = Zero()
		return nil
	case string:
		return u.scanString(v)
	case []byte:
		return u.scanString(string(v))
	case int64:
		if v < 0 {
			return fmt.Errorf("failed to scan uint256: negative value %d", v)
		}
		*u = FromUint64(uint64(v))
		return nil
	default:
		return fmt.Errorf("failed to scan uint256: unsupported type %T", src)
	}
}

func (u *Uint256) scanString(s string) error {
	parsed, err := FromString(s)
	if err != nil {
		return fmt.Errorf("failed to scan uint256: %w", err)
	}
	*u = parsed
	return nil
}

// Value implements driver.Valuer, storing decimal text
func (u Uint256) Value() (driver.Value, error) {
	return u.String(), nil
}
