package models

import (
	"database/sql/driver"
	"fmt"
)

// IntBool wraps bool to accept the backend's flag encoding. Flags stored
// as SQLite integers (e.g. is_read) arrive as 0/1 rather than true/false;
// plain JSON booleans are still accepted.
type IntBool bool

// UnmarshalJSON parses 0/1 as well as true/false.
func (b *IntBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "0", "false", "null":
		*b = false
	case "1", "true":
		*b = true
	default:
		return fmt.Errorf("unrecognized boolean %q", data)
	}
	return nil
}

// MarshalJSON emits a plain JSON boolean.
func (b IntBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

// Value stores the flag as a native boolean.
func (b IntBool) Value() (driver.Value, error) {
	return bool(b), nil
}

// Scan reads back an integer or boolean column value.
func (b *IntBool) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*b = false
	case bool:
		*b = IntBool(v)
	case int64:
		*b = IntBool(v != 0)
	default:
		return fmt.Errorf("unsupported boolean value %T", src)
	}
	return nil
}
