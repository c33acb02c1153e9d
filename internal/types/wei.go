package types

import (
	"fmt"
	"math/big"
)

// Monetary amounts are carried end to end as decimal wei strings: event
// payloads, schema columns (numeric(78,0)) and aggregates all use the same
// representation, with big.Int arithmetic in between.

// ParseWei parses a decimal wei string. Empty strings parse to zero.
func ParseWei(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid wei amount: %q", s)
	}

	return v, nil
}

// FormatWei formats a big.Int as a decimal wei string. Nil formats to "0".
func FormatWei(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

// AddWei returns a + delta where a is a wei string
func AddWei(a string, delta *big.Int) (string, error) {
	v, err := ParseWei(a)
	if err != nil {
		return "", err
	}
	return FormatWei(v.Add(v, delta)), nil
}

// SubWei returns a - delta where a is a wei string
func SubWei(a string, delta *big.Int) (string, error) {
	v, err := ParseWei(a)
	if err != nil {
		return "", err
	}
	return FormatWei(v.Sub(v, delta)), nil
}

// SubWeiFloor returns a - delta clamped at zero, and whether clamping occurred
func SubWeiFloor(a string, delta *big.Int) (string, bool, error) {
	v, err := ParseWei(a)
	if err != nil {
		return "", false, err
	}

	v.Sub(v, delta)
	if v.Sign() < 0 {
		return "0", true, nil
	}

	return FormatWei(v), false, nil
}
