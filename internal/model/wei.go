package model

import (
	"bytes"
	"fmt"
	"math/big"
)

// Wei is an on-chain amount in the smallest unit, kept as its decimal text so large pools never overflow.
// It decodes from a JSON number or string.
type Wei string

var weiPerToken = new(big.Float).SetFloat64(1e18)

// UnmarshalJSON accepts 123, "123", null and "".
func (w *Wei) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || string(data) == "null" {
		*w = ""
		return nil
	}
	if _, _, err := big.ParseFloat(string(data), 10, 256, big.ToNearestEven); err != nil {
		return fmt.Errorf("invalid wei amount %q: %w", data, err)
	}
	*w = Wei(data)
	return nil
}

// MarshalJSON emits the amount as a JSON number.
func (w Wei) MarshalJSON() ([]byte, error) {
	if w == "" {
		return []byte("0"), nil
	}
	return []byte(w), nil
}

// Tokens converts the amount to whole tokens (wei / 1e18).
func (w Wei) Tokens() float64 {
	if w == "" {
		return 0
	}
	f, _, err := big.ParseFloat(string(w), 10, 256, big.ToNearestEven)
	if err != nil {
		return 0
	}
	v, _ := new(big.Float).Quo(f, weiPerToken).Float64()
	return v
}
