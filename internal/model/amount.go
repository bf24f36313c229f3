package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountMissing   = errors.New("amount is missing")
	ErrAmountNegative  = errors.New("amount is negative")
	ErrAmountPrecision = errors.New("amount has more than two decimal places")
	ErrAmountTooLarge  = errors.New("amount is too large")
)

// Amounts are stored as NUMERIC(12, 2).
var maxAmount = decimal.New(1, 10)

// ParseAmount accepts a JSON number or a numeric string that fits a
// NUMERIC(12, 2) column. Numbers are parsed from their literal text so no
// precision is lost.
func ParseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, ErrAmountMissing
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, err
		}
		text = strings.TrimSpace(s)
		if text == "" {
			return decimal.Zero, ErrAmountMissing
		}
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, ErrAmountNegative
	}
	if !d.Equal(d.Truncate(2)) {
		return decimal.Zero, ErrAmountPrecision
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, ErrAmountTooLarge
	}
	return d, nil
}
