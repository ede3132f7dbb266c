// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// AtomicUnitsPerXMR is 10^12: one XMR in piconero.
const AtomicUnitsPerXMR = 1_000_000_000_000

const xmrDecimals = 12

func fromAtomic(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

// FormatXMR renders an atomic amount as XMR with all 12 decimals.
func FormatXMR(atomic uint64) string {
	return fromAtomic(atomic).Shift(-xmrDecimals).StringFixed(xmrDecimals)
}

// ParseXMR converts an XMR amount such as "1.5" to atomic units.
func ParseXMR(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("invalid amount %q: negative", s)
	}
	atomic := d.Shift(xmrDecimals)
	if !atomic.Equal(atomic.Truncate(0)) {
		return 0, fmt.Errorf("invalid amount %q: more than %d decimals", s, xmrDecimals)
	}
	if atomic.GreaterThan(fromAtomic(math.MaxUint64)) {
		return 0, fmt.Errorf("invalid amount %q: overflows uint64", s)
	}
	return atomic.BigInt().Uint64(), nil
}
