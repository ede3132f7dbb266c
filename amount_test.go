// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatXMR(t *testing.T) {
	assert.Equal(t, "0.000000000000", FormatXMR(0))
	assert.Equal(t, "0.000000000001", FormatXMR(1))
	assert.Equal(t, "1.000000000000", FormatXMR(AtomicUnitsPerXMR))
	assert.Equal(t, "18446744.073709551615", FormatXMR(math.MaxUint64))
}

func TestParseXMR(t *testing.T) {
	v, err := ParseXMR("1.5")
	require.NoError(t, err)
	assert.Equal(t, uint64(1_500_000_000_000), v)

	v, err = ParseXMR("0.000000000001")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	for _, bad := range []string{"", "abc", "-1", "0.0000000000001", "18446744.073709551616"} {
		_, err := ParseXMR(bad)
		assert.Error(t, err, bad)
	}
}
