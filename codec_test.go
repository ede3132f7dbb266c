// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexBytesRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 8, 32, 255, 1024} {
		b := make([]byte, n)
		_, err := rand.Read(b)
		require.NoError(t, err)

		text, err := HexBytes(b).MarshalText()
		require.NoError(t, err)
		require.Equal(t, strings.ToLower(string(text)), string(text))

		var got HexBytes
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, b, []byte(got))
	}
}

func TestHexDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
	}{
		{name: "odd length", input: "abc", kind: ErrInvalidHex},
		{name: "non hex", input: "zz", kind: ErrInvalidHex},
		{name: "short hash", input: "abcd", kind: ErrWrongLength},
		{name: "long hash", input: strings.Repeat("00", 33), kind: ErrWrongLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Hash
			err := h.UnmarshalText([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var de *DecodeError
			assert.True(t, errors.As(err, &de))
		})
	}
}

func TestHashJSON(t *testing.T) {
	s := strings.Repeat("0f", 32)
	h, err := ParseHash(s)
	require.NoError(t, err)
	assert.Equal(t, byte(0x0f), h[31])

	b, err := json.Marshal(h)
	require.NoError(t, err)
	assert.Equal(t, `"`+s+`"`, string(b))

	upper, err := ParseHash(strings.ToUpper(s))
	require.NoError(t, err)
	assert.Equal(t, h, upper)

	var fromJSON struct {
		TxID Hash `json:"txid"`
	}
	err = json.Unmarshal([]byte(`{"txid":"1234"}`), &fromJSON)
	assert.ErrorIs(t, err, ErrWrongLength)
}

func TestPaymentID(t *testing.T) {
	p, err := ParsePaymentID("0102030405060708")
	require.NoError(t, err)
	assert.Equal(t, PaymentID{1, 2, 3, 4, 5, 6, 7, 8}, p)
	assert.Equal(t, "0102030405060708", p.String())

	_, err = ParsePaymentID(strings.Repeat("00", 32))
	assert.ErrorIs(t, err, ErrWrongLength)
}

func TestPriorityRoundTrip(t *testing.T) {
	for _, p := range []Priority{PriorityDefault, PriorityUnimportant, PriorityElevated, PriorityPriority} {
		v, err := EncodePriority(p)
		require.NoError(t, err)
		assert.LessOrEqual(t, v, uint8(3))

		got, err := DecodePriority(uint64(v))
		require.NoError(t, err)
		assert.Equal(t, p, got)

		b, err := json.Marshal(p)
		require.NoError(t, err)
		var fromJSON Priority
		require.NoError(t, json.Unmarshal(b, &fromJSON))
		assert.Equal(t, p, fromJSON)
	}
}

func TestPriorityWireValues(t *testing.T) {
	b, err := json.Marshal(PriorityElevated)
	require.NoError(t, err)
	assert.Equal(t, "2", string(b))

	p, err := ParsePriority("unimportant")
	require.NoError(t, err)
	assert.Equal(t, PriorityUnimportant, p)
}

func TestPriorityOutOfRange(t *testing.T) {
	for _, v := range []uint64{4, 255} {
		_, err := DecodePriority(v)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}

	var p Priority
	assert.ErrorIs(t, json.Unmarshal([]byte("4"), &p), ErrOutOfRange)
	assert.ErrorIs(t, json.Unmarshal([]byte("-1"), &p), ErrMalformed)

	_, err := json.Marshal(Priority(7))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestEnvelope(t *testing.T) {
	type payload struct {
		Count uint64 `json:"count"`
	}

	t.Run("ok", func(t *testing.T) {
		var env Envelope[payload]
		require.NoError(t, json.Unmarshal([]byte(`{"count":7,"status":"OK","untrusted":true}`), &env))
		got, err := env.Unwrap()
		require.NoError(t, err)
		assert.Equal(t, uint64(7), got.Count)
		assert.True(t, env.Untrusted)
	})

	for _, status := range []string{"BUSY", "Failed", "", "ok"} {
		t.Run("status "+status, func(t *testing.T) {
			var env Envelope[payload]
			require.NoError(t, json.Unmarshal([]byte(`{"count":7,"status":"`+status+`"}`), &env))
			got, err := env.Unwrap()
			assert.ErrorIs(t, err, ErrBadStatus)
			assert.Zero(t, got.Count)
		})
	}
}

func TestSubaddressIndexShapes(t *testing.T) {
	b, err := json.Marshal(SubaddressIndex{Major: 1, Minor: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"major":1,"minor":2}`, string(b))

	var bal SubaddressBalance
	require.NoError(t, json.Unmarshal([]byte(`{"account_index":3,"address_index":4}`), &bal))
	assert.Equal(t, SubaddressIndex{Major: 3, Minor: 4}, bal.Index())
}
