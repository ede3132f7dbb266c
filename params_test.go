// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"encoding/json"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalParams(t *testing.T, p Params) string {
	t.Helper()
	b, err := json.Marshal(p)
	require.NoError(t, err)
	return string(b)
}

func TestParamsKinds(t *testing.T) {
	assert.Equal(t, "null", marshalParams(t, NoParams()))
	assert.True(t, NoParams().IsNone())

	assert.Equal(t, "[]", marshalParams(t, Positional(Values())))
	assert.False(t, Positional(Values()).IsNone())

	assert.Equal(t, "{}", marshalParams(t, Named(Chain())))
	assert.False(t, Named(Chain()).IsNone())
}

func TestPositionalParams(t *testing.T) {
	var missing *uint64
	present := uint64(9)

	p := Positional(ChainValues(
		Values(uint64(1), "two"),
		OptValue(missing),
		OptValue(&present),
	))
	assert.Equal(t, `[1,"two",9]`, marshalParams(t, p))
}

func TestNamedParamsKeepOrder(t *testing.T) {
	p := Named(Chain(
		Pair("zeta", 1),
		Pair("alpha", 2),
		Pair("mid", "x"),
	))
	assert.Equal(t, `{"zeta":1,"alpha":2,"mid":"x"}`, marshalParams(t, p))
}

func TestNamedParamsOmitUnset(t *testing.T) {
	var label *string
	var indices []uint32
	account := uint32(0)

	p := Named(Chain(
		Opt("account_index", &account),
		Opt("label", label),
		OptSlice("address_index", indices),
	))
	out := marshalParams(t, p)
	assert.Equal(t, `{"account_index":0}`, out)
	assert.NotContains(t, out, "null")

	p = Named(OptSlice("address_index", []uint32{}))
	assert.Equal(t, `{"address_index":[]}`, marshalParams(t, p))
}

func TestWhen(t *testing.T) {
	assert.Equal(t, `{}`, marshalParams(t, Named(When(false, Pair("a", 1)))))
	assert.Equal(t, `{"a":1}`, marshalParams(t, Named(When(true, Pair("a", 1)))))
}

func TestNamedParamsRejectDuplicates(t *testing.T) {
	_, err := json.Marshal(Named(Chain(Pair("a", 1), Pair("a", 2))))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate param "a"`)
}

func TestParamsAreLazy(t *testing.T) {
	evaluated := 0
	var seq iter.Seq2[string, interface{}] = func(yield func(string, interface{}) bool) {
		evaluated++
		yield("k", "v")
	}

	p := Named(Chain(Pair("first", 1), seq))
	assert.Equal(t, 0, evaluated)

	assert.Equal(t, `{"first":1,"k":"v"}`, marshalParams(t, p))
	assert.Equal(t, 1, evaluated)
}

func TestParamEncodeErrorsSurface(t *testing.T) {
	_, err := json.Marshal(Named(Pair("priority", Priority(9))))
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = json.Marshal(Positional(Values(Priority(9))))
	assert.ErrorIs(t, err, ErrOutOfRange)
}
