// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/gorilla/rpc/v2/json2"
)

// Caller performs one JSON-RPC call and returns the raw result.
//
// A failure reported by the node is returned as *RPCError and anything below
// the JSON-RPC envelope as *TransportError. Callers interpret RPC error
// codes themselves; a Caller never does.
type Caller interface {
	Call(ctx context.Context, method string, params Params) (json.RawMessage, error)
}

// CallerFunc adapts a function to Caller.
type CallerFunc func(ctx context.Context, method string, params Params) (json.RawMessage, error)

func (f CallerFunc) Call(ctx context.Context, method string, params Params) (json.RawMessage, error) {
	return f(ctx, method, params)
}

// Client is the base client. Use Daemon or Wallet to get at the methods.
type Client struct {
	caller Caller
}

// NewClient wraps any Caller.
func NewClient(caller Caller) *Client {
	return &Client{caller: caller}
}

// Call sends a method that has no typed wrapper and returns the raw result.
func (c *Client) Call(ctx context.Context, method string, params Params) (json.RawMessage, error) {
	return c.caller.Call(ctx, method, params)
}

// Daemon returns a client for monerod.
func (c *Client) Daemon() *DaemonClient {
	return &DaemonClient{caller: c.caller}
}

// Wallet returns a client for monero-wallet-rpc.
func (c *Client) Wallet() *WalletClient {
	return &WalletClient{caller: c.caller}
}

func request[T any](ctx context.Context, c Caller, method string, params Params) (T, error) {
	raw, err := c.Call(ctx, method, params)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeResult[T](method, raw)
}

// requestOK decodes a daemon envelope and checks its status.
func requestOK[T any](ctx context.Context, c Caller, method string, params Params) (T, error) {
	env, err := request[Envelope[T]](ctx, c, method, params)
	if err != nil {
		var zero T
		return zero, err
	}
	return env.Unwrap()
}

func decodeResult[T any](method string, raw json.RawMessage) (T, error) {
	var v T
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return v, &DecodeError{Kind: ErrMalformed, Detail: method, Err: json2.ErrNullResult}
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			return v, de
		}
		return v, &DecodeError{Kind: ErrMalformed, Detail: method, Err: err}
	}
	return v, nil
}

// required returns the member key of a method's result, which the node must
// always send.
func required[T any](method, key string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, decodeErr(ErrMalformed, "%s: missing %s", method, key)
	}
	return *v, nil
}
