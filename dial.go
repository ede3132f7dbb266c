// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

// Dial creates a Client that talks JSON-RPC over HTTP to the node at addr.
// No connection is made until the first call.
func Dial(addr string, opts ...Option) (*Client, error) {
	caller, err := NewHTTPCaller(addr, opts...)
	if err != nil {
		return nil, err
	}
	return NewClient(caller), nil
}

// DialDaemon is Dial(addr, opts...).Daemon().
func DialDaemon(addr string, opts ...Option) (*DaemonClient, error) {
	c, err := Dial(addr, opts...)
	if err != nil {
		return nil, err
	}
	return c.Daemon(), nil
}

// DialWallet is Dial(addr, opts...).Wallet().
func DialWallet(addr string, opts ...Option) (*WalletClient, error) {
	c, err := Dial(addr, opts...)
	if err != nil {
		return nil, err
	}
	return c.Wallet(), nil
}
