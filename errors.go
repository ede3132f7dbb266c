// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"errors"
	"fmt"

	"github.com/gorilla/rpc/v2/json2"
)

// CodeWrongTxID is returned by get_transfer_by_txid when the wallet has no
// transfer with the requested id.
const CodeWrongTxID json2.ErrorCode = -8

// Decode failure kinds. Match them with errors.Is.
var (
	ErrInvalidHex  = errors.New("invalid hex")
	ErrWrongLength = errors.New("wrong length")
	ErrOutOfRange  = errors.New("out of range")
	ErrBadStatus   = errors.New("bad status")
	ErrOverflow    = errors.New("numeric overflow")
	ErrMalformed   = errors.New("malformed result")
)

// DecodeError reports a wire value that could not be turned into its
// typed form.
type DecodeError struct {
	Kind   error
	Detail string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func decodeErr(kind error, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// RPCError is a failure reported by the node inside a well-formed JSON-RPC
// response. The code is passed through untouched.
type RPCError struct {
	Method  string
	Code    json2.ErrorCode
	Message string
	Data    interface{}
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc %s: code %d: %s", e.Method, e.Code, e.Message)
}

// IsRPCError checks whether an error is an RPCError and returns it.
func IsRPCError(err error) (*RPCError, bool) {
	var r *RPCError
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// TransportError is a failure below the JSON-RPC envelope: the request never
// reached the node, the node answered with a non-2xx status, or the body was
// not a JSON-RPC response.
type TransportError struct {
	Method     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport %s: received status code %d", e.Method, e.StatusCode)
	}
	return fmt.Sprintf("transport %s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError checks whether an error is a TransportError and returns it.
func IsTransportError(err error) (*TransportError, bool) {
	var t *TransportError
	if errors.As(err, &t) {
		return t, true
	}
	return nil, false
}
