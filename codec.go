// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// StatusOK is the status token the daemon puts in every successful envelope.
const StatusOK = "OK"

func decodeHex(text []byte, size int) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, decodeErr(ErrInvalidHex, "odd length %d", len(text))
	}
	b := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(b, text); err != nil {
		return nil, &DecodeError{Kind: ErrInvalidHex, Err: err}
	}
	if size >= 0 && len(b) != size {
		return nil, decodeErr(ErrWrongLength, "got %d bytes, want %d", len(b), size)
	}
	return b, nil
}

func decodeFixedHex(dst []byte, text []byte) error {
	b, err := decodeHex(text, len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// HexBytes is a variable length byte string carried as lowercase hex.
type HexBytes []byte

func (h HexBytes) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(h)), nil
}

func (h *HexBytes) UnmarshalText(text []byte) error {
	b, err := decodeHex(text, -1)
	if err != nil {
		return err
	}
	*h = b
	return nil
}

func (h HexBytes) String() string {
	return hex.EncodeToString(h)
}

// Hash is a 32 byte block hash, transaction id or transaction key.
type Hash [32]byte

// ParseHash decodes a 64 character hex string.
func ParseHash(s string) (Hash, error) {
	var h Hash
	err := h.UnmarshalText([]byte(s))
	return h, err
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(h[:])), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	return decodeFixedHex(h[:], text)
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// PaymentID is a short (8 byte) payment id.
type PaymentID [8]byte

// ParsePaymentID decodes a 16 character hex string.
func ParsePaymentID(s string) (PaymentID, error) {
	var p PaymentID
	err := p.UnmarshalText([]byte(s))
	return p, err
}

func (p PaymentID) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(p[:])), nil
}

func (p *PaymentID) UnmarshalText(text []byte) error {
	return decodeFixedHex(p[:], text)
}

func (p PaymentID) String() string {
	return hex.EncodeToString(p[:])
}

// PrivateKey is a 32 byte view or spend key.
type PrivateKey [32]byte

func (k PrivateKey) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(k[:])), nil
}

func (k *PrivateKey) UnmarshalText(text []byte) error {
	return decodeFixedHex(k[:], text)
}

func (k PrivateKey) String() string {
	return hex.EncodeToString(k[:])
}

// Address is a standard, integrated or sub-address in its base58 form.
// Validation is left to the node.
type Address string

func (a Address) String() string {
	return string(a)
}

// Priority is the fee tier of an outgoing transfer.
type Priority int

const (
	PriorityDefault Priority = iota
	PriorityUnimportant
	PriorityElevated
	PriorityPriority
)

var priorityWire = []struct {
	p    Priority
	wire uint8
	name string
}{
	{PriorityDefault, 0, "default"},
	{PriorityUnimportant, 1, "unimportant"},
	{PriorityElevated, 2, "elevated"},
	{PriorityPriority, 3, "priority"},
}

// EncodePriority returns the node's integer for p.
func EncodePriority(p Priority) (uint8, error) {
	for _, e := range priorityWire {
		if e.p == p {
			return e.wire, nil
		}
	}
	return 0, decodeErr(ErrOutOfRange, "priority %d", int(p))
}

// DecodePriority maps the node's integer back to a Priority. Anything
// outside 0-3 is rejected.
func DecodePriority(v uint64) (Priority, error) {
	for _, e := range priorityWire {
		if uint64(e.wire) == v {
			return e.p, nil
		}
	}
	return 0, decodeErr(ErrOutOfRange, "priority %d, expected 0-3", v)
}

// ParsePriority accepts the names returned by String.
func ParsePriority(s string) (Priority, error) {
	for _, e := range priorityWire {
		if e.name == s {
			return e.p, nil
		}
	}
	return 0, fmt.Errorf("unknown priority %q", s)
}

func (p Priority) String() string {
	for _, e := range priorityWire {
		if e.p == p {
			return e.name
		}
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

func (p Priority) MarshalJSON() ([]byte, error) {
	v, err := EncodePriority(p)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	var v uint64
	if err := json.Unmarshal(data, &v); err != nil {
		return &DecodeError{Kind: ErrMalformed, Detail: "priority", Err: err}
	}
	d, err := DecodePriority(v)
	if err != nil {
		return err
	}
	*p = d
	return nil
}

// Envelope is the daemon's status carrying wrapper. The payload fields sit
// next to status and untrusted in the same JSON object.
type Envelope[T any] struct {
	Status    string
	Untrusted bool
	Result    T
}

func (e *Envelope[T]) UnmarshalJSON(data []byte) error {
	var head struct {
		Status    string `json:"status"`
		Untrusted bool   `json:"untrusted"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &e.Result); err != nil {
		return err
	}
	e.Status = head.Status
	e.Untrusted = head.Untrusted
	return nil
}

// Unwrap returns the payload, or an ErrBadStatus decode error when the node
// did not report StatusOK.
func (e *Envelope[T]) Unwrap() (T, error) {
	if e.Status != StatusOK {
		var zero T
		return zero, decodeErr(ErrBadStatus, "%q", e.Status)
	}
	return e.Result, nil
}

// SubaddressIndex identifies an address: Major is the account, Minor the
// address within it. This is the nested {major, minor} wire shape; some
// requests and responses spell the same pair out flat as
// account_index/address_index instead.
type SubaddressIndex struct {
	Major uint32 `json:"major"`
	Minor uint32 `json:"minor"`
}
