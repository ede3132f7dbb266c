// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

type paramsKind uint8

const (
	paramsNone paramsKind = iota
	paramsPositional
	paramsNamed
)

// Params is the parameter payload of one call. It holds a sequence, not a
// collection: values are produced only when the request is encoded. The
// zero value carries no params at all, which is different from an empty
// array or object on the wire.
type Params struct {
	kind   paramsKind
	values iter.Seq[interface{}]
	pairs  iter.Seq2[string, interface{}]
}

// NoParams is the payload of methods that take nothing.
func NoParams() Params {
	return Params{}
}

// Positional builds an array payload.
func Positional(values iter.Seq[interface{}]) Params {
	return Params{kind: paramsPositional, values: values}
}

// Named builds an object payload. Keys are written in the order the
// sequence yields them and must be unique.
func Named(pairs iter.Seq2[string, interface{}]) Params {
	return Params{kind: paramsNamed, pairs: pairs}
}

// IsNone reports whether p carries no params.
func (p Params) IsNone() bool {
	return p.kind == paramsNone
}

func (p Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	switch p.kind {
	case paramsPositional:
		buf.WriteByte('[')
		i := 0
		for v := range p.values {
			b, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("param %d: %w", i, err)
			}
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(b)
			i++
		}
		buf.WriteByte(']')
	case paramsNamed:
		seen := make(map[string]struct{})
		buf.WriteByte('{')
		for k, v := range p.pairs {
			if _, dup := seen[k]; dup {
				return nil, fmt.Errorf("duplicate param %q", k)
			}
			seen[k] = struct{}{}
			key, _ := json.Marshal(k)
			b, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("param %q: %w", k, err)
			}
			if len(seen) > 1 {
				buf.WriteByte(',')
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(b)
		}
		buf.WriteByte('}')
	default:
		return []byte("null"), nil
	}
	return buf.Bytes(), nil
}

// Values yields vs in order.
func Values(vs ...interface{}) iter.Seq[interface{}] {
	return func(yield func(interface{}) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

// OptValue yields *v when v is set and nothing otherwise.
func OptValue[T any](v *T) iter.Seq[interface{}] {
	return func(yield func(interface{}) bool) {
		if v != nil {
			yield(*v)
		}
	}
}

// ChainValues concatenates value sequences.
func ChainValues(seqs ...iter.Seq[interface{}]) iter.Seq[interface{}] {
	return func(yield func(interface{}) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Pair yields a single named param.
func Pair(key string, v interface{}) iter.Seq2[string, interface{}] {
	return func(yield func(string, interface{}) bool) {
		yield(key, v)
	}
}

// Opt yields key with *v when v is set. An unset option produces no key at
// all, never a null.
func Opt[T any](key string, v *T) iter.Seq2[string, interface{}] {
	return func(yield func(string, interface{}) bool) {
		if v != nil {
			yield(key, *v)
		}
	}
}

// OptSlice yields key with v unless v is nil. A non-nil empty slice is sent
// as [].
func OptSlice[T any](key string, v []T) iter.Seq2[string, interface{}] {
	return func(yield func(string, interface{}) bool) {
		if v != nil {
			yield(key, v)
		}
	}
}

// When yields seq only if cond holds.
func When(cond bool, seq iter.Seq2[string, interface{}]) iter.Seq2[string, interface{}] {
	return func(yield func(string, interface{}) bool) {
		if !cond {
			return
		}
		for k, v := range seq {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Chain concatenates named param sequences.
func Chain(seqs ...iter.Seq2[string, interface{}]) iter.Seq2[string, interface{}] {
	return func(yield func(string, interface{}) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}
