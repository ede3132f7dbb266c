// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultEndpointPath is where both monerod and monero-wallet-rpc serve
// JSON-RPC.
const DefaultEndpointPath = "/json_rpc"

// Option configures an HTTPCaller.
type Option func(*Options)

// Options is the resolved HTTPCaller configuration.
type Options struct {
	httpClient  *http.Client
	headers     http.Header
	queryParams url.Values
	path        string
	newID       func() string
	logger      *zap.Logger
	metrics     *Metrics
}

// NewOptions applies ops on top of the defaults.
func NewOptions(ops []Option) *Options {
	o := &Options{
		httpClient:  &http.Client{},
		headers:     http.Header{},
		queryParams: url.Values{},
		path:        DefaultEndpointPath,
		newID:       uuid.NewString,
		logger:      zap.NewNop(),
	}
	for _, op := range ops {
		op(o)
	}
	return o
}

// WithHTTPClient sets the client used for every call. It is shared by all
// calls and must be safe for concurrent use.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) { o.httpClient = c }
}

// WithHeader sets a header sent with every request.
func WithHeader(key, value string) Option {
	return func(o *Options) { o.headers.Set(key, value) }
}

// WithQueryParam adds a query parameter to the endpoint url.
func WithQueryParam(key, value string) Option {
	return func(o *Options) { o.queryParams.Set(key, value) }
}

// WithEndpointPath overrides DefaultEndpointPath.
func WithEndpointPath(path string) Option {
	return func(o *Options) { o.path = path }
}

// WithIDGenerator replaces the uuid based request id generator.
func WithIDGenerator(f func() string) Option {
	return func(o *Options) { o.newID = f }
}

// WithLogger sets the logger. Calls are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithMetrics records every call in m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}
