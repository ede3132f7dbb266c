// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/rpc/v2/json2"
	"go.uber.org/zap"
)

const jsonrpcVersion = "2.0"

type clientRequest struct {
	Version string  `json:"jsonrpc"`
	Method  string  `json:"method"`
	Params  *Params `json:"params,omitempty"`
	ID      string  `json:"id"`
}

type clientResponse struct {
	Version string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *json2.Error    `json:"error"`
	ID      json.RawMessage `json:"id"`
}

// HTTPCaller is the production Caller: one JSON-RPC 2.0 POST per call, no
// retries. It holds no per-call state and may be shared between goroutines.
type HTTPCaller struct {
	client   *http.Client
	endpoint string
	headers  http.Header
	newID    func() string
	log      *zap.Logger
	metrics  *Metrics
}

var _ Caller = (*HTTPCaller)(nil)

// NewHTTPCaller creates a caller for the node listening at addr, e.g.
// "http://127.0.0.1:18081".
func NewHTTPCaller(addr string, options ...Option) (*HTTPCaller, error) {
	uri, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse node address: %w", err)
	}
	if uri.Scheme == "" || uri.Host == "" {
		return nil, fmt.Errorf("node address %q must include scheme and host", addr)
	}

	ops := NewOptions(options)
	uri = uri.JoinPath(ops.path)
	uri.RawQuery = ops.queryParams.Encode()

	return &HTTPCaller{
		client:   ops.httpClient,
		endpoint: uri.String(),
		headers:  ops.headers,
		newID:    ops.newID,
		log:      ops.logger,
		metrics:  ops.metrics,
	}, nil
}

// Endpoint returns the URL requests are posted to.
func (c *HTTPCaller) Endpoint() string {
	return c.endpoint
}

// CleanlyCloseBody drains and closes an HTTP response body to prevent
// HTTP/2 GOAWAY errors caused by closing bodies with unread data.
// See: https://github.com/golang/go/issues/46071
func CleanlyCloseBody(body io.ReadCloser) error {
	if body == nil {
		return nil
	}
	_, _ = io.Copy(io.Discard, body)
	return body.Close()
}

func (c *HTTPCaller) Call(ctx context.Context, method string, params Params) (json.RawMessage, error) {
	id := c.newID()
	req := clientRequest{
		Version: jsonrpcVersion,
		Method:  method,
		ID:      id,
	}
	if !params.IsNone() {
		req.Params = &params
	}
	body, err := json.Marshal(&req)
	if err != nil {
		kind := ErrMalformed
		var de *DecodeError
		if errors.As(err, &de) {
			kind = de.Kind
		}
		return nil, &DecodeError{Kind: kind, Detail: method + " params", Err: err}
	}

	log := c.log.With(zap.String("method", method), zap.String("id", id))
	log.Debug("sending JSON-RPC request", zap.ByteString("body", body))

	start := time.Now()
	result, err := c.send(ctx, method, id, body)
	elapsed := time.Since(start)
	c.metrics.observe(method, err, elapsed)

	if err != nil {
		log.Debug("JSON-RPC call failed", zap.Duration("elapsed", elapsed), zap.Error(err))
		return nil, err
	}
	log.Debug("received JSON-RPC response", zap.Duration("elapsed", elapsed), zap.Int("size", len(result)))
	return result, nil
}

func (c *HTTPCaller) send(ctx context.Context, method, id string, body []byte) (json.RawMessage, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Method: method, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	request.Header = c.headers.Clone()
	request.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(request)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	defer CleanlyCloseBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Method: method, StatusCode: resp.StatusCode}
	}

	var rsp clientResponse
	if err := json.NewDecoder(resp.Body).Decode(&rsp); err != nil {
		return nil, &TransportError{Method: method, Err: fmt.Errorf("failed to decode client response: %w", err)}
	}
	if err := checkResponseID(rsp.ID, id); err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	if rsp.Error != nil {
		return nil, &RPCError{
			Method:  method,
			Code:    rsp.Error.Code,
			Message: rsp.Error.Message,
			Data:    rsp.Error.Data,
		}
	}
	if len(rsp.Result) == 0 {
		return nil, &TransportError{Method: method, Err: json2.ErrNullResult}
	}
	return rsp.Result, nil
}

// checkResponseID rejects a response that answers some other request. A
// null or missing id is let through since nodes send one on parse errors.
func checkResponseID(raw json.RawMessage, want string) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var got string
	if err := json.Unmarshal(raw, &got); err != nil || got != want {
		return fmt.Errorf("response id %s does not match request id %q", raw, want)
	}
	return nil
}
