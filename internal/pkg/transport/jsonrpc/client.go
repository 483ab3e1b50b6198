// Package jsonrpc provides a JSON-RPC 2.0 client over HTTP using named
// (object) parameters, as expected by CometBFT and other Tendermint-family
// nodes.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
var ErrProviderReturnedError = errors.New("provider error")

// rpcError is the error object of a JSON-RPC 2.0 response. CometBFT puts the
// useful detail (e.g. "tx (ABC) not found") in Data.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Error   *rpcError       `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns an error if the response includes a JSON-RPC error object.
// It wraps ErrProviderReturnedError with the code, message and data.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	if r.Error.Data != "" {
		return fmt.Errorf("%w: [%d] - %s: %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message, r.Error.Data)
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client defines the interface for a JSON-RPC client.
type Client interface {
	// Call sends a JSON-RPC request with the given method name and named
	// parameters. It returns the raw JSON result or an error if the request or
	// response fails.
	Call(ctx context.Context, method string, params map[string]any) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
type client struct {
	providerEndpoint string
	httpClient       *http.Client
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Call sends a JSON-RPC request to the remote server. The request id is a
// random UUID. A nil params map is sent as an empty object.
func (c *client) Call(ctx context.Context, method string, params map[string]any) (json.RawMessage, error) {
	if params == nil {
		params = map[string]any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode %s response (status %d): %w", method, res.StatusCode, err)
	}

	return data.Result, data.Err()
}

// NewClient constructs a Client that sends requests to providerEndpoint
// using httpClient.
func NewClient(httpClient *http.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
