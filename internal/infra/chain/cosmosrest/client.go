// Package cosmosrest talks to the Cosmos SDK REST gateway of an AtomOne
// node: bank queries and transaction broadcast.
package cosmosrest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/mint"
)

const broadcastModeSync = "BROADCAST_MODE_SYNC"

var ErrRequestFailed = errors.New("rest request failed")

type (
	coinResponse struct {
		Denom  string `json:"denom"`
		Amount string `json:"amount"`
	}

	supplyResponse struct {
		Amount coinResponse `json:"amount"`
	}

	balanceResponse struct {
		Balance coinResponse `json:"balance"`
	}

	broadcastRequest struct {
		TxBytes []byte `json:"tx_bytes"`
		Mode    string `json:"mode"`
	}

	broadcastResponse struct {
		TxResponse struct {
			TxHash    string `json:"txhash"`
			Code      uint32 `json:"code"`
			Codespace string `json:"codespace"`
			RawLog    string `json:"raw_log"`
		} `json:"tx_response"`
	}

	// errorResponse is the grpc-gateway error body.
	errorResponse struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
)

func (c coinResponse) toCoin() chain.Coin {
	return chain.Coin{Amount: c.Amount, Denom: c.Denom}
}

type client struct {
	endpoint   string
	httpClient *http.Client
}

var _ mint.Bank = (*client)(nil)

func NewClient(httpClient *http.Client, endpoint string) *client {
	return &client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: httpClient,
	}
}

func (c *client) do(ctx context.Context, method, path string, query url.Values, body, v any) error {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode >= http.StatusBadRequest {
		var errRes errorResponse
		if json.Unmarshal(data, &errRes) == nil && errRes.Message != "" {
			if res.StatusCode == http.StatusNotFound {
				return fmt.Errorf("%w: %w: %s", chain.ErrNotFound, ErrRequestFailed, errRes.Message)
			}
			return fmt.Errorf("%w: [%d] %s", ErrRequestFailed, errRes.Code, errRes.Message)
		}
		return fmt.Errorf("%w: status %d", ErrRequestFailed, res.StatusCode)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// SupplyOf returns the total supply of denom in micro units.
func (c *client) SupplyOf(ctx context.Context, denom string) (chain.Coin, error) {
	var res supplyResponse
	if err := c.do(ctx, http.MethodGet, "/cosmos/bank/v1beta1/supply/by_denom", url.Values{"denom": {denom}}, nil, &res); err != nil {
		return chain.Coin{}, err
	}

	coin := res.Amount.toCoin()
	if coin.Amount == "" {
		coin.Amount = "0"
	}
	return coin, nil
}

// Balance returns the balance of address in denom. Accounts without the
// denom report zero.
func (c *client) Balance(ctx context.Context, address, denom string) (chain.Coin, error) {
	path := "/cosmos/bank/v1beta1/balances/" + url.PathEscape(address) + "/by_denom"

	var res balanceResponse
	if err := c.do(ctx, http.MethodGet, path, url.Values{"denom": {denom}}, nil, &res); err != nil {
		return chain.Coin{}, err
	}

	coin := res.Balance.toCoin()
	if coin.Amount == "" {
		coin = chain.Coin{Amount: "0", Denom: denom}
	}
	return coin, nil
}

// Broadcast submits signed TxRaw bytes in sync mode. Check failures are
// reported through the result code, not as an error.
func (c *client) Broadcast(ctx context.Context, txBytes []byte) (chain.BroadcastResult, error) {
	var res broadcastResponse
	req := broadcastRequest{TxBytes: txBytes, Mode: broadcastModeSync}
	if err := c.do(ctx, http.MethodPost, "/cosmos/tx/v1beta1/txs", nil, req, &res); err != nil {
		return chain.BroadcastResult{}, err
	}

	return chain.BroadcastResult{
		TxHash:    res.TxResponse.TxHash,
		Code:      res.TxResponse.Code,
		Codespace: res.TxResponse.Codespace,
		RawLog:    res.TxResponse.RawLog,
	}, nil
}
