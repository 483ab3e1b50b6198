// Package cometbft implements the chain read interfaces over the CometBFT
// JSON-RPC and websocket endpoints of an AtomOne node.
package cometbft

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/photonscan/internal/txfeed"
	"github.com/gabapcia/photonscan/internal/txlookup"
)

type client struct {
	conn jsonrpc.Client
}

var (
	_ txfeed.Blockchain   = (*client)(nil)
	_ txlookup.Blockchain = (*client)(nil)
)

func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

func (c *client) call(ctx context.Context, method string, params map[string]any, v any) error {
	data, err := c.conn.Call(ctx, method, params)
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %w", chain.ErrNotFound, err)
		}
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, jsonrpc.ErrProviderReturnedError) && strings.Contains(err.Error(), "not found")
}

func (c *client) Status(ctx context.Context) (chain.Status, error) {
	var res statusResponse
	if err := c.call(ctx, "status", nil, &res); err != nil {
		return chain.Status{}, err
	}
	return res.toStatus(), nil
}

// BlockByHeight fetches the block at height. Heights below one are rejected
// without a request.
func (c *client) BlockByHeight(ctx context.Context, height int64) (chain.Block, error) {
	if height < 1 {
		return chain.Block{}, fmt.Errorf("%w: height %d", chain.ErrNotFound, height)
	}

	var res blockResponse
	if err := c.call(ctx, "block", map[string]any{"height": strconv.FormatInt(height, 10)}, &res); err != nil {
		return chain.Block{}, err
	}
	return res.toBlock(), nil
}

func (c *client) LatestBlock(ctx context.Context) (chain.Block, error) {
	var res blockResponse
	if err := c.call(ctx, "block", nil, &res); err != nil {
		return chain.Block{}, err
	}
	return res.toBlock(), nil
}

// TxByHash fetches the execution result of a committed transaction. hash is
// hex encoded.
func (c *client) TxByHash(ctx context.Context, hash string) (chain.TxResult, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(hash, "0x"), "0X"))
	if err != nil {
		return chain.TxResult{}, fmt.Errorf("invalid hash %q: %w", hash, err)
	}

	// []byte params travel base64 encoded, which json.Marshal does for us.
	var res txResponse
	if err := c.call(ctx, "tx", map[string]any{"hash": raw, "prove": false}, &res); err != nil {
		return chain.TxResult{}, err
	}
	return res.toTxResult(), nil
}

// SearchTxs runs a tx_search query, newest first.
func (c *client) SearchTxs(ctx context.Context, query string, page, perPage int) ([]chain.TxResult, error) {
	params := map[string]any{
		"query":    query,
		"prove":    false,
		"page":     strconv.Itoa(max(page, 1)),
		"per_page": strconv.Itoa(max(perPage, 1)),
		"order_by": "desc",
	}

	var res txSearchResponse
	if err := c.call(ctx, "tx_search", params, &res); err != nil {
		return nil, err
	}

	results := make([]chain.TxResult, 0, len(res.Txs))
	for _, tx := range res.Txs {
		results = append(results, tx.toTxResult())
	}
	return results, nil
}
