package cometbft

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/photonscan/internal/chain"
)

// int64String decodes CometBFT integers, which are sent as JSON strings.
type int64String int64

func (i *int64String) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*i = 0
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", data, err)
	}

	*i = int64String(v)
	return nil
}

type (
	statusResponse struct {
		NodeInfo struct {
			Network string `json:"network"`
		} `json:"node_info"`
		SyncInfo struct {
			LatestBlockHeight int64String `json:"latest_block_height"`
			LatestBlockTime   time.Time   `json:"latest_block_time"`
		} `json:"sync_info"`
	}

	headerResponse struct {
		ChainID string      `json:"chain_id"`
		Height  int64String `json:"height"`
		Time    time.Time   `json:"time"`
	}

	blockResponse struct {
		Block struct {
			Header headerResponse `json:"header"`
			Data   struct {
				Txs [][]byte `json:"txs"`
			} `json:"data"`
		} `json:"block"`
	}

	attributeResponse struct {
		Key   string `json:"key"`
		Value string `json:"value"`
		Index bool   `json:"index"`
	}

	eventResponse struct {
		Type       string              `json:"type"`
		Attributes []attributeResponse `json:"attributes"`
	}

	txResultResponse struct {
		Code      uint32          `json:"code"`
		Codespace string          `json:"codespace"`
		Log       string          `json:"log"`
		GasWanted int64String     `json:"gas_wanted"`
		GasUsed   int64String     `json:"gas_used"`
		Events    []eventResponse `json:"events"`
	}

	txResponse struct {
		Hash     string           `json:"hash"`
		Height   int64String      `json:"height"`
		Index    int              `json:"index"`
		TxResult txResultResponse `json:"tx_result"`
		Tx       []byte           `json:"tx"`
	}

	txSearchResponse struct {
		Txs        []txResponse `json:"txs"`
		TotalCount int64String  `json:"total_count"`
	}

	newBlockEvent struct {
		Query string `json:"query"`
		Data  struct {
			Type  string `json:"type"`
			Value struct {
				Block struct {
					Header headerResponse `json:"header"`
				} `json:"block"`
			} `json:"value"`
		} `json:"data"`
	}

	wsMessage struct {
		ID     json.RawMessage `json:"id"`
		Result json.RawMessage `json:"result"`
		Error  *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Data    string `json:"data"`
		} `json:"error"`
	}
)

func (s statusResponse) toStatus() chain.Status {
	return chain.Status{
		ChainID:         s.NodeInfo.Network,
		LatestHeight:    int64(s.SyncInfo.LatestBlockHeight),
		LatestBlockTime: s.SyncInfo.LatestBlockTime,
	}
}

func (b blockResponse) toBlock() chain.Block {
	return chain.Block{
		ChainID: b.Block.Header.ChainID,
		Height:  int64(b.Block.Header.Height),
		Time:    b.Block.Header.Time,
		Txs:     b.Block.Data.Txs,
	}
}

func (t txResponse) toTxResult() chain.TxResult {
	events := make([]chain.Event, 0, len(t.TxResult.Events))
	for _, e := range t.TxResult.Events {
		attributes := make([]chain.EventAttribute, 0, len(e.Attributes))
		for _, a := range e.Attributes {
			attributes = append(attributes, chain.EventAttribute{Key: a.Key, Value: a.Value, Index: a.Index})
		}
		events = append(events, chain.Event{Type: e.Type, Attributes: attributes})
	}

	return chain.TxResult{
		Hash:      strings.ToUpper(t.Hash),
		Height:    int64(t.Height),
		Index:     t.Index,
		Code:      t.TxResult.Code,
		Codespace: t.TxResult.Codespace,
		Log:       t.TxResult.Log,
		GasWanted: int64(t.TxResult.GasWanted),
		GasUsed:   int64(t.TxResult.GasUsed),
		Events:    events,
		Tx:        t.Tx,
	}
}
