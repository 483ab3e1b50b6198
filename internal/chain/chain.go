// Package chain holds the AtomOne chain parameters and the chain-level
// records shared by the decoding, feed and lookup services.
package chain

import (
	"errors"
	"time"
)

const (
	ChainID   = "atomone-1"
	ChainName = "AtomOne"

	DefaultRPCEndpoint  = "https://rpc-atomone.22node.xyz"
	DefaultRESTEndpoint = "https://atomone-api.polkachu.com"

	BaseDenom    = "uatone"
	MintDenom    = "uphoton"
	CoinDecimals = 6
)

// Bech32 human readable parts used by the chain.
const (
	AccountPrefix      = "atone"
	AccountPubPrefix   = "atonepub"
	ValidatorPrefix    = "atonevaloper"
	ValidatorPubPrefix = "atonevaloperpub"
	ConsensusPrefix    = "atonevalcons"
	ConsensusPubPrefix = "atonevalconspub"
)

// ErrNotFound is returned by chain clients when the node has no record for
// the requested block or transaction.
var ErrNotFound = errors.New("not found on chain")

// Coin is an amount in a given denomination. Amount is a base-10 integer in
// the denomination's smallest unit.
type Coin struct {
	Amount string `json:"amount"`
	Denom  string `json:"denom"`
}

// String renders the coin the way the chain does in events, e.g. "5000uatone".
func (c Coin) String() string {
	return c.Amount + c.Denom
}

// EventAttribute is a key/value pair attached to a chain event.
type EventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Index bool   `json:"index,omitempty"`
}

// Event is an ABCI event emitted while executing a transaction.
type Event struct {
	Type       string           `json:"type"`
	Attributes []EventAttribute `json:"attributes"`
}

// Status is the node view of the chain head.
type Status struct {
	ChainID         string
	LatestHeight    int64
	LatestBlockTime time.Time
}

// Block is a committed block with its raw transactions in index order.
type Block struct {
	ChainID string
	Height  int64
	Time    time.Time
	Txs     [][]byte
}

// TxResult is the execution result of an indexed transaction.
type TxResult struct {
	Hash      string
	Height    int64
	Index     int
	Code      uint32
	Codespace string
	Log       string
	GasWanted int64
	GasUsed   int64
	Events    []Event
	Tx        []byte
}

// BroadcastResult is the node answer to a synchronous broadcast.
type BroadcastResult struct {
	TxHash    string
	Code      uint32
	Codespace string
	RawLog    string
}
