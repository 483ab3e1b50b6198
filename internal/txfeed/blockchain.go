package txfeed

import (
	"context"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/txsummary"
)

// Blockchain is the read side of a chain node the feed collects from.
type Blockchain interface {
	// Status returns the chain id and the latest committed height.
	Status(ctx context.Context) (chain.Status, error)

	// BlockByHeight returns the block at height with its raw transactions.
	BlockByHeight(ctx context.Context, height int64) (chain.Block, error)

	// TxByHash returns the execution result of the transaction with the given
	// upper case hex hash.
	TxByHash(ctx context.Context, hash string) (chain.TxResult, error)
}

// Summarizer turns a raw transaction and its metadata into a Summary.
type Summarizer interface {
	Summarize(in txsummary.Input) txsummary.Summary
}

// TransactionNotifier receives the summaries added to the feed by a refresh.
type TransactionNotifier interface {
	NotifyTransactions(ctx context.Context, summaries []txsummary.Summary) error
}

// ChainInfo is the chain status observed by the last refresh.
type ChainInfo struct {
	ChainID           string `json:"chain_id"`
	LatestBlockHeight int64  `json:"latest_block_height"`
}
