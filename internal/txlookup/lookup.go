// Package txlookup resolves a transaction hash into its Summary, reading
// through an in-process LRU and any configured shared caches before asking
// the chain.
package txlookup

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/pkg/logger"
	"github.com/gabapcia/photonscan/internal/txsummary"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultLRUSize = 512

var (
	ErrInvalidHash         = errors.New("invalid transaction hash")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCacheMiss           = errors.New("cache miss")
)

var hashPattern = regexp.MustCompile(`^[0-9A-F]{64}$`)

// Blockchain is the chain query surface used by lookups.
type Blockchain interface {
	// SearchTxs runs a tx_search query and returns the requested page.
	SearchTxs(ctx context.Context, query string, page, perPage int) ([]chain.TxResult, error)

	BlockByHeight(ctx context.Context, height int64) (chain.Block, error)
}

// Summarizer turns a raw transaction and its metadata into a Summary.
type Summarizer interface {
	Summarize(in txsummary.Input) txsummary.Summary
}

// Cache is a shared summary store. GetSummary returns ErrCacheMiss when the
// hash is not stored.
type Cache interface {
	GetSummary(ctx context.Context, hash string) (txsummary.Summary, error)
	PutSummary(ctx context.Context, summary txsummary.Summary) error
}

type Service interface {
	Lookup(ctx context.Context, hash string) (txsummary.Summary, error)
}

type service struct {
	blockchain Blockchain
	summarizer Summarizer
	local      *lru.Cache[string, txsummary.Summary]
	caches     []Cache
}

var _ Service = (*service)(nil)

// NormalizeHash trims and upper-cases hash, returning ErrInvalidHash unless
// it is 64 hex characters. A leading 0x is accepted.
func NormalizeHash(hash string) (string, error) {
	h := strings.ToUpper(strings.TrimSpace(hash))
	h = strings.TrimPrefix(h, "0X")
	if !hashPattern.MatchString(h) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}
	return h, nil
}

func (s *service) Lookup(ctx context.Context, hash string) (txsummary.Summary, error) {
	hash, err := NormalizeHash(hash)
	if err != nil {
		return txsummary.Summary{}, err
	}

	ctx = logger.Derive(ctx, "tx.hash", hash)

	if summary, ok := s.local.Get(hash); ok {
		return summary, nil
	}

	for i, cache := range s.caches {
		summary, err := cache.GetSummary(ctx, hash)
		if err == nil {
			s.local.Add(hash, summary)
			s.fill(ctx, summary, s.caches[:i])
			return summary, nil
		}

		if !errors.Is(err, ErrCacheMiss) {
			logger.Warn(ctx, "summary cache read failed", "cache.index", i, "error", err)
		}
	}

	results, err := s.blockchain.SearchTxs(ctx, fmt.Sprintf("tx.hash='%s'", hash), 1, 1)
	if err != nil {
		return txsummary.Summary{}, fmt.Errorf("failed to search transaction: %w", err)
	}

	if len(results) == 0 {
		return txsummary.Summary{}, ErrTransactionNotFound
	}
	result := results[0]

	input := txsummary.Input{
		Raw:    result.Tx,
		Height: result.Height,
		Index:  result.Index,
		Result: &result,
	}

	block, err := s.blockchain.BlockByHeight(ctx, result.Height)
	if err != nil {
		logger.Warn(ctx, "block time unavailable", "block.height", result.Height, "error", err)
	} else {
		input.BlockTime = block.Time
	}

	summary := s.summarizer.Summarize(input)

	// The chain hash is authoritative when the node returned different bytes.
	if summary.Hash != hash {
		logger.Warn(ctx, "transaction bytes do not match hash", "tx.computed_hash", summary.Hash)
		summary.Hash = hash
	}

	s.local.Add(hash, summary)
	s.fill(ctx, summary, s.caches)
	return summary, nil
}

func (s *service) fill(ctx context.Context, summary txsummary.Summary, caches []Cache) {
	for i, cache := range caches {
		if err := cache.PutSummary(ctx, summary); err != nil {
			logger.Warn(ctx, "summary cache write failed", "cache.index", i, "error", err)
		}
	}
}

type config struct {
	lruSize int
	caches  []Cache
}

type Option func(*config)

func New(blockchain Blockchain, summarizer Summarizer, opts ...Option) (*service, error) {
	cfg := config{
		lruSize: DefaultLRUSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	local, err := lru.New[string, txsummary.Summary](cfg.lruSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary lru: %w", err)
	}

	return &service{
		blockchain: blockchain,
		summarizer: summarizer,
		local:      local,
		caches:     cfg.caches,
	}, nil
}

// WithCache adds a shared cache tier. Tiers are read in registration order.
func WithCache(c Cache) Option {
	return func(cfg *config) {
		cfg.caches = append(cfg.caches, c)
	}
}

func WithLRUSize(n int) Option {
	return func(cfg *config) {
		cfg.lruSize = n
	}
}
