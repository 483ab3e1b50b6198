// Package txfeed keeps a bounded, newest-first list of recent transactions
// collected from the latest blocks of the chain.
package txfeed

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/pkg/logger"
	"github.com/gabapcia/photonscan/internal/pkg/pagination"
	"github.com/gabapcia/photonscan/internal/pkg/resilience/retry"
	"github.com/gabapcia/photonscan/internal/txsummary"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/photonscan/internal/txfeed"

const (
	DefaultMaxBlocks       = 10
	DefaultMaxTransactions = 10
	DefaultMaxRetained     = 100
	DefaultRefreshInterval = 10 * time.Second
)

var (
	ErrServiceAlreadyStarted = errors.New("service already started")
	ErrChainUnavailable      = errors.New("chain unavailable")
)

type Service interface {
	Start(ctx context.Context) error
	Close()
	Refresh(ctx context.Context) error
	RefreshFrom(ctx context.Context, height int64) error
	Seed(summaries []txsummary.Summary) int
	Transactions() []txsummary.Summary
	Page(page, size int) pagination.Page[txsummary.Summary]
	ChainInfo() ChainInfo
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	stateMu      sync.RWMutex
	transactions []txsummary.Summary
	known        map[string]struct{}
	chainInfo    ChainInfo

	blockchain Blockchain
	summarizer Summarizer
	cfg        config

	tracer    trace.Tracer
	collected metric.Int64Counter
	failures  metric.Int64Counter
}

var _ Service = (*service)(nil)

// Start refreshes immediately and then on every tick of the refresh interval
// and on every height received from the refresh trigger. Each refresh runs in
// its own goroutine.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.loop(ctx, &wg)
	}()

	s.closeFunc = func() {
		cancel()
		wg.Wait()
	}
	s.isStarted = true
	return nil
}

func (s *service) loop(ctx context.Context, wg *sync.WaitGroup) {
	ticker := time.NewTicker(s.cfg.refreshInterval)
	defer ticker.Stop()

	spawn := func(refresh func(ctx context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = refresh(ctx)
		}()
	}

	spawn(s.Refresh)

	trigger := s.cfg.trigger
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			spawn(s.Refresh)
		case height, ok := <-trigger:
			if !ok {
				trigger = nil
				continue
			}
			spawn(func(ctx context.Context) error { return s.RefreshFrom(ctx, height) })
		}
	}
}

// Close stops the refresh loop and waits for in-flight refreshes.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

// Refresh reads the chain status and collects transactions from the latest
// blocks. It only fails when the status cannot be read.
func (s *service) Refresh(ctx context.Context) error {
	ctx = logger.Derive(ctx, "refresh.id", uuid.NewString())
	ctx, span := s.tracer.Start(ctx, "txfeed.Refresh")
	defer span.End()

	status, err := s.blockchain.Status(ctx)
	if err != nil {
		s.failures.Add(ctx, 1)
		span.RecordError(err)
		span.SetStatus(codes.Error, "chain status unavailable")
		logger.Error(ctx, "chain status unavailable", "error", err)
		return fmt.Errorf("%w: %w", ErrChainUnavailable, err)
	}

	s.stateMu.Lock()
	s.chainInfo = ChainInfo{ChainID: status.ChainID, LatestBlockHeight: status.LatestHeight}
	s.stateMu.Unlock()

	span.SetAttributes(attribute.Int64("block.height", status.LatestHeight))
	s.collectFrom(ctx, status.LatestHeight)
	return nil
}

// RefreshFrom collects transactions walking down from height without asking
// the chain for its status. The known latest height only moves forward.
func (s *service) RefreshFrom(ctx context.Context, height int64) error {
	ctx = logger.Derive(ctx, "refresh.id", uuid.NewString())
	ctx, span := s.tracer.Start(ctx, "txfeed.RefreshFrom", trace.WithAttributes(attribute.Int64("block.height", height)))
	defer span.End()

	s.stateMu.Lock()
	if height > s.chainInfo.LatestBlockHeight {
		s.chainInfo.LatestBlockHeight = height
	}
	s.stateMu.Unlock()

	s.collectFrom(ctx, height)
	return nil
}

func (s *service) collectFrom(ctx context.Context, height int64) {
	summaries := s.collect(ctx, height)

	added := s.merge(summaries)
	s.collected.Add(ctx, int64(len(added)))

	logger.Info(ctx, "feed refreshed",
		"block.height", height,
		"feed.collected", len(summaries),
		"feed.added", len(added),
	)

	if len(added) > 0 {
		s.notify(ctx, added)
	}
}

// collect walks heights height..height-maxBlocks+1 and summarizes up to
// maxTransactions transactions not yet in the feed.
func (s *service) collect(ctx context.Context, height int64) []txsummary.Summary {
	summaries := make([]txsummary.Summary, 0, s.cfg.maxTransactions)

	lowest := height - int64(s.cfg.maxBlocks)
	for h := height; h > lowest && h > 0; h-- {
		if len(summaries) >= s.cfg.maxTransactions || ctx.Err() != nil {
			break
		}
		if s.wouldDrop(h, -1) {
			break
		}

		block, err := s.fetchBlock(ctx, h)
		if err != nil {
			logger.Warn(ctx, "skipping block", "block.height", h, "error", err)
			continue
		}

		for index, raw := range block.Txs {
			if len(summaries) >= s.cfg.maxTransactions {
				break
			}

			hash := txsummary.Hash(raw)
			if s.isKnown(hash) || s.wouldDrop(h, index) {
				continue
			}

			input := txsummary.Input{Raw: raw, Height: h, Index: index, BlockTime: block.Time}

			result, err := s.blockchain.TxByHash(ctx, hash)
			if err != nil {
				logger.Warn(ctx, "transaction result unavailable", "tx.hash", hash, "block.height", h, "error", err)
			} else {
				input.Result = &result
			}

			summaries = append(summaries, s.summarizer.Summarize(input))
		}
	}

	return summaries
}

func (s *service) fetchBlock(ctx context.Context, height int64) (chain.Block, error) {
	if s.cfg.retry == nil {
		return s.blockchain.BlockByHeight(ctx, height)
	}

	var block chain.Block
	err := s.cfg.retry.Execute(ctx, func() error {
		var err error
		block, err = s.blockchain.BlockByHeight(ctx, height)
		return err
	})
	return block, err
}

func (s *service) isKnown(hash string) bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	_, ok := s.known[hash]
	return ok
}

// wouldDrop reports whether a transaction at (height, index) would sort at or
// below the tail of a full feed and so be truncated right after merging. An
// index of -1 asks about the whole block.
func (s *service) wouldDrop(height int64, index int) bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	if len(s.transactions) < s.cfg.maxRetained {
		return false
	}

	tail := s.transactions[len(s.transactions)-1]
	if index < 0 {
		return height < tail.Height
	}
	return compareSummaries(txsummary.Summary{Height: height, Index: index}, tail) >= 0
}

// merge adds the summaries whose hash is not yet in the feed, re-sorts the
// feed newest first and truncates it to maxRetained. It returns the summaries
// that were added and survived truncation.
func (s *service) merge(summaries []txsummary.Summary) []txsummary.Summary {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	added := make(map[string]struct{}, len(summaries))
	for _, summary := range summaries {
		if _, ok := s.known[summary.Hash]; ok {
			continue
		}
		s.known[summary.Hash] = struct{}{}
		s.transactions = append(s.transactions, summary)
		added[summary.Hash] = struct{}{}
	}

	slices.SortStableFunc(s.transactions, compareSummaries)

	if len(s.transactions) > s.cfg.maxRetained {
		for _, dropped := range s.transactions[s.cfg.maxRetained:] {
			delete(s.known, dropped.Hash)
			delete(added, dropped.Hash)
		}
		s.transactions = slices.Clip(s.transactions[:s.cfg.maxRetained])
	}

	result := make([]txsummary.Summary, 0, len(added))
	for _, summary := range s.transactions {
		if _, ok := added[summary.Hash]; ok {
			result = append(result, summary)
		}
	}
	return result
}

func compareSummaries(a, b txsummary.Summary) int {
	if a.Height != b.Height {
		if a.Height > b.Height {
			return -1
		}
		return 1
	}
	return b.Index - a.Index
}

func (s *service) notify(ctx context.Context, summaries []txsummary.Summary) {
	for _, notifier := range s.cfg.notifiers {
		if err := notifier.NotifyTransactions(ctx, summaries); err != nil {
			logger.Error(ctx, "failed to notify transactions", "feed.added", len(summaries), "error", err)
		}
	}
}

// Seed merges previously collected summaries into the feed without
// notifying. It returns how many were added.
func (s *service) Seed(summaries []txsummary.Summary) int {
	return len(s.merge(summaries))
}

// Transactions returns a copy of the feed, newest first.
func (s *service) Transactions() []txsummary.Summary {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return slices.Clone(s.transactions)
}

// Page returns one page of the feed. Out of range pages are empty.
func (s *service) Page(page, size int) pagination.Page[txsummary.Summary] {
	return pagination.Paginate(s.Transactions(), page, size)
}

// ChainInfo returns the chain id and the latest height seen so far.
func (s *service) ChainInfo() ChainInfo {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return s.chainInfo
}

type config struct {
	maxBlocks       int
	maxTransactions int
	maxRetained     int
	refreshInterval time.Duration
	retry           retry.Retry
	notifiers       []TransactionNotifier
	trigger         <-chan int64
	meterProvider   metric.MeterProvider
	tracerProvider  trace.TracerProvider
}

type Option func(*config)

func New(blockchain Blockchain, summarizer Summarizer, opts ...Option) *service {
	cfg := config{
		maxBlocks:       DefaultMaxBlocks,
		maxTransactions: DefaultMaxTransactions,
		maxRetained:     DefaultMaxRetained,
		refreshInterval: DefaultRefreshInterval,
		meterProvider:   otel.GetMeterProvider(),
		tracerProvider:  otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.meterProvider.Meter(instrumentationName)

	collected, err := meter.Int64Counter("txfeed.transactions.collected",
		metric.WithDescription("Transactions added to the feed"),
	)
	if err != nil {
		collected = noop.Int64Counter{}
	}

	failures, err := meter.Int64Counter("txfeed.refresh.failures",
		metric.WithDescription("Refreshes aborted because the chain status was unavailable"),
	)
	if err != nil {
		failures = noop.Int64Counter{}
	}

	return &service{
		transactions: make([]txsummary.Summary, 0, cfg.maxRetained),
		known:        make(map[string]struct{}, cfg.maxRetained),
		blockchain:   blockchain,
		summarizer:   summarizer,
		cfg:          cfg,
		tracer:       cfg.tracerProvider.Tracer(instrumentationName),
		collected:    collected,
		failures:     failures,
	}
}

// WithMaxBlocks sets how many blocks, counting down from the latest, each
// refresh visits. Values below 1 are ignored.
func WithMaxBlocks(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBlocks = n
		}
	}
}

// WithMaxTransactions caps the new transactions collected per refresh.
func WithMaxTransactions(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxTransactions = n
		}
	}
}

// WithMaxRetained caps the feed length.
func WithMaxRetained(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxRetained = n
		}
	}
}

// WithRefreshInterval sets the period of the refresh timer.
func WithRefreshInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.refreshInterval = d
		}
	}
}

// WithRetry retries block fetches with r. Transaction result lookups are not
// retried; a failed lookup degrades the summary instead.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithNotifier registers n. Notifiers are called in registration order.
func WithNotifier(n TransactionNotifier) Option {
	return func(c *config) {
		c.notifiers = append(c.notifiers, n)
	}
}

// WithRefreshTrigger starts a RefreshFrom for every height received on ch.
func WithRefreshTrigger(ch <-chan int64) Option {
	return func(c *config) {
		c.trigger = ch
	}
}

// WithMeterProvider overrides the global OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}
