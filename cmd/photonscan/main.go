package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/config"
	"github.com/gabapcia/photonscan/internal/handlers/cli"
	"github.com/gabapcia/photonscan/internal/handlers/httpapi"
	"github.com/gabapcia/photonscan/internal/infra/chain/cometbft"
	"github.com/gabapcia/photonscan/internal/infra/chain/cosmosrest"
	"github.com/gabapcia/photonscan/internal/infra/messaging/kafka"
	"github.com/gabapcia/photonscan/internal/infra/storage/redis"
	"github.com/gabapcia/photonscan/internal/infra/storage/sqlarchive"
	"github.com/gabapcia/photonscan/internal/mint"
	"github.com/gabapcia/photonscan/internal/pkg/logger"
	"github.com/gabapcia/photonscan/internal/pkg/resilience/retry"
	"github.com/gabapcia/photonscan/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/photonscan/internal/pkg/transport/http"
	"github.com/gabapcia/photonscan/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/photonscan/internal/pkg/x/chflow"
	"github.com/gabapcia/photonscan/internal/txdecode"
	"github.com/gabapcia/photonscan/internal/txfeed"
	"github.com/gabapcia/photonscan/internal/txlookup"
	"github.com/gabapcia/photonscan/internal/txsummary"
	"github.com/gabapcia/photonscan/internal/wallet"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("failed to init telemetry: %w", err)
		}
		defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()
	}

	if err := logger.Init(cfg.Log.Level); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.Chain.Timeout),
		transporthttp.WithRetryMax(cfg.Chain.RetryMax),
	).StandardClient()

	rpc := cometbft.NewClient(jsonrpc.NewClient(httpClient, cfg.Chain.RPCEndpoint))
	rest := cosmosrest.NewClient(httpClient, cfg.Chain.RESTEndpoint)
	summarizer := txsummary.New(txdecode.New())

	var (
		lookupOpts []txlookup.Option
		feedOpts   = []txfeed.Option{
			txfeed.WithMaxBlocks(cfg.Feed.MaxBlocks),
			txfeed.WithMaxTransactions(cfg.Feed.MaxTransactions),
			txfeed.WithMaxRetained(cfg.Feed.MaxRetained),
			txfeed.WithRefreshInterval(cfg.Feed.RefreshInterval),
			txfeed.WithRetry(retry.New(retry.WithAttempts(cfg.Feed.RetryAttempts))),
		}
		walletOpts = []wallet.Option{
			wallet.WithChainID(cfg.Chain.ID),
			wallet.WithAddressPrefix(chain.AccountPrefix),
		}
		seed []txsummary.Summary
	)

	if cfg.Redis.Addr != "" {
		rc, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithSummaryTTL(cfg.Redis.SummaryTTL),
		)
		if err != nil {
			return err
		}
		defer rc.Close()

		lookupOpts = append(lookupOpts, txlookup.WithCache(rc))
		feedOpts = append(feedOpts, txfeed.WithNotifier(rc))
		walletOpts = append(walletOpts, wallet.WithSessionStorage(rc))
	}

	if cfg.Archive.DSN != "" {
		archive, err := sqlarchive.New(ctx, sqlarchive.Driver(cfg.Archive.Driver), cfg.Archive.DSN)
		if err != nil {
			return err
		}
		defer archive.Close()

		lookupOpts = append(lookupOpts, txlookup.WithCache(archive))
		feedOpts = append(feedOpts, txfeed.WithNotifier(archive))

		if cfg.Archive.SeedSize > 0 {
			if seed, err = archive.Recent(ctx, cfg.Archive.SeedSize); err != nil {
				logger.Warn(ctx, "failed to read archived transactions", "error", err)
			}
		}
	}

	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Chain.ID,
			kafka.WithTopic(cfg.Kafka.Topic),
			kafka.WithBatchTimeout(cfg.Kafka.BatchTimeout),
		)
		if err != nil {
			return err
		}
		defer publisher.Close()

		feedOpts = append(feedOpts, txfeed.WithNotifier(publisher))
	}

	newBlocks := make(chan int64, 1)
	if cfg.Chain.SubscribeNewBlocks {
		feedOpts = append(feedOpts, txfeed.WithRefreshTrigger(newBlocks))
	}

	feed := txfeed.New(rpc, summarizer, feedOpts...)
	if n := feed.Seed(seed); n > 0 {
		logger.Info(ctx, "feed seeded from archive", "feed.seeded", n)
	}

	lookup, err := txlookup.New(rpc, summarizer, lookupOpts...)
	if err != nil {
		return err
	}

	walletService := wallet.New(wallet.NewStore(), walletOpts...)
	if _, err := walletService.Restore(ctx); err != nil {
		logger.Warn(ctx, "failed to restore wallet session", "error", err)
	}

	minter := mint.New(rest,
		mint.WithFee(chain.Coin{Amount: cfg.Mint.FeeAmount, Denom: chain.BaseDenom}),
		mint.WithGas(cfg.Mint.Gas),
		mint.WithMemo(cfg.Mint.Memo),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	api := httpapi.New(feed, lookup, minter, walletService,
		httpapi.WithRegistry(registry),
		httpapi.WithShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	return cli.Run(ctx, cli.Dependencies{
		Feed:     liveFeed{Service: feed, rpcEndpoint: cfg.Chain.RPCEndpoint, enabled: cfg.Chain.SubscribeNewBlocks, newBlocks: newBlocks},
		Lookup:   lookup,
		Minter:   minter,
		Wallet:   walletService,
		API:      api,
		HTTPAddr: cfg.HTTP.Addr,
	})
}

// liveFeed subscribes to the node's NewBlock events when the feed loop
// starts, so one-shot commands never open the websocket.
type liveFeed struct {
	txfeed.Service
	rpcEndpoint string
	enabled     bool
	newBlocks   chan int64
}

func (f liveFeed) Start(ctx context.Context) error {
	if f.enabled {
		f.subscribe(ctx)
	}
	return f.Service.Start(ctx)
}

func (f liveFeed) subscribe(ctx context.Context) {
	subscriber, err := cometbft.NewSubscriber(f.rpcEndpoint)
	if err != nil {
		logger.Warn(ctx, "new block subscription disabled", "error", err)
		return
	}

	heights, err := subscriber.SubscribeNewBlocks(ctx)
	if err != nil {
		logger.Warn(ctx, "new block subscription disabled", "error", err)
		return
	}

	go func() {
		for height := range heights {
			chflow.SendLatest(f.newBlocks, height)
		}
	}()
}
