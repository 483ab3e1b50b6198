// Package httpapi exposes the feed, transaction lookup, mint and wallet
// services over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gabapcia/photonscan/internal/mint"
	"github.com/gabapcia/photonscan/internal/pkg/logger"
	"github.com/gabapcia/photonscan/internal/pkg/pagination"
	"github.com/gabapcia/photonscan/internal/txfeed"
	"github.com/gabapcia/photonscan/internal/txsummary"
	"github.com/gabapcia/photonscan/internal/wallet"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const DefaultShutdownTimeout = 10 * time.Second

// Feed is the read side of the transaction feed.
type Feed interface {
	Page(page, size int) pagination.Page[txsummary.Summary]
	ChainInfo() txfeed.ChainInfo
}

type Lookup interface {
	Lookup(ctx context.Context, hash string) (txsummary.Summary, error)
}

type Minter interface {
	ConversionRate(ctx context.Context) (mint.Rate, error)
	Balance(ctx context.Context, address, denom string) (decimal.Decimal, error)
	Prepare(address, amount string) (mint.Request, error)
	Broadcast(ctx context.Context, txBytes []byte) (mint.Result, error)
}

type Wallet interface {
	State() wallet.State
	Connect(ctx context.Context, address string) (wallet.State, error)
	Disconnect(ctx context.Context) error
}

type server struct {
	echo   *echo.Echo
	feed   Feed
	lookup Lookup
	minter Minter
	wallet Wallet

	shutdownTimeout time.Duration
}

// Handler returns the http.Handler serving every route.
func (s *server) Handler() http.Handler {
	return s.echo
}

// Run serves on addr until ctx is cancelled, then shuts the server down,
// waiting at most the configured shutdown timeout for in-flight requests.
func (s *server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "http api listening", "http.addr", addr)
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	logger.Info(ctx, "shutting down http api")
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *server) routes(registry *prometheus.Registry) {
	s.echo.GET("/healthz", s.health)
	s.echo.GET("/metrics", echo.WrapHandler(metricsHandler(registry)))

	api := s.echo.Group("/api")
	api.GET("/chain", s.chainInfo)

	txApi := api.Group("/txs")
	txApi.GET("", s.listTransactions)
	txApi.GET("/:hash", s.getTransaction)

	mintApi := api.Group("/mint")
	mintApi.GET("/rate", s.conversionRate)
	mintApi.GET("/quote", s.quote)
	mintApi.POST("/prepare", s.prepareMint)
	mintApi.POST("/broadcast", s.broadcastMint)

	api.GET("/balances/:address", s.balance)

	walletApi := api.Group("/wallet")
	walletApi.GET("", s.walletState)
	walletApi.POST("", s.connectWallet)
	walletApi.DELETE("", s.disconnectWallet)
}

type config struct {
	registry        *prometheus.Registry
	shutdownTimeout time.Duration
}

type Option func(*config)

// New builds the HTTP API on top of the given services.
func New(feed Feed, lookup Lookup, minter Minter, wallet Wallet, opts ...Option) *server {
	cfg := config{
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = prometheus.NewRegistry()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(e)

	e.Use(middleware.RequestID())
	e.Use(newMetrics(cfg.registry).middleware)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
	}))
	e.Use(requestLogger)

	s := &server{
		echo:            e,
		feed:            feed,
		lookup:          lookup,
		minter:          minter,
		wallet:          wallet,
		shutdownTimeout: cfg.shutdownTimeout,
	}
	s.routes(cfg.registry)
	return s
}

// WithRegistry registers the HTTP metrics in r and serves r on /metrics.
func WithRegistry(r *prometheus.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}
