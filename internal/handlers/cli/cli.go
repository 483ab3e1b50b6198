package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/gabapcia/photonscan/internal/mint"
	"github.com/gabapcia/photonscan/internal/pkg/pagination"
	"github.com/gabapcia/photonscan/internal/txfeed"
	"github.com/gabapcia/photonscan/internal/txsummary"
	"github.com/gabapcia/photonscan/internal/wallet"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

type Feed interface {
	Start(ctx context.Context) error
	Close()
	Refresh(ctx context.Context) error
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

// APIServer serves the HTTP API until its context is cancelled.
type APIServer interface {
	Run(ctx context.Context, addr string) error
}

// Dependencies are the services the commands operate on. Out receives the
// command output and defaults to os.Stdout.
type Dependencies struct {
	Feed     Feed
	Lookup   Lookup
	Minter   Minter
	Wallet   Wallet
	API      APIServer
	HTTPAddr string
	Out      io.Writer
}

// Run initializes and executes the photonscan CLI application with os.Args.
//
// Commands:
//
//   - `serve`: runs the feed loop and the HTTP API.
//   - `feed`: refreshes the feed once and prints a page of it.
//   - `tx`: prints the summary of one transaction.
//   - `mint`: rate, quote, prepare and broadcast PHOTON mints.
//   - `balance`: prints an account balance.
//   - `wallet`: connects, disconnects and shows the wallet session.
func Run(ctx context.Context, deps Dependencies) error {
	return newApp(deps).Run(ctx, os.Args)
}

func newApp(deps Dependencies) *cli.Command {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}

	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "photonscan",
		Description:           "Explorer and PHOTON mint client for the AtomOne chain.",
		Usage:                 "photonscan [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(deps.Feed, deps.API, deps.HTTPAddr),
			feedCommand(deps.Feed, deps.Out),
			transactionCommand(deps.Lookup, deps.Out),
			mintCommand(deps.Minter, deps.Out),
			balanceCommand(deps.Minter, deps.Out),
			walletCommand(deps.Wallet, deps.Out),
		},
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
