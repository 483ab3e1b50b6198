package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/gabapcia/photonscan/internal/pkg/pagination"

	"github.com/urfave/cli/v3"
)

// serveCommand returns a CLI command that starts the feed loop and serves
// the HTTP API.
//
// Usage example:
//
//	photonscan serve --addr :8080
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func serveCommand(feed Feed, api APIServer, defaultAddr string) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Starts the transaction feed and serves the HTTP API.",
		Usage:       "Runs the feed loop and the HTTP API. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Address the HTTP API listens on",
				Value: defaultAddr,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := feed.Start(ctx); err != nil {
				return err
			}
			defer feed.Close()

			return api.Run(ctx, c.String("addr"))
		},
	}
}

// feedCommand returns a CLI command that refreshes the feed once and prints
// one page of it.
//
// Usage example:
//
//	photonscan feed --page 2 --limit 5
func feedCommand(feed Feed, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "feed",
		Description: "Collects the latest transactions and prints a page of the feed.",
		Usage:       "Refreshes the feed once and prints the requested page.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "page",
				Usage: "Page number, starting at 1",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Transactions per page",
				Value: pagination.DefaultPageSize,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := feed.Refresh(ctx); err != nil {
				return err
			}

			limit := c.Int("limit")
			if limit < 1 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}

			page := feed.Page(c.Int("page"), limit)
			if clamped := pagination.ClampPage(page.Page, page.TotalPages); clamped != page.Page {
				page = feed.Page(clamped, limit)
			}

			info := feed.ChainInfo()
			fmt.Fprintf(out, "%s at height %d, page %d of %d\n", info.ChainID, info.LatestBlockHeight, page.Page, page.TotalPages)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "HEIGHT\tHASH\tTYPES\tSTATUS")
			for _, tx := range page.Items {
				types := make([]string, 0, len(tx.Messages))
				for _, msg := range tx.Messages {
					types = append(types, msg.Type)
				}

				status := "success"
				if !tx.Success {
					status = "failed"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", tx.Height, tx.Hash, strings.Join(types, ","), status)
			}
			return w.Flush()
		},
	}
}

// transactionCommand returns a CLI command that prints the summary of a
// single transaction.
//
// Usage example:
//
//	photonscan tx 0xA1B2...
func transactionCommand(lookup Lookup, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "tx",
		Description: "Looks up a transaction by hash and prints its summary.",
		Usage:       "Prints the summary of the transaction with the given hash.",
		ArgsUsage:   "<hash>",
		Action: func(ctx context.Context, c *cli.Command) error {
			hash := c.Args().First()
			if hash == "" {
				return fmt.Errorf("missing transaction hash")
			}

			summary, err := lookup.Lookup(ctx, hash)
			if err != nil {
				return err
			}
			return printJSON(out, summary)
		},
	}
}
