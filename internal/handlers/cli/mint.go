package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gabapcia/photonscan/internal/mint"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// mintCommand groups the PHOTON mint subcommands.
//
// Usage example:
//
//	photonscan mint quote --amount 12.5
func mintCommand(minter Minter, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "mint",
		Description: "Burns ATONE to mint PHOTON.",
		Usage:       "Rate, quote, prepare and broadcast PHOTON mints.",
		Commands: []*cli.Command{
			{
				Name:  "rate",
				Usage: "Prints the current PHOTON per ATONE conversion rate.",
				Action: func(ctx context.Context, c *cli.Command) error {
					rate, err := minter.ConversionRate(ctx)
					if err != nil {
						return err
					}
					return printJSON(out, rate)
				},
			},
			{
				Name:  "quote",
				Usage: "Prints the PHOTON received for an ATONE amount.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "amount",
						Usage:    "ATONE amount in display units",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					amount, err := decimal.NewFromString(strings.TrimSpace(c.String("amount")))
					if err != nil {
						return fmt.Errorf("invalid amount %q: %w", c.String("amount"), err)
					}

					rate, err := minter.ConversionRate(ctx)
					if err != nil {
						return err
					}

					fmt.Fprintf(out, "%s ATONE -> %s PHOTON (rate %s)\n", amount, mint.Quote(amount, rate.Rate), rate.Rate)
					return nil
				},
			},
			{
				Name:  "prepare",
				Usage: "Prints the unsigned mint transaction for an address and ATONE amount.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "address",
						Usage:    "Account burning ATONE and receiving PHOTON",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "amount",
						Usage:    "ATONE amount in display units",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					req, err := minter.Prepare(c.String("address"), c.String("amount"))
					if err != nil {
						return err
					}

					return printJSON(out, struct {
						mint.Request
						UnsignedTx string `json:"unsigned_tx"`
					}{
						Request:    req,
						UnsignedTx: base64.StdEncoding.EncodeToString(req.UnsignedTx()),
					})
				},
			},
			{
				Name:  "broadcast",
				Usage: "Broadcasts signed transaction bytes.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "tx-bytes",
						Usage:    "Signed TxRaw bytes, base64 encoded",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					txBytes, err := base64.StdEncoding.DecodeString(c.String("tx-bytes"))
					if err != nil {
						return fmt.Errorf("invalid tx-bytes: %w", err)
					}

					result, err := minter.Broadcast(ctx, txBytes)
					if err != nil {
						return err
					}
					return printJSON(out, result)
				},
			},
		},
	}
}
