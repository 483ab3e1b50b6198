package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/mint"

	"github.com/urfave/cli/v3"
)

// walletCommand returns a CLI command that manages the persisted wallet
// session.
//
// Usage example:
//
//	photonscan wallet connect --address atone1...
func walletCommand(w Wallet, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "wallet",
		Description: "Connects, disconnects and shows the wallet session.",
		Usage:       "Manages the wallet session used by the mint commands.",
		Commands: []*cli.Command{
			{
				Name:  "connect",
				Usage: "Connects the wallet with the given address.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "address",
						Usage:    "Account address to connect",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					state, err := w.Connect(ctx, c.String("address"))
					if err != nil {
						return err
					}
					return printJSON(out, state)
				},
			},
			{
				Name:  "disconnect",
				Usage: "Disconnects the wallet and clears the stored session.",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := w.Disconnect(ctx); err != nil {
						return err
					}
					return printJSON(out, w.State())
				},
			},
			{
				Name:  "show",
				Usage: "Prints the wallet session.",
				Action: func(ctx context.Context, c *cli.Command) error {
					return printJSON(out, w.State())
				},
			},
		},
	}
}

// balanceCommand returns a CLI command that prints an account balance in
// display units.
//
// Usage example:
//
//	photonscan balance --address atone1... --denom uphoton
func balanceCommand(minter Minter, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Prints the balance of an account.",
		Usage:       "Prints the balance of an account in display units. ATONE balances include the mintable amount.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Account address",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "denom",
				Usage: "Coin denomination",
				Value: chain.BaseDenom,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address, denom := c.String("address"), c.String("denom")
			if err := chain.ValidateAddress(address, chain.AccountPrefix); err != nil {
				return err
			}

			amount, err := minter.Balance(ctx, address, denom)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %s\n", amount, denom)
			if denom == chain.BaseDenom {
				fmt.Fprintf(out, "mintable: %s\n", mint.MaxMintable(amount))
			}
			return nil
		},
	}
}
