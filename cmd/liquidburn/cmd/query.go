package cmd

import (
	"github.com/spf13/cobra"

	"github.com/celestiaorg/liquidburn/app"
)

func queryCmd() *cobra.Command {
	command := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Querying subcommands",
	}
	command.AddCommand(
		queryLedgerCmd(),
		querySharesCmd(),
		queryEstimateCmd(),
		queryBalanceCmd(),
		queryAddressCmd(),
	)
	return command
}

// withNode opens the node for the duration of fn.
func withNode(command *cobra.Command, fn func(n *node) error) error {
	cc, err := getCommandContext(command)
	if err != nil {
		return err
	}
	n, err := openNode(cc)
	if err != nil {
		return err
	}
	defer n.Close()
	return fn(n)
}

func queryLedgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger",
		Short: "Show the ledger record, every participant and the pool balance",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			return withNode(command, func(n *node) error {
				snapshot, err := n.Snapshot()
				if err != nil {
					return err
				}
				return printJSON(command.OutOrStdout(), snapshot)
			})
		},
	}
}

func querySharesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shares [account]",
		Short: "Show the share balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			addr, err := app.ResolveAccount(args[0])
			if err != nil {
				return err
			}
			return withNode(command, func(n *node) error {
				shares, err := n.Shares(addr)
				if err != nil {
					return err
				}
				return printJSON(command.OutOrStdout(), map[string]any{
					"address": addr.String(),
					"shares":  shares,
				})
			})
		},
	}
}

func queryEstimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate [account]",
		Short: "Show the payout an account would receive by claiming now",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			addr, err := app.ResolveAccount(args[0])
			if err != nil {
				return err
			}
			return withNode(command, func(n *node) error {
				payout, err := n.EstimateClaim(addr)
				if err != nil {
					return err
				}
				return printJSON(command.OutOrStdout(), map[string]any{
					"address": addr.String(),
					"payout":  payout,
				})
			})
		},
	}
}

func queryBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [account] [denom]",
		Short: "Show the balance of a denom held by an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(command *cobra.Command, args []string) error {
			addr, err := app.ResolveAccount(args[0])
			if err != nil {
				return err
			}
			return withNode(command, func(n *node) error {
				return printJSON(command.OutOrStdout(), n.Balance(addr, args[1]))
			})
		},
	}
}

func queryAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address [account]",
		Short: "Resolve an account name to its address",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			addr, err := app.ResolveAccount(args[0])
			if err != nil {
				return err
			}
			_, err = command.OutOrStdout().Write([]byte(addr.String() + "\n"))
			return err
		},
	}
}
