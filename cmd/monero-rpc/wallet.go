// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	rpc "github.com/luxfi/monero-rpc"
)

func walletCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet (monero-wallet-rpc) queries",
	}
	cmd.AddCommand(
		walletBalanceCmd(e),
		walletHeightCmd(e),
		walletVersionCmd(e),
		walletTransfersCmd(e),
		walletTransferCmd(e),
	)
	return cmd
}

func walletBalanceCmd(e *env) *cobra.Command {
	var account uint32
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print the balance of an account per subaddress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := e.wallet()
			if err != nil {
				return err
			}
			ctx, cancel := e.context(cmd.Context())
			defer cancel()

			bal, err := wallet.GetBalance(ctx, account, nil)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "index", "label", "balance", "unlocked")
			for _, s := range bal.PerSubaddress {
				t.AppendRow(table.Row{
					fmt.Sprintf("%d/%d", s.AccountIndex, s.AddressIndex),
					s.Label,
					rpc.FormatXMR(s.Balance),
					rpc.FormatXMR(s.UnlockedBalance),
				})
			}
			t.AppendFooter(table.Row{"", "total", rpc.FormatXMR(bal.Balance), rpc.FormatXMR(bal.UnlockedBalance)})
			t.Render()
			return nil
		},
	}
	cmd.Flags().Uint32Var(&account, "account", 0, "account index")
	return cmd
}

func walletHeightCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "height",
		Short: "Print the wallet's block height",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := e.wallet()
			if err != nil {
				return err
			}
			ctx, cancel := e.context(cmd.Context())
			defer cancel()

			height, err := wallet.GetHeight(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), height)
			return nil
		},
	}
}

func walletVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wallet RPC version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := e.wallet()
			if err != nil {
				return err
			}
			ctx, cancel := e.context(cmd.Context())
			defer cancel()

			major, minor, err := wallet.GetVersion(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d.%d\n", major, minor)
			return nil
		},
	}
}

func walletTransfersCmd(e *env) *cobra.Command {
	var (
		categories = map[rpc.TransferCategory]*bool{}
		minHeight  uint64
		maxHeight  uint64
		account    uint32
	)
	cmd := &cobra.Command{
		Use:   "transfers",
		Short: "List transfers, optionally within a height range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selector := rpc.GetTransfersSelector{Categories: map[rpc.TransferCategory]bool{}}
			for c, set := range categories {
				if *set {
					selector.Categories[c] = true
				}
			}
			if len(selector.Categories) == 0 {
				selector.Categories[rpc.CategoryIn] = true
				selector.Categories[rpc.CategoryOut] = true
			}
			if cmd.Flags().Changed("account") {
				selector.AccountIndex = &account
			}
			if r, ok := heightRange(cmd, minHeight, maxHeight); ok {
				selector.FilterByHeight = &r
			}

			wallet, err := e.wallet()
			if err != nil {
				return err
			}
			ctx, cancel := e.context(cmd.Context())
			defer cancel()

			transfers, err := wallet.GetTransfers(ctx, selector)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "type", "height", "txid", "amount", "fee", "time")
			for _, c := range rpc.TransferCategories {
				for _, tr := range transfers[c] {
					t.AppendRow(table.Row{c, tr.Height, tr.TxID, rpc.FormatXMR(tr.Amount), rpc.FormatXMR(tr.Fee), tr.Time()})
				}
			}
			t.Render()
			return nil
		},
	}
	for _, c := range rpc.TransferCategories {
		categories[c] = cmd.Flags().Bool(string(c), false, fmt.Sprintf("include %s transfers", c))
	}
	cmd.Flags().Uint64Var(&minHeight, "min", 0, "lowest height to include")
	cmd.Flags().Uint64Var(&maxHeight, "max", 0, "highest height to include")
	cmd.Flags().Uint32Var(&account, "account", 0, "account index")
	return cmd
}

// heightRange turns --min and --max into an inclusive range. Either end may
// be left open.
func heightRange(cmd *cobra.Command, minHeight, maxHeight uint64) (rpc.HeightRange, bool) {
	hasMin, hasMax := cmd.Flags().Changed("min"), cmd.Flags().Changed("max")
	switch {
	case hasMin && hasMax:
		return rpc.HeightsInclusive(minHeight, maxHeight), true
	case hasMin:
		return rpc.HeightsFrom(minHeight), true
	case hasMax:
		return rpc.HeightsThrough(maxHeight), true
	default:
		return rpc.HeightRange{}, false
	}
}

func walletTransferCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <txid>",
		Short: "Show one transfer by transaction id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txid, err := rpc.ParseHash(args[0])
			if err != nil {
				return err
			}
			wallet, err := e.wallet()
			if err != nil {
				return err
			}
			ctx, cancel := e.context(cmd.Context())
			defer cancel()

			tr, found, err := wallet.GetTransfer(ctx, txid, nil)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "transfer %s not found\n", txid)
				return nil
			}

			t := newTable(cmd.OutOrStdout(), "field", "value")
			t.AppendRows([]table.Row{
				{"type", tr.Type},
				{"height", tr.Height},
				{"amount", rpc.FormatXMR(tr.Amount)},
				{"fee", rpc.FormatXMR(tr.Fee)},
				{"confirmations", tr.Confirmations},
				{"address", tr.Address},
				{"subaddress", fmt.Sprintf("%d/%d", tr.SubaddrIndex.Major, tr.SubaddrIndex.Minor)},
				{"time", tr.Time()},
			})
			t.Render()
			return nil
		},
	}
}
