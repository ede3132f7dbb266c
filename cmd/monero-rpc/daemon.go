// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	rpc "github.com/luxfi/monero-rpc"
)

func daemonCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Daemon (monerod) queries",
	}
	cmd.AddCommand(
		daemonCountCmd(e),
		daemonHashCmd(e),
		daemonHeaderCmd(e),
		daemonStatusCmd(e),
	)
	return cmd
}

func daemonCountCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of blocks in the longest chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			daemon, err := e.daemon()
			if err != nil {
				return err
			}
			ctx, cancel := e.context(cmd.Context())
			defer cancel()

			count, err := daemon.GetBlockCount(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
}

func daemonHashCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <height>",
		Short: "Print the hash of the block at height",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid height: %w", err)
			}
			daemon, err := e.daemon()
			if err != nil {
				return err
			}
			ctx, cancel := e.context(cmd.Context())
			defer cancel()

			hash, err := daemon.OnGetBlockHash(ctx, height)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func daemonHeaderCmd(e *env) *cobra.Command {
	var (
		height uint64
		hash   string
	)
	cmd := &cobra.Command{
		Use:   "header",
		Short: "Print a block header (the chain tip by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selector := rpc.LastBlock()
			switch {
			case cmd.Flags().Changed("height") && hash != "":
				return errors.New("--height and --hash are mutually exclusive")
			case cmd.Flags().Changed("height"):
				selector = rpc.BlockByHeight(height)
			case hash != "":
				h, err := rpc.ParseHash(hash)
				if err != nil {
					return err
				}
				selector = rpc.BlockByHash(h)
			}

			daemon, err := e.daemon()
			if err != nil {
				return err
			}
			ctx, cancel := e.context(cmd.Context())
			defer cancel()

			header, err := daemon.GetBlockHeader(ctx, selector)
			if err != nil {
				return err
			}
			printHeader(cmd, header)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&height, "height", 0, "block height")
	cmd.Flags().StringVar(&hash, "hash", "", "block hash")
	return cmd
}

func printHeader(cmd *cobra.Command, h rpc.BlockHeader) {
	t := newTable(cmd.OutOrStdout(), "field", "value")
	t.AppendRows([]table.Row{
		{"height", h.Height},
		{"hash", h.Hash},
		{"prev_hash", h.PrevHash},
		{"time", h.Time()},
		{"difficulty", h.Difficulty},
		{"reward", rpc.FormatXMR(h.Reward)},
		{"txes", h.NumTxes},
		{"depth", h.Depth},
	})
	t.Render()
}

func daemonStatusCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the chain height and tip header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			daemon, err := e.daemon()
			if err != nil {
				return err
			}
			ctx, cancel := e.context(cmd.Context())
			defer cancel()

			var (
				count  uint64
				header rpc.BlockHeader
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				count, err = daemon.GetBlockCount(gctx)
				return err
			})
			g.Go(func() error {
				var err error
				header, err = daemon.GetBlockHeader(gctx, rpc.LastBlock())
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "blocks: %d\n", count)
			printHeader(cmd, header)
			return nil
		},
	}
}
