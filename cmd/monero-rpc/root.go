// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	rpc "github.com/luxfi/monero-rpc"
	"github.com/luxfi/monero-rpc/internal/config"
)

// env is what every subcommand needs once flags are parsed.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	e := &env{}

	cmd := &cobra.Command{
		Use:           "monero-rpc",
		Short:         "Query a Monero daemon or wallet over JSON-RPC",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			logger, err := cfg.NewLogger()
			if err != nil {
				return err
			}
			e.cfg, e.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("daemon-url", config.DefaultDaemonURL, "monerod address")
	flags.String("wallet-url", config.DefaultWalletURL, "monero-wallet-rpc address")
	flags.Duration("timeout", config.DefaultTimeout, "deadline for each command, 0 for none")
	flags.String("log-level", config.DefaultLogLevel, "debug, info, warn or error")
	flags.String("log-format", config.DefaultLogFormat, "json or console")
	for key, flag := range map[string]string{
		config.KeyDaemonURL: "daemon-url",
		config.KeyWalletURL: "wallet-url",
		config.KeyTimeout:   "timeout",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	cmd.AddCommand(daemonCmd(e))
	cmd.AddCommand(walletCmd(e))

	return cmd
}

func (e *env) context(parent context.Context) (context.Context, context.CancelFunc) {
	if e.cfg.Timeout > 0 {
		return context.WithTimeout(parent, e.cfg.Timeout)
	}
	return context.WithCancel(parent)
}

func (e *env) daemon() (*rpc.DaemonClient, error) {
	addr, err := e.cfg.Daemon()
	if err != nil {
		return nil, err
	}
	return rpc.DialDaemon(addr, rpc.WithLogger(e.logger.Named("daemon")))
}

func (e *env) wallet() (*rpc.WalletClient, error) {
	addr, err := e.cfg.Wallet()
	if err != nil {
		return nil, err
	}
	return rpc.DialWallet(addr, rpc.WithLogger(e.logger.Named("wallet")))
}

func newTable(out io.Writer, header ...interface{}) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row(header))
	return t
}
