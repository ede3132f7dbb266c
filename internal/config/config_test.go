// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultDaemonURL, cfg.DaemonURL)
	assert.Equal(t, DefaultWalletURL, cfg.WalletURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MONERO_DAEMON_URL", "http://node:38081")
	t.Setenv("MONERO_TIMEOUT", "5s")
	t.Setenv("MONERO_LOG_LEVEL", "debug")
	t.Setenv("MONERO_LOG_FORMAT", "json")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://node:38081", cfg.DaemonURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"MONERO_LOG_LEVEL":  "loud",
		"MONERO_LOG_FORMAT": "xml",
		"MONERO_WALLET_URL": "not a url",
	}
	for env, value := range tests {
		t.Run(env, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(env, value)
			_, err := Load(viper.New())
			assert.Error(t, err)
		})
	}
}

func TestEndpoints(t *testing.T) {
	cfg := &Config{WalletURL: "http://w:1"}
	_, err := cfg.Daemon()
	assert.ErrorIs(t, err, ErrNoEndpoint)

	url, err := cfg.Wallet()
	require.NoError(t, err)
	assert.Equal(t, "http://w:1", url)
}
