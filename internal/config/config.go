// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config loads the monero-rpc command's settings from flags,
// environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment variable, e.g. MONERO_DAEMON_URL.
const EnvPrefix = "MONERO"

// Keys shared by viper, the environment (with EnvPrefix) and flag bindings.
const (
	KeyDaemonURL = "daemon_url"
	KeyWalletURL = "wallet_url"
	KeyTimeout   = "timeout"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

const (
	DefaultDaemonURL = "http://127.0.0.1:18081"
	DefaultWalletURL = "http://127.0.0.1:18083"
	DefaultTimeout   = 30 * time.Second
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)

// ErrNoEndpoint is returned when a command needs a node url that is empty.
var ErrNoEndpoint = errors.New("node url is not configured")

// Config holds the command settings.
type Config struct {
	DaemonURL string        `validate:"omitempty,url"`
	WalletURL string        `validate:"omitempty,url"`
	Timeout   time.Duration `validate:"gte=0"`
	LogLevel  string        `validate:"oneof=debug info warn error"`
	LogFormat string        `validate:"oneof=json console"`
}

// SetDefaults registers the defaults and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyDaemonURL, DefaultDaemonURL)
	v.SetDefault(KeyWalletURL, DefaultWalletURL)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
}

// Load reads .env if present, then builds and validates a Config from v.
func Load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	SetDefaults(v)

	cfg := &Config{
		DaemonURL: v.GetString(KeyDaemonURL),
		WalletURL: v.GetString(KeyWalletURL),
		Timeout:   v.GetDuration(KeyTimeout),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Daemon returns the daemon url or ErrNoEndpoint.
func (c *Config) Daemon() (string, error) {
	if c.DaemonURL == "" {
		return "", fmt.Errorf("daemon: %w", ErrNoEndpoint)
	}
	return c.DaemonURL, nil
}

// Wallet returns the wallet url or ErrNoEndpoint.
func (c *Config) Wallet() (string, error) {
	if c.WalletURL == "" {
		return "", fmt.Errorf("wallet: %w", ErrNoEndpoint)
	}
	return c.WalletURL, nil
}

// NewLogger builds a zap logger writing to stderr.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	if c.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
