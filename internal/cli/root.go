// Package cli wires the command surface: thin callers around the exchange
// client and the order orchestrator.
package cli

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tradebot/internal/config"
	"tradebot/internal/logging"
	"tradebot/internal/rest"
)

var (
	flagAPIKey    string
	flagAPISecret string
	flagLogLevel  string
)

// app bundles the dependencies a command needs.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	client *rest.Client
}

var rootCmd = &cobra.Command{
	Use:   "tradebot",
	Short: "Binance Futures Testnet trading bot",
	Long: `Command-line client for the Binance Futures Testnet.

Examples:
  tradebot ping
  tradebot balance
  tradebot place --symbol BTCUSDT --side BUY --type MARKET --quantity 0.001
  tradebot place --symbol BTCUSDT --side SELL --type LIMIT --quantity 0.001 --price 90000
  tradebot interactive`,
	SilenceUsage: true,
}

// Execute runs the root command. It is called once by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Binance testnet API key")
	rootCmd.PersistentFlags().StringVar(&flagAPISecret, "api-secret", "", "Binance testnet API secret")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "logging verbosity (debug, info, warn, error)")
}

// buildApp resolves configuration, constructs the logger and the client.
// Flag values take precedence over environment variables.
func buildApp() (*app, error) {
	cfg := config.Load()
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagAPISecret != "" {
		cfg.APISecret = flagAPISecret
	}

	logger, err := logging.Setup(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		return nil, err
	}

	if !cfg.HasCredentials() {
		return nil, errors.New("API credentials not found: provide --api-key/--api-secret " +
			"or set BINANCE_TESTNET_API_KEY / BINANCE_TESTNET_API_SECRET")
	}

	client, err := rest.NewClient(cfg.APIKey, cfg.APISecret,
		logger.With().Str("component", "client").Logger(),
		rest.WithBaseURL(cfg.BaseURL),
		rest.WithTimeout(cfg.Timeout),
		rest.WithRecvWindow(cfg.RecvWindow),
	)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		client: client,
	}, nil
}
