// Package main is the entry point for the priceslider CLI.
package main

import (
	"fmt"
	"os"

	"PriceSlider/internal/config"
	"PriceSlider/internal/logging"
	"PriceSlider/internal/recorder"
	"PriceSlider/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

const defaultConfigPath = "configs/config.yaml"

type globalOptions struct {
	configPath string
	envFile    string
	logLevel   string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "priceslider",
		Short:         "Range slider engine for price buckets",
		Long:          `priceslider maps a two-handle range slider onto a list of price buckets and replays gestures against it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (env PRICESLIDER_CONFIG, default "+defaultConfigPath+")")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", ".env file loaded before the environment is read")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(replayCmd(opts))
	cmd.AddCommand(replCmd(opts))
	cmd.AddCommand(ticksCmd(opts))
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads the .env file, the config file and environment overrides,
// in that order.
func loadConfig(opts *globalOptions) (*config.Config, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	path := opts.configPath
	if path == "" {
		path = os.Getenv(config.EnvPrefix + "_CONFIG")
	}
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// newSession wires config, logger and recorder into a session.
func newSession(opts *globalOptions, rec recorder.Recorder) (*session.Session, *zap.Logger, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	s, err := session.New(cfg, rec, log)
	if err != nil {
		return nil, nil, fmt.Errorf("init session: %w", err)
	}
	log.Debug("session ready",
		zap.Float64("max_value", s.Engine.MaxValue()),
		zap.Float64("step", s.Engine.Step()))
	return s, log, nil
}
