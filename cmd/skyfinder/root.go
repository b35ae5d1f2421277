package main

import (
	"github.com/Laisky/errors/v2"
	"github.com/spf13/cobra"

	"github.com/you/skyfinder/internal/config"
	"github.com/you/skyfinder/internal/log"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "skyfinder",
		Short: "Search flights from the terminal",
		Long: `skyfinder collects an origin, a destination and a date, sends them to a
flight search endpoint and shows the offers it returns.

Run without a subcommand to open the interactive search screen.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default: ./config.yaml, ./config/, /etc/skyfinder/)")
	pf.String("api-url", "http://localhost:8080/flights/search", "flight search endpoint")
	pf.Duration("request-timeout", config.DefaultRequestTimeout, "timeout for one search request")
	pf.String("display-timezone", "UTC", "IANA zone used to show times and dates")
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.String("log-file", "", "write logs to this file")

	root.AddCommand(newTUICmd(), newSearchCmd(), newStubCmd())
	return root
}

// setup loads configuration for cmd and points the shared logger at
// logPath when log_file is not configured.
func setup(cmd *cobra.Command, logPath string) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if cfg.LogFile != "" {
		logPath = cfg.LogFile
	}
	if err := log.Setup(cfg.LogLevel, logPath); err != nil {
		return nil, errors.Wrap(err, "setup logger")
	}

	return cfg, nil
}
