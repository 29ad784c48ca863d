package main

import (
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-loans-go/config"
)

const (
	flagConfig          = "config"
	flagNotifier        = "notifier"
	flagReturnAfterDays = "return-after-days"
	flagLogLevel        = "log-level"
	flagTelemetry       = "telemetry"
)

// runFlags holds the command line overrides of the configuration.
type runFlags struct {
	configPath      string
	channel         string
	returnAfterDays int
	logLevel        string
	telemetry       bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, flagConfig, "c", "", "path to a TOML config file")
	cmd.Flags().StringVarP(&f.channel, flagNotifier, "n", "", "notification channel(s): email, sms, json, comma separated")
	cmd.Flags().IntVar(&f.returnAfterDays, flagReturnAfterDays, 0, "days between borrowing and returning the book")
	cmd.Flags().StringVar(&f.logLevel, flagLogLevel, "", "log level: debug, info, warn, error")
}

// resolve loads the config file, or the defaults, and applies the flags which were set explicitly.
func (f *runFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}

		cfg = loaded
	}

	if cmd.Flags().Changed(flagNotifier) {
		cfg.Notifier.Channel = f.channel
	}

	if cmd.Flags().Changed(flagReturnAfterDays) {
		cfg.Scenario.ReturnAfterDays = f.returnAfterDays
	}

	if cmd.Flags().Changed(flagLogLevel) {
		cfg.Logging.Level = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
