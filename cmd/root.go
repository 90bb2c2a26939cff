package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcanaland/highlow/internal/config"
)

var logLevel string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "highlow",
	Short: "Play High & Low in your terminal",
	Long: `High & Low is a single-player card game. A 53-card deck (52 cards and a joker)
is shuffled and dealt two cards at a time. Guess whether the hidden card is higher
or lower than the one showing. A correct guess scores the hidden card's rank.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides log_level in the config file)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func setupLogger() error {
	logrus.SetOutput(os.Stderr)

	lvl := logLevel
	format := "text"
	if cfg, err := config.LoadConfig(); err == nil {
		if lvl == "" {
			lvl = cfg.LogLevel
		}
		format = cfg.LogFormat
	} else {
		logrus.WithError(err).Warn("could not load config, using defaults")
	}

	if lvl == "" {
		lvl = config.Default().LogLevel
	}

	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	return nil
}
