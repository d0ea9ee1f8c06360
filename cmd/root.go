package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/simonvc/tripbudget/internal/config"
	"github.com/simonvc/tripbudget/internal/logging"
)

var (
	flagServer    string
	flagDB        string
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tripbudget",
	Short: "Trip expense ledger with agent-callable budget tools",
	Long: "Records food, hotel and transport costs of a trip in a SQLite ledger and reports the budget.\n" +
		"The same tools are served over HTTP for an external agent to call by name.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		c, err := config.Load()
		if err != nil {
			return err
		}

		// Flags win over the environment.
		flags := cmd.Flags()
		if flags.Changed("server") {
			c.ServerURL = flagServer
		}
		if flags.Changed("db") {
			c.DBPath = flagDB
		}
		if flags.Changed("log-level") {
			c.LogLevel = flagLogLevel
		}
		if flags.Changed("log-format") {
			c.LogFormat = flagLogFormat
		}
		if err := c.Validate(); err != nil {
			return err
		}

		l, err := logging.New(c.LogLevel, c.LogFormat, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		cfg, logger = c, l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "Server address; commands run against the local database when empty")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "trip_budget.db", "SQLite database path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")
}

func Execute() error {
	return rootCmd.Execute()
}
