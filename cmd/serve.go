package cmd

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/simonvc/tripbudget/internal/ledger"
	"github.com/simonvc/tripbudget/internal/server"
	"github.com/simonvc/tripbudget/internal/store"
	"github.com/simonvc/tripbudget/internal/tools"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tools over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.ServerURL != "" {
			return errors.New("serve always uses the local database; drop --server")
		}
		addr := cfg.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}

		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		facade := tools.New(st, ledger.DefaultRates(), logger)
		logger.Info("starting tripbudget server", "addr", addr, "db", cfg.DBPath)
		return server.New(facade, st, addr, logger).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8888", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
