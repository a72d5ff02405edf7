package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ehvi8r/G7-Auditor/config"
	"github.com/ehvi8r/G7-Auditor/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve audits over HTTP",
	Long: `Starts a JSON API:
	GET /chains
	GET /audit/{chain}/{address}   (?format=markdown for the markdown report)
	GET /wallet/{chain}/{address}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		addr := config.ServerAddr
		if addr == "" {
			addr = a.cfg.ServerAddr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		h := server.NewHandler(a.auditor, a.registry, a.logger)
		return server.ListenAndServe(ctx, addr, h.Routes(), a.logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&config.ServerAddr, "addr", "a", "", "listen address, overrides SERVER_ADDR")
}
