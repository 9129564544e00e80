package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fernandofreitas03/textfmt/internal/logging"
	"github.com/fernandofreitas03/textfmt/internal/server"
)

var (
	Listen string

	serveCmd = &cobra.Command{
		Use:   "serve [flags]",
		Short: "Start an HTTP server exposing the formatter on POST /format",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewProductionLogger()
			if Debug {
				logger = logging.NewDebugLogger()
			}
			defer func() { _ = logger.Sync() }()

			srv, err := server.NewServer(server.Config{Listen: Listen, Log: logger})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx)
		},
	}
)

func init() {
	serveCmd.Flags().StringVar(&Listen, "listen", ":3000", "the address to listen on")
}
