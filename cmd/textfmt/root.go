package main

import (
	"os"
	"path/filepath"

	cmdconfig "github.com/fernandofreitas03/textfmt/cmd/textfmt/config"
	"github.com/fernandofreitas03/textfmt/internal/cli"
	"github.com/fernandofreitas03/textfmt/internal/config"
	"github.com/fernandofreitas03/textfmt/internal/errors"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

var (
	Debug bool

	service            cli.Service
	preferencesBackend config.Backend

	// rootCmd represents the main `textfmt` command
	rootCmd = &cobra.Command{
		Use:           "textfmt",
		Short:         "Wrap and justify text to a maximum line width",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       cmdconfig.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error

			preferencesBackend, err = config.NewFileBackend(
				filepath.Join("~", ".config", "textfmt"),
				filepath.Join("~", ".textfmt"),
			)
			if err != nil {
				return errors.Wrap(err, "unable to initialize preferences backend")
			}

			service, err = cli.NewService(cli.Config{
				Preferences: preferencesBackend,
				Stdin:       os.Stdin,
				Stdout:      os.Stdout,
				StdoutIsTTY: term.IsTerminal(int(os.Stdout.Fd())),
				Stderr:      os.Stderr,
				StderrIsTTY: term.IsTerminal(int(os.Stderr.Fd())),
			})
			if err != nil {
				return errors.Wrap(err, "unable to initialize CLI")
			}

			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug output")

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
}
