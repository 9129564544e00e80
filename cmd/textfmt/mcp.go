package main

import (
	cmdconfig "github.com/fernandofreitas03/textfmt/cmd/textfmt/config"
	"github.com/fernandofreitas03/textfmt/internal/mcp"
	"github.com/spf13/cobra"
)

var (
	mcpCmd = &cobra.Command{
		Use:   "mcp",
		Short: "MCP (Model Context Protocol) related commands",
	}

	mcpServeCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start an MCP server exposing the format_text tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcp.Serve(cmd.Context(), mcp.ServeConfig{Version: cmdconfig.Version})
		},
	}
)

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
