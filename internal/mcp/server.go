// Package mcp exposes the formatter as an MCP tool over stdio.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fernandofreitas03/textfmt/internal/text"
)

type ServeConfig struct {
	Version string
}

func Serve(ctx context.Context, config ServeConfig) error {
	server := NewServer(ServerConfig(config))
	return server.Run(ctx, mcp.NewStdioTransport())
}

type Server struct {
	ms *mcp.Server
}

type ServerConfig struct {
	Version string
}

func NewServer(config ServerConfig) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "textfmt-mcp-server",
		Version: config.Version,
	}, &mcp.ServerOptions{})

	server := &Server{ms: mcpServer}
	server.addTools()

	return server
}

func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.ms.Run(ctx, transport)
}

func (s *Server) addTools() {
	mcp.AddTool(s.ms, &mcp.Tool{
		Name: "format_text",
		Description: `Break text into lines no wider than the given width, optionally justifying
the lines so each one (except the last) is exactly that wide.

Words are never split: a single word longer than the width is emitted on its
own overflowing line. Whitespace in the input is normalized away.`,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint: true,
		},
	}, s.formatText)
}

type FormatTextInput struct {
	Text            string `json:"text" jsonschema:"The text to format"`
	Width           int    `json:"width" jsonschema:"The maximum line width in characters; must be at least 1"`
	Justify         bool   `json:"justify,omitempty" jsonschema:"Stretch every line except the last to exactly the width"`
	JustifyLastLine bool   `json:"justify_last_line,omitempty" jsonschema:"Also stretch the final line"`
}

func (s *Server) formatText(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[FormatTextInput]) (*mcp.CallToolResult, error) {
	_, formatted, err := text.Format(params.Arguments.Text, text.Options{
		Width:           params.Arguments.Width,
		Justify:         params.Arguments.Justify,
		JustifyLastLine: params.Arguments.JustifyLastLine,
	})
	if err != nil {
		return nil, err
	}

	return mcpToolTextResult(formatted), nil
}

func mcpToolTextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: text,
			},
		},
	}
}
