package mcp_test

import (
	"context"
	"testing"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/fernandofreitas03/textfmt/internal/mcp"
)

type mcpTestSetup struct {
	ctx     context.Context
	session *gomcp.ClientSession
}

// setupMCPTest wires a client to the server over in-memory transports.
func setupMCPTest(t *testing.T) *mcpTestSetup {
	t.Helper()

	ctx := context.Background()
	clientTransport, serverTransport := gomcp.NewInMemoryTransports()

	server := mcp.NewServer(mcp.ServerConfig{Version: "test"})
	go func() {
		if err := server.Run(ctx, serverTransport); err != nil {
			t.Logf("Server error: %v", err)
		}
	}()

	client := gomcp.NewClient(&gomcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return &mcpTestSetup{ctx: ctx, session: session}
}

func expectTextResult(t *testing.T, result *gomcp.CallToolResult, expectedText string) {
	t.Helper()

	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	textContent, ok := result.Content[0].(*gomcp.TextContent)
	require.True(t, ok)
	require.Equal(t, expectedText, textContent.Text)
}

func TestServer_FormatText(t *testing.T) {
	t.Run("formats text", func(t *testing.T) {
		setup := setupMCPTest(t)

		result, err := setup.session.CallTool(setup.ctx, &gomcp.CallToolParams{
			Name: "format_text",
			Arguments: map[string]any{
				"text":  "the quick brown fox jumps",
				"width": 11,
			},
		})
		require.NoError(t, err)

		expectTextResult(t, result, "the quick\nbrown fox\njumps")
	})

	t.Run("justifies text", func(t *testing.T) {
		setup := setupMCPTest(t)

		result, err := setup.session.CallTool(setup.ctx, &gomcp.CallToolParams{
			Name: "format_text",
			Arguments: map[string]any{
				"text":    "the quick brown fox",
				"width":   11,
				"justify": true,
			},
		})
		require.NoError(t, err)

		expectTextResult(t, result, "the   quick\nbrown fox")
	})

	t.Run("when the width is invalid", func(t *testing.T) {
		setup := setupMCPTest(t)

		result, err := setup.session.CallTool(setup.ctx, &gomcp.CallToolParams{
			Name: "format_text",
			Arguments: map[string]any{
				"text":  "hello",
				"width": 0,
			},
		})
		require.NoError(t, err)

		require.True(t, result.IsError)
		require.Contains(t, result.Content[0].(*gomcp.TextContent).Text, "width must be a positive integer")
	})
}

func TestNewServer(t *testing.T) {
	t.Run("creates a server", func(t *testing.T) {
		require.NotNil(t, mcp.NewServer(mcp.ServerConfig{Version: "test"}))
	})
}
