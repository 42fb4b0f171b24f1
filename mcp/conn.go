// Package mcp spawns configured MCP servers as subprocesses and talks to
// them over stdio JSON-RPC, exposing their tools to the chat session.
package mcp

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/armatrix/mcp-chat-go/config"
)

// clientInfo identifies this client during the MCP handshake.
var clientInfo = &gomcp.Implementation{
	Name:    "mcp-chat-go",
	Version: "0.1.0",
}

// ServerConn is an active connection to a single MCP server subprocess.
type ServerConn struct {
	name    string
	params  config.StdioParameters
	session *gomcp.ClientSession
}

// Dial spawns the server described by params and performs the MCP handshake
// over the subprocess's stdin/stdout. The subprocess inherits the parent
// environment plus any extra variables from params.
func Dial(ctx context.Context, name string, params config.StdioParameters) (*ServerConn, error) {
	if params.Command == "" {
		return nil, fmt.Errorf("%w: stdio server %q requires a command", ErrInvalidConfig, name)
	}

	cmd := exec.CommandContext(ctx, params.Command, params.Args...)
	if len(params.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range params.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	client := gomcp.NewClient(clientInfo, nil)
	session, err := client.Connect(ctx, &gomcp.CommandTransport{Command: cmd}, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to server %q: %w", name, err)
	}

	return &ServerConn{name: name, params: params, session: session}, nil
}

// Name returns the configured server name.
func (c *ServerConn) Name() string { return c.name }

// ListTools returns the names of the tools the server advertises.
func (c *ServerConn) ListTools(ctx context.Context) ([]string, error) {
	if c.session == nil {
		return nil, ErrNotConnected
	}
	result, err := c.session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tools on %q: %w", c.name, err)
	}
	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	return names, nil
}

// CallTool invokes a tool on the server and returns its concatenated text
// content. Tool-level failures are surfaced as errors.
func (c *ServerConn) CallTool(ctx context.Context, tool string, args map[string]any) (string, error) {
	if c.session == nil {
		return "", ErrNotConnected
	}
	result, err := c.session.CallTool(ctx, &gomcp.CallToolParams{
		Name:      tool,
		Arguments: args,
	})
	if err != nil {
		return "", fmt.Errorf("call tool %q on %q: %w", tool, c.name, err)
	}
	text := extractText(result)
	if result.IsError {
		return "", fmt.Errorf("tool %q on %q failed: %s", tool, c.name, text)
	}
	return text, nil
}

// Close shuts down the session and the server subprocess.
func (c *ServerConn) Close() error {
	if c.session == nil {
		return nil
	}
	session := c.session
	c.session = nil
	return session.Close()
}

func extractText(result *gomcp.CallToolResult) string {
	var text string
	for _, content := range result.Content {
		if tc, ok := content.(*gomcp.TextContent); ok {
			text += tc.Text
		}
	}
	return text
}
