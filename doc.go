// Package chat provides the session state and slash-command layer of an
// MCP-based chat client.
//
// A host application owns the read/dispatch loop: it splits each input line
// into tokens, looks the command up in a [Registry], and invokes the handler
// with the shared [Session]. Handlers print their own feedback and report
// whether the chat loop should continue; they never terminate the session on
// error.
//
//	sess := chat.NewSession()
//	reg := chat.NewRegistry()
//	chat.NewCommands().RegisterAll(reg)
//	if h, ok := reg.Lookup(parts[0]); ok {
//	    h(ctx, parts, sess)
//	}
//
// # Sub-packages
//
//   - config loads mcpServers JSON documents into server launch parameters.
//   - mcp spawns and talks to the configured MCP server subprocesses.
//   - models is the provider/model registry consulted when switching.
//   - provider implements the shared action behind /provider.
//   - console is the colored line-output sink.
package chat
