package mcp

import "errors"

// Sentinel errors for the MCP package.
var (
	// ErrNotConnected is returned when using a connection whose session has
	// already been closed or never established.
	ErrNotConnected = errors.New("mcp: server not connected")

	// ErrServerNotFound is returned when referencing a server name that
	// does not exist in the Manager.
	ErrServerNotFound = errors.New("mcp: server not found")

	// ErrInvalidConfig is returned when launch parameters are missing
	// required fields.
	ErrInvalidConfig = errors.New("mcp: invalid server config")
)
