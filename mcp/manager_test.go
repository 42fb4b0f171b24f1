package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armatrix/mcp-chat-go/config"
)

func TestDial_EmptyCommand(t *testing.T) {
	_, err := Dial(context.Background(), "empty", config.StdioParameters{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "empty")
}

func TestManager_GetUnknownServer(t *testing.T) {
	m := NewManager(nil)
	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrServerNotFound)
}

func TestManager_AddAndGet(t *testing.T) {
	m := NewManager(nil)
	m.Add(&ServerConn{name: "fs"})
	m.Add(&ServerConn{name: "db"})

	conn, err := m.Get("fs")
	require.NoError(t, err)
	assert.Equal(t, "fs", conn.Name())
	assert.Equal(t, []string{"db", "fs"}, m.ServerNames())
}

func TestManager_CloseClears(t *testing.T) {
	m := NewManager(nil)
	m.Add(&ServerConn{name: "fs"})

	require.NoError(t, m.Close())
	assert.Empty(t, m.ServerNames())
}

func TestServerConn_NotConnected(t *testing.T) {
	conn := &ServerConn{name: "fs"}

	_, err := conn.ListTools(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)

	_, err = conn.CallTool(context.Background(), "read", nil)
	assert.ErrorIs(t, err, ErrNotConnected)

	assert.NoError(t, conn.Close())
}

func TestManager_ConnectSkipsBadEntries(t *testing.T) {
	m := NewManager(nil)
	m.Connect(context.Background(), &config.Config{
		Servers: map[string]*config.ServerEntry{
			"nilentry": nil,
			"badcmd":   {Command: ""},
		},
	})
	assert.Empty(t, m.ServerNames())
}
