package mcp

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/armatrix/mcp-chat-go/config"
)

// Manager manages connections to multiple MCP servers.
type Manager struct {
	log   *zap.Logger
	mu    sync.RWMutex
	conns map[string]*ServerConn
}

// NewManager creates an empty Manager. A nil logger disables logging.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		log:   logger,
		conns: make(map[string]*ServerConn),
	}
}

// Connect dials every server in the configuration document. A server that
// fails to connect is logged and skipped so one bad entry does not take the
// rest down.
func (m *Manager) Connect(ctx context.Context, cfg *config.Config) {
	for name, entry := range cfg.Servers {
		if entry == nil {
			continue
		}
		params := config.StdioParameters{
			Command: entry.Command,
			Args:    entry.Args,
			Env:     entry.Env,
		}
		conn, err := Dial(ctx, name, params)
		if err != nil {
			m.log.Warn("mcp server connection failed",
				zap.String("server", name),
				zap.Error(err))
			continue
		}
		m.log.Debug("mcp server connected", zap.String("server", name))

		m.mu.Lock()
		m.conns[name] = conn
		m.mu.Unlock()
	}
}

// Add registers an already-dialed connection under its name.
func (m *Manager) Add(conn *ServerConn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[conn.Name()] = conn
}

// Get returns the connection for the named server.
func (m *Manager) Get(name string) (*ServerConn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	conn, ok := m.conns[name]
	if !ok {
		return nil, ErrServerNotFound
	}
	return conn, nil
}

// ServerNames returns the names of all connected servers, sorted.
func (m *Manager) ServerNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.conns))
	for name := range m.conns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close disconnects from all servers, returning the joined close errors.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var errs []error
	for _, conn := range m.conns {
		if err := conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	m.conns = make(map[string]*ServerConn)
	return errors.Join(errs...)
}
