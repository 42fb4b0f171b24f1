// Package config loads MCP server launch configuration from JSON files.
//
// The configuration document has the shape:
//
//	{"mcpServers": {"<name>": {"command": "...", "args": [...], "env": {...}}}}
//
// A Loader resolves one named entry into the StdioParameters used to spawn
// the server subprocess.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// StdioParameters describes how to launch a stdio MCP server subprocess.
// Values are fixed at load time; callers own the returned record.
type StdioParameters struct {
	// Command is the executable to spawn.
	Command string

	// Args are command-line arguments for the subprocess. Never nil.
	Args []string

	// Env are extra environment variables for the subprocess, nil when the
	// entry does not declare any.
	Env map[string]string
}

// ServerEntry is one named server in the mcpServers block.
type ServerEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// Config is a parsed MCP configuration document.
type Config struct {
	Servers map[string]*ServerEntry `json:"mcpServers"`
}

// Sentinel errors for the config package.
var (
	// ErrServerNotFound is returned when the requested server name has no
	// usable entry in the configuration document.
	ErrServerNotFound = errors.New("config: server not found")

	// ErrMalformedConfig matches any MalformedConfigError via errors.Is.
	ErrMalformedConfig = errors.New("config: malformed configuration")
)

// MalformedConfigError reports a configuration file that is not valid JSON.
// Offset is the byte position of the decode failure when the decoder
// provides one.
type MalformedConfigError struct {
	Path   string
	Offset int64
	Err    error
}

func (e *MalformedConfigError) Error() string {
	return fmt.Sprintf("invalid JSON in configuration file %s at offset %d: %v", e.Path, e.Offset, e.Err)
}

func (e *MalformedConfigError) Unwrap() error { return e.Err }

// Is reports ErrMalformedConfig so callers can match without the concrete type.
func (e *MalformedConfigError) Is(target error) bool { return target == ErrMalformedConfig }

// Loader reads MCP server configuration files.
type Loader struct {
	log *zap.Logger
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{log: logger}
}

// Load reads and parses a full configuration document.
func (l *Loader) Load(path string) (*Config, error) {
	l.log.Debug("loading MCP configuration", zap.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("configuration file not found: %s: %w", path, err)
		} else {
			err = fmt.Errorf("read configuration file %s: %w", path, err)
		}
		l.log.Error("configuration read failed", zap.Error(err))
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		merr := &MalformedConfigError{Path: path, Err: err}
		var syn *json.SyntaxError
		var typ *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syn):
			merr.Offset = syn.Offset
		case errors.As(err, &typ):
			merr.Offset = typ.Offset
		}
		l.log.Error("configuration parse failed", zap.Error(merr))
		return nil, merr
	}

	return &cfg, nil
}

// LoadServer resolves the named entry from the configuration file at path
// into subprocess launch parameters. Args defaults to an empty slice and Env
// stays nil when the entry omits them.
func (l *Loader) LoadServer(path, name string) (StdioParameters, error) {
	cfg, err := l.Load(path)
	if err != nil {
		return StdioParameters{}, err
	}

	entry := cfg.Servers[name]
	if entry == nil || entry.empty() {
		err := fmt.Errorf("%w: server %q not found in configuration file", ErrServerNotFound, name)
		l.log.Error("server lookup failed", zap.Error(err))
		return StdioParameters{}, err
	}

	params := StdioParameters{
		Command: entry.Command,
		Args:    append([]string{}, entry.Args...),
		Env:     entry.Env,
	}

	l.log.Debug("loaded server configuration",
		zap.String("server", name),
		zap.String("command", params.Command),
		zap.Strings("args", params.Args),
		zap.Any("env", params.Env))

	return params, nil
}

// empty reports whether the entry carries no data at all, which happens when
// the document declares the server as {} or null-ish content.
func (e *ServerEntry) empty() bool {
	return e.Command == "" && len(e.Args) == 0 && len(e.Env) == 0
}
