// Package models maintains the registry of LLM providers and the models each
// one offers. A Manager is the shared handle the chat session consults when
// listing, validating, or switching provider/model pairs.
package models

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrModelDiscovery is wrapped by any failure to enumerate a provider's
// models. Callers branch on it with errors.Is rather than inspecting
// message text.
var ErrModelDiscovery = errors.New("models: model discovery failed")

// ProviderConfig holds the per-provider registry entry.
type ProviderConfig struct {
	// APIKeyEnv names the environment variable carrying the provider's key.
	// Empty for providers that need none (local runtimes).
	APIKeyEnv string

	// BaseURL overrides the provider endpoint when non-empty.
	BaseURL string

	// DefaultModel is used when a switch names the provider but no model.
	DefaultModel string

	// Models are the known model identifiers, in display order.
	Models []string
}

// Manager is a provider/model registry. The zero catalog ships built in;
// entries can be mutated at runtime or replaced by live listings.
type Manager struct {
	mu        sync.RWMutex
	providers map[string]*ProviderConfig
}

// NewManager creates a Manager seeded with the built-in catalog.
func NewManager() *Manager {
	providers := make(map[string]*ProviderConfig, len(builtinCatalog))
	for name, cfg := range builtinCatalog {
		c := *cfg
		c.Models = append([]string{}, cfg.Models...)
		providers[name] = &c
	}
	return &Manager{providers: providers}
}

// Providers returns all known provider names, sorted.
func (m *Manager) Providers() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Available returns the models offered by the named provider. Unknown
// providers and empty catalogs fail with an error wrapping ErrModelDiscovery.
func (m *Manager) Available(provider string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfg, ok := m.providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: unknown provider %q", ErrModelDiscovery, provider)
	}
	if len(cfg.Models) == 0 {
		return nil, fmt.Errorf("%w: provider %q has no models", ErrModelDiscovery, provider)
	}
	return append([]string{}, cfg.Models...), nil
}

// Exists reports whether the provider offers the named model.
func (m *Manager) Exists(provider, model string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfg, ok := m.providers[provider]
	if !ok {
		return false
	}
	for _, known := range cfg.Models {
		if known == model {
			return true
		}
	}
	return false
}

// DefaultModel returns the provider's default model, or empty for unknown
// providers.
func (m *Manager) DefaultModel(provider string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if cfg, ok := m.providers[provider]; ok {
		return cfg.DefaultModel
	}
	return ""
}

// Config returns a copy of the provider's registry entry.
func (m *Manager) Config(provider string) (ProviderConfig, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfg, ok := m.providers[provider]
	if !ok {
		return ProviderConfig{}, false
	}
	out := *cfg
	out.Models = append([]string{}, cfg.Models...)
	return out, true
}

// SetModels replaces the provider's model list, creating the provider entry
// if needed. The first model becomes the default when none is set.
func (m *Manager) SetModels(provider string, modelIDs []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg, ok := m.providers[provider]
	if !ok {
		cfg = &ProviderConfig{}
		m.providers[provider] = cfg
	}
	cfg.Models = append([]string{}, modelIDs...)
	if cfg.DefaultModel == "" && len(cfg.Models) > 0 {
		cfg.DefaultModel = cfg.Models[0]
	}
}

// SetConfigValue updates one configuration field on a provider entry.
// Supported keys: default_model, api_key_env, base_url.
func (m *Manager) SetConfigValue(provider, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg, ok := m.providers[provider]
	if !ok {
		return fmt.Errorf("unknown provider %q", provider)
	}
	switch key {
	case "default_model":
		cfg.DefaultModel = value
	case "api_key_env":
		cfg.APIKeyEnv = value
	case "base_url":
		cfg.BaseURL = value
	default:
		return fmt.Errorf("unknown config key %q for provider %q", key, provider)
	}
	return nil
}

// builtinCatalog is the seed registry. Live refreshes (RefreshAnthropic) and
// SetModels can replace individual entries at runtime.
var builtinCatalog = map[string]*ProviderConfig{
	"openai": {
		APIKeyEnv:    "OPENAI_API_KEY",
		DefaultModel: "gpt-4o-mini",
		Models: []string{
			"gpt-4o", "gpt-4o-mini", "gpt-4.1", "gpt-4.1-mini", "gpt-4.1-nano",
			"gpt-4-turbo", "gpt-4", "gpt-3.5-turbo",
			"o1", "o1-mini", "o3", "o3-mini", "o4-mini",
		},
	},
	"anthropic": {
		APIKeyEnv:    "ANTHROPIC_API_KEY",
		DefaultModel: "claude-sonnet-4-5",
		Models: []string{
			"claude-sonnet-4-5", "claude-haiku-4-5", "claude-opus-4-1",
			"claude-3-7-sonnet-latest", "claude-3-5-haiku-latest",
		},
	},
	"ollama": {
		BaseURL:      "http://localhost:11434",
		DefaultModel: "llama3.3",
		Models: []string{
			"llama3.3", "llama3.2", "qwen2.5-coder", "mistral", "phi4",
		},
	},
	"gemini": {
		APIKeyEnv:    "GEMINI_API_KEY",
		DefaultModel: "gemini-2.0-flash",
		Models: []string{
			"gemini-2.0-flash", "gemini-2.0-flash-lite", "gemini-1.5-pro",
		},
	},
	"groq": {
		APIKeyEnv:    "GROQ_API_KEY",
		DefaultModel: "llama-3.3-70b-versatile",
		Models: []string{
			"llama-3.3-70b-versatile", "llama-3.1-8b-instant", "mixtral-8x7b-32768",
		},
	},
}
