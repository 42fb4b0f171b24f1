package chat

import (
	"github.com/google/uuid"

	"github.com/armatrix/mcp-chat-go/models"
)

// Well-known session keys. Handlers and collaborators share state through
// these; arbitrary additional keys are allowed.
const (
	KeyProvider     = "provider"
	KeyModel        = "model"
	KeyModelManager = "model_manager"
)

// Session is the mutable state shared by every command handler for the
// lifetime of one chat session. It is passed by reference and mutated in
// place; the dispatcher serializes command execution, so Session performs no
// locking of its own.
type Session struct {
	id     string
	values map[string]any
}

// NewSession creates an empty Session with a fresh ID.
func NewSession() *Session {
	return &Session{
		id:     uuid.NewString(),
		values: make(map[string]any),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Get returns the value stored under key.
func (s *Session) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores a value under key.
func (s *Session) Set(key string, v any) {
	s.values[key] = v
}

// Delete removes the value stored under key.
func (s *Session) Delete(key string) {
	delete(s.values, key)
}

func (s *Session) getString(key string) string {
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return ""
}

// Provider returns the current provider name, or empty if none is selected.
func (s *Session) Provider() string { return s.getString(KeyProvider) }

// SetProvider records the current provider name.
func (s *Session) SetProvider(name string) { s.values[KeyProvider] = name }

// Model returns the current model name, or empty if none is selected.
func (s *Session) Model() string { return s.getString(KeyModel) }

// SetModel records the current model name.
func (s *Session) SetModel(name string) { s.values[KeyModel] = name }

// HasModelManager reports whether a model registry is already attached.
func (s *Session) HasModelManager() bool {
	mm, ok := s.values[KeyModelManager].(*models.Manager)
	return ok && mm != nil
}

// ModelManager returns the session's model registry, creating a default one
// on first use. The created registry is reused by every later call until it
// is explicitly removed from the session.
func (s *Session) ModelManager() *models.Manager {
	if mm, ok := s.values[KeyModelManager].(*models.Manager); ok && mm != nil {
		return mm
	}
	mm := models.NewManager()
	s.values[KeyModelManager] = mm
	return mm
}
