package chat

import (
	"context"
	"sort"
)

// HandlerFunc handles one slash-command invocation. parts is the tokenized
// command line including the command word itself. The return value reports
// whether the chat loop should continue; handlers in this package always
// return true.
type HandlerFunc func(ctx context.Context, parts []string, sess *Session) bool

// Registry maps command names (including the leading slash) to handlers.
type Registry struct {
	handlers map[string]HandlerFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]HandlerFunc)}
}

// Register adds or replaces the handler for name.
func (r *Registry) Register(name string, h HandlerFunc) {
	r.handlers[name] = h
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (HandlerFunc, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns all registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
