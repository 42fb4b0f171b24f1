package chat

import (
	"context"

	"go.uber.org/zap"

	"github.com/armatrix/mcp-chat-go/console"
	"github.com/armatrix/mcp-chat-go/provider"
)

// ActionFunc performs the provider/model work on behalf of the command
// handlers. It may read and mutate the session directly and is expected to
// update the session's provider/model on a successful switch.
type ActionFunc func(ctx context.Context, args []string, sess *Session) error

// Commands bundles the slash-command handlers with their collaborators.
type Commands struct {
	console *console.Console
	log     *zap.Logger
	action  ActionFunc
}

// CommandsOption configures a Commands value.
type CommandsOption func(*Commands)

// WithConsole overrides the output sink.
func WithConsole(c *console.Console) CommandsOption {
	return func(cmds *Commands) { cmds.console = c }
}

// WithLogger overrides the logger.
func WithLogger(logger *zap.Logger) CommandsOption {
	return func(cmds *Commands) { cmds.log = logger }
}

// WithAction overrides the provider action the handlers delegate to.
func WithAction(action ActionFunc) CommandsOption {
	return func(cmds *Commands) { cmds.action = action }
}

// NewCommands creates the handler set. Defaults: stdout console, no logging,
// and the provider.Action implementation as the delegate.
func NewCommands(opts ...CommandsOption) *Commands {
	cmds := &Commands{
		console: console.Default(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cmds)
	}
	if cmds.action == nil {
		act := provider.NewAction(cmds.console, cmds.log)
		cmds.action = func(ctx context.Context, args []string, sess *Session) error {
			return act.Run(ctx, args, sess)
		}
	}
	return cmds
}

// RegisterAll registers /provider, /providers and /model on the registry.
func (c *Commands) RegisterAll(r *Registry) {
	r.Register("/provider", c.Provider)
	r.Register("/providers", c.Providers)
	r.Register("/model", c.Model)
}

// ensureManager attaches the default model registry to the session if it is
// missing, mirroring the lazy creation every handler performs.
func (c *Commands) ensureManager(sess *Session, command string) {
	if !sess.HasModelManager() {
		c.log.Debug("creating model manager", zap.String("command", command))
	}
	sess.ModelManager()
}

// rest returns the tokens after the command word.
func rest(parts []string) []string {
	if len(parts) <= 1 {
		return nil
	}
	return parts[1:]
}

// orDefault returns s, or fallback when s is empty.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
