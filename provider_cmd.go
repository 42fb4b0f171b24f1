package chat

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/armatrix/mcp-chat-go/models"
)

// Provider handles the /provider slash command. Everything after the command
// word is forwarded to the delegate; on a successful switch the new
// provider/model pair is confirmed. Errors are reported to the user and the
// chat loop always continues.
func (c *Commands) Provider(ctx context.Context, parts []string, sess *Session) bool {
	c.ensureManager(sess, "provider")

	oldProvider := sess.Provider()
	oldModel := sess.Model()

	if err := c.action(ctx, rest(parts), sess); err != nil {
		c.console.Errorf("Provider command failed: %v", err)
		c.log.Error("provider command failed", zap.Error(err), zap.Stack("stack"))

		if errors.Is(err, models.ErrModelDiscovery) {
			c.console.Warnf("Troubleshooting:")
			c.console.Printf("  • The provider's model catalog could not be read")
			c.console.Printf("  • Try: /provider list to see current provider status")
			c.console.Printf("  • Current context: provider=%s, model=%s", sess.Provider(), sess.Model())
		}
		return true
	}

	newProvider := sess.Provider()
	newModel := sess.Model()
	if (newProvider != oldProvider || newModel != oldModel) && newProvider != "" {
		c.console.Successf("Chat session now using: %s/%s", newProvider, newModel)
		c.console.Hintf("Future messages will use the new provider.")
	}
	return true
}

// Providers handles the /providers slash command, defaulting to "list" when
// no subcommand is given.
func (c *Commands) Providers(ctx context.Context, parts []string, sess *Session) bool {
	c.ensureManager(sess, "providers")

	args := rest(parts)
	if len(args) == 0 {
		args = []string{"list"}
	}

	if err := c.action(ctx, args, sess); err != nil {
		c.console.Errorf("Providers command failed: %v", err)
		c.log.Error("providers command failed", zap.Error(err), zap.Stack("stack"))
	}
	return true
}
