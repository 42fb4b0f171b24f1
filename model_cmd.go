package chat

import (
	"context"

	"github.com/armatrix/mcp-chat-go/models"
)

// modelListLimit caps how many models the no-argument /model branch prints.
const modelListLimit = 10

// Model handles the /model slash command: with no argument it shows the
// current provider/model pair and the provider's available models; with an
// argument it switches the current provider to that model via the delegate.
func (c *Commands) Model(ctx context.Context, parts []string, sess *Session) bool {
	if len(parts) < 2 {
		currentProvider := orDefault(sess.Provider(), "unknown")
		currentModel := orDefault(sess.Model(), "unknown")
		c.console.Infof("Current model: %s/%s", currentProvider, currentModel)

		// Enumerate from a fresh registry, independent of whatever handle
		// the session carries.
		available, err := models.NewManager().Available(currentProvider)
		if err != nil {
			c.console.Warnf("Could not list models: %v", err)
			return true
		}

		c.console.Infof("Available models for %s:", currentProvider)
		for i, model := range available {
			if i == modelListLimit {
				break
			}
			marker := "   "
			if model == currentModel {
				marker = "→ "
			}
			c.console.Printf("  %s%s", marker, model)
		}
		if extra := len(available) - modelListLimit; extra > 0 {
			c.console.Printf("  ... and %d more", extra)
		}
		return true
	}

	modelName := parts[1]
	currentProvider := orDefault(sess.Provider(), "openai")

	if err := c.action(ctx, []string{currentProvider, modelName}, sess); err != nil {
		c.console.Errorf("Model switch failed: %v", err)
		c.console.Warnf("Try: /provider %s %s", currentProvider, modelName)
	}
	return true
}
