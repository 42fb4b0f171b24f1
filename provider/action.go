// Package provider implements the shared provider action behind the
// /provider family of chat commands: listing providers, dumping their
// configuration, probing them, and switching the session's provider/model
// pair with a catalog safety check before anything is committed.
package provider

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/armatrix/mcp-chat-go/console"
	"github.com/armatrix/mcp-chat-go/models"
)

// Session is the slice of chat session state the action reads and mutates.
type Session interface {
	Provider() string
	SetProvider(string)
	Model() string
	SetModel(string)
	ModelManager() *models.Manager
}

// Action performs provider subcommands against a Session.
type Action struct {
	console *console.Console
	log     *zap.Logger
}

// NewAction creates an Action. A nil console writes to stdout; a nil logger
// disables logging.
func NewAction(c *console.Console, logger *zap.Logger) *Action {
	if c == nil {
		c = console.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Action{console: c, log: logger}
}

// Run executes one provider subcommand:
//
//	(no args)               show current provider and model
//	list                    list all providers
//	config                  dump per-provider configuration
//	diagnostic              probe each provider's model catalog
//	set <prov> <key> <val>  change one provider config value
//	<prov> [model]          switch provider (and optionally model)
//
// Switching mutates the session's provider/model only after the target
// provider's catalog has been read and the model validated against it.
func (a *Action) Run(ctx context.Context, args []string, sess Session) error {
	mgr := sess.ModelManager()

	if len(args) == 0 {
		a.showCurrent(sess)
		return nil
	}

	switch args[0] {
	case "list":
		a.list(sess, mgr)
		return nil
	case "config":
		a.dumpConfig(mgr)
		return nil
	case "diagnostic":
		a.diagnose(ctx, mgr)
		return nil
	case "set":
		if len(args) != 4 {
			return fmt.Errorf("usage: set <provider> <key> <value>")
		}
		if err := mgr.SetConfigValue(args[1], args[2], args[3]); err != nil {
			return err
		}
		a.console.Successf("Set %s.%s = %s", args[1], args[2], args[3])
		return nil
	default:
		return a.switchTo(args, sess, mgr)
	}
}

func (a *Action) showCurrent(sess Session) {
	provider := sess.Provider()
	model := sess.Model()
	if provider == "" {
		a.console.Warnf("No provider selected")
		return
	}
	a.console.Infof("Current provider: %s/%s", provider, model)
}

func (a *Action) list(sess Session, mgr *models.Manager) {
	current := sess.Provider()
	a.console.Infof("Available providers:")
	for _, name := range mgr.Providers() {
		marker := "   "
		if name == current {
			marker = "→ "
		}
		count := 0
		if available, err := mgr.Available(name); err == nil {
			count = len(available)
		}
		a.console.Printf("  %s%s (%d models, default: %s)", marker, name, count, mgr.DefaultModel(name))
	}
}

func (a *Action) dumpConfig(mgr *models.Manager) {
	for _, name := range mgr.Providers() {
		cfg, ok := mgr.Config(name)
		if !ok {
			continue
		}
		a.console.Infof("%s:", name)
		a.console.Printf("  default model: %s", cfg.DefaultModel)
		if cfg.APIKeyEnv != "" {
			a.console.Printf("  api key env:   %s", cfg.APIKeyEnv)
		}
		if cfg.BaseURL != "" {
			a.console.Printf("  base url:      %s", cfg.BaseURL)
		}
		a.console.Printf("  models:        %d", len(cfg.Models))
		for _, m := range cfg.Models {
			if p, ok := models.Pricing(name, m); ok {
				a.console.Printf("    %s ($%s in / $%s out per MTok)",
					m, p.InputPerMTok.String(), p.OutputPerMTok.String())
			}
		}
	}
}

func (a *Action) diagnose(ctx context.Context, mgr *models.Manager) {
	for _, name := range mgr.Providers() {
		if err := ctx.Err(); err != nil {
			a.console.Warnf("Diagnostic aborted: %v", err)
			return
		}
		if _, err := mgr.Available(name); err != nil {
			a.console.Errorf("  %s: %v", name, err)
			a.log.Warn("provider diagnostic failed", zap.String("provider", name), zap.Error(err))
			continue
		}
		a.console.Successf("  %s: ok", name)
	}
}

// switchTo commits a provider/model change. The catalog read doubles as the
// safety probe: an unreadable catalog aborts the switch before the session
// is touched.
func (a *Action) switchTo(args []string, sess Session, mgr *models.Manager) error {
	name := args[0]

	available, err := mgr.Available(name)
	if err != nil {
		return err
	}

	model := mgr.DefaultModel(name)
	if len(args) > 1 {
		model = args[1]
	}
	if model == "" && len(available) > 0 {
		model = available[0]
	}
	if !mgr.Exists(name, model) {
		return fmt.Errorf("model %q is not available for provider %q", model, name)
	}

	sess.SetProvider(name)
	sess.SetModel(model)
	a.log.Debug("provider switched",
		zap.String("provider", name),
		zap.String("model", model))
	return nil
}
