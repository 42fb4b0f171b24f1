package chat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armatrix/mcp-chat-go/console"
	"github.com/armatrix/mcp-chat-go/models"
)

// capturingAction records every delegate invocation and optionally fails or
// mutates the session.
type capturingAction struct {
	calls  [][]string
	err    error
	onCall func(sess *Session)
}

func (a *capturingAction) fn(_ context.Context, args []string, sess *Session) error {
	a.calls = append(a.calls, append([]string{}, args...))
	if a.onCall != nil {
		a.onCall(sess)
	}
	return a.err
}

func newTestCommands(action *capturingAction) (*Commands, *bytes.Buffer) {
	var buf bytes.Buffer
	cmds := NewCommands(
		WithConsole(console.New(&buf)),
		WithAction(action.fn),
	)
	return cmds, &buf
}

func TestProvider_ForwardsArgsAfterCommandWord(t *testing.T) {
	action := &capturingAction{}
	cmds, _ := newTestCommands(action)

	ok := cmds.Provider(context.Background(), []string{"/provider", "anthropic", "claude-haiku-4-5"}, NewSession())
	assert.True(t, ok)
	require.Len(t, action.calls, 1)
	assert.Equal(t, []string{"anthropic", "claude-haiku-4-5"}, action.calls[0])
}

func TestProvider_ConfirmsSwitch(t *testing.T) {
	action := &capturingAction{
		onCall: func(sess *Session) {
			sess.SetProvider("anthropic")
			sess.SetModel("claude-haiku-4-5")
		},
	}
	cmds, buf := newTestCommands(action)

	cmds.Provider(context.Background(), []string{"/provider", "anthropic"}, NewSession())
	out := buf.String()
	assert.Contains(t, out, "Chat session now using: anthropic/claude-haiku-4-5")
	assert.Contains(t, out, "Future messages will use the new provider.")
}

func TestProvider_NoConfirmationWhenNothingChanged(t *testing.T) {
	action := &capturingAction{}
	cmds, buf := newTestCommands(action)

	sess := NewSession()
	sess.SetProvider("openai")
	sess.SetModel("gpt-4o")

	cmds.Provider(context.Background(), []string{"/provider", "list"}, sess)
	assert.NotContains(t, buf.String(), "Chat session now using")
}

func TestProvider_DelegateFailureKeepsSessionAndContinues(t *testing.T) {
	action := &capturingAction{err: errors.New("boom")}
	cmds, buf := newTestCommands(action)

	sess := NewSession()
	sess.SetProvider("openai")
	sess.SetModel("gpt-4o")

	ok := cmds.Provider(context.Background(), []string{"/provider", "bogus"}, sess)
	assert.True(t, ok)
	assert.Equal(t, "openai", sess.Provider())
	assert.Equal(t, "gpt-4o", sess.Model())
	assert.Contains(t, buf.String(), "Provider command failed: boom")
	assert.NotContains(t, buf.String(), "Troubleshooting")
}

func TestProvider_ModelDiscoveryFailureShowsTroubleshooting(t *testing.T) {
	action := &capturingAction{
		err: fmt.Errorf("%w: unknown provider %q", models.ErrModelDiscovery, "bogus"),
	}
	cmds, buf := newTestCommands(action)

	sess := NewSession()
	sess.SetProvider("openai")
	sess.SetModel("gpt-4o")

	cmds.Provider(context.Background(), []string{"/provider", "bogus"}, sess)
	out := buf.String()
	assert.Contains(t, out, "Troubleshooting:")
	assert.Contains(t, out, "/provider list")
	assert.Contains(t, out, "provider=openai, model=gpt-4o")
}

func TestProvider_CreatesModelManagerLazily(t *testing.T) {
	action := &capturingAction{}
	cmds, _ := newTestCommands(action)

	sess := NewSession()
	require.False(t, sess.HasModelManager())
	cmds.Provider(context.Background(), []string{"/provider"}, sess)
	assert.True(t, sess.HasModelManager())

	mgr := sess.ModelManager()
	cmds.Provider(context.Background(), []string{"/provider"}, sess)
	assert.Same(t, mgr, sess.ModelManager())
}

func TestProviders_DefaultsToList(t *testing.T) {
	action := &capturingAction{}
	cmds, _ := newTestCommands(action)

	ok := cmds.Providers(context.Background(), []string{"/providers"}, NewSession())
	assert.True(t, ok)
	require.Len(t, action.calls, 1)
	assert.Equal(t, []string{"list"}, action.calls[0])
}

func TestProviders_ForwardsArgsVerbatim(t *testing.T) {
	action := &capturingAction{}
	cmds, _ := newTestCommands(action)

	cmds.Providers(context.Background(), []string{"/providers", "config"}, NewSession())
	require.Len(t, action.calls, 1)
	assert.Equal(t, []string{"config"}, action.calls[0])
}

func TestProviders_DelegateFailureContinues(t *testing.T) {
	action := &capturingAction{err: errors.New("boom")}
	cmds, buf := newTestCommands(action)

	ok := cmds.Providers(context.Background(), []string{"/providers"}, NewSession())
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "Providers command failed: boom")
}

func TestModel_SwitchUsesCurrentProvider(t *testing.T) {
	action := &capturingAction{}
	cmds, _ := newTestCommands(action)

	sess := NewSession()
	sess.SetProvider("anthropic")

	ok := cmds.Model(context.Background(), []string{"/model", "gpt-x"}, sess)
	assert.True(t, ok)
	require.Len(t, action.calls, 1)
	assert.Equal(t, []string{"anthropic", "gpt-x"}, action.calls[0])
}

func TestModel_SwitchDefaultsProviderToOpenAI(t *testing.T) {
	action := &capturingAction{}
	cmds, _ := newTestCommands(action)

	cmds.Model(context.Background(), []string{"/model", "gpt-4o"}, NewSession())
	require.Len(t, action.calls, 1)
	assert.Equal(t, []string{"openai", "gpt-4o"}, action.calls[0])
}

func TestModel_SwitchFailureShowsHint(t *testing.T) {
	action := &capturingAction{err: errors.New("boom")}
	cmds, buf := newTestCommands(action)

	sess := NewSession()
	sess.SetProvider("groq")

	ok := cmds.Model(context.Background(), []string{"/model", "mixtral-8x7b-32768"}, sess)
	assert.True(t, ok)
	out := buf.String()
	assert.Contains(t, out, "Model switch failed: boom")
	assert.Contains(t, out, "Try: /provider groq mixtral-8x7b-32768")
}

func TestModel_NoArgsShowsCurrentAndListing(t *testing.T) {
	action := &capturingAction{}
	cmds, buf := newTestCommands(action)

	sess := NewSession()
	sess.SetProvider("ollama")
	sess.SetModel("llama3.3")

	ok := cmds.Model(context.Background(), []string{"/model"}, sess)
	assert.True(t, ok)
	assert.Empty(t, action.calls, "no-argument branch must not delegate")

	out := buf.String()
	assert.Contains(t, out, "Current model: ollama/llama3.3")
	assert.Contains(t, out, "Available models for ollama:")
	assert.Contains(t, out, "→ llama3.3")
}

func TestModel_NoArgsUnknownProviderWarnsOnly(t *testing.T) {
	action := &capturingAction{}
	cmds, buf := newTestCommands(action)

	ok := cmds.Model(context.Background(), []string{"/model"}, NewSession())
	assert.True(t, ok)

	out := buf.String()
	assert.Contains(t, out, "Current model: unknown/unknown")
	assert.Contains(t, out, "Could not list models:")
}

func TestModel_NoArgsTruncatesLongListings(t *testing.T) {
	action := &capturingAction{}
	cmds, buf := newTestCommands(action)

	sess := NewSession()
	sess.SetProvider("openai")
	sess.SetModel("gpt-4o")

	available, err := models.NewManager().Available("openai")
	require.NoError(t, err)
	require.Greater(t, len(available), modelListLimit, "builtin openai catalog must overflow the listing")

	cmds.Model(context.Background(), []string{"/model"}, sess)
	assert.Contains(t, buf.String(), fmt.Sprintf("... and %d more", len(available)-modelListLimit))
}
