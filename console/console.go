// Package console provides the line-oriented colored output sink used for
// all user-visible chat feedback. Styles degrade to plain text when the
// underlying writer is not a terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Console writes styled lines to a single writer.
type Console struct {
	w io.Writer

	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
	hint    lipgloss.Style
}

// New creates a Console writing to w. Color support is detected per writer,
// so a Console over a bytes.Buffer emits unstyled text.
func New(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:       w,
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		info:    r.NewStyle().Foreground(lipgloss.Color("6")),
		hint:    r.NewStyle().Faint(true),
	}
}

// Default returns a Console writing to stdout.
func Default() *Console {
	return New(os.Stdout)
}

func (c *Console) line(style lipgloss.Style, format string, a ...any) {
	fmt.Fprintln(c.w, style.Render(fmt.Sprintf(format, a...)))
}

// Printf writes an unstyled line.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.w, format+"\n", a...)
}

// Successf writes a green line.
func (c *Console) Successf(format string, a ...any) {
	c.line(c.success, format, a...)
}

// Errorf writes a red line.
func (c *Console) Errorf(format string, a ...any) {
	c.line(c.failure, format, a...)
}

// Warnf writes a yellow line.
func (c *Console) Warnf(format string, a ...any) {
	c.line(c.warning, format, a...)
}

// Infof writes a cyan line.
func (c *Console) Infof(format string, a ...any) {
	c.line(c.info, format, a...)
}

// Hintf writes a dimmed line.
func (c *Console) Hintf(format string, a ...any) {
	c.line(c.hint, format, a...)
}
