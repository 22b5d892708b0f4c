// Package output renders CLI output with a consistent set of styles.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of lipgloss styles shared across commands.
type Styles struct {
	Banner lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
}

// Renderer writes command output. Command text goes through a Renderer so
// styling is applied in one place and disabled uniformly.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	styles *Styles
}

// NewRenderer creates a renderer. When color is false every style is a
// no-op, which keeps output clean when piping or when --no-color is set.
func NewRenderer(out, errOut io.Writer, color bool) *Renderer {
	s := &Styles{
		Banner: lipgloss.NewStyle(),
		Result: lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle(),
	}
	if color {
		s.Banner = s.Banner.Bold(true).Foreground(lipgloss.Color("6"))
		s.Result = s.Result.Bold(true)
		s.Error = s.Error.Foreground(lipgloss.Color("1"))
		s.Muted = s.Muted.Foreground(lipgloss.Color("8"))
	}
	return &Renderer{out: out, errOut: errOut, styles: s}
}

// Styles returns the renderer's style set.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the renderer's output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the renderer's error writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to the output writer.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to the output writer.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Errorln writes a line to the error writer in the Error style.
func (r *Renderer) Errorln(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render(msg))
}

// Errorf formats a line onto the error writer in the Error style.
func (r *Renderer) Errorf(format string, a ...any) {
	r.Errorln(strings.TrimSuffix(fmt.Sprintf(format, a...), "\n"))
}
