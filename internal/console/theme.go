package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/nao1215/numanalyzer/internal/config"
)

// Theme holds the lipgloss styles used for terminal output.
// Every style is bound to a renderer for one writer, so the colour profile
// follows that writer rather than the process's stdout.
type Theme struct {
	renderer *lipgloss.Renderer

	title     lipgloss.Style
	heading   lipgloss.Style
	label     lipgloss.Style
	success   lipgloss.Style
	failure   lipgloss.Style
	highlight lipgloss.Style
	info      lipgloss.Style
	muted     lipgloss.Style
	selected  lipgloss.Style
	banner    lipgloss.Style
}

// NewTheme creates a Theme rendering for w.
// ColorAuto detects the profile from w, so redirected output is plain;
// ColorAlways forces ANSI colours and ColorNever disables them.
func NewTheme(w io.Writer, mode config.ColorMode) *Theme {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	}

	return &Theme{
		renderer:  r,
		title:     r.NewStyle().Foreground(lipgloss.Color("blue")).Bold(true),
		heading:   r.NewStyle().Foreground(lipgloss.Color("magenta")).Bold(true),
		label:     r.NewStyle().Foreground(lipgloss.Color("green")),
		success:   r.NewStyle().Foreground(lipgloss.Color("green")).Bold(true),
		failure:   r.NewStyle().Foreground(lipgloss.Color("red")).Bold(true),
		highlight: r.NewStyle().Foreground(lipgloss.Color("yellow")),
		info:      r.NewStyle().Foreground(lipgloss.Color("cyan")),
		muted:     r.NewStyle().Foreground(lipgloss.Color("240")),
		selected:  r.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true),
		banner:    r.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true),
	}
}

// PlainTheme returns a Theme that never emits escape sequences.
func PlainTheme(w io.Writer) *Theme {
	return NewTheme(w, config.ColorNever)
}

// Colored reports whether the theme emits colour escape sequences.
func (t *Theme) Colored() bool {
	return t.renderer.ColorProfile() != termenv.Ascii
}

// Title styles a top-level heading.
func (t *Theme) Title(s string) string { return t.title.Render(s) }

// Heading styles a section heading.
func (t *Theme) Heading(s string) string { return t.heading.Render(s) }

// Label styles an attribute name.
func (t *Theme) Label(s string) string { return t.label.Render(s) }

// Success styles a positive result.
func (t *Theme) Success(s string) string { return t.success.Render(s) }

// Failure styles a negative result or an error line.
func (t *Theme) Failure(s string) string { return t.failure.Render(s) }

// Highlight styles a secondary result such as the LCM line.
func (t *Theme) Highlight(s string) string { return t.highlight.Render(s) }

// Info styles informational text such as motivational messages.
func (t *Theme) Info(s string) string { return t.info.Render(s) }

// Muted styles hints and key help.
func (t *Theme) Muted(s string) string { return t.muted.Render(s) }

// Selected styles the highlighted menu entry.
func (t *Theme) Selected(s string) string { return t.selected.Render(s) }

// Banner styles the menu frame lines.
func (t *Theme) Banner(s string) string { return t.banner.Render(s) }
