// Package render produces user-facing text for diagnostics and reports.
//
// Color rules:
//   - Styled output only when the writer is a TTY and color is not disabled
//   - Severity drives the style; layout is identical either way
//
// The renderer resolves snippets against the session source map, so
// diagnostics carry positions, not text.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/ember-lang/ember/session"
	"github.com/ember-lang/ember/types"
)

// Color palette.
var (
	errorColor = lipgloss.Color("#EF4444") // Red
	warnColor  = lipgloss.Color("#F59E0B") // Amber
	mutedColor = lipgloss.Color("#6B7280") // Gray
)

// Styles for rendered reports.
var (
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(warnColor)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
	caretStyle = lipgloss.NewStyle().Foreground(errorColor)
)

// Renderer writes rendered reports to a single writer.
type Renderer struct {
	out   io.Writer
	color bool
}

// New creates a renderer. Color is enabled only when the writer is a TTY
// and noColor is unset.
func New(out io.Writer, noColor bool) *Renderer {
	color := false
	if f, ok := out.(*os.File); ok && !noColor {
		color = isatty.IsTerminal(f.Fd())
	}
	return &Renderer{out: out, color: color}
}

// NewPlain creates an uncolored renderer for a custom writer (tests).
func NewPlain(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Diagnostics renders each pending diagnostic with its location and a
// caret snippet resolved from the source map.
func (r *Renderer) Diagnostics(diags []types.Diagnostic, sources *session.SourceMap) {
	for _, d := range diags {
		r.diagnostic(d, sources)
	}
}

func (r *Renderer) diagnostic(d types.Diagnostic, sources *session.SourceMap) {
	head := d.Severity.String()
	if r.color {
		if d.Severity == types.SeverityError {
			head = errorStyle.Render(head)
		} else {
			head = warnStyle.Render(head)
		}
	}
	fmt.Fprintf(r.out, "%s: %s\n", head, d.Message)

	if d.Span.Line == 0 {
		return
	}
	loc := fmt.Sprintf("  at %s:%d:%d", d.SourceID, d.Span.Line, d.Span.Column)
	if r.color {
		loc = mutedStyle.Render(loc)
	}
	fmt.Fprintln(r.out, loc)

	snippet := d.Snippet
	if snippet == "" && sources != nil {
		snippet, _ = sources.LineOf(d.SourceID, d.Span.Line)
	}
	if snippet == "" {
		return
	}

	gutter := fmt.Sprintf("  %d | ", d.Span.Line)
	fmt.Fprintf(r.out, "%s%s\n", gutter, snippet)
	if d.Span.Column > 0 && d.Span.Column <= len(snippet)+1 {
		caret := "^"
		if r.color {
			caret = caretStyle.Render(caret)
		}
		pad := strings.Repeat(" ", len(gutter)+d.Span.Column-1)
		fmt.Fprintf(r.out, "%s%s\n", pad, caret)
	}
}

// Reportf renders a single recoverable report, e.g. a malformed command
// or a read failure.
func (r *Renderer) Reportf(format string, args ...any) {
	head := "error"
	if r.color {
		head = errorStyle.Render(head)
	}
	fmt.Fprintf(r.out, "%s: %s\n", head, fmt.Sprintf(format, args...))
}

// Artifact prints a turn's primary artifact.
func (r *Renderer) Artifact(artifact string) {
	fmt.Fprintln(r.out, artifact)
}
