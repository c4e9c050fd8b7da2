package types

import "fmt"

// Severity classifies a diagnostic.
type Severity int

const (
	// SeverityWarning reports a suspicious construct that does not stop
	// the pipeline.
	SeverityWarning Severity = iota
	// SeverityError reports a problem that abandons the current block's
	// run. The session itself remains usable.
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Span is a position within a registered source.
// Line and Column are 1-based; a zero Span means "no position".
type Span struct {
	Line   int
	Column int
}

// Diagnostic is one report produced by a pipeline stage.
//
// Diagnostics are data, not Go errors: they flow back to the REPL loop and
// are rendered against the session's source map. Snippet carries the source
// line the span points into so the renderer needs no source map lookup.
type Diagnostic struct {
	// Severity is the report severity.
	Severity Severity
	// Stage is the pipeline stage that produced the report.
	Stage StageKind
	// Message is the human-readable description.
	Message string
	// SourceID identifies the registered source the span refers to.
	SourceID string
	// Span is the position within the source, when known.
	Span Span
	// Snippet is the source line at Span.Line, when known.
	Snippet string
}

// Errorf builds an error diagnostic for the given stage.
func Errorf(stage StageKind, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Stage:    stage,
		Message:  fmt.Sprintf(format, args...),
	}
}

// At returns a copy of the diagnostic positioned at the given span.
func (d Diagnostic) At(sourceID string, span Span, snippet string) Diagnostic {
	d.SourceID = sourceID
	d.Span = span
	d.Snippet = snippet
	return d
}

// IsFatal reports whether the diagnostic abandons the current block's run.
func (d Diagnostic) IsFatal() bool {
	return d.Severity == SeverityError
}

// HasFatal reports whether any diagnostic in diags is fatal for the block.
func HasFatal(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.IsFatal() {
			return true
		}
	}
	return false
}
