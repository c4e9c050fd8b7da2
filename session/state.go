// Package session owns the single long-lived state threaded across REPL
// turns: the source map, the interactive block table, pending diagnostics,
// the binding table, and the current stage settings.
//
// Ownership is exclusive and transfers turn by turn: the loop holds the
// state, hands it to the driver for the duration of one call, and gets it
// back. Nothing in this package locks, because two turns never hold the
// state concurrently and pipeline sub-jobs return artifacts instead of
// mutating it.
package session

import (
	"github.com/google/uuid"

	"github.com/ember-lang/ember/analysis"
	"github.com/ember-lang/ember/syntax"
	"github.com/ember-lang/ember/types"
)

// Block is one interactive block: a registered source fragment plus its
// derived artifacts as stages produce them. Blocks are append-only; an
// errored block stays registered with absent artifacts.
type Block struct {
	// ID is the monotonically increasing interactive block id.
	ID int
	// SourceID is the block's entry in the source map.
	SourceID string
	// Text is the registered source text.
	Text string

	// Stmts is the parse artifact, one statement per fragment.
	Stmts []syntax.Stmt
	// Desugared is the desugar artifact.
	Desugared []syntax.Stmt
	// Type is the analysis artifact for the block's last fragment.
	Type *analysis.Type
	// Value is the evaluation artifact for the block's last fragment.
	Value analysis.Value
}

// State is the session state.
type State struct {
	id       string
	sources  *SourceMap
	diags    []types.Diagnostic
	blocks   []*Block
	bindings map[string]analysis.Binding
	settings Settings
}

// NewState creates a fresh session with default settings.
func NewState() *State {
	return &State{
		id:       uuid.NewString(),
		sources:  NewSourceMap(),
		bindings: make(map[string]analysis.Binding),
		settings: DefaultSettings(),
	}
}

// ID returns the session id used for log context.
func (s *State) ID() string {
	return s.id
}

// Sources returns the session's source map.
func (s *State) Sources() *SourceMap {
	return s.sources
}

// RegisterBlock appends a new interactive block for the given source text
// and returns it. The block id is the handle the driver reports against.
func (s *State) RegisterBlock(text string) *Block {
	return s.RegisterBlockAt("interactive", text)
}

// RegisterBlockAt appends a block whose source came from the named origin,
// e.g. a file path in run and check.
func (s *State) RegisterBlockAt(origin, text string) *Block {
	b := &Block{
		ID:       len(s.blocks) + 1,
		SourceID: s.sources.Register(origin, text),
		Text:     text,
	}
	s.blocks = append(s.blocks, b)
	return b
}

// Block resolves a block id.
func (s *State) Block(id int) (*Block, bool) {
	if id < 1 || id > len(s.blocks) {
		return nil, false
	}
	return s.blocks[id-1], true
}

// BlockCount returns the number of registered blocks.
func (s *State) BlockCount() int {
	return len(s.blocks)
}

// ClearDiagnostics empties the pending diagnostics. Called exactly once at
// the start of each turn that runs the pipeline, so a prior turn's reports
// are never shown twice. It never touches blocks, bindings, or sources.
func (s *State) ClearDiagnostics() {
	s.diags = s.diags[:0]
}

// Report appends diagnostics from the current turn's stage runs.
func (s *State) Report(diags ...types.Diagnostic) {
	s.diags = append(s.diags, diags...)
}

// Diagnostics returns the pending diagnostics in report order.
func (s *State) Diagnostics() []types.Diagnostic {
	return s.diags
}

// ApplySettings overwrites the whole settings value.
func (s *State) ApplySettings(settings Settings) {
	s.settings = settings
}

// Settings returns the current settings.
func (s *State) Settings() Settings {
	return s.settings
}

// Bind commits a binding for this and later turns. Only called after the
// binding's fragment fully succeeded.
func (s *State) Bind(name string, b analysis.Binding) {
	s.bindings[name] = b
}

// Bindings returns the live binding table. The driver reads it to seed the
// analysis environment; callers must not retain it across turns.
func (s *State) Bindings() map[string]analysis.Binding {
	return s.bindings
}
