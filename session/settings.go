package session

import "github.com/ember-lang/ember/types"

// Settings is the session's current stage target and display flags.
//
// The stage selector computes a whole Settings value per command and the
// session applies it atomically: every field is written on every dispatch,
// so a flag set by one command can never leak into the next turn.
type Settings struct {
	// Stage is the last pipeline stage to execute this turn.
	Stage types.StageKind
	// DumpTree renders the parse tree as the turn's artifact.
	DumpTree bool
	// Evaluate runs the checked tree and makes the value the artifact.
	Evaluate bool
}

// DefaultSettings is the session's initial configuration: full analysis
// with evaluation, matching plain source-code input.
func DefaultSettings() Settings {
	return Settings{Stage: types.StageAnalysis, Evaluate: true}
}
