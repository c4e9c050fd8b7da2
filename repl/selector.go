package repl

import (
	"github.com/ember-lang/ember/session"
	"github.com/ember-lang/ember/types"
)

// PlanFor maps a pipeline command to a complete settings value.
//
// It is a pure function computed fresh each turn and applied atomically:
// every field is decided for every command, so a display flag set by one
// turn can never leak into the next. A type query immediately after a tree
// display gets the dump flag reset here, not in the driver.
func PlanFor(kind CommandKind) session.Settings {
	switch kind {
	case CommandShowType:
		return session.Settings{
			Stage:    types.StageAnalysis,
			DumpTree: false,
			Evaluate: false,
		}
	case CommandShowTree:
		return session.Settings{
			Stage:    types.StageParse,
			DumpTree: true,
			Evaluate: false,
		}
	default: // CommandEvaluate
		return session.Settings{
			Stage:    types.StageAnalysis,
			DumpTree: false,
			Evaluate: true,
		}
	}
}
