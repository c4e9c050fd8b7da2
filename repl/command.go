// Package repl implements the interactive session driver: it classifies
// input lines into commands, selects the pipeline depth for each, and runs
// the read-dispatch-print loop that threads session state across turns.
package repl

import (
	"fmt"
	"strings"
)

// CommandKind discriminates classified commands.
type CommandKind int

const (
	// CommandQuit exits the session.
	CommandQuit CommandKind = iota
	// CommandClear clears the screen.
	CommandClear
	// CommandVersion prints the version string.
	CommandVersion
	// CommandShowType runs analysis and reports the inferred type.
	CommandShowType
	// CommandShowTree parses and dumps the tree.
	CommandShowTree
	// CommandEvaluate runs the full pipeline and prints the value.
	CommandEvaluate
	// CommandMalformed reports a bad meta-command.
	CommandMalformed
)

// String returns the command name used in logs and the transcript.
func (k CommandKind) String() string {
	switch k {
	case CommandQuit:
		return "quit"
	case CommandClear:
		return "clear"
	case CommandVersion:
		return "version"
	case CommandShowType:
		return "type"
	case CommandShowTree:
		return "display"
	case CommandEvaluate:
		return "evaluate"
	default:
		return "malformed"
	}
}

// Command is one classified input line. Immutable once constructed and
// produced fresh each turn.
type Command struct {
	Kind CommandKind
	// Text is the source payload for ShowType, ShowTree, and Evaluate.
	Text string
	// Reason describes the problem for Malformed.
	Reason string
}

// Classify parses one trimmed, non-empty line into exactly one command.
// It is a pure function of the line.
//
// Recognized prefixes are case-sensitive and must start the line:
// :q/:quit, :c/:clear, :v/:version, :t/:type <expr>, :d/:display <expr>.
// Any other non-empty line is source code.
func Classify(line string) Command {
	if !strings.HasPrefix(line, ":") {
		return Command{Kind: CommandEvaluate, Text: line}
	}

	head, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch head {
	case ":q", ":quit":
		return bare(CommandQuit, head, rest)
	case ":c", ":clear":
		return bare(CommandClear, head, rest)
	case ":v", ":version":
		return bare(CommandVersion, head, rest)
	case ":t", ":type":
		return payload(CommandShowType, head, rest)
	case ":d", ":display":
		return payload(CommandShowTree, head, rest)
	default:
		return Command{
			Kind:   CommandMalformed,
			Reason: fmt.Sprintf("unknown command %q", head),
		}
	}
}

func bare(kind CommandKind, head, rest string) Command {
	if rest != "" {
		return Command{
			Kind:   CommandMalformed,
			Reason: fmt.Sprintf("the command %q takes no argument", head),
		}
	}
	return Command{Kind: kind}
}

func payload(kind CommandKind, head, rest string) Command {
	if rest == "" {
		return Command{
			Kind:   CommandMalformed,
			Reason: fmt.Sprintf("the command %q requires an expression", head),
		}
	}
	return Command{Kind: kind, Text: rest}
}
