package repl

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		kind CommandKind
		text string
	}{
		{":q", CommandQuit, ""},
		{":quit", CommandQuit, ""},
		{":c", CommandClear, ""},
		{":clear", CommandClear, ""},
		{":v", CommandVersion, ""},
		{":version", CommandVersion, ""},
		{":t 1 + 2", CommandShowType, "1 + 2"},
		{":type fn(x: Int) => x", CommandShowType, "fn(x: Int) => x"},
		{":d let x = 1", CommandShowTree, "let x = 1"},
		{":display if true then 1 else 2", CommandShowTree, "if true then 1 else 2"},
		{"1 + 2", CommandEvaluate, "1 + 2"},
		{"let x = 1; x", CommandEvaluate, "let x = 1; x"},
	}
	for _, tt := range tests {
		cmd := Classify(tt.line)
		if cmd.Kind != tt.kind {
			t.Errorf("Classify(%q) kind = %v, want %v", tt.line, cmd.Kind, tt.kind)
		}
		if cmd.Text != tt.text {
			t.Errorf("Classify(%q) text = %q, want %q", tt.line, cmd.Text, tt.text)
		}
	}
}

func TestClassify_Malformed(t *testing.T) {
	tests := []struct {
		line   string
		reason string
	}{
		{":t", "requires an expression"},
		{":type", "requires an expression"},
		{":d", "requires an expression"},
		{":d   ", "requires an expression"},
		{":q now", "takes no argument"},
		{":clear all", "takes no argument"},
		{":version 2", "takes no argument"},
		{":x", "unknown command"},
		{":Q", "unknown command"},
		{":", "unknown command"},
	}
	for _, tt := range tests {
		cmd := Classify(tt.line)
		if cmd.Kind != CommandMalformed {
			t.Errorf("Classify(%q) kind = %v, want malformed", tt.line, cmd.Kind)
			continue
		}
		if !strings.Contains(cmd.Reason, tt.reason) {
			t.Errorf("Classify(%q) reason = %q, want it to mention %q", tt.line, cmd.Reason, tt.reason)
		}
	}
}

// A line that merely contains a colon is source code, not a command.
func TestClassify_ColonNotAtStart(t *testing.T) {
	cmd := Classify("x :t")
	if cmd.Kind != CommandEvaluate || cmd.Text != "x :t" {
		t.Errorf("got %+v, want evaluate with full text", cmd)
	}
}

func TestCommandKind_String(t *testing.T) {
	tests := []struct {
		kind CommandKind
		want string
	}{
		{CommandQuit, "quit"},
		{CommandClear, "clear"},
		{CommandVersion, "version"},
		{CommandShowType, "type"},
		{CommandShowTree, "display"},
		{CommandEvaluate, "evaluate"},
		{CommandMalformed, "malformed"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
