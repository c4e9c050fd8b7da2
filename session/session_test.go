package session

import (
	"testing"

	"github.com/ember-lang/ember/analysis"
	"github.com/ember-lang/ember/types"
)

func TestRegisterBlock_MonotonicIDs(t *testing.T) {
	s := NewState()

	a := s.RegisterBlock("1 + 1")
	b := s.RegisterBlock("2 + 2")
	if a.ID != 1 || b.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", a.ID, b.ID)
	}
	if a.SourceID == b.SourceID {
		t.Error("blocks must register distinct sources")
	}
	if got, ok := s.Block(a.ID); !ok || got != a {
		t.Error("block id must resolve to the registered block")
	}
}

func TestClearDiagnostics_PreservesBlocksAndSources(t *testing.T) {
	s := NewState()
	s.RegisterBlock("let x = 1")
	s.Bind("x", analysis.Binding{Type: analysis.TypeInt, Value: analysis.IntValue(1)})
	s.Report(types.Errorf(types.StageParse, "boom"))

	sources := s.Sources().Len()
	s.ClearDiagnostics()

	if len(s.Diagnostics()) != 0 {
		t.Error("diagnostics should be empty after clear")
	}
	if s.BlockCount() != 1 {
		t.Error("clearing diagnostics must not touch blocks")
	}
	if s.Sources().Len() != sources {
		t.Error("clearing diagnostics must not touch the source map")
	}
	if _, ok := s.Bindings()["x"]; !ok {
		t.Error("clearing diagnostics must not touch bindings")
	}
}

func TestDiagnostics_PerTurnOnly(t *testing.T) {
	s := NewState()

	s.Report(types.Errorf(types.StageParse, "turn one"))
	s.ClearDiagnostics()
	s.Report(types.Errorf(types.StageAnalysis, "turn two"))

	diags := s.Diagnostics()
	if len(diags) != 1 || diags[0].Message != "turn two" {
		t.Errorf("expected only the current turn's diagnostics, got %+v", diags)
	}
}

func TestApplySettings_Atomic(t *testing.T) {
	s := NewState()

	s.ApplySettings(Settings{Stage: types.StageParse, DumpTree: true})
	s.ApplySettings(Settings{Stage: types.StageAnalysis})

	if s.Settings().DumpTree {
		t.Error("settings overwrite must reset the dump flag")
	}
	if s.Settings().Stage != types.StageAnalysis {
		t.Error("settings overwrite must set the stage target")
	}
}

func TestSourceMap_LineOf(t *testing.T) {
	m := NewSourceMap()
	id := m.Register("file", "first\nsecond\nthird")

	if line, ok := m.LineOf(id, 2); !ok || line != "second" {
		t.Errorf("expected line 2 to be %q, got %q", "second", line)
	}
	if _, ok := m.LineOf(id, 9); ok {
		t.Error("out-of-range line must not resolve")
	}
	if _, ok := m.LineOf("missing", 1); ok {
		t.Error("unknown source must not resolve")
	}
}

func TestNewState_Defaults(t *testing.T) {
	s := NewState()
	if s.ID() == "" {
		t.Error("session id must be set")
	}
	cfg := s.Settings()
	if cfg.Stage != types.StageAnalysis || !cfg.Evaluate || cfg.DumpTree {
		t.Errorf("unexpected default settings: %+v", cfg)
	}
}
