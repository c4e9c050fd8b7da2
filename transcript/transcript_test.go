package transcript

import (
	"path/filepath"
	"testing"

	"github.com/ember-lang/ember/types"
)

func TestRecorder_AppendAcrossReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.transcript")

	r, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	rec := NewRecord("session-1")
	rec.Block = 1
	rec.Command = "evaluate"
	rec.Stage = "analysis"
	rec.Source = "1 + 2"
	rec.Artifact = "3"
	if err := r.Append(rec); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// A second session appends to the same file.
	r, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	rec2 := NewRecord("session-2")
	rec2.Block = 1
	rec2.Command = "type"
	rec2.Stage = "analysis"
	rec2.Source = "x"
	rec2.Diagnostics = []string{`undefined name "x"`}
	if err := r.Append(rec2); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	r.Close()

	records, err := ReadAll(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Artifact != "3" || records[0].FormatVersion != types.Version {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if len(records[1].Diagnostics) != 1 {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var r *Recorder
	if err := r.Append(Record{}); err != nil {
		t.Errorf("nil recorder append should be a no-op, got %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("nil recorder close should be a no-op, got %v", err)
	}
}
