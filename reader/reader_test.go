package reader

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ember-lang/ember/log"
)

func TestScripted_ReplaysLinesThenEOF(t *testing.T) {
	s := NewScripted("one", "two")

	for _, want := range []string{"one", "two"} {
		line, err := s.ReadLine(context.Background())
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if line != want {
			t.Errorf("expected %q, got %q", want, line)
		}
	}
	if _, err := s.ReadLine(context.Background()); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after script, got %v", err)
	}
}

func TestScripted_QueuedErrorsAndInterrupts(t *testing.T) {
	readErr := errors.New("bad read")
	s := NewScripted("ok").QueueError(readErr).QueueLine("after").QueueInterrupt()

	if line, err := s.ReadLine(context.Background()); err != nil || line != "ok" {
		t.Fatalf("unexpected first read: %q, %v", line, err)
	}
	if _, err := s.ReadLine(context.Background()); !errors.Is(err, readErr) {
		t.Errorf("expected queued error, got %v", err)
	}
	if line, err := s.ReadLine(context.Background()); err != nil || line != "after" {
		t.Errorf("expected recovery line, got %q, %v", line, err)
	}
	if _, err := s.ReadLine(context.Background()); !errors.Is(err, ErrInterrupted) {
		t.Errorf("expected interrupt, got %v", err)
	}
}

func TestTerminal_ReadsLinesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte("1 + 1\n:q\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	term := NewTerminal(in, io.Discard, ">>> ", "", log.Nop())
	defer term.Close()

	line, err := term.ReadLine(context.Background())
	if err != nil || line != "1 + 1" {
		t.Fatalf("unexpected read: %q, %v", line, err)
	}
	line, err = term.ReadLine(context.Background())
	if err != nil || line != ":q" {
		t.Fatalf("unexpected read: %q, %v", line, err)
	}
	if _, err := term.ReadLine(context.Background()); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestTerminal_AppendHistory(t *testing.T) {
	dir := t.TempDir()
	histPath := filepath.Join(dir, "history")

	inPath := filepath.Join(dir, "input")
	if err := os.WriteFile(inPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	in, err := os.Open(inPath)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	term := NewTerminal(in, io.Discard, ">>> ", histPath, log.Nop())
	defer term.Close()

	term.AppendHistory("let x = 1")
	term.AppendHistory(":t x")

	data, err := os.ReadFile(histPath)
	if err != nil {
		t.Fatalf("history file missing: %v", err)
	}
	if got := string(data); got != "let x = 1\n:t x\n" {
		t.Errorf("unexpected history contents: %q", got)
	}
}

func TestTerminal_HistoryFailureIsSilent(t *testing.T) {
	inPath := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(inPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	in, err := os.Open(inPath)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	// Point history at a path whose parent does not exist.
	bad := filepath.Join(t.TempDir(), "missing", "history")
	term := NewTerminal(in, io.Discard, ">>> ", bad, log.Nop())
	defer term.Close()

	term.AppendHistory("anything") // must not panic or surface an error
}
