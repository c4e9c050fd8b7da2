// Package transcript appends one msgpack record per evaluating turn to a
// local file. The transcript is a durable session record for later
// inspection; writing it is always best effort and never fails a turn.
package transcript

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ember-lang/ember/types"
)

// Record is the storage format for one turn.
type Record struct {
	// FormatVersion pins the record layout to the project version.
	FormatVersion string `msgpack:"format_version"`
	// SessionID identifies the session the turn belongs to.
	SessionID string `msgpack:"session_id"`
	// Block is the interactive block id.
	Block int `msgpack:"block"`
	// Command is the dispatched command kind (evaluate, type, display).
	Command string `msgpack:"command"`
	// Stage is the last pipeline stage that ran.
	Stage string `msgpack:"stage"`
	// Source is the registered source text.
	Source string `msgpack:"source"`
	// Artifact is the primary artifact, when the turn produced one.
	Artifact string `msgpack:"artifact,omitempty"`
	// Diagnostics holds the turn's diagnostic messages.
	Diagnostics []string `msgpack:"diagnostics,omitempty"`
	// ElapsedMs is the pipeline run duration in milliseconds.
	ElapsedMs int64 `msgpack:"elapsed_ms"`
	// Ts is the turn's RFC3339 timestamp.
	Ts string `msgpack:"ts"`
}

// NewRecord builds a record with the current format version.
func NewRecord(sessionID string) Record {
	return Record{FormatVersion: types.Version, SessionID: sessionID}
}

// Recorder appends records to an open transcript file.
// A nil Recorder is valid and drops every append, so callers never guard.
type Recorder struct {
	mu  sync.Mutex
	f   *os.File
	enc *msgpack.Encoder
}

// Open opens (or creates) a transcript file for appending.
func Open(path string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening transcript %q: %w", path, err)
	}
	return &Recorder{f: f, enc: msgpack.NewEncoder(f)}, nil
}

// Append writes one record.
func (r *Recorder) Append(rec Record) error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enc.Encode(rec); err != nil {
		return fmt.Errorf("encoding transcript record: %w", err)
	}
	return nil
}

// Close closes the transcript file.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	return r.f.Close()
}

// ReadAll decodes every record in a transcript file, in append order.
func ReadAll(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transcript %q: %w", path, err)
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	var out []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("decoding transcript record: %w", err)
		}
		out = append(out, rec)
	}
}
