package session

import (
	"fmt"
	"strings"
)

// Source is one registered origin and its text.
type Source struct {
	ID     string
	Origin string
	Text   string
}

// SourceMap is the append-only registry of sources. It grows monotonically
// and never shrinks within a session: diagnostics from any earlier turn
// must stay resolvable.
type SourceMap struct {
	entries map[string]Source
	nextID  int
}

// NewSourceMap creates an empty source map.
func NewSourceMap() *SourceMap {
	return &SourceMap{entries: make(map[string]Source)}
}

// Register appends a source and returns its opaque id.
func (m *SourceMap) Register(origin, text string) string {
	m.nextID++
	id := fmt.Sprintf("%s:%d", origin, m.nextID)
	m.entries[id] = Source{ID: id, Origin: origin, Text: text}
	return id
}

// Lookup resolves a source id.
func (m *SourceMap) Lookup(id string) (Source, bool) {
	src, ok := m.entries[id]
	return src, ok
}

// LineOf returns the 1-based line of a registered source, for diagnostic
// snippets.
func (m *SourceMap) LineOf(id string, line int) (string, bool) {
	src, ok := m.entries[id]
	if !ok || line < 1 {
		return "", false
	}
	lines := strings.Split(src.Text, "\n")
	if line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}

// Len returns the number of registered sources.
func (m *SourceMap) Len() int {
	return len(m.entries)
}
