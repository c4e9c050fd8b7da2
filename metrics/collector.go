// Package metrics provides session-lifetime metrics collection.
//
// The Collector accumulates counters across REPL turns. It is a leaf
// package with no internal dependencies. All increment methods are
// nil-receiver safe so callers never guard against a missing collector.
package metrics

import "sync"

// Snapshot is an immutable point-in-time view of the session counters.
// Returned by Collector.Snapshot(). Safe to read concurrently after creation.
type Snapshot struct {
	// Turns is the number of turns that ran the pipeline.
	Turns int64
	// Evaluations is the number of evaluate turns.
	Evaluations int64
	// TypeQueries is the number of type display turns.
	TypeQueries int64
	// TreeDumps is the number of tree display turns.
	TreeDumps int64
	// Blocks is the number of interactive blocks registered.
	Blocks int64
	// Diagnostics is the number of diagnostics surfaced.
	Diagnostics int64
	// ParseJobs is the number of parse sub-jobs submitted to the pool.
	ParseJobs int64
}

// Collector accumulates metrics for one session.
// Thread-safe via sync.Mutex; parse sub-jobs report concurrently.
type Collector struct {
	mu sync.Mutex

	turns       int64
	evaluations int64
	typeQueries int64
	treeDumps   int64
	blocks      int64
	diagnostics int64
	parseJobs   int64
}

// New creates a collector.
func New() *Collector {
	return &Collector{}
}

// IncTurn records a pipeline-running turn.
func (c *Collector) IncTurn() {
	if c == nil {
		return
	}
	c.add(&c.turns, 1)
}

// IncEvaluation records an evaluate turn.
func (c *Collector) IncEvaluation() {
	if c == nil {
		return
	}
	c.add(&c.evaluations, 1)
}

// IncTypeQuery records a type display turn.
func (c *Collector) IncTypeQuery() {
	if c == nil {
		return
	}
	c.add(&c.typeQueries, 1)
}

// IncTreeDump records a tree display turn.
func (c *Collector) IncTreeDump() {
	if c == nil {
		return
	}
	c.add(&c.treeDumps, 1)
}

// IncBlock records a registered interactive block.
func (c *Collector) IncBlock() {
	if c == nil {
		return
	}
	c.add(&c.blocks, 1)
}

// AddDiagnostics records surfaced diagnostics.
func (c *Collector) AddDiagnostics(n int) {
	if c == nil {
		return
	}
	c.add(&c.diagnostics, int64(n))
}

// AddParseJobs records parse sub-jobs submitted to the pool.
func (c *Collector) AddParseJobs(n int) {
	if c == nil {
		return
	}
	c.add(&c.parseJobs, int64(n))
}

func (c *Collector) add(field *int64, n int64) {
	c.mu.Lock()
	*field += n
	c.mu.Unlock()
}

// Snapshot returns the current counter values.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Turns:       c.turns,
		Evaluations: c.evaluations,
		TypeQueries: c.typeQueries,
		TreeDumps:   c.treeDumps,
		Blocks:      c.blocks,
		Diagnostics: c.diagnostics,
		ParseJobs:   c.parseJobs,
	}
}

// Fields renders the snapshot as log fields.
func (s Snapshot) Fields() map[string]any {
	return map[string]any{
		"turns":        s.Turns,
		"evaluations":  s.Evaluations,
		"type_queries": s.TypeQueries,
		"tree_dumps":   s.TreeDumps,
		"blocks":       s.Blocks,
		"diagnostics":  s.Diagnostics,
		"parse_jobs":   s.ParseJobs,
	}
}
