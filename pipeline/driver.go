// Package pipeline drives the compiler stages for one interactive block.
//
// The driver runs every stage from parse through the session's configured
// stage target, in strict order, over the shared worker pool. The turn's
// outermost job occupies one pool slot while the parse stage fans out one
// sub-job per fragment; the pool's extra slot guarantees those nested
// submissions always make progress.
//
// Sub-jobs never touch the session: they write into their own result slot
// and the driver, the sole owner of the state for the duration of one call,
// commits artifacts and diagnostics after the fan-out merges.
package pipeline

import (
	"context"
	"fmt"
	"maps"

	"github.com/ember-lang/ember/analysis"
	"github.com/ember-lang/ember/log"
	"github.com/ember-lang/ember/metrics"
	"github.com/ember-lang/ember/pool"
	"github.com/ember-lang/ember/session"
	"github.com/ember-lang/ember/syntax"
	"github.com/ember-lang/ember/types"
)

// Result is the transient outcome of one pipeline run. The loop consumes
// it immediately; the session keeps only what the block stores.
type Result struct {
	// Stage is the last stage that ran.
	Stage types.StageKind
	// Artifact is the primary artifact: a tree dump, a type description,
	// or a value representation. Empty when the run produced none.
	Artifact string
}

// Driver runs pipeline stages over the worker pool.
type Driver struct {
	pool      *pool.Pool
	logger    *log.Logger
	collector *metrics.Collector
}

// NewDriver creates a driver. The collector may be nil.
func NewDriver(p *pool.Pool, logger *log.Logger, collector *metrics.Collector) *Driver {
	return &Driver{pool: p, logger: logger, collector: collector}
}

// runOutcome is the outer job's scratch state. It holds everything the
// driver commits to the session once the job finishes.
type runOutcome struct {
	stmts     []syntax.Stmt
	desugared []syntax.Stmt
	diags     []types.Diagnostic
	bindings  []pendingBinding
	lastType  *analysis.Type
	lastValue analysis.Value
	artifact  string
	stage     types.StageKind
}

type pendingBinding struct {
	name string
	b    analysis.Binding
}

// Run executes the pipeline for the given block up to the session's stage
// target. Diagnostics go to the session's pending list; the returned error
// reports only infrastructure failure (cancellation while waiting for a
// pool slot), never compiler problems.
//
// The driver takes exclusive, temporary access to the state for the
// duration of the call; no concurrent call may overlap it.
func (d *Driver) Run(ctx context.Context, blockID int, state *session.State) (*Result, error) {
	block, ok := state.Block(blockID)
	if !ok {
		return nil, fmt.Errorf("unknown block id %d", blockID)
	}
	settings := state.Settings()

	outcome := &runOutcome{stage: types.StageParse}
	outer, err := d.pool.Submit(ctx, func(ctx context.Context) error {
		return d.execute(ctx, block, settings, state.Bindings(), outcome)
	})
	if err != nil {
		return nil, fmt.Errorf("submitting pipeline job: %w", err)
	}
	if err := outer.Wait(); err != nil {
		return nil, err
	}

	// Sole-writer commit: the fan-out is over, artifacts and diagnostics
	// move into the session on the owning call.
	block.Stmts = outcome.stmts
	block.Desugared = outcome.desugared
	block.Type = outcome.lastType
	block.Value = outcome.lastValue
	for _, pb := range outcome.bindings {
		state.Bind(pb.name, pb.b)
	}
	state.Report(outcome.diags...)
	d.collector.AddDiagnostics(len(outcome.diags))

	return &Result{Stage: outcome.stage, Artifact: outcome.artifact}, nil
}

// execute is the outermost pipeline job for one turn.
func (d *Driver) execute(ctx context.Context, block *session.Block, settings session.Settings, bindings map[string]analysis.Binding, out *runOutcome) error {
	stmts, diags, err := d.parseFragments(ctx, block)
	if err != nil {
		return err
	}
	out.stage = types.StageParse
	out.diags = diags
	if types.HasFatal(diags) {
		return nil
	}
	out.stmts = stmts

	if settings.DumpTree {
		out.artifact = syntax.Dump(stmts)
	}
	d.logger.Debug("parse complete", map[string]any{
		"block":     block.ID,
		"fragments": len(stmts),
	})
	if !settings.Stage.Includes(types.StageDesugar) {
		return nil
	}

	out.stage = types.StageDesugar
	out.desugared = make([]syntax.Stmt, len(stmts))
	for i, s := range stmts {
		out.desugared[i] = syntax.Desugar(s)
	}
	if !settings.Stage.Includes(types.StageAnalysis) {
		return nil
	}

	out.stage = types.StageAnalysis
	d.analyze(block, settings, bindings, out)
	return nil
}

// parseFragments fans the parse stage out over the pool: one sub-job per
// fragment, merged deterministically by submission order.
func (d *Driver) parseFragments(ctx context.Context, block *session.Block) ([]syntax.Stmt, []types.Diagnostic, error) {
	frags := syntax.SplitFragments(block.Text)
	if len(frags) == 0 {
		return nil, nil, nil
	}

	stmts := make([]syntax.Stmt, len(frags))
	diags := make([][]types.Diagnostic, len(frags))

	handles := make([]*pool.Handle, len(frags))
	for i, frag := range frags {
		i, frag := i, frag
		h, err := d.pool.Submit(ctx, func(context.Context) error {
			stmts[i], diags[i] = syntax.Parse(frag, block.SourceID)
			return nil
		})
		if err != nil {
			return nil, nil, fmt.Errorf("submitting parse job: %w", err)
		}
		handles[i] = h
	}
	d.collector.AddParseJobs(len(frags))

	for _, h := range handles {
		if err := h.Wait(); err != nil {
			return nil, nil, err
		}
	}

	var merged []types.Diagnostic
	for _, ds := range diags {
		merged = append(merged, ds...)
	}
	return stmts, merged, nil
}

// analyze checks and optionally evaluates fragments in order. A fatal
// diagnostic abandons the block; bindings from fragments that already
// succeeded still commit, so the session stays consistent for later turns.
func (d *Driver) analyze(block *session.Block, settings session.Settings, bindings map[string]analysis.Binding, out *runOutcome) {
	working := maps.Clone(bindings)

	for _, stmt := range out.desugared {
		res, diags := analysis.Check(stmt, working, block.SourceID, settings.Evaluate)
		if len(diags) > 0 {
			out.diags = append(out.diags, diags...)
			return
		}
		out.lastType = &res.Type
		out.lastValue = res.Value

		if res.Name != "" {
			b := analysis.Binding{Type: res.Type, Value: res.Value}
			working[res.Name] = b
			out.bindings = append(out.bindings, pendingBinding{name: res.Name, b: b})
		}
	}

	switch {
	case settings.Evaluate && out.lastValue != nil:
		out.artifact = out.lastValue.String()
	case out.lastType != nil:
		out.artifact = out.lastType.String()
	}
}
