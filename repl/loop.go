package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ember-lang/ember/log"
	"github.com/ember-lang/ember/metrics"
	"github.com/ember-lang/ember/pipeline"
	"github.com/ember-lang/ember/reader"
	"github.com/ember-lang/ember/render"
	"github.com/ember-lang/ember/session"
	"github.com/ember-lang/ember/transcript"
	"github.com/ember-lang/ember/types"
)

// clearScreen is the ANSI erase-display + cursor-home sequence.
const clearScreen = "\x1b[2J\x1b[H"

// Loop is the read-dispatch-print cycle. It owns the session state and
// hands it to the driver for exactly one turn at a time; one line is fully
// processed before the next is read.
type Loop struct {
	state     *session.State
	driver    *pipeline.Driver
	source    reader.LineSource
	renderer  *render.Renderer
	out       io.Writer
	logger    *log.Logger
	collector *metrics.Collector
	recorder  *transcript.Recorder
}

// NewLoop creates a loop. The collector and recorder may be nil.
func NewLoop(
	state *session.State,
	driver *pipeline.Driver,
	source reader.LineSource,
	renderer *render.Renderer,
	out io.Writer,
	logger *log.Logger,
	collector *metrics.Collector,
	recorder *transcript.Recorder,
) *Loop {
	return &Loop{
		state:     state,
		driver:    driver,
		source:    source,
		renderer:  renderer,
		out:       out,
		logger:    logger,
		collector: collector,
		recorder:  recorder,
	}
}

// Run prints the version banner and processes lines until quit, interrupt,
// or end of input. Interrupt and end of input are normal termination: the
// loop prints a farewell and returns nil. Other read failures are reported
// as recoverable and the loop continues.
func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintf(l.out, "Ember %s\n", types.Version)

	for {
		line, err := l.source.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, reader.ErrInterrupted) || errors.Is(err, io.EOF) {
				l.goodbye()
				return nil
			}
			l.renderer.Reportf("reading input: %v", err)
			continue
		}

		// Empty input short-circuits before classification: no pipeline
		// work, no session change.
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		l.source.AppendHistory(line)

		if quit := l.dispatch(ctx, Classify(trimmed)); quit {
			l.goodbye()
			return nil
		}
	}
}

// dispatch handles one classified command and reports whether the loop
// should exit.
func (l *Loop) dispatch(ctx context.Context, cmd Command) bool {
	switch cmd.Kind {
	case CommandQuit:
		return true
	case CommandClear:
		io.WriteString(l.out, clearScreen)
	case CommandVersion:
		fmt.Fprintf(l.out, "Ember %s\n", types.Version)
	case CommandMalformed:
		l.renderer.Reportf("%s", cmd.Reason)
	default:
		l.runPipeline(ctx, cmd)
	}
	return false
}

// runPipeline executes one evaluating turn: clear prior diagnostics, apply
// the command's plan atomically, register the block, and drive the stages.
func (l *Loop) runPipeline(ctx context.Context, cmd Command) {
	l.state.ClearDiagnostics()
	l.state.ApplySettings(PlanFor(cmd.Kind))

	block := l.state.RegisterBlock(cmd.Text)
	l.collector.IncTurn()
	l.collector.IncBlock()
	switch cmd.Kind {
	case CommandEvaluate:
		l.collector.IncEvaluation()
	case CommandShowType:
		l.collector.IncTypeQuery()
	case CommandShowTree:
		l.collector.IncTreeDump()
	}

	start := time.Now()
	result, err := l.driver.Run(ctx, block.ID, l.state)
	if err != nil {
		l.renderer.Reportf("pipeline run failed: %v", err)
		return
	}

	diags := l.state.Diagnostics()
	l.renderer.Diagnostics(diags, l.state.Sources())
	if result.Artifact != "" {
		l.renderer.Artifact(result.Artifact)
	}

	l.record(block, cmd, result, diags, time.Since(start))
}

// record appends the turn to the transcript, best effort.
func (l *Loop) record(block *session.Block, cmd Command, result *pipeline.Result, diags []types.Diagnostic, elapsed time.Duration) {
	rec := transcript.NewRecord(l.state.ID())
	rec.Block = block.ID
	rec.Command = cmd.Kind.String()
	rec.Stage = result.Stage.String()
	rec.Source = block.Text
	rec.Artifact = result.Artifact
	for _, d := range diags {
		rec.Diagnostics = append(rec.Diagnostics, d.Message)
	}
	rec.ElapsedMs = elapsed.Milliseconds()
	rec.Ts = time.Now().UTC().Format(time.RFC3339)

	if err := l.recorder.Append(rec); err != nil {
		l.logger.Warn("transcript append failed", map[string]any{"error": err.Error()})
	}
}

func (l *Loop) goodbye() {
	fmt.Fprintln(l.out, "Goodbye!")
	l.logger.Info("session finished", l.collector.Snapshot().Fields())
}
