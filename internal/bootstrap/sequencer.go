package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/log"
	"github.com/zjrosen/pagekit/internal/tracing"
)

// Mode says how the sequencer runs a step.
type Mode int

const (
	// Await runs the step and waits for it before the next one.
	Await Mode = iota
	// Sync runs a step that cannot suspend.
	Sync
	// Detached starts the step in the background and moves on immediately.
	Detached
)

func (m Mode) String() string {
	switch m {
	case Await:
		return "await"
	case Sync:
		return "sync"
	case Detached:
		return "background"
	default:
		return "unknown"
	}
}

// Step is one entry of the bootstrap sequence.
type Step struct {
	Name string
	Mode Mode
	run  func(ctx context.Context) error
}

// StepError reports which step failed. It unwraps to the step's error.
type StepError struct {
	Index int // 1-based position in the sequence
	Step  string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("bootstrap step %d (%s): %v", e.Index, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithBestEffort keeps running after a failed step. Run then returns every
// step error joined together instead of stopping at the first.
func WithBestEffort(bestEffort bool) Option {
	return func(s *Sequencer) { s.bestEffort = bestEffort }
}

// WithTracer records a span for the run and for each step.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Sequencer) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// Sequencer registers the editor's plugins in a fixed order.
type Sequencer struct {
	deps       Deps
	steps      []Step
	bestEffort bool
	tracer     trace.Tracer
	background Background
}

// New validates deps and builds the sequence.
func New(deps Deps, opts ...Option) (*Sequencer, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	s := &Sequencer{
		deps:   deps,
		tracer: noop.NewTracerProvider().Tracer("pagekit"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.steps = s.buildSteps()
	return s, nil
}

// Steps returns the sequence in execution order.
func (s *Sequencer) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

func (s *Sequencer) register(p host.Plugin) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return s.deps.Plugins.Register(ctx, p)
	}
}

func (s *Sequencer) buildSteps() []Step {
	d := s.deps
	m := d.Modules
	return []Step{
		{Name: m.Inject.Name, Mode: Await, run: s.register(m.Inject)},
		{Name: "saveAsBlock", Mode: Sync, run: func(context.Context) error {
			d.Material.AddBuiltinComponentAction(d.SaveAsBlock)
			return nil
		}},
		{Name: m.BlockPane.Name, Mode: Await, run: s.register(m.BlockPane)},
		{Name: PluginSchema, Mode: Await, run: s.register(m.Schema.WithName(PluginSchema))},
		{Name: PluginSimulatorResizer, Mode: Detached, run: s.register(m.SimulatorResizer.WithName(PluginSimulatorResizer))},
		{Name: PluginEditorInit, Mode: Await, run: s.register(editorInit(d))},
		{Name: PluginBuiltinRegistry, Mode: Await, run: s.register(builtinPluginRegistry(d.Contents))},
		{Name: PluginSetterRegistry, Mode: Await, run: s.register(setterRegistry(d.Contents, d.Setters))},
		{Name: m.UndoRedo.Name, Mode: Await, run: s.register(m.UndoRedo)},
		{Name: m.ZhEn.Name, Mode: Await, run: s.register(m.ZhEn)},
		{Name: PluginSaveSample, Mode: Await, run: s.register(saveSample(d.Save))},
		{Name: PluginDataSourcePane, Mode: Await, run: s.register(m.DataSourcePane.WithName(PluginDataSourcePane))},
		{Name: PluginCodeEditor, Mode: Await, run: s.register(m.CodeEditor.WithName(PluginCodeEditor))},
		{Name: PluginCodeGenerator, Mode: Await, run: s.register(m.CodeGenerator.WithName(PluginCodeGenerator))},
		{Name: PluginPreviewSample, Mode: Await, run: s.register(previewSample(d.Preview))},
		{Name: PluginCustomSetter, Mode: Await, run: s.register(customSetter(d.Setters))},
	}
}

// Run executes the sequence once.
//
// By default the first failing step stops the run; registrations already made
// stay in place. With WithBestEffort every step runs and all failures are
// returned together. The background step never fails Run; see Wait.
func (s *Sequencer) Run(ctx context.Context) error {
	runID := uuid.NewString()
	ctx, span := s.tracer.Start(ctx, tracing.SpanBootstrapRun,
		trace.WithAttributes(
			attribute.String(tracing.AttrRunID, runID),
			attribute.Int(tracing.AttrStepCount, len(s.steps)),
			attribute.Bool(tracing.AttrBestEffort, s.bestEffort),
		))
	defer span.End()

	started := time.Now()
	log.Info(log.CatBoot, "Bootstrap started", "run", runID, "steps", len(s.steps), "best_effort", s.bestEffort)

	var errs []error
	for i, step := range s.steps {
		if err := ctx.Err(); err != nil {
			errs = append(errs, &StepError{Index: i + 1, Step: step.Name, Err: err})
			break
		}

		if err := s.runStep(ctx, i+1, step); err != nil {
			errs = append(errs, err)
			if !s.bestEffort {
				break
			}
		}
	}

	err := errors.Join(errs...)
	if len(errs) == 1 {
		err = errs[0]
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorErr(log.CatBoot, "Bootstrap failed", err, "run", runID, "failures", len(errs))
		return err
	}

	span.SetStatus(codes.Ok, "")
	log.Info(log.CatBoot, "Bootstrap complete", "run", runID, "duration", time.Since(started))
	return nil
}

func (s *Sequencer) runStep(ctx context.Context, index int, step Step) error {
	ctx, span := s.tracer.Start(ctx, tracing.SpanPrefixStep+step.Name,
		trace.WithAttributes(
			attribute.Int(tracing.AttrStepIndex, index),
			attribute.String(tracing.AttrStepName, step.Name),
			attribute.String(tracing.AttrStepMode, step.Mode.String()),
		))
	defer span.End()

	if step.Mode == Detached {
		s.background.Go(ctx, step.Name, step.run)
		log.Debug(log.CatBoot, "Step started in background", "index", index, "step", step.Name)
		return nil
	}

	if err := step.run(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorErr(log.CatBoot, "Step failed", err, "index", index, "step", step.Name)
		return &StepError{Index: index, Step: step.Name, Err: err}
	}

	log.Debug(log.CatBoot, "Step complete", "index", index, "step", step.Name, "mode", step.Mode)
	return nil
}

// Wait blocks until background registrations started by Run finish and
// returns their joined errors.
func (s *Sequencer) Wait() error {
	return s.background.Wait()
}
