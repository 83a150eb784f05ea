package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nao1215/sgreport/internal/model"
)

// ErrHalt is returned by a step to stop the pipeline early without failing.
// Execute swallows it and marks the run as halted.
var ErrHalt = errors.New("pipeline halted")

// Run carries the state of one report generation through the steps.
// Inputs are set by the caller; the remaining fields are filled in by steps.
type Run struct {
	// InputPath is the semgrep JSON output to read.
	InputPath string

	// OutputPath is where the rendered document is saved.
	OutputPath string

	// Format is the output format name (html, markdown or json).
	Format string

	// Title is the document heading.
	Title string

	// Taxonomy classifies raw severity labels into buckets.
	Taxonomy *model.Taxonomy

	// GeneratedAt is stamped by the pipeline before the first step runs.
	GeneratedAt time.Time

	// Findings are the findings read by the load step.
	Findings []model.Finding

	// Report is the summarized view built from Findings.
	Report *model.Report

	// Document is the rendered report.
	Document []byte

	// Halted is true when a step stopped the pipeline with ErrHalt.
	Halted bool

	// PerformedSteps lists the steps that completed, in order.
	PerformedSteps []string
}

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the run state
// left by previous steps.
//
// Design decision: We use an interface rather than function types because
// steps carry their own collaborators (notifier, logger) and Name() gives
// log lines a stable identifier.
type Step interface {
	// Do executes the pipeline step.
	// Returning ErrHalt stops the pipeline without an error.
	Do(ctx context.Context, run *Run) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// clock returns the generation timestamp.
	clock func() time.Time
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithClock overrides the source of the generation timestamp.
// Tests use it to get byte-identical documents.
func WithClock(clock func() time.Time) Option {
	return func(p *Pipeline) {
		p.clock = clock
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
		clock: time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence.
// It checks for cancellation before each step and stops at the first error.
// A step returning ErrHalt ends the run successfully with run.Halted set.
func (p *Pipeline) Execute(ctx context.Context, run *Run) error {
	if run.GeneratedAt.IsZero() {
		run.GeneratedAt = p.clock()
	}

	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Info("executing step",
			"step", step.Name(),
			"input", run.InputPath,
		)

		if err := step.Do(ctx, run); err != nil {
			if errors.Is(err, ErrHalt) {
				p.logger.Info("pipeline halted", "step", step.Name())
				run.Halted = true
				return nil
			}
			p.logger.Error("step failed",
				"step", step.Name(),
				"input", run.InputPath,
				"error", err,
			)
			return err
		}

		p.logger.Debug("step completed", "step", step.Name())
		run.PerformedSteps = append(run.PerformedSteps, step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
