package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/sgreport/internal/log"
	"github.com/nao1215/sgreport/internal/model"
	"github.com/nao1215/sgreport/internal/report"
	"github.com/nao1215/sgreport/internal/semgrep"
)

// Step names.
const (
	StepLoad            = "load"
	StepRequireFindings = "require-findings"
	StepSummarize       = "summarize"
	StepRender          = "render"
	StepSave            = "save"
)

// LoadStep reads findings from the semgrep output file.
// A missing file is not an error: the step warns and leaves Findings empty.
type LoadStep struct {
	notifier *log.Notifier
	logger   *slog.Logger
}

// NewLoadStep creates a LoadStep.
func NewLoadStep(notifier *log.Notifier, logger *slog.Logger) *LoadStep {
	return &LoadStep{notifier: notifier, logger: logger}
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return StepLoad
}

// Do executes the load step.
func (s *LoadStep) Do(_ context.Context, run *Run) error {
	findings, err := semgrep.Load(run.InputPath)
	if errors.Is(err, semgrep.ErrInputNotFound) {
		s.notifier.Warnf("Semgrep output not found: %s", run.InputPath)
		run.Findings = nil
		return nil
	}
	if err != nil {
		return err
	}

	s.logger.Debug("findings loaded", "input", run.InputPath, "count", len(findings))
	run.Findings = findings
	return nil
}

// RequireFindingsStep halts the pipeline when there is nothing to report,
// so no document is written for a clean scan.
type RequireFindingsStep struct {
	notifier *log.Notifier
}

// NewRequireFindingsStep creates a RequireFindingsStep.
func NewRequireFindingsStep(notifier *log.Notifier) *RequireFindingsStep {
	return &RequireFindingsStep{notifier: notifier}
}

// Name returns the step name.
func (s *RequireFindingsStep) Name() string {
	return StepRequireFindings
}

// Do executes the require-findings step.
func (s *RequireFindingsStep) Do(_ context.Context, run *Run) error {
	if len(run.Findings) == 0 {
		s.notifier.Infof("No findings. Nothing to report.")
		return ErrHalt
	}
	return nil
}

// SummarizeStep classifies and counts findings into a report.
type SummarizeStep struct{}

// NewSummarizeStep creates a SummarizeStep.
func NewSummarizeStep() *SummarizeStep {
	return &SummarizeStep{}
}

// Name returns the step name.
func (s *SummarizeStep) Name() string {
	return StepSummarize
}

// Do executes the summarize step.
func (s *SummarizeStep) Do(_ context.Context, run *Run) error {
	if run.Taxonomy == nil {
		return errors.New("no severity taxonomy configured")
	}
	run.Report = model.NewReport(run.Title, run.Findings, run.Taxonomy, run.GeneratedAt)
	return nil
}

// RenderStep renders the report in the configured format into memory.
type RenderStep struct{}

// NewRenderStep creates a RenderStep.
func NewRenderStep() *RenderStep {
	return &RenderStep{}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return StepRender
}

// Do executes the render step.
func (s *RenderStep) Do(_ context.Context, run *Run) error {
	if run.Report == nil {
		return errors.New("no report to render")
	}

	var buf bytes.Buffer
	w, err := report.NewWriter(run.Format, &buf)
	if err != nil {
		return err
	}
	if _, err := w.Write(run.Report); err != nil {
		return fmt.Errorf("failed to render %s report: %w", run.Format, err)
	}

	run.Document = buf.Bytes()
	return nil
}

// SaveStep writes the rendered document to the output path.
type SaveStep struct {
	notifier *log.Notifier
	logger   *slog.Logger
}

// NewSaveStep creates a SaveStep.
func NewSaveStep(notifier *log.Notifier, logger *slog.Logger) *SaveStep {
	return &SaveStep{notifier: notifier, logger: logger}
}

// Name returns the step name.
func (s *SaveStep) Name() string {
	return StepSave
}

// Do executes the save step.
func (s *SaveStep) Do(_ context.Context, run *Run) error {
	if err := report.Save(run.OutputPath, run.Document); err != nil {
		return err
	}

	s.logger.Debug("report saved", "output", run.OutputPath, "bytes", len(run.Document))
	s.notifier.Infof("Report generated: %s", run.OutputPath)
	return nil
}

// NewGenerator returns a pipeline with the full load, require-findings,
// summarize, render and save sequence.
func NewGenerator(notifier *log.Notifier, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewLoadStep(notifier, p.logger),
		NewRequireFindingsStep(notifier),
		NewSummarizeStep(),
		NewRenderStep(),
		NewSaveStep(notifier, p.logger),
	)
	return p
}
