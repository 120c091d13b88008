package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hitesh/warehouse-pipeline/internal/artifact"
	"github.com/hitesh/warehouse-pipeline/internal/invoker"
	"github.com/hitesh/warehouse-pipeline/internal/observability"
)

// Sequencer runs an ordered stage list, carrying resolved artifacts forward
// and halting on the first failure. No stage is retried and no later stage
// runs after a failure: the precondition for retrying (the operator
// producing a new file) cannot be satisfied automatically.
type Sequencer struct {
	Runner   invoker.Runner
	Resolver artifact.Resolver

	// Out receives the stage-by-stage progress lines.
	Out     io.Writer
	Printer *observability.Printer
	Verbose bool

	// OnProgress, when set, is called after each completed stage.
	OnProgress ProgressCallback
}

// NewSequencer creates a Sequencer wired to the real filesystem and real
// processes, printing to stdout.
func NewSequencer() *Sequencer {
	return &Sequencer{
		Runner:   invoker.NewExecRunner(),
		Resolver: artifact.NewDirResolver(),
		Out:      os.Stdout,
		Printer:  observability.NewPrinter(os.Stdout),
	}
}

// Execute runs the stages strictly in order. The returned Run always
// reflects what actually happened, including on failure; the error (if any)
// is a *StageError naming the stage that stopped the pipeline.
func (s *Sequencer) Execute(ctx context.Context, stages []Stage) (*Run, error) {
	run := NewRun()
	run.State = StateRunning
	total := len(stages)

	for i, stage := range stages {
		fmt.Fprintf(s.Out, "Stage %d/%d: %s...\n", i+1, total, stage.Name)
		rec := StageRecord{Name: stage.Name}

		if stage.Invoke != nil {
			code, err := s.Runner.Run(ctx, stage.Invoke(run), stage.Mode)
			rec.ExitCode = code
			if err != nil {
				return s.fail(run, rec, stage.Name, err)
			}
			if stage.Mode == invoker.Interactive && code != 0 {
				fmt.Fprintf(s.Out, "%s tool exited with code %d; ignoring and checking for artifacts\n",
					stage.Name, code)
			}
		}

		if stage.Post != nil {
			if err := stage.Post(run, &rec); err != nil {
				return s.fail(run, rec, stage.Name, err)
			}
		}

		run.Stages = append(run.Stages, rec)
		s.emit(run, stage.Name, "completed")
	}

	run.State = StateCompleted
	fmt.Fprintf(s.Out, "Pipeline completed. Simulation launched with scene %s\n", run.ScenePath)
	if s.Verbose && s.Printer != nil {
		s.Printer.PrintRunSummary(run.ID.String(), run.State.String(),
			run.LayoutPath, run.MotionPath, run.ScenePath)
	}
	return run, nil
}

func (s *Sequencer) fail(run *Run, rec StageRecord, stage string, err error) (*Run, error) {
	run.Stages = append(run.Stages, rec)
	run.State = StateFailed
	run.Err = err
	return run, &StageError{Stage: stage, Err: err}
}

func (s *Sequencer) emit(run *Run, stage, message string) {
	if s.OnProgress != nil {
		s.OnProgress(ProgressEvent{
			Stage:   stage,
			Message: message,
			RunID:   run.ID.String(),
		})
	}
}

// resolveArtifact runs one artifact query, records the result on the stage,
// and prints it in verbose mode.
func (s *Sequencer) resolveArtifact(kind, dir string, exts []string, rec *StageRecord) (*artifact.Resolved, error) {
	res, err := s.Resolver.Resolve(dir, exts)
	if err != nil {
		return nil, fmt.Errorf("resolving %s artifact: %w", kind, err)
	}
	rec.Artifacts = append(rec.Artifacts, *res)
	if s.Verbose && s.Printer != nil {
		s.Printer.PrintResolvedArtifact(kind, res)
	}
	return res, nil
}
