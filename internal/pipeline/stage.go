// Package pipeline provides the high-level orchestration for the warehouse
// simulation content pipeline: generate a layout, hand it to the interactive
// editors, patch the launch configuration with the files the operator
// produced, and start the simulation.
package pipeline

import (
	"github.com/hitesh/warehouse-pipeline/internal/invoker"
)

// PostCheck is a stage's post-condition: it resolves the artifacts the stage
// was expected to deposit (or performs the stage's file edit) and records
// them on the run. A PostCheck error fails the stage.
type PostCheck func(run *Run, rec *StageRecord) error

// Stage is one ordered step of the pipeline. Stages are defined at
// construction time and immutable during a run.
type Stage struct {
	Name string

	// Invoke builds the tool invocation from the artifacts resolved so
	// far. Nil for stages that only edit files.
	Invoke func(run *Run) invoker.Invocation

	Mode invoker.Mode

	// Post is evaluated after the tool exits. Nil for the terminal stage.
	Post PostCheck
}

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)
